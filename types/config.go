// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultReserveFloor 金库的最低保留额，按最小支付单位计
const DefaultReserveFloor int64 = 1398960

// Config 节点配置
type Config struct {
	Title        string
	ExecName     string
	ReserveFloor int64
	DB           *DBConfig
}

// DBConfig 状态库后端配置
type DBConfig struct {
	Driver  string
	DBPath  string
	DBCache int32
}

// DefaultConfig 缺省配置：leveldb，数据目录 datadir
func DefaultConfig() *Config {
	return &Config{
		Title:        "solpot",
		ExecName:     SolpotX,
		ReserveFloor: DefaultReserveFloor,
		DB: &DBConfig{
			Driver:  "leveldb",
			DBPath:  "datadir",
			DBCache: 64,
		},
	}
}

// InitCfg 从 toml 文件加载配置，未给出的字段取缺省值
func InitCfg(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := tml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if cfg.ExecName == "" {
		cfg.ExecName = SolpotX
	}
	if strings.ContainsRune(cfg.ExecName, '-') {
		return nil, errors.Errorf("exec name %q must not contain '-'", cfg.ExecName)
	}
	if cfg.ReserveFloor < 0 {
		return nil, errors.Errorf("negative reserve floor %d", cfg.ReserveFloor)
	}
	if cfg.DB == nil {
		cfg.DB = DefaultConfig().DB
	}
	return cfg, nil
}
