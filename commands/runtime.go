// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solpot/solpot/common"
	dbm "github.com/solpot/solpot/common/db"
	"github.com/solpot/solpot/executor"
	"github.com/solpot/solpot/types"
)

var clog = log.New("module", "commands")

var (
	metaHeightKey   = []byte("meta-height")
	metaLastHashKey = []byte("meta-lasthash")
)

// Runtime 命令行的单机执行环境：打开本地库，重建执行器，
// 高度和上一笔交易哈希存在索引库里，逐笔递增。
type Runtime struct {
	cfg     *types.Config
	stateDB dbm.DB
	localDB dbm.DB
	exec    *executor.Solpot
	height  int64
	nonce   int64
}

// OpenRuntime 按配置文件打开执行环境
func OpenRuntime(cfgPath string) (*Runtime, error) {
	cfg, err := types.InitCfg(cfgPath)
	if err != nil {
		return nil, err
	}
	stateDB := dbm.NewDB("state", cfg.DB.Driver, cfg.DB.DBPath, cfg.DB.DBCache)
	localDB := dbm.NewDB("local", cfg.DB.Driver, cfg.DB.DBPath, cfg.DB.DBCache)

	rt := &Runtime{
		cfg:     cfg,
		stateDB: stateDB,
		localDB: localDB,
		exec:    executor.New(cfg, stateDB, localDB),
	}
	rt.loadEnv()
	return rt, nil
}

// Close 关闭底层库
func (rt *Runtime) Close() {
	rt.stateDB.Close()
	rt.localDB.Close()
}

func (rt *Runtime) loadEnv() {
	var parentHash []byte
	if value, err := rt.localDB.Get(metaHeightKey); err == nil {
		json.Unmarshal(value, &rt.height)
	}
	if value, err := rt.localDB.Get(metaLastHashKey); err == nil {
		parentHash = value
	}
	rt.exec.SetEnv(rt.height, time.Now().Unix(), parentHash)
}

func (rt *Runtime) saveEnv(txhash []byte) error {
	rt.height++
	value, _ := json.Marshal(rt.height)
	batch := rt.localDB.NewBatch(true)
	batch.Set(metaHeightKey, value)
	batch.Set(metaLastHashKey, txhash)
	return batch.Write()
}

// SendTx 本地执行一笔交易并推进环境
func (rt *Runtime) SendTx(action *types.SolpotAction, from string) (*types.Receipt, error) {
	rt.nonce++
	tx := &types.Transaction{
		Execer:  []byte(rt.cfg.ExecName),
		Payload: types.Encode(action),
		Signer:  from,
		Nonce:   rt.nonce,
		To:      rt.exec.GetAddr(),
	}
	receipt, err := rt.exec.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	if _, err := rt.exec.ExecLocal(tx, receipt); err != nil {
		return nil, err
	}
	if err := rt.saveEnv(tx.Hash()); err != nil {
		return nil, err
	}
	clog.Info("SendTx", "txhash", common.ToHex(tx.Hash()), "height", rt.height)
	rt.exec.SetEnv(rt.height, time.Now().Unix(), tx.Hash())
	return receipt, nil
}

// Query 只读查询
func (rt *Runtime) Query(funcName string, params interface{}) (interface{}, error) {
	var data []byte
	if params != nil {
		data = types.Encode(params)
	}
	return rt.exec.Query(funcName, data)
}

// parseCoinAmount 把人类可读的金额换算成最小支付单位
func parseCoinAmount(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(err, "parse amount %q", amount)
	}
	units := d.Mul(decimal.New(types.Coin, 0))
	if units.Sub(units.Truncate(0)).Sign() != 0 {
		return 0, errors.Errorf("amount %q below the smallest unit", amount)
	}
	value := units.IntPart()
	if !types.CheckAmount(value) {
		return 0, types.ErrAmount
	}
	return value, nil
}

func openRuntime(cmd *cobra.Command) *Runtime {
	cfgPath, _ := cmd.Flags().GetString("conf")
	rt, err := OpenRuntime(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return rt
}

func printResult(result interface{}, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func sendAndPrint(cmd *cobra.Command, action *types.SolpotAction, from string) {
	rt := openRuntime(cmd)
	defer rt.Close()
	receipt, err := rt.SendTx(action, from)
	printResult(receipt, err)
}
