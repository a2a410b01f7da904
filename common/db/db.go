// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"errors"
	"fmt"
)

// ErrNotFound key 不存在
var ErrNotFound = errors.New("ErrNotFound")

// KV 执行器看到的状态库读写面
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

// DB 持久化后端
type DB interface {
	KV
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	List(prefix []byte, count int32) (values [][]byte, err error)
	ListKeys(prefix []byte, count int32) (keys [][]byte, err error)
	Close()
}

// Batch 批量写：要么全部生效，要么全部丢弃
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int32) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按配置的后端名打开状态库
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}
