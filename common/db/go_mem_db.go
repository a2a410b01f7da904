// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"strings"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

func NewGoMemDB(name string, dir string, cache int32) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

func copyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return copyBytes(entry), nil
	}
	return nil, ErrNotFound
}

func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = copyBytes(value)
	return nil
}

func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

func (db *GoMemDB) sortedKeys(prefix []byte, count int32) []string {
	var keys []string
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if count > 0 && int32(len(keys)) > count {
		keys = keys[:count]
	}
	return keys
}

func (db *GoMemDB) List(prefix []byte, count int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var values [][]byte
	for _, k := range db.sortedKeys(prefix, count) {
		values = append(values, copyBytes(db.db[k]))
	}
	return values, nil
}

func (db *GoMemDB) ListKeys(prefix []byte, count int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys [][]byte
	for _, k := range db.sortedKeys(prefix, count) {
		keys = append(keys, []byte(k))
	}
	return keys, nil
}

func (db *GoMemDB) Close() {
}

func (db *GoMemDB) Print() {
	for key, value := range db.db {
		mlog.Info("Print", "key", key, "value", string(value))
	}
}

type kv struct{ k, v []byte }

type memBatch struct {
	db     *GoMemDB
	writes []kv
}

func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{copyBytes(key), copyBytes(value)})
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{copyBytes(key), nil})
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.db[string(kv.k)] = kv.v
		}
	}
	b.writes = b.writes[:0]
	return nil
}
