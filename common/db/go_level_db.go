// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"path"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = log.New("module", "db.goleveldb")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(LevelDBBackendStr, dbCreator, false)
	registerDBCreator(GoLevelDBBackendStr, dbCreator, false)
}

type GoLevelDB struct {
	db *leveldb.DB
}

func NewGoLevelDB(name string, dir string, cache int32) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache <= 0 {
		cache = 64
	}
	handles := int(cache)
	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     int(cache) / 2 * opt.MiB,
		WriteBuffer:            int(cache) / 4 * opt.MiB, // Two of these are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*lerrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err != nil {
		if err == lerrors.ErrNotFound {
			return nil, ErrNotFound
		}
		llog.Error("Get", "error", err)
		return nil, err
	}
	return res, nil
}

func (db *GoLevelDB) Set(key []byte, value []byte) error {
	err := db.db.Put(key, value, nil)
	if err != nil {
		llog.Error("Set", "error", err)
		return err
	}
	return nil
}

func (db *GoLevelDB) Delete(key []byte) error {
	err := db.db.Delete(key, nil)
	if err != nil {
		llog.Error("Delete", "error", err)
		return err
	}
	return nil
}

func (db *GoLevelDB) List(prefix []byte, count int32) ([][]byte, error) {
	it := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	var values [][]byte
	for it.Next() {
		value := make([]byte, len(it.Value()))
		copy(value, it.Value())
		values = append(values, value)
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return values, nil
}

func (db *GoLevelDB) ListKeys(prefix []byte, count int32) ([][]byte, error) {
	it := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	var keys [][]byte
	for it.Next() {
		key := make([]byte, len(it.Key()))
		copy(key, it.Key())
		keys = append(keys, key)
		if count > 0 && int32(len(keys)) >= count {
			break
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (db *GoLevelDB) Close() {
	db.db.Close()
}

type goLevelDBBatch struct {
	db    *GoLevelDB
	batch *leveldb.Batch
	sync  bool
}

func (db *GoLevelDB) NewBatch(sync bool) Batch {
	return &goLevelDBBatch{db, new(leveldb.Batch), sync}
}

func (b *goLevelDBBatch) Set(key, value []byte) {
	b.batch.Put(key, value)
}

func (b *goLevelDBBatch) Delete(key []byte) {
	b.batch.Delete(key)
}

func (b *goLevelDBBatch) Write() error {
	err := b.db.db.Write(b.batch, &opt.WriteOptions{Sync: b.sync})
	if err != nil {
		llog.Error("Write", "error", err)
		return err
	}
	b.batch.Reset()
	return nil
}
