// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

type GoBadgerDB struct {
	db *badger.DB
}

func NewGoBadgerDB(name string, dir string, cache int32) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

func (db *GoBadgerDB) list(prefix []byte, count int32, wantKeys bool) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = !wantKeys
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if wantKeys {
				values = append(values, item.KeyCopy(nil))
			} else {
				v, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
			if count > 0 && int32(len(values)) >= count {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (db *GoBadgerDB) List(prefix []byte, count int32) ([][]byte, error) {
	return db.list(prefix, count, false)
}

func (db *GoBadgerDB) ListKeys(prefix []byte, count int32) ([][]byte, error) {
	return db.list(prefix, count, true)
}

func (db *GoBadgerDB) Close() {
	db.db.Close()
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
}

func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

func (b *goBadgerDBBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{copyBytes(key), copyBytes(value)})
}

func (b *goBadgerDBBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{copyBytes(key), nil})
}

func (b *goBadgerDBBatch) Write() error {
	err := b.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range b.writes {
			if kv.v == nil {
				if err := txn.Delete(kv.k); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set(kv.k, kv.v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	b.writes = b.writes[:0]
	return nil
}
