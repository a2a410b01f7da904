// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/solpot/solpot/types"
)

// ExecLocal 根据回执维护本地索引：购票流水、开奖历史、状态索引。
// 索引全部由回执日志重建，不读合约状态。
func (s *Solpot) ExecLocal(tx *types.Transaction, receipt *types.Receipt) (*types.LocalDBSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dbset := buildLocalKV(receipt, false)
	if err := s.applyLocal(dbset); err != nil {
		return nil, err
	}
	return dbset, nil
}

// ExecDelLocal 回滚一笔交易的本地索引
func (s *Solpot) ExecDelLocal(tx *types.Transaction, receipt *types.Receipt) (*types.LocalDBSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dbset := buildLocalKV(receipt, true)
	if err := s.applyLocal(dbset); err != nil {
		return nil, err
	}
	return dbset, nil
}

// applyLocal value 为 nil 表示删除
func (s *Solpot) applyLocal(dbset *types.LocalDBSet) error {
	batch := s.localDB.NewBatch(false)
	for _, kv := range dbset.KV {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	return batch.Write()
}

func buildLocalKV(receipt *types.Receipt, del bool) *types.LocalDBSet {
	dbset := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return dbset
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case types.TyLogLotteryBuy:
			var l types.ReceiptLottery
			if err := types.Decode(item.Log, &l); err != nil {
				continue
			}
			key := calcLotteryBuyKey(l.Name, l.Round, l.Addr)
			if del {
				dbset.KV = append(dbset.KV, &types.KeyValue{Key: key})
			} else {
				record := &types.LotteryBuyRecord{Addr: l.Addr, Amount: l.Amount, Round: l.Round}
				dbset.KV = append(dbset.KV, &types.KeyValue{Key: key, Value: types.Encode(record)})
			}
			dbset.KV = append(dbset.KV, statusIndexKV(&l, del)...)
		case types.TyLogLotteryDraw:
			var l types.ReceiptLottery
			if err := types.Decode(item.Log, &l); err != nil {
				continue
			}
			key := calcLotteryDrawKey(l.Name, l.Round)
			if del {
				dbset.KV = append(dbset.KV, &types.KeyValue{Key: key})
			} else {
				record := &types.LotteryDrawRecord{Winner: l.Winner, Round: l.Round}
				dbset.KV = append(dbset.KV, &types.KeyValue{Key: key, Value: types.Encode(record)})
			}
			dbset.KV = append(dbset.KV, statusIndexKV(&l, del)...)
		case types.TyLogLotteryCreate, types.TyLogLotteryConfig,
			types.TyLogLotteryClaim, types.TyLogLotteryReset:
			var l types.ReceiptLottery
			if err := types.Decode(item.Log, &l); err != nil {
				continue
			}
			dbset.KV = append(dbset.KV, statusIndexKV(&l, del)...)
		}
	}
	return dbset
}

// statusIndexKV 状态索引迁移：新状态上挂名字，旧状态上摘名字。
// 回滚时方向对调。
func statusIndexKV(l *types.ReceiptLottery, del bool) (kvs []*types.KeyValue) {
	if l.Status == l.PrevStatus {
		return nil
	}
	addKey := calcLotteryStatusKey(l.Name, l.Status)
	if del {
		kvs = append(kvs, &types.KeyValue{Key: addKey})
		if l.PrevStatus != 0 {
			kvs = append(kvs, &types.KeyValue{Key: calcLotteryStatusKey(l.Name, l.PrevStatus), Value: []byte(l.Name)})
		}
		return kvs
	}
	kvs = append(kvs, &types.KeyValue{Key: addKey, Value: []byte(l.Name)})
	if l.PrevStatus != 0 {
		kvs = append(kvs, &types.KeyValue{Key: calcLotteryStatusKey(l.Name, l.PrevStatus)})
	}
	return kvs
}
