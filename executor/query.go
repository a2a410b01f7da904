// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/solpot/solpot/types"
)

const listCount = 1024

// Query 只读查询入口，funcName 决定 params 的解码类型
func (s *Solpot) Query(funcName string, params []byte) (interface{}, error) {
	switch funcName {
	case "GetVaultInfo":
		return s.getVaultInfo()
	case "GetLotteryInfo":
		var req types.ReqLotteryInfo
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return s.getLotteryInfo(req.Name)
	case "GetLotteryBalance":
		var req types.ReqLotteryInfo
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return s.getLotteryBalance(req.Name)
	case "ListLotteries":
		var req types.ReqLotteryStatus
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return s.listLotteries(req.Status)
	case "GetLotteryBuyRecords":
		var req types.ReqLotteryRound
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return s.getLotteryBuyRecords(req.Name, req.Round)
	case "GetLotteryDrawRecord":
		var req types.ReqLotteryRound
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return s.getLotteryDrawRecord(req.Name, req.Round)
	}
	return nil, types.ErrActionNotSupport
}

func (s *Solpot) getVaultInfo() (*types.Vault, error) {
	return findVault(newStateCache(s.stateDB))
}

// getLotteryInfo 走 LRU 缓存，写路径在落库后失效对应条目
func (s *Solpot) getLotteryInfo(name string) (*types.Lottery, error) {
	if value, ok := s.lotteryCache.Get(name); ok {
		lottery := value.(types.Lottery)
		return &lottery, nil
	}
	lottery, err := findLottery(newStateCache(s.stateDB), name)
	if err != nil {
		return nil, err
	}
	s.lotteryCache.Add(name, *lottery)
	return lottery, nil
}

// getLotteryBalance 当前奖池。pending 和 claimed 的票款都不在池里：
// 前者还没开售，后者已经结清。
func (s *Solpot) getLotteryBalance(name string) (*types.ReplyLotteryBalance, error) {
	lottery, err := s.getLotteryInfo(name)
	if err != nil {
		return nil, err
	}
	reply := &types.ReplyLotteryBalance{Name: name}
	if lottery.Status == types.LotteryActive || lottery.Status == types.LotteryEnded {
		reply.Pool = lottery.TicketPrice * int64(len(lottery.Participants))
	}
	return reply, nil
}

func (s *Solpot) listLotteries(status int32) (*types.ReplyLotteryList, error) {
	prefix := calcLotteryStatusPrefix(status)
	keys, err := s.localDB.ListKeys(prefix, listCount)
	if err != nil {
		return nil, err
	}
	reply := &types.ReplyLotteryList{}
	for _, key := range keys {
		reply.Names = append(reply.Names, string(bytes.TrimPrefix(key, prefix)))
	}
	return reply, nil
}

func (s *Solpot) getLotteryBuyRecords(name string, round int64) (*types.ReplyLotteryBuyRecords, error) {
	values, err := s.localDB.List(calcLotteryBuyPrefix(name, round), listCount)
	if err != nil {
		return nil, err
	}
	reply := &types.ReplyLotteryBuyRecords{}
	for _, value := range values {
		var record types.LotteryBuyRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		reply.Records = append(reply.Records, &record)
	}
	return reply, nil
}

func (s *Solpot) getLotteryDrawRecord(name string, round int64) (*types.LotteryDrawRecord, error) {
	value, err := s.localDB.Get(calcLotteryDrawKey(name, round))
	if err != nil {
		return nil, types.ErrNotFound
	}
	var record types.LotteryDrawRecord
	if err := types.Decode(value, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
