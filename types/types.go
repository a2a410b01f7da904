// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"go.dedis.ch/protobuf"
)

// SolpotX 执行器名
const SolpotX = "solpot"

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17

	// MaxNameLength 彩票名最大长度
	MaxNameLength = 32
)

// Solpot op
const (
	SolpotActionInitialize = 1 + iota
	SolpotActionSetAuthority
	SolpotActionSetWithdrawer
	SolpotActionWithdraw
	SolpotActionCreate
	SolpotActionSetFee
	SolpotActionSetTicketPrice
	SolpotActionSetTime
	SolpotActionBuy
	SolpotActionEnd
	SolpotActionClaim
	SolpotActionReset
)

// log for solpot
const (
	TyLogVaultInit     = 801
	TyLogVaultRoles    = 802
	TyLogVaultWithdraw = 803
	TyLogLotteryCreate = 804
	TyLogLotteryConfig = 805
	TyLogLotteryBuy    = 806
	TyLogLotteryDraw   = 807
	TyLogLotteryClaim  = 808
	TyLogLotteryReset  = 809

	TyLogTransfer = 810
	TyLogDeposit  = 811
)

// Lottery status
const (
	LotteryPending = 1 + iota
	LotteryActive
	LotteryEnded
	LotteryClaimed
)

// Receipt ty
const (
	ExecErr = 0
	ExecOk  = 2
)

// StatusName 状态名，用于日志和查询展示
func StatusName(status int32) string {
	switch status {
	case LotteryPending:
		return "pending"
	case LotteryActive:
		return "active"
	case LotteryEnded:
		return "ended"
	case LotteryClaimed:
		return "claimed"
	}
	return "unknown"
}

// Encode 编码状态数据
func Encode(data interface{}) []byte {
	b, err := protobuf.Encode(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 解码状态数据
func Decode(data []byte, msg interface{}) error {
	return protobuf.Decode(data, msg)
}

// KeyValue 状态库的一次写入
type KeyValue struct {
	Key   []byte
	Value []byte
}

// GetKey nil安全取key
func (kv *KeyValue) GetKey() []byte {
	if kv == nil {
		return nil
	}
	return kv.Key
}

// ReceiptLog 回执日志
type ReceiptLog struct {
	Ty  int32
	Log []byte
}

// Receipt 一次执行的全部效果：要么全部落库，要么全部丢弃
type Receipt struct {
	Ty   int32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

// LocalDBSet 本地索引库的写集合
type LocalDBSet struct {
	KV []*KeyValue
}
