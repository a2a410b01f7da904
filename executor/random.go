// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"

	"github.com/solpot/solpot/common"
	"github.com/solpot/solpot/types"
)

// winnerIndex 从区块环境派生中奖下标。熵源是父块哈希、区块时间
// 和轮次，三者在交易提交时都还未知，结果对全体节点确定且一致。
func (action *Action) winnerIndex(round int64, n int) int64 {
	buf := make([]byte, 0, len(action.parentHash)+16)
	buf = append(buf, action.parentHash...)
	var env [16]byte
	binary.BigEndian.PutUint64(env[:8], uint64(action.blocktime))
	binary.BigEndian.PutUint64(env[8:], uint64(round))
	buf = append(buf, env[:]...)

	hash := common.Sha256(buf)
	return int64(farm.Fingerprint64(hash) % uint64(n))
}

// drawLottery 就地开奖：选出 winner，状态切到 ended。
// 调用方负责落库。
func (action *Action) drawLottery(lott *LotteryDB) (*types.ReceiptLog, error) {
	if len(lott.Participants) == 0 {
		return nil, types.ErrLotteryNotStarted
	}
	preStatus := lott.Status

	index := action.winnerIndex(lott.Round, len(lott.Participants))
	lott.Winner = lott.Participants[index]
	lott.Status = types.LotteryEnded

	llog.Debug("drawLottery", "name", lott.Name, "round", lott.Round,
		"index", index, "winner", lott.Winner)
	return action.lotteryReceiptLog(&lott.Lottery, preStatus, types.TyLogLotteryDraw, 0, 0, 0), nil
}
