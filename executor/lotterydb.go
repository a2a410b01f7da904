// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/solpot/solpot/common/db"
	"github.com/solpot/solpot/types"
)

// LotteryDB 彩票记录的落库包装
type LotteryDB struct {
	types.Lottery
}

// NewLotteryDB 创建一条新的彩票记录，状态 pending，第一轮
func NewLotteryDB(create *types.LotteryCreate) *LotteryDB {
	lott := &LotteryDB{}
	lott.Name = create.Name
	lott.TicketPrice = create.TicketPrice
	lott.MaxTickets = create.MaxTickets
	lott.StartTime = create.StartTime
	lott.EndTime = create.EndTime
	lott.Fee = create.Fee
	lott.Status = types.LotteryPending
	lott.Round = 1
	return lott
}

// GetKVSet 彩票的写集合
func (lott *LotteryDB) GetKVSet() (kvset []*types.KeyValue) {
	value := types.Encode(&lott.Lottery)
	kvset = append(kvset, &types.KeyValue{Key: calcLotteryKey(lott.Name), Value: value})
	return kvset
}

// Save 彩票落库
func (lott *LotteryDB) Save(db dbm.KV) {
	set := lott.GetKVSet()
	for i := 0; i < len(set); i++ {
		db.Set(set[i].GetKey(), set[i].Value)
	}
}

func (lott *LotteryDB) hasParticipant(addr string) bool {
	for _, p := range lott.Participants {
		if p == addr {
			return true
		}
	}
	return false
}

// prize 按当前参与人数结算：奖池 = 票价 × 人数，
// 抽成向下取整，余下归中奖者
func (lott *LotteryDB) prize() (payout, feeAmount int64) {
	pool := lott.TicketPrice * int64(len(lott.Participants))
	feeAmount = pool * lott.Fee / 100
	return pool - feeAmount, feeAmount
}

func findLottery(db dbm.KV, name string) (*types.Lottery, error) {
	value, err := db.Get(calcLotteryKey(name))
	if err != nil {
		if err == dbm.ErrNotFound {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	var lott types.Lottery
	if err := types.Decode(value, &lott); err != nil {
		return nil, err
	}
	return &lott, nil
}

func (action *Action) lotteryReceiptLog(lott *types.Lottery, prevStatus int32, logTy int32, amount, payout, feeAmount int64) *types.ReceiptLog {
	l := &types.ReceiptLottery{
		Name:       lott.Name,
		Status:     lott.Status,
		PrevStatus: prevStatus,
		Round:      lott.Round,
		Addr:       action.fromaddr,
		Amount:     amount,
		Winner:     lott.Winner,
		Payout:     payout,
		FeeAmount:  feeAmount,
	}
	return &types.ReceiptLog{Ty: logTy, Log: types.Encode(l)}
}

func (action *Action) requireAuthority() (*types.Vault, error) {
	vault, err := findVault(action.db)
	if err != nil {
		return nil, err
	}
	if err := requireSigner(action.fromaddr, vault.Authority); err != nil {
		return nil, err
	}
	return vault, nil
}

// LotteryCreate 创建彩票，名字即地址，跨轮次复用
func (action *Action) LotteryCreate(create *types.LotteryCreate) (*types.Receipt, error) {
	if _, err := action.requireAuthority(); err != nil {
		return nil, err
	}

	if len(create.Name) == 0 || len(create.Name) > types.MaxNameLength {
		return nil, types.ErrInvalidName
	}
	if create.TicketPrice <= 0 {
		return nil, types.ErrInvalidTicketPrice
	}
	if create.MaxTickets <= 0 {
		return nil, types.ErrInvalidMaxTickets
	}
	if create.Fee < 0 || create.Fee > 100 {
		return nil, types.ErrInvalidFee
	}
	if create.StartTime >= create.EndTime {
		return nil, types.ErrInvalidStartEndTime
	}

	if _, err := findLottery(action.db, create.Name); err != types.ErrNotFound {
		if err == nil {
			llog.Error("LotteryCreate", "name", create.Name, "err", "repeated create")
			return nil, types.ErrLotteryExists
		}
		return nil, err
	}

	lott := NewLotteryDB(create)
	llog.Debug("LotteryCreate", "name", lott.Name, "price", lott.TicketPrice, "max", lott.MaxTickets)

	lott.Save(action.db)
	kv := lott.GetKVSet()
	logs := []*types.ReceiptLog{
		action.lotteryReceiptLog(&lott.Lottery, 0, types.TyLogLotteryCreate, 0, 0, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) loadPendingLottery(name string) (*LotteryDB, error) {
	if _, err := action.requireAuthority(); err != nil {
		return nil, err
	}
	lottery, err := findLottery(action.db, name)
	if err != nil {
		return nil, err
	}
	if lottery.Status != types.LotteryPending {
		return nil, types.ErrLotteryAlreadyStarted
	}
	return &LotteryDB{*lottery}, nil
}

// LotterySetFee 调整抽成，仅限 pending，且不得是当前值
func (action *Action) LotterySetFee(set *types.LotterySetFee) (*types.Receipt, error) {
	lott, err := action.loadPendingLottery(set.Name)
	if err != nil {
		return nil, err
	}
	if set.Fee < 0 || set.Fee > 100 || set.Fee == lott.Fee {
		return nil, types.ErrInvalidFee
	}

	lott.Fee = set.Fee
	lott.Save(action.db)
	logs := []*types.ReceiptLog{
		action.lotteryReceiptLog(&lott.Lottery, lott.Status, types.TyLogLotteryConfig, 0, 0, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: lott.GetKVSet(), Logs: logs}, nil
}

// LotterySetTicketPrice 调整票价，仅限 pending，且不得是当前值
func (action *Action) LotterySetTicketPrice(set *types.LotterySetTicketPrice) (*types.Receipt, error) {
	lott, err := action.loadPendingLottery(set.Name)
	if err != nil {
		return nil, err
	}
	if set.TicketPrice <= 0 || set.TicketPrice == lott.TicketPrice {
		return nil, types.ErrInvalidTicketPrice
	}

	lott.TicketPrice = set.TicketPrice
	lott.Save(action.db)
	logs := []*types.ReceiptLog{
		action.lotteryReceiptLog(&lott.Lottery, lott.Status, types.TyLogLotteryConfig, 0, 0, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: lott.GetKVSet(), Logs: logs}, nil
}

// LotterySetTime 调整起止时间，仅限 pending
func (action *Action) LotterySetTime(set *types.LotterySetTime) (*types.Receipt, error) {
	lott, err := action.loadPendingLottery(set.Name)
	if err != nil {
		return nil, err
	}
	if set.StartTime >= set.EndTime {
		return nil, types.ErrInvalidStartEndTime
	}

	lott.StartTime = set.StartTime
	lott.EndTime = set.EndTime
	lott.Save(action.db)
	logs := []*types.ReceiptLog{
		action.lotteryReceiptLog(&lott.Lottery, lott.Status, types.TyLogLotteryConfig, 0, 0, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: lott.GetKVSet(), Logs: logs}, nil
}

// LotteryBuy 购票。第一张票把彩票带入 active；买满最后一张时，
// 售票和开奖在同一笔交易里完成，彩票直接进入 ended。
func (action *Action) LotteryBuy(buy *types.LotteryBuy) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	lottery, err := findLottery(action.db, buy.Name)
	if err != nil {
		llog.Error("LotteryBuy", "name", buy.Name, "err", err)
		return nil, err
	}
	lott := &LotteryDB{*lottery}
	preStatus := lott.Status

	if lott.Status == types.LotteryEnded || lott.Status == types.LotteryClaimed {
		return nil, types.ErrLotteryEnded
	}
	if action.blocktime < lott.StartTime {
		return nil, types.ErrLotteryNotStarted
	}
	if action.blocktime >= lott.EndTime {
		return nil, types.ErrLotteryEnded
	}
	if int64(len(lott.Participants)) >= lott.MaxTickets {
		return nil, types.ErrLotteryFull
	}
	if lott.hasParticipant(action.fromaddr) {
		return nil, types.ErrAlreadyPurchased
	}

	receipt, err := action.coinsAccount.Transfer(action.fromaddr, action.execaddr, lott.TicketPrice)
	if err != nil {
		llog.Error("LotteryBuy.Transfer", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", lott.TicketPrice, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	if lott.Status == types.LotteryPending {
		llog.Debug("LotteryBuy switch to active", "name", lott.Name, "round", lott.Round)
		lott.Status = types.LotteryActive
	}
	lott.Participants = append(lott.Participants, action.fromaddr)

	logs = append(logs, action.lotteryReceiptLog(&lott.Lottery, preStatus, types.TyLogLotteryBuy, lott.TicketPrice, 0, 0))

	if int64(len(lott.Participants)) == lott.MaxTickets {
		drawLog, err := action.drawLottery(lott)
		if err != nil {
			return nil, err
		}
		logs = append(logs, drawLog)
	}

	lott.Save(action.db)
	kv = append(kv, lott.GetKVSet()...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// LotteryEnd 管理员在时间窗结束后收盘开奖。彩票不处于 active、
// 或者时间窗还没走完，都视为"当前没有可收盘的售卖"。
func (action *Action) LotteryEnd(end *types.LotteryEnd) (*types.Receipt, error) {
	if _, err := action.requireAuthority(); err != nil {
		return nil, err
	}
	lottery, err := findLottery(action.db, end.Name)
	if err != nil {
		return nil, err
	}
	lott := &LotteryDB{*lottery}

	if lott.Status != types.LotteryActive {
		return nil, types.ErrLotteryNotStarted
	}
	if action.blocktime < lott.EndTime {
		return nil, types.ErrLotteryNotStarted
	}

	drawLog, err := action.drawLottery(lott)
	if err != nil {
		return nil, err
	}

	lott.Save(action.db)
	return &types.Receipt{Ty: types.ExecOk, KV: lott.GetKVSet(), Logs: []*types.ReceiptLog{drawLog}}, nil
}

// LotteryClaim 中奖者领奖。签名者必须是当前 winner 且状态是 ended；
// 领过奖后状态已是 claimed，重复领奖在同一道闸门上以未授权拒绝。
func (action *Action) LotteryClaim(claim *types.LotteryClaim) (*types.Receipt, error) {
	lottery, err := findLottery(action.db, claim.Name)
	if err != nil {
		return nil, err
	}
	lott := &LotteryDB{*lottery}

	if lott.Status != types.LotteryEnded || lott.Winner == "" || action.fromaddr != lott.Winner {
		return nil, types.ErrUnauthorizedSigner
	}

	preStatus := lott.Status
	payout, feeAmount := lott.prize()

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if payout > 0 {
		receipt, err := action.coinsAccount.Transfer(action.execaddr, lott.Winner, payout)
		if err != nil {
			llog.Error("LotteryClaim.Transfer", "winner", lott.Winner, "payout", payout, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	lott.Status = types.LotteryClaimed
	lott.Save(action.db)
	kv = append(kv, lott.GetKVSet()...)
	logs = append(logs, action.lotteryReceiptLog(&lott.Lottery, preStatus, types.TyLogLotteryClaim, 0, payout, feeAmount))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// LotteryReset 重置彩票进入下一轮。已开奖未领奖时先把奖金付给
// 中奖者，资金不会因为重置而滞留在奖池里。
func (action *Action) LotteryReset(reset *types.LotteryReset) (*types.Receipt, error) {
	if _, err := action.requireAuthority(); err != nil {
		return nil, err
	}
	lottery, err := findLottery(action.db, reset.Name)
	if err != nil {
		return nil, err
	}
	lott := &LotteryDB{*lottery}
	preStatus := lott.Status

	if lott.Status != types.LotteryEnded && lott.Status != types.LotteryClaimed {
		return nil, types.ErrLotteryNotEnded
	}
	if reset.StartTime >= reset.EndTime {
		return nil, types.ErrInvalidStartEndTime
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if lott.Status == types.LotteryEnded && lott.Winner != "" {
		payout, feeAmount := lott.prize()
		if payout > 0 {
			receipt, err := action.coinsAccount.Transfer(action.execaddr, lott.Winner, payout)
			if err != nil {
				llog.Error("LotteryReset.Transfer", "winner", lott.Winner, "payout", payout, "err", err)
				return nil, err
			}
			logs = append(logs, receipt.Logs...)
			kv = append(kv, receipt.KV...)
		}
		lott.Status = types.LotteryClaimed
		logs = append(logs, action.lotteryReceiptLog(&lott.Lottery, preStatus, types.TyLogLotteryClaim, 0, payout, feeAmount))
	}

	// 状态索引按日志逐条迁移，重置日志的前态要接在结清日志之后
	preStatus = lott.Status

	lott.Participants = nil
	lott.Winner = ""
	lott.StartTime = reset.StartTime
	lott.EndTime = reset.EndTime
	lott.Round++
	lott.Status = types.LotteryPending

	lott.Save(action.db)
	kv = append(kv, lott.GetKVSet()...)
	logs = append(logs, action.lotteryReceiptLog(&lott.Lottery, preStatus, types.TyLogLotteryReset, 0, 0, 0))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
