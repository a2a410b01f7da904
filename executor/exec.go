// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/solpot/solpot/account"
	dbm "github.com/solpot/solpot/common/db"
	"github.com/solpot/solpot/types"
)

// Action 一笔交易的执行上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	parentHash   []byte
	reserve      int64
}

func (s *Solpot) newAction(db dbm.KV, tx *types.Transaction) *Action {
	acc, err := account.NewAccountDB(s.cfg.ExecName, "pot", db)
	if err != nil {
		panic(err) //执行器名在配置加载时已校验
	}
	return &Action{
		coinsAccount: acc,
		db:           db,
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    s.blocktime,
		height:       s.height,
		execaddr:     s.execaddr,
		parentHash:   s.parentHash,
		reserve:      s.cfg.ReserveFloor,
	}
}

func (action *Action) dispatch(payload *types.SolpotAction) (*types.Receipt, error) {
	switch payload.Ty {
	case types.SolpotActionInitialize:
		if payload.Initialize != nil {
			return action.VaultInitialize(payload.Initialize)
		}
	case types.SolpotActionSetAuthority:
		if payload.SetAuthority != nil {
			return action.VaultSetAuthority(payload.SetAuthority)
		}
	case types.SolpotActionSetWithdrawer:
		if payload.SetWithdrawer != nil {
			return action.VaultSetWithdrawer(payload.SetWithdrawer)
		}
	case types.SolpotActionWithdraw:
		if payload.Withdraw != nil {
			return action.VaultWithdraw(payload.Withdraw)
		}
	case types.SolpotActionCreate:
		if payload.Create != nil {
			return action.LotteryCreate(payload.Create)
		}
	case types.SolpotActionSetFee:
		if payload.SetFee != nil {
			return action.LotterySetFee(payload.SetFee)
		}
	case types.SolpotActionSetTicketPrice:
		if payload.SetTicketPrice != nil {
			return action.LotterySetTicketPrice(payload.SetTicketPrice)
		}
	case types.SolpotActionSetTime:
		if payload.SetTime != nil {
			return action.LotterySetTime(payload.SetTime)
		}
	case types.SolpotActionBuy:
		if payload.Buy != nil {
			return action.LotteryBuy(payload.Buy)
		}
	case types.SolpotActionEnd:
		if payload.End != nil {
			return action.LotteryEnd(payload.End)
		}
	case types.SolpotActionClaim:
		if payload.Claim != nil {
			return action.LotteryClaim(payload.Claim)
		}
	case types.SolpotActionReset:
		if payload.Reset != nil {
			return action.LotteryReset(payload.Reset)
		}
	}
	return nil, types.ErrActionNotSupport
}
