// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/solpot/solpot/common/address"
	dbm "github.com/solpot/solpot/common/db"
	"github.com/solpot/solpot/types"
)

// VaultDB 金库记录的落库包装
type VaultDB struct {
	types.Vault
}

// GetKVSet 金库的写集合
func (v *VaultDB) GetKVSet() (kvset []*types.KeyValue) {
	value := types.Encode(&v.Vault)
	kvset = append(kvset, &types.KeyValue{Key: calcVaultKey(), Value: value})
	return kvset
}

// Save 金库落库
func (v *VaultDB) Save(db dbm.KV) {
	set := v.GetKVSet()
	for i := 0; i < len(set); i++ {
		db.Set(set[i].GetKey(), set[i].Value)
	}
}

func findVault(db dbm.KV) (*types.Vault, error) {
	value, err := db.Get(calcVaultKey())
	if err != nil {
		if err == dbm.ErrNotFound {
			return nil, types.ErrVaultNotFound
		}
		return nil, err
	}
	var vault types.Vault
	if err := types.Decode(value, &vault); err != nil {
		return nil, err
	}
	return &vault, nil
}

func (action *Action) vaultReceiptLog(logTy int32, prev, cur *types.Vault, amount int64) *types.ReceiptLog {
	l := &types.ReceiptVault{
		PrevAuthority:  prev.Authority,
		Authority:      cur.Authority,
		PrevWithdrawer: prev.Withdrawer,
		Withdrawer:     cur.Withdrawer,
		Amount:         amount,
	}
	return &types.ReceiptLog{Ty: logTy, Log: types.Encode(l)}
}

// VaultInitialize 创建金库，只允许一次。未指定 authority 时取交易发起方，
// withdrawer 初始与 authority 相同。
func (action *Action) VaultInitialize(init *types.VaultInitialize) (*types.Receipt, error) {
	_, err := findVault(action.db)
	if err == nil {
		llog.Error("VaultInitialize", "err", "repeated initialize")
		return nil, types.ErrAlreadyInitialized
	}
	if err != types.ErrVaultNotFound {
		return nil, err
	}

	authority := init.Authority
	if authority == "" {
		authority = action.fromaddr
	}
	if err := address.CheckAddress(authority); err != nil {
		return nil, types.ErrInvalidAuthority
	}

	vault := &VaultDB{types.Vault{
		Authority:  authority,
		Withdrawer: authority,
	}}
	llog.Debug("VaultInitialize", "authority", authority)

	vault.Save(action.db)
	kv := vault.GetKVSet()
	logs := []*types.ReceiptLog{
		action.vaultReceiptLog(types.TyLogVaultInit, &types.Vault{}, &vault.Vault, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// VaultSetAuthority 更换管理角色，仅现任 authority 可操作
func (action *Action) VaultSetAuthority(set *types.VaultSetAuthority) (*types.Receipt, error) {
	vault, err := findVault(action.db)
	if err != nil {
		return nil, err
	}
	if err := requireSigner(action.fromaddr, vault.Authority); err != nil {
		return nil, err
	}
	if err := address.CheckAddress(set.Authority); err != nil {
		return nil, types.ErrInvalidAuthority
	}
	if set.Authority == vault.Authority {
		return nil, types.ErrInvalidAuthority
	}

	prev := *vault
	vault.Authority = set.Authority

	vdb := &VaultDB{*vault}
	vdb.Save(action.db)
	logs := []*types.ReceiptLog{
		action.vaultReceiptLog(types.TyLogVaultRoles, &prev, vault, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: vdb.GetKVSet(), Logs: logs}, nil
}

// VaultSetWithdrawer 更换提款角色，仅现任 authority 可操作
func (action *Action) VaultSetWithdrawer(set *types.VaultSetWithdrawer) (*types.Receipt, error) {
	vault, err := findVault(action.db)
	if err != nil {
		return nil, err
	}
	if err := requireSigner(action.fromaddr, vault.Authority); err != nil {
		return nil, err
	}
	if err := address.CheckAddress(set.Withdrawer); err != nil {
		return nil, types.ErrInvalidWithdrawer
	}
	if set.Withdrawer == vault.Withdrawer {
		return nil, types.ErrInvalidWithdrawer
	}

	prev := *vault
	vault.Withdrawer = set.Withdrawer

	vdb := &VaultDB{*vault}
	vdb.Save(action.db)
	logs := []*types.ReceiptLog{
		action.vaultReceiptLog(types.TyLogVaultRoles, &prev, vault, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: vdb.GetKVSet(), Logs: logs}, nil
}

// VaultWithdraw 提取金库结余。校验顺序是合约语义的一部分：
// 金额合法 -> 余额充足 -> 不触及保留额。一个金额上"付得起"但会击穿
// 保留额的请求必须报保留额错误，而不是余额不足。
func (action *Action) VaultWithdraw(withdraw *types.VaultWithdraw) (*types.Receipt, error) {
	vault, err := findVault(action.db)
	if err != nil {
		return nil, err
	}
	if err := requireSigner(action.fromaddr, vault.Withdrawer); err != nil {
		return nil, err
	}

	if withdraw.Amount <= 0 {
		return nil, types.ErrInvalidWithdrawAmount
	}
	balance := action.coinsAccount.LoadAccount(action.execaddr).Balance
	if withdraw.Amount > balance {
		return nil, types.ErrInsufficientFunds
	}
	if balance-withdraw.Amount < action.reserve {
		return nil, types.ErrCannotWithdrawReserve
	}

	receipt, err := action.coinsAccount.Transfer(action.execaddr, vault.Withdrawer, withdraw.Amount)
	if err != nil {
		llog.Error("VaultWithdraw.Transfer", "addr", vault.Withdrawer, "amount", withdraw.Amount, "err", err)
		return nil, err
	}

	logs := receipt.Logs
	kv := receipt.KV
	logs = append(logs, action.vaultReceiptLog(types.TyLogVaultWithdraw, vault, vault, withdraw.Amount))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
