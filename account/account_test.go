// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpot/solpot/common/address"
	dbm "github.com/solpot/solpot/common/db"
	"github.com/solpot/solpot/types"
)

var (
	addrFrom = address.PubKeyToAddress([]byte("account test from")).String()
	addrTo   = address.PubKeyToAddress([]byte("account test to")).String()
)

func newTestAccountDB(t *testing.T) *DB {
	memdb, err := dbm.NewGoMemDB("account", "", 16)
	require.NoError(t, err)
	acc, err := NewAccountDB("solpot", "pot", memdb)
	require.NoError(t, err)
	return acc
}

func TestNewAccountDB(t *testing.T) {
	memdb, _ := dbm.NewGoMemDB("account", "", 16)

	_, err := NewAccountDB("sol-pot", "pot", memdb)
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = NewAccountDB("solpot", "po-t", memdb)
	assert.Equal(t, types.ErrInvalidParam, err)

	acc, err := NewAccountDB("solpot", "pot", memdb)
	require.NoError(t, err)
	assert.Equal(t, []byte("mavl-solpot-pot-"+addrFrom), acc.AccountKey(addrFrom))
}

func TestLoadAccountZero(t *testing.T) {
	acc := newTestAccountDB(t)
	acc1 := acc.LoadAccount(addrFrom)
	assert.Equal(t, addrFrom, acc1.Addr)
	assert.Zero(t, acc1.Balance)
}

func TestDeposit(t *testing.T) {
	acc := newTestAccountDB(t)

	receipt, err := acc.Deposit(addrFrom, 100)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogDeposit), receipt.Logs[0].Ty)
	assert.Equal(t, int64(100), acc.LoadAccount(addrFrom).Balance)

	_, err = acc.Deposit(addrFrom, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Deposit(addrFrom, types.MaxCoin)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	acc := newTestAccountDB(t)
	_, err := acc.Deposit(addrFrom, 100)
	require.NoError(t, err)

	_, err = acc.Transfer(addrFrom, addrTo, -1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Transfer(addrFrom, addrFrom, 10)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addrFrom, addrTo, 101)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err := acc.Transfer(addrFrom, addrTo, 30)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 2)
	assert.Len(t, receipt.KV, 2)
	assert.Equal(t, int64(70), acc.LoadAccount(addrFrom).Balance)
	assert.Equal(t, int64(30), acc.LoadAccount(addrTo).Balance)

	var transfer types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &transfer))
	assert.Equal(t, int64(100), transfer.Prev.Balance)
	assert.Equal(t, int64(70), transfer.Current.Balance)
}

func TestCheckTransfer(t *testing.T) {
	acc := newTestAccountDB(t)
	_, err := acc.Deposit(addrFrom, 100)
	require.NoError(t, err)

	assert.NoError(t, acc.CheckTransfer(addrFrom, addrTo, 100))
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addrFrom, addrTo, 101))
	assert.Equal(t, types.ErrAmount, acc.CheckTransfer(addrFrom, addrTo, 0))
}
