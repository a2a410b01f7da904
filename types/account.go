// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Account 账户余额记录
type Account struct {
	Addr    string
	Balance int64
}

// ReceiptAccountTransfer 余额变更回执，保留变更前后的完整账户
type ReceiptAccountTransfer struct {
	Prev    *Account
	Current *Account
}

// CheckAmount 金额范围检查
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
