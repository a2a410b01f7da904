// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Vault 金库记录：全局唯一，保存两个角色
type Vault struct {
	Authority  string
	Withdrawer string
}

// VaultInitialize 初始化金库，Authority 为空时取签名者
type VaultInitialize struct {
	Authority string
}

// VaultSetAuthority 更换管理角色
type VaultSetAuthority struct {
	Authority string
}

// VaultSetWithdrawer 更换提款角色
type VaultSetWithdrawer struct {
	Withdrawer string
}

// VaultWithdraw 提取金库结余
type VaultWithdraw struct {
	Amount int64
}

// ReceiptVault 金库操作回执
type ReceiptVault struct {
	PrevAuthority  string
	Authority      string
	PrevWithdrawer string
	Withdrawer     string
	Amount         int64
}
