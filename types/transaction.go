// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/solpot/solpot/common"
)

// Transaction 宿主账本投递给执行器的交易。签名校验在账本侧完成，
// Signer 即校验通过的发起方地址。
type Transaction struct {
	Execer  []byte
	Payload []byte
	Signer  string
	Nonce   int64
	To      string
}

// From 交易发起方地址
func (tx *Transaction) From() string {
	return tx.Signer
}

// Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return common.Sha256(Encode(tx))
}
