// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/solpot/solpot/types"
)

// requireSigner 能力检查：每个会改状态的操作入口先走这里。
// expected 为空视为未授权，避免把签名者和零值地址比出相等。
func requireSigner(signer, expected string) error {
	if expected == "" || signer != expected {
		return types.ErrUnauthorizedSigner
	}
	return nil
}
