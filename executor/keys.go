// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/solpot/solpot/types"
)

func calcVaultKey() []byte {
	return []byte(fmt.Sprintf("mavl-%s-vault", types.SolpotX))
}

func calcLotteryKey(name string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-lottery-%s", types.SolpotX, name))
}

func calcLotteryBuyPrefix(name string, round int64) []byte {
	return []byte(fmt.Sprintf("lottery-buy:%s:%010d:", name, round))
}

func calcLotteryBuyKey(name string, round int64, addr string) []byte {
	return []byte(fmt.Sprintf("lottery-buy:%s:%010d:%s", name, round, addr))
}

func calcLotteryDrawKey(name string, round int64) []byte {
	return []byte(fmt.Sprintf("lottery-draw:%s:%010d", name, round))
}

func calcLotteryStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("lottery-status:%d:", status))
}

func calcLotteryStatusKey(name string, status int32) []byte {
	return []byte(fmt.Sprintf("lottery-status:%d:%s", status, name))
}
