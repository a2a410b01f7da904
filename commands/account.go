// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/solpot/solpot/account"
)

// AccountCmd 账户工具
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account tools",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		AccountDepositCmd(),
		AccountBalanceCmd(),
	)
	return cmd
}

// AccountDepositCmd 入金，仅用于创世和本地测试
func AccountDepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Credit an address, genesis and local testing only",
		Run:   accountDeposit,
	}
	cmd.Flags().StringP("addr", "a", "", "address to credit")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("amount", "m", "", "amount in coins, e.g. 10.5")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func accountDeposit(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := parseCoinAmount(amountStr)
	if err != nil {
		printResult(nil, err)
	}

	rt := openRuntime(cmd)
	defer rt.Close()
	receipt, err := rt.exec.Deposit(addr, amount)
	printResult(receipt, err)
}

// AccountBalanceCmd 查询余额
func AccountBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance of an address",
		Run:   accountBalance,
	}
	cmd.Flags().StringP("addr", "a", "", "address to query")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func accountBalance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")

	rt := openRuntime(cmd)
	defer rt.Close()
	acc, err := account.NewAccountDB(rt.cfg.ExecName, "pot", rt.stateDB)
	if err != nil {
		printResult(nil, err)
	}
	printResult(acc.LoadAccount(addr), nil)
}
