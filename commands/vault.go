// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/solpot/solpot/types"
)

// VaultCmd 金库管理
func VaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault custody operations",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		VaultInitCmd(),
		VaultSetAuthorityCmd(),
		VaultSetWithdrawerCmd(),
		VaultWithdrawCmd(),
	)
	return cmd
}

// VaultInitCmd 初始化金库
func VaultInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the vault, once per deployment",
		Run:   vaultInit,
	}
	cmd.Flags().StringP("from", "f", "", "signer address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("authority", "a", "", "initial authority (defaults to signer)")
	return cmd
}

func vaultInit(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	authority, _ := cmd.Flags().GetString("authority")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:         types.SolpotActionInitialize,
		Initialize: &types.VaultInitialize{Authority: authority},
	}, from)
}

// VaultSetAuthorityCmd 更换管理角色
func VaultSetAuthorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_authority",
		Short: "Replace the vault authority",
		Run:   vaultSetAuthority,
	}
	cmd.Flags().StringP("from", "f", "", "signer address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("authority", "a", "", "new authority address")
	cmd.MarkFlagRequired("authority")
	return cmd
}

func vaultSetAuthority(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	authority, _ := cmd.Flags().GetString("authority")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:           types.SolpotActionSetAuthority,
		SetAuthority: &types.VaultSetAuthority{Authority: authority},
	}, from)
}

// VaultSetWithdrawerCmd 更换提款角色
func VaultSetWithdrawerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_withdrawer",
		Short: "Replace the vault withdrawer",
		Run:   vaultSetWithdrawer,
	}
	cmd.Flags().StringP("from", "f", "", "signer address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("withdrawer", "w", "", "new withdrawer address")
	cmd.MarkFlagRequired("withdrawer")
	return cmd
}

func vaultSetWithdrawer(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	withdrawer, _ := cmd.Flags().GetString("withdrawer")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:            types.SolpotActionSetWithdrawer,
		SetWithdrawer: &types.VaultSetWithdrawer{Withdrawer: withdrawer},
	}, from)
}

// VaultWithdrawCmd 提取金库结余
func VaultWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw surplus above the reserve floor",
		Run:   vaultWithdraw,
	}
	cmd.Flags().StringP("from", "f", "", "signer address, must be the withdrawer")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("amount", "a", "", "amount in coins, e.g. 10.5")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func vaultWithdraw(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := parseCoinAmount(amountStr)
	if err != nil {
		printResult(nil, err)
	}

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:       types.SolpotActionWithdraw,
		Withdraw: &types.VaultWithdraw{Amount: amount},
	}, from)
}
