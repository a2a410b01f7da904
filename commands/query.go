// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/solpot/solpot/types"
)

// QueryCmd 只读查询
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read-only queries",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryVaultCmd(),
		QueryLotteryCmd(),
		QueryBalanceCmd(),
		QueryListCmd(),
		QueryBuysCmd(),
		QueryDrawCmd(),
	)
	return cmd
}

// QueryVaultCmd 金库信息
func QueryVaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vault",
		Short: "Show the vault roles",
		Run: func(cmd *cobra.Command, args []string) {
			rt := openRuntime(cmd)
			defer rt.Close()
			printResult(rt.Query("GetVaultInfo", nil))
		},
	}
}

// QueryLotteryCmd 彩票信息
func QueryLotteryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lottery",
		Short: "Show one lottery record",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")
			rt := openRuntime(cmd)
			defer rt.Close()
			printResult(rt.Query("GetLotteryInfo", &types.ReqLotteryInfo{Name: name}))
		},
	}
	cmd.Flags().StringP("name", "n", "", "lottery name")
	cmd.MarkFlagRequired("name")
	return cmd
}

// QueryBalanceCmd 当前奖池
func QueryBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current pool of one lottery",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")
			rt := openRuntime(cmd)
			defer rt.Close()
			printResult(rt.Query("GetLotteryBalance", &types.ReqLotteryInfo{Name: name}))
		},
	}
	cmd.Flags().StringP("name", "n", "", "lottery name")
	cmd.MarkFlagRequired("name")
	return cmd
}

// QueryListCmd 按状态列举彩票
func QueryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lotteries by status (1 pending, 2 active, 3 ended, 4 claimed)",
		Run: func(cmd *cobra.Command, args []string) {
			status, _ := cmd.Flags().GetInt32("status")
			rt := openRuntime(cmd)
			defer rt.Close()
			printResult(rt.Query("ListLotteries", &types.ReqLotteryStatus{Status: status}))
		},
	}
	cmd.Flags().Int32P("status", "s", types.LotteryActive, "lottery status")
	return cmd
}

// QueryBuysCmd 某轮购票流水
func QueryBuysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buys",
		Short: "List ticket purchases of one round",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")
			round, _ := cmd.Flags().GetInt64("round")
			rt := openRuntime(cmd)
			defer rt.Close()
			printResult(rt.Query("GetLotteryBuyRecords", &types.ReqLotteryRound{Name: name, Round: round}))
		},
	}
	cmd.Flags().StringP("name", "n", "", "lottery name")
	cmd.MarkFlagRequired("name")
	cmd.Flags().Int64P("round", "r", 1, "round number")
	return cmd
}

// QueryDrawCmd 某轮开奖结果
func QueryDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Show the draw result of one round",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")
			round, _ := cmd.Flags().GetInt64("round")
			rt := openRuntime(cmd)
			defer rt.Close()
			printResult(rt.Query("GetLotteryDrawRecord", &types.ReqLotteryRound{Name: name, Round: round}))
		},
	}
	cmd.Flags().StringP("name", "n", "", "lottery name")
	cmd.MarkFlagRequired("name")
	cmd.Flags().Int64P("round", "r", 1, "round number")
	return cmd
}
