// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/solpot/solpot/types"
)

// LotteryCmd 彩票管理
func LotteryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lottery",
		Short: "Lottery lifecycle operations",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		LotteryCreateCmd(),
		LotterySetFeeCmd(),
		LotterySetPriceCmd(),
		LotterySetTimeCmd(),
		LotteryBuyCmd(),
		LotteryEndCmd(),
		LotteryClaimCmd(),
		LotteryResetCmd(),
	)
	return cmd
}

func addNameFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "signer address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("name", "n", "", "lottery name")
	cmd.MarkFlagRequired("name")
}

// LotteryCreateCmd 创建彩票
func LotteryCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a named lottery, authority only",
		Run:   lotteryCreate,
	}
	addNameFlags(cmd)
	cmd.Flags().StringP("price", "p", "", "ticket price in coins")
	cmd.MarkFlagRequired("price")
	cmd.Flags().Int64P("max", "m", 0, "ticket capacity")
	cmd.MarkFlagRequired("max")
	cmd.Flags().Int64P("start", "s", 0, "sale start, unix seconds")
	cmd.MarkFlagRequired("start")
	cmd.Flags().Int64P("end", "e", 0, "sale end, unix seconds")
	cmd.MarkFlagRequired("end")
	cmd.Flags().Int64P("fee", "c", 0, "house fee percentage [0,100]")
	return cmd
}

func lotteryCreate(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")
	priceStr, _ := cmd.Flags().GetString("price")
	max, _ := cmd.Flags().GetInt64("max")
	start, _ := cmd.Flags().GetInt64("start")
	end, _ := cmd.Flags().GetInt64("end")
	fee, _ := cmd.Flags().GetInt64("fee")

	price, err := parseCoinAmount(priceStr)
	if err != nil {
		printResult(nil, err)
	}
	sendAndPrint(cmd, &types.SolpotAction{
		Ty: types.SolpotActionCreate,
		Create: &types.LotteryCreate{
			Name:        name,
			TicketPrice: price,
			MaxTickets:  max,
			StartTime:   start,
			EndTime:     end,
			Fee:         fee,
		},
	}, from)
}

// LotterySetFeeCmd 调整抽成
func LotterySetFeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_fee",
		Short: "Change the house fee while pending",
		Run:   lotterySetFee,
	}
	addNameFlags(cmd)
	cmd.Flags().Int64P("fee", "c", 0, "house fee percentage [0,100]")
	cmd.MarkFlagRequired("fee")
	return cmd
}

func lotterySetFee(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")
	fee, _ := cmd.Flags().GetInt64("fee")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:     types.SolpotActionSetFee,
		SetFee: &types.LotterySetFee{Name: name, Fee: fee},
	}, from)
}

// LotterySetPriceCmd 调整票价
func LotterySetPriceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_price",
		Short: "Change the ticket price while pending",
		Run:   lotterySetPrice,
	}
	addNameFlags(cmd)
	cmd.Flags().StringP("price", "p", "", "ticket price in coins")
	cmd.MarkFlagRequired("price")
	return cmd
}

func lotterySetPrice(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")
	priceStr, _ := cmd.Flags().GetString("price")

	price, err := parseCoinAmount(priceStr)
	if err != nil {
		printResult(nil, err)
	}
	sendAndPrint(cmd, &types.SolpotAction{
		Ty:             types.SolpotActionSetTicketPrice,
		SetTicketPrice: &types.LotterySetTicketPrice{Name: name, TicketPrice: price},
	}, from)
}

// LotterySetTimeCmd 调整时间窗
func LotterySetTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_time",
		Short: "Change the sale window while pending",
		Run:   lotterySetTime,
	}
	addNameFlags(cmd)
	cmd.Flags().Int64P("start", "s", 0, "sale start, unix seconds")
	cmd.MarkFlagRequired("start")
	cmd.Flags().Int64P("end", "e", 0, "sale end, unix seconds")
	cmd.MarkFlagRequired("end")
	return cmd
}

func lotterySetTime(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")
	start, _ := cmd.Flags().GetInt64("start")
	end, _ := cmd.Flags().GetInt64("end")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:      types.SolpotActionSetTime,
		SetTime: &types.LotterySetTime{Name: name, StartTime: start, EndTime: end},
	}, from)
}

// LotteryBuyCmd 购票
func LotteryBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy one ticket",
		Run:   lotteryBuy,
	}
	addNameFlags(cmd)
	return cmd
}

func lotteryBuy(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:  types.SolpotActionBuy,
		Buy: &types.LotteryBuy{Name: name},
	}, from)
}

// LotteryEndCmd 收盘开奖
func LotteryEndCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "end",
		Short: "Close the sale and draw, authority only",
		Run:   lotteryEnd,
	}
	addNameFlags(cmd)
	return cmd
}

func lotteryEnd(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:  types.SolpotActionEnd,
		End: &types.LotteryEnd{Name: name},
	}, from)
}

// LotteryClaimCmd 领奖
func LotteryClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the prize, winner only",
		Run:   lotteryClaim,
	}
	addNameFlags(cmd)
	return cmd
}

func lotteryClaim(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:    types.SolpotActionClaim,
		Claim: &types.LotteryClaim{Name: name},
	}, from)
}

// LotteryResetCmd 重置进入下一轮
func LotteryResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset a concluded lottery for a new round, authority only",
		Run:   lotteryReset,
	}
	addNameFlags(cmd)
	cmd.Flags().Int64P("start", "s", 0, "new sale start, unix seconds")
	cmd.MarkFlagRequired("start")
	cmd.Flags().Int64P("end", "e", 0, "new sale end, unix seconds")
	cmd.MarkFlagRequired("end")
	return cmd
}

func lotteryReset(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	name, _ := cmd.Flags().GetString("name")
	start, _ := cmd.Flags().GetInt64("start")
	end, _ := cmd.Flags().GetInt64("end")

	sendAndPrint(cmd, &types.SolpotAction{
		Ty:    types.SolpotActionReset,
		Reset: &types.LotteryReset{Name: name, StartTime: start, EndTime: end},
	}, from)
}
