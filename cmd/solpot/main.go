// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/solpot/solpot/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solpot",
		Short: "solpot custodial lottery over a local ledger",
	}
	rootCmd.PersistentFlags().String("conf", "solpot.toml", "config file path")
	rootCmd.PersistentFlags().String("loglevel", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("loglevel")
		lvl, err := log.LvlFromString(level)
		if err != nil {
			lvl = log.LvlInfo
		}
		log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	}

	rootCmd.AddCommand(
		commands.VaultCmd(),
		commands.LotteryCmd(),
		commands.QueryCmd(),
		commands.AccountCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
