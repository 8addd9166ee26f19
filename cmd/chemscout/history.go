// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moleculab/chemscout/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear the local search history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent searches, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Load(context.Background(), limit)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No search history.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-24s  %-32s  CID %s\n",
			e.SearchedAt.Local().Format("2006-01-02 15:04"),
			e.InputName, e.MatchedName, e.CID)
	}
	return nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all search history",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 10, "maximum number of entries to show")
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
