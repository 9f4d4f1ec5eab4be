// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/linkscout/internal/history"
	"github.com/pdiddy/linkscout/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the run-history database",
	Long: `History queries the SQLite database that generate writes when run with
--history-db. Use subcommands to list recorded rows or clear the database.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded rows, most recent first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	emailFilter, _ := cmd.Flags().GetString("email")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.List(context.Background(), history.ListOptions{
		Email:      emailFilter,
		MaxResults: limit,
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No history entries.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-32s  %-16s  %s\n", "Email", "Surname hint", "Recorded")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 72))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-32s  %-16s  %s\n", e.Email, e.SurnameHint, e.Created)
	}
	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded rows and runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory(cmd)
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

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	dbPath := setting(cmd, "db", "history_db", "")
	if dbPath == "" {
		return nil, fmt.Errorf("history database required: pass --db or set history_db in the config file")
	}
	return history.Open(types.HistoryConfig{DBPath: dbPath})
}

func init() {
	historyCmd.PersistentFlags().String("db", "", "SQLite history database path")

	historyListCmd.Flags().String("email", "", "filter by email substring")
	historyListCmd.Flags().Int("limit", 0, "maximum entries (0 = default)")
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
