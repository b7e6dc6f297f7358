package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"glot/internal/history"
	"glot/internal/settingsfile"
	"glot/internal/textutil"
)

func newHistoryCommand() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Translation history utilities",
	}

	historyCmd.AddCommand(newHistoryListCommand())

	return historyCmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent translation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dbPath
			if path == "" {
				dir, err := settingsfile.DefaultDir()
				if err != nil {
					return fmt.Errorf("determine history location: %w", err)
				}
				path = filepath.Join(dir, "history.db")
			}

			store, err := history.Open(path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "History is empty")
				return nil
			}

			headers := []string{"When", "Type", "Model", "Lang", "Source", "Result"}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.CreatedAt.UTC().Format("2006-01-02 15:04"),
					string(entry.Kind),
					entry.Model,
					entry.TargetLang,
					textutil.Preview(entry.Source),
					textutil.Preview(entry.Result),
				})
			}
			fmt.Fprintln(out, renderHistoryTable(headers, rows, shouldRenderPretty(out)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	cmd.Flags().StringVar(&dbPath, "db", "", "History database path")
	return cmd
}
