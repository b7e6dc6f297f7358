package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"glot/internal/settingsfile"
)

func newSettingsCommand() *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Settings file utilities",
	}

	settingsCmd.AddCommand(newSettingsInitCommand())

	return settingsCmd
}

func newSettingsInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a sample settings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = strings.TrimSpace(args[0])
			}
			if target == "" {
				dir, err := settingsfile.DefaultDir()
				if err != nil {
					return fmt.Errorf("determine settings directory: %w", err)
				}
				target = filepath.Join(dir, "settings.toml")
			} else {
				expanded, err := settingsfile.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := settingsfile.CreateSample(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing settings if present")
	return cmd
}
