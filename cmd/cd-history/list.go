package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MichaelCook/cd-history/internal/messages"
	"github.com/MichaelCook/cd-history/internal/terminal"
)

const defaultListLimit = 25

func newListCmd(configPath *string) *cobra.Command {
	var limit int
	var all bool
	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			entries := store.Entries()
			if !all && limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			useColor := terminal.ColorEnabled(cfg.Output.Color)
			for _, entry := range entries {
				line := entry
				if useColor {
					// Dead directories stand out so the user knows a
					// prune is due.
					if _, err := historySystem.Stat(entry); errors.Is(err, fs.ErrNotExist) {
						line = color.RedString(entry)
					}
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultListLimit, messages.ListFlagLimit)
	cmd.Flags().BoolVar(&all, "all", false, messages.ListFlagAll)
	return cmd
}
