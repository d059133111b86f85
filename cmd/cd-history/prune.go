package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MichaelCook/cd-history/internal/messages"
)

func newPruneCmd(configPath *string) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   messages.PruneUse,
		Short: messages.PruneShort,
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
			dropped := store.Prune(historySystem)
			out := cmd.OutOrStdout()
			if len(dropped) == 0 {
				_, _ = fmt.Fprintln(out, messages.PruneNothingToDo)
				return nil
			}
			if dryRun {
				_, _ = fmt.Fprintln(out, messages.PruneWouldDrop)
				for _, dir := range dropped {
					_, _ = fmt.Fprintf(out, "  %s\n", dir)
				}
				return nil
			}
			if err := store.Save(historySystem); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.PruneDroppedFmt+"\n", len(dropped))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.PruneFlagDryRun)
	return cmd
}
