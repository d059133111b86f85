package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MichaelCook/cd-history/internal/messages"
)

func newAddCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.AddUse,
		Short: messages.AddShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			} else {
				dir, err = getwd()
				if err != nil {
					return err
				}
			}
			resolver, err := newPathResolver()
			if err != nil {
				return err
			}
			resolved, err := resolver.Resolve(dir)
			if err != nil {
				return err
			}
			info, err := historySystem.Stat(resolved)
			if err != nil || !info.IsDir() {
				return fmt.Errorf(messages.AddNotADirectoryFmt, resolved)
			}
			// Ignored directories are skipped without complaint so shell
			// prompt hooks stay quiet.
			if cfg.Ignored(resolved) {
				return nil
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			store.Add(resolved, cfg.History.MaxEntries)
			return store.Save(historySystem)
		},
	}
	return cmd
}
