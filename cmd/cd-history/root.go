package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MichaelCook/cd-history/internal/abspath"
	"github.com/MichaelCook/cd-history/internal/config"
	"github.com/MichaelCook/cd-history/internal/history"
	"github.com/MichaelCook/cd-history/internal/messages"
)

// pathResolver is the part of abspath.Resolver the commands need.
type pathResolver interface {
	Resolve(path string) (string, error)
}

// Package-level seams for test stubbing.
var getwd = os.Getwd
var historySystem history.System = history.RealSystem{}
var newPathResolver = func() (pathResolver, error) {
	return abspath.New()
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", messages.RootConfigFlag)
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newAddCmd(&configPath))
	cmd.AddCommand(newListCmd(&configPath))
	cmd.AddCommand(newPruneCmd(&configPath))
	cmd.AddCommand(newInitCmd(&configPath))
	return cmd
}

// loadConfig loads the config from the --config override or the default location.
func loadConfig(override string) (*config.Config, error) {
	path := override
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return config.Load(path)
}

// openStore loads the configured history file.
func openStore(cfg *config.Config) (*history.Store, error) {
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, err
	}
	return history.Load(historySystem, path)
}
