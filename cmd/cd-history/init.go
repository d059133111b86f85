package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MichaelCook/cd-history/internal/config"
	"github.com/MichaelCook/cd-history/internal/fsutil"
	"github.com/MichaelCook/cd-history/internal/messages"
	"github.com/MichaelCook/cd-history/internal/templates"
	"github.com/MichaelCook/cd-history/internal/terminal"
)

// Seams for test stubbing: init prompts require a terminal.
var (
	isInteractive    = terminal.IsInteractive
	confirmOverwrite = func(title string) (bool, error) {
		var confirmed bool
		err := huh.NewConfirm().Title(title).Value(&confirmed).Run()
		return confirmed, err
	}
)

func newInitCmd(configPath *string) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configPath
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			template, err := templates.Read("config.toml")
			if err != nil {
				return fmt.Errorf(messages.ConfigFailedReadTemplateFmt, err)
			}
			out := cmd.OutOrStdout()

			existing, err := os.ReadFile(path)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				return writeConfig(out, path, template)
			case err != nil:
				return fmt.Errorf(messages.InitReadExistingFailFmt, path, err)
			}

			if string(existing) == string(template) {
				_, _ = fmt.Fprintf(out, messages.InitUpToDateFmt+"\n", path)
				return nil
			}
			if !force {
				diff := strings.TrimSpace(udiff.Unified(path, "default", string(existing), string(template)))
				_, _ = fmt.Fprintf(out, messages.InitDiffHeaderFmt+"\n%s\n", path, diff)
				if !isInteractive() {
					return errors.New(messages.InitRequiresTerminal)
				}
				confirmed, err := confirmOverwrite(fmt.Sprintf(messages.InitOverwritePromptFmt, path))
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(out, messages.InitAborted)
					return nil
				}
			}
			return writeConfig(out, path, template)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	return cmd
}

// writeConfig writes the default config to path, creating parent directories.
func writeConfig(out io.Writer, path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.CreateDirFailedFmt, filepath.Dir(path), err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.InitWroteFmt+"\n", path)
	return nil
}
