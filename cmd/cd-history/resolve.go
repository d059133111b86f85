package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MichaelCook/cd-history/internal/messages"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ResolveUse,
		Short: messages.ResolveShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := newPathResolver()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"."}
			}
			for _, arg := range args {
				resolved, err := resolver.Resolve(arg)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), resolved)
			}
			return nil
		},
	}
	return cmd
}
