package cli

import (
	"fmt"

	"github.com/hbjs97/jumpr/internal/version"
	"github.com/spf13/cobra"
)

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "버전을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "jumpr %s\n", version.Version)
			return nil
		},
	}
}
