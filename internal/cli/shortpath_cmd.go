package cli

import (
	"fmt"

	"github.com/hbjs97/jumpr/internal/git"
	"github.com/hbjs97/jumpr/internal/logger"
	"github.com/hbjs97/jumpr/internal/shortpath"
	"github.com/spf13/cobra"
)

func (a *App) newShortpathCmd() *cobra.Command {
	var (
		project  bool
		pathOnly bool
		depth    int
	)
	cmd := &cobra.Command{
		Use:   "shortpath [PATH]",
		Short: "프롬프트용 축약 경로를 출력한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.targetPath(args)
			if err != nil {
				return fmt.Errorf("cli.shortpath: %w", err)
			}
			style := shortpath.DefaultStyle()
			if cfg, err := a.loadConfig(); err != nil {
				logger.Warn().Err(err).Msg("config unusable, rendering with default style")
			} else {
				style = cfg.Style()
			}

			parts := shortpath.AllParts
			switch {
			case project:
				parts = []shortpath.Part{shortpath.Prefix}
			case pathOnly:
				parts = []shortpath.Part{shortpath.Infix, shortpath.Suffix}
			}

			sp := shortpath.DecomposeWithStyle(path, style)
			fmt.Fprintln(cmd.OutOrStdout(), sp.Build(depth, parts))
			return nil
		},
	}
	cmd.Flags().BoolVar(&project, "project", false, "리포지토리 구역만 출력")
	cmd.Flags().BoolVar(&pathOnly, "path", false, "경로 구역(infix, suffix)만 출력")
	cmd.Flags().IntVar(&depth, "depth", 1, "축약하지 않을 마지막 요소 수")
	cmd.MarkFlagsMutuallyExclusive("project", "path")
	return cmd
}

func (a *App) newRootDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root [PATH]",
		Short: "PATH가 속한 리포지토리 디렉토리를 출력한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.targetPath(args)
			if err != nil {
				return fmt.Errorf("cli.root: %w", err)
			}
			anchor, ok := git.FindAnchor(path)
			if !ok {
				return fmt.Errorf("cli.root: %s: %w", path, ErrNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), anchor.Dir)
			return nil
		},
	}
}
