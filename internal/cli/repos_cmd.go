package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hbjs97/jumpr/internal/config"
	"github.com/hbjs97/jumpr/internal/repos"
	"github.com/spf13/cobra"
)

func cachePath() string {
	return filepath.Join(config.DataDir(), "repos.json")
}

// listRepos는 설정된 루트의 리포 목록을 인덱스 캐시를 거쳐 반환한다.
func (a *App) listRepos(ctx context.Context, refresh bool) ([]string, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	ix := &repos.Index{
		CachePath:  cachePath(),
		ConfigHash: cfg.ConfigHash(),
		TTL:        time.Duration(cfg.IndexTTLMinutes) * time.Minute,
		DepthLimit: cfg.ScanDepth(),
	}
	return ix.List(ctx, cfg.ScanRoots(), refresh)
}

func (a *App) newReposCmd() *cobra.Command {
	var refresh, names bool
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "탐색 루트 아래의 리포지토리를 나열한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.listRepos(cmd.Context(), refresh)
			if err != nil {
				return err
			}
			if names {
				list = baseNames(list)
			}
			out := cmd.OutOrStdout()
			for _, r := range list {
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "캐시를 무시하고 다시 탐색")
	cmd.Flags().BoolVar(&names, "names", false, "중복 없는 리포지토리 이름만 출력")
	return cmd
}

func (a *App) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find QUERY...",
		Short: "이름이 가장 잘 맞는 리포지토리 경로를 출력한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.listRepos(cmd.Context(), false)
			if err != nil {
				return err
			}
			target, err := repos.Find(list, args)
			if err != nil {
				return fmt.Errorf("cli.find: %s: %w", strings.Join(args, " "), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func baseNames(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var names []string
	for _, p := range paths {
		n := filepath.Base(p)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
