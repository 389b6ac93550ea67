package repos

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hbjs97/jumpr/internal/git"
	"github.com/hbjs97/jumpr/internal/logger"
)

// Scan은 각 루트를 동시에 탐색해 정렬된 리포지토리 경로 목록을 반환한다.
// 존재하지 않는 루트는 건너뛴다.
func Scan(ctx context.Context, roots []string, depthLimit int) ([]string, error) {
	byRoot, err := scanAll(ctx, roots, depthLimit)
	if err != nil {
		return nil, err
	}
	var all []string
	for _, found := range byRoot {
		all = append(all, found...)
	}
	return dedupe(all), nil
}

func scanAll(ctx context.Context, roots []string, depthLimit int) (map[string][]string, error) {
	var mu sync.Mutex
	byRoot := make(map[string][]string, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for _, root := range roots {
		g.Go(func() error {
			found, err := ScanRoot(ctx, root, depthLimit)
			if err != nil {
				return err
			}
			mu.Lock()
			byRoot[root] = found
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return byRoot, nil
}

// ScanRoot는 root 아래 depthLimit 단계까지 .git 엔트리가 있는 디렉토리를 찾는다.
// 찾은 리포 내부와 숨김 디렉토리로는 내려가지 않는다.
func ScanRoot(ctx context.Context, root string, depthLimit int) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		logger.Debug().Str("root", root).Msg("scan root unavailable")
		return nil, nil
	}

	var found []string
	var walk func(dir string, level int) error
	walk = func(dir string, level int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if git.Classify(dir) != git.EntryNone {
			found = append(found, dir)
			return nil
		}
		if level >= depthLimit {
			return nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug().Err(err).Str("dir", dir).Msg("scan skipped directory")
			return nil
		}
		for _, e := range entries {
			if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			if err := walk(filepath.Join(dir, e.Name()), level+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root, 0); err != nil {
		return nil, err
	}
	logger.Debug().Str("root", root).Int("repos", len(found)).Msg("scanned")
	return found, nil
}

func dedupe(paths []string) []string {
	sort.Strings(paths)
	out := paths[:0]
	for i, p := range paths {
		if i > 0 && p == paths[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
