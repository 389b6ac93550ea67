package repos

import (
	"context"
	"time"

	"github.com/hbjs97/jumpr/internal/cache"
	"github.com/hbjs97/jumpr/internal/logger"
)

// Index는 루트별 탐색 결과를 캐시 파일에 보관한다.
type Index struct {
	CachePath  string
	ConfigHash string
	TTL        time.Duration
	DepthLimit int
}

// List는 roots의 리포 목록을 반환한다. refresh가 false면 유효한 캐시 항목을 재사용한다.
// 캐시 저장 실패는 치명적이지 않다.
func (ix *Index) List(ctx context.Context, roots []string, refresh bool) ([]string, error) {
	c, err := cache.Load(ix.CachePath)
	if err != nil {
		logger.Debug().Err(err).Msg("index cache unreadable")
		c = cache.New()
	}

	var all []string
	var stale []string
	for _, root := range roots {
		if !refresh {
			if e, ok := c.Lookup(root, ix.ConfigHash, ix.TTL); ok {
				all = append(all, e.Repos...)
				continue
			}
		}
		stale = append(stale, root)
	}

	if len(stale) > 0 {
		byRoot, err := scanAll(ctx, stale, ix.DepthLimit)
		if err != nil {
			return nil, err
		}
		now := time.Now().Format(time.RFC3339)
		for _, root := range stale {
			c.Set(root, cache.Entry{
				Repos:      byRoot[root],
				ScannedAt:  now,
				ConfigHash: ix.ConfigHash,
			})
			all = append(all, byRoot[root]...)
		}
		c.Prune(roots)
		if err := c.Save(ix.CachePath); err != nil {
			logger.Debug().Err(err).Msg("index cache not saved")
		}
	}
	return dedupe(all), nil
}
