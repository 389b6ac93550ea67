package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache는 탐색 루트별 리포지토리 목록 캐시다.
type Cache struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Entry는 하나의 탐색 루트에 대한 캐시 항목이다.
type Entry struct {
	Repos      []string `json:"repos"`
	ScannedAt  string   `json:"scanned_at"`
	ConfigHash string   `json:"config_hash"`
}

// New는 빈 캐시를 생성한다.
func New() *Cache {
	return &Cache{Version: 1, Entries: make(map[string]Entry)}
}

// Load는 캐시 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 캐시 반환 (graceful).
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache.Load: %w", err)
	}
	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return New(), nil
	}
	if c.Entries == nil {
		c.Entries = make(map[string]Entry)
	}
	return &c, nil
}

// Lookup은 루트로 캐시를 조회한다. TTL과 config_hash가 유효해야 hit.
func (c *Cache) Lookup(root, configHash string, ttl time.Duration) (*Entry, bool) {
	e, ok := c.Entries[root]
	if !ok {
		return nil, false
	}
	if e.ConfigHash != configHash {
		return nil, false
	}
	scanned, err := time.Parse(time.RFC3339, e.ScannedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(scanned) > ttl {
		return nil, false
	}
	return &e, true
}

// Set은 캐시 항목을 추가하거나 갱신한다.
func (c *Cache) Set(root string, entry Entry) {
	c.Entries[root] = entry
}

// Save는 캐시를 JSON 파일로 저장한다 (0600 권한).
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Prune은 roots에 없는 루트의 항목을 제거한다.
func (c *Cache) Prune(roots []string) {
	keep := make(map[string]bool, len(roots))
	for _, r := range roots {
		keep[r] = true
	}
	for root := range c.Entries {
		if !keep[root] {
			delete(c.Entries, root)
		}
	}
}
