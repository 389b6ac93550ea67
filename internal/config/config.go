package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/jumpr/internal/shortpath"
)

// EnvConfigPath는 설정 파일 경로를 덮어쓰는 환경 변수다.
const EnvConfigPath = "JUMPR_CONFIG"

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

// Config는 jumpr 설정 파일의 최상위 구조체다.
type Config struct {
	WorldPath       *string  `json:"world_path" mapstructure:"world_path"`
	SrcPaths        []string `json:"src_paths" mapstructure:"src_paths"`
	DepthLimit      *int     `json:"depth_limit" mapstructure:"depth_limit"`
	FrecencyDBPath  string   `json:"frecency_db_path" mapstructure:"frecency_db_path"`
	IndexTTLMinutes int      `json:"index_ttl_minutes" mapstructure:"index_ttl_minutes"`
	Prompt          Prompt   `json:"prompt" mapstructure:"prompt"`
	Log             Log      `json:"log" mapstructure:"log"`
}

// Prompt는 shortpath 표시 설정이다.
type Prompt struct {
	Marker          string `json:"marker" mapstructure:"marker"`
	BranchSeparator string `json:"branch_separator" mapstructure:"branch_separator"`
	AbbrevWidth     int    `json:"abbrev_width" mapstructure:"abbrev_width"`
}

// Log는 파일 로그 설정이다.
type Log struct {
	FileEnabled bool `json:"file_enabled" mapstructure:"file_enabled"`
	MaxSizeMB   int  `json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups  int  `json:"max_backups" mapstructure:"max_backups"`
}

// Default는 기본 설정을 반환한다.
func Default() *Config {
	world := "~/world/trees"
	depth := 3
	style := shortpath.DefaultStyle()
	return &Config{
		WorldPath:       &world,
		SrcPaths:        []string{"~/src"},
		DepthLimit:      &depth,
		FrecencyDBPath:  filepath.Join(DataDir(), "frecency.db"),
		IndexTTLMinutes: 10,
		Prompt: Prompt{
			Marker:          style.Marker,
			BranchSeparator: style.BranchSeparator,
			AbbrevWidth:     style.AbbrevWidth,
		},
		Log: Log{MaxSizeMB: 5, MaxBackups: 2},
	}
}

// DefaultPath는 설정 파일 경로를 반환한다. JUMPR_CONFIG가 있으면 우선한다.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = ExpandPath("~/.config")
	}
	return filepath.Join(dir, "jumpr", "config.json")
}

// DataDir는 jumpr 데이터 디렉토리를 반환한다.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "jumpr")
	}
	return ExpandPath("~/.local/share/jumpr")
}

// ExpandPath는 ~ 로 시작하는 경로를 홈 디렉토리 기준으로 확장한다.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Style은 프롬프트 설정을 shortpath.Style로 변환한다.
func (c *Config) Style() shortpath.Style {
	return shortpath.Style{
		Marker:          c.Prompt.Marker,
		BranchSeparator: c.Prompt.BranchSeparator,
		AbbrevWidth:     c.Prompt.AbbrevWidth,
	}
}

// ScanDepth는 리포 탐색 깊이를 반환한다. 미설정이면 3이다.
func (c *Config) ScanDepth() int {
	if c.DepthLimit == nil {
		return 3
	}
	return *c.DepthLimit
}

// ScanRoots는 확장된 탐색 루트 목록(src_paths + world_path)을 반환한다.
func (c *Config) ScanRoots() []string {
	roots := make([]string, 0, len(c.SrcPaths)+1)
	for _, p := range c.SrcPaths {
		roots = append(roots, ExpandPath(p))
	}
	if c.WorldPath != nil && strings.TrimSpace(*c.WorldPath) != "" {
		roots = append(roots, ExpandPath(*c.WorldPath))
	}
	return roots
}

// ConfigHash는 리포 인덱스에 영향을 주는 설정의 지문이다.
func (c *Config) ConfigHash() string {
	h := sha256.New()
	fmt.Fprintf(h, "depth=%d\n", c.ScanDepth())
	for _, r := range c.ScanRoots() {
		fmt.Fprintf(h, "root=%s\n", r)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (c *Config) validate() error {
	for _, p := range c.SrcPaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("config.Load: 빈 src_paths 항목: %w", ErrConfig)
		}
	}
	if c.DepthLimit != nil && *c.DepthLimit < 0 {
		return fmt.Errorf("config.Load: depth_limit 음수 불가: %w", ErrConfig)
	}
	if c.Prompt.AbbrevWidth < 0 {
		return fmt.Errorf("config.Load: prompt.abbrev_width 음수 불가: %w", ErrConfig)
	}
	if c.IndexTTLMinutes < 0 {
		return fmt.Errorf("config.Load: index_ttl_minutes 음수 불가: %w", ErrConfig)
	}
	return nil
}
