package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Load는 기본값 위에 설정 파일의 null이 아닌 키를 덮어쓴 Config를 반환한다.
// 파일이 없으면 기본값을 반환한다.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: 읽기 실패: %w: %w", ErrConfig, err)
	}

	var overrides map[string]any
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("config.Load: 파싱 실패: %w: %w", ErrConfig, err)
	}

	if err := apply(cfg, dropNulls(overrides)); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply는 overrides를 cfg에 디코딩한다. overrides에 없는 필드는 기본값을 유지한다.
func apply(cfg *Config, overrides map[string]any) error {
	// 슬라이스는 병합하지 않고 통째로 교체한다.
	if _, ok := overrides["src_paths"]; ok {
		cfg.SrcPaths = nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("config.Load: 잘못된 값: %w: %w", ErrConfig, err)
	}
	return nil
}

// dropNulls는 null 값을 재귀적으로 제거한다.
func dropNulls(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			continue
		case map[string]any:
			out[k] = dropNulls(val)
		default:
			out[k] = v
		}
	}
	return out
}
