package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// EnsureDefault는 path에 설정 파일이 없으면 기본 설정을 기록한다.
// 여러 셸이 동시에 시작해도 한 번만 생성되도록 파일 잠금을 사용한다.
// 파일을 새로 만들었으면 true를 반환한다.
func EnsureDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return false, fmt.Errorf("config.EnsureDefault: %w", err)
	}

	fl := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return false, fmt.Errorf("config.EnsureDefault: 잠금 실패: %w", err)
	}
	if !locked {
		return false, fmt.Errorf("config.EnsureDefault: 잠금 시간 초과: %s", path)
	}
	defer func() { _ = fl.Unlock() }()

	// 잠금 대기 중 다른 프로세스가 만들었을 수 있다.
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("config.EnsureDefault: %w", err)
	}

	if err := Save(path, Default()); err != nil {
		return false, err
	}
	return true, nil
}

// Save는 설정을 들여쓴 JSON으로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}
