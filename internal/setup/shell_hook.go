package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/jumpr/internal/shell"
)

// hookMarker는 RC 파일에 이미 설치되었는지 판별하는 주석이다.
const hookMarker = "# jumpr shell integration"

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(shellType string) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "jumpr.fish")
	default:
		return ""
	}
}

// IsHookInstalled는 rcPath에 jumpr hook이 있는지 확인한다.
func IsHookInstalled(rcPath string) bool {
	existing, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(existing), hookMarker)
}

// InstallShellHook은 셸 RC 파일에 jumpr hook을 추가한다.
// 이미 설치되어 있으면 건너뛰고 false를 반환한다.
func InstallShellHook(shellType, rcPath, exePath string) (bool, error) {
	line := shell.HookLine(shellType, exePath)
	if line == "" {
		return false, fmt.Errorf("setup.InstallShellHook: %s: %w", shellType, shell.ErrUnsupportedShell)
	}
	if IsHookInstalled(rcPath) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s\n%s\n", hookMarker, line); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	return true, nil
}
