package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/jumpr/internal/cmdexec"
	"github.com/hbjs97/jumpr/internal/config"
	"github.com/hbjs97/jumpr/internal/setup"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfig는 설정 파일을 로드할 수 있는지 확인한다.
func CheckConfig(path string) (*config.Config, DiagResult) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s 수정 또는 jumpr config init 실행", path),
		}
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음, 기본값 사용", path),
			Fix:     "jumpr config init 실행",
		}
	}
	return cfg, DiagResult{Name: "config", Status: StatusOK, Message: path}
}

// CheckGit는 git 바이너리 존재 여부를 확인한다. jumpr 자체는 git 없이 동작하므로 경고만 한다.
func CheckGit(ctx context.Context, cmd cmdexec.Commander) DiagResult {
	out, err := cmd.Run(ctx, "git", "--version")
	if err != nil {
		return DiagResult{
			Name:    "git",
			Status:  StatusWarn,
			Message: "git 없음",
			Fix:     "설치: https://git-scm.com/downloads",
		}
	}
	return DiagResult{Name: "git", Status: StatusOK, Message: strings.TrimSpace(string(out))}
}

// CheckScanRoots는 각 탐색 루트가 디렉토리로 존재하는지 확인한다.
func CheckScanRoots(cfg *config.Config) []DiagResult {
	var results []DiagResult
	for _, root := range cfg.ScanRoots() {
		info, err := os.Stat(root)
		switch {
		case err != nil:
			results = append(results, DiagResult{
				Name:    "root",
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 없음", root),
				Fix:     "src_paths/world_path 확인",
			})
		case !info.IsDir():
			results = append(results, DiagResult{
				Name:    "root",
				Status:  StatusFail,
				Message: fmt.Sprintf("%s 디렉토리 아님", root),
				Fix:     "src_paths/world_path 확인",
			})
		default:
			results = append(results, DiagResult{Name: "root", Status: StatusOK, Message: root})
		}
	}
	return results
}

// CheckShellHook은 셸 RC 파일에 hook이 설치되었는지 확인한다.
func CheckShellHook(shellType, rcPath string) DiagResult {
	if rcPath == "" {
		return DiagResult{
			Name:    "shell",
			Status:  StatusWarn,
			Message: fmt.Sprintf("지원하지 않는 셸: %q", shellType),
			Fix:     "jumpr setup --shell fish|zsh|bash",
		}
	}
	if !setup.IsHookInstalled(rcPath) {
		return DiagResult{
			Name:    "shell",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s에 hook 없음", rcPath),
			Fix:     fmt.Sprintf("jumpr setup --shell %s", shellType),
		}
	}
	return DiagResult{Name: "shell", Status: StatusOK, Message: rcPath}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath, shellType, rcPath string) []DiagResult {
	cfg, cfgResult := CheckConfig(cfgPath)
	results := []DiagResult{cfgResult, CheckGit(ctx, cmd)}
	if cfg != nil {
		results = append(results, CheckScanRoots(cfg)...)
	}
	return append(results, CheckShellHook(shellType, rcPath))
}
