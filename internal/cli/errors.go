package cli

import (
	"github.com/hbjs97/jumpr/internal/config"
	"github.com/hbjs97/jumpr/internal/repos"
	"github.com/hbjs97/jumpr/internal/shell"
	"github.com/hbjs97/jumpr/internal/version"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrVersionMismatch는 설치된 버전이 요구 조건을 만족하지 않을 때의 sentinel error다.
	ErrVersionMismatch = version.ErrMismatch
	// ErrManifestNotFound는 --require-version 파일이 없을 때의 sentinel error다.
	ErrManifestNotFound = version.ErrManifestNotFound
	// ErrNotFound는 리포지토리를 찾지 못했을 때의 sentinel error다.
	ErrNotFound = repos.ErrNotFound
	// ErrUnsupportedShell는 지원하지 않는 셸일 때의 sentinel error다.
	ErrUnsupportedShell = shell.ErrUnsupportedShell
)
