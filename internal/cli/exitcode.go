package cli

import (
	"errors"
)

// ExitCode는 jumpr의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 2
	// ExitVersionMismatch는 shell-init 버전 요구 조건 불일치다.
	ExitVersionMismatch ExitCode = 3
	// ExitNotFound는 리포지토리를 찾지 못한 경우다.
	ExitNotFound ExitCode = 4
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrVersionMismatch), errors.Is(err, ErrManifestNotFound):
		return ExitVersionMismatch
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneral
	}
}
