package git

import (
	"os"
	"strings"

	"github.com/hbjs97/jumpr/internal/logger"
)

const headRefPrefix = "ref: refs/heads/"

// defaultBranches는 프롬프트에 표시하지 않는 기본 브랜치 이름이다.
var defaultBranches = map[string]bool{
	"main":   true,
	"master": true,
}

// ParseBranch는 HEAD 파일 내용에서 표시할 브랜치 이름을 추출한다.
// detached HEAD, 빈 이름, main/master는 false를 반환한다.
func ParseBranch(contents string) (string, bool) {
	name, found := strings.CutPrefix(strings.TrimSpace(contents), headRefPrefix)
	if !found {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" || defaultBranches[name] {
		return "", false
	}
	return name, true
}

// ReadBranch는 HEAD 파일을 읽어 ParseBranch를 적용한다. 읽기 실패는 false다.
func ReadBranch(headPath string) (string, bool) {
	data, err := os.ReadFile(headPath)
	if err != nil {
		logger.Debug().Err(err).Str("head", headPath).Msg("HEAD unreadable")
		return "", false
	}
	return ParseBranch(string(data))
}
