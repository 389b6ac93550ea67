package version

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// Version은 현재 바이너리 버전이다. 빌드 시 -ldflags로 덮어쓴다.
var Version = "0.6.0"

var (
	// ErrMismatch는 설치된 버전이 요구 조건을 만족하지 않을 때의 sentinel error다.
	ErrMismatch = errors.New("version mismatch")
	// ErrManifestNotFound는 경로처럼 보이는 요구 조건 파일이 없을 때의 sentinel error다.
	ErrManifestNotFound = errors.New("version file not found")
)

type manifest struct {
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
}

// ResolveRequirement는 --require-version 인자를 요구 조건 문자열로 바꾼다.
// 존재하는 .toml 파일이면 [package] version을 읽어 ^version을 반환하고,
// 경로처럼 보이지만 없는 파일이면 ErrManifestNotFound를 반환한다.
func ResolveRequirement(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() && filepath.Ext(arg) == ".toml" {
		return ReadManifest(arg)
	}
	if strings.ContainsAny(arg, `/\`) {
		return "", fmt.Errorf("version.ResolveRequirement: %s: %w", arg, ErrManifestNotFound)
	}
	return arg, nil
}

// ReadManifest는 TOML 매니페스트의 [package] version으로 caret 요구 조건을 만든다.
func ReadManifest(path string) (string, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return "", fmt.Errorf("version.ReadManifest: %w", err)
	}
	v := strings.TrimSpace(m.Package.Version)
	if v == "" {
		return "", fmt.Errorf("version.ReadManifest: %s: package.version 없음", path)
	}
	return "^" + v, nil
}

// Check는 current가 requirement를 만족하지 않으면 ErrMismatch를 반환한다.
func Check(current, requirement string) error {
	if Satisfies(current, requirement) {
		return nil
	}
	return fmt.Errorf("installed v%s, required %s: %w", current, requirement, ErrMismatch)
}

// Satisfies는 current가 쉼표로 구분된 모든 제약을 만족하는지 확인한다.
// 연산자 없는 버전은 caret(^)으로 취급하고, 와일드카드(*, 0.*, 0.6.*)를 허용한다.
// 파싱할 수 없는 버전이나 요구 조건은 false다.
func Satisfies(current, requirement string) bool {
	cur, err := semver.NewVersion(strings.TrimSpace(current))
	if err != nil {
		return false
	}
	req, ok := normalize(requirement)
	if !ok {
		return false
	}
	c, err := semver.NewConstraint(req)
	if err != nil {
		return false
	}
	return c.Check(cur)
}

// normalize는 빈 제약을 거부하고 연산자 없는 정확한 버전 앞에 ^를 붙인다.
func normalize(requirement string) (string, bool) {
	if strings.TrimSpace(requirement) == "" {
		return "", false
	}
	parts := strings.Split(requirement, ",")
	for i, raw := range parts {
		p := strings.TrimSpace(raw)
		if p == "" {
			return "", false
		}
		if isBare(p) {
			p = "^" + p
		}
		parts[i] = p
	}
	return strings.Join(parts, ", "), true
}

func isBare(p string) bool {
	core := strings.TrimPrefix(p, "v")
	if core == "" || core[0] < '0' || core[0] > '9' {
		return false
	}
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	return !strings.ContainsAny(core, "*xX")
}
