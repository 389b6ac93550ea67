package shell

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	// ErrUnsupportedShell는 템플릿이 없는 셸 유형일 때의 sentinel error다.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrInvalidName은 함수 이름으로 쓸 수 없는 명령 이름일 때의 sentinel error다.
	ErrInvalidName = errors.New("invalid command name")
)

// Supported는 지원하는 셸 목록이다.
var Supported = []string{"fish", "zsh", "bash"}

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Options는 셸 코드 생성 파라미터다.
type Options struct {
	// ExePath는 생성된 함수가 호출할 jumpr 실행 파일 경로다.
	ExePath string
	// Navigate는 디렉토리 이동 함수 이름이다 (기본 j).
	Navigate string
	// Code는 에디터 실행 함수 이름이다 (기본 jc).
	Code string
}

func (o Options) withDefaults() Options {
	if o.ExePath == "" {
		o.ExePath = "jumpr"
	}
	if o.Navigate == "" {
		o.Navigate = "j"
	}
	if o.Code == "" {
		o.Code = "jc"
	}
	return o
}

type templateData struct {
	Exe      string
	Navigate string
	Code     string
}

// Render는 shellType용 통합 코드를 생성한다.
func Render(shellType string, opts Options) (string, error) {
	if !IsSupported(shellType) {
		return "", fmt.Errorf("shell.Render: %s: %w", shellType, ErrUnsupportedShell)
	}
	opts = opts.withDefaults()
	for _, name := range []string{opts.Navigate, opts.Code} {
		if !namePattern.MatchString(name) {
			return "", fmt.Errorf("shell.Render: %q: %w", name, ErrInvalidName)
		}
	}

	tmpl, err := template.ParseFS(templateFS, "templates/"+shellType+".tmpl")
	if err != nil {
		return "", fmt.Errorf("shell.Render: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, templateData{
		Exe:      Quote(shellType, opts.ExePath),
		Navigate: opts.Navigate,
		Code:     opts.Code,
	})
	if err != nil {
		return "", fmt.Errorf("shell.Render: %w", err)
	}
	return buf.String(), nil
}

// HookLine은 셸 RC 파일에 추가할 한 줄을 반환한다. 지원하지 않는 셸이면 빈 문자열이다.
func HookLine(shellType, exePath string) string {
	if !IsSupported(shellType) {
		return ""
	}
	exe := Quote(shellType, exePath)
	if shellType == "fish" {
		return fmt.Sprintf("%s shell-init --shell fish | source", exe)
	}
	return fmt.Sprintf(`eval "$(%s shell-init --shell %s)"`, exe, shellType)
}

// IsSupported는 shellType의 템플릿이 있는지 확인한다.
func IsSupported(shellType string) bool {
	for _, s := range Supported {
		if s == shellType {
			return true
		}
	}
	return false
}

// Quote는 s를 해당 셸의 작은따옴표 문자열로 만든다. 안전한 문자만 있으면 그대로 둔다.
func Quote(shellType, s string) string {
	if s != "" && strings.Trim(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_./:@+=") == "" {
		return s
	}
	if shellType == "fish" {
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
		return "'" + r.Replace(s) + "'"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
