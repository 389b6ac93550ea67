package shortpath

import (
	"path/filepath"
	"strings"

	"github.com/hbjs97/jumpr/internal/git"
)

// Part는 렌더링할 구역을 선택한다.
type Part int

const (
	// Prefix는 리포지토리 구역이다.
	Prefix Part = iota
	// Infix는 앵커와 마지막 요소 사이의 디렉토리들이다.
	Infix
	// Suffix는 경로의 마지막 요소다.
	Suffix
)

// AllParts는 기본 구역 순서다.
var AllParts = []Part{Prefix, Infix, Suffix}

func (p Part) String() string {
	switch p {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Suffix:
		return "suffix"
	default:
		return "unknown"
	}
}

// Repo는 Prefix 구역의 리포지토리 정보다.
type Repo struct {
	Name   string
	Branch string
}

// ShortPath는 하나의 경로를 분해한 결과다. 생성 후 변경하지 않는다.
type ShortPath struct {
	root   []string
	repo   *Repo
	infix  []string
	suffix string
	style  Style
}

// Decompose는 기본 Style로 path를 분해한다.
func Decompose(path string) ShortPath {
	return DecomposeWithStyle(path, DefaultStyle())
}

// DecomposeWithStyle은 path를 분해하고 렌더링에 쓸 style을 고정한다.
// path는 정규화된 절대 경로여야 하며, 존재하지 않으면 문자 그대로의 요소를 사용한다.
func DecomposeWithStyle(path string, style Style) ShortPath {
	comps := Split(path)
	sp := ShortPath{style: style}

	anchor, ok := git.FindAnchor(path)
	if !ok {
		sp.infix, sp.suffix = splitLast(comps)
		return sp
	}

	n := len(Split(anchor.Dir))
	if n > len(comps) {
		// 앵커는 항상 path의 조상이므로 도달하지 않는다.
		sp.infix, sp.suffix = splitLast(comps)
		return sp
	}

	sp.root = comps[:n]
	sp.repo = &Repo{Name: repoName(sp.root)}
	if branch, ok := git.ReadBranch(anchor.Head); ok {
		sp.repo.Branch = branch
	}
	sp.infix, sp.suffix = splitLast(comps[n:])
	return sp
}

// Split은 볼륨 이름을 제외한 경로 요소 목록을 반환한다. 루트는 빈 목록이다.
func Split(path string) []string {
	path = filepath.Clean(path)
	path = path[len(filepath.VolumeName(path)):]
	var comps []string
	for _, c := range strings.Split(path, string(filepath.Separator)) {
		if c != "" {
			comps = append(comps, c)
		}
	}
	return comps
}

func splitLast(comps []string) ([]string, string) {
	if len(comps) == 0 {
		return nil, ""
	}
	return comps[:len(comps)-1], comps[len(comps)-1]
}

func repoName(root []string) string {
	if len(root) == 0 {
		return string(filepath.Separator)
	}
	return root[len(root)-1]
}

// Repo는 리포지토리 정보를 반환한다. 리포 밖이면 nil이다.
func (s ShortPath) Repo() *Repo {
	if s.repo == nil {
		return nil
	}
	r := *s.repo
	return &r
}

// InfixComponents는 Infix 구역 요소의 복사본이다.
func (s ShortPath) InfixComponents() []string {
	return append([]string(nil), s.infix...)
}

// SuffixComponent는 Suffix 구역 요소다. 경로가 루트이거나 앵커 자체면 빈 문자열이다.
func (s ShortPath) SuffixComponent() string {
	return s.suffix
}

// Components는 원래 경로의 요소 순서를 그대로 복원한다.
func (s ShortPath) Components() []string {
	out := make([]string, 0, len(s.root)+len(s.infix)+1)
	out = append(out, s.root...)
	out = append(out, s.infix...)
	if s.suffix != "" {
		out = append(out, s.suffix)
	}
	return out
}
