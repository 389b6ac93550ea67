package shortpath

import (
	"path/filepath"
	"strings"
)

// Style은 렌더링 표시 상수다.
type Style struct {
	// Marker는 리포지토리 이름 앞에 붙는 기호다.
	Marker string
	// BranchSeparator는 리포 이름과 브랜치 사이 구분자다.
	BranchSeparator string
	// AbbrevWidth는 축약된 요소가 유지하는 문자 수다.
	AbbrevWidth int
}

// DefaultStyle은 기본 표시 상수를 반환한다.
func DefaultStyle() Style {
	return Style{Marker: "@", BranchSeparator: ":", AbbrevWidth: 1}
}

// Build는 parts 순서대로 구역을 이어 붙인 문자열을 반환한다.
// Suffix를 포함해 끝에서 depth개 요소는 전체 이름으로, 그 앞의 Infix 요소는 축약해 표시한다.
// 빈 구역은 구분자를 남기지 않는다.
func (s ShortPath) Build(depth int, parts []Part) string {
	var segs []string
	for _, p := range parts {
		switch p {
		case Prefix:
			if s.repo != nil {
				segs = append(segs, s.prefixLabel())
			}
		case Infix:
			segs = append(segs, s.renderInfix(depth)...)
		case Suffix:
			if s.suffix != "" {
				segs = append(segs, s.suffix)
			}
		}
	}
	return strings.Join(segs, string(filepath.Separator))
}

func (s ShortPath) prefixLabel() string {
	label := s.style.Marker + s.repo.Name
	if s.repo.Branch != "" {
		label += s.style.BranchSeparator + s.repo.Branch
	}
	return label
}

func (s ShortPath) renderInfix(depth int) []string {
	keep := depth
	if s.suffix != "" {
		keep--
	}
	keep = max(keep, 0)
	cut := max(len(s.infix)-keep, 0)

	out := make([]string, len(s.infix))
	for i, c := range s.infix {
		if i < cut {
			out[i] = Abbreviate(c, s.style.AbbrevWidth)
		} else {
			out[i] = c
		}
	}
	return out
}

// Abbreviate는 name의 앞 width 글자만 남긴다. 점으로 시작하는 이름은 점을 추가로 유지한다.
// width가 1보다 작으면 1로 취급한다.
func Abbreviate(name string, width int) string {
	width = max(width, 1)
	if strings.HasPrefix(name, ".") {
		width++
	}
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	return string(runes[:width])
}
