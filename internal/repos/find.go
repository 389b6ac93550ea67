package repos

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound는 질의와 일치하는 리포지토리가 없을 때의 sentinel error다.
var ErrNotFound = errors.New("no matching repository")

type matchKind int

const (
	matchExact matchKind = iota
	matchPrefix
	matchSubstring
	matchNone
)

// Find는 이름 일치만으로 대상 리포를 고른다.
// 마지막 검색어는 디렉토리 이름과 비교하고(정확히 > 접두사 > 부분 문자열),
// 앞선 검색어들은 전체 경로에 순서대로 포함되어야 한다.
// 동률이면 짧은 경로, 그다음 사전순이다. 대소문자는 구분하지 않는다.
func Find(repos []string, terms []string) (string, error) {
	matches := Filter(repos, terms)
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	return matches[0], nil
}

// Filter는 검색어와 일치하는 리포를 우선순위 순으로 반환한다.
func Filter(repos []string, terms []string) []string {
	terms = normalize(terms)
	if len(terms) == 0 {
		return nil
	}
	last := terms[len(terms)-1]
	leading := terms[:len(terms)-1]

	type candidate struct {
		path string
		kind matchKind
	}
	var cands []candidate
	for _, repo := range repos {
		if !containsInOrder(strings.ToLower(filepath.Dir(repo)), leading) {
			continue
		}
		kind := classify(strings.ToLower(filepath.Base(repo)), last)
		if kind == matchNone {
			continue
		}
		cands = append(cands, candidate{path: repo, kind: kind})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		if len(a.path) != len(b.path) {
			return len(a.path) < len(b.path)
		}
		return a.path < b.path
	})

	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.path
	}
	return out
}

func normalize(terms []string) []string {
	var out []string
	for _, t := range terms {
		for _, f := range strings.Fields(t) {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

func classify(name, term string) matchKind {
	switch {
	case name == term:
		return matchExact
	case strings.HasPrefix(name, term):
		return matchPrefix
	case strings.Contains(name, term):
		return matchSubstring
	default:
		return matchNone
	}
}

func containsInOrder(s string, terms []string) bool {
	for _, t := range terms {
		i := strings.Index(s, t)
		if i < 0 {
			return false
		}
		s = s[i+len(t):]
	}
	return true
}
