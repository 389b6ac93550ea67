package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/jumpr/internal/logger"
)

const (
	// DotGit는 리포지토리 메타데이터 엔트리 이름이다.
	DotGit = ".git"
	// HeadFile은 현재 체크아웃 참조를 담는 파일 이름이다.
	HeadFile = "HEAD"

	gitdirPrefix = "gitdir:"
)

// EntryKind는 디렉토리 안의 .git 엔트리 종류다.
type EntryKind int

const (
	// EntryNone은 .git 엔트리가 없음을 뜻한다.
	EntryNone EntryKind = iota
	// EntryDir은 일반 리포지토리의 .git 디렉토리다.
	EntryDir
	// EntryPointer는 linked worktree의 gitdir 포인터 파일이다.
	EntryPointer
)

// Anchor는 .git을 포함하는 디렉토리와 그 리포의 HEAD 파일 위치다.
type Anchor struct {
	Dir  string
	Head string
	Kind EntryKind
}

// Classify는 dir 바로 아래의 .git 엔트리 종류를 판정한다.
func Classify(dir string) EntryKind {
	info, err := os.Stat(filepath.Join(dir, DotGit))
	if err != nil {
		return EntryNone
	}
	switch {
	case info.IsDir():
		return EntryDir
	case info.Mode().IsRegular():
		return EntryPointer
	default:
		return EntryNone
	}
}

// FindAnchor는 start부터 상위 디렉토리로 올라가며 가장 가까운 .git 엔트리를 찾는다.
// worktree 포인터 파일을 읽을 수 없거나 gitdir 줄이 없으면 탐색을 멈추고 false를 반환한다.
func FindAnchor(start string) (Anchor, bool) {
	current := filepath.Clean(start)
	for {
		switch Classify(current) {
		case EntryDir:
			return Anchor{
				Dir:  current,
				Head: filepath.Join(current, DotGit, HeadFile),
				Kind: EntryDir,
			}, true
		case EntryPointer:
			gitdir, ok := readGitdir(filepath.Join(current, DotGit))
			if !ok {
				return Anchor{}, false
			}
			if !filepath.IsAbs(gitdir) {
				gitdir = filepath.Join(current, gitdir)
			}
			return Anchor{
				Dir:  current,
				Head: filepath.Join(gitdir, HeadFile),
				Kind: EntryPointer,
			}, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return Anchor{}, false
		}
		current = parent
	}
}

// ResolveHead는 start가 속한 리포의 HEAD 파일 절대 경로를 반환한다.
func ResolveHead(start string) (string, bool) {
	a, ok := FindAnchor(start)
	if !ok {
		return "", false
	}
	return a.Head, true
}

// readGitdir는 worktree 포인터 파일에서 첫 번째 gitdir: 값을 읽는다.
func readGitdir(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("worktree pointer unreadable")
		return "", false
	}
	for _, line := range strings.Split(string(data), "\n") {
		value, found := strings.CutPrefix(strings.TrimSpace(line), gitdirPrefix)
		if found {
			return strings.TrimSpace(value), true
		}
	}
	logger.Debug().Str("path", path).Msg("worktree pointer has no gitdir line")
	return "", false
}
