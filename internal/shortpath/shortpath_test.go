package shortpath_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/jumpr/internal/shortpath"
	"github.com/hbjs97/jumpr/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sep = string(filepath.Separator)

func join(parts ...string) string { return strings.Join(parts, sep) }

func TestDecompose_InsideRepoWithBranch(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")
	path := filepath.Join(repo, "sub", "dir")
	testutil.MkdirAll(t, path)

	sp := shortpath.Decompose(path)

	require.NotNil(t, sp.Repo())
	assert.Equal(t, shortpath.Repo{Name: "proj", Branch: "dev"}, *sp.Repo())
	assert.Equal(t, []string{"sub"}, sp.InfixComponents())
	assert.Equal(t, "dir", sp.SuffixComponent())

	assert.Equal(t, join("@proj:dev", "s", "dir"), sp.Build(1, shortpath.AllParts))
	assert.Equal(t, "@proj:dev", sp.Build(1, []shortpath.Part{shortpath.Prefix}))
	assert.Equal(t, join("s", "dir"), sp.Build(1, []shortpath.Part{shortpath.Infix, shortpath.Suffix}))
}

func TestDecompose_DefaultBranchesHaveNoQualifier(t *testing.T) {
	for _, branch := range []string{"main", "master"} {
		t.Run(branch, func(t *testing.T) {
			repo := testutil.TempGitRepo(t, "proj", branch)

			sp := shortpath.Decompose(filepath.Join(repo, "src"))
			require.NotNil(t, sp.Repo())
			assert.Empty(t, sp.Repo().Branch)
			assert.Equal(t, "@proj", sp.Build(1, []shortpath.Part{shortpath.Prefix}))
		})
	}
}

func TestDecompose_BranchNotTruncated(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "feature/x")

	sp := shortpath.Decompose(filepath.Join(repo, "a"))
	assert.Equal(t, "@proj:feature/x", sp.Build(1, []shortpath.Part{shortpath.Prefix}))
}

func TestDecompose_DetachedHead(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")
	testutil.WriteFile(t, filepath.Join(repo, ".git", "HEAD"), "3f786850e387550fdab836ed7e6dc881de23001b\n")

	sp := shortpath.Decompose(repo)
	assert.Equal(t, "@proj", sp.Build(1, shortpath.AllParts))
}

func TestDecompose_AtAnchor(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")

	sp := shortpath.Decompose(repo)
	assert.Empty(t, sp.InfixComponents())
	assert.Empty(t, sp.SuffixComponent())
	assert.Equal(t, "@proj:dev", sp.Build(1, shortpath.AllParts))
	assert.Empty(t, sp.Build(1, []shortpath.Part{shortpath.Infix, shortpath.Suffix}))
}

func TestDecompose_Worktree(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "main")
	wt := testutil.TempWorktree(t, repo, "proj-feature", "feature/x", "gitdir: ../proj/.git/worktrees/proj-feature")
	path := filepath.Join(wt, "cmd", "app")
	testutil.MkdirAll(t, path)

	sp := shortpath.Decompose(path)
	assert.Equal(t, join("@proj-feature:feature/x", "c", "app"), sp.Build(1, shortpath.AllParts))
}

func TestDecompose_OutsideRepo(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "a", "b", "c")

	sp := shortpath.Decompose(path)
	assert.Nil(t, sp.Repo())
	assert.Equal(t, "c", sp.SuffixComponent())

	want := shortpath.Split(path)
	assert.Equal(t, want[:len(want)-1], sp.InfixComponents())

	out := sp.Build(1, shortpath.AllParts)
	assert.True(t, strings.HasSuffix(out, join("a", "b", "c")), out)
	assert.False(t, strings.HasPrefix(out, sep), "no leading separator: %s", out)
	assert.Equal(t, out, sp.Build(1, []shortpath.Part{shortpath.Infix, shortpath.Suffix}))
	assert.Empty(t, sp.Build(1, []shortpath.Part{shortpath.Prefix}))
}

func TestDecompose_Root(t *testing.T) {
	sp := shortpath.Decompose(sep)
	if sp.Repo() != nil {
		t.Skip("filesystem root is inside a repository")
	}
	assert.Empty(t, sp.Components())
	assert.Empty(t, sp.Build(1, shortpath.AllParts))
}

func TestDecompose_Lossless(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")
	paths := []string{
		repo,
		filepath.Join(repo, "x"),
		filepath.Join(repo, "x", "y", "z"),
		filepath.Join(t.TempDir(), "plain", "dir"),
	}
	for _, p := range paths {
		sp := shortpath.Decompose(p)
		assert.Equal(t, shortpath.Split(p), sp.Components(), p)
	}
}

func TestBuild_Depth(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")
	path := filepath.Join(repo, "alpha", "beta", "gamma", "leaf")

	sp := shortpath.Decompose(path)
	tests := []struct {
		depth int
		want  string
	}{
		{depth: 0, want: join("@proj:dev", "a", "b", "g", "leaf")},
		{depth: 1, want: join("@proj:dev", "a", "b", "g", "leaf")},
		{depth: 2, want: join("@proj:dev", "a", "b", "gamma", "leaf")},
		{depth: 3, want: join("@proj:dev", "a", "beta", "gamma", "leaf")},
		{depth: 10, want: join("@proj:dev", "alpha", "beta", "gamma", "leaf")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sp.Build(tt.depth, shortpath.AllParts), "depth %d", tt.depth)
	}
}

func TestBuild_PartOrder(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")
	sp := shortpath.Decompose(filepath.Join(repo, "sub", "dir"))

	got := sp.Build(1, []shortpath.Part{shortpath.Suffix, shortpath.Prefix})
	assert.Equal(t, join("dir", "@proj:dev"), got)
	assert.Empty(t, sp.Build(1, nil))
}

func TestBuild_Deterministic(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")
	sp := shortpath.Decompose(filepath.Join(repo, "one", "two", "three"))

	first := sp.Build(2, shortpath.AllParts)
	for range 5 {
		assert.Equal(t, first, sp.Build(2, shortpath.AllParts))
	}
}

func TestDecomposeWithStyle(t *testing.T) {
	repo := testutil.TempGitRepo(t, "proj", "dev")
	style := shortpath.Style{Marker: "", BranchSeparator: " on ", AbbrevWidth: 3}

	sp := shortpath.DecomposeWithStyle(filepath.Join(repo, "services", "api"), style)
	assert.Equal(t, join("proj on dev", "ser", "api"), sp.Build(1, shortpath.AllParts))
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{name: "sub", width: 1, want: "s"},
		{name: "s", width: 1, want: "s"},
		{name: ".config", width: 1, want: ".c"},
		{name: ".x", width: 1, want: ".x"},
		{name: "한국어", width: 1, want: "한"},
		{name: "projects", width: 3, want: "pro"},
		{name: "ab", width: 3, want: "ab"},
		{name: "zero", width: 0, want: "z"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shortpath.Abbreviate(tt.name, tt.width), "%s/%d", tt.name, tt.width)
	}
}

func TestPartString(t *testing.T) {
	assert.Equal(t, "prefix", shortpath.Prefix.String())
	assert.Equal(t, "infix", shortpath.Infix.String())
	assert.Equal(t, "suffix", shortpath.Suffix.String())
}
