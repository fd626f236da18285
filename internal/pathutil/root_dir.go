package pathutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/akerr/qit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// ErrNoRepo is an error returned when no repo are found
var ErrNoRepo = errors.New("not a git repository (or any of the parent directories)")

// RepoRoot returns the absolute path to the worktree root of the repo
// containing the current working directory
func RepoRoot(fs afero.Fs) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", xerrors.Errorf("could not get current working directory: %w", err)
	}
	return RepoRootFromPath(fs, wd)
}

// RepoRootFromPath walks up from p, one lexical parent at a time
// (filepath.Dir of the absolute path), until it finds a directory
// containing a gitpath.DotGitPath subdirectory. Symbolic links are not
// resolved: the parent of a symlinked directory is the parent in the
// path as given, not the parent of its target. It returns ErrNoRepo
// once it reaches the filesystem root without finding one.
func RepoRootFromPath(fs afero.Fs, p string) (string, error) {
	p, err := filepath.Abs(p)
	if err != nil {
		return "", xerrors.Errorf("could not resolve %s: %w", p, err)
	}

	prev := ""
	for p != prev {
		info, err := fs.Stat(filepath.Join(p, gitpath.DotGitPath))
		if err == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
