// Package repo implements a git repository: the .git metadata
// directory, its object database, and its reference store.
package repo

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/config"
	"github.com/akerr/qit/internal/gitpath"
	"github.com/akerr/qit/internal/pathutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// defaultBranch is the branch HEAD points to in a freshly-created
// repository
const defaultBranch = "main"

// Repository represents an on-disk git repository: a worktree root and
// the .git metadata directory underneath it
type Repository struct {
	root   string
	gitDir string
	fs     afero.Fs
	git    afero.Fs
}

// Root returns the absolute path of the repository's worktree
func (r *Repository) Root() string {
	return r.root
}

// GitDir returns the absolute path of the repository's metadata
// directory (".git")
func (r *Repository) GitDir() string {
	return r.gitDir
}

// Create initializes a new repository at path: the metadata skeleton
// (objects/, refs/heads, refs/tags, HEAD, description, config) is
// written into path/.git. path must not already contain a non-empty
// .git directory.
func Create(fs afero.Fs, path string) (*Repository, error) {
	gitDir := filepath.Join(path, gitpath.DotGitPath)

	info, err := fs.Stat(gitDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, ginternals.ErrNotADirectory
		}
		entries, err := afero.ReadDir(fs, gitDir)
		if err != nil {
			return nil, xerrors.Errorf("could not read %s: %w", gitDir, err)
		}
		if len(entries) > 0 {
			return nil, ginternals.ErrNotEmpty
		}
	case os.IsNotExist(err):
		// nothing there yet, we'll create it below
	default:
		return nil, xerrors.Errorf("could not stat %s: %w", gitDir, err)
	}

	if err := fs.MkdirAll(gitDir, 0o755); err != nil {
		return nil, xerrors.Errorf("could not create %s: %w", gitDir, err)
	}
	git := afero.NewBasePathFs(fs, gitDir)

	for _, dir := range []string{
		gitpath.ObjectsPath,
		gitpath.RefsHeadsPath,
		gitpath.RefsTagsPath,
		gitpath.BranchesPath,
	} {
		if err := git.MkdirAll(dir, 0o755); err != nil {
			return nil, xerrors.Errorf("could not create %s: %w", dir, err)
		}
	}

	head := "ref: " + ginternals.LocalBranchFullName(defaultBranch) + "\n"
	if err := afero.WriteFile(git, gitpath.HEADPath, []byte(head), 0o644); err != nil {
		return nil, xerrors.Errorf("could not write HEAD: %w", err)
	}

	desc := "Unnamed repository; edit this file 'description' to name the repository.\n"
	if err := afero.WriteFile(git, gitpath.DescriptionPath, []byte(desc), 0o644); err != nil {
		return nil, xerrors.Errorf("could not write description: %w", err)
	}

	cfgBytes, err := config.Default().Bytes()
	if err != nil {
		return nil, xerrors.Errorf("could not serialize default config: %w", err)
	}
	if err := afero.WriteFile(git, gitpath.ConfigPath, cfgBytes, 0o644); err != nil {
		return nil, xerrors.Errorf("could not write config: %w", err)
	}

	return &Repository{root: path, gitDir: gitDir, fs: fs, git: git}, nil
}

// Open loads the repository rooted at path. Unless force is set, Open
// verifies that a .git directory exists there and that its config
// declares a supported repository format version.
func Open(fs afero.Fs, path string, force bool) (*Repository, error) {
	gitDir := filepath.Join(path, gitpath.DotGitPath)
	git := afero.NewBasePathFs(fs, gitDir)

	if !force {
		info, err := fs.Stat(gitDir)
		if err != nil || !info.IsDir() {
			return nil, ginternals.ErrNotARepository
		}

		raw, err := afero.ReadFile(git, gitpath.ConfigPath)
		if err != nil {
			return nil, xerrors.Errorf("could not read config: %w", ginternals.ErrNotARepository)
		}
		cfg, err := config.Load(raw)
		if err != nil {
			return nil, xerrors.Errorf("could not parse config: %w", err)
		}
		if v := cfg.RepositoryFormatVersion(); v != config.SupportedFormatVersion {
			return nil, xerrors.Errorf("format version %d: %w", v, ginternals.ErrUnsupportedFormat)
		}
	}

	return &Repository{root: path, gitDir: gitDir, fs: fs, git: git}, nil
}

// Find walks up from start looking for a .git directory and opens the
// repository it finds. If required is false and no repository is
// found, Find returns (nil, nil) instead of an error.
func Find(fs afero.Fs, start string, required bool) (*Repository, error) {
	root, err := pathutil.RepoRootFromPath(fs, start)
	if err != nil {
		if errors.Is(err, pathutil.ErrNoRepo) {
			if !required {
				return nil, nil
			}
			return nil, ginternals.ErrNotARepository
		}
		return nil, xerrors.Errorf("could not look for a repository: %w", err)
	}
	return Open(fs, root, false)
}
