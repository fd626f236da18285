package repo

import (
	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// refWalker returns a ginternals.RefWalker backed by the repository's
// .git filesystem
func (r *Repository) refWalker() ginternals.RefWalker {
	return func(dir string) (names []string, isDir func(name string) bool, err error) {
		entries, err := afero.ReadDir(r.git, dir)
		if err != nil {
			return nil, nil, xerrors.Errorf("could not list %s: %w", dir, err)
		}
		dirs := map[string]bool{}
		for _, e := range entries {
			names = append(names, e.Name())
			dirs[e.Name()] = e.IsDir()
		}
		return names, func(name string) bool { return dirs[name] }, nil
	}
}

// ListRefs walks the whole refs/ namespace and returns every reference
// found, resolved to the Oid it targets
func (r *Repository) ListRefs() (*ginternals.RefTree, error) {
	return ginternals.List(gitpath.RefsPath, r.refWalker(), r.refFinder())
}

// Head returns the reference HEAD currently resolves to
func (r *Repository) Head() (*ginternals.Reference, error) {
	return ginternals.ResolveReference(ginternals.Head, r.refFinder())
}
