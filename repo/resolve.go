package repo

import (
	"sort"
	"strings"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/object"
	"github.com/akerr/qit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// minShortOidLen is the shortest prefix Resolve will treat as a
// candidate object hash rather than a ref name
const minShortOidLen = 4

// refFinder returns a ginternals.RefContent backed by the repository's
// .git filesystem
func (r *Repository) refFinder() ginternals.RefContent {
	return func(name string) ([]byte, error) {
		data, err := afero.ReadFile(r.git, name)
		if err != nil {
			return nil, xerrors.Errorf("%s: %w", name, ginternals.ErrRefNotFound)
		}
		return data, nil
	}
}

// Resolve turns a name into the Oid it designates: a full 40-char hex
// hash, an unambiguous hash prefix, HEAD, or a branch/tag/remote-
// tracking-branch short name.
func (r *Repository) Resolve(name string) (ginternals.Oid, error) {
	if oid, err := ginternals.NewOidFromHex(name); err == nil && len(name) == ginternals.OidSize*2 {
		if r.objectExists(oid) {
			return oid, nil
		}
	}

	if oid, err := r.resolveRef(name); err == nil {
		return oid, nil
	}

	if len(name) >= minShortOidLen && len(name) < ginternals.OidSize*2 && isHex(name) {
		return r.resolveShortOid(name)
	}

	return ginternals.NullOid, xerrors.Errorf("%s: %w", name, ginternals.ErrUnknownRef)
}

// resolveRef tries name as HEAD or a fully-qualified ref, then probes
// refs/tags/<name>, refs/heads/<name>, and refs/remotes/<name> in that
// order, the order spec.md calls for when completing name resolution
// with branch/tag lookup
func (r *Repository) resolveRef(name string) (ginternals.Oid, error) {
	candidates := []string{name}
	if name != ginternals.Head {
		candidates = append(candidates,
			ginternals.RefFullName(name),
			ginternals.LocalTagFullName(name),
			ginternals.LocalBranchFullName(name),
			ginternals.RemoteBranchFullName(name),
		)
	}

	for _, candidate := range candidates {
		ref, err := ginternals.ResolveReference(candidate, r.refFinder())
		if err == nil {
			return ref.Target(), nil
		}
	}
	return ginternals.NullOid, ginternals.ErrRefNotFound
}

// resolveShortOid enumerates every loose object whose hash starts with
// prefix, failing with AmbiguousRefError if more than one matches
func (r *Repository) resolveShortOid(prefix string) (ginternals.Oid, error) {
	dirPrefix, rest := prefix[:2], prefix[2:]
	if len(prefix) < 2 {
		dirPrefix, rest = prefix, ""
	}

	var candidates []ginternals.Oid
	dirs, err := afero.ReadDir(r.git, gitpath.ObjectsPath)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not list objects: %w", err)
	}
	for _, d := range dirs {
		if !d.IsDir() || d.Name() != dirPrefix {
			continue
		}
		files, err := afero.ReadDir(r.git, gitpath.ObjectsPath+"/"+d.Name())
		if err != nil {
			return ginternals.NullOid, xerrors.Errorf("could not list objects/%s: %w", d.Name(), err)
		}
		for _, f := range files {
			if !strings.HasPrefix(f.Name(), rest) {
				continue
			}
			oid, err := ginternals.NewOidFromHex(d.Name() + f.Name())
			if err != nil {
				continue
			}
			candidates = append(candidates, oid)
		}
	}

	switch len(candidates) {
	case 0:
		return ginternals.NullOid, xerrors.Errorf("%s: %w", prefix, ginternals.ErrUnknownRef)
	case 1:
		return candidates[0], nil
	default:
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].String() < candidates[j].String()
		})
		return ginternals.NullOid, &ginternals.AmbiguousRefError{Name: prefix, Candidates: candidates}
	}
}

// Find resolves name the way Resolve does, then peels the result to an
// object of type expected: a tag jumps to the hash named by its
// "object" header, and a commit jumps to the hash named by its "tree"
// header when expected is TypeTree. If expected is the zero Type, no
// peeling happens and Find behaves exactly like Resolve. If follow is
// false, a single hop that doesn't land on expected fails with
// ErrUnknownRef instead of continuing to peel.
func (r *Repository) Find(name string, expected object.Type, follow bool) (ginternals.Oid, error) {
	oid, err := r.Resolve(name)
	if err != nil {
		return ginternals.NullOid, err
	}
	if expected == 0 {
		return oid, nil
	}
	return r.peel(oid, expected, follow)
}

// peel follows tag and commit indirections, one hop at a time, until
// it reaches an object of type expected
func (r *Repository) peel(oid ginternals.Oid, expected object.Type, follow bool) (ginternals.Oid, error) {
	for {
		o, err := r.GetObject(oid)
		if err != nil {
			return ginternals.NullOid, err
		}
		if o.Type() == expected {
			return oid, nil
		}
		if !follow {
			return ginternals.NullOid, xerrors.Errorf("%s: %w", oid, ginternals.ErrUnknownRef)
		}

		switch {
		case o.Type() == object.TypeTag:
			tag, err := object.NewTagFromObject(o)
			if err != nil {
				return ginternals.NullOid, xerrors.Errorf("could not parse tag %s: %w", oid, err)
			}
			oid = tag.Target()
		case o.Type() == object.TypeCommit && expected == object.TypeTree:
			commit, err := object.NewCommitFromObject(o)
			if err != nil {
				return ginternals.NullOid, xerrors.Errorf("could not parse commit %s: %w", oid, err)
			}
			oid = commit.TreeID()
		default:
			return ginternals.NullOid, xerrors.Errorf("%s: %w", oid, ginternals.ErrUnknownRef)
		}
	}
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
