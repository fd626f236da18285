package repo

import (
	"os"
	"path/filepath"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/object"
	"github.com/akerr/qit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// looseObjectPath returns the path, relative to the .git directory, of
// the loose object identified by oid:
// objects/<first 2 hex chars>/<remaining 38 hex chars>
func looseObjectPath(oid ginternals.Oid) string {
	sha := oid.String()
	return filepath.Join(gitpath.ObjectsPath, sha[:2], sha[2:])
}

// GetObject reads and decompresses the object identified by oid from
// the object database
func (r *Repository) GetObject(oid ginternals.Oid) (*object.Object, error) {
	p := looseObjectPath(oid)
	f, err := r.git.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("object %s: %w", oid, ginternals.ErrObjectNotFound)
		}
		return nil, xerrors.Errorf("could not open object %s: %w", oid, err)
	}
	defer f.Close() //nolint:errcheck // read-only file, nothing to recover from a failed close

	o, err := object.Decompress(f)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object %s: %w", oid, err)
	}
	return o, nil
}

// WriteObject compresses o and persists it in the object database,
// returning its Oid
func (r *Repository) WriteObject(o *object.Object) (ginternals.Oid, error) {
	data, err := o.Compress()
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not compress object: %w", err)
	}

	p := looseObjectPath(o.ID())
	if err := r.git.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create object directory: %w", err)
	}
	if err := afero.WriteFile(r.git, p, data, 0o444); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not persist object %s: %w", o.ID(), err)
	}
	return o.ID(), nil
}

// HashObject computes the Oid a blob of the given content would have,
// optionally persisting it to the object database
func (r *Repository) HashObject(content []byte, write bool) (ginternals.Oid, error) {
	o := object.New(object.TypeBlob, content)
	if !write {
		return o.ID(), nil
	}
	return r.WriteObject(o)
}

// GetBlob reads and parses the blob identified by oid
func (r *Repository) GetBlob(oid ginternals.Oid) (*object.Blob, error) {
	o, err := r.GetObject(oid)
	if err != nil {
		return nil, err
	}
	if o.Type() != object.TypeBlob {
		return nil, xerrors.Errorf("type %s is not a blob: %w", o.Type(), ginternals.ErrUnknownType)
	}
	return object.NewBlob(o), nil
}

// GetTree reads and parses the tree identified by oid
func (r *Repository) GetTree(oid ginternals.Oid) (*object.Tree, error) {
	o, err := r.GetObject(oid)
	if err != nil {
		return nil, err
	}
	return object.NewTreeFromObject(o)
}

// GetCommit reads and parses the commit identified by oid
func (r *Repository) GetCommit(oid ginternals.Oid) (*object.Commit, error) {
	o, err := r.GetObject(oid)
	if err != nil {
		return nil, err
	}
	return object.NewCommitFromObject(o)
}

// GetTag reads and parses the tag identified by oid
func (r *Repository) GetTag(oid ginternals.Oid) (*object.Tag, error) {
	o, err := r.GetObject(oid)
	if err != nil {
		return nil, err
	}
	return object.NewTagFromObject(o)
}

// objectExists returns whether a loose object with the given oid is
// present in the object database
func (r *Repository) objectExists(oid ginternals.Oid) bool {
	_, err := r.git.Stat(looseObjectPath(oid))
	return err == nil
}

// CatFile reads the raw, decompressed payload of an object and its
// type, mirroring `git cat-file <type> <object>` (no pretty-printing)
func (r *Repository) CatFile(oid ginternals.Oid) ([]byte, object.Type, error) {
	o, err := r.GetObject(oid)
	if err != nil {
		return nil, 0, err
	}
	return o.Bytes(), o.Type(), nil
}
