package repo

import (
	"os"
	"path/filepath"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/object"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// ErrCheckoutNotEmpty is returned when Checkout targets a non-empty
// directory
var ErrCheckoutNotEmpty = ginternals.ErrNotEmpty

// Checkout materializes the tree identified by treeID into dest, which
// must be empty. Blobs are written as regular files (executable bit
// set for ModeExecutable entries); sub-trees are recursively
// materialized into subdirectories.
func (r *Repository) Checkout(treeID ginternals.Oid, dest afero.Fs, destPath string) error {
	entries, err := afero.ReadDir(dest, destPath)
	if err == nil && len(entries) > 0 {
		return ErrCheckoutNotEmpty
	}
	if err := dest.MkdirAll(destPath, 0o755); err != nil {
		return xerrors.Errorf("could not create %s: %w", destPath, err)
	}

	tree, err := r.GetTree(treeID)
	if err != nil {
		return xerrors.Errorf("could not read tree %s: %w", treeID, err)
	}
	return r.checkoutTree(tree, dest, destPath)
}

func (r *Repository) checkoutTree(tree *object.Tree, dest afero.Fs, destPath string) error {
	for _, e := range tree.Entries() {
		target := filepath.Join(destPath, e.Path)

		switch e.Mode.ObjectType() {
		case object.TypeTree:
			subtree, err := r.GetTree(e.ID)
			if err != nil {
				return xerrors.Errorf("could not read tree %s at %s: %w", e.ID, target, err)
			}
			if err := dest.MkdirAll(target, 0o755); err != nil {
				return xerrors.Errorf("could not create %s: %w", target, err)
			}
			if err := r.checkoutTree(subtree, dest, target); err != nil {
				return err
			}
		default:
			blob, err := r.GetBlob(e.ID)
			if err != nil {
				return xerrors.Errorf("could not read blob %s at %s: %w", e.ID, target, err)
			}
			mode := os.FileMode(0o644)
			if e.Mode == object.ModeExecutable {
				mode = 0o755
			}
			if err := afero.WriteFile(dest, target, blob.Bytes(), mode); err != nil {
				return xerrors.Errorf("could not write %s: %w", target, err)
			}
		}
	}
	return nil
}
