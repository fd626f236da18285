package repo_test

import (
	"testing"

	"github.com/akerr/qit/ginternals/object"
	"github.com/akerr/qit/repo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	t.Parallel()

	t.Run("materializes files and subdirectories", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(t)

		readmeID, err := r.WriteObject(object.New(object.TypeBlob, []byte("hello\n")))
		require.NoError(t, err)
		mainID, err := r.WriteObject(object.New(object.TypeBlob, []byte("package main\n")))
		require.NoError(t, err)

		subTree := object.NewTree([]object.TreeEntry{
			{Path: "main.go", ID: mainID, Mode: object.ModeFile},
		})
		subTreeID, err := r.WriteObject(subTree.ToObject())
		require.NoError(t, err)

		tree := object.NewTree([]object.TreeEntry{
			{Path: "README.md", ID: readmeID, Mode: object.ModeFile},
			{Path: "src", ID: subTreeID, Mode: object.ModeDirectory},
		})
		treeID, err := r.WriteObject(tree.ToObject())
		require.NoError(t, err)

		dest := afero.NewMemMapFs()
		require.NoError(t, r.Checkout(treeID, dest, "/out"))

		readme, err := afero.ReadFile(dest, "/out/README.md")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(readme))

		main, err := afero.ReadFile(dest, "/out/src/main.go")
		require.NoError(t, err)
		assert.Equal(t, "package main\n", string(main))
	})

	t.Run("fails on a non-empty destination", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(t)
		treeID, err := r.WriteObject(object.NewTree(nil).ToObject())
		require.NoError(t, err)

		dest := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(dest, "/out/existing.txt", []byte("x"), 0o644))

		err = r.Checkout(treeID, dest, "/out")
		require.Error(t, err)
		assert.ErrorIs(t, err, repo.ErrCheckoutNotEmpty)
	})
}
