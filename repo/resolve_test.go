package repo_test

import (
	"testing"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/object"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("full hash resolves directly", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(t)
		id, err := r.WriteObject(object.New(object.TypeBlob, []byte("content")))
		require.NoError(t, err)

		got, err := r.Resolve(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("HEAD resolves through the default branch", func(t *testing.T) {
		t.Parallel()

		r, fs := newTestRepoFs(t)
		commitID, err := r.WriteObject(object.New(object.TypeCommit, []byte("tree abc\n\nmsg")))
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, "/project/.git/refs/heads/main", []byte(commitID.String()+"\n"), 0o644))

		got, err := r.Resolve("HEAD")
		require.NoError(t, err)
		assert.Equal(t, commitID, got)
	})

	t.Run("branch short name resolves", func(t *testing.T) {
		t.Parallel()

		r, fs := newTestRepoFs(t)
		commitID, err := r.WriteObject(object.New(object.TypeCommit, []byte("tree abc\n\nmsg")))
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, "/project/.git/refs/heads/feature", []byte(commitID.String()+"\n"), 0o644))

		got, err := r.Resolve("feature")
		require.NoError(t, err)
		assert.Equal(t, commitID, got)
	})

	t.Run("tag short name resolves", func(t *testing.T) {
		t.Parallel()

		r, fs := newTestRepoFs(t)
		commitID, err := r.WriteObject(object.New(object.TypeCommit, []byte("tree abc\n\nmsg")))
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, "/project/.git/refs/tags/v1.0.0", []byte(commitID.String()+"\n"), 0o644))

		got, err := r.Resolve("v1.0.0")
		require.NoError(t, err)
		assert.Equal(t, commitID, got)
	})

	t.Run("short hash prefix resolves when unambiguous", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(t)
		id, err := r.WriteObject(object.New(object.TypeBlob, []byte("unique content")))
		require.NoError(t, err)

		got, err := r.Resolve(id.String()[:8])
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("unknown name fails", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(t)
		_, err := r.Resolve("does-not-exist")
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrUnknownRef)
	})
}

func TestFind(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	author := object.Signature{Name: "Ada", Email: "ada@example.com"}

	treeID, err := r.WriteObject(object.NewTree(nil).ToObject())
	require.NoError(t, err)

	commit := object.NewCommit(treeID, author, &object.CommitOptions{Message: "initial"})
	commitID, err := r.WriteObject(commit.ToObject())
	require.NoError(t, err)

	tag := object.NewTag("v1.0.0", commit.ToObject(), author, nil)
	tagID, err := r.WriteObject(tag.ToObject())
	require.NoError(t, err)

	t.Run("no expected type returns the bare resolution", func(t *testing.T) {
		t.Parallel()

		got, err := r.Find(tagID.String(), 0, true)
		require.NoError(t, err)
		assert.Equal(t, tagID, got)
	})

	t.Run("a tag peels to its commit", func(t *testing.T) {
		t.Parallel()

		got, err := r.Find(tagID.String(), object.TypeCommit, true)
		require.NoError(t, err)
		assert.Equal(t, commitID, got)
	})

	t.Run("a tag peels through its commit to the tree", func(t *testing.T) {
		t.Parallel()

		got, err := r.Find(tagID.String(), object.TypeTree, true)
		require.NoError(t, err)
		assert.Equal(t, treeID, got)
	})

	t.Run("a commit peels to its tree", func(t *testing.T) {
		t.Parallel()

		got, err := r.Find(commitID.String(), object.TypeTree, true)
		require.NoError(t, err)
		assert.Equal(t, treeID, got)
	})

	t.Run("without follow, a mismatch fails instead of peeling", func(t *testing.T) {
		t.Parallel()

		_, err := r.Find(tagID.String(), object.TypeCommit, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrUnknownRef)
	})

	t.Run("a blob can never be peeled to a tree", func(t *testing.T) {
		t.Parallel()

		blobID, err := r.WriteObject(object.New(object.TypeBlob, []byte("content")))
		require.NoError(t, err)

		_, err = r.Find(blobID.String(), object.TypeTree, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrUnknownRef)
	})
}
