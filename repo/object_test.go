package repo_test

import (
	"testing"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/object"
	"github.com/akerr/qit/repo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *repo.Repository {
	t.Helper()
	r, _ := newTestRepoFs(t)
	return r
}

func newTestRepoFs(t *testing.T) (*repo.Repository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	r, err := repo.Create(fs, "/project")
	require.NoError(t, err)
	return r, fs
}

func TestWriteAndGetObject(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	o := object.New(object.TypeBlob, []byte("hello world"))

	id, err := r.WriteObject(o)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), id)

	got, err := r.GetObject(id)
	require.NoError(t, err)
	assert.Equal(t, o.Bytes(), got.Bytes())
	assert.Equal(t, o.Type(), got.Type())
}

func TestGetObjectNotFound(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	_, err := r.GetObject(ginternals.NewOidFromContent([]byte("nothing")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)
}

func TestHashObject(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	content := []byte("package main\n")

	t.Run("without write, nothing is persisted", func(t *testing.T) {
		t.Parallel()

		id, err := r.HashObject(content, false)
		require.NoError(t, err)

		_, err = r.GetObject(id)
		assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)
	})

	t.Run("with write, the blob is persisted", func(t *testing.T) {
		t.Parallel()

		id, err := r.HashObject(content, true)
		require.NoError(t, err)

		blob, err := r.GetBlob(id)
		require.NoError(t, err)
		assert.Equal(t, content, blob.Bytes())
	})
}

func TestGetCommitAndTree(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)

	blobID, err := r.WriteObject(object.New(object.TypeBlob, []byte("hi")))
	require.NoError(t, err)

	tree := object.NewTree([]object.TreeEntry{
		{Path: "file.txt", ID: blobID, Mode: object.ModeFile},
	})
	treeID, err := r.WriteObject(tree.ToObject())
	require.NoError(t, err)

	author := object.Signature{Name: "Ada", Email: "ada@example.com"}
	commit := object.NewCommit(treeID, author, &object.CommitOptions{Message: "initial"})
	commitID, err := r.WriteObject(commit.ToObject())
	require.NoError(t, err)

	gotTree, err := r.GetTree(treeID)
	require.NoError(t, err)
	assert.Len(t, gotTree.Entries(), 1)

	gotCommit, err := r.GetCommit(commitID)
	require.NoError(t, err)
	assert.Equal(t, "initial", gotCommit.Message())
	assert.Equal(t, treeID, gotCommit.TreeID())
}
