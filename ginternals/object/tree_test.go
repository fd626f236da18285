package object_test

import (
	"testing"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeRoundTrip(t *testing.T) {
	t.Parallel()

	blobID := ginternals.NewOidFromContent([]byte("blob 5\x00hello"))
	dirID := ginternals.NewOidFromContent([]byte("tree 0\x00"))

	entries := []object.TreeEntry{
		{Path: "zebra.txt", ID: blobID, Mode: object.ModeFile},
		{Path: "apple.txt", ID: blobID, Mode: object.ModeExecutable},
		{Path: "src", ID: dirID, Mode: object.ModeDirectory},
	}

	tree := object.NewTree(entries)
	sorted := tree.Entries()
	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"apple.txt", "src", "zebra.txt"}, []string{sorted[0].Path, sorted[1].Path, sorted[2].Path})

	reparsed, err := object.NewTreeFromObject(tree.ToObject())
	require.NoError(t, err)
	assert.Equal(t, tree.ID(), reparsed.ID())
	assert.Equal(t, sorted, reparsed.Entries())
}

func TestTreeMode(t *testing.T) {
	t.Parallel()

	assert.True(t, object.ModeFile.IsValid())
	assert.False(t, object.Mode(0).IsValid())

	assert.Equal(t, object.TypeBlob, object.ModeFile.ObjectType())
	assert.Equal(t, object.TypeTree, object.ModeDirectory.ObjectType())
	assert.Equal(t, object.TypeCommit, object.ModeGitLink.ObjectType())
}

func TestNewTreeFromObjectRejectsWrongType(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("not a tree"))
	_, err := object.NewTreeFromObject(o)
	require.Error(t, err)
}
