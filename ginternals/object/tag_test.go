package object_test

import (
	"testing"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagFromObject(t *testing.T) {
	t.Parallel()

	t.Run("regular tag with all the fields", func(t *testing.T) {
		t.Parallel()

		targetID, _ := ginternals.NewOidFromHex("9785af758bcc96cd7237ba65eb2c9dd1ecaa3321")

		raw := "object " + targetID.String() + "\n" +
			"type commit\n" +
			"tag v1.0.0\n" +
			"tagger Ada Lovelace <ada@example.com> 1566115917 -0700\n" +
			"\ntag message"

		o := object.New(object.TypeTag, []byte(raw))
		tag, err := object.NewTagFromObject(o)
		require.NoError(t, err)

		assert.Equal(t, o.ID(), tag.ID())
		assert.Equal(t, targetID, tag.Target())
		assert.Equal(t, object.TypeCommit, tag.TargetType())
		assert.Equal(t, "v1.0.0", tag.Name())
		assert.Equal(t, "Ada Lovelace", tag.Tagger().Name)
		assert.Equal(t, "tag message", tag.Message())
		assert.Empty(t, tag.GPGSig())
	})

	t.Run("missing tagger fails", func(t *testing.T) {
		t.Parallel()

		targetID, _ := ginternals.NewOidFromHex("9785af758bcc96cd7237ba65eb2c9dd1ecaa3321")
		raw := "object " + targetID.String() + "\ntype commit\ntag v1.0.0\n\nmsg"
		o := object.New(object.TypeTag, []byte(raw))
		_, err := object.NewTagFromObject(o)
		require.Error(t, err)
		assert.ErrorIs(t, err, object.ErrTagInvalid)
	})

	t.Run("wrong object type fails", func(t *testing.T) {
		t.Parallel()

		o := object.New(object.TypeBlob, []byte("not a tag"))
		_, err := object.NewTagFromObject(o)
		require.Error(t, err)
	})
}

func TestNewTag(t *testing.T) {
	t.Parallel()

	target := object.New(object.TypeCommit, []byte("tree abc\n\nmsg"))
	tagger := object.Signature{Name: "Ada Lovelace", Email: "ada@example.com"}

	tag := object.NewTag("v1.0.0", target, tagger, &object.TagOptions{
		Message: "release",
	})

	assert.Equal(t, target.ID(), tag.Target())
	assert.Equal(t, object.TypeCommit, tag.TargetType())
	assert.Equal(t, "release", tag.Message())

	reparsed, err := object.NewTagFromObject(tag.ToObject())
	require.NoError(t, err)
	assert.Equal(t, tag.ID(), reparsed.ID())
}
