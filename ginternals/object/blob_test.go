package object_test

import (
	"testing"

	"github.com/akerr/qit/ginternals/object"
	"github.com/stretchr/testify/assert"
)

func TestBlob(t *testing.T) {
	t.Parallel()

	content := []byte("package main\n")
	blob := object.NewBlobFromContent(content)

	assert.Equal(t, content, blob.Bytes())
	assert.Equal(t, len(content), blob.Size())
	assert.Equal(t, object.TypeBlob, blob.ToObject().Type())

	roundTrip := object.NewBlob(blob.ToObject())
	assert.Equal(t, blob.ID(), roundTrip.ID())
}
