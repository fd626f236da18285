package object

import "github.com/akerr/qit/ginternals"

// Blob represents a blob object: an opaque byte sequence with no
// internal structure
type Blob struct {
	rawObject *Object
}

// NewBlob wraps a raw Object as a Blob. The object must be of type
// TypeBlob; this is not checked since blobs have no structure to
// validate.
func NewBlob(o *Object) *Blob {
	return &Blob{rawObject: o}
}

// NewBlobFromContent creates a new Blob from arbitrary content
func NewBlobFromContent(content []byte) *Blob {
	return &Blob{rawObject: New(TypeBlob, content)}
}

// ID returns the blob's Oid
func (b *Blob) ID() ginternals.Oid {
	return b.rawObject.ID()
}

// Bytes returns the blob's content
func (b *Blob) Bytes() []byte {
	return b.rawObject.Bytes()
}

// Size returns the size of the blob's content
func (b *Blob) Size() int {
	return b.rawObject.Size()
}

// ToObject returns the Blob's underlying Object
func (b *Blob) ToObject() *Object {
	return b.rawObject
}
