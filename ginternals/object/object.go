// Package object contains the four git object variants (blob, tree,
// commit, tag) and the codec that turns their canonical bytes into
// typed values and back.
package object

import (
	"bytes"
	"compress/zlib"
	"io"
	"strconv"
	"sync"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/internal/errutil"
	"github.com/akerr/qit/internal/readutil"
	"golang.org/x/xerrors"
)

// Type represents the type of an object as stored on disk
type Type int8

// The four object variants this core understands
const (
	TypeCommit Type = 1
	TypeTree   Type = 2
	TypeBlob   Type = 3
	TypeTag    Type = 4
)

// String returns the on-disk ascii representation of the type
func (t Type) String() string {
	switch t {
	case TypeCommit:
		return "commit"
	case TypeTree:
		return "tree"
	case TypeBlob:
		return "blob"
	case TypeTag:
		return "tag"
	default:
		return "unknown"
	}
}

// NewTypeFromString parses the ascii type tag found at the start of an
// object's canonical bytes
func NewTypeFromString(t string) (Type, error) {
	switch t {
	case "commit":
		return TypeCommit, nil
	case "tree":
		return TypeTree, nil
	case "blob":
		return TypeBlob, nil
	case "tag":
		return TypeTag, nil
	default:
		return 0, ginternals.ErrUnknownType
	}
}

// Object represents a generic git object: a type tag plus a payload.
// The four variants (Blob, Tree, Commit, Tag) are views built on top of
// an Object's payload; Object itself only knows how to hash, compress,
// and decompress.
type Object struct {
	typ     Type
	content []byte

	idOnce sync.Once
	id     ginternals.Oid
}

// New creates a new Object of the given type wrapping the given
// canonical payload
func New(typ Type, content []byte) *Object {
	return &Object{typ: typ, content: content}
}

// Type returns the object's type
func (o *Object) Type() Type {
	return o.typ
}

// Bytes returns the object's canonical payload (the bytes that follow
// the "type SP size NUL" header)
func (o *Object) Bytes() []byte {
	return o.content
}

// Size returns the size of the object's payload
func (o *Object) Size() int {
	return len(o.content)
}

// ID returns the object's Oid: the SHA-1 of its canonical
// "type SP size NUL payload" bytes. Computed lazily and cached.
func (o *Object) ID() ginternals.Oid {
	o.idOnce.Do(func() {
		o.id = ginternals.NewOidFromContent(o.header())
	})
	return o.id
}

// header returns the full canonical byte form: type, space, ascii
// decimal size, NUL, payload
func (o *Object) header() []byte {
	w := new(bytes.Buffer)
	w.WriteString(o.typ.String())
	w.WriteByte(' ')
	w.WriteString(strconv.Itoa(o.Size()))
	w.WriteByte(0)
	w.Write(o.content)
	return w.Bytes()
}

// Compress returns the object's on-disk bytes: the canonical form,
// zlib-deflated
func (o *Object) Compress() (data []byte, err error) {
	compressed := new(bytes.Buffer)
	zw := zlib.NewWriter(compressed)

	if _, err = zw.Write(o.header()); err != nil {
		zw.Close() //nolint:errcheck // the write error is the one reported
		return nil, xerrors.Errorf("could not compress object: %w", err)
	}
	// Close flushes the buffered deflate output, so it must happen
	// before the buffer is read
	if err = zw.Close(); err != nil {
		return nil, xerrors.Errorf("could not compress object: %w", err)
	}
	return compressed.Bytes(), nil
}

// Decompress parses a zlib-deflated, canonically-formatted object from
// r: "type SP size NUL payload".
func Decompress(r io.Reader) (o *Object, err error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, xerrors.Errorf("could not open zlib reader: %w", err)
	}
	defer errutil.Close(zr, &err)

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object: %w", err)
	}

	return Parse(raw)
}

// Parse parses the canonical, already-decompressed "type SP size NUL
// payload" bytes of an object.
func Parse(raw []byte) (*Object, error) {
	typRaw := readutil.ReadTo(raw, ' ')
	if typRaw == nil {
		return nil, xerrors.Errorf("could not find object type: %w", ginternals.ErrMalformedObject)
	}
	typ, err := NewTypeFromString(string(typRaw))
	if err != nil {
		return nil, err
	}
	offset := len(typRaw) + 1

	sizeRaw := readutil.ReadTo(raw[offset:], 0)
	if sizeRaw == nil {
		return nil, xerrors.Errorf("could not find object size: %w", ginternals.ErrMalformedObject)
	}
	size, err := strconv.Atoi(string(sizeRaw))
	if err != nil {
		return nil, xerrors.Errorf("invalid object size %q: %w", sizeRaw, ginternals.ErrMalformedObject)
	}
	offset += len(sizeRaw) + 1

	payload := raw[offset:]
	if size != len(payload) {
		return nil, xerrors.Errorf("object declares size %d but has %d: %w", size, len(payload), ginternals.ErrMalformedObject)
	}

	return New(typ, payload), nil
}
