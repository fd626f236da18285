// Package ginternals contains the low-level types shared across the
// object database and the reference store: object identifiers, typed
// errors, and reference resolution.
package ginternals

import (
	"crypto/sha1" //nolint:gosec // sha1 is the on-disk hash algorithm of the format we're reading
	"encoding/hex"
)

// OidSize is the length of an Oid, in bytes
const OidSize = 20

// NullOid is the zero-value Oid
var NullOid = Oid{}

// Oid represents an object id: the SHA-1 hash of an object's canonical
// bytes
type Oid [OidSize]byte

// Bytes returns the raw 20 bytes of the Oid
func (o Oid) Bytes() []byte {
	return o[:]
}

// String renders the Oid as 40 lowercase hex characters
func (o Oid) String() string {
	return hex.EncodeToString(o[:])
}

// IsZero returns whether the Oid is the zero value (NullOid)
func (o Oid) IsZero() bool {
	return o == NullOid
}

// NewOidFromContent returns the Oid of the given content: the SHA-1 sum
// of the bytes
func NewOidFromContent(content []byte) Oid {
	return sha1.Sum(content) //nolint:gosec
}

// NewOidFromBytes builds an Oid from a 20-byte binary hash, as found in
// a tree entry
func NewOidFromBytes(b []byte) (Oid, error) {
	if len(b) != OidSize {
		return NullOid, ErrMalformedObject
	}
	var oid Oid
	copy(oid[:], b)
	return oid, nil
}

// NewOidFromHex builds an Oid from its 40 character hex representation
func NewOidFromHex(s string) (Oid, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return NullOid, ErrMalformedObject
	}
	return NewOidFromBytes(b)
}
