package object

import (
	"github.com/akerr/qit/ginternals"
	"golang.org/x/xerrors"
)

// ErrTagInvalid is returned when a tag object's canonical bytes cannot
// be parsed, or are missing a required field
var ErrTagInvalid = xerrors.New("tag is invalid")

// KVLM header keys used by a tag
const (
	tagKeyObject = "object"
	tagKeyType   = "type"
	tagKeyTag    = "tag"
	tagKeyTagger = "tagger"
	tagKeyGPGSig = "gpgsig"
)

// TagOptions holds the optional data used to create a tag
type TagOptions struct {
	Message string
	GPGSig  string
}

// Tag represents a tag object: a name, a pointer to a single target
// object of any type, a tagger, and a message. Tag is structurally
// parallel to Commit (both are a KVLM plus a message) but is its own
// type, not a subtype of Commit.
type Tag struct {
	rawObject *Object
	kvlm      *KVLM

	tagger  Signature
	name    string
	message string
	gpgSig  string

	target     ginternals.Oid
	targetType Type
}

// NewTag creates a new Tag pointing at target
func NewTag(name string, target *Object, tagger Signature, opts *TagOptions) *Tag {
	t := &Tag{
		name:       name,
		target:     target.ID(),
		targetType: target.Type(),
		tagger:     tagger,
	}
	if opts != nil {
		t.message = opts.Message
		t.gpgSig = opts.GPGSig
	}
	t.rawObject = t.toObject()
	return t
}

// NewTagFromObject parses a tag from its KVLM-encoded Object.
//
// The gpgsig header is optional.
func NewTagFromObject(o *Object) (*Tag, error) {
	if o.Type() != TypeTag {
		return nil, xerrors.Errorf("type %s is not a tag: %w", o.Type(), ginternals.ErrUnknownType)
	}
	kvlm, err := ParseKVLM(o.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("could not parse tag: %w", err)
	}

	t := &Tag{rawObject: o, kvlm: kvlm, message: string(kvlm.Message())}

	targetRaw, ok := kvlm.Get(tagKeyObject)
	if !ok {
		return nil, xerrors.Errorf("tag has no target: %w", ErrTagInvalid)
	}
	t.target, err = ginternals.NewOidFromHex(string(targetRaw))
	if err != nil {
		return nil, xerrors.Errorf("could not parse target id %q: %w", targetRaw, err)
	}

	typeRaw, ok := kvlm.Get(tagKeyType)
	if !ok {
		return nil, xerrors.Errorf("tag has no type: %w", ErrTagInvalid)
	}
	t.targetType, err = NewTypeFromString(string(typeRaw))
	if err != nil {
		return nil, xerrors.Errorf("invalid target type %q: %w", typeRaw, err)
	}

	if nameRaw, ok := kvlm.Get(tagKeyTag); ok {
		t.name = string(nameRaw)
	}

	taggerRaw, ok := kvlm.Get(tagKeyTagger)
	if !ok {
		return nil, xerrors.Errorf("tag has no tagger: %w", ErrTagInvalid)
	}
	t.tagger, err = NewSignatureFromBytes(taggerRaw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse tagger signature: %w", err)
	}

	if gpgSig, ok := kvlm.Get(tagKeyGPGSig); ok {
		t.gpgSig = string(gpgSig)
	}

	return t, nil
}

// ID returns the tag's Oid
func (t *Tag) ID() ginternals.Oid {
	return t.rawObject.ID()
}

// Target returns the Oid of the object the tag points at
func (t *Tag) Target() ginternals.Oid {
	return t.target
}

// TargetType returns the type of the object the tag points at
func (t *Tag) TargetType() Type {
	return t.targetType
}

// Name returns the tag's name
func (t *Tag) Name() string {
	return t.name
}

// Tagger returns the signature of the person who created the tag
func (t *Tag) Tagger() Signature {
	return t.tagger
}

// Message returns the tag's message
func (t *Tag) Message() string {
	return t.message
}

// GPGSig returns the tag's GPG signature, if any
func (t *Tag) GPGSig() string {
	return t.gpgSig
}

// ToObject returns the underlying Object
func (t *Tag) ToObject() *Object {
	if t.rawObject != nil {
		return t.rawObject
	}
	t.rawObject = t.toObject()
	return t.rawObject
}

func (t *Tag) toObject() *Object {
	kvlm := NewKVLM()
	kvlm.Add(tagKeyObject, []byte(t.target.String()))
	kvlm.Add(tagKeyType, []byte(t.targetType.String()))
	kvlm.Add(tagKeyTag, []byte(t.name))
	kvlm.Add(tagKeyTagger, []byte(t.Tagger().String()))
	if t.gpgSig != "" {
		kvlm.Add(tagKeyGPGSig, []byte(t.gpgSig))
	}
	kvlm.SetMessage([]byte(t.message))
	return New(TypeTag, kvlm.Bytes())
}
