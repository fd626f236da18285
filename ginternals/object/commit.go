package object

import (
	"github.com/akerr/qit/ginternals"
	"golang.org/x/xerrors"
)

// ErrCommitInvalid is returned when a commit object's canonical bytes
// cannot be parsed, or are missing a required field
var ErrCommitInvalid = xerrors.New("commit is invalid")

// KVLM header keys used by a commit
const (
	commitKeyTree   = "tree"
	commitKeyParent = "parent"
	commitKeyAuthor = "author"
	commitKeyCommit = "committer"
	commitKeyGPGSig = "gpgsig"
)

// CommitOptions holds the optional data used to create a commit
type CommitOptions struct {
	Message string
	GPGSig  string
	// Committer is the person recording the commit. If zero, the
	// author is used as committer.
	Committer Signature
	ParentIDs []ginternals.Oid
}

// Commit represents a commit object: a pointer to a tree, zero or more
// parent commits, an author, a committer, and a message
type Commit struct {
	rawObject *Object
	kvlm      *KVLM

	author    Signature
	committer Signature

	gpgSig  string
	message string

	parentIDs []ginternals.Oid
	treeID    ginternals.Oid
}

// NewCommit creates a new Commit. Provided Oids are not checked
// against the object database.
func NewCommit(treeID ginternals.Oid, author Signature, opts *CommitOptions) *Commit {
	c := &Commit{
		treeID:    treeID,
		author:    author,
		committer: opts.Committer,
		message:   opts.Message,
		parentIDs: opts.ParentIDs,
		gpgSig:    opts.GPGSig,
	}
	if c.committer.IsZero() {
		c.committer = author
	}
	c.rawObject = c.toObject()
	return c
}

// NewCommitFromObject parses a commit from its KVLM-encoded Object.
//
// A commit has 0, 1, or many "parent" lines: the first commit of a
// repository has none, a regular commit has one, and a (non-fast-
// forward) merge has two or more. The gpgsig header is optional.
func NewCommitFromObject(o *Object) (*Commit, error) {
	if o.Type() != TypeCommit {
		return nil, xerrors.Errorf("type %s is not a commit: %w", o.Type(), ginternals.ErrUnknownType)
	}
	kvlm, err := ParseKVLM(o.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("could not parse commit: %w", err)
	}

	c := &Commit{rawObject: o, kvlm: kvlm, message: string(kvlm.Message())}

	treeRaw, ok := kvlm.Get(commitKeyTree)
	if !ok {
		return nil, xerrors.Errorf("commit has no tree: %w", ErrCommitInvalid)
	}
	c.treeID, err = ginternals.NewOidFromHex(string(treeRaw))
	if err != nil {
		return nil, xerrors.Errorf("could not parse tree id %q: %w", treeRaw, err)
	}

	for _, p := range kvlm.GetAll(commitKeyParent) {
		oid, err := ginternals.NewOidFromHex(string(p))
		if err != nil {
			return nil, xerrors.Errorf("could not parse parent id %q: %w", p, err)
		}
		c.parentIDs = append(c.parentIDs, oid)
	}

	authorRaw, ok := kvlm.Get(commitKeyAuthor)
	if !ok {
		return nil, xerrors.Errorf("commit has no author: %w", ErrCommitInvalid)
	}
	c.author, err = NewSignatureFromBytes(authorRaw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse author signature: %w", err)
	}

	if committerRaw, ok := kvlm.Get(commitKeyCommit); ok {
		c.committer, err = NewSignatureFromBytes(committerRaw)
		if err != nil {
			return nil, xerrors.Errorf("could not parse committer signature: %w", err)
		}
	}

	if gpgSig, ok := kvlm.Get(commitKeyGPGSig); ok {
		c.gpgSig = string(gpgSig)
	}

	return c, nil
}

// ID returns the commit's Oid
func (c *Commit) ID() ginternals.Oid {
	return c.rawObject.ID()
}

// Author returns the signature of the person that made the changes
func (c *Commit) Author() Signature {
	return c.author
}

// Committer returns the signature of the person that recorded the commit
func (c *Commit) Committer() Signature {
	return c.committer
}

// Message returns the commit's message
func (c *Commit) Message() string {
	return c.message
}

// ParentIDs returns a copy of the commit's parent Oids, in order
func (c *Commit) ParentIDs() []ginternals.Oid {
	out := make([]ginternals.Oid, len(c.parentIDs))
	copy(out, c.parentIDs)
	return out
}

// TreeID returns the Oid of the commit's tree
func (c *Commit) TreeID() ginternals.Oid {
	return c.treeID
}

// GPGSig returns the commit's GPG signature, if any
func (c *Commit) GPGSig() string {
	return c.gpgSig
}

// ToObject returns the underlying Object
func (c *Commit) ToObject() *Object {
	if c.rawObject != nil {
		return c.rawObject
	}
	c.rawObject = c.toObject()
	return c.rawObject
}

func (c *Commit) toObject() *Object {
	kvlm := NewKVLM()
	kvlm.Add(commitKeyTree, []byte(c.treeID.String()))
	for _, p := range c.parentIDs {
		kvlm.Add(commitKeyParent, []byte(p.String()))
	}
	kvlm.Add(commitKeyAuthor, []byte(c.Author().String()))
	kvlm.Add(commitKeyCommit, []byte(c.Committer().String()))
	if c.gpgSig != "" {
		kvlm.Add(commitKeyGPGSig, []byte(c.gpgSig))
	}
	kvlm.SetMessage([]byte(c.message))
	return New(TypeCommit, kvlm.Bytes())
}
