package object

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/internal/readutil"
	"golang.org/x/xerrors"
)

// ErrTreeInvalid is returned when a tree object's canonical bytes
// cannot be parsed
var ErrTreeInvalid = xerrors.New("tree is invalid")

// Mode represents the mode of an entry inside a tree. Non-standard
// modes are not supported.
type Mode int32

// The modes a tree entry may carry
const (
	ModeFile       Mode = 0o100644
	ModeExecutable Mode = 0o100755
	ModeDirectory  Mode = 0o040000
	ModeSymLink    Mode = 0o120000
	ModeGitLink    Mode = 0o160000
)

// IsValid returns whether the mode is one of the modes this core
// understands
func (m Mode) IsValid() bool {
	switch m {
	case ModeFile, ModeExecutable, ModeDirectory, ModeSymLink, ModeGitLink:
		return true
	default:
		return false
	}
}

// ObjectType returns the type of object an entry with this mode points
// at
func (m Mode) ObjectType() Type {
	switch m {
	case ModeDirectory:
		return TypeTree
	case ModeGitLink:
		return TypeCommit
	default:
		return TypeBlob
	}
}

// TreeEntry represents a single entry of a tree: a name, the mode it
// was recorded with, and the Oid of the blob/tree/commit it points at
type TreeEntry struct {
	Path string
	ID   ginternals.Oid
	Mode Mode
}

// Tree represents a tree object: a flat list of named entries, each
// pointing at a blob, a sub-tree, or (for submodules) a commit
type Tree struct {
	rawObject *Object
	entries   []TreeEntry
}

// NewTree returns a new Tree from the given entries. Entries are
// sorted by path before serialization; duplicate paths are not
// checked.
func NewTree(entries []TreeEntry) *Tree {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	t := &Tree{entries: sorted}
	t.rawObject = t.toObject()
	return t
}

// NewTreeFromObject parses a tree from a raw Object.
//
// A tree is a sequence of entries back to back, each in the form:
//
//	{octal_mode} {path_name}\0{20-byte binary oid}
func NewTreeFromObject(o *Object) (*Tree, error) {
	if o.Type() != TypeTree {
		return nil, xerrors.Errorf("type %s is not a tree: %w", o.Type(), ginternals.ErrUnknownType)
	}

	var entries []TreeEntry
	objData := o.Bytes()
	offset := 0
	for i := 1; offset < len(objData); i++ {
		data := readutil.ReadTo(objData[offset:], ' ')
		if len(data) == 0 {
			return nil, xerrors.Errorf("could not retrieve the mode of entry %d: %w", i, ErrTreeInvalid)
		}
		offset += len(data) + 1
		mode, err := strconv.ParseInt(string(data), 8, 32)
		if err != nil {
			return nil, xerrors.Errorf("could not parse mode of entry %d: %w", i, ErrTreeInvalid)
		}

		data = readutil.ReadTo(objData[offset:], 0)
		if len(data) == 0 {
			return nil, xerrors.Errorf("could not retrieve the path of entry %d: %w", i, ErrTreeInvalid)
		}
		offset += len(data) + 1
		path := string(data)

		if offset+ginternals.OidSize > len(objData) {
			return nil, xerrors.Errorf("not enough space to retrieve the ID of entry %d: %w", i, ErrTreeInvalid)
		}
		id, err := ginternals.NewOidFromBytes(objData[offset : offset+ginternals.OidSize])
		if err != nil {
			return nil, xerrors.Errorf("invalid oid for entry %d: %w", i, ErrTreeInvalid)
		}
		offset += ginternals.OidSize

		entries = append(entries, TreeEntry{Path: path, ID: id, Mode: Mode(mode)})
	}

	return &Tree{rawObject: o, entries: entries}, nil
}

// Entries returns a copy of the tree's entries, sorted by path
func (t *Tree) Entries() []TreeEntry {
	out := make([]TreeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ID returns the tree's Oid
func (t *Tree) ID() ginternals.Oid {
	return t.rawObject.ID()
}

// ToObject returns the underlying Object
func (t *Tree) ToObject() *Object {
	return t.rawObject
}

func (t *Tree) toObject() *Object {
	buf := new(bytes.Buffer)
	for _, e := range t.entries {
		buf.WriteString(strconv.FormatInt(int64(e.Mode), 8))
		buf.WriteByte(' ')
		buf.WriteString(e.Path)
		buf.WriteByte(0)
		buf.Write(e.ID.Bytes())
	}
	return New(TypeTree, buf.Bytes())
}
