package ginternals

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// Head is the name of the reference pointing at the current branch,
// or directly at a commit when detached
const Head = "HEAD"

// maxRefDepth bounds the number of indirections ResolveReference will
// follow before giving up with ErrRefCycle. It mirrors the depth cap
// spec.md calls for instead of unbounded recursion.
const maxRefDepth = 10

// ReferenceType represents the type of a reference
type ReferenceType int8

const (
	// OidReference represents a reference that targets an Oid directly
	OidReference ReferenceType = 1
	// SymbolicReference represents a reference that targets another
	// reference
	SymbolicReference ReferenceType = 2
)

// Reference represents a git reference: a named pointer to an Oid,
// reached either directly or through one or more levels of "ref: "
// indirection
type Reference struct {
	name   string
	target string
	id     Oid
	typ    ReferenceType
}

// NewReference returns a new Reference that targets an object directly
func NewReference(name string, target Oid) *Reference {
	return &Reference{
		typ:  OidReference,
		name: name,
		id:   target,
	}
}

// NewSymbolicReference returns a new Reference that targets another
// reference, e.g. HEAD targeting refs/heads/master
func NewSymbolicReference(name, target string) *Reference {
	return &Reference{
		typ:    SymbolicReference,
		name:   name,
		target: target,
	}
}

// Name returns the full name of the reference, e.g. refs/heads/master
func (ref *Reference) Name() string {
	return ref.name
}

// Target returns the Oid targeted by the reference
func (ref *Reference) Target() Oid {
	return ref.id
}

// Type returns the type of the reference
func (ref *Reference) Type() ReferenceType {
	return ref.typ
}

// SymbolicTarget returns the name of the reference this one points to.
// Only meaningful when Type() == SymbolicReference
func (ref *Reference) SymbolicTarget() string {
	return ref.target
}

// RefContent reads the raw content of the reference file called name.
// It lets ResolveReference stay independent of any particular storage
// backend.
type RefContent func(name string) ([]byte, error)

// ResolveReference follows a (possibly chained) reference to the Oid
// it ultimately targets. Indirection is resolved iteratively and capped
// at maxRefDepth hops; a chain that doesn't terminate within the bound
// fails with ErrRefCycle.
func ResolveReference(name string, finder RefContent) (*Reference, error) {
	first := &Reference{name: name}
	cur := name

	for depth := 0; ; depth++ {
		if depth >= maxRefDepth {
			return nil, xerrors.Errorf("resolving %s: %w", name, ErrRefCycle)
		}

		data, err := finder(cur)
		if err != nil {
			return nil, err
		}
		data = bytes.TrimRight(data, "\n")
		data = bytes.TrimSpace(data)

		if bytes.HasPrefix(data, []byte("ref: ")) {
			next := string(data[len("ref: "):])
			if depth == 0 {
				first.typ = SymbolicReference
				first.target = next
			}
			cur = next
			continue
		}

		oid, err := NewOidFromHex(string(data))
		if err != nil {
			return nil, xerrors.Errorf("reference %s: %w", cur, ErrRefNotFound)
		}

		if depth == 0 {
			first.typ = OidReference
		}
		first.id = oid
		return first, nil
	}
}

// RefTree is a nested, ordered mapping of reference names to either a
// resolved Oid (leaf) or another RefTree (directory)
type RefTree struct {
	// Name is the path segment this node represents
	Name string
	// Oid is set when this node is a leaf reference
	Oid Oid
	// IsLeaf distinguishes a resolved reference from a directory
	IsLeaf bool
	// Children holds the subtree, in sorted name order, when this node
	// is a directory
	Children []*RefTree
}

// RefWalker enumerates the names directly below dir and reports which
// of them are themselves directories. Used by List to stay independent
// of the storage backend.
type RefWalker func(dir string) (names []string, isDir func(name string) bool, err error)

// List walks the refs/ namespace below root (in sorted name order) and
// resolves every reference it finds, building a RefTree whose leaves
// are resolved Oids and whose internal nodes mirror the directory
// layout on disk.
func List(root string, walk RefWalker, finder RefContent) (*RefTree, error) {
	return listDir(root, "", walk, finder)
}

func listDir(root, rel string, walk RefWalker, finder RefContent) (*RefTree, error) {
	dir := root
	if rel != "" {
		dir = root + "/" + rel
	}
	names, isDir, err := walk(dir)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	node := &RefTree{Name: rel}
	for _, name := range names {
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		if isDir(name) {
			child, err := listDir(root, childRel, walk, finder)
			if err != nil {
				return nil, err
			}
			child.Name = name
			node.Children = append(node.Children, child)
			continue
		}

		refName := root + "/" + childRel
		ref, err := ResolveReference(refName, finder)
		if err != nil {
			return nil, xerrors.Errorf("resolving %s: %w", refName, err)
		}
		node.Children = append(node.Children, &RefTree{
			Name:   name,
			Oid:    ref.Target(),
			IsLeaf: true,
		})
	}
	return node, nil
}

// IsRefNameValid returns whether the name of a reference is valid.
// https://stackoverflow.com/a/12093994/382879
func IsRefNameValid(name string) bool {
	if name == "" || name == "/" || name[len(name)-1] == '/' || name[len(name)-1] == '.' {
		return false
	}

	for i, c := range name {
		if c < 32 || c == 127 {
			return false
		}
		if c == '*' || c == '?' || c == '!' || c == '^' {
			return false
		}
		if c == ' ' || c == '[' || c == '\\' || c == ':' {
			return false
		}
		if i < len(name)-1 {
			substr := name[i : i+2]
			if substr == "@{" || substr == ".." {
				return false
			}
		}
	}

	segments := strings.Split(name, "/")
	for _, s := range segments {
		if s == "" || s[0] == '.' || s[len(s)-1] == '.' || strings.HasSuffix(s, ".lock") {
			return false
		}
	}

	return true
}
