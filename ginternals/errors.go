package ginternals

import "errors"

// Errors returned by the repository, object database, and reference
// store. Higher layers (CLI, etc.) are expected to match on these with
// errors.Is/xerrors.Is even after the error has been wrapped.
var (
	// ErrNotARepository is returned when opening a path whose metadata
	// directory doesn't exist
	ErrNotARepository = errors.New("not a git repository")

	// ErrUnsupportedFormat is returned when a repository's
	// core.repositoryformatversion isn't 0
	ErrUnsupportedFormat = errors.New("unsupported repository format version")

	// ErrNotADirectory is returned when a path that's expected to be a
	// directory turns out to be a regular file
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotEmpty is returned when repo.Create targets a non-empty
	// directory
	ErrNotEmpty = errors.New("directory is not empty")

	// ErrMalformedObject is returned when an object's header or size
	// doesn't parse, or a hash isn't the right length
	ErrMalformedObject = errors.New("malformed object")

	// ErrUnknownType is returned when an object's type tag isn't one of
	// blob, tree, commit, tag
	ErrUnknownType = errors.New("unknown object type")

	// ErrUnknownRef is returned when name resolution produces no
	// candidate object
	ErrUnknownRef = errors.New("unknown revision or path not in the working tree")

	// ErrAmbiguousRef is returned when name resolution produces more
	// than one candidate object
	ErrAmbiguousRef = errors.New("ambiguous reference")

	// ErrRefCycle is returned when reference indirection exceeds the
	// depth bound
	ErrRefCycle = errors.New("reference indirection cycle")

	// ErrRefNotFound is returned when reading a reference file that
	// doesn't exist
	ErrRefNotFound = errors.New("reference not found")

	// ErrObjectNotFound is an error corresponding to a git object not
	// being found in the object database
	ErrObjectNotFound = errors.New("object not found")
)

// AmbiguousRefError is the error carried alongside ErrAmbiguousRef; it
// lists every candidate hash the resolver found for the ambiguous name.
type AmbiguousRefError struct {
	Name       string
	Candidates []Oid
}

// Error implements the error interface
func (e *AmbiguousRefError) Error() string {
	return "short object ID " + e.Name + " is ambiguous"
}

// Unwrap allows errors.Is(err, ErrAmbiguousRef) to succeed
func (e *AmbiguousRefError) Unwrap() error {
	return ErrAmbiguousRef
}
