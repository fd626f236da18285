package object

import (
	"bytes"

	"golang.org/x/xerrors"
)

// ErrKVLMInvalid is returned when a key-value-list-with-message blob
// cannot be parsed
var ErrKVLMInvalid = xerrors.New("malformed key-value-list-with-message")

// kvlmPair is one key/value entry of a KVLM, in the order it was read
// or inserted
type kvlmPair struct {
	key   string
	value []byte
}

// KVLM is an ordered multimap of headers, with a trailing free-form
// message, used as the common wire format of both commit and tag
// objects: a list of "key SP value" lines (values spanning multiple
// physical lines are folded with a leading space, the way gpgsig
// values are), followed by a blank line and the message.
//
// Insertion order and duplicate keys (e.g. multiple "parent" lines on
// a merge commit) are preserved: this is a multimap, not a map.
type KVLM struct {
	pairs   []kvlmPair
	message []byte
}

// NewKVLM returns an empty KVLM
func NewKVLM() *KVLM {
	return &KVLM{}
}

// Add appends a key/value pair to the end of the list. Adding the same
// key twice keeps both entries.
func (k *KVLM) Add(key string, value []byte) {
	k.pairs = append(k.pairs, kvlmPair{key: key, value: value})
}

// Get returns the first value associated to key
func (k *KVLM) Get(key string) ([]byte, bool) {
	for _, p := range k.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return nil, false
}

// GetAll returns every value associated to key, in insertion order
func (k *KVLM) GetAll(key string) [][]byte {
	var out [][]byte
	for _, p := range k.pairs {
		if p.key == key {
			out = append(out, p.value)
		}
	}
	return out
}

// Keys returns every key in insertion order, including duplicates
func (k *KVLM) Keys() []string {
	out := make([]string, len(k.pairs))
	for i, p := range k.pairs {
		out[i] = p.key
	}
	return out
}

// Message returns the KVLM's free-form message
func (k *KVLM) Message() []byte {
	return k.message
}

// SetMessage sets the KVLM's free-form message
func (k *KVLM) SetMessage(msg []byte) {
	k.message = msg
}

// ParseKVLM parses the canonical bytes of a KVLM: an iterative,
// line-by-line scan. The parser never recurses, so an object with an
// arbitrarily large number of header lines (e.g. a merge with
// thousands of parents) cannot blow the stack.
func ParseKVLM(data []byte) (*KVLM, error) {
	k := NewKVLM()
	offset := 0
	for {
		nl := bytes.IndexByte(data[offset:], '\n')
		if nl == -1 {
			return nil, xerrors.Errorf("unterminated header line: %w", ErrKVLMInvalid)
		}
		// An empty line ends the header section: everything after it
		// is the message
		if nl == 0 {
			offset++
			k.message = data[offset:]
			return k, nil
		}

		line := data[offset : offset+nl]
		sp := bytes.IndexByte(line, ' ')
		if sp == -1 {
			return nil, xerrors.Errorf("header line has no key/value separator: %w", ErrKVLMInvalid)
		}
		key := string(line[:sp])
		value := append([]byte(nil), line[sp+1:]...)
		offset += nl + 1

		// Fold continuation lines (values that span multiple physical
		// lines, each continuation prefixed with a single space) back
		// into the current value
		for offset < len(data) && data[offset] == ' ' {
			nl = bytes.IndexByte(data[offset:], '\n')
			if nl == -1 {
				return nil, xerrors.Errorf("unterminated continuation line: %w", ErrKVLMInvalid)
			}
			value = append(value, '\n')
			value = append(value, data[offset+1:offset+nl]...)
			offset += nl + 1
		}

		k.Add(key, value)

		if offset >= len(data) {
			return k, nil
		}
	}
}

// Bytes serializes the KVLM back to its canonical form: every header
// pair in insertion order (continuation lines re-folded), a blank
// line, then the message written exactly once.
func (k *KVLM) Bytes() []byte {
	buf := new(bytes.Buffer)
	for _, p := range k.pairs {
		buf.WriteString(p.key)
		buf.WriteByte(' ')
		// Re-fold any embedded newlines (e.g. a multi-line gpgsig) by
		// prefixing every continuation line with a single space
		folded := bytes.ReplaceAll(p.value, []byte{'\n'}, []byte{'\n', ' '})
		buf.Write(folded)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(k.message)
	return buf.Bytes()
}
