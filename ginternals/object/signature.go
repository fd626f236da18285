package object

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akerr/qit/internal/readutil"
	"github.com/pkg/errors"
)

// ErrSignatureInvalid is returned when the signature of a commit or tag
// couldn't be parsed
var ErrSignatureInvalid = errors.New("signature is invalid")

// Signature represents the author/committer/tagger of a commit or tag:
// a name, an email, and a point in time
type Signature struct {
	Time  time.Time
	Name  string
	Email string
}

// String returns the signature in its on-disk form:
// "Name <email> timestamp timezone"
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.Time.Unix(), s.Time.Format("-0700"))
}

// IsZero returns whether the signature has its zero value
func (s Signature) IsZero() bool {
	return s.Time.IsZero() && s.Name == "" && s.Email == ""
}

// NewSignature builds a signature for the current instant
func NewSignature(name, email string) Signature {
	return Signature{
		Name:  name,
		Email: email,
		Time:  time.Now(),
	}
}

// NewSignatureFromBytes parses a signature of the form:
// "User Name <user.email@domain.tld> timestamp timezone"
func NewSignatureFromBytes(b []byte) (Signature, error) {
	sig := Signature{}

	data := readutil.ReadTo(b, '<')
	if len(data) == 0 {
		if len(b) == 0 {
			return sig, errors.Wrap(ErrSignatureInvalid, "couldn't retrieve the name")
		}
		return sig, errors.Wrap(ErrSignatureInvalid, "signature stopped after the name")
	}
	sig.Name = strings.TrimSpace(string(data))
	offset := len(data) + 1
	if offset >= len(b) {
		if offset == len(b) {
			return sig, errors.Wrap(ErrSignatureInvalid, "couldn't retrieve the email")
		}
		return sig, errors.Wrap(ErrSignatureInvalid, "signature stopped after the name")
	}

	data = readutil.ReadTo(b[offset:], '>')
	if len(data) == 0 {
		return sig, errors.Wrap(ErrSignatureInvalid, "couldn't retrieve the email")
	}
	sig.Email = string(data)
	offset += len(data) + 2 // +2 to skip "> "
	if offset >= len(b) {
		return sig, errors.Wrap(ErrSignatureInvalid, "signature stopped after the email")
	}

	timestamp := readutil.ReadTo(b[offset:], ' ')
	if len(timestamp) == 0 {
		return sig, errors.Wrap(ErrSignatureInvalid, "couldn't retrieve the timestamp")
	}
	offset += len(timestamp) + 1
	if offset >= len(b) {
		return sig, errors.Wrap(ErrSignatureInvalid, "signature stopped after the timestamp")
	}

	t, err := strconv.ParseInt(string(timestamp), 10, 64)
	if err != nil {
		return sig, errors.Wrapf(err, "invalid timestamp %s", timestamp)
	}
	sig.Time = time.Unix(t, 0)

	timezone := b[offset:]
	tz, err := time.Parse("-0700", string(timezone))
	if err != nil {
		return sig, errors.Wrapf(err, "invalid timezone format %s", timezone)
	}
	sig.Time = sig.Time.In(tz.Location())
	return sig, nil
}
