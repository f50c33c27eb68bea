package fleet

import "regexp"

// Identity is an opaque, host-verified account reference. It keys the
// owner/user registries and is the subject of every authorization check.
type Identity string

const (
	minIdentityLen = 2
	maxIdentityLen = 64
)

// lowercase alphanumeric parts joined by single '-', '_' or '.' separators
var identityPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

func ParseIdentity(s string) (Identity, error) {
	if len(s) < minIdentityLen || len(s) > maxIdentityLen || !identityPattern.MatchString(s) {
		return "", ErrInvalidIdentity
	}
	return Identity(s), nil
}

func (id Identity) String() string {
	return string(id)
}
