package domain

import (
	"strings"

	dErrors "attest/pkg/domain-errors"
)

// Principal is the opaque identity acting as caller or owner of registry
// records. It is typically a public-key-derived address supplied by the host
// authentication layer; the registry assumes no internal structure beyond
// non-emptiness.
type Principal string

// MaxPrincipalLength bounds principal identifiers at trust boundaries.
// Addresses from every chain and key scheme we have seen fit well under this.
const MaxPrincipalLength = 128

// ParsePrincipal validates an externally supplied principal identifier.
func ParsePrincipal(s string) (Principal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "principal is required")
	}
	if len(s) > MaxPrincipalLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "principal exceeds maximum length")
	}
	return Principal(s), nil
}

func (p Principal) String() string { return string(p) }

// IsZero reports whether the principal is unset.
func (p Principal) IsZero() bool { return p == "" }
