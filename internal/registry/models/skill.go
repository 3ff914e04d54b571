package models

import (
	"strings"
	"time"

	id "attest/pkg/domain"
	dErrors "attest/pkg/domain-errors"
)

// Skill is the aggregate root for one declared skill, keyed by
// (owner, name) among the owner's currently active skills.
//
// Invariants:
//   - Name is non-empty and at most 128 characters
//   - VerificationCount() == len(Verifiers) at all times
//   - No principal appears twice in Verifiers (verified map enforces this)
//   - Owner never appears in its own Verifiers
//   - LastVerifiedAt is zero until the first verification, then
//     monotonically non-decreasing
//
// Revocation destroys the record entirely; re-adding the same name creates a
// wholly new record with a fresh verifier set and timestamps.
type Skill struct {
	Owner          id.Principal
	Name           string
	Description    string
	AddedAt        time.Time
	LastVerifiedAt time.Time
	// Verifiers preserves insertion order for enumeration.
	Verifiers []id.Principal
	// Verified backs O(1) duplicate checks; keep it in sync with Verifiers.
	Verified map[id.Principal]bool
}

// MaxSkillNameLength bounds skill names at trust boundaries.
const MaxSkillNameLength = 128

// NewSkill validates and constructs a fresh skill record with an empty
// verifier set.
func NewSkill(owner id.Principal, name, description string, now time.Time) (*Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "skill name is required")
	}
	if len(name) > MaxSkillNameLength {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "skill name exceeds maximum length")
	}
	return &Skill{
		Owner:       owner,
		Name:        name,
		Description: description,
		AddedAt:     now,
		Verified:    make(map[id.Principal]bool),
	}, nil
}

// VerificationCount derives the count from the verifier set, so the
// count-equals-set-size invariant cannot drift.
func (s *Skill) VerificationCount() int { return len(s.Verifiers) }

// HasVerifier reports whether the principal already verified this skill.
func (s *Skill) HasVerifier(p id.Principal) bool { return s.Verified[p] }

// CanVerify checks whether caller may verify this skill.
// Returns CodeForbidden for the owner and CodeAlreadyVerified for a repeat
// caller. Use with ApplyVerification in store Execute callbacks.
func (s *Skill) CanVerify(caller id.Principal) error {
	if caller == s.Owner {
		return dErrors.New(dErrors.CodeForbidden, "owner cannot verify own skill")
	}
	if s.Verified[caller] {
		return dErrors.New(dErrors.CodeAlreadyVerified, "skill already verified by this principal")
	}
	return nil
}

// ApplyVerification appends caller to the ordered verifier set and advances
// the verification timestamp. Call CanVerify first.
func (s *Skill) ApplyVerification(caller id.Principal, now time.Time) {
	if s.Verified == nil {
		s.Verified = make(map[id.Principal]bool)
	}
	s.Verifiers = append(s.Verifiers, caller)
	s.Verified[caller] = true
	if now.After(s.LastVerifiedAt) {
		s.LastVerifiedAt = now
	}
}

// Clone returns an independent deep copy so readers see a consistent
// snapshot while mutations proceed under the store lock.
func (s *Skill) Clone() *Skill {
	cp := *s
	cp.Verifiers = append([]id.Principal(nil), s.Verifiers...)
	cp.Verified = make(map[id.Principal]bool, len(s.Verified))
	for k, v := range s.Verified {
		cp.Verified[k] = v
	}
	return &cp
}

// Snapshot is the externally visible view of a skill: the full record minus
// the internal per-principal verification flags.
type Snapshot struct {
	Owner             id.Principal   `json:"owner"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	VerificationCount int            `json:"verification_count"`
	AddedAt           time.Time      `json:"added_at"`
	LastVerifiedAt    time.Time      `json:"last_verified_at,omitzero"`
	Verifiers         []id.Principal `json:"verifiers"`
}

// Snapshot projects the skill into its external view.
func (s *Skill) Snapshot() *Snapshot {
	return &Snapshot{
		Owner:             s.Owner,
		Name:              s.Name,
		Description:       s.Description,
		VerificationCount: s.VerificationCount(),
		AddedAt:           s.AddedAt,
		LastVerifiedAt:    s.LastVerifiedAt,
		Verifiers:         append([]id.Principal(nil), s.Verifiers...),
	}
}
