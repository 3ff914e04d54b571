// Package events defines the registry's notification surface: the four
// events emitted after successful mutations, consumed by external indexers
// and UIs. Kept transport-agnostic so sinks can fan out.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	id "attest/pkg/domain"
)

// Type discriminates event payloads on the wire.
type Type string

const (
	TypeProfileUpdated Type = "profile.updated"
	TypeSkillAdded     Type = "skill.added"
	TypeSkillVerified  Type = "skill.verified"
	TypeSkillRevoked   Type = "skill.revoked"
)

// Event is the envelope every notification travels in. Principal identifies
// the profile owner or skill owner the event concerns, which doubles as the
// partition key so per-principal ordering survives transport.
type Event struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	Principal  id.Principal    `json:"principal"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// ProfileUpdated is emitted after setProfile succeeds.
type ProfileUpdated struct {
	Principal  id.Principal `json:"principal"`
	Name       string       `json:"name"`
	University string       `json:"university"`
}

// SkillAdded is emitted after addSkill succeeds.
type SkillAdded struct {
	Principal   id.Principal `json:"principal"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
}

// SkillVerified is emitted after verifySkill succeeds, carrying the new
// verification count.
type SkillVerified struct {
	Owner             id.Principal `json:"owner"`
	Name              string       `json:"name"`
	VerificationCount int          `json:"verification_count"`
}

// SkillRevoked is emitted after revokeSkill succeeds.
type SkillRevoked struct {
	Owner id.Principal `json:"owner"`
	Name  string       `json:"name"`
}

func NewProfileUpdated(p ProfileUpdated, at time.Time) Event {
	return newEvent(TypeProfileUpdated, p.Principal, at, p)
}

func NewSkillAdded(p SkillAdded, at time.Time) Event {
	return newEvent(TypeSkillAdded, p.Principal, at, p)
}

func NewSkillVerified(p SkillVerified, at time.Time) Event {
	return newEvent(TypeSkillVerified, p.Owner, at, p)
}

func NewSkillRevoked(p SkillRevoked, at time.Time) Event {
	return newEvent(TypeSkillRevoked, p.Owner, at, p)
}

func newEvent(t Type, principal id.Principal, at time.Time, payload any) Event {
	raw, err := json.Marshal(payload)
	if err != nil {
		// Payload structs above contain only strings and ints; a marshal
		// failure here is a programming error.
		panic(err)
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		Principal:  principal,
		OccurredAt: at,
		Payload:    raw,
	}
}
