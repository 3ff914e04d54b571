package models

import (
	"strings"
	"time"

	id "attest/pkg/domain"
	dErrors "attest/pkg/domain-errors"
)

// Profile holds the public identity attributes a principal declares about
// itself. Owned and mutable only by its principal; never deleted. Absence of
// a stored record distinguishes "never set" from "set with values".
type Profile struct {
	Principal  id.Principal `json:"principal"`
	Name       string       `json:"name"`
	University string       `json:"university"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// NewProfile validates and constructs a profile. Both fields are required;
// subsequent calls for the same principal fully overwrite them.
func NewProfile(principal id.Principal, name, university string, now time.Time) (*Profile, error) {
	name = strings.TrimSpace(name)
	university = strings.TrimSpace(university)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "profile name is required")
	}
	if university == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "university is required")
	}
	return &Profile{
		Principal:  principal,
		Name:       name,
		University: university,
		UpdatedAt:  now,
	}, nil
}

// Clone returns an independent copy safe to hand to readers.
func (p *Profile) Clone() *Profile {
	cp := *p
	return &cp
}
