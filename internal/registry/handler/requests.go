package handler

import (
	"strings"

	dErrors "attest/pkg/domain-errors"
)

// Request size limits. Deeper validation (emptiness after trim, name
// length) lives in the models; these just keep obviously hostile payloads
// out of the domain layer.
const (
	maxNameLength        = 128
	maxUniversityLength  = 256
	maxDescriptionLength = 1024
)

// SetProfileRequest is the body of PUT /v1/profile.
type SetProfileRequest struct {
	Name       string `json:"name"`
	University string `json:"university"`
}

func (r *SetProfileRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if len(r.Name) > maxNameLength {
		return dErrors.New(dErrors.CodeInvalidInput, "name exceeds maximum length")
	}
	if strings.TrimSpace(r.University) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "university is required")
	}
	if len(r.University) > maxUniversityLength {
		return dErrors.New(dErrors.CodeInvalidInput, "university exceeds maximum length")
	}
	return nil
}

// AddSkillRequest is the body of POST /v1/skills.
type AddSkillRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *AddSkillRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "skill name is required")
	}
	if len(r.Name) > maxNameLength {
		return dErrors.New(dErrors.CodeInvalidInput, "skill name exceeds maximum length")
	}
	if len(r.Description) > maxDescriptionLength {
		return dErrors.New(dErrors.CodeInvalidInput, "description exceeds maximum length")
	}
	return nil
}
