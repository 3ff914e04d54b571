package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "attest/pkg/domain-errors"
)

func TestSetProfileRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SetProfileRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  SetProfileRequest{Name: "Alice Liddell", University: "Wonderland University"},
		},
		{
			name:    "missing name",
			req:     SetProfileRequest{University: "Wonderland University"},
			wantErr: true,
		},
		{
			name:    "blank name",
			req:     SetProfileRequest{Name: "   ", University: "Wonderland University"},
			wantErr: true,
		},
		{
			name:    "missing university",
			req:     SetProfileRequest{Name: "Alice Liddell"},
			wantErr: true,
		},
		{
			name:    "name too long",
			req:     SetProfileRequest{Name: strings.Repeat("a", maxNameLength+1), University: "Oxford"},
			wantErr: true,
		},
		{
			name:    "university too long",
			req:     SetProfileRequest{Name: "Alice", University: strings.Repeat("u", maxUniversityLength+1)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddSkillRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AddSkillRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  AddSkillRequest{Name: "go", Description: "systems programming"},
		},
		{
			name: "empty description allowed",
			req:  AddSkillRequest{Name: "go"},
		},
		{
			name:    "missing name",
			req:     AddSkillRequest{Description: "something"},
			wantErr: true,
		},
		{
			name:    "blank name",
			req:     AddSkillRequest{Name: "  "},
			wantErr: true,
		},
		{
			name:    "name too long",
			req:     AddSkillRequest{Name: strings.Repeat("x", maxNameLength+1)},
			wantErr: true,
		},
		{
			name:    "description too long",
			req:     AddSkillRequest{Name: "go", Description: strings.Repeat("d", maxDescriptionLength+1)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}
