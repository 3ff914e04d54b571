package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "attest/pkg/domain"
	dErrors "attest/pkg/domain-errors"
)

func TestNewSkill_Invariants(t *testing.T) {
	now := time.Now()

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSkill("alice", "", "desc", now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects whitespace-only name", func(t *testing.T) {
		_, err := NewSkill("alice", "   ", "desc", now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects over-long name", func(t *testing.T) {
		long := make([]byte, MaxSkillNameLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := NewSkill("alice", string(long), "desc", now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("fresh record starts unverified", func(t *testing.T) {
		s, err := NewSkill("alice", "Rust", "systems", now)
		require.NoError(t, err)
		assert.Equal(t, 0, s.VerificationCount())
		assert.Equal(t, now, s.AddedAt)
		assert.True(t, s.LastVerifiedAt.IsZero())
		assert.Empty(t, s.Verifiers)
	})
}

func TestSkill_Verification(t *testing.T) {
	now := time.Now()
	newSkill := func(t *testing.T) *Skill {
		t.Helper()
		s, err := NewSkill("alice", "Go", "backend", now)
		require.NoError(t, err)
		return s
	}

	t.Run("owner cannot verify own skill", func(t *testing.T) {
		s := newSkill(t)
		err := s.CanVerify("alice")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	t.Run("duplicate verifier rejected", func(t *testing.T) {
		s := newSkill(t)
		require.NoError(t, s.CanVerify("bob"))
		s.ApplyVerification("bob", now)

		err := s.CanVerify("bob")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAlreadyVerified))
	})

	t.Run("count tracks ordered verifier set", func(t *testing.T) {
		s := newSkill(t)
		verifiers := []id.Principal{"bob", "carol", "dave"}
		for i, v := range verifiers {
			require.NoError(t, s.CanVerify(v))
			s.ApplyVerification(v, now.Add(time.Duration(i)*time.Second))
		}
		assert.Equal(t, 3, s.VerificationCount())
		assert.Equal(t, verifiers, s.Verifiers)
		assert.Equal(t, now.Add(2*time.Second), s.LastVerifiedAt)
	})

	t.Run("last verified never regresses", func(t *testing.T) {
		s := newSkill(t)
		s.ApplyVerification("bob", now.Add(time.Minute))
		s.ApplyVerification("carol", now)
		assert.Equal(t, now.Add(time.Minute), s.LastVerifiedAt)
	})
}

func TestSkill_Clone(t *testing.T) {
	now := time.Now()
	s, err := NewSkill("alice", "Go", "backend", now)
	require.NoError(t, err)
	s.ApplyVerification("bob", now)

	cp := s.Clone()
	cp.ApplyVerification("carol", now)

	assert.Equal(t, 1, s.VerificationCount())
	assert.Equal(t, 2, cp.VerificationCount())
	assert.False(t, s.HasVerifier("carol"))
}

func TestSnapshot_OmitsFlags(t *testing.T) {
	now := time.Now()
	s, err := NewSkill("alice", "Go", "backend", now)
	require.NoError(t, err)
	s.ApplyVerification("bob", now)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.VerificationCount)
	assert.Equal(t, []id.Principal{"bob"}, snap.Verifiers)

	// Snapshot holds its own copy of the verifier list.
	snap.Verifiers[0] = "mallory"
	assert.Equal(t, id.Principal("bob"), s.Verifiers[0])
}
