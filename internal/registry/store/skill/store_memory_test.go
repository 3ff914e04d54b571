package skill

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"attest/internal/registry/models"
	id "attest/pkg/domain"
	dErrors "attest/pkg/domain-errors"
	"attest/pkg/platform/sentinel"
)

type SkillStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *SkillStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestSkillStoreSuite(t *testing.T) {
	suite.Run(t, new(SkillStoreSuite))
}

func (s *SkillStoreSuite) mustSkill(owner id.Principal, name string) *models.Skill {
	skill, err := models.NewSkill(owner, name, "a description", time.Now())
	s.Require().NoError(err)
	return skill
}

// TestCreationAndLookups verifies the store correctly creates and retrieves
// skill records.
func (s *SkillStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds by owner and name", func() {
		skill := s.mustSkill("alice", "Rust")
		s.Require().NoError(s.store.Create(s.ctx, skill))

		found, err := s.store.Find(s.ctx, "alice", "Rust")
		s.Require().NoError(err)
		s.Equal("Rust", found.Name)
		s.Equal(0, found.VerificationCount())
	})

	s.Run("returns ErrNotFound for unknown slot", func() {
		_, err := s.store.Find(s.ctx, "alice", "Haskell")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("same name under another owner is a distinct slot", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.mustSkill("bob", "Rust")))

		found, err := s.store.Find(s.ctx, "bob", "Rust")
		s.Require().NoError(err)
		s.Equal("bob", found.Owner.String())
	})

	s.Run("find returns an independent copy", func() {
		found, err := s.store.Find(s.ctx, "alice", "Rust")
		s.Require().NoError(err)
		found.ApplyVerification("mallory", time.Now())

		again, err := s.store.Find(s.ctx, "alice", "Rust")
		s.Require().NoError(err)
		s.Equal(0, again.VerificationCount())
	})
}

// TestActiveNameCollision verifies the per-owner active-name uniqueness slot.
func (s *SkillStoreSuite) TestActiveNameCollision() {
	s.Run("rejects duplicate active name", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.mustSkill("alice", "Go")))
		err := s.store.Create(s.ctx, s.mustSkill("alice", "Go"))
		s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("slot reopens after delete", func() {
		s.Require().NoError(s.store.Delete(s.ctx, "alice", "Go"))
		s.Require().NoError(s.store.Create(s.ctx, s.mustSkill("alice", "Go")))
	})
}

// TestExecute verifies validate-then-mutate atomicity under the store lock.
func (s *SkillStoreSuite) TestExecute() {
	s.Run("mutation applies after validation passes", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.mustSkill("alice", "Zig")))

		now := time.Now()
		updated, err := s.store.Execute(s.ctx, "alice", "Zig",
			func(sk *models.Skill) error { return sk.CanVerify("bob") },
			func(sk *models.Skill) { sk.ApplyVerification("bob", now) },
		)
		s.Require().NoError(err)
		s.Equal(1, updated.VerificationCount())

		found, err := s.store.Find(s.ctx, "alice", "Zig")
		s.Require().NoError(err)
		s.Equal(1, found.VerificationCount())
	})

	s.Run("validation failure leaves record unchanged", func() {
		_, err := s.store.Execute(s.ctx, "alice", "Zig",
			func(sk *models.Skill) error { return sk.CanVerify("bob") },
			func(sk *models.Skill) { sk.ApplyVerification("bob", time.Now()) },
		)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyVerified))

		found, err := s.store.Find(s.ctx, "alice", "Zig")
		s.Require().NoError(err)
		s.Equal(1, found.VerificationCount())
	})

	s.Run("missing slot yields ErrNotFound", func() {
		_, err := s.store.Execute(s.ctx, "alice", "COBOL",
			func(*models.Skill) error { return nil },
			func(*models.Skill) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestDelete verifies revocation discards the record and its history.
func (s *SkillStoreSuite) TestDelete() {
	s.Run("delete removes record", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.mustSkill("carol", "SQL")))
		s.Require().NoError(s.store.Delete(s.ctx, "carol", "SQL"))

		_, err := s.store.Find(s.ctx, "carol", "SQL")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("deleting absent record yields ErrNotFound", func() {
		err := s.store.Delete(s.ctx, "carol", "SQL")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
