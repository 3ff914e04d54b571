package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"attest/internal/events"
	"attest/internal/registry/service"
	"attest/internal/registry/store/index"
	"attest/internal/registry/store/profile"
	"attest/internal/registry/store/skill"
	id "attest/pkg/domain"
	dErrors "attest/pkg/domain-errors"
	"attest/pkg/requestcontext"
)

type RegistrySuite struct {
	suite.Suite
	svc  *service.Service
	sink *events.InMemoryStore
	now  time.Time
	ctx  context.Context
}

func (s *RegistrySuite) SetupTest() {
	s.sink = events.NewInMemoryStore()
	s.svc = service.New(
		profile.NewInMemory(),
		skill.NewInMemory(),
		index.NewInMemory(),
		service.WithPublisher(s.sink),
	)
	s.now = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

// at returns a context whose request time is offset from the suite baseline.
func (s *RegistrySuite) at(offset time.Duration) context.Context {
	return requestcontext.WithTime(context.Background(), s.now.Add(offset))
}

func (s *RegistrySuite) TestProfileLifecycle() {
	s.Run("get before set fails with not found", func() {
		_, err := s.svc.GetProfile(s.ctx, "alice")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("empty name rejected", func() {
		_, err := s.svc.SetProfile(s.ctx, "alice", "", "ETH Zurich")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("empty university rejected", func() {
		_, err := s.svc.SetProfile(s.ctx, "alice", "Alice", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("set then get round-trips", func() {
		_, err := s.svc.SetProfile(s.ctx, "alice", "Alice", "ETH Zurich")
		s.Require().NoError(err)

		p, err := s.svc.GetProfile(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal("Alice", p.Name)
		s.Equal("ETH Zurich", p.University)
	})

	s.Run("second set fully overwrites", func() {
		_, err := s.svc.SetProfile(s.ctx, "alice", "Alice B", "MIT")
		s.Require().NoError(err)

		p, err := s.svc.GetProfile(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal("Alice B", p.Name)
		s.Equal("MIT", p.University)
	})

	s.Run("profile updates emitted", func() {
		got := s.sink.ListByPrincipal("alice")
		s.Require().Len(got, 2)
		s.Equal(events.TypeProfileUpdated, got[0].Type)

		var payload events.ProfileUpdated
		s.Require().NoError(json.Unmarshal(got[1].Payload, &payload))
		s.Equal("MIT", payload.University)
	})
}

func (s *RegistrySuite) TestAddSkill() {
	s.Run("fresh record starts unverified at request time", func() {
		snap, err := s.svc.AddSkill(s.ctx, "alice", "Rust", "systems programming")
		s.Require().NoError(err)
		s.Equal("Rust", snap.Name)
		s.Equal("systems programming", snap.Description)
		s.Equal(0, snap.VerificationCount)
		s.Equal(s.now, snap.AddedAt)
		s.True(snap.LastVerifiedAt.IsZero())
	})

	s.Run("empty name rejected", func() {
		_, err := s.svc.AddSkill(s.ctx, "alice", "", "whatever")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("active name collision rejected and record untouched", func() {
		_, err := s.svc.AddSkill(s.ctx, "alice", "Rust", "a different description")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyExists))

		snap, err := s.svc.GetSkill(s.ctx, "alice", "Rust")
		s.Require().NoError(err)
		s.Equal("systems programming", snap.Description)
	})

	s.Run("same name is free under another owner", func() {
		_, err := s.svc.AddSkill(s.ctx, "bob", "Rust", "embedded")
		s.Require().NoError(err)
	})

	s.Run("failed add leaves no index entry", func() {
		names, err := s.svc.ListSkills(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal([]string{"Rust"}, names)
	})
}

func (s *RegistrySuite) TestVerifySkill() {
	_, err := s.svc.AddSkill(s.ctx, "alice", "Rust", "systems")
	s.Require().NoError(err)

	s.Run("self-verification forbidden even for missing skills", func() {
		_, err := s.svc.VerifySkill(s.ctx, "alice", "alice", "Rust")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

		_, err = s.svc.VerifySkill(s.ctx, "carol", "carol", "NoSuchSkill")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("verifying a missing skill fails with not found", func() {
		_, err := s.svc.VerifySkill(s.ctx, "bob", "alice", "Haskell")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("first verification counts and stamps", func() {
		snap, err := s.svc.VerifySkill(s.at(time.Minute), "bob", "alice", "Rust")
		s.Require().NoError(err)
		s.Equal(1, snap.VerificationCount)
		s.Equal(s.now.Add(time.Minute), snap.LastVerifiedAt)
	})

	s.Run("duplicate verification rejected without side effects", func() {
		_, err := s.svc.VerifySkill(s.at(2*time.Minute), "bob", "alice", "Rust")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyVerified))

		snap, err := s.svc.GetSkill(s.ctx, "alice", "Rust")
		s.Require().NoError(err)
		s.Equal(1, snap.VerificationCount)
		s.Equal(s.now.Add(time.Minute), snap.LastVerifiedAt)
	})

	s.Run("distinct verifiers accumulate in order", func() {
		for i, caller := range []id.Principal{"carol", "dave", "erin"} {
			snap, err := s.svc.VerifySkill(s.at(time.Duration(i+2)*time.Minute), caller, "alice", "Rust")
			s.Require().NoError(err)
			s.Equal(i+2, snap.VerificationCount)
		}

		verifiers, err := s.svc.GetVerifiers(s.ctx, "alice", "Rust")
		s.Require().NoError(err)
		s.Equal([]id.Principal{"bob", "carol", "dave", "erin"}, verifiers)
	})

	s.Run("verified events carry the running count", func() {
		var counts []int
		for _, e := range s.sink.ListByPrincipal("alice") {
			if e.Type != events.TypeSkillVerified {
				continue
			}
			var payload events.SkillVerified
			s.Require().NoError(json.Unmarshal(e.Payload, &payload))
			counts = append(counts, payload.VerificationCount)
		}
		s.Equal([]int{1, 2, 3, 4}, counts)
	})
}

func (s *RegistrySuite) TestRevokeAndReAdd() {
	_, err := s.svc.AddSkill(s.ctx, "alice", "Rust", "systems")
	s.Require().NoError(err)
	_, err = s.svc.VerifySkill(s.at(time.Minute), "bob", "alice", "Rust")
	s.Require().NoError(err)

	s.Run("only the owner slot matches", func() {
		err := s.svc.RevokeSkill(s.ctx, "bob", "Rust")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("revoke destroys record and history", func() {
		s.Require().NoError(s.svc.RevokeSkill(s.ctx, "alice", "Rust"))

		_, err := s.svc.GetSkill(s.ctx, "alice", "Rust")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		_, err = s.svc.GetVerifiers(s.ctx, "alice", "Rust")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("revoking twice fails with not found", func() {
		err := s.svc.RevokeSkill(s.ctx, "alice", "Rust")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("index keeps the revoked name", func() {
		names, err := s.svc.ListSkills(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal([]string{"Rust"}, names)
	})

	s.Run("re-add creates a wholly new record", func() {
		snap, err := s.svc.AddSkill(s.at(time.Hour), "alice", "Rust", "take two")
		s.Require().NoError(err)
		s.Equal(0, snap.VerificationCount)
		s.Equal("take two", snap.Description)
		s.Equal(s.now.Add(time.Hour), snap.AddedAt)
		s.True(snap.LastVerifiedAt.IsZero())

		// Previous verifier may verify again: the old flags died with the
		// old record.
		verified, err := s.svc.VerifySkill(s.at(2*time.Hour), "bob", "alice", "Rust")
		s.Require().NoError(err)
		s.Equal(1, verified.VerificationCount)
	})

	s.Run("re-add appends a second index entry", func() {
		names, err := s.svc.ListSkills(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal([]string{"Rust", "Rust"}, names)
	})
}

// TestScenario walks the end-to-end flow from the registry's contract:
// add, verify, duplicate verify, self verify, revoke, stale index.
func (s *RegistrySuite) TestScenario() {
	_, err := s.svc.AddSkill(s.ctx, "A", "Rust", "systems")
	s.Require().NoError(err)

	snap, err := s.svc.VerifySkill(s.at(time.Minute), "B", "A", "Rust")
	s.Require().NoError(err)
	s.Equal(1, snap.VerificationCount)

	_, err = s.svc.VerifySkill(s.at(2*time.Minute), "B", "A", "Rust")
	s.True(dErrors.HasCode(err, dErrors.CodeAlreadyVerified))

	_, err = s.svc.VerifySkill(s.at(3*time.Minute), "A", "A", "Rust")
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	s.Require().NoError(s.svc.RevokeSkill(s.ctx, "A", "Rust"))

	_, err = s.svc.GetSkill(s.ctx, "A", "Rust")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	names, err := s.svc.ListSkills(s.ctx, "A")
	s.Require().NoError(err)
	s.Contains(names, "Rust")
}

func (s *RegistrySuite) TestListSkillsEmptyOwner() {
	names, err := s.svc.ListSkills(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(names)
}
