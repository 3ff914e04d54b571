package service

import (
	"context"
	"errors"

	"attest/internal/events"
	"attest/internal/registry/models"
	id "attest/pkg/domain"
	dErrors "attest/pkg/domain-errors"
	"attest/pkg/platform/sentinel"
	"attest/pkg/requestcontext"
)

// AddSkill declares a new skill for the caller. The name must not collide
// with one of the caller's currently active skills; a previously revoked
// name is free again and produces a wholly new record.
func (s *Service) AddSkill(ctx context.Context, caller id.Principal, name, description string) (*models.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "registry.AddSkill")
	defer span.End()

	skill, err := models.NewSkill(caller, name, description, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	if err := s.skills.Create(ctx, skill); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeAlreadyExists, "an active skill with this name already exists")
		}
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create skill")
	}

	// The index records every add, including re-adds of revoked names, so
	// duplicates are expected. It is never pruned. A rejected add must leave
	// every store untouched, so an index failure rolls the record back.
	if err := s.index.Append(ctx, caller, skill.Name); err != nil {
		span.RecordError(err)
		if delErr := s.skills.Delete(ctx, caller, skill.Name); delErr != nil {
			s.logger.ErrorContext(ctx, "failed to roll back skill after index failure",
				"owner", caller.String(),
				"skill", skill.Name,
				"error", delErr,
			)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to index skill")
	}

	s.emit(ctx, events.NewSkillAdded(events.SkillAdded{
		Principal:   caller,
		Name:        skill.Name,
		Description: skill.Description,
	}, skill.AddedAt))
	if s.metrics != nil {
		s.metrics.IncrementSkillsAdded()
	}
	return skill.Snapshot(), nil
}

// VerifySkill records the caller's attestation of another principal's skill.
// Owners may not verify themselves regardless of whether the skill exists,
// and each principal verifies a given record at most once.
func (s *Service) VerifySkill(ctx context.Context, caller, owner id.Principal, name string) (*models.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "registry.VerifySkill")
	defer span.End()

	if caller == owner {
		return nil, dErrors.New(dErrors.CodeForbidden, "owner cannot verify own skill")
	}

	now := requestcontext.Now(ctx)
	skill, err := s.skills.Execute(ctx, owner, name,
		func(sk *models.Skill) error {
			return sk.CanVerify(caller)
		},
		func(sk *models.Skill) {
			sk.ApplyVerification(caller, now)
		},
	)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "skill not found")
		}
		// A concurrent duplicate caught by the store's uniqueness constraint
		// is the same caller fact as a flagged repeat.
		if errors.Is(err, sentinel.ErrDuplicate) {
			return nil, dErrors.New(dErrors.CodeAlreadyVerified, "skill already verified by this principal")
		}
		if dErrors.HasCode(err, dErrors.CodeForbidden) || dErrors.HasCode(err, dErrors.CodeAlreadyVerified) {
			return nil, err
		}
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify skill")
	}

	s.emit(ctx, events.NewSkillVerified(events.SkillVerified{
		Owner:             owner,
		Name:              skill.Name,
		VerificationCount: skill.VerificationCount(),
	}, now))
	if s.metrics != nil {
		s.metrics.IncrementSkillsVerified()
	}
	return skill.Snapshot(), nil
}

// RevokeSkill removes one of the caller's active skills. The record and its
// verification history are discarded; the Skill Index keeps the name.
func (s *Service) RevokeSkill(ctx context.Context, caller id.Principal, name string) error {
	ctx, span := s.tracer.Start(ctx, "registry.RevokeSkill")
	defer span.End()

	if err := s.skills.Delete(ctx, caller, name); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "skill not found")
		}
		span.RecordError(err)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke skill")
	}

	s.emit(ctx, events.NewSkillRevoked(events.SkillRevoked{
		Owner: caller,
		Name:  name,
	}, requestcontext.Now(ctx)))
	if s.metrics != nil {
		s.metrics.IncrementSkillsRevoked()
	}
	return nil
}

// GetSkill returns the active record's snapshot. Pure read.
func (s *Service) GetSkill(ctx context.Context, owner id.Principal, name string) (*models.Snapshot, error) {
	skill, err := s.findSkill(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	return skill.Snapshot(), nil
}

// GetVerifiers returns the ordered verifier list of the active record.
// Pure read.
func (s *Service) GetVerifiers(ctx context.Context, owner id.Principal, name string) ([]id.Principal, error) {
	skill, err := s.findSkill(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	return skill.Snapshot().Verifiers, nil
}

// ListSkills returns the owner's raw historical name log. Entries may be
// stale: revoked names stay, re-added names repeat. Callers that need
// activity status must check GetSkill per name.
func (s *Service) ListSkills(ctx context.Context, owner id.Principal) ([]string, error) {
	names, err := s.index.List(ctx, owner)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list skills")
	}
	return names, nil
}

func (s *Service) findSkill(ctx context.Context, owner id.Principal, name string) (*models.Skill, error) {
	skill, err := s.skills.Find(ctx, owner, name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "skill not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load skill")
	}
	return skill, nil
}
