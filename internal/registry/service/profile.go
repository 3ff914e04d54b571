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

// SetProfile creates or fully overwrites the caller's profile.
func (s *Service) SetProfile(ctx context.Context, caller id.Principal, name, university string) (*models.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "registry.SetProfile")
	defer span.End()

	profile, err := models.NewProfile(caller, name, university, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}

	s.emit(ctx, events.NewProfileUpdated(events.ProfileUpdated{
		Principal:  caller,
		Name:       profile.Name,
		University: profile.University,
	}, profile.UpdatedAt))
	if s.metrics != nil {
		s.metrics.IncrementProfilesUpdated()
	}
	return profile, nil
}

// GetProfile returns the principal's profile. Pure read, no side effects.
func (s *Service) GetProfile(ctx context.Context, principal id.Principal) (*models.Profile, error) {
	profile, err := s.profiles.Find(ctx, principal)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}
	return profile, nil
}
