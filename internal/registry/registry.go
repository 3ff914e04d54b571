package registry

import (
	"log/slog"

	"attest/internal/platform/middleware"
	"attest/internal/registry/handler"
	"attest/internal/registry/service"
)

// Service exposes the skill registry operations.
type Service = service.Service

// Handler wires HTTP endpoints to the registry service.
type Handler = handler.Handler

// Option configures optional service dependencies.
type Option = service.Option

// Re-exported service options so callers outside internal/registry need not
// import the service package.
var (
	WithPublisher = service.WithPublisher
	WithMetrics   = service.WithMetrics
	WithLogger    = service.WithLogger
)

// NewService constructs the registry service with required stores.
func NewService(profiles service.ProfileStore, skills service.SkillStore, index service.SkillIndex, opts ...Option) *Service {
	return service.New(profiles, skills, index, opts...)
}

// NewHandler constructs the HTTP handler for registry routes.
func NewHandler(s *Service, validator middleware.TokenValidator, logger *slog.Logger) *Handler {
	return handler.New(s, validator, logger)
}
