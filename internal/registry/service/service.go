package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"attest/internal/events"
	registrymetrics "attest/internal/registry/metrics"
	"attest/internal/registry/models"
	id "attest/pkg/domain"
)

// ProfileStore persists principal profiles.
type ProfileStore interface {
	Save(ctx context.Context, profile *models.Profile) error
	Find(ctx context.Context, principal id.Principal) (*models.Profile, error)
}

// SkillStore persists active skill records keyed by (owner, name).
// Execute must hold an exclusive section (mutex or FOR UPDATE) across both
// callbacks so invariant checks and writes cannot interleave.
type SkillStore interface {
	Create(ctx context.Context, skill *models.Skill) error
	Find(ctx context.Context, owner id.Principal, name string) (*models.Skill, error)
	Execute(ctx context.Context, owner id.Principal, name string, validate func(*models.Skill) error, mutate func(*models.Skill)) (*models.Skill, error)
	Delete(ctx context.Context, owner id.Principal, name string) error
}

// SkillIndex records every name ever added per owner, append-only.
type SkillIndex interface {
	Append(ctx context.Context, owner id.Principal, name string) error
	List(ctx context.Context, owner id.Principal) ([]string, error)
}

// Service orchestrates the skill registry: guarded mutations against the
// stores, notification events after each success, pure reads otherwise.
type Service struct {
	profiles  ProfileStore
	skills    SkillStore
	index     SkillIndex
	publisher events.Publisher
	metrics   *registrymetrics.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

type serviceConfig struct {
	publisher events.Publisher
	metrics   *registrymetrics.Metrics
	logger    *slog.Logger
}

// Option customizes optional service dependencies.
type Option func(*serviceConfig)

// WithPublisher wires the notification event publisher.
func WithPublisher(p events.Publisher) Option {
	return func(cfg *serviceConfig) { cfg.publisher = p }
}

// WithMetrics wires the registry Prometheus counters.
func WithMetrics(m *registrymetrics.Metrics) Option {
	return func(cfg *serviceConfig) { cfg.metrics = m }
}

// WithLogger wires a structured logger for emission failures.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *serviceConfig) { cfg.logger = l }
}

// New constructs the registry service.
func New(profiles ProfileStore, skills SkillStore, index SkillIndex, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		profiles:  profiles,
		skills:    skills,
		index:     index,
		publisher: cfg.publisher,
		metrics:   cfg.metrics,
		logger:    logger,
		tracer:    otel.Tracer("attest/registry"),
	}
}

// emit publishes a notification event for an already-committed mutation.
// Delivery problems are logged, never surfaced: the registry does not unwind
// state over its asynchronous output.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish registry event",
			"event_type", string(event.Type),
			"event_id", event.ID,
			"error", err,
		)
	}
}
