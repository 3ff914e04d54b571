package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"attest/internal/platform/middleware"
	"attest/internal/registry/models"
	"attest/internal/transport/http/shared"
	id "attest/pkg/domain"
	dErrors "attest/pkg/domain-errors"
	"attest/pkg/requestcontext"
)

// Service defines the registry operations the handler fronts.
type Service interface {
	SetProfile(ctx context.Context, caller id.Principal, name, university string) (*models.Profile, error)
	GetProfile(ctx context.Context, principal id.Principal) (*models.Profile, error)
	AddSkill(ctx context.Context, caller id.Principal, name, description string) (*models.Snapshot, error)
	VerifySkill(ctx context.Context, caller, owner id.Principal, name string) (*models.Snapshot, error)
	RevokeSkill(ctx context.Context, caller id.Principal, name string) error
	GetSkill(ctx context.Context, owner id.Principal, name string) (*models.Snapshot, error)
	GetVerifiers(ctx context.Context, owner id.Principal, name string) ([]id.Principal, error)
	ListSkills(ctx context.Context, owner id.Principal) ([]string, error)
}

// maxBodyBytes caps mutation request bodies well above any valid payload.
const maxBodyBytes = 1 << 20

// Handler wires the registry service to HTTP routes. Mutations require a
// caller token; reads are open to arbitrary external readers.
type Handler struct {
	logger    *slog.Logger
	registry  Service
	validator middleware.TokenValidator
}

func New(registry Service, validator middleware.TokenValidator, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, registry: registry, validator: validator}
}

// Register mounts the registry routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		// Open reads.
		r.Get("/profiles/{principal}", h.handleGetProfile)
		r.Get("/skills/{owner}", h.handleListSkills)
		r.Get("/skills/{owner}/{name}", h.handleGetSkill)
		r.Get("/skills/{owner}/{name}/verifiers", h.handleGetVerifiers)

		// Authenticated mutations.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCaller(h.validator, h.logger))
			r.Put("/profile", h.handleSetProfile)
			r.Post("/skills", h.handleAddSkill)
			r.Delete("/skills/{name}", h.handleRevokeSkill)
			r.Post("/skills/{owner}/{name}/verify", h.handleVerifySkill)
		})
	})
}

func (h *Handler) handleSetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, ctx)
	if !ok {
		return
	}

	var req SetProfileRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		shared.WriteError(w, err)
		return
	}

	profile, err := h.registry.SetProfile(ctx, caller, req.Name, req.University)
	if err != nil {
		h.logError(ctx, "set profile failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := id.ParsePrincipal(chi.URLParam(r, "principal"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	profile, err := h.registry.GetProfile(r.Context(), principal)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, ctx)
	if !ok {
		return
	}

	var req AddSkillRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		shared.WriteError(w, err)
		return
	}

	snap, err := h.registry.AddSkill(ctx, caller, req.Name, req.Description)
	if err != nil {
		h.logError(ctx, "add skill failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, snap)
}

func (h *Handler) handleVerifySkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, ctx)
	if !ok {
		return
	}
	owner, err := id.ParsePrincipal(chi.URLParam(r, "owner"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	snap, err := h.registry.VerifySkill(ctx, caller, owner, chi.URLParam(r, "name"))
	if err != nil {
		h.logError(ctx, "verify skill failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleRevokeSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, ctx)
	if !ok {
		return
	}

	if err := h.registry.RevokeSkill(ctx, caller, chi.URLParam(r, "name")); err != nil {
		h.logError(ctx, "revoke skill failed", err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	owner, err := id.ParsePrincipal(chi.URLParam(r, "owner"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	snap, err := h.registry.GetSkill(r.Context(), owner, chi.URLParam(r, "name"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleGetVerifiers(w http.ResponseWriter, r *http.Request) {
	owner, err := id.ParsePrincipal(chi.URLParam(r, "owner"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	verifiers, err := h.registry.GetVerifiers(r.Context(), owner, chi.URLParam(r, "name"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string][]id.Principal{"verifiers": verifiers})
}

func (h *Handler) handleListSkills(w http.ResponseWriter, r *http.Request) {
	owner, err := id.ParsePrincipal(chi.URLParam(r, "owner"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	names, err := h.registry.ListSkills(r.Context(), owner)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	// Names may be stale: revoked skills stay listed and re-added names
	// repeat. Callers needing activity status must check each skill.
	shared.WriteJSON(w, http.StatusOK, map[string][]string{"skills": names})
}

// caller pulls the authenticated principal the middleware stored. A missing
// principal means the route was mounted without RequireCaller, which is a
// wiring bug, not a client error.
func (h *Handler) caller(w http.ResponseWriter, ctx context.Context) (id.Principal, bool) {
	caller := requestcontext.Principal(ctx)
	if caller.IsZero() {
		h.logger.ErrorContext(ctx, "caller missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return "", false
	}
	return caller, true
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	if dErrors.CodeOf(err) != dErrors.CodeInternal {
		return
	}
	h.logger.ErrorContext(ctx, msg,
		"error", err.Error(),
		"request_id", requestcontext.RequestID(ctx),
	)
}
