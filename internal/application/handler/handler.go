package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"recruit/internal/application/models"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/platform/httputil"
	"recruit/pkg/requestcontext"
)

// Service defines the interface for application operations.
type Service interface {
	Submit(ctx context.Context, p domain.Principal, req *models.SubmitRequest) (*models.SubmitResult, error)
	CheckEligibility(ctx context.Context, applicant domain.UserID, key domain.SpecialtyKey) (*models.Eligibility, error)
	List(ctx context.Context, p domain.Principal, status *models.Status, page models.PageRequest) (*models.Page, error)
	ListMine(ctx context.Context, p domain.Principal, page models.PageRequest) (*models.Page, error)
	Get(ctx context.Context, p domain.Principal, id domain.ApplicationID) (*models.Application, error)
	UpdateStatus(ctx context.Context, p domain.Principal, id domain.ApplicationID, status string, comment *string) (*models.Application, error)
}

// Handler wires application endpoints to the application service.
type Handler struct {
	service        Service
	logger         *slog.Logger
	exposeInternal bool
}

type Option func(*Handler)

// WithInternalErrors includes internal error descriptions in responses.
// Development only.
func WithInternalErrors(expose bool) Option {
	return func(h *Handler) {
		h.exposeInternal = expose
	}
}

// New constructs an application handler with its dependencies.
func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{service: service, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts application endpoints on the router. Callers are expected
// to install the auth middleware on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/applications", func(r chi.Router) {
		r.Post("/", h.HandleSubmit)
		r.Get("/", h.HandleList)
		r.Get("/eligibility", h.HandleEligibility)
		r.Get("/mine", h.HandleListMine)
		r.Get("/{id}", h.HandleGet)
		r.Patch("/{id}/status", h.HandleUpdateStatus)
	})
}

// HandleSubmit handles POST /applications.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[SubmitApplicationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Submit(ctx, p, req.Parsed())
	if err != nil {
		h.logFailure(ctx, "application submission failed", err,
			"request_id", requestID,
			"user_id", p.UserID,
			"specialty", req.Specialty.Faculty+"/"+req.Specialty.Specialty,
		)
		h.writeError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application submitted",
		"request_id", requestID,
		"user_id", p.UserID,
		"application_id", result.Application.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromSubmitResult(result))
}

// HandleEligibility handles GET /applications/eligibility.
func (h *Handler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	key, err := domain.NewSpecialtyKey(q.Get("faculty"), q.Get("specialty"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	eligibility, err := h.service.CheckEligibility(ctx, p.UserID, key)
	if err != nil {
		h.logFailure(ctx, "eligibility check failed", err,
			"request_id", requestcontext.RequestID(ctx),
			"user_id", p.UserID,
		)
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromEligibility(eligibility))
}

// HandleList handles GET /applications for reviewers.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, err := parsePage(q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var status *models.Status
	if raw := q.Get("status"); raw != "" {
		st, err := models.ParseStatus(raw)
		if err != nil {
			h.writeError(w, err)
			return
		}
		status = &st
	}

	result, err := h.service.List(ctx, p, status, page)
	if err != nil {
		h.logFailure(ctx, "list applications failed", err,
			"request_id", requestcontext.RequestID(ctx),
			"user_id", p.UserID,
			"role", p.Role,
		)
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPage(result))
}

// HandleListMine handles GET /applications/mine.
func (h *Handler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}

	page, err := parsePage(r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.service.ListMine(ctx, p, page)
	if err != nil {
		h.logFailure(ctx, "list own applications failed", err,
			"request_id", requestcontext.RequestID(ctx),
			"user_id", p.UserID,
		)
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPage(result))
}

// HandleGet handles GET /applications/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := domain.ParseApplicationID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	app, err := h.service.Get(ctx, p, id)
	if err != nil {
		h.logFailure(ctx, "get application failed", err,
			"request_id", requestcontext.RequestID(ctx),
			"user_id", p.UserID,
			"application_id", id,
		)
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromApplication(app))
}

// HandleUpdateStatus handles PATCH /applications/{id}/status.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	p, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := domain.ParseApplicationID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateStatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	app, err := h.service.UpdateStatus(ctx, p, id, req.Status, req.Comment)
	if err != nil {
		h.logFailure(ctx, "status update failed", err,
			"request_id", requestID,
			"user_id", p.UserID,
			"application_id", id,
			"status", req.Status,
		)
		h.writeError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application status updated",
		"request_id", requestID,
		"user_id", p.UserID,
		"application_id", id,
		"status", app.Status,
	)
	httputil.WriteJSON(w, http.StatusOK, FromApplication(app))
}

func (h *Handler) requirePrincipal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p := requestcontext.Principal(r.Context())
	if !p.IsAuthenticated() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return domain.Principal{}, false
	}
	return p, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	httputil.WriteErrorDetailed(w, err, h.exposeInternal)
}

// logFailure logs client errors at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err)
	if dErrors.HTTPStatus(dErrors.CodeOf(err)) < http.StatusInternalServerError {
		h.logger.WarnContext(ctx, msg, attrs...)
		return
	}
	h.logger.ErrorContext(ctx, msg, attrs...)
}

func parsePage(q url.Values) (models.PageRequest, error) {
	var page models.PageRequest
	var err error
	if page.Page, err = intParam(q, "page"); err != nil {
		return page, err
	}
	if page.PageSize, err = intParam(q, "page_size"); err != nil {
		return page, err
	}
	return page, nil
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, dErrors.New(dErrors.CodeValidation, name+" must be a positive integer")
	}
	return v, nil
}
