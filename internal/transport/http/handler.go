// Package httptransport is the thin HTTP layer over the registration,
// ledger, settings, and history services. Handlers decode, delegate, and map
// coded errors onto statuses; they hold no business rules.
package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	historyModels "github.com/briclabs/evcoordinator-sub000/internal/history/models"
	ledgerModels "github.com/briclabs/evcoordinator-sub000/internal/ledger/models"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	regModels "github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	"github.com/briclabs/evcoordinator-sub000/internal/settings"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/httputil"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/middleware/auth"
	request "github.com/briclabs/evcoordinator-sub000/pkg/platform/middleware/request"
)

// PacketService writes registration packets.
type PacketService interface {
	Create(ctx context.Context, actorID int64, packet *regModels.Packet) (int64, error)
	Update(ctx context.Context, actorID int64, packet *regModels.Packet) (int64, error)
}

// EventService schedules events.
type EventService interface {
	Schedule(ctx context.Context, actorID int64, event regModels.EventInfo) (int64, error)
	Reschedule(ctx context.Context, actorID int64, event regModels.EventInfo) (int64, error)
}

// LedgerService records payments and transactions.
type LedgerService interface {
	RecordPayment(ctx context.Context, actorID int64, p ledgerModels.Payment) (int64, error)
	AmendPayment(ctx context.Context, actorID int64, p ledgerModels.Payment) (int64, error)
	RecordTransaction(ctx context.Context, actorID int64, t ledgerModels.Transaction) (int64, error)
	AmendTransaction(ctx context.Context, actorID int64, t ledgerModels.Transaction) (int64, error)
}

// SettingsService manages JSON-valued configuration.
type SettingsService interface {
	Define(ctx context.Context, actorID int64, c settings.Configuration) (int64, error)
	Lookup(ctx context.Context, key string) (settings.Configuration, error)
	Change(ctx context.Context, actorID int64, c settings.Configuration) (int64, error)
	Remove(ctx context.Context, actorID, id int64) (int64, error)
}

// HistoryService lists the audit log.
type HistoryService interface {
	List(ctx context.Context, search query.Search) (query.Page[historyModels.Record], error)
}

// Services groups the handler's collaborators.
type Services struct {
	Packets  PacketService
	Events   EventService
	Ledger   LedgerService
	Settings SettingsService
	History  HistoryService
	// Entities maps the {entity} path segment to its reader.
	Entities map[string]EntityReader
}

// Handler serves the /v1 API.
type Handler struct {
	services   Services
	logger     *slog.Logger
	actors     auth.ActorChecker
	defaultMax int
}

type Option func(*Handler)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithActorChecker confirms X-Actor-ID refers to a recorded participant.
func WithActorChecker(checker auth.ActorChecker) Option {
	return func(h *Handler) {
		h.actors = checker
	}
}

// WithDefaultPageSize sets max for listings that do not pass one.
func WithDefaultPageSize(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.defaultMax = n
		}
	}
}

func New(services Services, opts ...Option) (*Handler, error) {
	if services.Packets == nil {
		return nil, errors.New("packet service is required")
	}
	if services.Events == nil {
		return nil, errors.New("event service is required")
	}
	if services.Ledger == nil {
		return nil, errors.New("ledger service is required")
	}
	if services.Settings == nil {
		return nil, errors.New("settings service is required")
	}
	if services.History == nil {
		return nil, errors.New("history service is required")
	}
	h := &Handler{
		services:   services,
		logger:     slog.Default(),
		defaultMax: 20,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Register mounts the /v1 routes on r. Reads are open; writes require an
// identified actor because every mutation is attributed in the audit log.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/entities/{entity}", h.handleSearch)
		r.Get("/entities/{entity}/{id}", h.handleFetch)
		r.Get("/history", h.handleHistory)
		r.Get("/configurations/{key}", h.handleLookupConfiguration)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireActor(h.actors, h.logger))

			r.Post("/registration-packets", h.handleCreatePacket)
			r.Put("/registration-packets", h.handleUpdatePacket)

			r.Post("/events", h.handleScheduleEvent)
			r.Put("/events/{id}", h.handleRescheduleEvent)

			r.Post("/payments", h.handleRecordPayment)
			r.Put("/payments/{id}", h.handleAmendPayment)
			r.Post("/transactions", h.handleRecordTransaction)
			r.Put("/transactions/{id}", h.handleAmendTransaction)

			r.Post("/configurations", h.handleDefineConfiguration)
			r.Put("/configurations/{id}", h.handleChangeConfiguration)
			r.Delete("/configurations/{id}", h.handleRemoveConfiguration)
		})
	})
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type updatedResponse struct {
	RowsAffected int64 `json:"rowsAffected"`
}

// fail logs and writes err. Expected client errors log at warn, everything
// else at error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	attrs := []any{
		"request_id", request.GetRequestID(ctx),
		"error", err.Error(),
	}
	if actorID := auth.GetActorID(ctx); actorID != 0 {
		attrs = append(attrs, "actor_id", actorID)
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodeAuditWrite, dErrors.CodeTimeout:
		h.logger.ErrorContext(ctx, msg, attrs...)
	default:
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

// pathID reads and validates the {id} path parameter.
func pathID(r *http.Request) (int64, error) {
	return parseID(chi.URLParam(r, "id"))
}

// matchPathID rejects a body id that disagrees with the path and otherwise
// copies the path id into the body.
func matchPathID(path int64, body **int64) error {
	if *body != nil && **body != path {
		return dErrors.New(dErrors.CodeBadRequest, "body id does not match path")
	}
	*body = &path
	return nil
}
