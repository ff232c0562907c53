package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	ledgerModels "github.com/briclabs/evcoordinator-sub000/internal/ledger/models"
	regModels "github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	"github.com/briclabs/evcoordinator-sub000/internal/settings"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/httputil"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/middleware/auth"
)

// created writes 201 with the new id.
func (h *Handler) created(w http.ResponseWriter, r *http.Request, msg string, id int64, err error) {
	if err != nil {
		h.fail(w, r, msg, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *Handler) updated(w http.ResponseWriter, r *http.Request, msg string, n int64, err error) {
	if err != nil {
		h.fail(w, r, msg, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updatedResponse{RowsAffected: n})
}

func (h *Handler) handleCreatePacket(w http.ResponseWriter, r *http.Request) {
	var packet regModels.Packet
	if err := httputil.DecodeJSON(r, &packet); err != nil {
		h.fail(w, r, "invalid registration packet", err)
		return
	}
	id, err := h.services.Packets.Create(r.Context(), auth.GetActorID(r.Context()), &packet)
	h.created(w, r, "failed to create registration packet", id, err)
}

func (h *Handler) handleUpdatePacket(w http.ResponseWriter, r *http.Request) {
	var packet regModels.Packet
	if err := httputil.DecodeJSON(r, &packet); err != nil {
		h.fail(w, r, "invalid registration packet", err)
		return
	}
	n, err := h.services.Packets.Update(r.Context(), auth.GetActorID(r.Context()), &packet)
	h.updated(w, r, "failed to update registration packet", n, err)
}

func (h *Handler) handleScheduleEvent(w http.ResponseWriter, r *http.Request) {
	var event regModels.EventInfo
	if err := httputil.DecodeJSON(r, &event); err != nil {
		h.fail(w, r, "invalid event", err)
		return
	}
	event.ID = nil
	id, err := h.services.Events.Schedule(r.Context(), auth.GetActorID(r.Context()), event)
	h.created(w, r, "failed to schedule event", id, err)
}

func (h *Handler) handleRescheduleEvent(w http.ResponseWriter, r *http.Request) {
	var event regModels.EventInfo
	if err := decodeForPath(r, &event, &event.ID); err != nil {
		h.fail(w, r, "invalid event", err)
		return
	}
	n, err := h.services.Events.Reschedule(r.Context(), auth.GetActorID(r.Context()), event)
	h.updated(w, r, "failed to reschedule event", n, err)
}

func (h *Handler) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment ledgerModels.Payment
	if err := httputil.DecodeJSON(r, &payment); err != nil {
		h.fail(w, r, "invalid payment", err)
		return
	}
	payment.ID = nil
	id, err := h.services.Ledger.RecordPayment(r.Context(), auth.GetActorID(r.Context()), payment)
	h.created(w, r, "failed to record payment", id, err)
}

func (h *Handler) handleAmendPayment(w http.ResponseWriter, r *http.Request) {
	var payment ledgerModels.Payment
	if err := decodeForPath(r, &payment, &payment.ID); err != nil {
		h.fail(w, r, "invalid payment", err)
		return
	}
	n, err := h.services.Ledger.AmendPayment(r.Context(), auth.GetActorID(r.Context()), payment)
	h.updated(w, r, "failed to amend payment", n, err)
}

func (h *Handler) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var txn ledgerModels.Transaction
	if err := httputil.DecodeJSON(r, &txn); err != nil {
		h.fail(w, r, "invalid transaction", err)
		return
	}
	txn.ID = nil
	id, err := h.services.Ledger.RecordTransaction(r.Context(), auth.GetActorID(r.Context()), txn)
	h.created(w, r, "failed to record transaction", id, err)
}

func (h *Handler) handleAmendTransaction(w http.ResponseWriter, r *http.Request) {
	var txn ledgerModels.Transaction
	if err := decodeForPath(r, &txn, &txn.ID); err != nil {
		h.fail(w, r, "invalid transaction", err)
		return
	}
	n, err := h.services.Ledger.AmendTransaction(r.Context(), auth.GetActorID(r.Context()), txn)
	h.updated(w, r, "failed to amend transaction", n, err)
}

func (h *Handler) handleLookupConfiguration(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.services.Settings.Lookup(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.fail(w, r, "configuration lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleDefineConfiguration(w http.ResponseWriter, r *http.Request) {
	var cfg settings.Configuration
	if err := httputil.DecodeJSON(r, &cfg); err != nil {
		h.fail(w, r, "invalid configuration", err)
		return
	}
	id, err := h.services.Settings.Define(r.Context(), auth.GetActorID(r.Context()), cfg)
	h.created(w, r, "failed to define configuration", id, err)
}

func (h *Handler) handleChangeConfiguration(w http.ResponseWriter, r *http.Request) {
	var cfg settings.Configuration
	if err := decodeForPath(r, &cfg, &cfg.ID); err != nil {
		h.fail(w, r, "invalid configuration", err)
		return
	}
	n, err := h.services.Settings.Change(r.Context(), auth.GetActorID(r.Context()), cfg)
	h.updated(w, r, "failed to change configuration", n, err)
}

func (h *Handler) handleRemoveConfiguration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, "invalid configuration id", err)
		return
	}
	n, err := h.services.Settings.Remove(r.Context(), auth.GetActorID(r.Context()), id)
	h.updated(w, r, "failed to remove configuration", n, err)
}

// decodeForPath decodes the body into v and reconciles its id with {id}.
func decodeForPath(r *http.Request, v any, id **int64) error {
	path, err := pathID(r)
	if err != nil {
		return err
	}
	if err := httputil.DecodeJSON(r, v); err != nil {
		return err
	}
	return matchPathID(path, id)
}
