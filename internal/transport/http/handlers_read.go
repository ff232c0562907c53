package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/httputil"
)

func (h *Handler) reader(r *http.Request) (EntityReader, error) {
	entity := chi.URLParam(r, "entity")
	reader, ok := h.services.Entities[entity]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown entity "+entity)
	}
	return reader, nil
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	reader, err := h.reader(r)
	if err != nil {
		h.fail(w, r, "search rejected", err)
		return
	}
	search, err := parseSearch(r.URL.Query(), h.defaultMax)
	if err != nil {
		h.fail(w, r, "search rejected", err)
		return
	}
	page, err := reader.Search(r.Context(), search)
	if err != nil {
		h.fail(w, r, "search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleFetch(w http.ResponseWriter, r *http.Request) {
	reader, err := h.reader(r)
	if err != nil {
		h.fail(w, r, "fetch rejected", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, "fetch rejected", err)
		return
	}
	entity, found, err := reader.Fetch(r.Context(), id)
	if err != nil {
		h.fail(w, r, "fetch failed", dErrors.Wrap(err, dErrors.CodeInternal, "fetch"))
		return
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, chi.URLParam(r, "entity")+" not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entity)
}

// handleHistory lists the audit log, newest first unless a sort is given.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	search, err := parseSearch(r.URL.Query(), h.defaultMax)
	if err != nil {
		h.fail(w, r, "history search rejected", err)
		return
	}
	page, err := h.services.History.List(r.Context(), search)
	if err != nil {
		h.fail(w, r, "history search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}
