package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
)

// A store document has to fit comfortably in memory anyway; this only guards
// against runaway request bodies.
const maxImportSize = 10 << 20

// ExportStore serves the persisted store document verbatim as a download.
func (h *Handler) ExportStore(w http.ResponseWriter, r *http.Request) {
	doc, err := h.repository.ExportStore()
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="career-pilot-store.json"`)
	if _, err := w.Write(doc); err != nil {
		h.logInternalServerError(r, err)
	}
}

// ImportStore overwrites the store wholesale with the uploaded document.
// Anything that parses as the store schema is accepted; there is no partial
// import and no per-record validation.
func (h *Handler) ImportStore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	store := domain.NewStore()
	if err := json.Unmarshal(body, store); err != nil {
		h.errorResponse(w, r, domain.ErrInvalidFormat.Error())
		return
	}
	if store.Users == nil {
		store.Users = map[string]*domain.User{}
	}

	if err := h.repository.WriteStore(store); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.successResponse(w, r, "store imported", map[string]int{"users": len(store.Users)})
}
