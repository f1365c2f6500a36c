package handler

import (
	"net/http"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/careercraft-dev/career-pilot/backend/internal/profile"
)

func (h *Handler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	catalog := r.Context().Value(CatalogCtx).(*domain.Catalog)
	h.successResponse(w, r, "roles fetched", catalog.Roles)
}

// CreateRole appends a user-defined role to the persisted catalog. Catalog
// entries are append-only; there is no update or delete.
func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID           string `json:"id" validate:"required"`
		Title        string `json:"title" validate:"required"`
		MatchPercent int    `json:"match" validate:"min=0,max=100"`
		PrimarySkill string `json:"skill" validate:"required"`
		Description  string `json:"desc"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	catalog := r.Context().Value(CatalogCtx).(*domain.Catalog)

	if catalog.FindRole(req.ID) != nil {
		h.errorResponse(w, r, "a role with this id already exists")
		return
	}

	role := &domain.Role{
		ID:           req.ID,
		Title:        req.Title,
		MatchPercent: req.MatchPercent,
		PrimarySkill: req.PrimarySkill,
		Description:  req.Description,
	}
	catalog.Roles = append(catalog.Roles, role)

	if err := h.repository.WriteCatalog(catalog); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.successResponse(w, r, "role created", role)
}

func (h *Handler) SaveRole(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(EmailCtxKey).(string)
	store := r.Context().Value(StoreCtx).(*domain.Store)
	role := r.Context().Value(RoleCtx).(*domain.Role)

	user, err := profile.SaveRole(store, email, role.ID, time.Now())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.WriteStore(store); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.successResponse(w, r, "role saved", user.SavedRoles)
}

func (h *Handler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(EmailCtxKey).(string)
	store := r.Context().Value(StoreCtx).(*domain.Store)
	role := r.Context().Value(RoleCtx).(*domain.Role)

	user, err := profile.RemoveRole(store, email, role.ID)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.WriteStore(store); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.successResponse(w, r, "role removed", user.SavedRoles)
}
