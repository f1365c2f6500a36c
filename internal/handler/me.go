package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/careercraft-dev/career-pilot/backend/internal/profile"
	"github.com/redis/go-redis/v9"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(EmailCtxKey).(string)
	user := r.Context().Value(UserCtx).(*domain.User)

	h.successResponse(w, r, "profile fetched", user.Profile(email))
}

func (h *Handler) AdjustMyProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta *int `json:"delta" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	email := r.Context().Value(EmailCtxKey).(string)
	store := r.Context().Value(StoreCtx).(*domain.Store)

	progress, err := profile.AdjustProgress(store, email, *req.Delta, time.Now())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.WriteStore(store); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.successResponse(w, r, "progress updated", map[string]int{"progress": progress})
}

func (h *Handler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserCtx).(*domain.User)
	h.successResponse(w, r, "history fetched", user.History)
}

// Theme preference lives in Redis under its own key, next to the session
// state rather than inside the store document.
func (h *Handler) GetMyTheme(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(EmailCtxKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	theme, err := h.redisClient.Get(ctx, fmt.Sprintf("theme_%s", email)).Result()
	if err != nil {
		if err == redis.Nil {
			theme = "light"
		} else {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "theme fetched", map[string]string{"theme": theme})
}

func (h *Handler) SetMyTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme" validate:"required,oneof=light dark"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	email := r.Context().Value(EmailCtxKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	if err := h.redisClient.Set(ctx, fmt.Sprintf("theme_%s", email), req.Theme, 0).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "theme updated", map[string]string{"theme": req.Theme})
}
