package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/careercraft-dev/career-pilot/backend/internal/profile"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would mangle the multi-line trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// auth validates the session cookie and attaches the subject email to the
// request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, domain.ErrNotLoggedIn.Error())
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		tokenString := cookie.Value
		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, domain.ErrNotLoggedIn.Error())
			return
		}

		ctx := context.WithValue(r.Context(), EmailCtxKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser loads the full store document and resolves the session email
// to its record. A session pointing at a record that no longer exists (for
// example after a wholesale import) is treated as logged out, not as an
// error.
func (h *Handler) currentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := profile.CanonicalEmail(r.Context().Value(EmailCtxKey).(string))

		store, err := h.repository.ReadStore()
		if err != nil {
			h.storageError(w, r, err)
			return
		}

		user, exists := store.Users[email]
		if !exists {
			h.errorResponse(w, r, domain.ErrNotLoggedIn.Error())
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, EmailCtxKey, email)
		ctx = context.WithValue(ctx, StoreCtx, store)
		ctx = context.WithValue(ctx, UserCtx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// catalog loads the role catalog for routes that need it.
func (h *Handler) catalog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalog, err := h.repository.ReadCatalog()
		if err != nil {
			h.storageError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), CatalogCtx, catalog)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// role resolves the {id} URL parameter against the catalog.
func (h *Handler) role(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalog := r.Context().Value(CatalogCtx).(*domain.Catalog)

		roleID := chi.URLParam(r, "id")
		role := catalog.FindRole(roleID)
		if role == nil {
			h.errorResponse(w, r, "role does not exist")
			return
		}

		ctx := context.WithValue(r.Context(), RoleCtx, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// storageError keeps an unreachable database from surfacing as a bare 500:
// the condition is expected enough to get its own message.
func (h *Handler) storageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrStorageUnavailable) {
		slog.Error("storage unavailable", "method", r.Method, "path", r.URL.Path, "error", err)
		h.errorResponse(w, r, domain.ErrStorageUnavailable.Error())
		return
	}
	h.internalServerError(w, r, err)
}
