package handler

import (
	"net/http"
	"strings"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/careercraft-dev/career-pilot/backend/internal/recommender"
)

func (h *Handler) newSelector(catalog *domain.Catalog) *recommender.Selector {
	return recommender.New(&recommender.Parameters{
		Jitter: h.config.Recommender.Jitter,
		Seed:   h.config.Recommender.Seed,
	}, catalog.Roles)
}

func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(EmailCtxKey).(string)
	user := r.Context().Value(UserCtx).(*domain.User)
	catalog := r.Context().Value(CatalogCtx).(*domain.Catalog)

	if len(user.SavedRoles) == 0 {
		h.errorResponse(w, r, "no saved roles yet, save a role first")
		return
	}

	selector := h.newSelector(catalog)

	// Score once and derive everything from the same ranking, so the
	// jitter cannot make the roadmap disagree with the reported best role.
	scored := selector.Rank(user)
	best := scored[0]
	roadmap := recommender.Roadmap(best.Role)
	skillGap := selector.SkillGap(user, roadmap.Title)
	resources := recommender.Resources(skillGap)

	h.successResponse(w, r, "recommendation computed", map[string]any{
		"email":     email,
		"best":      best,
		"scored":    scored,
		"roadmap":   roadmap,
		"skillGap":  skillGap,
		"resources": resources,
	})
}

func (h *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	skillsParam := r.URL.Query().Get("skills")

	skills := make([]string, 0)
	for _, skill := range strings.Split(skillsParam, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}

	if len(skills) == 0 {
		h.successResponse(w, r, "resources fetched", map[string]any{
			"available": recommender.AvailableSkills(),
			"resources": recommender.Index(),
		})
		return
	}

	h.successResponse(w, r, "resources fetched", map[string]any{
		"resources": recommender.Resources(skills),
	})
}
