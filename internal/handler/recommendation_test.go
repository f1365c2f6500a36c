package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careercraft-dev/career-pilot/backend/internal/config"
	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

// The zero config disables jitter, so scoring in these tests is deterministic.
func newTestHandler(t *testing.T, repo Repository) *Handler {
	t.Helper()

	h, err := NewHandler(&config.Config{}, repo, nil, nil)
	require.NoError(t, err)
	return h
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func recommendationRequest(user *domain.User, catalog *domain.Catalog) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/recommendation", nil)
	ctx := context.WithValue(r.Context(), EmailCtxKey, "ann@example.com")
	ctx = context.WithValue(ctx, UserCtx, user)
	ctx = context.WithValue(ctx, CatalogCtx, catalog)
	return r.WithContext(ctx)
}

func TestGetResourcesWithoutSkillsReturnsFullIndex(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GetResources(rec, httptest.NewRequest(http.MethodGet, "/resources", nil))

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)

	available, ok := data["available"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, available)

	// Every listed skill must come with its resources in the same payload
	resources, ok := data["resources"].(map[string]any)
	require.True(t, ok)
	require.Len(t, resources, len(available))
	for _, skill := range available {
		require.Contains(t, resources, skill.(string))
	}
}

func TestGetResourcesFiltersBySkillsParam(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GetResources(rec, httptest.NewRequest(http.MethodGet, "/resources?skills=DSA,+Unknown+Skill", nil))

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	require.NotContains(t, data, "available")
	require.Len(t, data["resources"].([]any), 1)
}

func TestGetRecommendationRequiresSavedRoles(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GetRecommendation(rec, recommendationRequest(
		&domain.User{Progress: 40},
		&domain.Catalog{Roles: domain.DefaultRoles},
	))

	resp := decodeResponse(t, rec)
	require.False(t, resp.Success)
}

func TestGetRecommendationGapFollowsRoadmapPath(t *testing.T) {
	// A user-defined role resolves to the default path; the reported gap
	// tracks that path's skills so gap, roadmap and resources agree.
	catalog := &domain.Catalog{Roles: []*domain.Role{
		{ID: "x1", Title: "Blockchain Developer", MatchPercent: 90, PrimarySkill: "Solidity"},
	}}
	user := &domain.User{Progress: 40, SavedRoles: []string{"x1"}}

	h := newTestHandler(t, nil)
	rec := httptest.NewRecorder()
	h.GetRecommendation(rec, recommendationRequest(user, catalog))

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	require.Equal(t, "ann@example.com", data["email"])

	roadmap := data["roadmap"].(map[string]any)
	require.Equal(t, "Software Developer", roadmap["title"])

	require.Equal(t, []any{"JavaScript", "React", "Backend", "Projects"}, data["skillGap"])
}
