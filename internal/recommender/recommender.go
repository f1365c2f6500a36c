// Package recommender scores catalog roles against a user's progress and
// resolves the best match into a roadmap, a skill gap and learning
// resources. Everything is a pure function over the data handed to New;
// the only randomness is the jitter term, drawn from the selector's own
// rand.Rand so that it can be seeded (or disabled) for reproducible runs.
package recommender

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
)

const (
	matchWeight    = 1.5
	progressWeight = 0.8
	gapWeight      = 8.0
	jitterRange    = 5.0
	maxResources   = 8

	// Every 20 points of progress marks one required skill as learned.
	// A rough approximation, not a real skill-tracking model.
	progressPerSkill = 20

	defaultPathTitle = "Software Developer"
)

type Parameters struct {
	Jitter bool  // add a uniform [0,jitterRange) term to every score
	Seed   int64 // 0 means seed from the clock
}

type Selector struct {
	parameters *Parameters
	roles      []*domain.Role
	rng        *rand.Rand
}

func New(parameters *Parameters, roles []*domain.Role) *Selector {
	seed := parameters.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Selector{
		parameters: parameters,
		roles:      roles,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Score is the desirability of role for user. The gap penalty counts the
// required skills not yet covered by progress.
func (s *Selector) Score(user *domain.User, role *domain.Role) float64 {
	score := float64(role.MatchPercent)*matchWeight + float64(user.Progress)*progressWeight

	required := len(skillMap[role.Title])
	learned := user.Progress / progressPerSkill
	if gap := required - learned; gap > 0 {
		score -= float64(gap) * gapWeight
	}

	if s.parameters.Jitter {
		score += s.rng.Float64() * jitterRange
	}

	return score
}

// ScoredRole pairs a catalog role with its computed score.
type ScoredRole struct {
	Role  *domain.Role `json:"role"`
	Score float64      `json:"score"`
}

// SelectBestRole picks the role with the strictly greatest score; on a tie
// the first-seen role wins. Returns nil for an empty catalog.
func (s *Selector) SelectBestRole(user *domain.User) *domain.Role {
	var best *domain.Role
	bestScore := 0.0

	for _, role := range s.roles {
		score := s.Score(user, role)
		if best == nil || score > bestScore {
			best = role
			bestScore = score
		}
	}

	return best
}

// Rank scores every catalog role and returns them best first. Ordering is
// stable, so equally scored roles keep their catalog order.
func (s *Selector) Rank(user *domain.User) []ScoredRole {
	scored := make([]ScoredRole, 0, len(s.roles))
	for _, role := range s.roles {
		scored = append(scored, ScoredRole{Role: role, Score: s.Score(user, role)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// SkillGap returns the required skills for roleTitle not yet learned, in
// their original order. An unknown title has no required skills.
func (s *Selector) SkillGap(user *domain.User, roleTitle string) []string {
	required := skillMap[roleTitle]

	learned := user.Progress / progressPerSkill
	if learned > len(required) {
		learned = len(required)
	}

	return required[learned:]
}

// BuildRoadmap resolves the best-scoring role into its career path. A user
// with no saved roles has no roadmap yet.
func (s *Selector) BuildRoadmap(user *domain.User) *domain.Roadmap {
	if len(user.SavedRoles) == 0 {
		return nil
	}

	best := s.SelectBestRole(user)
	if best == nil {
		return nil
	}

	return Roadmap(best)
}

// Roadmap is the career path for a single role.
func Roadmap(role *domain.Role) *domain.Roadmap {
	title := pathTitleFor(role.Title, role.PrimarySkill)
	path := paths[title]

	return &domain.Roadmap{
		Title:       title,
		Description: path.Description,
		Steps:       path.Steps,
	}
}

// pathTitleFor maps an arbitrary role title onto one of the canonical path
// titles: exact match first, then substring heuristics over the title and
// the headline skill, then the default.
func pathTitleFor(title, primarySkill string) string {
	if _, ok := paths[title]; ok {
		return title
	}

	haystack := strings.ToLower(title + " " + primarySkill)
	switch {
	case strings.Contains(haystack, "data"):
		return "Data Scientist"
	case strings.Contains(haystack, "ml") || strings.Contains(haystack, "machine learning"):
		return "ML Engineer"
	default:
		return defaultPathTitle
	}
}

// Resources flattens the indexed resources for the given skills, capped at
// maxResources. Skills without indexed resources contribute nothing.
func Resources(skills []string) []domain.Resource {
	resources := make([]domain.Resource, 0, maxResources)
	for _, skill := range skills {
		for _, resource := range resourceIndex[skill] {
			if len(resources) == maxResources {
				return resources
			}
			resources = append(resources, resource)
		}
	}

	return resources
}
