package recommender

import (
	"sort"
	"testing"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func deterministic(roles []*domain.Role) *Selector {
	return New(&Parameters{Jitter: false}, roles)
}

func TestScoreFormula(t *testing.T) {
	s := deterministic(domain.DefaultRoles)
	user := &domain.User{Progress: 40}

	// 87*1.5 + 40*0.8 - (6-2)*8 = 130.5 + 32 - 32
	require.InDelta(t, 130.5, s.Score(user, domain.DefaultRoles[0]), 1e-9)
	// 74*1.5 + 32 - 32
	require.InDelta(t, 111.0, s.Score(user, domain.DefaultRoles[1]), 1e-9)
}

func TestScoreWithoutRequiredSkills(t *testing.T) {
	s := deterministic(nil)
	user := &domain.User{Progress: 50}
	role := &domain.Role{Title: "Custom Role", MatchPercent: 60}

	// No skill list means no gap penalty
	require.InDelta(t, 60*1.5+50*0.8, s.Score(user, role), 1e-9)
}

func TestJitterStaysInRange(t *testing.T) {
	base := deterministic(domain.DefaultRoles)
	jittered := New(&Parameters{Jitter: true, Seed: 42}, domain.DefaultRoles)
	user := &domain.User{Progress: 40}

	for i := 0; i < 100; i++ {
		want := base.Score(user, domain.DefaultRoles[0])
		got := jittered.Score(user, domain.DefaultRoles[0])
		require.GreaterOrEqual(t, got, want)
		require.Less(t, got, want+jitterRange)
	}
}

func TestSelectBestRolePrefersHighestScore(t *testing.T) {
	s := deterministic(domain.DefaultRoles)
	user := &domain.User{Progress: 40}

	best := s.SelectBestRole(user)
	require.NotNil(t, best)
	require.Equal(t, "r1", best.ID)
}

func TestSelectBestRoleFirstSeenWinsTies(t *testing.T) {
	roles := []*domain.Role{
		{ID: "a", Title: "Software Developer", MatchPercent: 80},
		{ID: "b", Title: "Software Developer", MatchPercent: 80},
	}
	s := deterministic(roles)

	best := s.SelectBestRole(&domain.User{Progress: 100})
	require.Equal(t, "a", best.ID)
}

func TestSelectBestRoleEmptyCatalog(t *testing.T) {
	s := deterministic(nil)
	require.Nil(t, s.SelectBestRole(&domain.User{}))
}

func TestRankOrdersBestFirst(t *testing.T) {
	s := deterministic(domain.DefaultRoles)
	scored := s.Rank(&domain.User{Progress: 40})

	require.Len(t, scored, 3)
	require.Equal(t, "r1", scored[0].Role.ID)
	for i := 1; i < len(scored); i++ {
		require.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestSkillGap(t *testing.T) {
	s := deterministic(domain.DefaultRoles)

	// 6 required skills, progress 40 -> 2 learned -> the last 4 remain, in order
	gap := s.SkillGap(&domain.User{Progress: 40}, "Software Developer")
	require.Equal(t, []string{"JavaScript", "React", "Backend", "Projects"}, gap)

	// Progress 100 -> 5 learned -> only the last skill remains
	gap = s.SkillGap(&domain.User{Progress: 100}, "Data Scientist")
	require.Equal(t, []string{"SQL"}, gap)

	// Unknown titles have no required skills
	require.Empty(t, s.SkillGap(&domain.User{Progress: 0}, "Astronaut"))
}

func TestBuildRoadmap(t *testing.T) {
	s := deterministic(domain.DefaultRoles)

	// No saved roles means no roadmap
	require.Nil(t, s.BuildRoadmap(&domain.User{Progress: 40}))

	roadmap := s.BuildRoadmap(&domain.User{Progress: 40, SavedRoles: []string{"r1"}})
	require.NotNil(t, roadmap)
	require.Equal(t, "Software Developer", roadmap.Title)
	require.Len(t, roadmap.Steps, 6)
}

func TestPathTitleHeuristics(t *testing.T) {
	cases := []struct {
		title string
		skill string
		want  string
	}{
		{"Data Scientist", "Statistics", "Data Scientist"},
		{"Analytics Lead", "Data Visualization", "Data Scientist"},
		{"AI Platform Engineer", "ML Infrastructure", "ML Engineer"},
		{"Blockchain Developer", "Solidity", "Software Developer"},
	}

	for _, tc := range cases {
		got := Roadmap(&domain.Role{Title: tc.title, PrimarySkill: tc.skill})
		require.Equal(t, tc.want, got.Title, "title %q skill %q", tc.title, tc.skill)
	}
}

func TestAvailableSkillsSortedAndIndexed(t *testing.T) {
	skills := AvailableSkills()
	require.True(t, sort.StringsAreSorted(skills))

	index := Index()
	require.Len(t, skills, len(index))
	for _, skill := range skills {
		require.NotEmpty(t, index[skill])
	}
}

func TestResourcesFlattensAndCaps(t *testing.T) {
	resources := Resources([]string{"DSA", "JavaScript", "Unknown Skill"})
	require.Len(t, resources, 2)
	require.Equal(t, "Striver DSA Sheet", resources[0].Name)

	// Repeating indexed skills many times must still respect the cap
	var skills []string
	for i := 0; i < 20; i++ {
		skills = append(skills, "DSA")
	}
	require.Len(t, Resources(skills), maxResources)
}
