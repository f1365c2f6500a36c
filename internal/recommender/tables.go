package recommender

import (
	"sort"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
)

// Static lookup tables. Paths and skill lists are keyed by the three
// canonical role titles; roles with other titles fall back through
// pathTitleFor. Resources are keyed by skill name, independent of role.

var paths = map[string]domain.CareerPath{
	"Software Developer": {
		Description: "Full-stack development path.",
		Steps:       []string{"Programming basics", "DSA", "Frontend (React)", "Backend (Node)", "Full-stack projects", "Interview prep"},
	},
	"Data Scientist": {
		Description: "Data science path.",
		Steps:       []string{"Python", "Pandas & NumPy", "Statistics", "ML models", "Model evaluation", "Project case studies"},
	},
	"ML Engineer": {
		Description: "ML deployment path.",
		Steps:       []string{"ML fundamentals", "Deep learning", "Model optimization", "Docker", "MLOps tools", "Deploy & monitor"},
	},
}

var skillMap = map[string][]string{
	"Software Developer": {"DSA", "Git", "JavaScript", "React", "Backend", "Projects"},
	"Data Scientist":     {"Python", "NumPy", "Pandas", "Statistics", "ML Models", "SQL"},
	"ML Engineer":        {"Python", "Deep Learning", "TensorFlow", "PyTorch", "Docker", "MLOps"},
}

var resourceIndex = map[string][]domain.Resource{
	"DSA":        {{Name: "Striver DSA Sheet", URL: "https://takeuforward.org/interviews/strivers-sde-sheet-top-coding-interview-problems/"}},
	"JavaScript": {{Name: "MDN JS", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"}},
	"Python":     {{Name: "Python Tutorial", URL: "https://docs.python.org/3/tutorial/"}},
	"MLOps":      {{Name: "MLOps Roadmap", URL: "https://roadmap.sh/mlops"}},
}

// AvailableSkills lists the skills that have at least one indexed resource,
// in alphabetical order.
func AvailableSkills() []string {
	skills := make([]string, 0, len(resourceIndex))
	for skill := range resourceIndex {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// Index returns the whole resource index keyed by skill name.
func Index() map[string][]domain.Resource {
	return resourceIndex
}
