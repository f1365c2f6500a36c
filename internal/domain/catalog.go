package domain

// Role is a career catalog entry. The json field names follow the store
// document schema, which predates this service.
type Role struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MatchPercent int    `json:"match"`
	PrimarySkill string `json:"skill"`
	Description  string `json:"desc"`
}

// Catalog is the persisted role list. Seeded with DefaultRoles on first
// access; user-defined roles are appended, entries are never edited in place.
type Catalog struct {
	Roles []*Role `json:"roles"`
}

func (c *Catalog) FindRole(id string) *Role {
	for _, role := range c.Roles {
		if role.ID == id {
			return role
		}
	}
	return nil
}

var DefaultRoles = []*Role{
	{ID: "r1", Title: "Software Developer", MatchPercent: 87, PrimarySkill: "Data Structures & Algorithms", Description: "Design and implement software systems."},
	{ID: "r2", Title: "Data Scientist", MatchPercent: 74, PrimarySkill: "Statistics & Feature Engineering", Description: "Analyze data to extract insights."},
	{ID: "r3", Title: "ML Engineer", MatchPercent: 65, PrimarySkill: "MLOps", Description: "Productionise ML models robustly."},
}

// CareerPath is an ordered list of learning steps for a role title.
type CareerPath struct {
	Description string   `json:"desc"`
	Steps       []string `json:"steps"`
}

// Roadmap is a resolved career path for a specific user.
type Roadmap struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// Resource is a single learning resource, indexed by skill name.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
