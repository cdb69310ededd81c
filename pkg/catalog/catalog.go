package catalog

import "sort"

// Role is a static career role with baseline attributes.
type Role struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Match int    `json:"match"`
	Skill string `json:"skill"`
	Desc  string `json:"desc"`
}

// Path describes a learning path for a role: a short description plus the
// ordered step labels.
type Path struct {
	Desc  string   `json:"desc"`
	Steps []string `json:"steps"`
}

// Resource is a named link for learning a skill.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Catalog is the static knowledge base: demo roles, per-role learning paths,
// per-role required skills (in acquisition order) and per-skill resource
// links. Loaded once at startup and never mutated.
type Catalog struct {
	roles     []Role
	paths     map[string]Path
	skillMap  map[string][]string
	resources map[string][]Resource
}

// New builds the built-in catalog used by this deployment.
func New() *Catalog {
	return &Catalog{
		roles: []Role{
			{ID: "r1", Title: "Software Developer", Match: 87, Skill: "Data Structures & Algorithms", Desc: "Design and implement software systems."},
			{ID: "r2", Title: "Data Scientist", Match: 74, Skill: "Statistics & Feature Engineering", Desc: "Analyze data to extract insights."},
			{ID: "r3", Title: "ML Engineer", Match: 65, Skill: "MLOps", Desc: "Productionise ML models robustly."},
		},
		paths: map[string]Path{
			"Software Developer": {
				Desc:  "Full-stack development path.",
				Steps: []string{"Programming basics", "DSA", "Frontend (React)", "Backend (Node)", "Full-stack projects", "Interview prep"},
			},
			"Data Scientist": {
				Desc:  "Data science path.",
				Steps: []string{"Python", "Pandas & NumPy", "Statistics", "ML models", "Model evaluation", "Project case studies"},
			},
			"ML Engineer": {
				Desc:  "ML deployment path.",
				Steps: []string{"ML fundamentals", "Deep learning", "Model optimization", "Docker", "MLOps tools", "Deploy & monitor"},
			},
		},
		skillMap: map[string][]string{
			"Software Developer": {"DSA", "Git", "JavaScript", "React", "Backend", "Projects"},
			"Data Scientist":     {"Python", "NumPy", "Pandas", "Statistics", "ML Models", "SQL"},
			"ML Engineer":        {"Python", "Deep Learning", "TensorFlow", "PyTorch", "Docker", "MLOps"},
		},
		resources: map[string][]Resource{
			"DSA":        {{Name: "Striver DSA Sheet", URL: "https://takeuforward.org/interviews/strivers-sde-sheet-top-coding-interview-problems/"}},
			"JavaScript": {{Name: "MDN JS", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"}},
			"Python":     {{Name: "Python Tutorial", URL: "https://docs.python.org/3/tutorial/"}},
			"MLOps":      {{Name: "MLOps Roadmap", URL: "https://roadmap.sh/mlops"}},
		},
	}
}

// Roles returns the fixed role list in table order.
func (c *Catalog) Roles() []Role { return c.roles }

// HasRole reports whether id belongs to the role table.
func (c *Catalog) HasRole(id string) bool {
	for _, r := range c.roles {
		if r.ID == id {
			return true
		}
	}
	return false
}

// PathFor returns the learning path for a role title. Unknown titles yield
// an empty path, not an error.
func (c *Catalog) PathFor(title string) Path {
	return c.paths[title]
}

// SkillsFor returns the required skills for a role title in acquisition
// order. Unknown titles yield an empty list.
func (c *Catalog) SkillsFor(title string) []string {
	return c.skillMap[title]
}

// ResourcesFor returns the resource links for a skill name.
func (c *Catalog) ResourcesFor(skill string) []Resource {
	return c.resources[skill]
}

// Skills lists the skill names that have resources, sorted for stable output.
func (c *Catalog) Skills() []string {
	out := make([]string, 0, len(c.resources))
	for s := range c.resources {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ResourceTable returns the full skill-to-resources table.
func (c *Catalog) ResourceTable() map[string][]Resource {
	return c.resources
}
