package recommend

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/careerpilot/backend/pkg/catalog"
	"github.com/careerpilot/backend/pkg/user"
)

// ErrNoSavedRoles is returned when the user has not saved any role yet.
var ErrNoSavedRoles = errors.New("no saved roles, save a role first")

// ScoredRole pairs a catalog role with its computed score.
type ScoredRole struct {
	Role  catalog.Role `json:"role"`
	Score float64      `json:"score"`
}

// Recommendation is the full engine output: the winning role, all roles
// with scores, the winner's learning path, the remaining skill gap and up to
// 8 matching resources.
type Recommendation struct {
	Best      ScoredRole         `json:"best"`
	Scored    []ScoredRole       `json:"scored"`
	Path      catalog.Path       `json:"path"`
	SkillGap  []string           `json:"skill_gap"`
	Resources []catalog.Resource `json:"resources"`
}

const maxResources = 8

// Service ranks catalog roles for a user. Scoring is a weighted sum of the
// role's baseline match, the user's progress and the remaining skill gap,
// plus a small uniform jitter in [0, 2.5) that breaks ties between calls.
type Service struct {
	catalog *catalog.Catalog
	noise   func() float64
}

func NewService(cat *catalog.Catalog) *Service {
	return &Service{
		catalog: cat,
		noise:   func() float64 { return rand.Float64() * 2.5 },
	}
}

// Recommend requires at least one saved role; progress alone is not enough
// to rank against.
func (s *Service) Recommend(rec user.Record) (Recommendation, error) {
	if len(rec.SavedRoles) == 0 {
		return Recommendation{}, ErrNoSavedRoles
	}

	learned := rec.Progress / 20
	scored := make([]ScoredRole, 0, len(s.catalog.Roles()))
	for _, r := range s.catalog.Roles() {
		required := len(s.catalog.SkillsFor(r.Title))
		gap := required - learned
		if gap < 0 {
			gap = 0
		}
		score := float64(r.Match)*1.5 + float64(rec.Progress)*0.8 - float64(gap)*8 + s.noise()
		scored = append(scored, ScoredRole{Role: r, Score: round2(score)})
	}
	// Stable sort keeps table order on exact ties.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	best := scored[0]
	gap := s.skillGap(best.Role.Title, learned)
	return Recommendation{
		Best:      best,
		Scored:    scored,
		Path:      s.catalog.PathFor(best.Role.Title),
		SkillGap:  gap,
		Resources: s.resources(gap),
	}, nil
}

// skillGap returns the required skills beyond what progress implies is
// already learned.
func (s *Service) skillGap(title string, learned int) []string {
	req := s.catalog.SkillsFor(title)
	if learned >= len(req) {
		return []string{}
	}
	return req[learned:]
}

// resources concatenates the links for each gap skill, preserving skill
// order then within-skill order, truncated to the first 8 entries.
func (s *Service) resources(skills []string) []catalog.Resource {
	out := []catalog.Resource{}
	for _, sk := range skills {
		out = append(out, s.catalog.ResourcesFor(sk)...)
	}
	if len(out) > maxResources {
		out = out[:maxResources]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
