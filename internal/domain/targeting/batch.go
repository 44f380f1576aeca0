package targeting

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
)

const TopMatchesLimit = 10

type Targeted struct {
	Candidate  profile.Candidate `json:"candidate"`
	MatchScore float64           `json:"match_score"`
	Reasoning  Reasoning         `json:"reasoning"`
}

// Evaluate returns the targeting entry for one candidate, or false when the posting stays hidden.
func (e *Engine) Evaluate(posting job.Posting, candidate profile.Candidate) (Targeted, bool) {
	v := e.DetermineVisibility(posting, candidate)
	if !v.Visible {
		return Targeted{}, false
	}
	return Targeted{
		Candidate:  candidate,
		MatchScore: v.Scores.Overall,
		Reasoning:  v.Reasoning,
	}, true
}

// Target keeps the candidates who should see the posting, best overall score first.
func (e *Engine) Target(posting job.Posting, candidates []profile.Candidate) []Targeted {
	out := make([]Targeted, 0)
	for _, c := range candidates {
		if t, ok := e.Evaluate(posting, c); ok {
			out = append(out, t)
		}
	}
	Rank(out)
	return out
}

// Rank orders targeted candidates by score descending; equal scores fall back to candidate ID so
// results merged from concurrent workers are reproducible.
func Rank(targeted []Targeted) {
	sort.SliceStable(targeted, func(i, j int) bool {
		if targeted[i].MatchScore != targeted[j].MatchScore {
			return targeted[i].MatchScore > targeted[j].MatchScore
		}
		return strings.Compare(targeted[i].Candidate.ID.String(), targeted[j].Candidate.ID.String()) < 0
	})
}

type TopMatch struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	MatchScore  int       `json:"match_score"`
}

type Stats struct {
	TotalReach           int            `json:"total_reach"`
	AverageMatchScore    float64        `json:"average_match_score"`
	InstitutionBreakdown map[string]int `json:"institution_breakdown"`
	DegreeBreakdown      map[string]int `json:"degree_breakdown"`
	TopMatches           []TopMatch     `json:"top_matches"`
}

// Summarize expects ranked input; TopMatches takes the first TopMatchesLimit entries.
func Summarize(targeted []Targeted) Stats {
	stats := Stats{
		TotalReach:           len(targeted),
		InstitutionBreakdown: make(map[string]int),
		DegreeBreakdown:      make(map[string]int),
		TopMatches:           make([]TopMatch, 0, min(len(targeted), TopMatchesLimit)),
	}
	if len(targeted) == 0 {
		return stats
	}

	var sum float64
	for i, t := range targeted {
		sum += t.MatchScore
		stats.InstitutionBreakdown[t.Candidate.Institution]++
		stats.DegreeBreakdown[t.Candidate.Degree]++
		if i < TopMatchesLimit {
			stats.TopMatches = append(stats.TopMatches, TopMatch{
				CandidateID: t.Candidate.ID,
				Name:        t.Candidate.Name,
				Institution: t.Candidate.Institution,
				Degree:      t.Candidate.Degree,
				MatchScore:  int(math.Round(t.MatchScore)),
			})
		}
	}
	stats.AverageMatchScore = round2(sum / float64(len(targeted)))
	return stats
}
