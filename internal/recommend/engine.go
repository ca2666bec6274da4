// Package recommend turns assessment scores into an actionable plan:
// prioritized recommendations, a priority matrix and a phased roadmap.
package recommend

import (
	"sort"
	"time"

	"maturity-insights-go/internal/types"
)

var priorityOrder = map[string]int{
	"critical": 0,
	"high":     1,
	"medium":   2,
	"low":      3,
}

// effortPoints converts the effort label to the matrix denominator.
var effortPoints = map[string]float64{
	"low":    2,
	"medium": 5,
	"high":   8,
}

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Plan assembles the recommendation plan for one scored assessment.
// A benchmark, when present, escalates priorities for organizations
// trailing their industry average.
func (e *Engine) Plan(scores *types.AssessmentScores, organizationID string, benchmark *types.IndustryBenchmark) *types.RecommendationPlan {
	recs := e.selectRecommendations(scores, benchmark)

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityOrder[recs[i].Priority] < priorityOrder[recs[j].Priority]
	})

	quickWins, mediumTerm, longTerm := categorize(recs)

	return &types.RecommendationPlan{
		AssessmentID:        scores.AssessmentID,
		OrganizationID:      organizationID,
		GeneratedAt:         time.Now().UTC(),
		OverallStrategy:     strategyFor(scores.MaturityLevel),
		QuickWins:           quickWins,
		MediumTermGoals:     mediumTerm,
		LongTermInitiatives: longTerm,
		PriorityMatrix:      priorityMatrix(recs),
		Roadmap:             roadmap(quickWins, mediumTerm, longTerm),
	}
}

func (e *Engine) selectRecommendations(scores *types.AssessmentScores, benchmark *types.IndustryBenchmark) []types.Recommendation {
	all := templates()
	var recs []types.Recommendation
	for _, d := range scores.Dimensions {
		// Benchmark average is on the 0-10 scale; a dimension trails when
		// it sits more than ten points under that average on the 0-100 scale.
		trailing := benchmark != nil && d.Score < benchmark.AverageMaturityLevel*10-10
		for _, r := range all[d.Dimension+":"+band(d.Score)] {
			if trailing && r.Priority != "critical" {
				r.Priority = "high"
			}
			recs = append(recs, r)
		}
	}
	return recs
}

// categorize assigns each recommendation to exactly one bucket; the
// first matching rule wins.
func categorize(recs []types.Recommendation) (quickWins, mediumTerm, longTerm []types.Recommendation) {
	for _, r := range recs {
		switch {
		case r.EstimatedEffort == "low" && r.EstimatedCost != "high":
			quickWins = append(quickWins, r)
		case r.EstimatedEffort == "medium" || (r.Priority == "high" && r.EstimatedEffort != "low"):
			mediumTerm = append(mediumTerm, r)
		case r.EstimatedEffort == "high" || r.EstimatedCost == "high":
			longTerm = append(longTerm, r)
		default:
			mediumTerm = append(mediumTerm, r)
		}
	}
	return quickWins, mediumTerm, longTerm
}

// priorityMatrix charts the ten highest-priority recommendations by
// impact-per-effort; recs arrive already priority-sorted.
func priorityMatrix(recs []types.Recommendation) []types.PriorityMatrixEntry {
	if len(recs) > 10 {
		recs = recs[:10]
	}
	entries := make([]types.PriorityMatrixEntry, 0, len(recs))
	for _, r := range recs {
		effort, ok := effortPoints[r.EstimatedEffort]
		if !ok {
			effort = 5
		}
		entries = append(entries, types.PriorityMatrixEntry{
			Recommendation: r.Title,
			Impact:         r.ExpectedImpact.PotentialGain,
			Effort:         effort,
			Priority:       r.ExpectedImpact.PotentialGain / effort,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})
	return entries
}

func roadmap(quickWins, mediumTerm, longTerm []types.Recommendation) []types.RoadmapPhase {
	return []types.RoadmapPhase{
		{
			Phase:           1,
			Name:            "Foundation",
			Duration:        "0-3 months",
			Recommendations: titles(quickWins, 3),
			Milestones: []string{
				"Complete initial training programs",
				"Establish communication channels",
				"Launch pilot projects",
			},
		},
		{
			Phase:           2,
			Name:            "Acceleration",
			Duration:        "3-6 months",
			Recommendations: titles(mediumTerm, 3),
			Milestones: []string{
				"Achieve 50% participation in AI programs",
				"Complete process assessments",
				"Establish governance framework",
			},
		},
		{
			Phase:           3,
			Name:            "Transformation",
			Duration:        "6-12 months",
			Recommendations: titles(longTerm, 3),
			Milestones: []string{
				"AI integrated into core processes",
				"Achieve target maturity level",
				"Demonstrate measurable ROI",
			},
		},
	}
}

func strategyFor(level types.MaturityLevel) string {
	switch {
	case level.Level < 3:
		return "Focus on building awareness and foundational capabilities. " +
			"Prioritize education, address resistance openly and create early wins " +
			"that make AI tangible for every team."
	case level.Level < 6:
		return "Accelerate adoption by scaling what already works. Formalize " +
			"successful experiments into supported practices, invest in integration " +
			"and build the governance needed for safe growth."
	}
	return "Optimize and lead. Push AI into core process design, measure " +
		"outcomes rigorously and position the organization as a reference point " +
		"for AI-driven transformation in its industry."
}

func titles(recs []types.Recommendation, n int) []string {
	out := make([]string, 0, n)
	for i, r := range recs {
		if i == n {
			break
		}
		out = append(out, r.Title)
	}
	return out
}
