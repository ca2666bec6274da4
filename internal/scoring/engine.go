// Package scoring computes structured assessment scores from weighted
// survey answers: per-dimension and subdimension breakdowns, a 10-level
// maturity ladder, gap analysis and peer comparison.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"maturity-insights-go/internal/types"
)

var ErrNoAnswers = errors.New("no scorable answers")

// DefaultDimensionWeights sums to 1 across the five assessment
// dimensions. Unknown dimensions fall back to 0.2.
var DefaultDimensionWeights = map[string]float64{
	"individual": 0.25,
	"leadership": 0.20,
	"cultural":   0.20,
	"embedding":  0.20,
	"velocity":   0.15,
}

// Levels returns the maturity ladder in ascending order. Levels are
// numbered 0-9 so the level equals its index.
func Levels() []types.MaturityLevel {
	return []types.MaturityLevel{
		{Level: 0, Name: "Unaware", MinScore: 0, MaxScore: 10, Description: "AI is not on the organization's radar"},
		{Level: 1, Name: "Aware", MinScore: 11, MaxScore: 20, Description: "Awareness exists but no concrete action"},
		{Level: 2, Name: "Exploring", MinScore: 21, MaxScore: 30, Description: "Individuals experiment without coordination"},
		{Level: 3, Name: "Experimenting", MinScore: 31, MaxScore: 40, Description: "Pilots run with informal support"},
		{Level: 4, Name: "Adopting", MinScore: 41, MaxScore: 50, Description: "AI use is sanctioned and spreading"},
		{Level: 5, Name: "Scaling", MinScore: 51, MaxScore: 60, Description: "Successful pilots scale across teams"},
		{Level: 6, Name: "Optimizing", MinScore: 61, MaxScore: 70, Description: "AI workflows are measured and tuned"},
		{Level: 7, Name: "Innovating", MinScore: 71, MaxScore: 80, Description: "AI drives new products and services"},
		{Level: 8, Name: "Leading", MinScore: 81, MaxScore: 90, Description: "The organization sets industry practice"},
		{Level: 9, Name: "Transforming", MinScore: 91, MaxScore: 100, Description: "AI is foundational to the operating model"},
	}
}

type Engine struct {
	weights map[string]float64
}

func NewEngine(weights map[string]float64) *Engine {
	if weights == nil {
		weights = DefaultDimensionWeights
	}
	return &Engine{weights: weights}
}

// Score computes the full assessment result. Skipped answers count
// toward the skip tally but never toward any score.
func (e *Engine) Score(assessmentID string, answers []types.SurveyAnswer, benchmark *types.IndustryBenchmark) (*types.AssessmentScores, error) {
	if assessmentID == "" {
		assessmentID = uuid.New().String()
	}

	byDim := map[string][]types.SurveyAnswer{}
	var dimOrder []string
	scorable := 0
	for _, a := range answers {
		if _, seen := byDim[a.Dimension]; !seen {
			dimOrder = append(dimOrder, a.Dimension)
		}
		byDim[a.Dimension] = append(byDim[a.Dimension], a)
		if !a.Skipped {
			scorable++
		}
	}
	if scorable == 0 {
		return nil, ErrNoAnswers
	}

	dimensions := make([]types.DimensionScore, 0, len(dimOrder))
	var weightedSum, weightSum float64
	for _, dim := range dimOrder {
		ds := e.scoreDimension(dim, byDim[dim])
		dimensions = append(dimensions, ds)
		if ds.QuestionsAnswered > 0 {
			weightedSum += ds.WeightedScore
			weightSum += ds.Weight
		}
	}

	overall := 0.0
	if weightSum > 0 {
		overall = round1(weightedSum / weightSum)
	}
	level := levelFor(overall)

	scores := &types.AssessmentScores{
		AssessmentID:   assessmentID,
		OverallScore:   overall,
		MaturityLevel:  level,
		Dimensions:     dimensions,
		GapAnalysis:    gapAnalysis(overall, level, dimensions),
		PeerComparison: peerComparison(overall, benchmark),
		Timestamp:      time.Now().UTC(),
	}
	return scores, nil
}

func (e *Engine) scoreDimension(dim string, answers []types.SurveyAnswer) types.DimensionScore {
	var sum, weightTotal float64
	answered, skipped := 0, 0

	bySub := map[string][]types.SurveyAnswer{}
	var subOrder []string

	for _, a := range answers {
		if a.Skipped {
			skipped++
			continue
		}
		answered++
		w := a.Weight
		if w == 0 {
			w = 1
		}
		sum += a.AnswerValue * w
		weightTotal += w

		if a.Subdimension != "" {
			if _, seen := bySub[a.Subdimension]; !seen {
				subOrder = append(subOrder, a.Subdimension)
			}
			bySub[a.Subdimension] = append(bySub[a.Subdimension], a)
		}
	}

	score := 0.0
	if weightTotal > 0 {
		score = round1(sum / weightTotal)
	}
	dimWeight, ok := e.weights[dim]
	if !ok {
		dimWeight = 0.2
	}

	subs := make([]types.SubdimensionScore, 0, len(subOrder))
	for _, name := range subOrder {
		subs = append(subs, scoreSubdimension(name, bySub[name]))
	}

	return types.DimensionScore{
		Dimension:         dim,
		Score:             score,
		MaxScore:          100,
		Percentage:        score,
		Weight:            dimWeight,
		WeightedScore:     score * dimWeight,
		Subdimensions:     subs,
		QuestionsAnswered: answered,
		QuestionsSkipped:  skipped,
	}
}

func scoreSubdimension(name string, answers []types.SurveyAnswer) types.SubdimensionScore {
	var sum, weightTotal float64
	for _, a := range answers {
		w := a.Weight
		if w == 0 {
			w = 1
		}
		sum += a.AnswerValue * w
		weightTotal += w
	}
	score := 0.0
	if weightTotal > 0 {
		score = round1(sum / weightTotal)
	}
	return types.SubdimensionScore{
		Name:          name,
		Score:         score,
		MaxScore:      100,
		Percentage:    score,
		QuestionCount: len(answers),
	}
}

// levelFor maps a 0-100 score onto the ladder. Scores above 100 clamp
// to the top level.
func levelFor(score float64) types.MaturityLevel {
	levels := Levels()
	for _, l := range levels {
		if score <= l.MaxScore {
			return l
		}
	}
	return levels[len(levels)-1]
}

func gapAnalysis(overall float64, current types.MaturityLevel, dimensions []types.DimensionScore) types.GapAnalysis {
	levels := Levels()
	var next *types.MaturityLevel
	if current.Level+1 < len(levels) {
		n := levels[current.Level+1]
		next = &n
	}

	ga := types.GapAnalysis{CurrentLevel: current, NextLevel: next}
	if next != nil {
		ga.PointsToNextLevel = round1(next.MinScore - overall)
		if next.MinScore > 0 {
			ga.PercentageToNextLevel = math.Round(overall / next.MinScore * 100)
		}
	}

	target := 100.0
	if next != nil {
		target = next.MinScore
	}
	for _, d := range dimensions {
		gap := round1(target - d.Score)
		if gap <= 0 {
			continue
		}
		priority := "low"
		switch {
		case gap > 30:
			priority = "high"
		case gap > 15:
			priority = "medium"
		}
		ga.DimensionGaps = append(ga.DimensionGaps, types.DimensionGap{
			Dimension:    d.Dimension,
			CurrentScore: d.Score,
			TargetScore:  target,
			Gap:          gap,
			Priority:     priority,
		})
	}
	sort.SliceStable(ga.DimensionGaps, func(i, j int) bool {
		return ga.DimensionGaps[i].Gap > ga.DimensionGaps[j].Gap
	})

	ga.Recommendations = narrativeRecommendations(current, next, ga.DimensionGaps)
	return ga
}

var dimensionAdvice = map[string]string{
	"individual": "Expand hands-on AI training so individual fluency stops being the bottleneck",
	"leadership": "Secure visible executive sponsorship for AI initiatives",
	"cultural":   "Invest in psychological safety so teams experiment with AI openly",
	"embedding":  "Integrate AI into core business processes rather than side projects",
	"velocity":   "Shorten the path from AI idea to approved experiment",
}

func narrativeRecommendations(current types.MaturityLevel, next *types.MaturityLevel, gaps []types.DimensionGap) []string {
	var recs []string
	switch {
	case current.Level < 3:
		recs = append(recs, "Focus on building AI awareness and foundational literacy across the organization")
	case current.Level < 6:
		recs = append(recs, "Consolidate early wins into repeatable, supported AI practices")
	default:
		recs = append(recs, "Optimize and scale existing AI capability toward organization-wide transformation")
	}

	added := 0
	for _, g := range gaps {
		if g.Priority != "high" || added == 3 {
			continue
		}
		if advice, ok := dimensionAdvice[g.Dimension]; ok {
			recs = append(recs, advice)
		} else {
			recs = append(recs, fmt.Sprintf("Close the %.0f-point gap in %s", g.Gap, g.Dimension))
		}
		added++
	}

	if next != nil {
		recs = append(recs, fmt.Sprintf("Target: Reach %s level (%.0f+ points) within the next assessment cycle", next.Name, next.MinScore))
	}
	return recs
}

// peerComparison derives a percentile from the benchmark maturity
// distribution, or reports a neutral 50th percentile if the benchmark
// lacks one.
func peerComparison(overall float64, benchmark *types.IndustryBenchmark) *types.PeerComparison {
	if benchmark == nil {
		return nil
	}
	// Benchmark levels are on the 0-10 scale; align with the 0-100 score.
	industryAvg := round1(benchmark.AverageMaturityLevel * 10)

	percentile := 50.0
	if len(benchmark.MaturityDistribution) > 0 {
		ownLevel := levelFor(overall).Level
		below := 0.0
		for _, band := range benchmark.MaturityDistribution {
			if band.Level < ownLevel {
				below += band.Percentage
			}
		}
		percentile = math.Min(99, math.Max(1, math.Round(below)))
	}

	rank := "Bottom 25%"
	switch {
	case percentile >= 90:
		rank = "Top 10%"
	case percentile >= 75:
		rank = "Top 25%"
	case percentile >= 50:
		rank = "Above Average"
	case percentile >= 25:
		rank = "Below Average"
	}

	return &types.PeerComparison{
		IndustryAverage: industryAvg,
		Percentile:      percentile,
		Rank:            rank,
	}
}

// SummarizeScores reports aggregate statistics over a history of
// assessment results, newest last.
func SummarizeScores(history []types.AssessmentScores) map[string]interface{} {
	if len(history) == 0 {
		return map[string]interface{}{"count": 0}
	}

	scores := make([]float64, len(history))
	dimTotals := map[string]float64{}
	dimCounts := map[string]int{}
	for i, h := range history {
		scores[i] = h.OverallScore
		for _, d := range h.Dimensions {
			dimTotals[d.Dimension] += d.Score
			dimCounts[d.Dimension]++
		}
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := round1(sum / float64(len(scores)))

	dimAverages := map[string]float64{}
	for dim, total := range dimTotals {
		dimAverages[dim] = round1(total / float64(dimCounts[dim]))
	}

	trend := "stable"
	if len(scores) >= 2 {
		half := len(scores) / 2
		older := meanOf(scores[:half])
		recent := meanOf(scores[half:])
		if recent-older > 5 {
			trend = "improving"
		} else if older-recent > 5 {
			trend = "declining"
		}
	}

	return map[string]interface{}{
		"count":              len(history),
		"mean_score":         mean,
		"median_score":       round1(median),
		"dimension_averages": dimAverages,
		"trend":              trend,
		"level_names":        levelNames(),
	}
}

func levelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	return names
}

func meanOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
