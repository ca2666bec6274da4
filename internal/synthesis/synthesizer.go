// Package synthesis folds per-transcript agent outputs into one
// organization-level view: consensus themes, divergence points, merged
// reality gaps, aggregate dimension scores and tiered recommendations.
package synthesis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/types"
)

// aggregateDimensions is the fixed dimension set aggregate scores cover.
var aggregateDimensions = []string{
	"skills_talent",
	"ai_use_cases",
	"strategy_alignment",
	"process_optimization",
	"ai_governance",
	"leadership_vision",
	"culture_change",
	"integration_capability",
}

type Input struct {
	OrganizationID string
	Themes         []types.ThemeMining
	Sentiments     []types.SentimentProfile
	Gaps           []types.GapAnalysisResult
	Skills         types.SkillsMap
}

type Synthesizer struct {
	cal config.Calibration
}

func NewSynthesizer(cal config.Calibration) *Synthesizer {
	return &Synthesizer{cal: cal}
}

func (s *Synthesizer) Synthesize(in Input) types.Synthesis {
	total := len(in.Themes)
	consensus := consensusThemes(in.Themes, total)
	divergence := divergencePoints(in.Themes)
	gaps := mergeGaps(in.Gaps)
	scores := aggregateScores(in.Gaps, in.Sentiments)

	return types.Synthesis{
		OrganizationID:   in.OrganizationID,
		TotalInterviews:  total,
		ConsensusThemes:  consensus,
		DivergencePoints: divergence,
		RealityGaps:      gaps,
		SkillsMap:        in.Skills.Profiles,
		AggregateScores:  scores,
		ExecutiveSummary: executiveSummary(total, consensus, gaps, in.Skills, scores),
		Recommendations:  s.recommendations(consensus, gaps, in.Skills),
	}
}

// consensusThemes merges same-ID themes across transcripts and keeps
// those raised by at least half of them (ceiling for odd counts).
func consensusThemes(minings []types.ThemeMining, total int) []types.ThemeCluster {
	threshold := (total + 1) / 2

	merged := map[string]*types.ThemeCluster{}
	sources := map[string]map[string]bool{}
	var order []string

	for _, tm := range minings {
		for _, theme := range tm.Themes {
			existing, ok := merged[theme.ID]
			if !ok {
				cp := theme
				cp.SourceInterviews = []string{tm.TranscriptID}
				merged[theme.ID] = &cp
				sources[theme.ID] = map[string]bool{tm.TranscriptID: true}
				order = append(order, theme.ID)
				continue
			}
			existing.Frequency += theme.Frequency
			existing.SourceInterviews = append(existing.SourceInterviews, tm.TranscriptID)
			sources[theme.ID][tm.TranscriptID] = true
			quotes := theme.RepresentativeQuotes
			if len(quotes) > 2 {
				quotes = quotes[:2]
			}
			existing.RepresentativeQuotes = append(existing.RepresentativeQuotes, quotes...)
		}
	}

	var out []types.ThemeCluster
	for _, id := range order {
		if len(sources[id]) >= threshold {
			out = append(out, *merged[id])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	return out
}

// divergencePoints surfaces themes where interviewees took visibly
// different stances, classified from each transcript's theme sentiment.
func divergencePoints(minings []types.ThemeMining) []types.DivergencePoint {
	positions := map[string][]types.Position{}
	names := map[string]string{}
	var order []string

	for _, tm := range minings {
		for _, theme := range tm.Themes {
			stance := types.SentimentNeutral
			if theme.Sentiment > 0 {
				stance = types.SentimentPositive
			} else if theme.Sentiment < 0 {
				stance = types.SentimentNegative
			}
			if _, seen := positions[theme.ID]; !seen {
				order = append(order, theme.ID)
				names[theme.ID] = theme.Name
			}
			positions[theme.ID] = append(positions[theme.ID], types.Position{
				Interviewee: tm.Interviewee,
				Position:    stance,
			})
		}
	}

	var out []types.DivergencePoint
	for _, id := range order {
		ps := positions[id]
		unique := map[string]bool{}
		for _, p := range ps {
			unique[p.Position] = true
		}
		if len(ps) < 3 || len(unique) < 2 {
			continue
		}
		significance := "medium"
		if len(unique) == 3 {
			significance = "high"
		}
		out = append(out, types.DivergencePoint{
			Topic:        names[id],
			Positions:    ps,
			Significance: significance,
		})
	}
	return out
}

// mergeGaps folds same-dimension gaps pairwise in observation order.
// Each merge averages the running value with the incoming one and
// recomputes the gap from the averaged pair, so the perception-minus-
// evidence identity survives aggregation.
func mergeGaps(results []types.GapAnalysisResult) []types.RealityGap {
	merged := map[string]*types.RealityGap{}
	var order []string

	for _, r := range results {
		for _, g := range r.Gaps {
			existing, ok := merged[g.Dimension]
			if !ok {
				cp := g
				merged[g.Dimension] = &cp
				order = append(order, g.Dimension)
				continue
			}
			existing.LeadershipPerception = (existing.LeadershipPerception + g.LeadershipPerception) / 2
			existing.ActualEvidence = (existing.ActualEvidence + g.ActualEvidence) / 2
			existing.Gap = existing.LeadershipPerception - existing.ActualEvidence
			existing.Confidence = (existing.Confidence + g.Confidence) / 2
			existing.Evidence.Supporting = append(existing.Evidence.Supporting, g.Evidence.Supporting...)
			existing.Evidence.Contradicting = append(existing.Evidence.Contradicting, g.Evidence.Contradicting...)
		}
	}

	out := make([]types.RealityGap, 0, len(order))
	for _, dim := range order {
		out = append(out, *merged[dim])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Gap) > math.Abs(out[j].Gap)
	})
	return out
}

// aggregateScores starts every dimension at the midpoint, overrides it
// with per-transcript gap evidence in observation order so the latest
// observation wins, then nudges by the overall interview mood.
func aggregateScores(results []types.GapAnalysisResult, sentiments []types.SentimentProfile) map[string]float64 {
	scores := make(map[string]float64, len(aggregateDimensions))
	for _, d := range aggregateDimensions {
		scores[d] = 5
	}
	for _, r := range results {
		for _, g := range r.Gaps {
			if _, ok := scores[g.Dimension]; ok {
				scores[g.Dimension] = g.ActualEvidence
			}
		}
	}

	var meanSentiment float64
	if len(sentiments) > 0 {
		sum := 0.0
		for _, sp := range sentiments {
			sum += sp.OverallSentiment
		}
		meanSentiment = sum / float64(len(sentiments))
	}

	nudge := 0.0
	if meanSentiment > 0.2 {
		nudge = 0.5
	} else if meanSentiment < -0.2 {
		nudge = -0.5
	}

	for d, v := range scores {
		scores[d] = round1(math.Max(0, math.Min(10, v+nudge)))
	}
	return scores
}

func executiveSummary(total int, themes []types.ThemeCluster, gaps []types.RealityGap, skills types.SkillsMap, scores map[string]float64) string {
	var themeNames []string
	for i, t := range themes {
		if i == 3 {
			break
		}
		themeNames = append(themeNames, t.Name)
	}
	var gapDims []string
	for i, g := range gaps {
		if i == 2 {
			break
		}
		gapDims = append(gapDims, fmt.Sprintf("%s (%.1f point gap)", g.Dimension, math.Abs(g.Gap)))
	}
	var champions []string
	for i, c := range skills.Champions {
		if i == 3 {
			break
		}
		champions = append(champions, c.Name)
	}

	var sum float64
	for _, d := range aggregateDimensions {
		sum += scores[d]
	}
	mean := round1(sum / float64(len(aggregateDimensions)))

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis of %d interviews places the organization at %.1f/10 average AI maturity. ", total, mean)
	if len(themeNames) > 0 {
		fmt.Fprintf(&b, "Dominant themes: %s. ", strings.Join(themeNames, ", "))
	}
	if len(gapDims) > 0 {
		fmt.Fprintf(&b, "The widest perception-vs-reality gaps are in %s. ", strings.Join(gapDims, " and "))
	}
	if len(champions) > 0 {
		fmt.Fprintf(&b, "Internal AI champions identified: %s.", strings.Join(champions, ", "))
	} else {
		b.WriteString("No clear internal AI champions emerged.")
	}
	return b.String()
}

func (s *Synthesizer) recommendations(themes []types.ThemeCluster, gaps []types.RealityGap, skills types.SkillsMap) types.TieredRecommendations {
	var rec types.TieredRecommendations

	for i, g := range gaps {
		if i == 3 {
			break
		}
		if math.Abs(g.Gap) < 3 {
			continue
		}
		rec.Immediate = append(rec.Immediate, fmt.Sprintf(
			"Address %s gap: current reality is %.1f/10 vs perception of %.1f/10",
			g.Dimension, g.ActualEvidence, g.LeadershipPerception))
	}

	themeIDs := map[string]bool{}
	for _, t := range themes {
		themeIDs[t.ID] = true
	}
	if themeIDs["no_formal_ai_plan"] {
		rec.Immediate = append(rec.Immediate, "Develop a formal AI strategy document within 90 days")
	}
	if themeIDs["no_ethics_governance"] {
		rec.ShortTerm = append(rec.ShortTerm, "Establish an AI governance framework and usage policy")
	}
	if themeIDs["tool_fragmentation"] {
		rec.ShortTerm = append(rec.ShortTerm, "Consolidate the AI tool stack and standardize on approved tools")
	}
	if themeIDs["skills_gap"] {
		rec.ShortTerm = append(rec.ShortTerm, "Launch tiered AI training matched to current skill levels")
	}
	if themeIDs["process_automation_need"] {
		rec.LongTerm = append(rec.LongTerm, "Automate the top five manual processes identified in interviews")
	}

	if len(skills.Champions) > 0 {
		var names []string
		for i, c := range skills.Champions {
			if i == 3 {
				break
			}
			names = append(names, c.Name)
		}
		rec.Immediate = append(rec.Immediate, fmt.Sprintf(
			"Empower identified AI champions (%s) to lead adoption", strings.Join(names, ", ")))
	}

	rec.ShortTerm = append(rec.ShortTerm, "Define an AI ROI measurement framework")
	rec.LongTerm = append(rec.LongTerm,
		"Stand up an AI center of excellence",
		"Build psychological safety around AI experimentation")

	limit := s.cal.RecommendationCapPerTier
	rec.Immediate = capTier(rec.Immediate, limit)
	rec.ShortTerm = capTier(rec.ShortTerm, limit)
	rec.LongTerm = capTier(rec.LongTerm, limit)
	return rec
}

func capTier(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
