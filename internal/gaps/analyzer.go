// Package gaps quantifies the divergence between aspirational language
// ("we have a strategy") and evidentiary language ("no plan exists") per
// scoring dimension.
package gaps

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

// Indicator pairs a dimension with its aspirational and evidentiary
// phrase lists.
type Indicator struct {
	Dimension    string
	Aspirational []string
	Actual       []string
}

// Indicators is the fixed per-dimension phrase catalog, in stable order.
func Indicators() []Indicator {
	return []Indicator{
		{"skills_talent",
			[]string{"we have talent", "our people can", "team is capable", "skilled workforce"},
			[]string{"only", "percent", "few people", "skill gap", "need training", "not fluent"}},
		{"ai_use_cases",
			[]string{"we use ai", "ai-powered", "leverage ai", "ai in everything"},
			[]string{"don't really", "not actually", "haven't implemented", "experimenting", "pilot"}},
		{"strategy_alignment",
			[]string{"strategy", "roadmap", "plan", "vision"},
			[]string{"no plan", "don't have", "haven't formalized", "make it up"}},
		{"process_optimization",
			[]string{"efficient", "streamlined", "automated", "optimized"},
			[]string{"manual", "repetitive", "old school", "same way", "take forever"}},
		{"ai_governance",
			[]string{"governance", "ethics", "policy", "compliance"},
			[]string{"no one", "haven't defined", "don't have", "need to"}},
	}
}

var percentRe = regexp.MustCompile(`(?i)(\d+)\s*(?:percent|%)`)

type Analyzer struct {
	matcher    textmatch.Matcher
	indicators []Indicator
	cal        config.Calibration
}

func NewAnalyzer(m textmatch.Matcher, indicators []Indicator, cal config.Calibration) *Analyzer {
	return &Analyzer{matcher: m, indicators: indicators, cal: cal}
}

func (a *Analyzer) AnalyzeAll(transcripts []types.Transcript) []types.GapAnalysisResult {
	out := make([]types.GapAnalysisResult, 0, len(transcripts))
	for _, t := range transcripts {
		out = append(out, a.Analyze(t))
	}
	return out
}

func (a *Analyzer) Analyze(t types.Transcript) types.GapAnalysisResult {
	var found []types.RealityGap

	// Percentage mentions ground the evidence score for every dimension
	// of this transcript.
	actualScore := evidenceScore(t.RawContent)

	for _, ind := range a.indicators {
		var aspirational, actual []string
		for _, phrase := range ind.Aspirational {
			aspirational = append(aspirational, a.matcher.Sentences(t.RawContent, phrase)...)
		}
		for _, phrase := range ind.Actual {
			actual = append(actual, a.matcher.Sentences(t.RawContent, phrase)...)
		}

		// No mention of the dimension at all means no gap to report.
		if len(aspirational) == 0 && len(actual) == 0 {
			continue
		}

		// Leaders skew optimistic; drop the prior when the speaker's own
		// evidentiary statements outnumber the aspirational ones.
		perception := 7.0
		if len(aspirational) < len(actual) {
			perception = 5.0
		}

		gap := perception - actualScore
		if math.Abs(gap) < a.cal.GapMinMagnitude && len(actual) == 0 {
			continue
		}

		found = append(found, types.RealityGap{
			Dimension:            ind.Dimension,
			LeadershipPerception: perception,
			ActualEvidence:       actualScore,
			Gap:                  gap,
			Evidence: types.GapEvidence{
				Supporting:    head(aspirational, 2),
				Contradicting: head(actual, 2),
			},
			Confidence: math.Min(float64(len(aspirational)+len(actual))/a.cal.ConfidenceDivisor, 1),
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return math.Abs(found[i].Gap) > math.Abs(found[j].Gap)
	})

	res := types.GapAnalysisResult{
		TranscriptID: t.ID,
		Interviewee:  t.Interviewee.Name,
		Gaps:         found,
	}
	sum := 0.0
	for i, g := range found {
		if i < 3 {
			res.LargestGaps = append(res.LargestGaps, g.Dimension)
		}
		sum += g.Gap
	}
	if len(found) > 0 {
		res.MeanSignedGap = sum / float64(len(found))
	}
	return res
}

// evidenceScore averages numeric percentage mentions and rescales to 0-10;
// with no percentages in the transcript it stays at the neutral midpoint.
func evidenceScore(content string) float64 {
	matches := percentRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return 5
	}
	sum := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			n = 50
		}
		sum += n
	}
	avg := float64(sum) / float64(len(matches))
	return math.Max(0, math.Min(10, math.Round(avg/10)))
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
