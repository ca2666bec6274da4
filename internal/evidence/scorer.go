// Package evidence scores organizational maturity per dimension from
// literal rubric-phrase matches in transcript text. No model calls are
// involved; the same transcripts always produce the same scores.
package evidence

import (
	"math"
	"sort"
	"strings"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

// rubricLevel lists phrases that, when spoken, indicate the organization
// operates at the given maturity level for one dimension.
type rubricLevel struct {
	Level   float64
	Phrases []string
}

type rubricDimension struct {
	Dimension string
	Levels    []rubricLevel
}

// Rubric returns the dimension rubrics in a fixed evaluation order.
func Rubric() []rubricDimension {
	return []rubricDimension{
		{"skills_talent", []rubricLevel{
			{0, []string{"no one uses", "don't know", "not aware", "no training"}},
			{3, []string{"some people", "few users", "starting to", "learning"}},
			{5, []string{"half the team", "50%", "many people", "regular training"}},
			{7, []string{"most people", "majority", "70%", "embedded"}},
			{9, []string{"everyone", "all employees", "company-wide", "fluent"}},
		}},
		{"ai_use_cases", []rubricLevel{
			{0, []string{"no ai", "not using", "haven't implemented"}},
			{3, []string{"experimenting", "pilot", "trying", "one or two"}},
			{5, []string{"several use cases", "multiple projects", "expanding"}},
			{7, []string{"production", "enterprise-wide", "core workflow"}},
			{9, []string{"ai-first", "transformed", "industry leader"}},
		}},
		{"strategy_alignment", []rubricLevel{
			{0, []string{"no strategy", "no plan", "reactive"}},
			{3, []string{"informal", "ad hoc", "starting to plan"}},
			{5, []string{"documented", "some alignment", "roadmap exists"}},
			{7, []string{"integrated", "aligned", "board-level"}},
			{9, []string{"ai-native", "strategic pillar", "fully integrated"}},
		}},
		{"process_optimization", []rubricLevel{
			{0, []string{"manual", "no automation", "inefficient"}},
			{3, []string{"some automation", "basic", "starting"}},
			{5, []string{"automated workflows", "improving", "documented"}},
			{7, []string{"intelligent automation", "optimized", "measured"}},
			{9, []string{"self-optimizing", "ai-driven", "zero-touch"}},
		}},
		{"ai_governance", []rubricLevel{
			{0, []string{"no governance", "no policy", "not addressed"}},
			{3, []string{"informal", "ad hoc", "starting"}},
			{5, []string{"basic framework", "some policies", "designated"}},
			{7, []string{"comprehensive", "enforced", "ethics board"}},
			{9, []string{"industry leader", "proactive", "certified"}},
		}},
		{"leadership_vision", []rubricLevel{
			{0, []string{"no vision", "not interested", "skeptical"}},
			{3, []string{"aware", "considering", "interested"}},
			{5, []string{"committed", "engaged", "supportive"}},
			{7, []string{"championing", "leading", "driving"}},
			{9, []string{"visionary", "transformational", "industry thought leader"}},
		}},
		{"culture_change", []rubricLevel{
			{0, []string{"resistant", "fear", "opposition"}},
			{3, []string{"hesitant", "cautious", "some openness"}},
			{5, []string{"willing", "adapting", "learning"}},
			{7, []string{"embracing", "innovative", "proactive"}},
			{9, []string{"ai-native", "pioneering", "change leaders"}},
		}},
	}
}

type Scorer struct {
	matcher textmatch.Matcher
	cal     config.Calibration
}

func NewScorer(m textmatch.Matcher, cal config.Calibration) *Scorer {
	return &Scorer{matcher: m, cal: cal}
}

// Score evaluates every rubric dimension over the combined transcript
// text. With no matches at all a dimension defaults to a midpoint score
// of 5 at zero confidence.
func (s *Scorer) Score(transcripts []types.Transcript) types.MaturityEvidence {
	combined := combineText(transcripts)

	scores := make(map[string]types.EvidenceScore, 7)
	var dims []string
	for _, rd := range Rubric() {
		scores[rd.Dimension] = s.scoreDimension(rd, combined)
		dims = append(dims, rd.Dimension)
	}

	return types.MaturityEvidence{
		DimensionScores:   scores,
		OverallMaturity:   overallMaturity(scores, dims),
		ConfidenceLevel:   meanConfidence(scores, dims),
		MaturityProfile:   profile(scores, dims),
		GapPrioritization: prioritizeGaps(scores, dims),
	}
}

func (s *Scorer) scoreDimension(rd rubricDimension, text string) types.EvidenceScore {
	var levelValues []float64
	var evidence []string
	for _, lv := range rd.Levels {
		for _, phrase := range lv.Phrases {
			count := s.matcher.CountPhrase(text, phrase)
			if count == 0 {
				continue
			}
			for i := 0; i < count; i++ {
				levelValues = append(levelValues, lv.Level)
			}
			// up to two verbatim sentences per phrase, capped overall
			for _, sentence := range head(s.matcher.Sentences(text, phrase), 2) {
				if len(evidence) < s.cal.MaxContextQuotes {
					evidence = append(evidence, sentence)
				}
			}
		}
	}

	score := 5.0
	if len(levelValues) > 0 {
		sum := 0.0
		for _, v := range levelValues {
			sum += v
		}
		score = round1(sum / float64(len(levelValues)))
	}

	return types.EvidenceScore{
		Dimension:    rd.Dimension,
		Score:        score,
		Evidence:     evidence,
		Confidence:   math.Min(float64(len(levelValues))/10, 1),
		LevelMatches: len(levelValues),
	}
}

// overallMaturity is the confidence-weighted mean of dimension scores.
// When nothing matched anywhere it degrades to the plain mean.
func overallMaturity(scores map[string]types.EvidenceScore, dims []string) float64 {
	var weighted, totalConf, plain float64
	for _, d := range dims {
		es := scores[d]
		weighted += es.Score * es.Confidence
		totalConf += es.Confidence
		plain += es.Score
	}
	if totalConf == 0 {
		return round1(plain / float64(len(dims)))
	}
	return round1(weighted / totalConf)
}

func meanConfidence(scores map[string]types.EvidenceScore, dims []string) float64 {
	sum := 0.0
	for _, d := range dims {
		sum += scores[d].Confidence
	}
	return round1(sum / float64(len(dims)))
}

func profile(scores map[string]types.EvidenceScore, dims []string) types.MaturityProfile {
	var p types.MaturityProfile
	for _, d := range dims {
		switch sc := scores[d].Score; {
		case sc >= 7:
			p.Strengths = append(p.Strengths, d)
		case sc <= 3:
			p.Weaknesses = append(p.Weaknesses, d)
		default:
			p.Opportunities = append(p.Opportunities, d)
		}
	}
	return p
}

func prioritizeGaps(scores map[string]types.EvidenceScore, dims []string) []types.GapPriority {
	var gaps []types.GapPriority
	for _, d := range dims {
		sc := scores[d].Score
		if sc >= 5 {
			continue
		}
		priority := "medium"
		switch {
		case sc < 3:
			priority = "critical"
		case sc < 4:
			priority = "high"
		}
		effort := "medium"
		if sc < 3 {
			effort = "high"
		}
		gaps = append(gaps, types.GapPriority{
			Dimension:    d,
			CurrentScore: sc,
			TargetScore:  math.Min(sc+3, 9),
			Priority:     priority,
			Effort:       effort,
		})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].CurrentScore < gaps[j].CurrentScore
	})
	return gaps
}

func combineText(transcripts []types.Transcript) string {
	parts := make([]string, 0, len(transcripts))
	for _, t := range transcripts {
		parts = append(parts, t.RawContent)
	}
	return strings.Join(parts, "\n")
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
