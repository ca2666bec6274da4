// Package themes detects recurring conceptual themes via keyword-cluster
// matching and maps each theme onto scoring dimensions.
package themes

import (
	"fmt"
	"sort"
	"strings"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

// Definition declares one mineable theme: the keywords that evidence it
// and the scoring dimension it reflects.
type Definition struct {
	ID        string
	Keywords  []string
	Dimension string
}

// Library is the fixed theme catalog, in stable emission order.
func Library() []Definition {
	return []Definition{
		{"no_formal_ai_plan", []string{"no plan", "no strategy", "no roadmap", "don't have a plan", "haven't formalized", "no formal"}, "strategy_alignment"},
		{"no_roi_measurement", []string{"not measuring", "don't track", "no roi", "haven't quantified", "hard to measure"}, "financial_performance"},
		{"no_ethics_governance", []string{"no ethics", "no governance", "no one accountable", "haven't defined", "no policy"}, "ai_governance"},
		{"tool_fragmentation", []string{"too many tools", "fragmented", "scattered", "different tools", "not standardized"}, "integration_capability"},
		{"skills_gap", []string{"skill gap", "need training", "don't know how", "learning curve", "not fluent"}, "skills_talent"},
		{"resistance_to_change", []string{"resist", "won't adopt", "old school", "traditional", "comfortable with"}, "culture_change"},
		{"leadership_alignment", []string{"leadership", "partners aligned", "top down", "c-suite", "vision"}, "leadership_vision"},
		{"process_automation_need", []string{"automate", "manual", "repetitive", "workflow", "efficiency"}, "process_optimization"},
		{"reputation_exceeds_capability", []string{"reputation", "perception", "talk about ai", "not really doing", "cobbler"}, "ai_use_cases"},
		{"creative_team_leads", []string{"creative", "design", "art", "video", "visual", "ahead"}, "skills_talent"},
		{"psychological_safety", []string{"safe", "afraid", "fear", "comfortable", "permission", "judgment"}, "culture_change"},
		{"agentic_commerce", []string{"agentic", "agent", "autonomous", "shopping", "commerce", "future"}, "ai_use_cases"},
	}
}

var themePositive = []string{"good", "great", "helpful", "improve", "better", "opportunity"}
var themeNegative = []string{"problem", "issue", "challenge", "difficult", "gap", "lack"}

type Miner struct {
	matcher textmatch.Matcher
	library []Definition
	cal     config.Calibration
}

func NewMiner(m textmatch.Matcher, library []Definition, cal config.Calibration) *Miner {
	return &Miner{matcher: m, library: library, cal: cal}
}

func (mn *Miner) MineAll(transcripts []types.Transcript) []types.ThemeMining {
	out := make([]types.ThemeMining, 0, len(transcripts))
	for _, t := range transcripts {
		out = append(out, mn.Mine(t))
	}
	return out
}

func (mn *Miner) Mine(t types.Transcript) types.ThemeMining {
	var mined []types.ThemeCluster

	for _, def := range mn.library {
		matchCount := 0
		var quotes []string
		for _, kw := range def.Keywords {
			matches := mn.matcher.Sentences(t.RawContent, kw)
			matchCount += len(matches)
			if len(matches) > 2 {
				matches = matches[:2]
			}
			quotes = append(quotes, matches...)
		}

		// Hard cutoff, not a ranking weight.
		if matchCount < mn.cal.ThemeMinFrequency {
			continue
		}

		rep := quotes
		if len(rep) > 3 {
			rep = rep[:3]
		}
		mined = append(mined, types.ThemeCluster{
			ID:                   def.ID,
			Name:                 displayName(def.ID),
			Description:          fmt.Sprintf("Theme identified from %d keyword matches", matchCount),
			Keywords:             def.Keywords,
			Frequency:            matchCount,
			Sentiment:            themeSentiment(strings.Join(quotes, " ")),
			SourceInterviews:     []string{t.Interviewee.Name},
			RepresentativeQuotes: rep,
			Dimensions:           []string{def.Dimension},
		})
	}

	sort.SliceStable(mined, func(i, j int) bool { return mined[i].Frequency > mined[j].Frequency })

	res := types.ThemeMining{
		TranscriptID: t.ID,
		Interviewee:  t.Interviewee.Name,
		Themes:       mined,
	}
	seen := map[string]bool{}
	for i, th := range mined {
		if i < 5 {
			res.TopThemes = append(res.TopThemes, th.Name)
		}
		for _, d := range th.Dimensions {
			if !seen[d] {
				seen[d] = true
				res.DimensionsCovered = append(res.DimensionsCovered, d)
			}
		}
	}
	return res
}

func themeSentiment(text string) float64 {
	lower := strings.ToLower(text)
	pos, neg := 0, 0
	for _, w := range themePositive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range themeNegative {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

func displayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
