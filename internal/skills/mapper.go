// Package skills builds per-person AI-skill profiles by merging mentions
// across the whole transcript set. Merges are deterministic: tool and
// mention sets are unioned and a skill level is never downgraded.
package skills

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/entities"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

// PersonPattern identifies one known person by a name/alias expression.
type PersonPattern struct {
	Expr  string // regex alternation over aliases, e.g. `joey|wilson|jw`
	Name  string
	Title string
}

// DefaultPatterns is the built-in catalog of known people looked for in
// transcripts when the caller supplies no catalog of its own.
func DefaultPatterns() []PersonPattern {
	return []PersonPattern{
		{Expr: `gaston|g\s|legorburu`, Name: "Gaston Legorburu", Title: "CEO"},
		{Expr: `matt\s*k|kujawa`, Name: "Matt Kujawa", Title: "Partner"},
		{Expr: `casey`, Name: "Casey Woods", Title: "Creative Director"},
		{Expr: `noel|artiles`, Name: "Noel Artiles", Title: "CCO"},
		{Expr: `joey|wilson|jw`, Name: "Joey Wilson", Title: "Partner"},
		{Expr: `angie`, Name: "Angie", Title: "Team Member"},
		{Expr: `juan|wally`, Name: "Juan (Wally)", Title: "Designer"},
	}
}

type compiledPattern struct {
	PersonPattern
	mention *regexp.Regexp
	context *regexp.Regexp
}

var expertWords = []string{"expert", "fluent", "best", "top"}
var advancedWords = []string{"advanced", "great", "good"}
var beginnerWords = []string{"learning", "starting", "beginning"}
var championWords = []string{"best", "lead", "top", "expert"}

var selfExpertIndicators = []string{"i use", "daily", "workflow", "integrated", "automate"}
var selfBeginnerIndicators = []string{"don't use", "haven't tried", "learning", "new to"}

type Mapper struct {
	matcher  textmatch.Matcher
	patterns []compiledPattern
	cal      config.Calibration
}

func NewMapper(m textmatch.Matcher, patterns []PersonPattern, cal config.Calibration) *Mapper {
	mp := &Mapper{matcher: m, cal: cal}
	for _, p := range patterns {
		mp.patterns = append(mp.patterns, compiledPattern{
			PersonPattern: p,
			mention:       regexp.MustCompile(`(?i)` + p.Expr),
			context:       regexp.MustCompile(`(?i)[^.!?]*(?:` + p.Expr + `)[^.!?]*[.!?]`),
		})
	}
	return mp
}

// Map runs extraction over every transcript and folds the candidate
// profiles by lower-cased name.
func (m *Mapper) Map(transcripts []types.Transcript) types.SkillsMap {
	merged := map[string]*types.PersonSkillProfile{}
	var order []string

	for _, t := range transcripts {
		for _, p := range m.extractProfiles(t) {
			key := strings.ToLower(p.Name)
			existing, ok := merged[key]
			if !ok {
				cp := p
				merged[key] = &cp
				order = append(order, key)
				continue
			}
			existing.ToolsUsed = unionStrings(existing.ToolsUsed, p.ToolsUsed)
			existing.MentionedBy = unionStrings(existing.MentionedBy, p.MentionedBy)
			existing.Evidence = append(existing.Evidence, p.Evidence...)
			if types.SkillRank(p.AISkillLevel) > types.SkillRank(existing.AISkillLevel) {
				existing.AISkillLevel = p.AISkillLevel
			}
			existing.IsChampion = existing.IsChampion || p.IsChampion
		}
	}

	profiles := make([]types.PersonSkillProfile, 0, len(order))
	for _, key := range order {
		profiles = append(profiles, *merged[key])
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return types.SkillRank(profiles[i].AISkillLevel) > types.SkillRank(profiles[j].AISkillLevel)
	})

	var champions []types.PersonSkillProfile
	for _, p := range profiles {
		if p.IsChampion {
			champions = append(champions, p)
		}
	}

	return types.SkillsMap{
		Profiles:          profiles,
		Champions:         champions,
		SkillDistribution: distribution(profiles),
		TrainingCohorts:   cohorts(profiles),
	}
}

func (m *Mapper) extractProfiles(t types.Transcript) []types.PersonSkillProfile {
	var profiles []types.PersonSkillProfile
	content := t.RawContent
	lower := strings.ToLower(content)

	var toolsFound []string
	for _, tool := range entities.ToolVocabulary {
		if strings.Contains(lower, strings.ToLower(tool)) {
			toolsFound = append(toolsFound, tool)
		}
	}

	for _, p := range m.patterns {
		mentions := p.mention.FindAllString(content, -1)
		if len(mentions) < m.cal.EntityMinMentions {
			continue
		}
		contexts := p.context.FindAllString(content, -1)
		ctx := strings.ToLower(strings.Join(contexts, " "))

		level := types.SkillIntermediate
		switch {
		case containsAny(ctx, expertWords):
			level = types.SkillExpert
		case containsAny(ctx, advancedWords):
			level = types.SkillAdvanced
		case containsAny(ctx, beginnerWords):
			level = types.SkillBeginner
		}

		freq := types.FreqOccasionally
		if strings.Contains(ctx, "daily") || strings.Contains(ctx, "every day") {
			freq = types.FreqDaily
		} else if strings.Contains(ctx, "weekly") || strings.Contains(ctx, "regular") {
			freq = types.FreqWeekly
		}

		champion := containsAny(ctx, championWords) || len(mentions) >= m.cal.ChampionMentionCount

		growth := "medium"
		if level == types.SkillBeginner || level == types.SkillIntermediate {
			growth = "high"
		}

		profiles = append(profiles, types.PersonSkillProfile{
			Name:            p.Name,
			Title:           p.Title,
			AISkillLevel:    level,
			ToolsUsed:       toolsFound,
			Frequency:       freq,
			MentionedBy:     []string{t.Interviewee.Name},
			Evidence:        head(contexts, 3),
			IsChampion:      champion,
			GrowthPotential: growth,
		})
	}

	// The interviewee always profiles themselves.
	profiles = append(profiles, types.PersonSkillProfile{
		Name:            t.Interviewee.Name,
		Title:           t.Interviewee.Title,
		AISkillLevel:    selfSkillLevel(lower),
		ToolsUsed:       toolsFound,
		Frequency:       selfFrequency(lower),
		MentionedBy:     []string{"self"},
		Evidence:        []string{fmt.Sprintf("Interviewee in %s", t.ID)},
		IsChampion:      strings.Contains(lower, "i use ai") || strings.Contains(lower, "daily"),
		GrowthPotential: "medium",
	})

	return profiles
}

// selfSkillLevel infers the interviewee's own level from usage-intensity
// indicators: >=3 distinct expert indicators present means expert.
func selfSkillLevel(lower string) string {
	expert := presenceCount(lower, selfExpertIndicators)
	beginner := presenceCount(lower, selfBeginnerIndicators)
	switch {
	case expert >= 3:
		return types.SkillExpert
	case expert >= 2:
		return types.SkillAdvanced
	case beginner >= 2:
		return types.SkillBeginner
	}
	return types.SkillIntermediate
}

func selfFrequency(lower string) string {
	switch {
	case strings.Contains(lower, "every day") || strings.Contains(lower, "daily"):
		return types.FreqDaily
	case strings.Contains(lower, "weekly") || strings.Contains(lower, "regularly"):
		return types.FreqWeekly
	case strings.Contains(lower, "occasionally") || strings.Contains(lower, "sometimes"):
		return types.FreqOccasionally
	case strings.Contains(lower, "rarely") || strings.Contains(lower, "not often"):
		return types.FreqRarely
	}
	return types.FreqOccasionally
}

func distribution(profiles []types.PersonSkillProfile) map[string]int {
	dist := map[string]int{
		types.SkillExpert:       0,
		types.SkillAdvanced:     0,
		types.SkillIntermediate: 0,
		types.SkillBeginner:     0,
		types.SkillNone:         0,
	}
	for _, p := range profiles {
		dist[p.AISkillLevel]++
	}
	return dist
}

func cohorts(profiles []types.PersonSkillProfile) []types.TrainingCohort {
	pick := func(levels ...string) []string {
		var names []string
		for _, p := range profiles {
			for _, l := range levels {
				if p.AISkillLevel == l {
					names = append(names, p.Name)
					break
				}
			}
		}
		return names
	}
	return []types.TrainingCohort{
		{
			Name:        "AI Champions Program",
			Description: "Advanced training for identified AI leaders",
			Members:     pick(types.SkillExpert, types.SkillAdvanced),
			Focus:       []string{"AI strategy", "Change leadership", "Tool evaluation"},
		},
		{
			Name:        "AI Practitioners",
			Description: "Skill building for intermediate users",
			Members:     pick(types.SkillIntermediate),
			Focus:       []string{"Prompt engineering", "Workflow integration", "Best practices"},
		},
		{
			Name:        "AI Foundations",
			Description: "Introduction for beginners",
			Members:     pick(types.SkillBeginner, types.SkillNone),
			Focus:       []string{"AI basics", "Tool introduction", "Use cases"},
		},
	}
}

func presenceCount(text string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			n++
		}
	}
	return n
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
