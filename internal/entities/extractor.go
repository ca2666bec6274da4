// Package entities extracts named entities (tools, people, processes,
// challenges, opportunities) per transcript. Entities are never merged
// here; cross-transcript merging belongs to the skills mapper and the
// synthesizer.
package entities

import (
	"regexp"
	"strings"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

// ToolVocabulary is the fixed catalog of known AI/software tool names.
var ToolVocabulary = []string{
	"ChatGPT", "Claude", "Gemini", "Perplexity", "Copilot", "MidJourney",
	"Beautiful AI", "Gamma", "Builder.io", "Figma", "Motion", "Atlas",
	"N8N", "Fixer AI", "Productive", "HubSpot", "Slack", "Google Slides",
	"PowerPoint", "Notion", "Fathom", "Otter", "DALL-E", "Runway",
	"OpenAI", "Anthropic", "Google", "Microsoft", "Stripe", "Pencil",
}

// ProcessVocabulary is the fixed catalog of business-process terms.
var ProcessVocabulary = []string{
	"onboarding", "workflow", "pipeline", "process", "automation",
	"integration", "deployment", "training", "review", "approval",
	"reporting", "analysis", "creative production", "media planning",
	"project management", "client management", "quality assurance",
}

var (
	// Capitalized name followed by an action verb.
	personRe      = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b\s+(?:is|does|uses|said|mentioned|thinks)`)
	challengeRe   = regexp.MustCompile(`(?is)(?:challenge|problem|issue|struggle|difficult|hard|can't|cannot|don't|haven't)[\s\S]{10,200}?[.!?]`)
	opportunityRe = regexp.MustCompile(`(?is)(?:opportunity|potential|could|should|would|improve|better|faster|automate)[\s\S]{10,200}?[.!?]`)
)

var positiveWords = []string{"great", "good", "excellent", "love", "helpful", "amazing", "fantastic", "better", "improve", "success"}
var negativeWords = []string{"bad", "poor", "difficult", "challenge", "problem", "issue", "struggle", "fail", "hard", "can't"}

type Extractor struct {
	matcher textmatch.Matcher
	cal     config.Calibration
}

func NewExtractor(m textmatch.Matcher, cal config.Calibration) *Extractor {
	return &Extractor{matcher: m, cal: cal}
}

// ExtractAll runs extraction over the full transcript set.
func (e *Extractor) ExtractAll(transcripts []types.Transcript) []types.EntityExtraction {
	out := make([]types.EntityExtraction, 0, len(transcripts))
	for _, t := range transcripts {
		out = append(out, e.Extract(t))
	}
	return out
}

func (e *Extractor) Extract(t types.Transcript) types.EntityExtraction {
	content := t.RawContent
	var ents []types.ExtractedEntity

	// Tools: exact case-insensitive vocabulary match, any frequency.
	for _, tool := range ToolVocabulary {
		freq := e.matcher.CountWord(content, tool)
		if freq > 0 {
			quotes := e.contextQuotes(content, tool)
			ents = append(ents, types.ExtractedEntity{
				Type:         types.EntityTool,
				Value:        tool,
				Context:      "AI/Technology tool",
				Frequency:    freq,
				SourceQuotes: quotes,
				Sentiment:    Sentiment(strings.Join(quotes, " ")),
			})
		}
	}

	// People: name-plus-verb pattern, counted per unique name, tool names
	// excluded, threshold applied.
	counts := map[string]int{}
	var order []string
	for _, m := range personRe.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if isToolName(name) {
			continue
		}
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, name := range order {
		if counts[name] >= e.cal.EntityMinMentions {
			ents = append(ents, types.ExtractedEntity{
				Type:         types.EntityPerson,
				Value:        name,
				Context:      "Team member or stakeholder",
				Frequency:    counts[name],
				SourceQuotes: e.contextQuotes(content, name),
				Sentiment:    types.SentimentNeutral,
			})
		}
	}

	// Processes: vocabulary terms mentioned at least twice.
	for _, proc := range ProcessVocabulary {
		freq := e.matcher.CountWord(content, proc)
		if freq >= e.cal.EntityMinMentions {
			quotes := e.contextQuotes(content, proc)
			ents = append(ents, types.ExtractedEntity{
				Type:         types.EntityProcess,
				Value:        proc,
				Context:      "Business process",
				Frequency:    freq,
				SourceQuotes: quotes,
				Sentiment:    Sentiment(strings.Join(quotes, " ")),
			})
		}
	}

	// Challenges and opportunities: every trigger-word sentence is its own
	// entity, displayed truncated.
	for _, m := range challengeRe.FindAllString(content, -1) {
		ents = append(ents, types.ExtractedEntity{
			Type:         types.EntityChallenge,
			Value:        truncate(m, 50),
			Context:      "Challenge or barrier",
			Frequency:    1,
			SourceQuotes: []string{m},
			Sentiment:    types.SentimentNegative,
		})
	}
	for _, m := range opportunityRe.FindAllString(content, -1) {
		ents = append(ents, types.ExtractedEntity{
			Type:         types.EntityOpportunity,
			Value:        truncate(m, 50),
			Context:      "Opportunity or improvement",
			Frequency:    1,
			SourceQuotes: []string{m},
			Sentiment:    types.SentimentPositive,
		})
	}

	res := types.EntityExtraction{
		TranscriptID: t.ID,
		Interviewee:  t.Interviewee.Name,
		Entities:     ents,
	}
	for _, en := range ents {
		switch en.Type {
		case types.EntityTool:
			res.ToolsFound = append(res.ToolsFound, en.Value)
		case types.EntityPerson:
			res.PeopleFound = append(res.PeopleFound, en.Value)
		case types.EntityChallenge:
			res.ChallengesFound++
		case types.EntityOpportunity:
			res.OpportunitiesFound++
		}
	}
	return res
}

// contextQuotes returns up to MaxContextQuotes sentences mentioning term,
// skipping run-on sentences over 500 chars.
func (e *Extractor) contextQuotes(content, term string) []string {
	var quotes []string
	for _, s := range e.matcher.Sentences(content, term) {
		if len(s) < 500 {
			quotes = append(quotes, s)
		}
		if len(quotes) >= e.cal.MaxContextQuotes {
			break
		}
	}
	return quotes
}

// Sentiment labels text by lexicon-hit margin: one side must beat the
// other by more than one hit to leave neutral.
func Sentiment(text string) string {
	lower := strings.ToLower(text)
	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	switch {
	case pos > neg+1:
		return types.SentimentPositive
	case neg > pos+1:
		return types.SentimentNegative
	}
	return types.SentimentNeutral
}

func isToolName(name string) bool {
	for _, t := range ToolVocabulary {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s + "..."
	}
	return s[:n] + "..."
}
