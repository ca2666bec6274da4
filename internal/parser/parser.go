// Package parser turns raw interview text into speaker-attributed dialogue
// turns and topical sections. Malformed input is never an error; the worst
// case is one catch-all introduction section holding every turn.
package parser

import (
	"regexp"
	"strings"

	"maturity-insights-go/internal/types"
)

var (
	timestampRe = regexp.MustCompile(`\[@(\d+:\d+(?::\d+)?)\]`)
	speakerRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// sectionTopics is ordered: the first topic reaching the keyword threshold
// in a turn wins, so section detection stays deterministic.
var sectionTopics = []struct {
	name     string
	keywords []string
}{
	{"introduction", []string{"background", "role", "responsibilities", "history"}},
	{"ai_usage", []string{"ai", "chatgpt", "claude", "tool", "use", "daily", "workflow"}},
	{"skills", []string{"learn", "training", "skill", "capable", "fluent", "expert"}},
	{"culture", []string{"culture", "change", "adoption", "resistance", "willing"}},
	{"strategy", []string{"strategy", "plan", "vision", "roadmap", "priority"}},
	{"challenges", []string{"challenge", "obstacle", "barrier", "problem", "issue"}},
	{"opportunities", []string{"opportunity", "potential", "improve", "automate"}},
	{"governance", []string{"ethics", "governance", "policy", "compliance", "security"}},
	{"wrap_up", []string{"summary", "final", "conclude", "wrap", "last"}},
}

// Parse converts one transcript into its structured form.
func Parse(t types.Transcript) types.ParsedTranscript {
	lines := strings.Split(t.RawContent, "\n")
	var turns []types.DialogueTurn
	var currentSpeaker, lastTimestamp, turnTimestamp string
	var currentContent []string

	closeTurn := func() {
		if currentSpeaker != "" && len(currentContent) > 0 {
			turns = append(turns, types.DialogueTurn{
				Speaker:       currentSpeaker,
				Content:       strings.TrimSpace(strings.Join(currentContent, " ")),
				Timestamp:     turnTimestamp,
				IsInterviewee: isInterviewee(currentSpeaker, t),
			})
		}
	}

	for _, line := range lines {
		tsMatch := timestampRe.FindStringSubmatch(line)
		if tsMatch != nil {
			lastTimestamp = tsMatch[1]
		}

		if spMatch := speakerRe.FindStringSubmatch(line); spMatch != nil {
			closeTurn()
			currentSpeaker = spMatch[1]
			// latched at turn open so the next turn's marker never
			// relabels this one
			turnTimestamp = lastTimestamp
			currentContent = nil
		} else if strings.TrimSpace(line) != "" && tsMatch == nil {
			currentContent = append(currentContent, strings.TrimSpace(line))
		}
	}
	closeTurn()

	return types.ParsedTranscript{
		TranscriptID:  t.ID,
		Interviewee:   t.Interviewee,
		DialogueTurns: turns,
		WordCount:     len(strings.Fields(t.RawContent)),
		Sections:      identifySections(turns),
		Metadata:      t.Metadata,
	}
}

// ParseAll parses the whole transcript set, preserving input order.
func ParseAll(transcripts []types.Transcript) []types.ParsedTranscript {
	out := make([]types.ParsedTranscript, 0, len(transcripts))
	for _, t := range transcripts {
		out = append(out, Parse(t))
	}
	return out
}

func isInterviewee(speaker string, t types.Transcript) bool {
	parts := strings.Fields(t.Interviewee.Name)
	if len(parts) > 1 && strings.Contains(speaker, parts[len(parts)-1]) {
		return true
	}
	return t.Organization != "" && strings.Contains(speaker, t.Organization)
}

// identifySections partitions the turn sequence by topic keyword density:
// a section closes when a later turn scores >=2 keyword hits for a
// different topic and the open section already holds at least one turn.
func identifySections(turns []types.DialogueTurn) []types.TranscriptSection {
	var sections []types.TranscriptSection
	current := "introduction"
	start := 0

	for i, turn := range turns {
		content := strings.ToLower(turn.Content)
		for _, topic := range sectionTopics {
			if topic.name == current {
				continue
			}
			matches := 0
			for _, kw := range topic.keywords {
				if strings.Contains(content, kw) {
					matches++
				}
			}
			if matches >= 2 {
				if i > start {
					sections = append(sections, types.TranscriptSection{
						Name:       current,
						StartIndex: start,
						EndIndex:   i - 1,
						Turns:      turns[start:i],
					})
					current = topic.name
					start = i
				} else {
					current = topic.name
				}
				break
			}
		}
	}

	if start < len(turns) {
		sections = append(sections, types.TranscriptSection{
			Name:       current,
			StartIndex: start,
			EndIndex:   len(turns) - 1,
			Turns:      turns[start:],
		})
	}
	return sections
}
