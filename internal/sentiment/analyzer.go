// Package sentiment scores emotional tone and certainty per transcript and
// per topic, and surfaces emotionally salient moments.
package sentiment

import (
	"fmt"
	"regexp"
	"strings"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

// Lexicon holds the four word lists the analyzer counts against.
// Exported so tests can substitute fixture vocabularies.
type Lexicon struct {
	Positive    []string
	Negative    []string
	Uncertainty []string
	Confidence  []string
}

func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"excited", "great", "amazing", "love", "fantastic", "excellent",
			"wonderful", "impressive", "thrilled", "optimistic", "confident",
			"success", "opportunity", "potential",
		},
		Negative: []string{
			"frustrated", "concerned", "worried", "difficult", "challenging",
			"problem", "issue", "struggle", "fear", "anxiety", "behind",
			"lagging", "gap", "fail",
		},
		Uncertainty: []string{
			"maybe", "perhaps", "not sure", "don't know", "uncertain",
			"unclear", "might", "could", "possibly",
		},
		Confidence: []string{
			"definitely", "certainly", "absolutely", "clearly", "obviously",
			"sure", "know", "believe",
		},
	}
}

// topics whose per-sentence sentiment is reported separately.
var topics = []string{"ai", "tools", "team", "strategy", "culture", "process", "training", "clients"}

var (
	exclamationRe = regexp.MustCompile(`[^.!?]*![^.!?]*`)
	frustrationRe = regexp.MustCompile(`(?i)(?:frustrat|annoy|irritat|upset|angry|bothers? me)[^.!?]+[.!?]`)
	excitementRe  = regexp.MustCompile(`(?i)(?:excit|thrill|can't wait|amazing|love|incredible)[^.!?]+[.!?]`)
)

type Analyzer struct {
	matcher textmatch.Matcher
	lexicon Lexicon
	cal     config.Calibration
}

func NewAnalyzer(m textmatch.Matcher, lex Lexicon, cal config.Calibration) *Analyzer {
	return &Analyzer{matcher: m, lexicon: lex, cal: cal}
}

func (a *Analyzer) AnalyzeAll(transcripts []types.Transcript) []types.SentimentProfile {
	out := make([]types.SentimentProfile, 0, len(transcripts))
	for _, t := range transcripts {
		out = append(out, a.Analyze(t))
	}
	return out
}

func (a *Analyzer) Analyze(t types.Transcript) types.SentimentProfile {
	content := strings.ToLower(t.RawContent)
	sentences := a.matcher.Split(content)

	var pos, neg, uncertain, confident int
	for _, w := range a.lexicon.Positive {
		pos += a.matcher.CountWord(content, w)
	}
	for _, w := range a.lexicon.Negative {
		neg += a.matcher.CountWord(content, w)
	}
	for _, p := range a.lexicon.Uncertainty {
		uncertain += a.matcher.CountPhrase(content, p)
	}
	for _, w := range a.lexicon.Confidence {
		confident += a.matcher.CountWord(content, w)
	}

	overall := 0.0
	if pos+neg > 0 {
		overall = float64(pos-neg) / float64(pos+neg)
	}
	confidence := 0.5
	if confident+uncertain > 0 {
		confidence = float64(confident) / float64(confident+uncertain)
	}

	moments := a.emotionalMoments(t.RawContent)

	return types.SentimentProfile{
		TranscriptID:     t.ID,
		Interviewee:      t.Interviewee.Name,
		OverallSentiment: overall,
		ConfidenceLevel:  confidence,
		PositiveScore:    pos,
		NegativeScore:    neg,
		EmotionalMoments: moments,
		TopicSentiments:  a.topicSentiments(sentences),
		KeyInsights:      a.insights(overall, confidence, moments),
	}
}

// topicSentiments computes the positive/negative ratio over only the
// sentences mentioning each topic; topics with no sentences are omitted.
func (a *Analyzer) topicSentiments(sentences []string) map[string]float64 {
	out := map[string]float64{}
	for _, topic := range topics {
		var pos, neg, seen int
		for _, s := range sentences {
			if !strings.Contains(s, topic) {
				continue
			}
			seen++
			for _, w := range a.lexicon.Positive {
				if strings.Contains(s, w) {
					pos++
				}
			}
			for _, w := range a.lexicon.Negative {
				if strings.Contains(s, w) {
					neg++
				}
			}
		}
		if seen == 0 {
			continue
		}
		if pos+neg > 0 {
			out[topic] = float64(pos-neg) / float64(pos+neg)
		} else {
			out[topic] = 0
		}
	}
	return out
}

func (a *Analyzer) emotionalMoments(content string) []types.EmotionalMoment {
	var moments []types.EmotionalMoment
	appendCapped := func(matches []string, emotion string, limit int) {
		for i, m := range matches {
			if i >= limit {
				break
			}
			moments = append(moments, types.EmotionalMoment{
				Text:      strings.TrimSpace(m),
				Emotion:   emotion,
				Intensity: "high",
			})
		}
	}
	appendCapped(exclamationRe.FindAllString(content, -1), "emphasis", a.cal.MaxExclamationMoments)
	appendCapped(frustrationRe.FindAllString(content, -1), "frustration", a.cal.MaxFrustrationMoments)
	appendCapped(excitementRe.FindAllString(content, -1), "excitement", a.cal.MaxExcitementMoments)
	return moments
}

func (a *Analyzer) insights(overall, confidence float64, moments []types.EmotionalMoment) []string {
	var out []string
	switch {
	case overall > 0.3:
		out = append(out, "Generally positive attitude toward AI transformation")
	case overall < -0.3:
		out = append(out, "Shows skepticism or concern about AI initiatives")
	default:
		out = append(out, "Mixed or neutral emotional tone toward AI")
	}

	if confidence > 0.6 {
		out = append(out, "Speaks with high confidence and certainty")
	} else if confidence < 0.4 {
		out = append(out, "Shows uncertainty - may need more clarity or support")
	}

	frustrations := 0
	for _, m := range moments {
		if m.Emotion == "frustration" {
			frustrations++
		}
	}
	if frustrations > 0 {
		out = append(out, fmt.Sprintf("Expressed frustration %d time(s) - identify pain points", frustrations))
	}
	return out
}
