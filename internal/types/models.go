package types

import "time"

// Role classes for interviewees.
const (
	RoleCSuite     = "c_suite"
	RoleLeadership = "leadership"
	RoleManager    = "manager"
	RoleIC         = "individual_contributor"
)

type Interviewee struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// Transcript is a write-once input. Nothing downstream mutates it.
type Transcript struct {
	ID           string            `json:"id"`
	Interviewee  Interviewee       `json:"interviewee"`
	Organization string            `json:"organization"`
	Timestamp    time.Time         `json:"timestamp"`
	Duration     int               `json:"duration"` // minutes
	RawContent   string            `json:"raw_content"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type DialogueTurn struct {
	Speaker       string `json:"speaker"`
	Content       string `json:"content"`
	Timestamp     string `json:"timestamp"`
	IsInterviewee bool   `json:"is_interviewee"`
}

// TranscriptSection is a contiguous run of turns under one topical label.
// Sections are non-overlapping and exhaustive over the turn sequence.
type TranscriptSection struct {
	Name       string         `json:"name"`
	StartIndex int            `json:"start_index"`
	EndIndex   int            `json:"end_index"`
	Turns      []DialogueTurn `json:"turns"`
}

type ParsedTranscript struct {
	TranscriptID  string              `json:"transcript_id"`
	Interviewee   Interviewee         `json:"interviewee"`
	DialogueTurns []DialogueTurn      `json:"dialogue_turns"`
	WordCount     int                 `json:"word_count"`
	Sections      []TranscriptSection `json:"sections"`
	Metadata      map[string]string   `json:"metadata,omitempty"`
}

// Entity types.
const (
	EntityPerson      = "person"
	EntityTool        = "tool"
	EntityProcess     = "process"
	EntityTeam        = "team"
	EntityCompany     = "company"
	EntityMetric      = "metric"
	EntityChallenge   = "challenge"
	EntityOpportunity = "opportunity"
)

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type ExtractedEntity struct {
	Type         string   `json:"type"`
	Value        string   `json:"value"`
	Context      string   `json:"context"`
	Sentiment    string   `json:"sentiment,omitempty"`
	Frequency    int      `json:"frequency"`
	SourceQuotes []string `json:"source_quotes"`
}

type ThemeCluster struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Keywords             []string `json:"keywords"`
	Frequency            int      `json:"frequency"`
	Sentiment            float64  `json:"sentiment"` // -1 to 1
	SourceInterviews     []string `json:"source_interviews"`
	RepresentativeQuotes []string `json:"representative_quotes"`
	Dimensions           []string `json:"dimensions"`
}

type GapEvidence struct {
	Supporting    []string `json:"supporting"`
	Contradicting []string `json:"contradicting"`
}

// RealityGap quantifies perception-vs-reality divergence for one dimension.
// Invariant: Gap == LeadershipPerception - ActualEvidence, always.
type RealityGap struct {
	Dimension            string      `json:"dimension"`
	LeadershipPerception float64     `json:"leadership_perception"` // 0-10
	ActualEvidence       float64     `json:"actual_evidence"`       // 0-10
	Gap                  float64     `json:"gap"`
	Evidence             GapEvidence `json:"evidence"`
	Confidence           float64     `json:"confidence"` // 0-1
}

// Skill levels, ordered by rank (expert highest).
const (
	SkillExpert       = "expert"
	SkillAdvanced     = "advanced"
	SkillIntermediate = "intermediate"
	SkillBeginner     = "beginner"
	SkillNone         = "none"
)

// Usage frequency labels.
const (
	FreqDaily        = "daily"
	FreqWeekly       = "weekly"
	FreqOccasionally = "occasionally"
	FreqRarely       = "rarely"
	FreqNever        = "never"
)

type PersonSkillProfile struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	AISkillLevel    string   `json:"ai_skill_level"`
	ToolsUsed       []string `json:"tools_used"`
	Frequency       string   `json:"frequency"`
	MentionedBy     []string `json:"mentioned_by"`
	Evidence        []string `json:"evidence"`
	IsChampion      bool     `json:"is_champion"`
	GrowthPotential string   `json:"growth_potential"`
}

// SkillRank maps a skill level to its ordering rank. Unknown levels rank
// below "none" so a merge can never promote garbage input.
func SkillRank(level string) int {
	switch level {
	case SkillExpert:
		return 5
	case SkillAdvanced:
		return 4
	case SkillIntermediate:
		return 3
	case SkillBeginner:
		return 2
	case SkillNone:
		return 1
	}
	return 0
}
