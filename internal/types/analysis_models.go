package types

import "time"

// --------------------------------------------
// Per-transcript agent outputs
// --------------------------------------------

type EntityExtraction struct {
	TranscriptID       string            `json:"transcript_id"`
	Interviewee        string            `json:"interviewee"`
	Entities           []ExtractedEntity `json:"entities"`
	ToolsFound         []string          `json:"tools_found"`
	PeopleFound        []string          `json:"people_found"`
	ChallengesFound    int               `json:"challenges_found"`
	OpportunitiesFound int               `json:"opportunities_found"`
}

type EmotionalMoment struct {
	Text      string `json:"text"`
	Emotion   string `json:"emotion"`
	Intensity string `json:"intensity"`
}

type SentimentProfile struct {
	TranscriptID     string             `json:"transcript_id"`
	Interviewee      string             `json:"interviewee"`
	OverallSentiment float64            `json:"overall_sentiment"` // -1 to 1
	ConfidenceLevel  float64            `json:"confidence_level"`  // 0 to 1
	PositiveScore    int                `json:"positive_score"`
	NegativeScore    int                `json:"negative_score"`
	EmotionalMoments []EmotionalMoment  `json:"emotional_moments"`
	TopicSentiments  map[string]float64 `json:"topic_sentiments"`
	KeyInsights      []string           `json:"key_insights"`
}

type ThemeMining struct {
	TranscriptID      string         `json:"transcript_id"`
	Interviewee       string         `json:"interviewee"`
	Themes            []ThemeCluster `json:"themes"`
	TopThemes         []string       `json:"top_themes"`
	DimensionsCovered []string       `json:"dimensions_covered"`
}

type GapAnalysisResult struct {
	TranscriptID   string       `json:"transcript_id"`
	Interviewee    string       `json:"interviewee"`
	Gaps           []RealityGap `json:"gaps"`
	LargestGaps    []string     `json:"largest_gaps"`
	MeanSignedGap  float64      `json:"mean_signed_gap"`
}

type TrainingCohort struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	Focus       []string `json:"focus"`
}

type SkillsMap struct {
	Profiles          []PersonSkillProfile `json:"profiles"`
	Champions         []PersonSkillProfile `json:"champions"`
	SkillDistribution map[string]int       `json:"skill_distribution"`
	TrainingCohorts   []TrainingCohort     `json:"training_cohorts"`
}

// --------------------------------------------
// Evidence scoring
// --------------------------------------------

type EvidenceScore struct {
	Dimension    string   `json:"dimension"`
	Score        float64  `json:"score"` // 0-10
	Evidence     []string `json:"evidence"`
	Confidence   float64  `json:"confidence"` // 0-1
	LevelMatches int      `json:"level_matches"`
}

type MaturityProfile struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
}

type GapPriority struct {
	Dimension    string  `json:"dimension"`
	CurrentScore float64 `json:"current_score"`
	TargetScore  float64 `json:"target_score"`
	Priority     string  `json:"priority"` // critical|high|medium|low
	Effort       string  `json:"effort"`   // high|medium|low
}

type MaturityEvidence struct {
	DimensionScores   map[string]EvidenceScore `json:"dimension_scores"`
	OverallMaturity   float64                  `json:"overall_maturity"`
	ConfidenceLevel   float64                  `json:"confidence_level"`
	MaturityProfile   MaturityProfile          `json:"maturity_profile"`
	GapPrioritization []GapPriority            `json:"gap_prioritization"`
}

// --------------------------------------------
// Cross-interview synthesis
// --------------------------------------------

type Position struct {
	Interviewee string `json:"interviewee"`
	Position    string `json:"position"` // positive|negative|neutral
}

type DivergencePoint struct {
	Topic        string     `json:"topic"`
	Positions    []Position `json:"positions"`
	Significance string     `json:"significance"` // high|medium|low
}

type TieredRecommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

type Synthesis struct {
	OrganizationID   string                `json:"organization_id"`
	TotalInterviews  int                   `json:"total_interviews"`
	ConsensusThemes  []ThemeCluster        `json:"consensus_themes"`
	DivergencePoints []DivergencePoint     `json:"divergence_points"`
	RealityGaps      []RealityGap          `json:"reality_gaps"`
	SkillsMap        []PersonSkillProfile  `json:"skills_map"`
	AggregateScores  map[string]float64    `json:"aggregate_scores"` // dimension -> 0-10
	ExecutiveSummary string                `json:"executive_summary"`
	Recommendations  TieredRecommendations `json:"recommendations"`
}

// --------------------------------------------
// Full analysis envelope returned by the pipeline
// --------------------------------------------

type TranscriptFailure struct {
	TranscriptID string `json:"transcript_id"`
	Stage        string `json:"stage"`
	Error        string `json:"error"`
}

type AnalysisResult struct {
	RunID           string              `json:"run_id"`
	TranscriptCount int                 `json:"transcript_count"`
	AnalyzedAt      time.Time           `json:"analyzed_at"`
	Parsed          []ParsedTranscript  `json:"parsed"`
	Entities        []EntityExtraction  `json:"entities"`
	Sentiments      []SentimentProfile  `json:"sentiments"`
	Themes          []ThemeMining       `json:"themes"`
	RealityGaps     []GapAnalysisResult `json:"reality_gaps"`
	Skills          SkillsMap           `json:"skills"`
	MaturityScores  MaturityEvidence    `json:"maturity_scores"`
	Synthesis       Synthesis           `json:"synthesis"`
	Failures        []TranscriptFailure `json:"failures,omitempty"`
}

// --------------------------------------------
// Structured survey path
// --------------------------------------------

type SurveyAnswer struct {
	Dimension    string  `json:"dimension"`
	Subdimension string  `json:"subdimension,omitempty"`
	Weight       float64 `json:"weight"`
	AnswerValue  float64 `json:"answer_value"` // 0-100
	Skipped      bool    `json:"skipped"`
}

type SubdimensionScore struct {
	Name          string  `json:"name"`
	Score         float64 `json:"score"`
	MaxScore      float64 `json:"max_score"`
	Percentage    float64 `json:"percentage"`
	QuestionCount int     `json:"question_count"`
}

type DimensionScore struct {
	Dimension         string              `json:"dimension"`
	Score             float64             `json:"score"` // 0-100
	MaxScore          float64             `json:"max_score"`
	Percentage        float64             `json:"percentage"`
	Weight            float64             `json:"weight"`
	WeightedScore     float64             `json:"weighted_score"`
	Subdimensions     []SubdimensionScore `json:"subdimensions"`
	QuestionsAnswered int                 `json:"questions_answered"`
	QuestionsSkipped  int                 `json:"questions_skipped"`
}

type MaturityLevel struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	MinScore    float64 `json:"min_score"`
	MaxScore    float64 `json:"max_score"`
	Description string `json:"description,omitempty"`
}

type DimensionGap struct {
	Dimension    string  `json:"dimension"`
	CurrentScore float64 `json:"current_score"`
	TargetScore  float64 `json:"target_score"`
	Gap          float64 `json:"gap"`
	Priority     string  `json:"priority"` // high|medium|low
}

type GapAnalysis struct {
	CurrentLevel          MaturityLevel  `json:"current_level"`
	NextLevel             *MaturityLevel `json:"next_level,omitempty"`
	PointsToNextLevel     float64        `json:"points_to_next_level"`
	PercentageToNextLevel float64        `json:"percentage_to_next_level"`
	DimensionGaps         []DimensionGap `json:"dimension_gaps"`
	Recommendations       []string       `json:"recommendations"`
}

type PeerComparison struct {
	IndustryAverage float64 `json:"industry_average"`
	Percentile      float64 `json:"percentile"`
	Rank            string  `json:"rank"`
}

type AssessmentScores struct {
	AssessmentID    string           `json:"assessment_id"`
	OverallScore    float64          `json:"overall_score"`
	MaturityLevel   MaturityLevel    `json:"maturity_level"`
	Dimensions      []DimensionScore `json:"dimensions"`
	GapAnalysis     GapAnalysis      `json:"gap_analysis"`
	PeerComparison  *PeerComparison  `json:"peer_comparison,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
}

// --------------------------------------------
// Recommendation plan
// --------------------------------------------

type ExpectedImpact struct {
	Dimension     string `json:"dimension"`
	PotentialGain float64 `json:"potential_gain"`
	Timeframe     string `json:"timeframe"`
}

type ActionItem struct {
	Action   string `json:"action"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

type Resource struct {
	Type        string `json:"type"` // course|article|tool|template|service
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description"`
}

type Recommendation struct {
	ID                string         `json:"id"`
	Category          string         `json:"category"` // training|process|technology|culture|leadership|measurement
	Priority          string         `json:"priority"` // critical|high|medium|low
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Rationale         string         `json:"rationale"`
	ExpectedImpact    ExpectedImpact `json:"expected_impact"`
	ActionItems       []ActionItem   `json:"action_items"`
	Resources         []Resource     `json:"resources,omitempty"`
	RelatedDimensions []string       `json:"related_dimensions"`
	EstimatedEffort   string         `json:"estimated_effort"` // low|medium|high
	EstimatedCost     string         `json:"estimated_cost"`   // free|low|medium|high
}

type PriorityMatrixEntry struct {
	Recommendation string  `json:"recommendation"`
	Impact         float64 `json:"impact"`
	Effort         float64 `json:"effort"`
	Priority       float64 `json:"priority"`
}

type RoadmapPhase struct {
	Phase           int      `json:"phase"`
	Name            string   `json:"name"`
	Duration        string   `json:"duration"`
	Recommendations []string `json:"recommendations"`
	Milestones      []string `json:"milestones"`
}

type RecommendationPlan struct {
	AssessmentID        string                `json:"assessment_id"`
	OrganizationID      string                `json:"organization_id,omitempty"`
	GeneratedAt         time.Time             `json:"generated_at"`
	OverallStrategy     string                `json:"overall_strategy"`
	QuickWins           []Recommendation      `json:"quick_wins"`
	MediumTermGoals     []Recommendation      `json:"medium_term_goals"`
	LongTermInitiatives []Recommendation      `json:"long_term_initiatives"`
	PriorityMatrix      []PriorityMatrixEntry `json:"priority_matrix"`
	Roadmap             []RoadmapPhase        `json:"implementation_roadmap"`
}

// --------------------------------------------
// Industry benchmark contract
// --------------------------------------------

type MaturityBand struct {
	Level      int     `json:"level"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

type IndustryBenchmark struct {
	Industry             string         `json:"industry"`
	AverageMaturityLevel float64        `json:"average_maturity_level"` // 0-10 scale
	MaturityDistribution []MaturityBand `json:"maturity_distribution"`
	OrganizationCount    int            `json:"organization_count"`
}
