package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturity-insights-go/internal/types"
)

func answer(dim string, value, weight float64) types.SurveyAnswer {
	return types.SurveyAnswer{Dimension: dim, AnswerValue: value, Weight: weight}
}

func TestScoreRejectsEmptyAnswers(t *testing.T) {
	_, err := NewEngine(nil).Score("a-1", nil, nil)
	assert.ErrorIs(t, err, ErrNoAnswers)

	_, err = NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		{Dimension: "individual", Skipped: true},
	}, nil)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestScoreWeightedDimension(t *testing.T) {
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		answer("individual", 80, 1),
		answer("individual", 40, 3),
	}, nil)
	require.NoError(t, err)

	require.Len(t, scores.Dimensions, 1)
	// (80*1 + 40*3) / 4 = 50
	assert.InDelta(t, 50.0, scores.Dimensions[0].Score, 1e-9)
	assert.Equal(t, 2, scores.Dimensions[0].QuestionsAnswered)
}

func TestScoreSkippedAnswersExcluded(t *testing.T) {
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		answer("individual", 80, 1),
		{Dimension: "individual", AnswerValue: 0, Weight: 1, Skipped: true},
	}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 80.0, scores.Dimensions[0].Score, 1e-9)
	assert.Equal(t, 1, scores.Dimensions[0].QuestionsAnswered)
	assert.Equal(t, 1, scores.Dimensions[0].QuestionsSkipped)
}

func TestScoreZeroWeightDefaultsToOne(t *testing.T) {
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		{Dimension: "individual", AnswerValue: 60},
		{Dimension: "individual", AnswerValue: 80},
	}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 70.0, scores.Dimensions[0].Score, 1e-9)
}

func TestOverallScoreUsesDimensionWeights(t *testing.T) {
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		answer("individual", 100, 1), // weight .25
		answer("leadership", 0, 1),   // weight .20
	}, nil)
	require.NoError(t, err)

	// (100*.25 + 0*.20) / .45 = 55.6
	assert.InDelta(t, 55.6, scores.OverallScore, 0.01)
}

func TestMaturityLevelBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "Unaware"},
		{10, "Unaware"},
		{10.5, "Aware"},
		{35, "Experimenting"},
		{55, "Scaling"},
		{91, "Transforming"},
		{100, "Transforming"},
		{140, "Transforming"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, levelFor(tc.score).Name, "score %.1f", tc.score)
	}
}

func TestMaturityLevelsNumberedFromZero(t *testing.T) {
	levels := Levels()
	require.Len(t, levels, 10)
	for i, l := range levels {
		assert.Equal(t, i, l.Level, l.Name)
	}
	assert.Equal(t, 0, levelFor(5).Level)
	assert.Equal(t, 5, levelFor(55).Level)
	assert.Equal(t, 9, levelFor(95).Level)
}

func TestNarrativeTierFollowsLevelNumber(t *testing.T) {
	// a mid-ladder organization gets the consolidation narrative, not the
	// top-tier one
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		answer("individual", 55, 1),
	}, nil)
	require.NoError(t, err)

	require.NotEmpty(t, scores.GapAnalysis.Recommendations)
	assert.Contains(t, scores.GapAnalysis.Recommendations[0], "Consolidate early wins")
}

func TestGapAnalysisPointsToNextLevel(t *testing.T) {
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		answer("individual", 35, 1),
		answer("leadership", 35, 1),
		answer("cultural", 35, 1),
		answer("embedding", 35, 1),
		answer("velocity", 35, 1),
	}, nil)
	require.NoError(t, err)

	ga := scores.GapAnalysis
	assert.Equal(t, "Experimenting", ga.CurrentLevel.Name)
	require.NotNil(t, ga.NextLevel)
	assert.Equal(t, "Adopting", ga.NextLevel.Name)
	assert.InDelta(t, 6.0, ga.PointsToNextLevel, 1e-9)
	assert.NotEmpty(t, ga.Recommendations)
	// dimension gaps sorted descending
	for i := 1; i < len(ga.DimensionGaps); i++ {
		assert.GreaterOrEqual(t, ga.DimensionGaps[i-1].Gap, ga.DimensionGaps[i].Gap)
	}
}

func TestPeerComparison(t *testing.T) {
	bm := &types.IndustryBenchmark{
		Industry:             "technology",
		AverageMaturityLevel: 5.5,
	}

	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		answer("individual", 35, 1),
	}, bm)
	require.NoError(t, err)

	require.NotNil(t, scores.PeerComparison)
	assert.InDelta(t, 55.0, scores.PeerComparison.IndustryAverage, 1e-9)
	// no distribution: neutral percentile
	assert.InDelta(t, 50.0, scores.PeerComparison.Percentile, 1e-9)
	assert.Equal(t, "Above Average", scores.PeerComparison.Rank)
}

func TestPeerComparisonAbsentWithoutBenchmark(t *testing.T) {
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		answer("individual", 35, 1),
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, scores.PeerComparison)
}

func TestSubdimensionBreakdown(t *testing.T) {
	scores, err := NewEngine(nil).Score("a-1", []types.SurveyAnswer{
		{Dimension: "individual", Subdimension: "tool_fluency", AnswerValue: 60, Weight: 1},
		{Dimension: "individual", Subdimension: "tool_fluency", AnswerValue: 80, Weight: 1},
		{Dimension: "individual", Subdimension: "learning_habits", AnswerValue: 20, Weight: 1},
	}, nil)
	require.NoError(t, err)

	subs := scores.Dimensions[0].Subdimensions
	require.Len(t, subs, 2)
	assert.Equal(t, "tool_fluency", subs[0].Name)
	assert.InDelta(t, 70.0, subs[0].Score, 1e-9)
	assert.Equal(t, 2, subs[0].QuestionCount)
	assert.InDelta(t, 20.0, subs[1].Score, 1e-9)
}

func TestSummarizeScores(t *testing.T) {
	history := []types.AssessmentScores{
		{OverallScore: 30, Dimensions: []types.DimensionScore{{Dimension: "individual", Score: 30}}},
		{OverallScore: 50, Dimensions: []types.DimensionScore{{Dimension: "individual", Score: 50}}},
	}

	sum := SummarizeScores(history)
	assert.Equal(t, 2, sum["count"])
	assert.InDelta(t, 40.0, sum["mean_score"].(float64), 1e-9)
	assert.Equal(t, "improving", sum["trend"])
}

func TestSummarizeScoresEmptyHistory(t *testing.T) {
	sum := SummarizeScores(nil)
	assert.Equal(t, 0, sum["count"])
}
