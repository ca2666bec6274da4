package evidence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

func newTestScorer() *Scorer {
	return NewScorer(textmatch.NewRegex(), config.DefaultCalibration())
}

func transcripts(contents ...string) []types.Transcript {
	out := make([]types.Transcript, 0, len(contents))
	for i, c := range contents {
		out = append(out, types.Transcript{
			ID:          string(rune('a' + i)),
			Interviewee: types.Interviewee{Name: "Dana Reyes"},
			RawContent:  c,
		})
	}
	return out
}

func TestScoreDefaultsToMidpointWithoutMatches(t *testing.T) {
	me := newTestScorer().Score(transcripts("the cafeteria reopened on tuesday"))

	for dim, es := range me.DimensionScores {
		assert.InDelta(t, 5.0, es.Score, 1e-9, "dimension %s", dim)
		assert.Zero(t, es.Confidence, "dimension %s", dim)
		assert.Zero(t, es.LevelMatches, "dimension %s", dim)
	}
	// zero total confidence falls back to the unweighted mean
	assert.InDelta(t, 5.0, me.OverallMaturity, 1e-9)
	assert.Zero(t, me.ConfidenceLevel)
}

func TestScoreLowMaturityLanguage(t *testing.T) {
	// repeated low-level strategy phrases pull the dimension down
	content := strings.Repeat("we have no strategy and no plan for this. ", 3)
	me := newTestScorer().Score(transcripts(content))

	sa := me.DimensionScores["strategy_alignment"]
	assert.InDelta(t, 0.0, sa.Score, 1e-9)
	assert.Equal(t, 6, sa.LevelMatches)
	assert.InDelta(t, 0.6, sa.Confidence, 1e-9)
	assert.NotEmpty(t, sa.Evidence)
}

func TestEvidenceHoldsMatchedSentences(t *testing.T) {
	me := newTestScorer().Score(transcripts(
		"We honestly have no strategy for AI right now. The team keeps asking."))

	sa := me.DimensionScores["strategy_alignment"]
	require.NotEmpty(t, sa.Evidence)
	assert.Equal(t, "We honestly have no strategy for AI right now.", sa.Evidence[0])
}

func TestScoreMixedLevelsAverage(t *testing.T) {
	// one level-0 phrase and one level-9 phrase average to 4.5
	me := newTestScorer().Score(transcripts("no strategy today but ai-native ambitions"))

	sa := me.DimensionScores["strategy_alignment"]
	assert.InDelta(t, 4.5, sa.Score, 1e-9)
	assert.Equal(t, 2, sa.LevelMatches)
}

func TestScoresAndConfidenceStayInBounds(t *testing.T) {
	content := strings.Repeat(
		"everyone is fluent, company-wide production ai, integrated, board-level, comprehensive governance, championing leaders, embracing change. ", 10)
	me := newTestScorer().Score(transcripts(content))

	for dim, es := range me.DimensionScores {
		assert.GreaterOrEqual(t, es.Score, 0.0, dim)
		assert.LessOrEqual(t, es.Score, 10.0, dim)
		assert.GreaterOrEqual(t, es.Confidence, 0.0, dim)
		assert.LessOrEqual(t, es.Confidence, 1.0, dim)
	}
	assert.GreaterOrEqual(t, me.OverallMaturity, 0.0)
	assert.LessOrEqual(t, me.OverallMaturity, 10.0)
}

func TestProfileBuckets(t *testing.T) {
	// strategy low, skills high, the rest untouched at 5
	content := strings.Repeat("no strategy, no plan. everyone here is fluent, company-wide. ", 2)
	me := newTestScorer().Score(transcripts(content))

	assert.Contains(t, me.MaturityProfile.Weaknesses, "strategy_alignment")
	assert.Contains(t, me.MaturityProfile.Strengths, "skills_talent")
	assert.Contains(t, me.MaturityProfile.Opportunities, "ai_use_cases")
}

func TestGapPrioritizationOrderedAscending(t *testing.T) {
	content := "no strategy, no plan, reactive. manual work, no automation here."
	me := newTestScorer().Score(transcripts(content))

	require.NotEmpty(t, me.GapPrioritization)
	for i, g := range me.GapPrioritization {
		assert.Less(t, g.CurrentScore, 5.0)
		assert.LessOrEqual(t, g.TargetScore, 9.0)
		if i > 0 {
			assert.GreaterOrEqual(t, g.CurrentScore, me.GapPrioritization[i-1].CurrentScore)
		}
		if g.CurrentScore < 3 {
			assert.Equal(t, "critical", g.Priority)
		}
	}
}

func TestDeterministicAcrossRuns(t *testing.T) {
	in := transcripts(
		"no strategy but everyone is fluent. manual work and pilot projects.",
		"experimenting with several use cases, committed leadership, willing teams.")

	a := newTestScorer().Score(in)
	b := newTestScorer().Score(in)
	assert.Equal(t, a, b)
}
