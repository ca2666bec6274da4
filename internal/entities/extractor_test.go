package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

func newTestExtractor() *Extractor {
	return NewExtractor(textmatch.NewRegex(), config.DefaultCalibration())
}

func transcript(content string) types.Transcript {
	return types.Transcript{
		ID:          "t-001",
		Interviewee: types.Interviewee{Name: "Dana Reyes"},
		RawContent:  content,
	}
}

func findEntity(ents []types.ExtractedEntity, typ, value string) *types.ExtractedEntity {
	for i := range ents {
		if ents[i].Type == typ && ents[i].Value == value {
			return &ents[i]
		}
	}
	return nil
}

func TestExtractTools(t *testing.T) {
	res := newTestExtractor().Extract(transcript(
		"We use ChatGPT every day. ChatGPT handles drafts. Figma is for design."))

	chat := findEntity(res.Entities, types.EntityTool, "ChatGPT")
	require.NotNil(t, chat)
	assert.Equal(t, 2, chat.Frequency)
	assert.NotEmpty(t, chat.SourceQuotes)

	figma := findEntity(res.Entities, types.EntityTool, "Figma")
	require.NotNil(t, figma)
	assert.Equal(t, 1, figma.Frequency)

	assert.ElementsMatch(t, []string{"ChatGPT", "Figma"}, res.ToolsFound)
}

func TestExtractPeopleThreshold(t *testing.T) {
	res := newTestExtractor().Extract(transcript(
		"Marcus uses automation constantly. Marcus is our go-to. Priya mentioned it once."))

	require.NotNil(t, findEntity(res.Entities, types.EntityPerson, "Marcus"))
	// single mention stays below the threshold
	assert.Nil(t, findEntity(res.Entities, types.EntityPerson, "Priya"))
	assert.Equal(t, []string{"Marcus"}, res.PeopleFound)
}

func TestExtractExcludesToolNamesAsPeople(t *testing.T) {
	res := newTestExtractor().Extract(transcript(
		"Claude is wonderful. Claude does the heavy lifting. Claude is everywhere."))

	assert.Nil(t, findEntity(res.Entities, types.EntityPerson, "Claude"))
	require.NotNil(t, findEntity(res.Entities, types.EntityTool, "Claude"))
}

func TestExtractChallengesAreTruncated(t *testing.T) {
	long := "The biggest challenge is that our reporting pipeline requires manual review by three separate teams every single week."
	res := newTestExtractor().Extract(transcript(long))

	require.Greater(t, res.ChallengesFound, 0)
	for _, e := range res.Entities {
		if e.Type != types.EntityChallenge {
			continue
		}
		assert.True(t, strings.HasSuffix(e.Value, "..."))
		assert.LessOrEqual(t, len(e.Value), 53)
		// full sentence survives as the source quote
		require.NotEmpty(t, e.SourceQuotes)
		assert.Greater(t, len(e.SourceQuotes[0]), len(e.Value)-3)
	}
}

func TestSentimentMargin(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"clearly positive", "great and excellent and helpful", types.SentimentPositive},
		{"clearly negative", "bad and difficult and a struggle", types.SentimentNegative},
		{"one-hit margin stays neutral", "great but difficult", types.SentimentNeutral},
		{"empty", "", types.SentimentNeutral},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sentiment(tc.text))
		})
	}
}

func TestExtractAllKeepsTranscriptOrder(t *testing.T) {
	a := transcript("We adore ChatGPT here.")
	a.ID = "t-a"
	b := transcript("Figma rules our design work.")
	b.ID = "t-b"

	res := newTestExtractor().ExtractAll([]types.Transcript{a, b})

	require.Len(t, res, 2)
	assert.Equal(t, "t-a", res[0].TranscriptID)
	assert.Equal(t, "t-b", res[1].TranscriptID)
}
