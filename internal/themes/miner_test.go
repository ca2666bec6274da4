package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

func newTestMiner() *Miner {
	return NewMiner(textmatch.NewRegex(), Library(), config.DefaultCalibration())
}

func transcript(content string) types.Transcript {
	return types.Transcript{
		ID:          "t-001",
		Interviewee: types.Interviewee{Name: "Dana Reyes"},
		RawContent:  content,
	}
}

func findTheme(themes []types.ThemeCluster, id string) *types.ThemeCluster {
	for i := range themes {
		if themes[i].ID == id {
			return &themes[i]
		}
	}
	return nil
}

func TestMineFrequencyCutoff(t *testing.T) {
	// "no plan" twice clears the cutoff; "fragmented" once does not
	res := newTestMiner().Mine(transcript(
		"We have no plan for adoption. Leadership admits there is no plan anywhere. " +
			"Our tooling is fragmented across departments."))

	theme := findTheme(res.Themes, "no_formal_ai_plan")
	require.NotNil(t, theme)
	assert.Equal(t, 2, theme.Frequency)
	assert.Equal(t, "No Formal Ai Plan", theme.Name)
	assert.Equal(t, []string{"strategy_alignment"}, theme.Dimensions)

	assert.Nil(t, findTheme(res.Themes, "tool_fragmentation"))
}

func TestMineSortsByFrequency(t *testing.T) {
	res := newTestMiner().Mine(transcript(
		"We have no plan here. Still no plan. Everything is manual drudgery. " +
			"The manual steps are repetitive. We should automate the workflow soon."))

	require.GreaterOrEqual(t, len(res.Themes), 2)
	for i := 1; i < len(res.Themes); i++ {
		assert.GreaterOrEqual(t, res.Themes[i-1].Frequency, res.Themes[i].Frequency)
	}
}

func TestMineRepresentativeQuoteCap(t *testing.T) {
	content := ""
	for i := 0; i < 6; i++ {
		content += "There is truly no plan at this company. "
	}
	res := newTestMiner().Mine(transcript(content))

	theme := findTheme(res.Themes, "no_formal_ai_plan")
	require.NotNil(t, theme)
	assert.LessOrEqual(t, len(theme.RepresentativeQuotes), 3)
}

func TestMineTopThemesAndDimensionDedup(t *testing.T) {
	res := newTestMiner().Mine(transcript(
		"There is a skill gap on every team. People need training badly. " +
			"Our creative and design groups are ahead of everyone."))

	assert.LessOrEqual(t, len(res.TopThemes), 5)

	seen := map[string]int{}
	for _, d := range res.DimensionsCovered {
		seen[d]++
	}
	for d, n := range seen {
		assert.Equal(t, 1, n, "dimension %s listed more than once", d)
	}
	// skills_gap and creative_team_leads share the skills_talent dimension
	assert.Contains(t, res.DimensionsCovered, "skills_talent")
}

func TestMineDeterministicAcrossRuns(t *testing.T) {
	in := transcript(
		"We have no plan at all. Honestly no plan. Work is manual and repetitive. " +
			"We should automate the workflow. The skill gap hurts and we need training.")

	a := newTestMiner().Mine(in)
	b := newTestMiner().Mine(in)
	assert.Equal(t, a, b)
}
