package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadTranscripts(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Transcript ID", "Interviewee Name", "Title", "Organization", "Duration Minutes", "Transcript Text"},
		{"int-001", "Dana Reyes", "CEO", "Northwind", 45, "We have no plan for AI."},
		{"int-002", "Joel Kim", "Partner", "Northwind", 30, "I use ChatGPT daily."},
		{"int-003", "Empty Row", "Analyst", "Northwind", 20, ""},
	})

	transcripts, err := LoadTranscripts(path)
	require.NoError(t, err)
	require.Len(t, transcripts, 2)

	assert.Equal(t, "int-001", transcripts[0].ID)
	assert.Equal(t, "Dana Reyes", transcripts[0].Interviewee.Name)
	assert.Equal(t, "CEO", transcripts[0].Interviewee.Title)
	assert.Equal(t, "Northwind", transcripts[0].Organization)
	assert.Equal(t, 45, transcripts[0].Duration)
	assert.Equal(t, "We have no plan for AI.", transcripts[0].RawContent)
}

func TestLoadTranscriptsGeneratesMissingIDs(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Interviewee Name", "Transcript Text"},
		{"Dana Reyes", "Some interview content."},
	})

	transcripts, err := LoadTranscripts(path)
	require.NoError(t, err)
	require.Len(t, transcripts, 1)
	assert.Equal(t, "interview-001", transcripts[0].ID)
}

func TestLoadSurveyAnswers(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Dimension", "Subdimension", "Weight", "Answer Value", "Skipped"},
		{"Individual", "tool_fluency", 2, 80, "false"},
		{"Leadership", "", 1, 40, "true"},
		{"", "", 1, 10, "false"},
	})

	answers, err := LoadSurveyAnswers(path)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	assert.Equal(t, "individual", answers[0].Dimension)
	assert.Equal(t, "tool_fluency", answers[0].Subdimension)
	assert.InDelta(t, 2.0, answers[0].Weight, 1e-9)
	assert.InDelta(t, 80.0, answers[0].AnswerValue, 1e-9)
	assert.False(t, answers[0].Skipped)

	assert.True(t, answers[1].Skipped)
}

func TestLoadRejectsEmptyWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Transcript ID", "Transcript Text"},
	})

	_, err := LoadTranscripts(path)
	assert.Error(t, err)
}
