package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"maturity-insights-go/internal/types"
)

// LoadTranscripts reads interview transcripts from the first sheet of
// an xlsx workbook, auto-detecting columns by header heuristics.
func LoadTranscripts(path string) ([]types.Transcript, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	idIdx, nameIdx, titleIdx, orgIdx, contentIdx, durationIdx := -1, -1, -1, -1, -1, -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "transcript") && strings.Contains(l, "id") || l == "id":
			if idIdx == -1 {
				idIdx = i
			}
		case strings.Contains(l, "name") || strings.Contains(l, "interviewee"):
			if nameIdx == -1 {
				nameIdx = i
			}
		case strings.Contains(l, "title") || strings.Contains(l, "role"):
			if titleIdx == -1 {
				titleIdx = i
			}
		case strings.Contains(l, "org") || strings.Contains(l, "company"):
			if orgIdx == -1 {
				orgIdx = i
			}
		case strings.Contains(l, "content") || strings.Contains(l, "transcript") || strings.Contains(l, "text"):
			if contentIdx == -1 {
				contentIdx = i
			}
		case strings.Contains(l, "duration") || strings.Contains(l, "minutes"):
			durationIdx = i
		}
	}
	if contentIdx == -1 && len(header) > 2 {
		// content is usually the widest, last column
		contentIdx = len(header) - 1
	}

	var out []types.Transcript
	for i, r := range rows {
		if i == 0 {
			continue
		}
		t := types.Transcript{}
		if idIdx >= 0 && idIdx < len(r) {
			t.ID = strings.TrimSpace(r[idIdx])
		}
		if t.ID == "" {
			t.ID = fmt.Sprintf("interview-%03d", i)
		}
		if nameIdx >= 0 && nameIdx < len(r) {
			t.Interviewee.Name = strings.TrimSpace(r[nameIdx])
		}
		if titleIdx >= 0 && titleIdx < len(r) {
			t.Interviewee.Title = strings.TrimSpace(r[titleIdx])
		}
		if orgIdx >= 0 && orgIdx < len(r) {
			t.Organization = strings.TrimSpace(r[orgIdx])
		}
		if contentIdx >= 0 && contentIdx < len(r) {
			t.RawContent = r[contentIdx]
		}
		if durationIdx >= 0 && durationIdx < len(r) {
			t.Duration, _ = strconv.Atoi(strings.TrimSpace(r[durationIdx]))
		}
		// skip rows without transcript text quietly
		if strings.TrimSpace(t.RawContent) == "" {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// LoadSurveyAnswers reads structured survey responses from an xlsx
// workbook. Expected columns: dimension, subdimension, weight, value,
// skipped; detected by header heuristics like the transcript loader.
func LoadSurveyAnswers(path string) ([]types.SurveyAnswer, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	dimIdx, subIdx, weightIdx, valueIdx, skipIdx := -1, -1, -1, -1, -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "subdimension") || strings.Contains(l, "sub-dimension"):
			subIdx = i
		case strings.Contains(l, "dimension"):
			if dimIdx == -1 {
				dimIdx = i
			}
		case strings.Contains(l, "weight"):
			weightIdx = i
		case strings.Contains(l, "value") || strings.Contains(l, "score") || strings.Contains(l, "answer"):
			if valueIdx == -1 {
				valueIdx = i
			}
		case strings.Contains(l, "skip"):
			skipIdx = i
		}
	}

	var out []types.SurveyAnswer
	for i, r := range rows {
		if i == 0 {
			continue
		}
		a := types.SurveyAnswer{Weight: 1}
		if dimIdx >= 0 && dimIdx < len(r) {
			a.Dimension = strings.TrimSpace(strings.ToLower(r[dimIdx]))
		}
		if subIdx >= 0 && subIdx < len(r) {
			a.Subdimension = strings.TrimSpace(r[subIdx])
		}
		if weightIdx >= 0 && weightIdx < len(r) {
			if w, err := strconv.ParseFloat(strings.TrimSpace(r[weightIdx]), 64); err == nil && w > 0 {
				a.Weight = w
			}
		}
		if valueIdx >= 0 && valueIdx < len(r) {
			a.AnswerValue, _ = strconv.ParseFloat(strings.TrimSpace(r[valueIdx]), 64)
		}
		if skipIdx >= 0 && skipIdx < len(r) {
			s := strings.ToLower(strings.TrimSpace(r[skipIdx]))
			a.Skipped = s == "true" || s == "yes" || s == "1"
		}
		// rows without a dimension are unusable, skip quietly
		if a.Dimension == "" {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}
	return rows, nil
}
