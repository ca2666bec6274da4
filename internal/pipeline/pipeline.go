// Package pipeline orchestrates the full transcript analysis run:
// validate, parse, fan out the per-transcript agents, score maturity
// evidence and synthesize the organization-level result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/entities"
	"maturity-insights-go/internal/evidence"
	"maturity-insights-go/internal/gaps"
	"maturity-insights-go/internal/logger"
	"maturity-insights-go/internal/parser"
	"maturity-insights-go/internal/sentiment"
	"maturity-insights-go/internal/skills"
	"maturity-insights-go/internal/synthesis"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/themes"
	"maturity-insights-go/internal/types"
)

var (
	ErrNoTranscripts        = errors.New("no transcripts provided")
	ErrNoSuccessfulAnalyses = errors.New("no transcript passed validation")
)

type Options struct {
	Matcher        textmatch.Matcher
	Calibration    config.Calibration
	Lexicon        sentiment.Lexicon
	ThemeLibrary   []themes.Definition
	GapIndicators  []gaps.Indicator
	PersonPatterns []skills.PersonPattern
	Log            *logger.Logger
}

type Pipeline struct {
	opts      Options
	extractor *entities.Extractor
	analyzer  *sentiment.Analyzer
	miner     *themes.Miner
	gapper    *gaps.Analyzer
	mapper    *skills.Mapper
	scorer    *evidence.Scorer
	synth     *synthesis.Synthesizer
	log       *logger.Logger
}

func New(opts Options) *Pipeline {
	if opts.Matcher == nil {
		opts.Matcher = textmatch.NewRegex()
	}
	if opts.Lexicon.Positive == nil {
		opts.Lexicon = sentiment.DefaultLexicon()
	}
	if opts.ThemeLibrary == nil {
		opts.ThemeLibrary = themes.Library()
	}
	if opts.GapIndicators == nil {
		opts.GapIndicators = gaps.Indicators()
	}
	if opts.PersonPatterns == nil {
		opts.PersonPatterns = skills.DefaultPatterns()
	}
	if opts.Log == nil {
		opts.Log = logger.New()
	}
	return &Pipeline{
		opts:      opts,
		extractor: entities.NewExtractor(opts.Matcher, opts.Calibration),
		analyzer:  sentiment.NewAnalyzer(opts.Matcher, opts.Lexicon, opts.Calibration),
		miner:     themes.NewMiner(opts.Matcher, opts.ThemeLibrary, opts.Calibration),
		gapper:    gaps.NewAnalyzer(opts.Matcher, opts.GapIndicators, opts.Calibration),
		mapper:    skills.NewMapper(opts.Matcher, opts.PersonPatterns, opts.Calibration),
		scorer:    evidence.NewScorer(opts.Matcher, opts.Calibration),
		synth:     synthesis.NewSynthesizer(opts.Calibration),
		log:       opts.Log,
	}
}

// Run analyzes a full interview set for one organization. Transcripts
// that fail validation are reported in the result, not fatal; an empty
// or fully invalid set is an error.
func (p *Pipeline) Run(ctx context.Context, organizationID string, transcripts []types.Transcript) (*types.AnalysisResult, error) {
	if len(transcripts) == 0 {
		return nil, ErrNoTranscripts
	}

	runID := uuid.New().String()
	log := p.log.WithRun(runID)
	log.WithField("transcripts", len(transcripts)).Info("analysis run started")

	valid, failures := validate(transcripts)
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: %d transcripts rejected", ErrNoSuccessfulAnalyses, len(failures))
	}

	parsed := parser.ParseAll(valid)

	type agentOut struct {
		entities   []types.EntityExtraction
		sentiments []types.SentimentProfile
		themes     []types.ThemeMining
		gaps       []types.GapAnalysisResult
		skills     types.SkillsMap
	}
	var out agentOut

	agents := []struct {
		name string
		run  func()
	}{
		{"entity_extraction", func() { out.entities = p.extractor.ExtractAll(valid) }},
		{"sentiment_analysis", func() { out.sentiments = p.analyzer.AnalyzeAll(valid) }},
		{"theme_mining", func() { out.themes = p.miner.MineAll(valid) }},
		{"gap_analysis", func() { out.gaps = p.gapper.AnalyzeAll(valid) }},
		{"skills_mapping", func() { out.skills = p.mapper.Map(valid) }},
	}

	done := make(chan string, len(agents))
	for _, a := range agents {
		a := a
		go func() {
			a.run()
			done <- a.name
		}()
	}
	for range agents {
		select {
		case name := <-done:
			log.WithField("agent", name).Debug("agent finished")
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	maturity := p.scorer.Score(valid)
	synth := p.synth.Synthesize(synthesis.Input{
		OrganizationID: organizationID,
		Themes:         out.themes,
		Sentiments:     out.sentiments,
		Gaps:           out.gaps,
		Skills:         out.skills,
	})

	log.WithField("failures", len(failures)).Info("analysis run complete")

	return &types.AnalysisResult{
		RunID:           runID,
		TranscriptCount: len(valid),
		AnalyzedAt:      time.Now().UTC(),
		Parsed:          parsed,
		Entities:        out.entities,
		Sentiments:      out.sentiments,
		Themes:          out.themes,
		RealityGaps:     out.gaps,
		Skills:          out.skills,
		MaturityScores:  maturity,
		Synthesis:       synth,
		Failures:        failures,
	}, nil
}

func validate(transcripts []types.Transcript) ([]types.Transcript, []types.TranscriptFailure) {
	var valid []types.Transcript
	var failures []types.TranscriptFailure
	for _, t := range transcripts {
		switch {
		case t.ID == "":
			failures = append(failures, types.TranscriptFailure{
				TranscriptID: "(unknown)", Stage: "validate", Error: "missing transcript id",
			})
		case t.RawContent == "":
			failures = append(failures, types.TranscriptFailure{
				TranscriptID: t.ID, Stage: "validate", Error: "empty transcript content",
			})
		default:
			valid = append(valid, t)
		}
	}
	return valid, failures
}
