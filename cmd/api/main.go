package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"maturity-insights-go/internal/benchmark"
	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/dataset"
	"maturity-insights-go/internal/logger"
	"maturity-insights-go/internal/pipeline"
	"maturity-insights-go/internal/recommend"
	"maturity-insights-go/internal/scoring"
	"maturity-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "maturity-insights-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	pipe := pipeline.New(pipeline.Options{Calibration: cfg.Calibration, Log: log})
	scorer := scoring.NewEngine(nil)
	recommender := recommend.NewEngine()

	var benchmarks benchmark.Provider = benchmark.NewStaticProvider(benchmark.DefaultBenchmarks())
	if cfg.Server.BenchmarkURL != "" {
		benchmarks = benchmark.NewHTTPProvider(cfg.Server.BenchmarkURL, log)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// full transcript analysis
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			OrganizationID string             `json:"organization_id"`
			Transcripts    []types.Transcript `json:"transcripts"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		reqLog = reqLog.WithField("transcripts", len(req.Transcripts))

		start := time.Now()
		res, err := pipe.Run(r.Context(), req.OrganizationID, req.Transcripts)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("analysis finished")
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, pipeline.ErrNoTranscripts) || errors.Is(err, pipeline.ErrNoSuccessfulAnalyses) {
				status = http.StatusBadRequest
			}
			reqLog.WithError(err).Warn("analysis failed")
			http.Error(w, err.Error(), status)
			return
		}
		writeJSON(w, res, reqLog)
	})

	// structured survey scoring
	mux.HandleFunc("/score", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "score")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			AssessmentID string               `json:"assessment_id"`
			Industry     string               `json:"industry"`
			Answers      []types.SurveyAnswer `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		// benchmark lookup is best effort
		bm, err := benchmarks.Lookup(r.Context(), req.Industry)
		if err != nil {
			reqLog.WithError(err).Warn("benchmark unavailable, scoring without it")
			bm = nil
		}

		scores, err := scorer.Score(req.AssessmentID, req.Answers, bm)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, scoring.ErrNoAnswers) {
				status = http.StatusBadRequest
			}
			reqLog.WithError(err).Warn("scoring failed")
			http.Error(w, err.Error(), status)
			return
		}
		writeJSON(w, scores, reqLog)
	})

	// recommendation plan from scored answers
	mux.HandleFunc("/plan", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "plan")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			AssessmentID   string               `json:"assessment_id"`
			OrganizationID string               `json:"organization_id"`
			Industry       string               `json:"industry"`
			Answers        []types.SurveyAnswer `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		bm, err := benchmarks.Lookup(r.Context(), req.Industry)
		if err != nil {
			reqLog.WithError(err).Warn("benchmark unavailable, planning without it")
			bm = nil
		}

		scores, err := scorer.Score(req.AssessmentID, req.Answers, bm)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, scoring.ErrNoAnswers) {
				status = http.StatusBadRequest
			}
			reqLog.WithError(err).Warn("scoring failed")
			http.Error(w, err.Error(), status)
			return
		}
		writeJSON(w, recommender.Plan(scores, req.OrganizationID, bm), reqLog)
	})

	// demo endpoint (analyze transcripts loaded from the configured workbook)
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "demo")
		reqLog.Info("demo invoked")

		transcripts, err := dataset.LoadTranscripts(cfg.Server.DatasetPath)
		if err != nil {
			reqLog.WithError(err).Error("dataset load error")
			http.Error(w, "dataset load error", http.StatusInternalServerError)
			return
		}
		res, err := pipe.Run(r.Context(), "demo-org", transcripts)
		if err != nil {
			reqLog.WithError(err).Error("demo analysis failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, res, reqLog)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func writeJSON(w http.ResponseWriter, v interface{}, log *logrus.Entry) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error("failed to write response")
	}
}
