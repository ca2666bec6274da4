// Package benchmark fetches industry maturity benchmarks used for peer
// comparison and priority escalation. Lookups are best effort; scoring
// works without them.
package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"maturity-insights-go/internal/logger"
	"maturity-insights-go/internal/types"
)

// Provider supplies the benchmark for an industry, or (nil, nil) when
// none is known.
type Provider interface {
	Lookup(ctx context.Context, industry string) (*types.IndustryBenchmark, error)
}

var httpClient = &http.Client{
	Timeout: 12 * time.Second,
}

// HTTPProvider queries a benchmark service at GET {base}/benchmarks?industry=...
type HTTPProvider struct {
	baseURL string
	log     *logger.Logger
}

func NewHTTPProvider(baseURL string, log *logger.Logger) *HTTPProvider {
	if log == nil {
		log = logger.New()
	}
	return &HTTPProvider{baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

func (p *HTTPProvider) Lookup(ctx context.Context, industry string) (*types.IndustryBenchmark, error) {
	u, err := url.Parse(p.baseURL + "/benchmarks")
	if err != nil {
		return nil, fmt.Errorf("benchmark url: %w", err)
	}
	q := u.Query()
	q.Set("industry", industry)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	var bm types.IndustryBenchmark
	if err := doJSONRequest(req, &bm); err != nil {
		p.log.WithError(err).WithField("industry", industry).Warn("benchmark lookup failed")
		return nil, err
	}
	if bm.Industry == "" {
		return nil, nil
	}
	return &bm, nil
}

// doJSONRequest retries transient failures and 5xx responses with
// exponential backoff, then decodes the body into target.
func doJSONRequest(req *http.Request, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second

	var lastErr error

	operation := func() error {
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode == http.StatusNotFound {
			lastErr = fmt.Errorf("benchmark not found")
			return backoff.Permanent(lastErr)
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %s", body)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("client error %d: %s", resp.StatusCode, body)
			return backoff.Permanent(lastErr)
		}

		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v", err)
			return backoff.Permanent(lastErr)
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, req.Context())); err != nil {
		return lastErr
	}
	return nil
}

// StaticProvider serves a fixed benchmark table, keyed by lower-cased
// industry name. Used for tests and offline runs.
type StaticProvider struct {
	benchmarks map[string]types.IndustryBenchmark
}

func NewStaticProvider(benchmarks []types.IndustryBenchmark) *StaticProvider {
	m := make(map[string]types.IndustryBenchmark, len(benchmarks))
	for _, b := range benchmarks {
		m[strings.ToLower(b.Industry)] = b
	}
	return &StaticProvider{benchmarks: m}
}

func (p *StaticProvider) Lookup(_ context.Context, industry string) (*types.IndustryBenchmark, error) {
	b, ok := p.benchmarks[strings.ToLower(industry)]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// DefaultBenchmarks are rough cross-industry reference points on the
// 0-10 maturity scale.
func DefaultBenchmarks() []types.IndustryBenchmark {
	return []types.IndustryBenchmark{
		{Industry: "technology", AverageMaturityLevel: 6.5, OrganizationCount: 240},
		{Industry: "financial_services", AverageMaturityLevel: 5.8, OrganizationCount: 180},
		{Industry: "marketing_advertising", AverageMaturityLevel: 5.5, OrganizationCount: 150},
		{Industry: "healthcare", AverageMaturityLevel: 4.6, OrganizationCount: 130},
		{Industry: "manufacturing", AverageMaturityLevel: 4.2, OrganizationCount: 160},
		{Industry: "retail", AverageMaturityLevel: 4.8, OrganizationCount: 140},
	}
}
