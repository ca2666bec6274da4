package benchmark

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturity-insights-go/internal/types"
)

func TestStaticProviderLookup(t *testing.T) {
	p := NewStaticProvider(DefaultBenchmarks())

	bm, err := p.Lookup(context.Background(), "Technology")
	require.NoError(t, err)
	require.NotNil(t, bm)
	assert.Equal(t, "technology", bm.Industry)
	assert.Greater(t, bm.AverageMaturityLevel, 0.0)

	missing, err := p.Lookup(context.Background(), "basket weaving")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHTTPProviderLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/benchmarks", r.URL.Path)
		assert.Equal(t, "retail", r.URL.Query().Get("industry"))
		json.NewEncoder(w).Encode(types.IndustryBenchmark{
			Industry:             "retail",
			AverageMaturityLevel: 4.8,
			OrganizationCount:    140,
		})
	}))
	defer srv.Close()

	bm, err := NewHTTPProvider(srv.URL, nil).Lookup(context.Background(), "retail")
	require.NoError(t, err)
	require.NotNil(t, bm)
	assert.InDelta(t, 4.8, bm.AverageMaturityLevel, 1e-9)
}

func TestHTTPProviderRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(types.IndustryBenchmark{Industry: "retail", AverageMaturityLevel: 4.8})
	}))
	defer srv.Close()

	bm, err := NewHTTPProvider(srv.URL, nil).Lookup(context.Background(), "retail")
	require.NoError(t, err)
	require.NotNil(t, bm)
	assert.GreaterOrEqual(t, calls, 2)
}

func TestHTTPProviderNotFoundIsPermanent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	bm, err := NewHTTPProvider(srv.URL, nil).Lookup(context.Background(), "retail")
	assert.Error(t, err)
	assert.Nil(t, bm)
	assert.Equal(t, 1, calls)
}

func TestHTTPProviderEmptyBodyMeansUnknownIndustry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	bm, err := NewHTTPProvider(srv.URL, nil).Lookup(context.Background(), "retail")
	require.NoError(t, err)
	assert.Nil(t, bm)
}
