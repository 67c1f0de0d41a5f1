package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffanybuu/cs466-project/config"
	"github.com/tiffanybuu/cs466-project/internal/nussinov"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()

	conf, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	conf.Server.Mode = "test"
	if mutate != nil {
		mutate(conf)
	}
	return New(conf)
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestFold(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name          string
		target        string
		wantScore     int
		wantPairings  []nussinov.Pairing
		wantStructure string
	}{
		{
			"nested stem",
			"/nussinov?rna=GCGC",
			2,
			[]nussinov.Pairing{{I: 0, J: 3}, {I: 1, J: 2}},
			"(())",
		},
		{
			"explicit min loop",
			"/nussinov?rna=GC&minloop=0",
			1,
			[]nussinov.Pairing{{I: 0, J: 1}},
			"()",
		},
		{
			"loop too short to close",
			"/nussinov?rna=GC&minloop=1",
			0,
			[]nussinov.Pairing{},
			"..",
		},
		{
			"parameter aliases",
			"/nussinov?sequence=gc&minLoop=1",
			0,
			[]nussinov.Pairing{},
			"..",
		},
		{
			"nothing pairs",
			"/nussinov?rna=AAAA",
			0,
			[]nussinov.Pairing{},
			"....",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(s, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var got nussinov.Result
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantScore, got.MaxScore)
			assert.Equal(t, tt.wantPairings, got.Pairings)
			assert.Equal(t, tt.wantStructure, got.DashStructure)
			assert.Len(t, got.DPTable, len(tt.wantStructure))
			assert.Nil(t, got.Trace)
		})
	}
}

func TestFold_body(t *testing.T) {
	rec := get(newTestServer(t, nil), "/nussinov?rna=GCGC&minloop=0")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{
		"dpTable": [[0,1,1,2],[0,0,1,1],[0,0,0,1],[0,0,0,0]],
		"maxScore": 2,
		"pairings": [[0,3],[1,2]],
		"dashStructure": "(())"
	}`, rec.Body.String())
}

func TestFold_trace(t *testing.T) {
	rec := get(newTestServer(t, nil), "/nussinov?rna=AUGC&trace=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var got nussinov.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []nussinov.Step{
		{"0-3": 0},
		{"2-3": 1, "0-1": 2},
		{"2-3": 1, "1-0": 2},
		{"3-2": 1},
	}, got.Trace)
}

func TestFold_rejected(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Server.MaxLength = 10
	})

	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{"missing sequence", "/nussinov", CodeMissingSequence},
		{"missing sequence with a min loop", "/nussinov?minloop=3", CodeMissingSequence},
		{"empty sequence", "/nussinov?rna=", CodeMissingSequence},
		{"letters in min loop", "/nussinov?rna=GCGC&minloop=abc", CodeInvalidMinLoop},
		{"negative min loop", "/nussinov?rna=GCGC&minloop=-1", CodeInvalidMinLoop},
		{"empty min loop", "/nussinov?rna=GCGC&minloop=", CodeInvalidMinLoop},
		{"fractional min loop", "/nussinov?rna=GCGC&minloop=1.5", CodeInvalidMinLoop},
		{"min loop overflows", "/nussinov?rna=GCGC&minloop=99999999999999999999999", CodeInvalidMinLoop},
		{"digits in sequence", "/nussinov?rna=GC1GC", CodeInvalidSequence},
		{"sequence over the length limit", "/nussinov?rna=GCGCGCGCGCGC", CodeSequenceTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(s, tt.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var got RequestError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantCode, got.Code)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestFold_missingSequenceMessage(t *testing.T) {
	rec := get(newTestServer(t, nil), "/nussinov")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `No RNA strand specified for query parameter \"rna\"`)
}

func TestFold_defaultMinLoop(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Fold.MinLoop = 1
	})

	var got nussinov.Result
	rec := get(s, "/nussinov?rna=GC")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "..", got.DashStructure)
}

func TestFold_concurrent(t *testing.T) {
	s := newTestServer(t, nil)
	want := get(s, "/nussinov?rna=GUUUCCAUCCCCGUGAGGGGAAUAAGUGUUUUGAA").Body.String()

	var wg sync.WaitGroup
	bodies := make([]string, 16)
	for i := range bodies {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bodies[i] = get(s, "/nussinov?rna=GUUUCCAUCCCCGUGAGGGGAAUAAGUGUUUUGAA").Body.String()
		}(i)
	}
	wg.Wait()

	for _, body := range bodies {
		assert.Equal(t, want, body)
	}
}

func TestMiddleware(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Server.CORSOrigin = "http://localhost:3000"
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(s, "/healthz")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), "an ID is generated when the client sends none")
}

func TestHome(t *testing.T) {
	rec := get(newTestServer(t, nil), "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/nussinov"`)
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, nil)
	get(s, "/nussinov?rna=GCGC")
	get(s, "/nussinov")

	rec := get(s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `nussinov_http_requests_total{code="200",method="GET",route="/nussinov"} 1`)
	assert.Contains(t, body, `nussinov_http_requests_total{code="400",method="GET",route="/nussinov"} 1`)
	assert.Contains(t, body, "nussinov_fold_duration_seconds_count 1")
}

func TestRun(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Server.Addr = "127.0.0.1:0"
	})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- s.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't shut down")
	}
}
