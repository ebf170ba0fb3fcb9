package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

func TestBuildQuery(t *testing.T) {
	q := buildQuery("ada", 5)
	assert.Equal(t, 5, q["size"])
	mm := q["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "ada", mm["query"])
	assert.Equal(t, []string{"name^2", "bio"}, mm["fields"])

	all := buildQuery("", 10)
	assert.Contains(t, all["query"].(map[string]any), "match_all")
}

func TestDecodeHits(t *testing.T) {
	body := `{"hits":{"hits":[
		{"_id":"p1","_source":{"id_profile":"p1","name":"Ada","avatar_url":"x","has_avatar":true}},
		{"_id":"p2","_source":{"id_profile":"p2","name":"Grace"}}
	]}}`
	got, err := decodeHits(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ada", got[0].Name)
	assert.True(t, got[0].HasAvatar)
	assert.Equal(t, "p2", got[1].IDProfile)

	_, err = decodeHits(strings.NewReader("{"))
	assert.Error(t, err)
}

// fakeES answers like a cluster would for the three calls the index makes.
func fakeES(t *testing.T) (*elasticsearch.Client, func() []string) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"result":"not_found"}`))
		case strings.HasSuffix(r.URL.Path, "/_search"):
			_, _ = w.Write([]byte(`{"hits":{"hits":[{"_id":"p1","_source":{"id_profile":"p1","name":"Ada"}}]}}`))
		default:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"result":"created"}`))
		}
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), calls...)
	}
}

func TestProfileIndex_RoundTrip(t *testing.T) {
	es, calls := fakeES(t)
	idx := NewProfileIndex(es, "profiles")
	ctx := context.Background()

	require.NoError(t, idx.Index(ctx, view.Profile{IDProfile: "p1", Name: "Ada"}))
	hits, err := idx.Search(ctx, "ada", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Ada", hits[0].Name)
	require.NoError(t, idx.Remove(ctx, "missing"))

	assert.Equal(t, []string{
		"PUT /profiles/_doc/p1",
		"POST /profiles/_search",
		"DELETE /profiles/_doc/missing",
	}, calls())
}
