package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/goccy/go-json"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

const requestTimeout = 3 * time.Second

// ProfileIndex stores profile views in an Elasticsearch index keyed by profile id.
type ProfileIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewProfileIndex(es *elasticsearch.Client, index string) *ProfileIndex {
	return &ProfileIndex{es: es, index: index}
}

var _ application.ProfileIndex = (*ProfileIndex)(nil)

func (p *ProfileIndex) Index(ctx context.Context, v view.Profile) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: p.index, DocumentID: v.IDProfile, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, p.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// Remove tolerates documents that were never indexed.
func (p *ProfileIndex) Remove(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: p.index, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, p.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match over name and bio, name weighted higher.
func (p *ProfileIndex) Search(ctx context.Context, q string, size int) ([]view.Profile, error) {
	b, err := json.Marshal(buildQuery(q, size))
	if err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := p.es.Search(
		p.es.Search.WithContext(c),
		p.es.Search.WithIndex(p.index),
		p.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}
	return decodeHits(res.Body)
}

func buildQuery(q string, size int) map[string]any {
	if q == "" {
		return map[string]any{"query": map[string]any{"match_all": map[string]any{}}, "size": size}
	}
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "bio"},
			},
		},
		"size": size,
	}
}

type searchResult struct {
	Hits struct {
		Hits []struct {
			ID     string       `json:"_id"`
			Source view.Profile `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func decodeHits(r io.Reader) ([]view.Profile, error) {
	var parsed searchResult
	if err := json.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]view.Profile, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
