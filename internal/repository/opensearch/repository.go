package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/usage-billing-api/internal/config"
	"github.com/kingrain94/usage-billing-api/internal/domain"
)

const maxListEntries = 1000

type Repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) *Repository {
	return &Repository{
		client: client,
		config: config,
	}
}

// ListEntries returns the indexed chunks of one document.
func (r *Repository) ListEntries(ctx context.Context, tenantID, docName string) ([]domain.KnowledgeEntry, error) {
	query := map[string]any{
		"size":  maxListEntries,
		"query": createTermQuery("doc_name", docName),
		"sort": []map[string]any{
			{"created_at": map[string]any{"order": "asc"}},
		},
	}

	hits, err := r.search(ctx, tenantID, query)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.KnowledgeEntry, 0, len(hits))
	for _, hit := range hits {
		entries = append(entries, hit.KnowledgeEntry)
	}
	return entries, nil
}

func (r *Repository) Search(ctx context.Context, tenantID, text string, size int) ([]domain.KnowledgeHit, error) {
	if size <= 0 {
		size = 10
	}
	query := map[string]any{
		"size":  size,
		"query": createMatchQuery("content", text),
	}
	return r.search(ctx, tenantID, query)
}

// DeleteDocEntries removes every chunk of docName and reports how many went.
// A missing index counts as nothing to delete.
func (r *Repository) DeleteDocEntries(ctx context.Context, tenantID, docName string) (int64, error) {
	body, err := json.Marshal(map[string]any{
		"query": createTermQuery("doc_name", docName),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal query: %w", err)
	}

	refresh := true
	req := opensearchapi.DeleteByQueryRequest{
		Index:   []string{r.config.GetIndexName(tenantID)},
		Body:    strings.NewReader(string(body)),
		Refresh: &refresh,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if res.IsError() {
		return 0, fmt.Errorf("delete by query failed: %s", res.String())
	}

	var result struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Deleted, nil
}

func (r *Repository) search(ctx context.Context, tenantID string, query map[string]any) ([]domain.KnowledgeHit, error) {
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []domain.KnowledgeHit{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				ID     string                `json:"_id"`
				Score  float64               `json:"_score"`
				Source domain.KnowledgeEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	hits := make([]domain.KnowledgeHit, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		entry := hit.Source
		if entry.ID == "" {
			entry.ID = hit.ID
		}
		hits = append(hits, domain.KnowledgeHit{KnowledgeEntry: entry, Score: hit.Score})
	}
	return hits, nil
}

func createTermQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

func createMatchQuery(field, value string) map[string]any {
	return map[string]any{
		"match": map[string]any{
			field: value,
		},
	}
}

func (r *Repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"doc_name": { "type": "keyword" },
				"content": { "type": "text" },
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

// CreateIndex creates the tenant's knowledge index unless it already exists.
func (r *Repository) CreateIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexName(tenantID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
