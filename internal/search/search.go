package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/kitlab/jersey-shop/internal/models"
	"github.com/kitlab/jersey-shop/internal/repo"
	"github.com/kitlab/jersey-shop/pkg/logging"
)

const DefaultIndex = "products"

// Service matches a query against product name and model. With an ES
// client configured it runs a multi_match query; otherwise, or when ES
// fails, it falls back to an escaped LIKE scan in the database so the
// endpoint keeps working.
type Service struct {
	ES    *elasticsearch.Client
	Index string
	Repo  *repo.GormRepo
}

func (s *Service) Search(ctx context.Context, query string) ([]models.Product, error) {
	if s.ES != nil {
		items, err := s.searchES(ctx, query)
		if err == nil {
			return items, nil
		}
		logging.FromContext(ctx).Warn("es_search_failed_falling_back", "error", err)
	}
	return s.Repo.SearchProducts(ctx, query)
}

func (s *Service) searchES(ctx context.Context, query string) ([]models.Product, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"name^2", "model"},
			},
		},
		"sort": []any{
			map[string]any{"createdAt": map[string]any{"order": "desc"}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	index := s.Index
	if index == "" {
		index = DefaultIndex
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(index),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	items := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return items, nil
}
