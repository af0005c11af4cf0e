// Package explorer implements the product search behind the explorer
// view: a vector-search query against the document store, with a naive
// substring filter over the static catalog when the store comes back
// empty.
package explorer

import (
	"strings"

	"github.com/sirupsen/logrus"

	"shopdesk/internal/domain"
)

type Service struct {
	store    domain.ProductSearcher
	fallback []domain.Product
	log      *logrus.Logger
}

func New(store domain.ProductSearcher, fallback []domain.Product, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{store: store, fallback: fallback, log: log}
}

// Search queries the document store; when the store errors the result is
// empty, and when it returns no documents the static catalog is filtered
// instead. The localized product name for lang is matched alongside
// category and description.
func (s *Service) Search(query, lang string) []domain.Product {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	if s.store != nil {
		results, err := s.store.QueryProducts(trimmed)
		if err != nil {
			s.log.WithError(err).Error("product search failed")
			return nil
		}
		if len(results) > 0 {
			return results
		}
	}
	return s.filterFallback(trimmed, lang)
}

func (s *Service) filterFallback(query, lang string) []domain.Product {
	terms := strings.Fields(strings.ToLower(query))
	var out []domain.Product
	for _, p := range s.fallback {
		name := strings.ToLower(p.LocalizedName(lang))
		category := strings.ToLower(p.Category)
		description := strings.ToLower(p.Description)
		for _, term := range terms {
			if strings.Contains(name, term) || strings.Contains(category, term) || strings.Contains(description, term) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
