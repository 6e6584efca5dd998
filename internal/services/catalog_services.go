package services

import (
	"strings"

	"FigureShopAPI/internal/model"
	"FigureShopAPI/internal/repository"
)

// CategoryAll is the filter selection matching every category.
const CategoryAll = "All"

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(r *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: r}
}

// Browse returns the catalog subset matching the selected category and the
// free-text query, preserving catalog order. An empty or "All" category
// matches everything; the query is a case-insensitive substring of the
// product name or manufacturer, with an empty query matching everything.
func (s *CatalogService) Browse(category, query string) []model.Product {
	q := strings.ToLower(query)
	out := []model.Product{}
	for _, p := range s.Repo.List() {
		if category != "" && category != CategoryAll && string(p.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Manufacturer), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
