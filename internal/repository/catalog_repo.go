package repository

import (
	"errors"

	"FigureShopAPI/internal/model"
)

// CatalogRepository exposes the static figure catalog. There are no mutation
// operations; stock status is display metadata and never decremented.
type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// List returns the full catalog in display order.
func (r *CatalogRepository) List() []model.Product {
	out := make([]model.Product, len(catalog))
	copy(out, catalog)
	return out
}

// GetByID returns the product with the given id.
func (r *CatalogRepository) GetByID(id string) (*model.Product, error) {
	for _, p := range catalog {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, errors.New("product not found")
}

var catalog = []model.Product{
	{
		ID:           "1",
		Name:         "Iron Man Mark LXXXV",
		Category:     model.CategoryMarvel,
		Price:        450000,
		Scale:        "1/6",
		Manufacturer: "Hot Toys",
		Edition:      "Diecast Limited Edition",
		StockStatus:  model.StockInStock,
		Image:        "https://images.unsplash.com/photo-1559535332-db9971090158?w=800",
	},
	{
		ID:           "2",
		Name:         "Spider-Man (Black & Gold Suit)",
		Category:     model.CategoryMarvel,
		Price:        320000,
		Scale:        "1/6",
		Manufacturer: "Hot Toys",
		Edition:      "Regular Edition",
		StockStatus:  model.StockLow,
		Image:        "https://images.unsplash.com/photo-1635805737707-575885ab0820?w=800",
	},
	{
		ID:           "3",
		Name:         "Saber Artoria Pendragon",
		Category:     model.CategoryAnime,
		Price:        280000,
		Scale:        "1/7",
		Manufacturer: "Good Smile Company",
		Edition:      "Deluxe Edition",
		StockStatus:  model.StockInStock,
		Image:        "https://images.unsplash.com/photo-1627672360124-4ed09583e14c?w=800",
	},
	{
		ID:           "4",
		Name:         "Monkey D. Luffy (Gear 5)",
		Category:     model.CategoryAnime,
		Price:        150000,
		Scale:        "Non-scale",
		Manufacturer: "Bandai Spirits",
		Edition:      "First Press Edition",
		StockStatus:  model.StockSoldOut,
		Image:        "https://images.unsplash.com/photo-1621437145747-920f66dbb367?w=800",
	},
	{
		ID:           "5",
		Name:         "Elden Ring Malenia",
		Category:     model.CategoryGame,
		Price:        580000,
		Scale:        "1/4",
		Manufacturer: "PureArts",
		Edition:      "Collector's Edition",
		StockStatus:  model.StockInStock,
		Image:        "https://images.unsplash.com/photo-1612287230202-1ff1d85d1bdf?w=800",
	},
	{
		ID:           "6",
		Name:         "God of War Kratos & Atreus",
		Category:     model.CategoryGame,
		Price:        890000,
		Scale:        "1/4",
		Manufacturer: "Prime 1 Studio",
		Edition:      "Ultimate Edition",
		StockStatus:  model.StockLow,
		Image:        "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=800",
	},
}
