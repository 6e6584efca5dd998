package model

type Category string

const (
	CategoryMarvel Category = "Marvel"
	CategoryAnime  Category = "Anime"
	CategoryGame   Category = "Game"
)

// StockStatus is an advisory display label, not a live inventory counter.
type StockStatus string

const (
	StockInStock StockStatus = "IN_STOCK"
	StockLow     StockStatus = "LOW_STOCK"
	StockSoldOut StockStatus = "SOLD_OUT"
)

// Product is one catalog entry. Price is in the smallest currency unit (KRW).
type Product struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     Category    `json:"category"`
	Price        int64       `json:"price"`
	Scale        string      `json:"scale"`
	Manufacturer string      `json:"manufacturer"`
	Edition      string      `json:"edition"`
	StockStatus  StockStatus `json:"stockStatus"`
	Image        string      `json:"image"`
}
