package services

import (
	"FigureShopAPI/internal/model"
	"FigureShopAPI/internal/repository"
)

// CartService owns the per-session cart. Every mutation persists the full
// cart snapshot before returning. Operations are total over their inputs:
// absent ids are no-ops, not errors.
type CartService struct {
	Repo        *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(r *repository.CartRepository, cr *repository.CatalogRepository) *CartService {
	return &CartService{Repo: r, CatalogRepo: cr}
}

// Add puts one unit of the product in the cart. An existing line for the
// same product is incremented rather than duplicated. Adding a sold-out
// figure is a no-op.
func (s *CartService) Add(sessionID, productID string) (*model.CartResponse, error) {
	p, err := s.CatalogRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	lines := s.Repo.Load(sessionID)
	if p.StockStatus == model.StockSoldOut {
		return cartResponse(lines), nil
	}

	merged := false
	for i := range lines {
		if lines[i].Product.ID == p.ID {
			lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, model.CartLine{Product: *p, Quantity: 1})
	}

	if err := s.Repo.Save(sessionID, lines); err != nil {
		return nil, err
	}
	return cartResponse(lines), nil
}

// Update adjusts a line's quantity by delta, clamped at zero. A line that
// reaches zero is removed. An absent id leaves the cart unchanged.
func (s *CartService) Update(sessionID, productID string, delta int) (*model.CartResponse, error) {
	lines := s.Repo.Load(sessionID)

	out := lines[:0]
	for _, l := range lines {
		if l.Product.ID == productID {
			l.Quantity += delta
			if l.Quantity <= 0 {
				continue
			}
		}
		out = append(out, l)
	}

	if err := s.Repo.Save(sessionID, out); err != nil {
		return nil, err
	}
	return cartResponse(out), nil
}

// Remove drops the line for the given product id if present.
func (s *CartService) Remove(sessionID, productID string) (*model.CartResponse, error) {
	lines := s.Repo.Load(sessionID)

	out := lines[:0]
	for _, l := range lines {
		if l.Product.ID != productID {
			out = append(out, l)
		}
	}

	if err := s.Repo.Save(sessionID, out); err != nil {
		return nil, err
	}
	return cartResponse(out), nil
}

// Clear empties the cart.
func (s *CartService) Clear(sessionID string) error {
	return s.Repo.Clear(sessionID)
}

// Get returns the cart (items + total).
func (s *CartService) Get(sessionID string) *model.CartResponse {
	return cartResponse(s.Repo.Load(sessionID))
}

func cartResponse(lines []model.CartLine) *model.CartResponse {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return &model.CartResponse{Items: lines, Total: model.Total(lines)}
}
