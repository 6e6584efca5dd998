package repository

import (
	"encoding/json"

	"FigureShopAPI/internal/model"
)

const cartKeyPrefix = "figure-shop-cart/"

// CartRepository persists the active cart to the durable store under a fixed
// per-session key. The full cart is serialized on every mutation.
type CartRepository struct {
	Store KVStore
}

func NewCartRepository(s KVStore) *CartRepository {
	return &CartRepository{Store: s}
}

// Load hydrates the persisted cart for a session. Missing or corrupt data
// yields an empty cart, never an error.
func (r *CartRepository) Load(sessionID string) []model.CartLine {
	raw, ok := r.Store.Get(cartKeyPrefix + sessionID)
	if !ok {
		return nil
	}
	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil
	}
	return lines
}

// Save writes the full cart snapshot for a session.
func (r *CartRepository) Save(sessionID string, lines []model.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.Store.Set(cartKeyPrefix+sessionID, string(raw))
}

// Clear drops the persisted cart for a session.
func (r *CartRepository) Clear(sessionID string) error {
	return r.Store.Delete(cartKeyPrefix + sessionID)
}
