package repository

import (
	"encoding/json"

	"FigureShopAPI/internal/model"
)

const lastOrderKeyPrefix = "last-order/"

// OrderRepository persists the most recent order confirmation per session.
// Each successful checkout overwrites the previous record.
type OrderRepository struct {
	Store KVStore
}

func NewOrderRepository(s KVStore) *OrderRepository {
	return &OrderRepository{Store: s}
}

func (r *OrderRepository) SaveLastOrder(sessionID string, oc model.OrderConfirmation) error {
	raw, err := json.Marshal(oc)
	if err != nil {
		return err
	}
	return r.Store.Set(lastOrderKeyPrefix+sessionID, string(raw))
}

// GetLastOrder returns the last confirmation for a session. Missing or
// corrupt data reads as absent.
func (r *OrderRepository) GetLastOrder(sessionID string) (*model.OrderConfirmation, bool) {
	raw, ok := r.Store.Get(lastOrderKeyPrefix + sessionID)
	if !ok {
		return nil, false
	}
	var oc model.OrderConfirmation
	if err := json.Unmarshal([]byte(raw), &oc); err != nil {
		return nil, false
	}
	return &oc, true
}
