package model

// CartLine is one product-and-quantity pairing in the active cart.
// Quantity is always >= 1 while the line is present; a line reduced to 0
// is removed from the cart, never retained.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Total sums price x quantity over all lines. An empty cart totals 0.
func Total(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// CartResponse is returned when calling GET /figure-shop/cart.
type CartResponse struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
}
