package model

import "time"

// OrderForm holds the buyer details collected at checkout.
// All four fields must be non-empty for the pay action to proceed.
type OrderForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// OrderConfirmation is the durable record created upon a successful payment.
// It snapshots the cart and buyer at the moment of purchase and is never
// merged with later orders.
type OrderConfirmation struct {
	OrderID    string     `json:"orderId"`
	Items      []CartLine `json:"items"`
	TotalPrice int64      `json:"totalPrice"`
	Date       time.Time  `json:"date"`
	Buyer      OrderForm  `json:"buyer"`
}
