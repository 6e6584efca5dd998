package model

// PaymentCustomer maps the buyer onto the gateway's expected customer shape.
type PaymentCustomer struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Zipcode     string `json:"zipcode"`
}

// PaymentRequest is the order descriptor sent to the payment gateway.
type PaymentRequest struct {
	StoreID     string          `json:"storeId"`
	ChannelKey  string          `json:"channelKey"`
	PaymentID   string          `json:"paymentId"`
	OrderName   string          `json:"orderName"`
	TotalAmount int64           `json:"totalAmount"`
	Currency    string          `json:"currency"`
	PayMethod   string          `json:"payMethod"`
	Customer    PaymentCustomer `json:"customer"`
}

// PaymentResponse carries the gateway verdict. A nil Code means success;
// a non-nil Code is a gateway-reported failure with a human-readable Message.
type PaymentResponse struct {
	Code      *string `json:"code"`
	Message   string  `json:"message,omitempty"`
	PaymentID string  `json:"paymentId,omitempty"`
	TxID      string  `json:"txId,omitempty"`
}
