package responses

// PaymentOrder is the gateway-issued order handle. Amount is in minor
// currency units, as returned by the gateway.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status,omitempty"`
}

// CreateBookingResponse is returned to the patient client, which opens the
// gateway checkout with the order id and the publishable key id.
type CreateBookingResponse struct {
	Order *PaymentOrder `json:"order"`
	KeyID string        `json:"key_id"`
}
