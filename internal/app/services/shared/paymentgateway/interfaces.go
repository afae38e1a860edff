package paymentgateway

import (
	"context"
	"hospicare-service/internal/pkg/dto/responses"
)

// PaymentGatewayService creates orders against the external gateway. Amount
// is in major currency units; the implementation converts to the gateway's
// minor-unit convention.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amount int, currency string) (*responses.PaymentOrder, error)
	KeyID() string
}

// SignatureVerifier decides whether a gateway payment proof is authentic.
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}
