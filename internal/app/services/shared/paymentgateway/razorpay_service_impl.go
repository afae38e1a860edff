package paymentgateway

import (
	"bytes"
	"context"
	"fmt"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/responses"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type createOrderPayload struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayService struct {
	baseUrl    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        *zap.Logger
}

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) PaymentGatewayService {
	return &razorpayService{
		baseUrl:   internalConfig.PaymentGateway.BaseUrl,
		keyID:     internalConfig.PaymentGateway.KeyID,
		keySecret: internalConfig.PaymentGateway.KeySecret,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.App.PaymentGatewayRequestTimeoutInSeconds) * time.Second,
		},
		log: logger,
	}
}

func (s *razorpayService) KeyID() string {
	return s.keyID
}

// CreateOrder reserves the amount gateway-side. The gateway keeps the order
// even if this process fails afterwards; reconciliation of such orphans is
// out of scope here.
func (s *razorpayService) CreateOrder(ctx context.Context, amount int, currency string) (*responses.PaymentOrder, error) {
	payload := createOrderPayload{
		Amount:   amount * 100,
		Currency: currency,
		Receipt:  utils.GenerateReceiptLabel(constvars.ReceiptLabelPrefix),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseUrl+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}
	req.SetBasicAuth(s.keyID, s.keySecret)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.log.Error("razorpayService.CreateOrder gateway rejected order",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("gateway_body", raw),
		)
		return nil, exceptions.ErrPaymentGateway(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	order := new(responses.PaymentOrder)
	if err := json.NewDecoder(resp.Body).Decode(order); err != nil {
		return nil, exceptions.ErrPaymentGatewayResponse(err)
	}

	s.log.Info("razorpayService.CreateOrder order created",
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.Int(constvars.LoggingAmountKey, order.Amount),
		zap.String("receipt", order.Receipt),
	)
	return order, nil
}
