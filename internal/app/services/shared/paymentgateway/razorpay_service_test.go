package paymentgateway

import (
	"context"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (PaymentGatewayService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	internalConfig := &config.InternalConfig{
		App: config.App{
			PaymentGatewayRequestTimeoutInSeconds: 5,
		},
		PaymentGateway: config.AppPaymentGateway{
			BaseUrl:   server.URL,
			KeyID:     "rzp_test_key_id",
			KeySecret: "rzp_test_key_secret",
			Currency:  "INR",
		},
	}
	return NewRazorpayService(internalConfig, zap.NewNop()), server
}

func TestRazorpayService_CreateOrder(t *testing.T) {
	t.Run("Successful Order", func(t *testing.T) {
		var gotPayload createOrderPayload
		service, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)

			username, password, ok := r.BasicAuth()
			assert.True(t, ok, "request should carry basic auth")
			assert.Equal(t, "rzp_test_key_id", username)
			assert.Equal(t, "rzp_test_key_secret", password)

			err := json.NewDecoder(r.Body).Decode(&gotPayload)
			require.NoError(t, err)

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":       "order_N8qs2LT3",
				"amount":   gotPayload.Amount,
				"currency": gotPayload.Currency,
				"receipt":  gotPayload.Receipt,
				"status":   "created",
			})
		})

		order, err := service.CreateOrder(context.Background(), 1000, "INR")
		require.NoError(t, err)

		assert.Equal(t, 100000, gotPayload.Amount, "major units should be converted to minor units")
		assert.Equal(t, "INR", gotPayload.Currency)
		assert.True(t, strings.HasPrefix(gotPayload.Receipt, constvars.ReceiptLabelPrefix), "receipt should carry the label prefix")

		assert.Equal(t, "order_N8qs2LT3", order.ID)
		assert.Equal(t, 100000, order.Amount)
		assert.Equal(t, "created", order.Status)
	})

	t.Run("Gateway Rejects Order", func(t *testing.T) {
		service, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
		})

		order, err := service.CreateOrder(context.Background(), 500, "INR")
		require.Error(t, err)
		assert.Nil(t, order)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok, "gateway failures should surface as CustomError")
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Malformed Gateway Response", func(t *testing.T) {
		service, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})

		order, err := service.CreateOrder(context.Background(), 500, "INR")
		require.Error(t, err)
		assert.Nil(t, order)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Context Cancelled", func(t *testing.T) {
		service, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.CreateOrder(ctx, 500, "INR")
		require.Error(t, err)
	})
}

func TestRazorpayService_KeyID(t *testing.T) {
	service, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.Equal(t, "rzp_test_key_id", service.KeyID())
}
