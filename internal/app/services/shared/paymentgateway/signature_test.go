package paymentgateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier_Verify(t *testing.T) {
	secret := "rzp_test_secret_xyz"
	verifier := NewSignatureVerifier(&config.InternalConfig{
		App: config.App{Env: "production"},
		PaymentGateway: config.AppPaymentGateway{
			KeySecret: secret,
		},
	})

	orderID := "order_N8qs2LT3"
	paymentID := "pay_K1xzP0aa"
	valid := signFor(secret, orderID, paymentID)

	t.Run("Valid Signature", func(t *testing.T) {
		assert.True(t, verifier.Verify(orderID, paymentID, valid), "exact digest should be accepted")
	})

	t.Run("Single Character Mutation", func(t *testing.T) {
		mutated := []byte(valid)
		if mutated[0] == 'a' {
			mutated[0] = 'b'
		} else {
			mutated[0] = 'a'
		}
		assert.False(t, verifier.Verify(orderID, paymentID, string(mutated)), "mutated digest should be rejected")
	})

	t.Run("Wrong Order ID", func(t *testing.T) {
		assert.False(t, verifier.Verify("order_other", paymentID, valid), "digest over different order id should be rejected")
	})

	t.Run("Wrong Payment ID", func(t *testing.T) {
		assert.False(t, verifier.Verify(orderID, "pay_other", valid), "digest over different payment id should be rejected")
	})

	t.Run("Empty Signature", func(t *testing.T) {
		assert.False(t, verifier.Verify(orderID, paymentID, ""), "empty signature should be rejected")
	})

	t.Run("Uppercase Digest", func(t *testing.T) {
		assert.False(t, verifier.Verify(orderID, paymentID, "ABCDEF"), "comparison is byte-exact, no case folding")
	})
}

func TestSignatureVerifier_TestBypass(t *testing.T) {
	secret := "rzp_test_secret_xyz"
	orderID := "order_N8qs2LT3"
	paymentID := "pay_K1xzP0aa"

	t.Run("Bypass Enabled Outside Production", func(t *testing.T) {
		verifier := NewSignatureVerifier(&config.InternalConfig{
			App: config.App{Env: "development"},
			PaymentGateway: config.AppPaymentGateway{
				KeySecret:          secret,
				AllowTestSignature: true,
			},
		})
		assert.True(t, verifier.Verify(orderID, paymentID, constvars.TestSignatureDummy), "sentinel should be accepted when flag is on and env is not production")
	})

	t.Run("Bypass Flag Off", func(t *testing.T) {
		verifier := NewSignatureVerifier(&config.InternalConfig{
			App: config.App{Env: "development"},
			PaymentGateway: config.AppPaymentGateway{
				KeySecret: secret,
			},
		})
		assert.False(t, verifier.Verify(orderID, paymentID, constvars.TestSignatureDummy), "sentinel should be rejected when flag is off")
	})

	t.Run("Bypass Ignored In Production", func(t *testing.T) {
		verifier := NewSignatureVerifier(&config.InternalConfig{
			App: config.App{Env: "production"},
			PaymentGateway: config.AppPaymentGateway{
				KeySecret:          secret,
				AllowTestSignature: true,
			},
		})
		assert.False(t, verifier.Verify(orderID, paymentID, constvars.TestSignatureDummy), "production must never honor the sentinel")
	})

	t.Run("Real Signature Still Works With Bypass On", func(t *testing.T) {
		verifier := NewSignatureVerifier(&config.InternalConfig{
			App: config.App{Env: "development"},
			PaymentGateway: config.AppPaymentGateway{
				KeySecret:          secret,
				AllowTestSignature: true,
			},
		})
		assert.True(t, verifier.Verify(orderID, paymentID, signFor(secret, orderID, paymentID)), "real digests stay valid alongside the sentinel")
	})
}
