package paymentgateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/pkg/constvars"
)

type signatureVerifier struct {
	secret             string
	allowTestSignature bool
}

// NewSignatureVerifier builds the HMAC verifier. The test-signature bypass is
// resolved once at construction: it requires the explicit config flag AND a
// non-production environment, so a production deploy can never honor the
// sentinel regardless of flag value.
func NewSignatureVerifier(internalConfig *config.InternalConfig) SignatureVerifier {
	return &signatureVerifier{
		secret:             internalConfig.PaymentGateway.KeySecret,
		allowTestSignature: internalConfig.PaymentGateway.AllowTestSignature && internalConfig.App.Env != "production",
	}
}

// Verify recomputes HMAC-SHA256(secret, orderID + "|" + paymentID) and
// compares the hex digest against the supplied signature in constant time.
func (v *signatureVerifier) Verify(orderID, paymentID, signature string) bool {
	if v.allowTestSignature && signature == constvars.TestSignatureDummy {
		return true
	}

	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
