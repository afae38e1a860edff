package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateReceiptLabel builds a reconciliation receipt label from the current
// time in milliseconds, matching the gateway-side receipt convention.
func GenerateReceiptLabel(prefix string) string {
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
