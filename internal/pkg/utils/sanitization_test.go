package utils

import (
	"hospicare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBookAppointmentRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.BookAppointment{
			Email: "  RAVI.SHARMA@EXAMPLE.COM  ",
		}

		SanitizeBookAppointmentRequest(request)

		assert.Equal(t, "ravi.sharma@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Whitespace Trimming", func(t *testing.T) {
		request := &requests.BookAppointment{
			FirstName:       "  Ravi  ",
			LastName:        "  Sharma  ",
			Phone:           " 03001234567 ",
			NIC:             " 3520212345671 ",
			Department:      "  Cardiology  ",
			DoctorFirstName: " Asha ",
			DoctorLastName:  " Menon ",
			Address:         "  12 Canal Road  ",
		}

		SanitizeBookAppointmentRequest(request)

		assert.Equal(t, "Ravi", request.FirstName)
		assert.Equal(t, "Sharma", request.LastName)
		assert.Equal(t, "03001234567", request.Phone)
		assert.Equal(t, "3520212345671", request.NIC)
		assert.Equal(t, "Cardiology", request.Department)
		assert.Equal(t, "Asha", request.DoctorFirstName)
		assert.Equal(t, "Menon", request.DoctorLastName)
		assert.Equal(t, "12 Canal Road", request.Address)
	})

	t.Run("Case Preserved Outside Email", func(t *testing.T) {
		request := &requests.BookAppointment{
			FirstName:  "RaVi",
			Department: "Physical Therapy",
		}

		SanitizeBookAppointmentRequest(request)

		assert.Equal(t, "RaVi", request.FirstName, "names are trimmed, never case-folded")
		assert.Equal(t, "Physical Therapy", request.Department, "interior spaces survive")
	})
}

func TestSanitizePaymentVerificationRequest(t *testing.T) {
	request := &requests.PaymentVerification{
		RazorpayOrderID:   "  order_N8qs2LT3  ",
		RazorpayPaymentID: " pay_K1xzP0aa ",
		RazorpaySignature: " deadbeef ",
	}

	SanitizePaymentVerificationRequest(request)

	assert.Equal(t, "order_N8qs2LT3", request.RazorpayOrderID)
	assert.Equal(t, "pay_K1xzP0aa", request.RazorpayPaymentID)
	assert.Equal(t, "deadbeef", request.RazorpaySignature)
}

func TestSanitizeConfirmAppointmentRequest(t *testing.T) {
	request := &requests.ConfirmAppointment{
		BookAppointment: requests.BookAppointment{
			Email: " USER@DOMAIN.ORG ",
		},
		RazorpayOrderID:   " order_N8qs2LT3 ",
		RazorpaySignature: " deadbeef ",
	}

	SanitizeConfirmAppointmentRequest(request)

	assert.Equal(t, "user@domain.org", request.Email, "embedded booking fields should also be sanitized")
	assert.Equal(t, "order_N8qs2LT3", request.RazorpayOrderID)
	assert.Equal(t, "deadbeef", request.RazorpaySignature)
}
