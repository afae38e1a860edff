package utils

import (
	"hospicare-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.NIC = strings.TrimSpace(input.NIC)
	input.DOB = strings.TrimSpace(input.DOB)
	input.Gender = strings.TrimSpace(input.Gender)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.Department = strings.TrimSpace(input.Department)
	input.DoctorFirstName = strings.TrimSpace(input.DoctorFirstName)
	input.DoctorLastName = strings.TrimSpace(input.DoctorLastName)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizePaymentVerificationRequest(input *requests.PaymentVerification) {
	input.RazorpayOrderID = strings.TrimSpace(input.RazorpayOrderID)
	input.RazorpayPaymentID = strings.TrimSpace(input.RazorpayPaymentID)
	input.RazorpaySignature = strings.TrimSpace(input.RazorpaySignature)
}

func SanitizeConfirmAppointmentRequest(input *requests.ConfirmAppointment) {
	SanitizeBookAppointmentRequest(&input.BookAppointment)
	input.RazorpayOrderID = strings.TrimSpace(input.RazorpayOrderID)
	input.RazorpayPaymentID = strings.TrimSpace(input.RazorpayPaymentID)
	input.RazorpaySignature = strings.TrimSpace(input.RazorpaySignature)
}
