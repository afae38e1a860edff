package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Appointment messages
	BookingCreatedSuccess     = "payment order created successfully"
	PaymentVerifiedSuccess    = "payment verified successfully"
	AppointmentBookedSuccess  = "appointment booked successfully"
	AppointmentListSuccess    = "appointments fetched successfully"
	AppointmentUpdatedSuccess = "appointment status updated"
	AppointmentDeletedSuccess = "appointment deleted"
)
