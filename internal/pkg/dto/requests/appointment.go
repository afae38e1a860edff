package requests

// BookAppointment is the raw booking submission. Validation tags mirror the
// patient form rules: twelve mandatory fields, names of at least three
// characters, a well-formed email, an 11-digit phone number and a 13-digit
// national identity number.
type BookAppointment struct {
	FirstName       string `json:"firstName" validate:"required,min=3"`
	LastName        string `json:"lastName" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,numeric,len=11"`
	NIC             string `json:"nic" validate:"required,numeric,len=13"`
	DOB             string `json:"dob" validate:"required"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Department      string `json:"department" validate:"required"`
	DoctorFirstName string `json:"doctor_firstName" validate:"required"`
	DoctorLastName  string `json:"doctor_lastName" validate:"required"`
	Address         string `json:"address" validate:"required"`
	HasVisited      bool   `json:"hasVisited"`
}

// ConfirmAppointment carries the original booking fields plus the gateway's
// proof of payment. The proof is re-verified and the doctor re-resolved
// before anything is persisted.
type ConfirmAppointment struct {
	BookAppointment
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Rejected"`
}

// AppointmentQuery is the sparse admin filter. Empty fields mean "no
// constraint"; Status and HasVisited additionally treat the sentinel "All"
// as unconstrained.
type AppointmentQuery struct {
	Status          string
	AppointmentDate string
	Doctor          string
	Department      string
	HasVisited      string
	PatientName     string
}
