package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "Pending"
	AppointmentStatusAccepted AppointmentStatus = "Accepted"
	AppointmentStatusRejected AppointmentStatus = "Rejected"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// DoctorSnapshot is the denormalized doctor name pair embedded in each
// appointment. It may go stale if the doctor is renamed; the stable reference
// is DoctorID on the appointment itself.
type DoctorSnapshot struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Appointment is the durable booking record. Payment fields are write-once at
// creation; only Status is mutable afterwards.
type Appointment struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName         string             `json:"firstName" bson:"firstName"`
	LastName          string             `json:"lastName" bson:"lastName"`
	Email             string             `json:"email" bson:"email"`
	Phone             string             `json:"phone" bson:"phone"`
	NIC               string             `json:"nic" bson:"nic"`
	DOB               string             `json:"dob" bson:"dob"`
	Gender            string             `json:"gender" bson:"gender"`
	AppointmentDate   string             `json:"appointment_date" bson:"appointment_date"`
	Department        string             `json:"department" bson:"department"`
	Doctor            DoctorSnapshot     `json:"doctor" bson:"doctor"`
	DoctorID          primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	HasVisited        bool               `json:"hasVisited" bson:"hasVisited"`
	Address           string             `json:"address" bson:"address"`
	Status            AppointmentStatus  `json:"status" bson:"status"`
	PaymentStatus     PaymentStatus      `json:"paymentStatus" bson:"paymentStatus"`
	RazorpayPaymentID string             `json:"razorpayPaymentId,omitempty" bson:"razorpayPaymentId,omitempty"`
	RazorpayOrderID   string             `json:"razorpayOrderId,omitempty" bson:"razorpayOrderId,omitempty"`
	TimeModel         `bson:",inline"`
}
