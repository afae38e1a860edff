package appointments

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/app/services/shared/ratelimiter"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type AppointmentUsecase interface {
	// CreateBooking validates doctor and department and issues a payment
	// order with the gateway. No appointment is persisted yet.
	CreateBooking(ctx context.Context, request *requests.BookAppointment) (*responses.CreateBookingResponse, error)
	// VerifyPayment checks a gateway proof without persisting anything.
	VerifyPayment(ctx context.Context, request *requests.PaymentVerification) error
	// ConfirmAppointment re-resolves the doctor, re-verifies the payment
	// proof and persists the appointment as Paid/Pending.
	ConfirmAppointment(ctx context.Context, request *requests.ConfirmAppointment) (*models.Appointment, error)
	ListAppointments(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByFilter(ctx context.Context, filter bson.M) ([]models.Appointment, error)
	// UpdateStatusByID replaces only the status field. It reports whether a
	// matching document existed.
	UpdateStatusByID(ctx context.Context, appointmentID string, status models.AppointmentStatus) (bool, error)
	// DeleteByID reports whether a matching document existed.
	DeleteByID(ctx context.Context, appointmentID string) (bool, error)
}

// VerificationLimiter caps signature verification attempts per order.
type VerificationLimiter interface {
	Allow(ctx context.Context, resource string) (*ratelimiter.Decision, error)
}
