package routers

import (
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	// Patient-facing booking flow
	router.Post("/", appointmentController.CreateBooking)
	router.Post("/payment/verification", appointmentController.VerifyPayment)
	router.Post("/confirm", appointmentController.ConfirmAppointment)

	// Staff-only administration
	router.Group(func(r chi.Router) {
		r.Use(middlewares.AdminAPIKey)
		r.Get("/", appointmentController.ListAppointments)
		r.Put("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
		r.Delete("/{appointmentID}", appointmentController.DeleteAppointment)
	})
}
