package responses

import "hospicare-service/internal/app/models"

type AppointmentResponse struct {
	Appointment *models.Appointment `json:"appointment"`
}

type AppointmentListResponse struct {
	Appointments []models.Appointment `json:"appointments"`
}
