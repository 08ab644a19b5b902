package appointments

import "time"

type CreateAppointmentRequest struct {
	ServiceID       *int64    `json:"serviceId"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
	Notes           string    `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
