package interfaces

import (
	"context"

	"barberapp/internal/domain/entities"
)

// IAppointmentRepository abstracts persistence of appointments.
//
// Appointments are never deleted; only their status changes after creation.
// GetByID and UpdateStatus return a zero Appointment (ID == "") for unknown ids.
// Create fails with ErrDuplicateID when the id is already taken.

type IAppointmentRepository interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
}
