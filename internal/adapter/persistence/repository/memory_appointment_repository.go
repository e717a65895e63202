package repository

import (
	"context"
	"sync"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"
)

// MemoryAppointmentRepository keeps appointments in insertion order.
type MemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments []entities.Appointment
	latency      interfaces.ILatencyPolicy
}

var _ interfaces.IAppointmentRepository = (*MemoryAppointmentRepository)(nil)

func NewMemoryAppointmentRepository(latency interfaces.ILatencyPolicy, seed []entities.Appointment) *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{
		appointments: append([]entities.Appointment(nil), seed...),
		latency:      latency,
	}
}

func (r *MemoryAppointmentRepository) wait(ctx context.Context) error {
	if r.latency == nil {
		return ctx.Err()
	}
	return r.latency.Wait(ctx)
}

func (r *MemoryAppointmentRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Appointment(nil), r.appointments...), nil
}

func (r *MemoryAppointmentRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	if err := r.wait(ctx); err != nil {
		return entities.Appointment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.appointments[i], nil
	}
	return entities.Appointment{}, nil
}

func (r *MemoryAppointmentRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := r.wait(ctx); err != nil {
		return entities.Appointment{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(a.ID) >= 0 {
		return entities.Appointment{}, interfaces.ErrDuplicateID
	}
	r.appointments = append(r.appointments, a)
	return a, nil
}

func (r *MemoryAppointmentRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	if err := r.wait(ctx); err != nil {
		return entities.Appointment{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return entities.Appointment{}, nil
	}
	r.appointments[i].Status = status
	return r.appointments[i], nil
}

func (r *MemoryAppointmentRepository) indexOf(id string) int {
	for i, a := range r.appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}
