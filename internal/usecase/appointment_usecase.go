package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IAppointmentUseCase manages the appointment list shown to admins and the
// public booking flow.
//
// Requested behavior:
//   - Listings are chronological; records with unreadable dates go last.
//   - Any status may be set from any other status.
//   - Bookings start as Pending.
type IAppointmentUseCase interface {
	ListAppointments(ctx context.Context) ([]entities.Appointment, error)
	AppointmentsOnDay(ctx context.Context, day time.Time) ([]entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
	BookAppointment(ctx context.Context, form BookingForm) (entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo        interfaces.IAppointmentRepository
	serviceRepo interfaces.IServiceRepository
	newID       func() string
	now         func() time.Time
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, serviceRepo interfaces.IServiceRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, serviceRepo: serviceRepo, newID: uuid.NewString, now: time.Now}
}

// SortedByDate returns a new slice ordered by appointment time. The sort is
// stable and entries whose date cannot be parsed keep their relative order at the end.
func SortedByDate(appointments []entities.Appointment) []entities.Appointment {
	out := append([]entities.Appointment(nil), appointments...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := out[i].ParsedDate()
		tj, okJ := out[j].ParsedDate()
		switch {
		case okI && okJ:
			return ti.Before(tj)
		case okI:
			return true
		default:
			return false
		}
	})
	return out
}

func (u *AppointmentUseCase) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	appointments, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[appointment][usecase] list failed err=%v", err)
		return nil, err
	}
	return SortedByDate(appointments), nil
}

// AppointmentsOnDay keeps the appointments whose UTC date equals day's calendar date.
func (u *AppointmentUseCase) AppointmentsOnDay(ctx context.Context, day time.Time) ([]entities.Appointment, error) {
	appointments, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[appointment][usecase] list-day failed day=%s err=%v", day.Format(time.DateOnly), err)
		return nil, err
	}
	y, m, d := day.Date()
	var out []entities.Appointment
	for _, a := range appointments {
		t, ok := a.ParsedDate()
		if !ok {
			continue
		}
		ay, am, ad := t.Date()
		if ay == y && am == m && ad == d {
			out = append(out, a)
		}
	}
	return SortedByDate(out), nil
}

func (u *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	parsed, ok := entities.ParseAppointmentStatus(string(status))
	if !ok {
		log.Printf("[appointment][usecase] invalid status id=%s status=%q", id, status)
		return entities.Appointment{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		log.Printf("[appointment][usecase] update-status failed id=%s err=%v", id, err)
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		log.Printf("[appointment][usecase] update-status target missing id=%s", id)
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	log.Printf("[appointment][usecase] status updated id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *AppointmentUseCase) BookAppointment(ctx context.Context, form BookingForm) (entities.Appointment, error) {
	when, err := ValidateBookingForm(form, u.now())
	if err != nil {
		return entities.Appointment{}, err
	}

	svc, err := u.serviceRepo.GetByID(ctx, strings.TrimSpace(form.ServiceID))
	if err != nil {
		log.Printf("[appointment][usecase] booking service lookup failed service_id=%s err=%v", form.ServiceID, err)
		return entities.Appointment{}, err
	}
	if svc.ID == "" || !svc.Active {
		log.Printf("[appointment][usecase] booking rejected service_id=%s found=%t", form.ServiceID, svc.ID != "")
		vErr := &ValidationError{}
		vErr.add("service_id", "booking_form.service_error")
		return entities.Appointment{}, vErr
	}

	a := entities.Appointment{
		ID:          u.newID(),
		ClientName:  strings.TrimSpace(form.Name),
		ClientPhone: normalizePhone(form.Phone),
		ClientEmail: strings.TrimSpace(form.Email),
		ServiceName: svc.Name,
		Date:        when.Format(time.RFC3339),
		Status:      entities.AppointmentStatusPending,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] booking create failed service_id=%s err=%v", svc.ID, err)
		return entities.Appointment{}, err
	}
	log.Printf("[appointment][usecase] booked id=%s service=%q date=%s", created.ID, created.ServiceName, created.Date)
	return created, nil
}
