package response

import (
	"barberapp/internal/domain/entities"
	"barberapp/internal/infrastructure/i18n"
)

type AppointmentResponse struct {
	ID          string `json:"id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	DateValid   bool   `json:"date_valid"`
	DateDisplay string `json:"date_display"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

type AppointmentMutationResponse struct {
	Appointment  *AppointmentResponse      `json:"appointment,omitempty"`
	Notification i18n.RenderedNotification `json:"notification"`
}

// NewAppointmentResponse keeps the stored date string untouched and flags it
// when it cannot be parsed.
func NewAppointmentResponse(tr *i18n.Translator, locale string, a entities.Appointment) AppointmentResponse {
	out := AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ClientEmail: a.ClientEmail,
		ServiceName: a.ServiceName,
		Date:        a.Date,
		Status:      string(a.Status),
		StatusLabel: tr.T(locale, a.Status.MessageKey(), nil),
	}
	if t, ok := a.ParsedDate(); ok {
		out.DateValid = true
		out.DateDisplay = i18n.FormatDateTime(locale, t)
	} else {
		out.DateDisplay = tr.T(locale, "admin_appointment.invalid_date", nil)
	}
	return out
}

func NewAppointmentListResponse(tr *i18n.Translator, locale string, appointments []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, NewAppointmentResponse(tr, locale, a))
	}
	return out
}

func NewAppointmentMutationResponse(tr *i18n.Translator, locale string, a *entities.Appointment, n entities.Notification) AppointmentMutationResponse {
	out := AppointmentMutationResponse{Notification: tr.Render(locale, n)}
	if a != nil {
		appt := NewAppointmentResponse(tr, locale, *a)
		out.Appointment = &appt
	}
	return out
}
