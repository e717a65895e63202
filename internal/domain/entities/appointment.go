package entities

import (
	"strings"
	"time"
)

// AppointmentStatus is the single current state of an appointment.
//
// Domain notes:
//   - Any status may be changed to any other status; no transition table is enforced.
//   - Values are the display names used by the admin panel.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// AppointmentStatuses lists the accepted statuses in admin select order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// ParseAppointmentStatus matches raw case-insensitively against the known statuses.
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range AppointmentStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// MessageKey returns the localization key of the status label.
func (s AppointmentStatus) MessageKey() string {
	return "admin_appointment." + strings.ToLower(string(s))
}

// Appointment is a booking of a client for a service at a point in time.
//
// Date keeps the raw timestamp exactly as it was stored; use ParsedDate to read it.
// ServiceName is denormalized on purpose, it is not a reference into the catalog.
type Appointment struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"client_name"`
	ClientPhone string            `json:"client_phone"`
	ClientEmail string            `json:"client_email"`
	ServiceName string            `json:"service_name"`
	Date        string            `json:"date"`
	Status      AppointmentStatus `json:"status"`
}

// ParsedDate returns the appointment time in UTC and whether the stored value was valid.
func (a Appointment) ParsedDate() (time.Time, bool) {
	return ParseAppointmentDate(a.Date)
}

var appointmentDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseAppointmentDate reads raw as a UTC-anchored timestamp. Values without a
// zone are taken as UTC. An unparsable value yields ok=false, never a panic.
func ParseAppointmentDate(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range appointmentDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
