package usecase

import (
	"strings"
	"time"
)

// TimeSlots are the bookable start times: every 30 minutes from 09:00 to 17:00, lunch excluded.
var TimeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	var slots []string
	for h := 9; h <= 17; h++ {
		for _, m := range []int{0, 30} {
			if h == 12 || (h == 17 && m == 30) {
				continue
			}
			slots = append(slots, time.Date(0, 1, 1, h, m, 0, 0, time.UTC).Format("15:04"))
		}
	}
	return slots
}

// BookingForm is the public booking payload. Date is YYYY-MM-DD and Time one of TimeSlots.
type BookingForm struct {
	Name      string
	Phone     string
	Email     string
	ServiceID string
	Date      string
	Time      string
}

// ValidateBookingForm checks the client fields and returns the requested start time in UTC.
// Dates before the UTC day of now are rejected. Service existence is checked
// by the caller against the catalog.
func ValidateBookingForm(form BookingForm, now time.Time) (time.Time, error) {
	vErr := check([]fieldRule{
		{field: "name", value: strings.TrimSpace(form.Name), tag: "min=2", key: "booking_form.name_error"},
		{field: "phone", value: form.Phone, tag: "phone", key: "booking_form.phone_error"},
		{field: "email", value: strings.TrimSpace(form.Email), tag: "required,email", key: "booking_form.email_error"},
		{field: "service_id", value: strings.TrimSpace(form.ServiceID), tag: "required", key: "booking_form.service_error"},
		{field: "date", value: strings.TrimSpace(form.Date), tag: "required,datetime=2006-01-02", key: "booking_form.date_error"},
		{field: "time", value: strings.TrimSpace(form.Time), tag: "oneof=" + strings.Join(TimeSlots, " "), key: "booking_form.time_error"},
	})
	if err := vErr.errOrNil(); err != nil {
		return time.Time{}, err
	}

	when, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(form.Date)+" "+strings.TrimSpace(form.Time))
	if err != nil {
		vErr.add("date", "booking_form.date_error")
		return time.Time{}, vErr
	}
	if when.Before(startOfDay(now)) {
		vErr.add("date", "booking_form.date_error")
		return time.Time{}, vErr
	}
	return when.UTC(), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
