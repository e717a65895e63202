package usecase

import (
	"errors"

	"barberapp/internal/domain/entities"
)

// ServiceAction names an admin operation on the catalog; it selects the title key of its notifications.
type ServiceAction string

const (
	ServiceActionAdd    ServiceAction = "add"
	ServiceActionUpdate ServiceAction = "update"
	ServiceActionToggle ServiceAction = "toggle"
	ServiceActionDelete ServiceAction = "delete"
	ServiceActionFetch  ServiceAction = "fetch"
)

func ServiceAddedNotification(s entities.Service) entities.Notification {
	return serviceSuccess("admin_service.add_success_title", "admin_service.add_success_desc", s.Name)
}

func ServiceUpdatedNotification(s entities.Service) entities.Notification {
	return serviceSuccess("admin_service.update_success_title", "admin_service.update_success_desc", s.Name)
}

func ServiceDeletedNotification(serviceName string) entities.Notification {
	return serviceSuccess("admin_service.delete_success_title", "admin_service.delete_success_desc", serviceName)
}

// ServiceToggledNotification describes the state s ended up in.
func ServiceToggledNotification(s entities.Service) entities.Notification {
	title := "admin_service.toggle_success_title_deactivated"
	status := "admin_service.status_inactive"
	if s.Active {
		title = "admin_service.toggle_success_title_activated"
		status = "admin_service.status_active"
	}
	n := serviceSuccess(title, "admin_service.toggle_success_desc", s.Name)
	n.LocalizedParams = map[string]string{"status": status}
	return n
}

func serviceSuccess(title, desc, serviceName string) entities.Notification {
	return entities.Notification{
		TitleKey:       title,
		DescriptionKey: desc,
		Params:         map[string]string{"serviceName": serviceName},
		Variant:        entities.NotificationDefault,
	}
}

// ServiceFailureNotification picks the description from the error kind so the
// admin can tell a vanished record from a rejected form or a transient failure.
func ServiceFailureNotification(action ServiceAction, err error) entities.Notification {
	desc := "admin_service.error_generic_desc"
	var vErr *ValidationError
	switch {
	case action == ServiceActionFetch:
		desc = "admin_service.fetch_error_desc"
	case errors.Is(err, ErrServiceNotFound):
		desc = "admin_service.not_found_desc"
	case errors.As(err, &vErr):
		desc = "admin_service.validation_error_desc"
	}
	return entities.Notification{
		TitleKey:       "admin_service." + string(action) + "_error_title",
		DescriptionKey: desc,
		Variant:        entities.NotificationDestructive,
	}
}

func AppointmentStatusNotification(a entities.Appointment) entities.Notification {
	return entities.Notification{
		TitleKey:        "admin_appointment.update_success_title",
		DescriptionKey:  "admin_appointment.update_success_desc",
		Params:          map[string]string{"appointmentId": a.ID},
		LocalizedParams: map[string]string{"newStatus": a.Status.MessageKey()},
		Variant:         entities.NotificationDefault,
	}
}

func AppointmentFailureNotification(err error) entities.Notification {
	desc := "admin_appointment.error_generic_desc"
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		desc = "admin_appointment.not_found_desc"
	case errors.Is(err, ErrInvalidStatus):
		desc = "admin_appointment.invalid_status"
	}
	return entities.Notification{
		TitleKey:       "admin_appointment.update_error_title",
		DescriptionKey: desc,
		Variant:        entities.NotificationDestructive,
	}
}

// BookingConfirmedNotification uses the day and slot exactly as the client picked them.
func BookingConfirmedNotification(a entities.Appointment, day, slot string) entities.Notification {
	return entities.Notification{
		TitleKey:       "booking_form.success_title",
		DescriptionKey: "booking_form.success_description",
		Params: map[string]string{
			"name":        a.ClientName,
			"serviceName": a.ServiceName,
			"date":        day,
			"time":        slot,
		},
		Variant: entities.NotificationDefault,
	}
}

func BookingFailureNotification() entities.Notification {
	return entities.Notification{
		TitleKey: "booking_form.error_title",
		Variant:  entities.NotificationDestructive,
	}
}

func LoginSucceededNotification() entities.Notification {
	return entities.Notification{
		TitleKey:       "login_page.login_success_title",
		DescriptionKey: "login_page.login_success_description",
		Variant:        entities.NotificationDefault,
	}
}
