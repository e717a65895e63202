package i18n

var messagesEN = map[string]string{
	"admin_service.name_error":                       "Service name must be at least 3 characters.",
	"admin_service.description_error":                "Description must be at least 5 characters.",
	"admin_service.duration_error":                   "Duration must be a positive number (minutes).",
	"admin_service.price_error":                      "Price must be a positive number.",
	"admin_service.category_error":                   "Category name must be at least 2 characters.",
	"admin_service.status_active":                    "active",
	"admin_service.status_inactive":                  "inactive",
	"admin_service.update_success_title":             "Service Updated",
	"admin_service.update_success_desc":              `"{serviceName}" has been updated.`,
	"admin_service.add_success_title":                "Service Added",
	"admin_service.add_success_desc":                 `"{serviceName}" has been added.`,
	"admin_service.toggle_success_title_activated":   "Service Activated",
	"admin_service.toggle_success_title_deactivated": "Service Deactivated",
	"admin_service.toggle_success_desc":              `"{serviceName}" is now {status}.`,
	"admin_service.delete_success_title":             "Service Deleted",
	"admin_service.delete_success_desc":              `"{serviceName}" has been deleted.`,
	"admin_service.update_error_title":               "Update Failed",
	"admin_service.add_error_title":                  "Add Failed",
	"admin_service.toggle_error_title":               "Status Change Failed",
	"admin_service.delete_error_title":               "Delete Failed",
	"admin_service.fetch_error_title":                "Fetch Failed",
	"admin_service.fetch_error_desc":                 "Could not load services. Please try again.",
	"admin_service.error_generic_desc":               "An unexpected error occurred. Please try again.",
	"admin_service.not_found_desc":                   "This service no longer exists.",
	"admin_service.validation_error_desc":            "Please correct the highlighted fields.",

	"admin_appointment.pending":              "Pending",
	"admin_appointment.confirmed":            "Confirmed",
	"admin_appointment.completed":            "Completed",
	"admin_appointment.cancelled":            "Cancelled",
	"admin_appointment.update_success_title": "Appointment Status Updated",
	"admin_appointment.update_success_desc":  "Appointment ID {appointmentId} set to {newStatus}.",
	"admin_appointment.update_error_title":   "Status Update Failed",
	"admin_appointment.not_found_desc":       "This appointment no longer exists.",
	"admin_appointment.invalid_status":       "Unknown appointment status.",
	"admin_appointment.error_generic_desc":   "An unexpected error occurred. Please try again.",
	"admin_appointment.invalid_date":         "Invalid Date",

	"booking_form.name_error":          "Name must be at least 2 characters.",
	"booking_form.phone_error":         "Invalid phone number format (e.g., +1234567890).",
	"booking_form.email_error":         "Invalid email address.",
	"booking_form.service_error":       "Please select a service.",
	"booking_form.date_error":          "Please select a date.",
	"booking_form.time_error":          "Please select a time.",
	"booking_form.success_title":       "Appointment Booked!",
	"booking_form.success_description": "Thanks, {name}! Your appointment for {serviceName} on {date} at {time} is confirmed.",
	"booking_form.error_title":         "Booking Failed",

	"login_page.email_error":               "Invalid email address.",
	"login_page.password_error":            "Password must be at least 6 characters.",
	"login_page.login_success_title":       "Login Successful",
	"login_page.login_success_description": "Redirecting to admin panel...",
	"login_page.login_fail_title":          "Login Failed",
	"login_page.login_fail_description":    "Invalid email or password.",

	"services_page.category_other":      "Other Services",
	"services_page.category_haircuts":   "Haircuts",
	"services_page.category_beard_care": "Beard Care",
	"services_page.category_shaves":     "Shaves",
	"services_page.category_styling":    "Styling",
	"services_page.category_coloring":   "Coloring",

	"errors.invalid_request": "Invalid request.",
	"errors.unauthorized":    "Authentication required.",
	"errors.not_found":       "The requested resource was not found.",
	"errors.internal":        "An internal error occurred.",
	"errors.unavailable":     "The service is temporarily unavailable. Please try again.",
}
