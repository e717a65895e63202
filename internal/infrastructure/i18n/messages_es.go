package i18n

var messagesES = map[string]string{
	"admin_service.name_error":                       "El nombre del servicio debe tener al menos 3 caracteres.",
	"admin_service.description_error":                "La descripción debe tener al menos 5 caracteres.",
	"admin_service.duration_error":                   "La duración debe ser un número positivo (minutos).",
	"admin_service.price_error":                      "El precio debe ser un número positivo.",
	"admin_service.category_error":                   "El nombre de la categoría debe tener al menos 2 caracteres.",
	"admin_service.status_active":                    "activo",
	"admin_service.status_inactive":                  "inactivo",
	"admin_service.update_success_title":             "Servicio Actualizado",
	"admin_service.update_success_desc":              `"{serviceName}" ha sido actualizado.`,
	"admin_service.add_success_title":                "Servicio Añadido",
	"admin_service.add_success_desc":                 `"{serviceName}" ha sido añadido.`,
	"admin_service.toggle_success_title_activated":   "Servicio Activado",
	"admin_service.toggle_success_title_deactivated": "Servicio Desactivado",
	"admin_service.toggle_success_desc":              `"{serviceName}" ahora está {status}.`,
	"admin_service.delete_success_title":             "Servicio Eliminado",
	"admin_service.delete_success_desc":              `"{serviceName}" ha sido eliminado.`,
	"admin_service.update_error_title":               "Error al Actualizar",
	"admin_service.add_error_title":                  "Error al Añadir",
	"admin_service.toggle_error_title":               "Error al Cambiar Estado",
	"admin_service.delete_error_title":               "Error al Eliminar",
	"admin_service.fetch_error_title":                "Error al Cargar",
	"admin_service.fetch_error_desc":                 "No se pudieron cargar los servicios. Inténtalo de nuevo.",
	"admin_service.error_generic_desc":               "Ocurrió un error inesperado. Por favor, inténtalo de nuevo.",
	"admin_service.not_found_desc":                   "Este servicio ya no existe.",
	"admin_service.validation_error_desc":            "Corrige los campos señalados.",

	"admin_appointment.pending":              "Pendiente",
	"admin_appointment.confirmed":            "Confirmada",
	"admin_appointment.completed":            "Completada",
	"admin_appointment.cancelled":            "Cancelada",
	"admin_appointment.update_success_title": "Estado de la Cita Actualizado",
	"admin_appointment.update_success_desc":  "La cita ID {appointmentId} se ha establecido a {newStatus}.",
	"admin_appointment.update_error_title":   "Error al Actualizar la Cita",
	"admin_appointment.not_found_desc":       "Esta cita ya no existe.",
	"admin_appointment.invalid_status":       "Estado de cita desconocido.",
	"admin_appointment.error_generic_desc":   "Ocurrió un error inesperado. Por favor, inténtalo de nuevo.",
	"admin_appointment.invalid_date":         "Fecha Inválida",

	"booking_form.name_error":          "El nombre debe tener al menos 2 caracteres.",
	"booking_form.phone_error":         "Formato de número de teléfono inválido (ej., +34666112233).",
	"booking_form.email_error":         "Dirección de correo electrónico inválida.",
	"booking_form.service_error":       "Por favor, selecciona un servicio.",
	"booking_form.date_error":          "Por favor, selecciona una fecha.",
	"booking_form.time_error":          "Por favor, selecciona una hora.",
	"booking_form.success_title":       "¡Cita Reservada!",
	"booking_form.success_description": "¡Gracias, {name}! Tu cita para {serviceName} el {date} a las {time} está confirmada.",
	"booking_form.error_title":         "Error al Reservar",

	"login_page.email_error":               "Dirección de correo electrónico inválida.",
	"login_page.password_error":            "La contraseña debe tener al menos 6 caracteres.",
	"login_page.login_success_title":       "Inicio de Sesión Exitoso",
	"login_page.login_success_description": "Redirigiendo al panel de administración...",
	"login_page.login_fail_title":          "Fallo de Inicio de Sesión",
	"login_page.login_fail_description":    "Correo electrónico o contraseña inválidos.",

	"services_page.category_other":            "Otros Servicios",
	"services_page.category_haircuts":         "Cortes de Pelo",
	"services_page.category_beard_care":       "Cuidado de Barba",
	"services_page.category_shaves":           "Afeitados",
	"services_page.category_styling":          "Estilismo",
	"services_page.category_coloring":         "Coloración",
	"services_page.category_cortes_de_pelo":   "Cortes de Pelo",
	"services_page.category_cuidado_de_barba": "Cuidado de Barba",
	"services_page.category_afeitados":        "Afeitados",
	"services_page.category_estilismo":        "Estilismo",
	"services_page.category_coloracion":       "Coloración",

	"errors.invalid_request": "Solicitud inválida.",
	"errors.unauthorized":    "Se requiere autenticación.",
	"errors.not_found":       "No se encontró el recurso solicitado.",
	"errors.internal":        "Ocurrió un error interno.",
	"errors.unavailable":     "El servicio no está disponible temporalmente. Inténtalo de nuevo.",
}
