package i18n

var messagesPT = map[string]string{
	"admin_service.name_error":                       "O nome do serviço deve ter pelo menos 3 caracteres.",
	"admin_service.description_error":                "A descrição deve ter pelo menos 5 caracteres.",
	"admin_service.duration_error":                   "A duração deve ser um número positivo (minutos).",
	"admin_service.price_error":                      "O preço deve ser um número positivo.",
	"admin_service.category_error":                   "O nome da categoria deve ter pelo menos 2 caracteres.",
	"admin_service.status_active":                    "ativo",
	"admin_service.status_inactive":                  "inativo",
	"admin_service.update_success_title":             "Serviço Atualizado",
	"admin_service.update_success_desc":              `"{serviceName}" foi atualizado.`,
	"admin_service.add_success_title":                "Serviço Adicionado",
	"admin_service.add_success_desc":                 `"{serviceName}" foi adicionado.`,
	"admin_service.toggle_success_title_activated":   "Serviço Ativado",
	"admin_service.toggle_success_title_deactivated": "Serviço Desativado",
	"admin_service.toggle_success_desc":              `"{serviceName}" agora está {status}.`,
	"admin_service.delete_success_title":             "Serviço Excluído",
	"admin_service.delete_success_desc":              `"{serviceName}" foi excluído.`,
	"admin_service.update_error_title":               "Falha ao Atualizar",
	"admin_service.add_error_title":                  "Falha ao Adicionar",
	"admin_service.toggle_error_title":               "Falha ao Alterar Status",
	"admin_service.delete_error_title":               "Falha ao Excluir",
	"admin_service.fetch_error_title":                "Falha ao Carregar",
	"admin_service.fetch_error_desc":                 "Não foi possível carregar os serviços. Tente novamente.",
	"admin_service.error_generic_desc":               "Ocorreu um erro inesperado. Tente novamente.",
	"admin_service.not_found_desc":                   "Este serviço não existe mais.",
	"admin_service.validation_error_desc":            "Corrija os campos destacados.",

	"admin_appointment.pending":              "Pendente",
	"admin_appointment.confirmed":            "Confirmado",
	"admin_appointment.completed":            "Concluído",
	"admin_appointment.cancelled":            "Cancelado",
	"admin_appointment.update_success_title": "Status do Agendamento Atualizado",
	"admin_appointment.update_success_desc":  "Agendamento ID {appointmentId} definido como {newStatus}.",
	"admin_appointment.update_error_title":   "Falha ao Atualizar Agendamento",
	"admin_appointment.not_found_desc":       "Este agendamento não existe mais.",
	"admin_appointment.invalid_status":       "Status de agendamento desconhecido.",
	"admin_appointment.error_generic_desc":   "Ocorreu um erro inesperado. Tente novamente.",
	"admin_appointment.invalid_date":         "Data Inválida",

	"booking_form.name_error":          "O nome deve ter pelo menos 2 caracteres.",
	"booking_form.phone_error":         "Formato de telefone inválido (ex., +5511999998888).",
	"booking_form.email_error":         "Endereço de e-mail inválido.",
	"booking_form.service_error":       "Por favor, selecione um serviço.",
	"booking_form.date_error":          "Por favor, selecione uma data.",
	"booking_form.time_error":          "Por favor, selecione um horário.",
	"booking_form.success_title":       "Agendamento Confirmado!",
	"booking_form.success_description": "Obrigado, {name}! Seu agendamento de {serviceName} em {date} às {time} está confirmado.",
	"booking_form.error_title":         "Falha no Agendamento",

	"login_page.email_error":               "Endereço de e-mail inválido.",
	"login_page.password_error":            "A senha deve ter pelo menos 6 caracteres.",
	"login_page.login_success_title":       "Login Realizado",
	"login_page.login_success_description": "Redirecionando para o painel...",
	"login_page.login_fail_title":          "Falha no Login",
	"login_page.login_fail_description":    "E-mail ou senha inválidos.",

	"services_page.category_other":               "Outros Serviços",
	"services_page.category_haircuts":            "Cortes de Cabelo",
	"services_page.category_beard_care":          "Cuidados com a Barba",
	"services_page.category_shaves":              "Barbear",
	"services_page.category_styling":             "Estilização",
	"services_page.category_coloring":            "Coloração",
	"services_page.category_cortes_de_cabelo":    "Cortes de Cabelo",
	"services_page.category_cuidado_com_a_barba": "Cuidados com a Barba",
	"services_page.category_barbear":             "Barbear",
	"services_page.category_estilizacao":         "Estilização",
	"services_page.category_coloracao":           "Coloração",

	"errors.invalid_request": "Requisição inválida.",
	"errors.unauthorized":    "Autenticação necessária.",
	"errors.not_found":       "O recurso solicitado não foi encontrado.",
	"errors.internal":        "Ocorreu um erro interno.",
	"errors.unavailable":     "O serviço está temporariamente indisponível. Tente novamente.",
}
