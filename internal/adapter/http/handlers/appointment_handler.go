package handlers

import (
	"net/http"
	"strings"
	"time"

	request "barberapp/internal/adapter/http/dto/request"
	response "barberapp/internal/adapter/http/dto/response"
	"barberapp/internal/domain/entities"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"

	"github.com/gin-gonic/gin"
)

const dayLayout = "2006-01-02"

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
	tr      *i18n.Translator
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase, tr *i18n.Translator) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc, tr: tr}
}

// BookAppointment creates a Pending appointment from the public booking form.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequestError(h.tr, locale))
		return
	}

	form := payload.ToForm()
	appt, err := h.usecase.BookAppointment(c.Request.Context(), form)
	if err != nil {
		respondError(c, mapAppointmentError(h.tr, locale, err))
		return
	}

	n := usecase.BookingConfirmedNotification(appt, strings.TrimSpace(form.Date), strings.TrimSpace(form.Time))
	c.JSON(http.StatusCreated, response.NewAppointmentMutationResponse(h.tr, locale, &appt, n))
}

// AppointmentsOnDay lists the appointments of ?day=YYYY-MM-DD.
func (h *AppointmentHandler) AppointmentsOnDay(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	day, err := time.Parse(dayLayout, strings.TrimSpace(c.Query("day")))
	if err != nil {
		respondError(c, invalidRequestError(h.tr, locale))
		return
	}

	appointments, err := h.usecase.AppointmentsOnDay(c.Request.Context(), day)
	if err != nil {
		respondError(c, mapAppointmentError(h.tr, locale, err))
		return
	}
	c.JSON(http.StatusOK, response.NewAppointmentListResponse(h.tr, locale, appointments))
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	appointments, err := h.usecase.ListAppointments(c.Request.Context())
	if err != nil {
		respondError(c, mapAppointmentError(h.tr, locale, err))
		return
	}
	c.JSON(http.StatusOK, response.NewAppointmentListResponse(h.tr, locale, appointments))
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequestError(h.tr, locale))
		return
	}

	appt, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.AppointmentStatus(payload.Status))
	if err != nil {
		respondError(c, mapAppointmentError(h.tr, locale, err))
		return
	}
	c.JSON(http.StatusOK, response.NewAppointmentMutationResponse(h.tr, locale, &appt, usecase.AppointmentStatusNotification(appt)))
}
