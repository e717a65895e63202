package routes

import (
	"barberapp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices     = "/services"
	PathAppointments = "/appointments"
	PathAuth         = "/auth"
)

func addServiceRoutes(rg *gin.RouterGroup, h *handlers.ServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", h.ListPublicServices)
		services.GET("/:id", h.GetPublicService)
	}
}

func addAppointmentRoutes(rg *gin.RouterGroup, h *handlers.AppointmentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", h.BookAppointment)
		appointments.GET("", h.AppointmentsOnDay)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.Group(PathAuth).POST("/login", h.Login)
}
