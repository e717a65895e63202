package routes

import (
	"barberapp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin = "/admin"
	PathBoard = "/board"
)

// addAdminRoutes expects rg to be guarded by middleware.AdminJWT.
func addAdminRoutes(rg *gin.RouterGroup, services *handlers.ServiceHandler, appointments *handlers.AppointmentHandler, board *handlers.BoardHandler) {
	svc := rg.Group(PathServices)
	{
		svc.GET("", services.ListServices)
		svc.POST("", services.CreateService)
		svc.PUT("/:id", services.UpdateService)
		svc.PATCH("/:id/active", services.SetServiceActive)
		svc.DELETE("/:id", services.DeleteService)
	}

	appts := rg.Group(PathAppointments)
	{
		appts.GET("", appointments.ListAppointments)
		appts.PATCH("/:id/status", appointments.UpdateStatus)
	}

	b := rg.Group(PathBoard)
	{
		b.GET("", board.GetBoard)
		b.POST("/refresh", board.Refresh)
		b.POST("/services/:id/toggle", board.Toggle)
	}
}
