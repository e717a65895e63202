package request

import "barberapp/internal/usecase"

// BookingRequest is the public booking payload.
type BookingRequest struct {
	Name      string `json:"name" example:"Ana Souza"`
	Phone     string `json:"phone" example:"+5511987654321"`
	Email     string `json:"email" example:"ana@example.com"`
	ServiceID string `json:"service_id" example:"1"`
	Date      string `json:"date" example:"2024-10-01"`
	Time      string `json:"time" example:"13:30"`
}

func (r BookingRequest) ToForm() usecase.BookingForm {
	return usecase.BookingForm{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Time:      r.Time,
	}
}

// UpdateStatusRequest changes the status of an appointment.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Confirmed"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"admin@admin.com"`
	Password string `json:"password" example:"123123"`
}
