package response

import (
	"time"

	"barberapp/internal/infrastructure/i18n"
)

type LoginResponse struct {
	Token        string                    `json:"token"`
	ExpiresAt    time.Time                 `json:"expires_at"`
	Email        string                    `json:"email"`
	Notification i18n.RenderedNotification `json:"notification"`
}

type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
