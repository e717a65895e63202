package handlers

import (
	"net/http"

	request "barberapp/internal/adapter/http/dto/request"
	response "barberapp/internal/adapter/http/dto/response"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	tr      *i18n.Translator
}

func NewAuthHandler(uc usecase.IAuthUseCase, tr *i18n.Translator) *AuthHandler {
	return &AuthHandler{usecase: uc, tr: tr}
}

// Login exchanges the admin credential for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequestError(h.tr, locale))
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapAuthError(h.tr, locale, err))
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Token:        session.Token,
		ExpiresAt:    session.ExpiresAt,
		Email:        session.Email,
		Notification: h.tr.Render(locale, usecase.LoginSucceededNotification()),
	})
}
