package handlers

import (
	"errors"
	"net/http"

	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/infrastructure/latency"
	"barberapp/internal/usecase"
	"barberapp/pkg"

	"github.com/gin-gonic/gin"
)

// requestLocale picks the response language from ?locale= or Accept-Language.
func requestLocale(c *gin.Context, tr *i18n.Translator) string {
	return tr.Negotiate(c.Query("locale"), c.GetHeader("Accept-Language"))
}

func invalidRequestError(tr *i18n.Translator, locale string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", tr.T(locale, "errors.invalid_request", nil), http.StatusBadRequest)
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapServiceError localizes a catalog failure. The message is the description
// of the failure notification the admin panel would show for action.
func mapServiceError(tr *i18n.Translator, locale string, action usecase.ServiceAction, err error) *pkg.AppError {
	message := tr.Render(locale, usecase.ServiceFailureNotification(action, err)).Description

	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewValidationError("VALIDATION_ERROR", message, tr.Fields(locale, vErr.FieldErrors), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return invalidRequestError(tr, locale)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", message, http.StatusNotFound)
	case errors.Is(err, latency.ErrSimulatedFailure):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", tr.T(locale, "errors.unavailable", nil), err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", message, err, http.StatusInternalServerError)
	}
}

func mapAppointmentError(tr *i18n.Translator, locale string, err error) *pkg.AppError {
	message := tr.Render(locale, usecase.AppointmentFailureNotification(err)).Description

	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewValidationError("VALIDATION_ERROR", tr.T(locale, "booking_form.error_title", nil), tr.Fields(locale, vErr.FieldErrors), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidAppointmentID):
		return invalidRequestError(tr, locale)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", message, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", message, http.StatusNotFound)
	case errors.Is(err, latency.ErrSimulatedFailure):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", tr.T(locale, "errors.unavailable", nil), err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", message, err, http.StatusInternalServerError)
	}
}

func mapAuthError(tr *i18n.Translator, locale string, err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewValidationError("VALIDATION_ERROR", tr.T(locale, "login_page.login_fail_title", nil), tr.Fields(locale, vErr.FieldErrors), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", tr.T(locale, "login_page.login_fail_description", nil), http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", tr.T(locale, "errors.internal", nil), err, http.StatusInternalServerError)
	}
}
