package handlers

import (
	"net/http"
	"testing"
	"time"

	"barberapp/internal/adapter/http/handlers/mocks"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IAuthUseCase) *gin.Engine {
		h := NewAuthHandler(uc, i18n.NewTranslator("en"))
		r := gin.New()
		r.POST("/v1/auth/login", h.Login)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/auth/login", `[`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "admin@admin.com", "wrong-pass").Return(usecase.Session{}, usecase.ErrInvalidCredentials)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/auth/login", `{"email":"admin@admin.com","password":"wrong-pass"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["message"] != "Invalid email or password." {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("malformed form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "nope", "1").Return(usecase.Session{}, &usecase.ValidationError{
			FieldErrors: map[string]string{"email": "login_page.email_error", "password": "login_page.password_error"},
		})

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/auth/login", `{"email":"nope","password":"1"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		expires := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Login(gomock.Any(), "admin@admin.com", "123123").
			Return(usecase.Session{Token: "jwt", ExpiresAt: expires, Email: "admin@admin.com"}, nil)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/auth/login", `{"email":"admin@admin.com","password":"123123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Token        string            `json:"token"`
			Notification map[string]string `json:"notification"`
		}
		decodeBody(t, w, &body)
		if body.Token != "jwt" || body.Notification["title"] != "Login Successful" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := doJSON(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
