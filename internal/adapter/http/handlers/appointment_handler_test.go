package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"barberapp/internal/adapter/http/handlers/mocks"
	"barberapp/internal/domain/entities"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAppointmentRouter(uc usecase.IAppointmentUseCase) *gin.Engine {
	h := NewAppointmentHandler(uc, i18n.NewTranslator("en"))
	r := gin.New()
	r.POST("/v1/appointments", h.BookAppointment)
	r.GET("/v1/appointments", h.AppointmentsOnDay)
	r.GET("/v1/admin/appointments", h.ListAppointments)
	r.PATCH("/v1/admin/appointments/:id/status", h.UpdateStatus)
	return r
}

func TestAppointmentHandler_BookAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation errors are localized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().BookAppointment(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, &usecase.ValidationError{
			FieldErrors: map[string]string{"phone": "booking_form.phone_error"},
		})

		w := doJSON(newAppointmentRouter(uc), http.MethodPost, "/v1/appointments?locale=es", `{"name":"Ana","phone":"abc"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Fields map[string]string `json:"fields"`
		}
		decodeBody(t, w, &body)
		if body.Fields["phone"] == "" || body.Fields["phone"] == "booking_form.phone_error" {
			t.Fatalf("expected a translated phone message, got %v", body.Fields)
		}
	})

	t.Run("booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().BookAppointment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f usecase.BookingForm) (entities.Appointment, error) {
				if f.ServiceID != "1" || f.Time != "13:30" {
					t.Fatalf("unexpected form %+v", f)
				}
				return entities.Appointment{
					ID: "b1", ClientName: f.Name, ServiceName: "Classic Cut",
					Date: "2024-10-01T13:30:00Z", Status: entities.AppointmentStatusPending,
				}, nil
			})

		w := doJSON(newAppointmentRouter(uc), http.MethodPost, "/v1/appointments",
			`{"name":"Ana","phone":"+5511987654321","email":"ana@example.com","service_id":"1","date":"2024-10-01","time":"13:30"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Appointment  map[string]any    `json:"appointment"`
			Notification map[string]string `json:"notification"`
		}
		decodeBody(t, w, &body)
		if body.Appointment["status"] != "Pending" || body.Appointment["date_valid"] != true {
			t.Fatalf("unexpected appointment %v", body.Appointment)
		}
		want := "Thanks, Ana! Your appointment for Classic Cut on 2024-10-01 at 13:30 is confirmed."
		if body.Notification["description"] != want {
			t.Fatalf("unexpected notification %q", body.Notification["description"])
		}
	})
}

func TestAppointmentHandler_AppointmentsOnDay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)

		w := doJSON(newAppointmentRouter(uc), http.MethodGet, "/v1/appointments?day=15/09/2024", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("day is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().AppointmentsOnDay(gomock.Any(), time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)).
			Return([]entities.Appointment{{ID: "a1", Date: "2024-09-15T10:00:00Z", Status: entities.AppointmentStatusConfirmed}}, nil)

		w := doJSON(newAppointmentRouter(uc), http.MethodGet, "/v1/appointments?day=2024-09-15", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAppointmentUseCase(ctrl)
	uc.EXPECT().ListAppointments(gomock.Any()).Return([]entities.Appointment{
		{ID: "a1", Date: "2024-09-15T10:00:00Z", Status: entities.AppointmentStatusConfirmed},
		{ID: "a9", Date: "someday", Status: entities.AppointmentStatusPending},
	}, nil)

	w := doJSON(newAppointmentRouter(uc), http.MethodGet, "/v1/admin/appointments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	decodeBody(t, w, &body)
	if len(body) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(body))
	}
	if body[0]["date_display"] != "09/15/2024 10:00 AM" {
		t.Fatalf("unexpected date display %v", body[0]["date_display"])
	}
	if body[1]["date_valid"] != false || body[1]["date_display"] != "Invalid Date" {
		t.Fatalf("unexpected invalid entry %v", body[1])
	}
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown status", usecase.ErrInvalidStatus, http.StatusUnprocessableEntity},
		{"missing appointment", usecase.ErrAppointmentNotFound, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAppointmentUseCase(ctrl)
			uc.EXPECT().UpdateStatus(gomock.Any(), "a1", gomock.Any()).Return(entities.Appointment{}, tc.err)

			w := doJSON(newAppointmentRouter(uc), http.MethodPatch, "/v1/admin/appointments/a1/status", `{"status":"Archived"}`)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
		})
	}

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "a1", entities.AppointmentStatus("completed")).
			Return(entities.Appointment{ID: "a1", Date: "2024-09-15T10:00:00Z", Status: entities.AppointmentStatusCompleted}, nil)

		w := doJSON(newAppointmentRouter(uc), http.MethodPatch, "/v1/admin/appointments/a1/status?locale=pt", `{"status":"completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Appointment  map[string]any    `json:"appointment"`
			Notification map[string]string `json:"notification"`
		}
		decodeBody(t, w, &body)
		if body.Appointment["status_label"] != "Concluído" {
			t.Fatalf("unexpected status label %v", body.Appointment["status_label"])
		}
	})
}
