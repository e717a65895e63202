package response

import (
	"testing"

	"barberapp/internal/domain/entities"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"
)

func TestNewServiceResponse(t *testing.T) {
	tr := i18n.NewTranslator("en")
	s := entities.Service{ID: "1", Name: "Classic Cut", Duration: 30, Price: 25, Category: "Haircuts", Active: true}

	got := NewServiceResponse(tr, "pt", s)
	if got.CategoryKey != "haircuts" {
		t.Fatalf("expected category key haircuts, got %q", got.CategoryKey)
	}
	if got.CategoryLabel != "Cortes de Cabelo" {
		t.Fatalf("expected translated label, got %q", got.CategoryLabel)
	}
	if want := i18n.FormatCurrency("pt", 25); got.PriceDisplay != want {
		t.Fatalf("expected price display %q, got %q", want, got.PriceDisplay)
	}

	t.Run("unknown category keeps its name", func(t *testing.T) {
		s.Category = "Kids"
		got := NewServiceResponse(tr, "es", s)
		if got.CategoryLabel != "Kids" {
			t.Fatalf("expected original category, got %q", got.CategoryLabel)
		}
	})
}

func TestNewServiceGroupsResponse(t *testing.T) {
	tr := i18n.NewTranslator("en")
	groups := usecase.GroupByCategory([]entities.Service{
		{ID: "1", Category: "Shaves"},
		{ID: "2", Category: "Haircuts"},
		{ID: "3", Category: "Haircuts"},
	})

	got := NewServiceGroupsResponse(tr, "en", groups)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	if got[0].Key != "haircuts" || len(got[0].Services) != 2 {
		t.Fatalf("unexpected first group %+v", got[0])
	}
}

func TestNewAppointmentResponse(t *testing.T) {
	tr := i18n.NewTranslator("en")

	t.Run("valid date", func(t *testing.T) {
		a := entities.Appointment{ID: "a1", Date: "2024-09-15T14:30:00Z", Status: entities.AppointmentStatusConfirmed}
		got := NewAppointmentResponse(tr, "pt", a)
		if !got.DateValid {
			t.Fatalf("expected date to be valid")
		}
		if got.DateDisplay != "15/09/2024 14:30" {
			t.Fatalf("unexpected date display %q", got.DateDisplay)
		}
		if got.StatusLabel != "Confirmado" {
			t.Fatalf("unexpected status label %q", got.StatusLabel)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		a := entities.Appointment{ID: "a2", Date: "not a date", Status: entities.AppointmentStatusPending}
		got := NewAppointmentResponse(tr, "es", a)
		if got.DateValid {
			t.Fatalf("expected date to be invalid")
		}
		if got.DateDisplay != "Fecha Inválida" || got.Date != "not a date" {
			t.Fatalf("unexpected response %+v", got)
		}
	})
}

func TestNewServiceMutationResponse(t *testing.T) {
	tr := i18n.NewTranslator("en")

	got := NewServiceMutationResponse(tr, "en", nil, usecase.ServiceDeletedNotification("Beard Trim"))
	if got.Service != nil {
		t.Fatalf("expected no service")
	}
	if got.Notification.Title != "Service Deleted" || got.Notification.Description != `"Beard Trim" has been deleted.` {
		t.Fatalf("unexpected notification %+v", got.Notification)
	}
}
