package repository

import (
	"context"
	"log"
	"time"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"
)

// seedEpoch anchors seed CreatedAt values so that newest-first order lists "1" before "10".
var seedEpoch = time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)

// SeedServices returns the initial barbershop catalog.
func SeedServices() []entities.Service {
	services := []entities.Service{
		{ID: "1", Name: "Classic Haircut", Description: "Traditional haircut with scissors and clippers.", Duration: 30, Price: 25, Category: "Haircuts", Active: true},
		{ID: "2", Name: "Beard Trim & Shape", Description: "Shape and trim your beard to perfection.", Duration: 20, Price: 18, Category: "Beard Care", Active: true},
		{ID: "3", Name: "Hot Towel Shave", Description: "Relaxing hot towel shave with a straight razor.", Duration: 45, Price: 40, Category: "Shaves", Active: true},
		{ID: "4", Name: "Hair Wash & Style", Description: "Shampoo, condition, and professional styling.", Duration: 25, Price: 22, Category: "Styling", Active: true},
		{ID: "5", Name: "Skin Fade Haircut", Description: "Modern fade down to the skin.", Duration: 45, Price: 35, Category: "Haircuts", Active: true},
		{ID: "6", Name: "Full Beard Grooming", Description: "Wash, condition, trim, shape, and oil.", Duration: 30, Price: 30, Category: "Beard Care", Active: true},
		{ID: "7", Name: "Head Shave", Description: "Smooth head shave with clippers or razor.", Duration: 30, Price: 28, Category: "Shaves", Active: true},
		{ID: "8", Name: "Kids Haircut", Description: "Patient and stylish cuts for children (under 12).", Duration: 25, Price: 20, Category: "Haircuts", Active: true},
		{ID: "9", Name: "Hair Coloring", Description: "Consultation required. Price varies.", Duration: 60, Price: 50, Category: "Coloring", Active: false},
		{ID: "10", Name: "Simple Trim", Description: "Quick cleanup around ears and neck.", Duration: 15, Price: 15, Category: "Haircuts", Active: true},
	}
	for i := range services {
		services[i].CreatedAt = seedEpoch.Add(-time.Duration(i) * time.Minute)
	}
	return services
}

// SeedAppointments returns the sample appointments shown in the admin panel.
func SeedAppointments() []entities.Appointment {
	return []entities.Appointment{
		{ID: "a1", ClientName: "John Doe", ClientPhone: "+15551234", ClientEmail: "john@example.com", ServiceName: "Corte de Cabelo Clássico", Date: "2024-09-15T10:00:00Z", Status: entities.AppointmentStatusConfirmed},
		{ID: "a2", ClientName: "Jane Smith", ClientPhone: "+15555678", ClientEmail: "jane@example.com", ServiceName: "Aparar e Modelar Barba", Date: "2024-09-15T11:30:00Z", Status: entities.AppointmentStatusPending},
		{ID: "a3", ClientName: "Bob Johnson", ClientPhone: "+15559012", ClientEmail: "bob@example.com", ServiceName: "Barbear com Toalha Quente", Date: "2024-09-16T14:00:00Z", Status: entities.AppointmentStatusCompleted},
		{ID: "a4", ClientName: "Carlos Rey", ClientPhone: "+346661122", ClientEmail: "carlos@email.es", ServiceName: "Corte Degradê (Skin Fade)", Date: "2024-09-17T09:00:00Z", Status: entities.AppointmentStatusConfirmed},
	}
}

// SeedIfEmpty writes the seed data into empty stores. Stores that already hold
// records are left untouched.
func SeedIfEmpty(ctx context.Context, services interfaces.IServiceRepository, appointments interfaces.IAppointmentRepository) error {
	existing, err := services.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		// Create prepends, so insert oldest first.
		seed := SeedServices()
		for i := len(seed) - 1; i >= 0; i-- {
			if _, err := services.Create(ctx, seed[i]); err != nil {
				return err
			}
		}
		log.Printf("[seed][repository] services seeded count=%d", len(seed))
	}

	existingAppts, err := appointments.List(ctx)
	if err != nil {
		return err
	}
	if len(existingAppts) == 0 {
		for _, a := range SeedAppointments() {
			if _, err := appointments.Create(ctx, a); err != nil {
				return err
			}
		}
		log.Printf("[seed][repository] appointments seeded count=%d", len(SeedAppointments()))
	}
	return nil
}
