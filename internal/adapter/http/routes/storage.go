package routes

import (
	"context"
	"fmt"
	"log"

	"barberapp/internal/adapter/persistence/repository"
	"barberapp/internal/infrastructure/config"
	"barberapp/internal/infrastructure/database"
	"barberapp/internal/usecase/interfaces"
)

// stores holds the repositories of the configured storage driver.
type stores struct {
	services     interfaces.IServiceRepository
	appointments interfaces.IAppointmentRepository
	close        func() error
}

// openStores builds the repositories selected by STORAGE_DRIVER. Only the
// in-memory driver simulates latency; the others pay real I/O.
func openStores(ctx context.Context, cfg *config.Config, lat interfaces.ILatencyPolicy) (*stores, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Printf("[storage][routes] using in-memory storage min=%s max=%s failure_rate=%.2f",
			cfg.LatencyMin, cfg.LatencyMax, cfg.LatencyFailureRate)
		return &stores{
			services:     repository.NewMemoryServiceRepository(lat, repository.SeedServices()),
			appointments: repository.NewMemoryAppointmentRepository(lat, repository.SeedAppointments()),
			close:        func() error { return nil },
		}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		if cfg.DynamoDBEndpoint != "" {
			for _, table := range []string{cfg.ServicesTable, cfg.AppointmentsTable} {
				if err := database.EnsureTable(ctx, ddb, table); err != nil {
					return nil, fmt.Errorf("ensure table %s: %w", table, err)
				}
			}
		}
		st := &stores{
			services:     repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable),
			appointments: repository.NewAppointmentDynamoRepository(ddb, cfg.AppointmentsTable),
			close:        func() error { return nil },
		}
		log.Printf("[storage][routes] using dynamodb region=%s services=%s appointments=%s",
			cfg.AWSRegion, cfg.ServicesTable, cfg.AppointmentsTable)
		return st, seedIfRequested(ctx, cfg, st)

	case config.StorageBolt:
		db, err := database.OpenBolt(cfg.BoltPath, repository.ServicesBucket, repository.AppointmentsBucket)
		if err != nil {
			return nil, fmt.Errorf("open bolt: %w", err)
		}
		st := &stores{
			services:     repository.NewServiceBoltRepository(db),
			appointments: repository.NewAppointmentBoltRepository(db),
			close:        db.Close,
		}
		log.Printf("[storage][routes] using bolt path=%s", cfg.BoltPath)
		if err := seedIfRequested(ctx, cfg, st); err != nil {
			db.Close()
			return nil, err
		}
		return st, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func seedIfRequested(ctx context.Context, cfg *config.Config, st *stores) error {
	if !cfg.SeedData {
		return nil
	}
	if err := repository.SeedIfEmpty(ctx, st.services, st.appointments); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}
	return nil
}
