package repository

import (
	"context"
	"encoding/json"
	"time"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const (
	ServicesBucket     = "services"
	AppointmentsBucket = "appointments"
)

// ServiceBoltRepository stores services as JSON values keyed by id in a
// single BoltDB file. The bucket must exist (see database.OpenBolt).
type ServiceBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IServiceRepository = (*ServiceBoltRepository)(nil)

func NewServiceBoltRepository(db *bolt.DB) *ServiceBoltRepository {
	return &ServiceBoltRepository{db: db}
}

func (r *ServiceBoltRepository) List(ctx context.Context) ([]entities.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	services := []entities.Service{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ServicesBucket)).ForEach(func(_, v []byte) error {
			var s entities.Service
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}
			services = append(services, s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(services)
	return services, nil
}

func (r *ServiceBoltRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	if err := ctx.Err(); err != nil {
		return entities.Service{}, err
	}
	var s entities.Service
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(ServicesBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &s)
	})
	return s, err
}

func (r *ServiceBoltRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := ctx.Err(); err != nil {
		return entities.Service{}, err
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(ServicesBucket))
		if b.Get([]byte(s.ID)) != nil {
			return interfaces.ErrDuplicateID
		}
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		return b.Put([]byte(s.ID), data)
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceBoltRepository) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	if err := ctx.Err(); err != nil {
		return entities.Service{}, err
	}
	var result entities.Service
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(ServicesBucket))
		v := b.Get([]byte(id))
		if v == nil {
			return nil
		}
		var existing entities.Service
		if err := json.Unmarshal(v, &existing); err != nil {
			return err
		}
		updated := patch.Apply(existing)
		if updated == existing {
			result = existing
			return nil
		}
		data, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		result = updated
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return entities.Service{}, err
	}
	return result, nil
}

func (r *ServiceBoltRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	removed := false
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(ServicesBucket))
		if b.Get([]byte(id)) == nil {
			return nil
		}
		removed = true
		return b.Delete([]byte(id))
	})
	return removed, err
}
