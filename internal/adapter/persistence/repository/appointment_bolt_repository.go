package repository

import (
	"context"
	"encoding/json"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

// AppointmentBoltRepository stores appointments as JSON values keyed by id.
type AppointmentBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IAppointmentRepository = (*AppointmentBoltRepository)(nil)

func NewAppointmentBoltRepository(db *bolt.DB) *AppointmentBoltRepository {
	return &AppointmentBoltRepository{db: db}
}

func (r *AppointmentBoltRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []entities.Appointment{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(AppointmentsBucket)).ForEach(func(_, v []byte) error {
			var a entities.Appointment
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			out = append(out, a)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AppointmentBoltRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Appointment{}, err
	}
	var a entities.Appointment
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(AppointmentsBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &a)
	})
	return a, err
}

func (r *AppointmentBoltRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Appointment{}, err
	}
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(AppointmentsBucket))
		if b.Get([]byte(a.ID)) != nil {
			return interfaces.ErrDuplicateID
		}
		data, err := json.Marshal(a)
		if err != nil {
			return err
		}
		return b.Put([]byte(a.ID), data)
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentBoltRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Appointment{}, err
	}
	var result entities.Appointment
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(AppointmentsBucket))
		v := b.Get([]byte(id))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &result); err != nil {
			return err
		}
		if result.Status == status {
			return nil
		}
		result.Status = status
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	return result, nil
}
