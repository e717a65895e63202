package repository

import (
	"context"
	"sync"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"
)

// MemoryServiceRepository keeps the catalog in process memory, newest first.
//
// Every call waits on the latency policy before touching the data, so a
// configured failure leaves the store unchanged.
type MemoryServiceRepository struct {
	mu       sync.RWMutex
	services []entities.Service
	latency  interfaces.ILatencyPolicy
}

var _ interfaces.IServiceRepository = (*MemoryServiceRepository)(nil)

// NewMemoryServiceRepository copies seed in the given (newest-first) order. A nil latency policy means no delay.
func NewMemoryServiceRepository(latency interfaces.ILatencyPolicy, seed []entities.Service) *MemoryServiceRepository {
	return &MemoryServiceRepository{
		services: append([]entities.Service(nil), seed...),
		latency:  latency,
	}
}

func (r *MemoryServiceRepository) wait(ctx context.Context) error {
	if r.latency == nil {
		return ctx.Err()
	}
	return r.latency.Wait(ctx)
}

func (r *MemoryServiceRepository) List(ctx context.Context) ([]entities.Service, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Service(nil), r.services...), nil
}

func (r *MemoryServiceRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	if err := r.wait(ctx); err != nil {
		return entities.Service{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.services[i], nil
	}
	return entities.Service{}, nil
}

func (r *MemoryServiceRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := r.wait(ctx); err != nil {
		return entities.Service{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(s.ID) >= 0 {
		return entities.Service{}, interfaces.ErrDuplicateID
	}
	r.services = append([]entities.Service{s}, r.services...)
	return s, nil
}

func (r *MemoryServiceRepository) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	if err := r.wait(ctx); err != nil {
		return entities.Service{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return entities.Service{}, nil
	}
	r.services[i] = patch.Apply(r.services[i])
	return r.services[i], nil
}

func (r *MemoryServiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := r.wait(ctx); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.services = append(r.services[:i:i], r.services[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held.
func (r *MemoryServiceRepository) indexOf(id string) int {
	for i, s := range r.services {
		if s.ID == id {
			return i
		}
	}
	return -1
}
