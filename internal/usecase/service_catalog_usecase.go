package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// maxIDAttempts bounds how many fresh ids AddService tries when the store reports a collision.
const maxIDAttempts = 3

// IServiceCatalogUseCase is the single source of truth for the list of services.
//
// Requested behavior:
//   - New services get a store-generated id and are listed first.
//   - Updates merge partial changes into the existing record.
//   - Deleting an unknown id is a logged no-op, not an error.
type IServiceCatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListActiveServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, bool, error)
	AddService(ctx context.Context, in entities.ServiceInput) (entities.Service, error)
	UpdateService(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// ServiceGroup is one category section of the public services page.
type ServiceGroup struct {
	Key      string             `json:"key"`
	Category string             `json:"category"`
	Services []entities.Service `json:"services"`
}

type ServiceCatalogUseCase struct {
	repo  interfaces.IServiceRepository
	newID func() (string, error)
	now   func() time.Time
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceRepository) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{repo: repo, newID: newServiceID, now: time.Now}
}

// newServiceID returns a UUIDv7: millisecond timestamp prefix plus random bits.
func newServiceID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (u *ServiceCatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[service][usecase] list failed err=%v", err)
		return nil, err
	}
	return append([]entities.Service(nil), services...), nil
}

func (u *ServiceCatalogUseCase) ListActiveServices(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[service][usecase] list-active failed err=%v", err)
		return nil, err
	}
	active := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if s.Active {
			active = append(active, s)
		}
	}
	return active, nil
}

func (u *ServiceCatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, false, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, false, err
	}
	if s.ID == "" {
		return entities.Service{}, false, nil
	}
	return s, true, nil
}

func (u *ServiceCatalogUseCase) AddService(ctx context.Context, in entities.ServiceInput) (entities.Service, error) {
	s := entities.Service{
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		Category:    in.Category,
		Active:      in.Active,
		CreatedAt:   u.now().UTC(),
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id, err := u.newID()
		if err != nil {
			log.Printf("[service][usecase] id generation failed err=%v", err)
			return entities.Service{}, err
		}
		s.ID = id

		created, err := u.repo.Create(ctx, s)
		if errors.Is(err, interfaces.ErrDuplicateID) {
			log.Printf("[service][usecase] warn id collision id=%s attempt=%d", id, attempt)
			continue
		}
		if err != nil {
			log.Printf("[service][usecase] add failed name=%q err=%v", in.Name, err)
			return entities.Service{}, err
		}
		log.Printf("[service][usecase] added id=%s name=%q", created.ID, created.Name)
		return created, nil
	}
	return entities.Service{}, ErrServiceIDExhausted
}

func (u *ServiceCatalogUseCase) UpdateService(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if err := ValidateServicePatch(patch); err != nil {
		return entities.Service{}, err
	}

	var (
		updated entities.Service
		err     error
	)
	if patch.IsEmpty() {
		updated, err = u.repo.GetByID(ctx, id)
	} else {
		updated, err = u.repo.Update(ctx, id, patch)
	}
	if err != nil {
		log.Printf("[service][usecase] update failed id=%s err=%v", id, err)
		return entities.Service{}, err
	}
	if updated.ID == "" {
		log.Printf("[service][usecase] update target missing id=%s", id)
		return entities.Service{}, ErrServiceNotFound
	}
	log.Printf("[service][usecase] updated id=%s active=%t", updated.ID, updated.Active)
	return updated, nil
}

func (u *ServiceCatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[service][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !removed {
		log.Printf("[service][usecase] warn delete of unknown id=%s ignored", id)
		return nil
	}
	log.Printf("[service][usecase] deleted id=%s", id)
	return nil
}

// GroupByCategory buckets services by CategoryKey. Groups are sorted by key;
// each keeps the first category spelling it saw and its services in input order.
func GroupByCategory(services []entities.Service) []ServiceGroup {
	index := make(map[string]int)
	var groups []ServiceGroup
	for _, s := range services {
		key := entities.CategoryKey(s.Category)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ServiceGroup{Key: key, Category: s.Category})
		}
		groups[i].Services = append(groups[i].Services, s)
	}
	sort.SliceStable(groups, func(a, b int) bool { return groups[a].Key < groups[b].Key })
	return groups
}
