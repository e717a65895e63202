package interfaces

import (
	"context"
	"errors"

	"barberapp/internal/domain/entities"
)

// ErrDuplicateID is returned by Create when the id is already taken.
var ErrDuplicateID = errors.New("duplicate id")

// IServiceRepository abstracts persistence of the service catalog.
//
// Contract shared by every implementation:
//   - List returns most-recent-first order (newly created services come first).
//   - GetByID and Update return a zero Service (ID == "") when the id does not exist.
//   - Create fails with ErrDuplicateID instead of overwriting an existing record.
//   - Delete reports whether a record was actually removed.

type IServiceRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
}
