// Package adminview holds the admin panel's local copy of the catalog and
// applies changes to it, optimistically for status toggles.
package adminview

import (
	"context"
	"errors"
	"log"
	"sync"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase"
)

// ActionState is the lifecycle of a single mutating action.
type ActionState string

const (
	ActionIdle       ActionState = "idle"
	ActionPending    ActionState = "pending"
	ActionCommitted  ActionState = "committed"
	ActionRolledBack ActionState = "rolled_back"
)

// Action records how one mutation ended. Snapshot is the record before the
// action; Result is what the store confirmed (zero when it failed).
type Action struct {
	Kind         usecase.ServiceAction
	ServiceID    string
	State        ActionState
	Snapshot     entities.Service
	Result       entities.Service
	Notification entities.Notification
	Err          error
}

// Board is the admin panel state. Only toggles are applied before the store
// answers; add, edit and delete change local state after confirmation.
type Board struct {
	catalog usecase.IServiceCatalogUseCase

	mu       sync.Mutex
	services []entities.Service
	inFlight map[string]bool
	onChange func(Action)
}

func NewBoard(catalog usecase.IServiceCatalogUseCase) *Board {
	return &Board{catalog: catalog, inFlight: make(map[string]bool)}
}

// OnChange registers a hook called on every state transition, Pending included.
func (b *Board) OnChange(fn func(Action)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = fn
}

// Services returns the displayed list.
func (b *Board) Services() []entities.Service {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]entities.Service(nil), b.services...)
}

// InFlight reports whether a toggle for id is waiting on the store.
func (b *Board) InFlight(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inFlight[id]
}

// Refresh replaces the local list with the store contents. On failure the
// current list is kept.
func (b *Board) Refresh(ctx context.Context) Action {
	services, err := b.catalog.ListServices(ctx)
	if err != nil {
		log.Printf("[admin][view] refresh failed err=%v", err)
		return b.finish(Action{Kind: usecase.ServiceActionFetch, State: ActionRolledBack, Err: err,
			Notification: usecase.ServiceFailureNotification(usecase.ServiceActionFetch, err)})
	}
	b.mu.Lock()
	b.services = services
	b.mu.Unlock()
	return b.finish(Action{Kind: usecase.ServiceActionFetch, State: ActionCommitted})
}

// Toggle flips the active flag of id right away and reconciles with the store:
// the confirmed record replaces the local one, or the snapshot is restored.
func (b *Board) Toggle(ctx context.Context, id string) Action {
	return b.setActive(ctx, id, func(current bool) bool { return !current })
}

// SetActive is Toggle with an explicit target value.
func (b *Board) SetActive(ctx context.Context, id string, active bool) Action {
	return b.setActive(ctx, id, func(bool) bool { return active })
}

func (b *Board) setActive(ctx context.Context, id string, target func(current bool) bool) Action {
	if _, err := b.ensureLocal(ctx, id); err != nil {
		return Action{Kind: usecase.ServiceActionToggle, ServiceID: id, State: ActionIdle, Err: err,
			Notification: usecase.ServiceFailureNotification(usecase.ServiceActionToggle, err)}
	}

	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return Action{Kind: usecase.ServiceActionToggle, ServiceID: id, State: ActionIdle, Err: usecase.ErrServiceNotFound,
			Notification: usecase.ServiceFailureNotification(usecase.ServiceActionToggle, usecase.ErrServiceNotFound)}
	}
	if b.inFlight[id] {
		b.mu.Unlock()
		log.Printf("[admin][view] warn toggle already pending id=%s", id)
		return Action{Kind: usecase.ServiceActionToggle, ServiceID: id, State: ActionIdle}
	}
	snapshot := b.services[i]
	want := target(snapshot.Active)
	b.services[i].Active = want
	b.inFlight[id] = true
	b.mu.Unlock()

	b.emit(Action{Kind: usecase.ServiceActionToggle, ServiceID: id, State: ActionPending, Snapshot: snapshot})

	confirmed, err := b.catalog.UpdateService(ctx, id, entities.ServicePatch{Active: &want})

	b.mu.Lock()
	delete(b.inFlight, id)
	if err != nil {
		if j := b.indexOf(id); j >= 0 {
			if errors.Is(err, usecase.ErrServiceNotFound) {
				b.services = append(b.services[:j:j], b.services[j+1:]...)
			} else {
				b.services[j] = snapshot
			}
		}
		b.mu.Unlock()
		log.Printf("[admin][view] toggle rolled back id=%s err=%v", id, err)
		return b.finish(Action{Kind: usecase.ServiceActionToggle, ServiceID: id, State: ActionRolledBack,
			Snapshot: snapshot, Err: err, Notification: usecase.ServiceFailureNotification(usecase.ServiceActionToggle, err)})
	}
	if j := b.indexOf(id); j >= 0 {
		b.services[j] = confirmed
	}
	b.mu.Unlock()
	return b.finish(Action{Kind: usecase.ServiceActionToggle, ServiceID: id, State: ActionCommitted,
		Snapshot: snapshot, Result: confirmed, Notification: usecase.ServiceToggledNotification(confirmed)})
}

// Add validates the form and prepends the created service once the store accepts it.
func (b *Board) Add(ctx context.Context, form usecase.ServiceForm) Action {
	in, err := usecase.ValidateServiceForm(form)
	if err == nil {
		var created entities.Service
		created, err = b.catalog.AddService(ctx, in)
		if err == nil {
			b.mu.Lock()
			b.services = append([]entities.Service{created}, b.services...)
			b.mu.Unlock()
			return b.finish(Action{Kind: usecase.ServiceActionAdd, ServiceID: created.ID, State: ActionCommitted,
				Result: created, Notification: usecase.ServiceAddedNotification(created)})
		}
	}
	return b.finish(Action{Kind: usecase.ServiceActionAdd, State: ActionRolledBack, Err: err,
		Notification: usecase.ServiceFailureNotification(usecase.ServiceActionAdd, err)})
}

// Edit overwrites the editable fields of id with the validated form. A form
// without an active value keeps the current status.
func (b *Board) Edit(ctx context.Context, id string, form usecase.ServiceForm) Action {
	snapshot, _ := b.lookup(id)
	in, err := usecase.ValidateServiceForm(form)
	if err == nil {
		patch := entities.PatchFromInput(in)
		if form.Active == nil {
			patch.Active = nil
		}
		var updated entities.Service
		updated, err = b.catalog.UpdateService(ctx, id, patch)
		if err == nil {
			b.upsert(updated)
			return b.finish(Action{Kind: usecase.ServiceActionUpdate, ServiceID: id, State: ActionCommitted,
				Snapshot: snapshot, Result: updated, Notification: usecase.ServiceUpdatedNotification(updated)})
		}
		if errors.Is(err, usecase.ErrServiceNotFound) {
			b.remove(id)
		}
	}
	return b.finish(Action{Kind: usecase.ServiceActionUpdate, ServiceID: id, State: ActionRolledBack,
		Snapshot: snapshot, Err: err, Notification: usecase.ServiceFailureNotification(usecase.ServiceActionUpdate, err)})
}

// Delete removes id from the store and then from the list. A service already
// gone from the store is still removed locally.
func (b *Board) Delete(ctx context.Context, id string) Action {
	snapshot, ok := b.lookup(id)
	if !ok {
		found, exists, err := b.catalog.GetService(ctx, id)
		if err != nil {
			return b.finish(Action{Kind: usecase.ServiceActionDelete, ServiceID: id, State: ActionRolledBack,
				Err: err, Notification: usecase.ServiceFailureNotification(usecase.ServiceActionDelete, err)})
		}
		snapshot, ok = found, exists
	}
	if err := b.catalog.DeleteService(ctx, id); err != nil {
		return b.finish(Action{Kind: usecase.ServiceActionDelete, ServiceID: id, State: ActionRolledBack,
			Snapshot: snapshot, Err: err, Notification: usecase.ServiceFailureNotification(usecase.ServiceActionDelete, err)})
	}
	b.remove(id)

	name := id
	if ok {
		name = snapshot.Name
	}
	return b.finish(Action{Kind: usecase.ServiceActionDelete, ServiceID: id, State: ActionCommitted,
		Snapshot: snapshot, Notification: usecase.ServiceDeletedNotification(name)})
}

// ensureLocal loads id from the store when the local list does not have it,
// e.g. a service written by another admin after the last refresh.
func (b *Board) ensureLocal(ctx context.Context, id string) (entities.Service, error) {
	if s, ok := b.lookup(id); ok {
		return s, nil
	}
	s, found, err := b.catalog.GetService(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if !found {
		return entities.Service{}, usecase.ErrServiceNotFound
	}
	log.Printf("[admin][view] loaded service missing from the board id=%s", id)
	b.upsert(s)
	return s, nil
}

// upsert replaces the local record of s or prepends it.
func (b *Board) upsert(s entities.Service) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if j := b.indexOf(s.ID); j >= 0 {
		b.services[j] = s
		return
	}
	b.services = append([]entities.Service{s}, b.services...)
}

func (b *Board) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if j := b.indexOf(id); j >= 0 {
		b.services = append(b.services[:j:j], b.services[j+1:]...)
	}
}

func (b *Board) lookup(id string) (entities.Service, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 {
		return b.services[i], true
	}
	return entities.Service{}, false
}

// indexOf must be called with mu held.
func (b *Board) indexOf(id string) int {
	for i, s := range b.services {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) finish(a Action) Action {
	b.emit(a)
	return a
}

func (b *Board) emit(a Action) {
	b.mu.Lock()
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn(a)
	}
}
