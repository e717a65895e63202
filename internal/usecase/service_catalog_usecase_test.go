package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"barberapp/internal/adapter/persistence/repository"
	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"
	mock_interfaces "barberapp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSeededCatalog() (*ServiceCatalogUseCase, *repository.MemoryServiceRepository) {
	repo := repository.NewMemoryServiceRepository(nil, repository.SeedServices())
	return NewServiceCatalogUseCase(repo), repo
}

func classicCut() entities.ServiceInput {
	return entities.ServiceInput{
		Name:        "Classic Cut",
		Description: "A classic cut",
		Duration:    30,
		Price:       25,
		Category:    "Haircuts",
		Active:      true,
	}
}

func TestServiceCatalogUseCase_AddService(t *testing.T) {
	t.Run("assigns unique ids and lists newest first", func(t *testing.T) {
		uc, _ := newSeededCatalog()
		ctx := context.Background()
		seen := map[string]bool{}
		var last entities.Service
		for i := 0; i < 25; i++ {
			in := classicCut()
			in.Name = fmt.Sprintf("Service %02d", i)
			created, err := uc.AddService(ctx, in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID == "" || seen[created.ID] {
				t.Fatalf("id %q is empty or repeated", created.ID)
			}
			seen[created.ID] = true

			list, err := uc.ListServices(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if list[0].ID != created.ID {
				t.Fatalf("expected new service first, got %s", list[0].ID)
			}
			if last.ID != "" && list[1].ID != last.ID {
				t.Fatalf("expected previous service second, got %s", list[1].ID)
			}
			last = created
		}
	})

	t.Run("regenerates id on collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceCatalogUseCase(repo)
		ids := []string{"taken", "fresh"}
		uc.newID = func() (string, error) {
			id := ids[0]
			ids = ids[1:]
			return id, nil
		}

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, interfaces.ErrDuplicateID),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) {
				return s, nil
			}),
		)

		created, err := uc.AddService(context.Background(), classicCut())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "fresh" {
			t.Fatalf("expected regenerated id, got %s", created.ID)
		}
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceCatalogUseCase(repo)
		uc.newID = func() (string, error) { return "1", nil }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, interfaces.ErrDuplicateID).Times(maxIDAttempts)

		_, err := uc.AddService(context.Background(), classicCut())
		if !errors.Is(err, ErrServiceIDExhausted) {
			t.Fatalf("expected ErrServiceIDExhausted, got %v", err)
		}
	})

	t.Run("repository error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceCatalogUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, errors.New("db"))

		_, err := uc.AddService(context.Background(), classicCut())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceCatalogUseCase_UpdateService(t *testing.T) {
	t.Run("merges instead of replacing", func(t *testing.T) {
		uc, _ := newSeededCatalog()
		ctx := context.Background()
		before, _, _ := uc.GetService(ctx, "3")

		inactive := false
		after, err := uc.UpdateService(ctx, "3", entities.ServicePatch{Active: &inactive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if after.Active {
			t.Fatalf("expected inactive")
		}
		after.Active = before.Active
		if after != before {
			t.Fatalf("other fields changed: before=%+v after=%+v", before, after)
		}
	})

	t.Run("missing id is not found and creates nothing", func(t *testing.T) {
		uc, _ := newSeededCatalog()
		ctx := context.Background()
		name := "Ghost Service"
		_, err := uc.UpdateService(ctx, "does-not-exist", entities.ServicePatch{Name: &name})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
		list, _ := uc.ListServices(ctx)
		if len(list) != 10 {
			t.Fatalf("expected 10 services, got %d", len(list))
		}
	})

	t.Run("empty patch on missing id is not found", func(t *testing.T) {
		uc, _ := newSeededCatalog()
		_, err := uc.UpdateService(context.Background(), "nope", entities.ServicePatch{})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("invalid patch never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceCatalogUseCase(repo)

		name := "x"
		_, err := uc.UpdateService(context.Background(), "1", entities.ServicePatch{Name: &name})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc, _ := newSeededCatalog()
		_, err := uc.UpdateService(context.Background(), "  ", entities.ServicePatch{})
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})
}

func TestServiceCatalogUseCase_DeleteService(t *testing.T) {
	t.Run("second delete is a no-op", func(t *testing.T) {
		uc, _ := newSeededCatalog()
		ctx := context.Background()
		if err := uc.DeleteService(ctx, "4"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteService(ctx, "4"); err != nil {
			t.Fatalf("unexpected error on second delete: %v", err)
		}
		list, _ := uc.ListServices(ctx)
		if len(list) != 9 {
			t.Fatalf("expected 9 services, got %d", len(list))
		}
	})

	t.Run("repository error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceCatalogUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "1").Return(false, errors.New("db"))

		if err := uc.DeleteService(context.Background(), "1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestServiceCatalogUseCase_Queries(t *testing.T) {
	uc, _ := newSeededCatalog()
	ctx := context.Background()

	t.Run("get missing is not an error", func(t *testing.T) {
		_, found, err := uc.GetService(ctx, "42")
		if err != nil || found {
			t.Fatalf("expected found=false err=nil, got found=%t err=%v", found, err)
		}
	})

	t.Run("active listing hides inactive", func(t *testing.T) {
		active, err := uc.ListActiveServices(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, s := range active {
			if s.ID == "9" {
				t.Fatalf("inactive service listed")
			}
		}
		if len(active) != 9 {
			t.Fatalf("expected 9 active services, got %d", len(active))
		}
	})

	t.Run("list is a snapshot", func(t *testing.T) {
		list, _ := uc.ListServices(ctx)
		list[0].Name = "mutated"
		again, _ := uc.ListServices(ctx)
		if again[0].Name == "mutated" {
			t.Fatalf("listing exposed internal state")
		}
	})
}

func TestGroupByCategory(t *testing.T) {
	services := []entities.Service{
		{ID: "1", Category: "Haircuts"},
		{ID: "2", Category: "Beard Care"},
		{ID: "3", Category: "haircuts"},
		{ID: "4", Category: "Coloração"},
		{ID: "5", Category: "Coloracao"},
		{ID: "6", Category: "  "},
	}
	groups := GroupByCategory(services)
	keys := []string{"beard_care", "coloracao", "haircuts", "other"}
	if len(groups) != len(keys) {
		t.Fatalf("expected %d groups, got %+v", len(keys), groups)
	}
	for i, k := range keys {
		if groups[i].Key != k {
			t.Fatalf("group %d: expected key %s, got %s", i, k, groups[i].Key)
		}
	}
	if groups[1].Category != "Coloração" || len(groups[1].Services) != 2 {
		t.Fatalf("accent variants should merge under the first label, got %+v", groups[1])
	}
	if groups[2].Services[0].ID != "1" || groups[2].Services[1].ID != "3" {
		t.Fatalf("group must keep input order, got %+v", groups[2].Services)
	}
}

func TestServiceCatalog_EndToEnd(t *testing.T) {
	uc, _ := newSeededCatalog()
	ctx := context.Background()

	in, err := ValidateServiceForm(ServiceForm{
		Name:        "Classic Cut",
		Description: "A classic cut",
		Duration:    "30",
		Price:       "25",
		Category:    "Haircuts",
	})
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	created, err := uc.AddService(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Active {
		t.Fatalf("expected active by default")
	}

	before, _ := uc.ListServices(ctx)
	if before[0].ID != created.ID {
		t.Fatalf("expected new service first")
	}

	inactive := false
	if _, err := uc.UpdateService(ctx, created.ID, entities.ServicePatch{Active: &inactive}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := uc.ListServices(ctx)
	if len(after) != len(before) {
		t.Fatalf("service count changed")
	}
	for i := range after {
		if after[i].ID == created.ID {
			if after[i].Active {
				t.Fatalf("expected %s inactive", created.ID)
			}
			continue
		}
		if after[i] != before[i] {
			t.Fatalf("unrelated service changed: %+v -> %+v", before[i], after[i])
		}
	}
}
