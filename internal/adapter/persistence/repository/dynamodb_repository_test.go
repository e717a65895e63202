package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table stand-in that understands the expressions the repositories emit.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	scans    int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, pageSize: 3}
}

func keyID(key map[string]types.AttributeValue) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func cloneItem(in map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[keyID(in.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: cloneItem(item)}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyID(in.Item)
	if _, exists := f.items[id]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = cloneItem(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyID(in.Key)
	item, ok := f.items[id]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	for _, assignment := range strings.Split(strings.TrimPrefix(*in.UpdateExpression, "SET "), ", ") {
		lhs, rhs, found := strings.Cut(assignment, " = ")
		if !found {
			return nil, fmt.Errorf("unsupported expression %q", assignment)
		}
		item[in.ExpressionAttributeNames[lhs]] = in.ExpressionAttributeValues[rhs]
	}
	return &dynamodb.UpdateItemOutput{Attributes: cloneItem(item)}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyID(in.Key)
	old, ok := f.items[id]
	delete(f.items, id)
	if !ok {
		return &dynamodb.DeleteItemOutput{}, nil
	}
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	start := 0
	if in.ExclusiveStartKey != nil {
		after := keyID(in.ExclusiveStartKey)
		start = sort.SearchStrings(ids, after) + 1
	}
	end := min(start+f.pageSize, len(ids))
	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, cloneItem(f.items[id]))
	}
	if end < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ids[end-1]}}
	}
	return out, nil
}

func TestServiceDynamoRepository(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	r := NewServiceDynamoRepository(fake, "")

	for _, s := range SeedServices() {
		if _, err := r.Create(ctx, s); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	t.Run("list pages through the table newest first", func(t *testing.T) {
		fake.scans = 0
		list, err := r.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 10 || list[0].ID != "1" || list[9].ID != "10" {
			t.Fatalf("unexpected listing %v", list)
		}
		if fake.scans < 2 {
			t.Fatalf("expected paginated scan, got %d calls", fake.scans)
		}
		if list[0].Price != 25 || list[0].Duration != 30 || !list[0].Active {
			t.Fatalf("fields lost in round trip: %+v", list[0])
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := r.Create(ctx, entities.Service{ID: "1", CreatedAt: time.Now()})
		if !errors.Is(err, interfaces.ErrDuplicateID) {
			t.Fatalf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("update merges", func(t *testing.T) {
		price := 27.5
		inactive := false
		got, err := r.Update(ctx, "1", entities.ServicePatch{Price: &price, Active: &inactive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Price != 27.5 || got.Active || got.Name != "Classic Haircut" {
			t.Fatalf("unexpected merge %+v", got)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		name := "Ghost"
		got, err := r.Update(ctx, "ghost", entities.ServicePatch{Name: &name})
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero service, got %+v %v", got, err)
		}
	})

	t.Run("delete twice", func(t *testing.T) {
		first, err := r.Delete(ctx, "2")
		if err != nil || !first {
			t.Fatalf("expected removal, got %t %v", first, err)
		}
		second, err := r.Delete(ctx, "2")
		if err != nil || second {
			t.Fatalf("expected no-op, got %t %v", second, err)
		}
	})
}

func TestAppointmentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	r := NewAppointmentDynamoRepository(newFakeDynamo(), "")
	for _, a := range SeedAppointments() {
		if _, err := r.Create(ctx, a); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	got, err := r.UpdateStatus(ctx, "a4", entities.AppointmentStatusCancelled)
	if err != nil || got.Status != entities.AppointmentStatusCancelled || got.ServiceName != "Corte Degradê (Skin Fade)" {
		t.Fatalf("unexpected update %+v %v", got, err)
	}
	missing, err := r.UpdateStatus(ctx, "zz", entities.AppointmentStatusPending)
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero appointment, got %+v %v", missing, err)
	}
	all, err := r.List(ctx)
	if err != nil || len(all) != 4 {
		t.Fatalf("unexpected list %v %v", all, err)
	}
	if a, _ := r.GetByID(ctx, "a1"); a.Date != "2024-09-15T10:00:00Z" {
		t.Fatalf("date not stored verbatim: %q", a.Date)
	}
}
