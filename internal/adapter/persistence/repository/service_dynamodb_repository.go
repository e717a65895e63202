package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultServicesTableName = "services"

type serviceItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description"`
	Duration    int     `dynamodbav:"duration"`
	Price       float64 `dynamodbav:"price"`
	Category    string  `dynamodbav:"category"`
	Active      bool    `dynamodbav:"active"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at,omitempty"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so List scans the table and orders by created_at
// descending to keep newest-first listing.
type ServiceDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoDBAPI, tableName string) *ServiceDynamoRepository {
	if tableName == "" {
		tableName = DefaultServicesTableName
	}
	return &ServiceDynamoRepository{table: dynamoTable{ddb: ddb, name: tableName}}
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	raw, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	services := make([]entities.Service, 0, len(raw))
	for _, av := range raw {
		s, err := unmarshalService(av)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	sortNewestFirst(services)
	return services, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	av, err := r.table.get(ctx, id)
	if err != nil || len(av) == 0 {
		return entities.Service{}, err
	}
	return unmarshalService(av)
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}
	if err := r.table.putNew(ctx, av); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	set := servicePatchAttributes(patch)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	av, err := r.table.update(ctx, id, set)
	if err != nil || len(av) == 0 {
		return entities.Service{}, err
	}
	return unmarshalService(av)
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.remove(ctx, id)
}

func servicePatchAttributes(p entities.ServicePatch) map[string]types.AttributeValue {
	set := map[string]types.AttributeValue{}
	if p.Name != nil {
		set["name"] = &types.AttributeValueMemberS{Value: *p.Name}
	}
	if p.Description != nil {
		set["description"] = &types.AttributeValueMemberS{Value: *p.Description}
	}
	if p.Duration != nil {
		set["duration"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*p.Duration)}
	}
	if p.Price != nil {
		set["price"] = &types.AttributeValueMemberN{Value: floatToString(*p.Price)}
	}
	if p.Category != nil {
		set["category"] = &types.AttributeValueMemberS{Value: *p.Category}
	}
	if p.Active != nil {
		set["active"] = &types.AttributeValueMemberBOOL{Value: *p.Active}
	}
	return set
}

func unmarshalService(av map[string]types.AttributeValue) (entities.Service, error) {
	var it serviceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		Category:    s.Category,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Duration:    it.Duration,
		Price:       it.Price,
		Category:    it.Category,
		Active:      it.Active,
		CreatedAt:   createdAt,
	}
}

// sortNewestFirst orders by CreatedAt descending, id as tie-breaker.
func sortNewestFirst(services []entities.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		if !services[i].CreatedAt.Equal(services[j].CreatedAt) {
			return services[i].CreatedAt.After(services[j].CreatedAt)
		}
		return services[i].ID < services[j].ID
	})
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
