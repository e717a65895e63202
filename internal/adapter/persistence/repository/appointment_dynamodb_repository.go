package repository

import (
	"context"

	"barberapp/internal/domain/entities"
	"barberapp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID          string `dynamodbav:"id"`
	ClientName  string `dynamodbav:"client_name"`
	ClientPhone string `dynamodbav:"client_phone"`
	ClientEmail string `dynamodbav:"client_email"`
	ServiceName string `dynamodbav:"service_name"`
	Date        string `dynamodbav:"date"`
	Status      string `dynamodbav:"status"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// date is stored verbatim; chronological ordering happens in the use case.
type AppointmentDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoDBAPI, tableName string) *AppointmentDynamoRepository {
	if tableName == "" {
		tableName = DefaultAppointmentsTableName
	}
	return &AppointmentDynamoRepository{table: dynamoTable{ddb: ddb, name: tableName}}
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	raw, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Appointment, 0, len(raw))
	for _, av := range raw {
		a, err := unmarshalAppointment(av)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	av, err := r.table.get(ctx, id)
	if err != nil || len(av) == 0 {
		return entities.Appointment{}, err
	}
	return unmarshalAppointment(av)
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
	}
	if err := r.table.putNew(ctx, av); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	av, err := r.table.update(ctx, id, map[string]types.AttributeValue{
		"status": &types.AttributeValueMemberS{Value: string(status)},
	})
	if err != nil || len(av) == 0 {
		return entities.Appointment{}, err
	}
	return unmarshalAppointment(av)
}

func unmarshalAppointment(av map[string]types.AttributeValue) (entities.Appointment, error) {
	var it appointmentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ClientEmail: a.ClientEmail,
		ServiceName: a.ServiceName,
		Date:        a.Date,
		Status:      string(a.Status),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:          it.ID,
		ClientName:  it.ClientName,
		ClientPhone: it.ClientPhone,
		ClientEmail: it.ClientEmail,
		ServiceName: it.ServiceName,
		Date:        it.Date,
		Status:      entities.AppointmentStatus(it.Status),
	}
}
