package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fieldservice/infras/otel"
	"fieldservice/infras/postgres"
	"fieldservice/internal/domains/servicerequest/model"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/logger"
	gRepo "fieldservice/shared/repository"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type ServiceRequest interface {
	Insert(ctx context.Context, model model.ServiceRequest) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IsSortable(name string) bool
	GetByTechnician(ctx context.Context, technicianID int64) ([]model.ServiceRequest, error)
	ReplaceTechnicians(ctx context.Context, id int64, technicianIDs []int64, assignedAt time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ServiceRequest]
	assignments gRepo.Repository[model.Assignment]
}

func New(db *postgres.Connection, otel otel.Otel) ServiceRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		assignments: gRepo.NewRepository[model.Assignment](
			model.AssignmentEntityName, model.AssignmentTableName, model.FieldServiceRequestID, db, otel,
		),
	}
}

// GetByTechnician lists the service requests a technician is assigned to, latest service date first.
func (r *repositoryImpl) GetByTechnician(ctx context.Context, technicianID int64) ([]model.ServiceRequest, error) {
	ctx, scope := r.Otel().NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".service_request.GetByTechnician")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s JOIN %s ON %s.%s = %s.%s WHERE %s.%s = :%s ORDER BY %s.service_date DESC, %s.%s DESC",
		r.SelectQuery(ctx), model.TableName, model.ServiceRequest{}.GetJoinQuery(), model.AssignmentTableName,
		model.AssignmentTableName, model.FieldServiceRequestID, model.TableName, model.FieldID,
		model.AssignmentTableName, model.FieldTechnicianID, model.FieldTechnicianID,
		model.TableName, model.TableName, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	requests := []model.ServiceRequest{}

	prepare, err := r.DB().Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return requests, fmt.Errorf("failed to prepare statement (service_request): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &requests, map[string]any{model.FieldTechnicianID: technicianID}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return requests, fmt.Errorf("failed to get service requests by technician: %w", err)
	}

	return requests, nil
}

// ReplaceTechnicians swaps the whole assignment set of a service request in one transaction.
func (r *repositoryImpl) ReplaceTechnicians(ctx context.Context, id int64, technicianIDs []int64, assignedAt time.Time) error {
	ctx, scope := r.Otel().NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".service_request.ReplaceTechnicians")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceRequestID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.AssignmentTableName,
			},
		},
	}

	err := r.DB().WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.assignments.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}

		return r.assignments.InsertBulkTx(ctx, tx, model.NewAssignments(id, technicianIDs, assignedAt))
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace technicians: %w", err)
	}

	return nil
}
