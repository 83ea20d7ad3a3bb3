package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fieldservice/infras/otel"
	"fieldservice/infras/postgres"
	"fieldservice/internal/domains/technician/model"
	"fieldservice/shared"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/logger"
	gRepo "fieldservice/shared/repository"
	"fmt"
)

// ErrTechnicianAssigned is returned when deleting a technician that service requests still reference.
var ErrTechnicianAssigned = failure.Conflict("technician is assigned to service requests")

var errRequiredFilter = errors.New("technician filter is required")

type Technician interface {
	Insert(ctx context.Context, model model.Technician) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Technician, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Technician, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IsSortable(name string) bool
	GetByServiceRequest(ctx context.Context, serviceRequestID int64) ([]model.Technician, error)
	IsAssigned(ctx context.Context, id int64) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Technician]
}

func New(db *postgres.Connection, otel otel.Otel) Technician {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Technician](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// GetByServiceRequest lists the technicians assigned to a service request ordered by name.
func (r *repositoryImpl) GetByServiceRequest(ctx context.Context, serviceRequestID int64) ([]model.Technician, error) {
	ctx, scope := r.Otel().NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".technician.GetByServiceRequest")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s FROM %s JOIN %s ON %s.%s = %s.%s WHERE %s.%s = :%s ORDER BY %s.%s, %s.%s, %s.%s",
		r.SelectQuery(ctx), model.TableName, model.AssignmentTable,
		model.AssignmentTable, model.FieldTechnicianID, model.TableName, model.FieldID,
		model.AssignmentTable, model.FieldRequestID, model.FieldRequestID,
		model.TableName, model.FieldLastName, model.TableName, model.FieldFirstName, model.TableName, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	technicians := []model.Technician{}

	prepare, err := r.DB().Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return technicians, fmt.Errorf("failed to prepare statement (technician): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &technicians, map[string]any{model.FieldRequestID: serviceRequestID}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return technicians, fmt.Errorf("failed to get technicians by service request: %w", err)
	}

	return technicians, nil
}

func (r *repositoryImpl) IsAssigned(ctx context.Context, id int64) (bool, error) {
	return r.isAssigned(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

// Delete refuses to remove technicians that still have assignments.
func (r *repositoryImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	ctx, scope := r.Otel().NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".technician.Delete")
	defer scope.End()

	assigned, err := r.isAssigned(ctx, filter)
	if err != nil {
		return err
	}

	if assigned {
		return ErrTechnicianAssigned
	}

	return translateDeleteError(r.Repository.Delete(ctx, filter))
}

// translateDeleteError reports a foreign key violation raised by an assignment created after the
// existence check as ErrTechnicianAssigned.
func translateDeleteError(err error) error {
	if errors.Is(err, failure.ReferencedError) {
		return ErrTechnicianAssigned
	}

	return err
}

// assignedQuery selects whether any technician matched by where has an assignment.
func assignedQuery(where string) string {
	return fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s JOIN %s ON %s.%s = %s.%s %s)",
		model.AssignmentTable, model.TableName,
		model.TableName, model.FieldID, model.AssignmentTable, model.FieldTechnicianID,
		where,
	)
}

func (r *repositoryImpl) isAssigned(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	ctx, scope := r.Otel().NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".technician.isAssigned")
	defer scope.End()

	where, args := r.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := assignedQuery(where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.DB().Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (technician): %w", err)
	}
	defer prepare.Close()

	var assigned bool

	if err = prepare.GetContext(ctx, &assigned, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check technician assignments: %w", err)
	}

	return assigned, nil
}
