package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fieldservice/infras/otel"
	"fieldservice/infras/postgres"
	"fieldservice/internal/domains/payment/model"
	gDto "fieldservice/shared/dto"
	gRepo "fieldservice/shared/repository"
	"fmt"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IsSortable(name string) bool
	SumCompleted(ctx context.Context, serviceRequestID int64) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// SumCompleted adds up the completed payments of a service request.
func (r *repositoryImpl) SumCompleted(ctx context.Context, serviceRequestID int64) (float64, error) {
	total, err := r.Sum(ctx, model.FieldAmount, FilterCompleted(serviceRequestID))
	if err != nil {
		return 0, fmt.Errorf("failed to sum completed payments: %w", err)
	}

	return total, nil
}

func FilterCompleted(serviceRequestID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceRequestID,
				Operator: gDto.FilterOperatorEq,
				Value:    serviceRequestID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusCompleted,
				Table:    model.TableName,
			},
		},
	}
}
