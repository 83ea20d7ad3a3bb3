package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fieldservice/infras/otel"
	"fieldservice/infras/postgres"
	"fieldservice/internal/domains/quote/model"
	gDto "fieldservice/shared/dto"
	gRepo "fieldservice/shared/repository"
	"fmt"
	"time"
)

type Quote interface {
	Insert(ctx context.Context, model model.Quote) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Quote, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Quote, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IsSortable(name string) bool
	GetExpiredPending(ctx context.Context, today time.Time) ([]model.Quote, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Quote]
}

func New(db *postgres.Connection, otel otel.Otel) Quote {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Quote](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// GetExpiredPending lists pending quotes whose valid_until falls before today, oldest first.
func (r *repositoryImpl) GetExpiredPending(ctx context.Context, today time.Time) ([]model.Quote, error) {
	params := gDto.QueryParams{SortBy: model.FieldValidUntil, SortDir: gDto.SortDirAsc}

	quotes, err := r.GetAll(ctx, params, FilterExpiredPending(today))
	if err != nil {
		return quotes, fmt.Errorf("failed to get expired quotes: %w", err)
	}

	return quotes, nil
}

func FilterExpiredPending(today time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldValidUntil,
				Operator: gDto.FilterOperatorLess,
				Value:    today,
				Table:    model.TableName,
			},
		},
	}
}
