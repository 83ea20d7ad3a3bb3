package repository

import (
	"context"
	"errors"
	"fieldservice/infras/otel/mocks"
	"fieldservice/internal/domains/technician/model"
	"fieldservice/shared"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	gRepo "fieldservice/shared/repository"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newTestRepository() *repositoryImpl {
	return New(nil, mocks.NewOtel()).(*repositoryImpl)
}

func TestAssignedQuery(t *testing.T) {
	repo := newTestRepository()

	where, args := repo.BuildWhereClause(context.Background(), shared.FilterByID(int64(7), model.FieldID, model.TableName))

	assert.Equal(t,
		"SELECT EXISTS (SELECT 1 FROM service_technicians JOIN technicians ON technicians.id = service_technicians.technician_id  WHERE (technicians.id = :id) )",
		assignedQuery(where),
	)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)
}

func TestIsAssigned_RequiresFilter(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.isAssigned(context.Background(), gDto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	assert.ErrorIs(t, repo.Delete(context.Background(), gDto.FilterGroup{}), errRequiredFilter)
}

func TestTranslateDeleteError(t *testing.T) {
	fkViolation := fmt.Errorf("failed to delete data (technician): %w",
		gRepo.TranslateError(&pq.Error{Code: "23503", Constraint: "service_technicians_technician_id_fkey"}))

	err := translateDeleteError(fkViolation)
	assert.Equal(t, ErrTechnicianAssigned, err)
	assert.True(t, failure.IsCode(err, http.StatusConflict))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateDeleteError(plain))

	assert.NoError(t, translateDeleteError(nil))
}
