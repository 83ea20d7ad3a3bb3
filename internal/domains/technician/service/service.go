package service

import (
	"context"
	"errors"
	"fieldservice/config"
	"fieldservice/infras/otel"
	"fieldservice/internal/domains/technician/model"
	"fieldservice/internal/domains/technician/model/dto"
	"fieldservice/internal/domains/technician/repository"
	"fieldservice/shared"
	"fieldservice/shared/cache"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/listview"
	gRepo "fieldservice/shared/repository"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Technician interface {
	Create(ctx context.Context, req dto.CreateTechnicianRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (dto.GetTechniciansResponse, error)
	Get(ctx context.Context, id int64) (dto.TechnicianResponse, error)
	Update(ctx context.Context, req dto.UpdateTechnicianRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Technician
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Technician, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Technician {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTechnicianRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".technician.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	id, err = s.repo.Insert(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create technician")

		return 0, fmt.Errorf("failed to create technician: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheSnapshotTechnician)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (res dto.GetTechniciansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".technician.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	ordering := params.Ordering()
	if !s.repo.IsSortable(ordering.SortBy) {
		return res, failure.BadRequestFromString("invalid sort_by parameter")
	}

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheSnapshotTechnician, ordering.SortBy, ordering.SortDir)

	snapshot, err := listview.Snapshot(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) ([]model.Technician, error) {
		return s.repo.GetAll(ctx, ordering, gDto.FilterGroup{})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get technicians")

		return res, fmt.Errorf("failed to get technicians: %w", err)
	}

	rows, total := listview.Query(snapshot, criteria, params)
	res.FromModels(rows, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TechnicianResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".technician.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheGetTechnician, id)

	if cacheKey != "" && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for technician")

		return res, nil
	}

	technician, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get technician")

		return res, fmt.Errorf("failed to get technician: %w", err)
	}

	if technician.ID == 0 {
		return res, failure.NotFound("technician not found")
	}

	res.FromModel(technician)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTechnicianRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".technician.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.EmptyUpdateRequest
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	if req.HourlyRate != nil {
		rate := shared.RoundMoney(*req.HourlyRate)
		req.HourlyRate = &rate
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update technician")

		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			return failure.NotFound("technician not found")
		}

		return fmt.Errorf("failed to update technician: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

// Delete fails with repository.ErrTechnicianAssigned while the technician has assignments.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".technician.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if errors.Is(err, repository.ErrTechnicianAssigned) {
			log.Warn().Int64("id", id).Msg("refusing to delete assigned technician")

			return err
		}

		log.Error().Err(err).Msg("failed to delete technician")

		return fmt.Errorf("failed to delete technician: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, filter gDto.FilterGroup) error {
	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if technician exists")

		return fmt.Errorf("failed to check if technician exists: %w", err)
	}

	if !exist {
		return failure.NotFound("technician not found")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheGetTechnician, constant.CacheSnapshotTechnician)
}
