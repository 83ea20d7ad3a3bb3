package service

import (
	"context"
	"errors"
	"fieldservice/config"
	"fieldservice/infras/otel"
	"fieldservice/infras/s3"
	"fieldservice/internal/domains/customer/model"
	"fieldservice/internal/domains/customer/model/dto"
	"fieldservice/internal/domains/customer/repository"
	"fieldservice/shared"
	"fieldservice/shared/base64"
	"fieldservice/shared/cache"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/listview"
	gRepo "fieldservice/shared/repository"
	"fmt"
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	logoDirectory = "customers/logos"
	bytesPerMB    = 1024 * 1024
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (dto.GetCustomersResponse, error)
	Get(ctx context.Context, id int64) (dto.CustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.Customer
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Customer, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	var logoURL string

	if req.Logo != "" {
		if logoURL, err = s.uploadLogo(ctx, req.Logo); err != nil {
			return 0, err
		}
	}

	id, err = s.repo.Insert(ctx, req.ToModel(user, logoURL))
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		if logoURL != "" {
			go s.removeLogo(context.WithoutCancel(ctx), logoURL)
		}

		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheSnapshotCustomer)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	ordering := params.Ordering()
	if !s.repo.IsSortable(ordering.SortBy) {
		return res, failure.BadRequestFromString("invalid sort_by parameter")
	}

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheSnapshotCustomer, ordering.SortBy, ordering.SortDir)

	snapshot, err := listview.Snapshot(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) ([]model.Customer, error) {
		return s.repo.GetAll(ctx, ordering, gDto.FilterGroup{})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	rows, total := listview.Query(snapshot, criteria, params)
	res.FromModels(rows, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheGetCustomer, id)

	if cacheKey != "" && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(customer)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.EmptyUpdateRequest
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	customer, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	var newLogoURL string

	if req.Logo != nil {
		if *req.Logo != "" {
			if newLogoURL, err = s.uploadLogo(ctx, *req.Logo); err != nil {
				return err
			}
		}

		updatedFields[model.FieldLogoURL] = newLogoURL
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update customer")

		if newLogoURL != "" {
			go s.removeLogo(context.WithoutCancel(ctx), newLogoURL)
		}

		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			return failure.NotFound("customer not found")
		}

		return fmt.Errorf("failed to update customer: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	if req.Logo != nil && customer.LogoURL != "" {
		go s.removeLogo(context.WithoutCancel(ctx), customer.LogoURL)
	}

	return nil
}

// Delete fails with a conflict while service requests still reference the customer.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if failure.IsCode(err, http.StatusConflict) {
			return failure.Conflict("customer still has service requests")
		}

		log.Error().Err(err).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	if customer.LogoURL != "" {
		go s.removeLogo(context.WithoutCancel(ctx), customer.LogoURL)
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Customer, error) {
	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return customer, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		return customer, failure.NotFound("customer not found")
	}

	return customer, nil
}

func (s *serviceImpl) uploadLogo(ctx context.Context, logo string) (string, error) {
	contentType, data, err := base64.Decode(logo)
	if err != nil {
		return "", failure.BadRequestFromString("logo must be a base64 data uri")
	}

	if allowed := s.cfg.App.Logo.AllowedTypes; len(allowed) > 0 && !slices.Contains(allowed, contentType) {
		return "", failure.BadRequestFromString(fmt.Sprintf("logo type %s is not allowed", contentType))
	}

	if maxSize := s.cfg.App.Logo.MaxSizeMB; maxSize > 0 && float64(len(data)) > maxSize*bytesPerMB {
		return "", failure.BadRequestFromString(fmt.Sprintf("logo must not exceed %g MB", maxSize))
	}

	url, err := s.storage.UploadFileBytes(ctx, logoDirectory, uuid.NewString()+base64.Extension(contentType), contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload customer logo")

		return "", fmt.Errorf("failed to upload customer logo: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) removeLogo(ctx context.Context, url string) {
	if err := s.storage.DeleteFile(ctx, s.storage.GetObjectKeyFromURL(url)); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to delete customer logo")
	}
}

// invalidate also clears service request snapshots, which embed the customer name.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheGetCustomer, constant.CacheSnapshotCustomer, constant.CacheSnapshotServiceRequest)
}
