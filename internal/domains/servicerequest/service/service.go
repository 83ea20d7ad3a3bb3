package service

import (
	"context"
	"errors"
	"fieldservice/config"
	"fieldservice/infras/otel"
	customerModel "fieldservice/internal/domains/customer/model"
	customerRepo "fieldservice/internal/domains/customer/repository"
	paymentRepo "fieldservice/internal/domains/payment/repository"
	"fieldservice/internal/domains/servicerequest/model"
	"fieldservice/internal/domains/servicerequest/model/dto"
	"fieldservice/internal/domains/servicerequest/repository"
	technicianModel "fieldservice/internal/domains/technician/model"
	technicianDto "fieldservice/internal/domains/technician/model/dto"
	technicianRepo "fieldservice/internal/domains/technician/repository"
	"fieldservice/shared"
	"fieldservice/shared/cache"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/listview"
	gRepo "fieldservice/shared/repository"
	"fieldservice/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

type ServiceRequest interface {
	Create(ctx context.Context, req dto.CreateServiceRequestRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (dto.GetServiceRequestsResponse, error)
	Get(ctx context.Context, id int64) (dto.ServiceRequestResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequestRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	GetBalance(ctx context.Context, id int64) (dto.BalanceResponse, error)
	AssignTechnicians(ctx context.Context, req dto.AssignTechniciansRequest, id int64) error
	GetTechnicians(ctx context.Context, id int64) ([]technicianDto.TechnicianResponse, error)
	GetByTechnician(ctx context.Context, technicianID int64) ([]dto.ServiceRequestResponse, error)
}

type serviceImpl struct {
	repo           repository.ServiceRequest
	customerRepo   customerRepo.Customer
	technicianRepo technicianRepo.Technician
	paymentRepo    paymentRepo.Payment
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.ServiceRequest,
	customerRepo customerRepo.Customer,
	technicianRepo technicianRepo.Technician,
	paymentRepo paymentRepo.Payment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) ServiceRequest {
	return &serviceImpl{
		repo:           repo,
		customerRepo:   customerRepo,
		technicianRepo: technicianRepo,
		paymentRepo:    paymentRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequestRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	request, err := req.ToModel(user)
	if err != nil {
		return 0, err
	}

	if err = s.ensureCustomer(ctx, request.CustomerID); err != nil {
		return 0, err
	}

	id, err = s.repo.Insert(ctx, request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create service request")

		return 0, fmt.Errorf("failed to create service request: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheSnapshotServiceRequest)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (res dto.GetServiceRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	ordering := params.Ordering()
	if !s.repo.IsSortable(ordering.SortBy) {
		return res, failure.BadRequestFromString("invalid sort_by parameter")
	}

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheSnapshotServiceRequest, ordering.SortBy, ordering.SortDir)

	snapshot, err := listview.Snapshot(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) ([]model.ServiceRequest, error) {
		return s.repo.GetAll(ctx, ordering, gDto.FilterGroup{})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get service requests")

		return res, fmt.Errorf("failed to get service requests: %w", err)
	}

	rows, total := listview.Query(snapshot, criteria, params)
	res.FromModels(rows, total, params.Limit)

	return res, nil
}

// Get reads through to the database since the row embeds customer columns that change independently.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequestRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.EmptyUpdateRequest
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if req.CustomerID != nil && *req.CustomerID != current.CustomerID {
		if err = s.ensureCustomer(ctx, *req.CustomerID); err != nil {
			return err
		}
	}

	fields := shared.TransformFields(req, user)

	if req.ServiceDate != nil {
		serviceDate, dateErr := dto.ParseDate(*req.ServiceDate)
		if dateErr != nil {
			return dateErr
		}

		fields[model.FieldServiceDate] = serviceDate
	}

	if req.ChangesCost() {
		recalculated := req.ApplyCosts(current)
		fields[model.FieldServiceCost] = recalculated.ServiceCost
		fields[model.FieldAddedCost] = recalculated.AddedCost
		fields[model.FieldParkingFees] = recalculated.ParkingFees
		fields[model.FieldTotalCost] = recalculated.TotalCost
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service request")

		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			return failure.NotFound("service request not found")
		}

		return fmt.Errorf("failed to update service request: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

// Delete cascades to the quotes, payments and assignments of the request.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete service request")

		return fmt.Errorf("failed to delete service request: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) GetBalance(ctx context.Context, id int64) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.GetBalance")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.get(ctx, id, model.FieldID, model.FieldTotalCost)
	if err != nil {
		return res, err
	}

	paid, err := s.paymentRepo.SumCompleted(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum completed payments")

		return res, fmt.Errorf("failed to sum completed payments: %w", err)
	}

	res.FromModel(id, model.NewBalance(request.TotalCost, paid))

	return res, nil
}

// AssignTechnicians replaces the whole technician set of a service request.
func (s *serviceImpl) AssignTechnicians(ctx context.Context, req dto.AssignTechniciansRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.AssignTechnicians")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	ids := req.UniqueIDs()

	found, err := s.technicianRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    technicianModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    technicianModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count technicians")

		return fmt.Errorf("failed to count technicians: %w", err)
	}

	if found != len(ids) {
		return failure.BadRequestFromString("technician_ids contains unknown technicians")
	}

	if err = s.repo.ReplaceTechnicians(ctx, id, ids, timezone.Now()); err != nil {
		log.Error().Err(err).Msg("failed to assign technicians")

		return fmt.Errorf("failed to assign technicians: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetTechnicians(ctx context.Context, id int64) (res []technicianDto.TechnicianResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.GetTechnicians")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureExists(ctx, id); err != nil {
		return res, err
	}

	technicians, err := s.technicianRepo.GetByServiceRequest(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assigned technicians")

		return res, fmt.Errorf("failed to get assigned technicians: %w", err)
	}

	return technicianDto.FromModels(technicians), nil
}

func (s *serviceImpl) GetByTechnician(ctx context.Context, technicianID int64) (res []dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_request.GetByTechnician")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.technicianRepo.Exist(ctx, shared.FilterByID(technicianID, technicianModel.FieldID, technicianModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if technician exists")

		return res, fmt.Errorf("failed to check if technician exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("technician not found")
	}

	requests, err := s.repo.GetByTechnician(ctx, technicianID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service requests by technician")

		return res, fmt.Errorf("failed to get service requests by technician: %w", err)
	}

	return dto.FromModels(requests), nil
}

func (s *serviceImpl) get(ctx context.Context, id int64, columns ...string) (model.ServiceRequest, error) {
	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), columns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service request")

		return request, fmt.Errorf("failed to get service request: %w", err)
	}

	if request.ID == 0 {
		return request, failure.NotFound("service request not found")
	}

	return request, nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, id int64) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service request exists")

		return fmt.Errorf("failed to check if service request exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service request not found")
	}

	return nil
}

func (s *serviceImpl) ensureCustomer(ctx context.Context, customerID int64) error {
	exist, err := s.customerRepo.Exist(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("customer_id does not reference an existing customer")
	}

	return nil
}

// invalidate also clears cached quotes and payments. They embed the request description and are
// removed with the request by the cascading foreign keys.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache,
		constant.CacheSnapshotServiceRequest,
		constant.CacheGetQuote, constant.CacheSnapshotQuote,
		constant.CacheGetPayment, constant.CacheSnapshotPayment)
}
