package service

import (
	"context"
	"errors"
	"fieldservice/config"
	"fieldservice/infras/otel"
	notificationModel "fieldservice/internal/domains/notification/model"
	notification "fieldservice/internal/domains/notification/service"
	"fieldservice/internal/domains/payment/model"
	"fieldservice/internal/domains/payment/model/dto"
	"fieldservice/internal/domains/payment/repository"
	requestModel "fieldservice/internal/domains/servicerequest/model"
	requestRepo "fieldservice/internal/domains/servicerequest/repository"
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

var (
	// ErrInvalidTransition is returned when a status action does not apply to the current status.
	ErrInvalidTransition = failure.Conflict("payment status does not allow this action")
	// ErrNotEditable is returned when editing a payment that is no longer pending.
	ErrNotEditable = failure.Conflict("only pending payments can be edited")
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id int64) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
	Fail(ctx context.Context, id int64) error
	Refund(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Payment
	requestRepo requestRepo.ServiceRequest
	notifier    notification.Notifier
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	requestRepo requestRepo.ServiceRequest,
	notifier notification.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		requestRepo: requestRepo,
		notifier:    notifier,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	payment, err := req.ToModel(user)
	if err != nil {
		return 0, err
	}

	exist, err := s.requestRepo.Exist(ctx, shared.FilterByID(payment.ServiceRequestID, requestModel.FieldID, requestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service request exists")

		return 0, fmt.Errorf("failed to check if service request exists: %w", err)
	}

	if !exist {
		return 0, failure.BadRequestFromString("service_request_id does not reference an existing service request")
	}

	id, err = s.repo.Insert(ctx, payment)
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return 0, fmt.Errorf("failed to create payment: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheSnapshotPayment)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	ordering := params.Ordering()
	if !s.repo.IsSortable(ordering.SortBy) {
		return res, failure.BadRequestFromString("invalid sort_by parameter")
	}

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheSnapshotPayment, ordering.SortBy, ordering.SortDir)

	snapshot, err := listview.Snapshot(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) ([]model.Payment, error) {
		return s.repo.GetAll(ctx, ordering, gDto.FilterGroup{})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	rows, total := listview.Query(snapshot, criteria, params)
	res.FromModels(rows, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheGetPayment, id)

	if cacheKey != "" && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment")

		return res, nil
	}

	payment, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(payment)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// Update edits a pending payment. Status is left alone.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.EmptyUpdateRequest
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	current, err := s.get(ctx, id, model.FieldID, model.FieldStatus)
	if err != nil {
		return err
	}

	if !current.IsEditable() {
		return ErrNotEditable
	}

	if req.Amount != nil {
		amount := shared.RoundMoney(*req.Amount)
		req.Amount = &amount
	}

	fields := shared.TransformFields(req, user)

	if req.PaymentDate != nil {
		paymentDate, dateErr := dto.ParseDate(*req.PaymentDate)
		if dateErr != nil {
			return dateErr
		}

		fields[model.FieldPaymentDate] = paymentDate
	}

	if err = s.repo.Update(ctx, fields, filterByStatus(id, current.Status)); err != nil {
		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			return ErrNotEditable
		}

		log.Error().Err(err).Msg("failed to update payment")

		return fmt.Errorf("failed to update payment: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) Complete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.ActionComplete)
}

func (s *serviceImpl) Fail(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Fail")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.ActionFail)
}

func (s *serviceImpl) Refund(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Refund")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.ActionRefund)
}

// transition applies action and guards the update on the status it was read with.
func (s *serviceImpl) transition(ctx context.Context, id int64, action string) error {
	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	payment, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	next, ok := model.NextStatus(payment.Status, action)
	if !ok {
		log.Warn().Int64("id", id).Str("status", payment.Status).Str("action", action).Msg("rejected payment action")

		return ErrInvalidTransition
	}

	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filterByStatus(id, payment.Status)); err != nil {
		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			log.Warn().Int64("id", id).Str("status", payment.Status).Str("action", action).Msg("payment status changed concurrently")

			return ErrInvalidTransition
		}

		log.Error().Err(err).Str("action", action).Msg("failed to change payment status")

		return fmt.Errorf("failed to %s payment: %w", action, err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	if eventType, ok := events[next]; ok {
		notification.PublishAsync(ctx, s.notifier, notificationModel.Event{
			Type:             eventType,
			Entity:           model.EntityName,
			EntityID:         payment.ID,
			ServiceRequestID: payment.ServiceRequestID,
			Amount:           payment.Amount,
			Status:           next,
		})
	}

	return nil
}

var events = map[string]string{
	model.StatusCompleted: notificationModel.EventPaymentCompleted,
	model.StatusRefunded:  notificationModel.EventPaymentRefunded,
}

func (s *serviceImpl) get(ctx context.Context, id int64, columns ...string) (model.Payment, error) {
	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), columns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return payment, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == 0 {
		return payment, failure.NotFound("payment not found")
	}

	return payment, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheGetPayment, constant.CacheSnapshotPayment)
}

func filterByStatus(id int64, status string) gDto.FilterGroup {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    status,
		Table:    model.TableName,
	})

	return filter
}
