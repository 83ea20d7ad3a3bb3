package service

import (
	"context"
	"errors"
	"fieldservice/config"
	"fieldservice/infras/otel"
	notificationModel "fieldservice/internal/domains/notification/model"
	notification "fieldservice/internal/domains/notification/service"
	"fieldservice/internal/domains/quote/model"
	"fieldservice/internal/domains/quote/model/dto"
	"fieldservice/internal/domains/quote/repository"
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
	"maps"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidTransition is returned when approve or reject is applied to a quote that is not pending.
	ErrInvalidTransition = failure.Conflict("quote status does not allow this action")
	// ErrNotEditable is returned when editing a quote that is no longer pending.
	ErrNotEditable = failure.Conflict("only pending quotes can be edited")
)

type Quote interface {
	Generate(ctx context.Context, serviceRequestID int64) (dto.QuoteResponse, error)
	Create(ctx context.Context, req dto.CreateQuoteRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (dto.GetQuotesResponse, error)
	Get(ctx context.Context, id int64) (dto.QuoteResponse, error)
	Update(ctx context.Context, req dto.UpdateQuoteRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	ExpirePending(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo        repository.Quote
	requestRepo requestRepo.ServiceRequest
	notifier    notification.Notifier
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Quote,
	requestRepo requestRepo.ServiceRequest,
	notifier notification.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Quote {
	return &serviceImpl{
		repo:        repo,
		requestRepo: requestRepo,
		notifier:    notifier,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Generate creates a pending quote priced at the service request's current total cost.
func (s *serviceImpl) Generate(ctx context.Context, serviceRequestID int64) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	request, err := s.requestRepo.Get(ctx,
		shared.FilterByID(serviceRequestID, requestModel.FieldID, requestModel.TableName),
		requestModel.FieldID, requestModel.FieldDescription, requestModel.FieldTotalCost,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service request")

		return res, fmt.Errorf("failed to get service request: %w", err)
	}

	if request.ID == 0 {
		return res, failure.NotFound("service request not found")
	}

	quote := dto.NewGeneratedQuote(request.ID, request.TotalCost, timezone.Today(), s.cfg.App.Quote.ValidityMonths, user)

	quote.ID, err = s.repo.Insert(ctx, quote)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate quote")

		return res, fmt.Errorf("failed to generate quote: %w", err)
	}

	quote.ServiceDescription = request.Description
	res.FromModel(quote)

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheSnapshotQuote)

	notification.PublishAsync(ctx, s.notifier, event(quote, notificationModel.EventQuoteGenerated, quote.Status))

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateQuoteRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	quote, err := req.ToModel(user)
	if err != nil {
		return 0, err
	}

	exist, err := s.requestRepo.Exist(ctx, shared.FilterByID(quote.ServiceRequestID, requestModel.FieldID, requestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service request exists")

		return 0, fmt.Errorf("failed to check if service request exists: %w", err)
	}

	if !exist {
		return 0, failure.BadRequestFromString("service_request_id does not reference an existing service request")
	}

	id, err = s.repo.Insert(ctx, quote)
	if err != nil {
		log.Error().Err(err).Msg("failed to create quote")

		return 0, fmt.Errorf("failed to create quote: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheSnapshotQuote)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, criteria listview.Criteria) (res dto.GetQuotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	ordering := params.Ordering()
	if !s.repo.IsSortable(ordering.SortBy) {
		return res, failure.BadRequestFromString("invalid sort_by parameter")
	}

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheSnapshotQuote, ordering.SortBy, ordering.SortDir)

	snapshot, err := listview.Snapshot(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) ([]model.Quote, error) {
		return s.repo.GetAll(ctx, ordering, gDto.FilterGroup{})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotes")

		return res, fmt.Errorf("failed to get quotes: %w", err)
	}

	rows, total := listview.Query(snapshot, criteria, params)
	res.FromModels(rows, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildVersionedCacheKey(ctx, s.cache, constant.CacheGetQuote, id)

	if cacheKey != "" && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quote")

		return res, nil
	}

	quote, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(quote)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// Update edits amount, validity and notes of a pending quote.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateQuoteRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Update")
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

	if !current.IsEditable() {
		return ErrNotEditable
	}

	validity, err := req.Validity(current)
	if err != nil {
		return err
	}

	if req.Amount != nil {
		amount := shared.RoundMoney(*req.Amount)
		req.Amount = &amount
	}

	fields := shared.TransformFields(req, user)
	maps.Copy(fields, validity)

	if err = s.repo.Update(ctx, fields, filterByStatus(id, current.Status)); err != nil {
		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			return ErrNotEditable
		}

		log.Error().Err(err).Msg("failed to update quote")

		return fmt.Errorf("failed to update quote: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if quote exists")

		return fmt.Errorf("failed to check if quote exists: %w", err)
	}

	if !exist {
		return failure.NotFound("quote not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete quote")

		return fmt.Errorf("failed to delete quote: %w", err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	return s.transition(ctx, quote, model.ActionApprove, notificationModel.EventQuoteApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	return s.transition(ctx, quote, model.ActionReject, notificationModel.EventQuoteRejected)
}

// ExpirePending rejects every pending quote whose validity ended before today and returns how many
// were rejected. A failure on one quote does not stop the others.
func (s *serviceImpl) ExpirePending(ctx context.Context) (expired int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.ExpirePending")
	defer scope.End()
	defer scope.TraceIfError(err)

	if user, _ := ctx.Value(constant.ContextKeyUsername).(string); user == "" {
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, constant.ContextSystem)
	}

	quotes, err := s.repo.GetExpiredPending(ctx, timezone.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to get expired quotes")

		return 0, fmt.Errorf("failed to get expired quotes: %w", err)
	}

	var errs []error

	for _, quote := range quotes {
		if err := s.transition(ctx, quote, model.ActionReject, notificationModel.EventQuoteExpired); err != nil {
			errs = append(errs, fmt.Errorf("quote %d: %w", quote.ID, err))

			continue
		}

		expired++
	}

	log.Info().Int("expired", expired).Int("candidates", len(quotes)).Msg("quote expiry sweep finished")

	return expired, errors.Join(errs...)
}

func (s *serviceImpl) transition(ctx context.Context, quote model.Quote, action, eventType string) error {
	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	next, ok := model.NextStatus(quote.Status, action)
	if !ok {
		log.Warn().Int64("id", quote.ID).Str("status", quote.Status).Str("action", action).Msg("rejected quote action")

		return ErrInvalidTransition
	}

	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, filterByStatus(quote.ID, quote.Status)); err != nil {
		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			log.Warn().Int64("id", quote.ID).Str("status", quote.Status).Str("action", action).Msg("quote status changed concurrently")

			return ErrInvalidTransition
		}

		log.Error().Err(err).Str("action", action).Msg("failed to change quote status")

		return fmt.Errorf("failed to %s quote: %w", action, err)
	}

	s.invalidate(context.WithoutCancel(ctx))

	notification.PublishAsync(ctx, s.notifier, event(quote, eventType, next))

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Quote, error) {
	quote, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quote")

		return quote, fmt.Errorf("failed to get quote: %w", err)
	}

	if quote.ID == 0 {
		return quote, failure.NotFound("quote not found")
	}

	return quote, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheGetQuote, constant.CacheSnapshotQuote)
}

func event(quote model.Quote, eventType, status string) notificationModel.Event {
	return notificationModel.Event{
		Type:             eventType,
		Entity:           model.EntityName,
		EntityID:         quote.ID,
		ServiceRequestID: quote.ServiceRequestID,
		Amount:           quote.Amount,
		Status:           status,
	}
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
