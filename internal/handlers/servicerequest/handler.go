package servicerequest

import (
	"fieldservice/infras/otel"
	quoteService "fieldservice/internal/domains/quote/service"
	"fieldservice/internal/domains/servicerequest/model/dto"
	"fieldservice/internal/domains/servicerequest/service"
	"fieldservice/shared"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/listview"
	"fieldservice/shared/validator"
	"fieldservice/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.ServiceRequest
	quoteService quoteService.Quote
	otel         otel.Otel
}

func New(service service.ServiceRequest, quoteService quoteService.Quote, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		quoteService: quoteService,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/service-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateServiceRequest)
		routerGroup.Get("/", handler.GetServiceRequests)
		routerGroup.Get("/{id}", handler.GetServiceRequestByID)
		routerGroup.Patch("/{id}", handler.UpdateServiceRequest)
		routerGroup.Delete("/{id}", handler.DeleteServiceRequest)
		routerGroup.Get("/{id}/balance", handler.GetBalance)
		routerGroup.Post("/{id}/quotes/generate", handler.GenerateQuote)
		routerGroup.Put("/{id}/technicians", handler.AssignTechnicians)
		routerGroup.Get("/{id}/technicians", handler.GetTechnicians)
	})
}

// CreateServiceRequest handles the creation of a new service request.
// @Summary Create a new service request
// @Description Create a service request for an existing customer. The total cost is computed from the cost fields.
// @Tags ServiceRequest
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequestRequest true "Create Service Request Request"
// @Success 201 {object} response.Created "Service request created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests [post]
// @Security BearerAuth
func (handler *Handler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceRequest")
	defer scope.End()

	req := dto.CreateServiceRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request created successfully")

	response.WithCreated(w, id, "Service request created successfully")
}

// GetServiceRequests retrieves all service requests based on query parameters.
// @Summary Get all service requests
// @Description Search by description, customer or location, filter by status and by service date range.
// @Tags ServiceRequest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search text"
// @Param status query string false "Status or All"
// @Param from query string false "Service date on or after (YYYY-MM-DD)"
// @Param to query string false "Service date on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetServiceRequestsResponse] "List of service requests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests [get]
// @Security BearerAuth
func (handler *Handler) GetServiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	criteria, err := listview.CriteriaFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	requests, err := handler.service.GetAll(ctx, queryParams, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetServiceRequestByID retrieves a service request by ID.
// @Summary Get a service request by ID
// @Tags ServiceRequest
// @Produce json
// @Param id path int true "Service Request ID"
// @Success 200 {object} response.Data[dto.ServiceRequestResponse] "Service request details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequestByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	request, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request retrieved successfully")

	response.WithJSON(w, http.StatusOK, request)
}

// UpdateServiceRequest updates an existing service request.
// @Summary Update a service request by ID
// @Description Partially update a service request. Changing any cost field recomputes the total cost.
// @Tags ServiceRequest
// @Accept json
// @Produce json
// @Param id path int true "Service Request ID"
// @Param request body dto.UpdateServiceRequestRequest true "Update Service Request Request"
// @Success 200 {object} response.Message "Service request updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceRequest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateServiceRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request updated successfully")

	response.WithMessage(w, http.StatusOK, "Service request updated successfully")
}

// DeleteServiceRequest deletes a service request together with its quotes, payments and assignments.
// @Summary Delete a service request by ID
// @Tags ServiceRequest
// @Produce json
// @Param id path int true "Service Request ID"
// @Success 200 {object} response.Message "Service request deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteServiceRequest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request deleted successfully")

	response.WithMessage(w, http.StatusOK, "Service request deleted successfully")
}

// GetBalance returns the remaining balance of a service request.
// @Summary Get the remaining balance
// @Description Total cost minus the sum of completed payments, never below zero.
// @Tags ServiceRequest
// @Produce json
// @Param id path int true "Service Request ID"
// @Success 200 {object} response.Data[dto.BalanceResponse] "Balance"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests/{id}/balance [get]
// @Security BearerAuth
func (handler *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBalance")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	balance, err := handler.service.GetBalance(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get balance")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Balance retrieved successfully")

	response.WithJSON(w, http.StatusOK, balance)
}

// GenerateQuote creates a pending quote from the service request's total cost.
// @Summary Generate a quote
// @Description Amount is the total cost, valid from today for the configured number of months.
// @Tags ServiceRequest
// @Produce json
// @Param id path int true "Service Request ID"
// @Success 201 {object} response.Data[any] "Generated quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests/{id}/quotes/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateQuote")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	quote, err := handler.quoteService.Generate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate quote")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote generated successfully")

	response.WithJSON(w, http.StatusCreated, quote)
}

// AssignTechnicians replaces the set of technicians assigned to a service request.
// @Summary Assign technicians
// @Tags ServiceRequest
// @Accept json
// @Produce json
// @Param id path int true "Service Request ID"
// @Param request body dto.AssignTechniciansRequest true "Assign Technicians Request"
// @Success 200 {object} response.Message "Technicians assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests/{id}/technicians [put]
// @Security BearerAuth
func (handler *Handler) AssignTechnicians(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTechnicians")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.AssignTechniciansRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AssignTechnicians(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign technicians")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technicians assigned successfully")

	response.WithMessage(w, http.StatusOK, "Technicians assigned successfully")
}

// GetTechnicians lists the technicians assigned to a service request.
// @Summary Get assigned technicians
// @Tags ServiceRequest
// @Produce json
// @Param id path int true "Service Request ID"
// @Success 200 {object} response.Data[any] "Assigned technicians"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-requests/{id}/technicians [get]
// @Security BearerAuth
func (handler *Handler) GetTechnicians(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignedTechnicians")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	technicians, err := handler.service.GetTechnicians(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assigned technicians")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assigned technicians retrieved successfully")

	response.WithJSON(w, http.StatusOK, technicians)
}
