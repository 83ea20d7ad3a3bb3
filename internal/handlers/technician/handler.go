package technician

import (
	"fieldservice/infras/otel"
	requestService "fieldservice/internal/domains/servicerequest/service"
	"fieldservice/internal/domains/technician/model/dto"
	"fieldservice/internal/domains/technician/service"
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
	service        service.Technician
	requestService requestService.ServiceRequest
	otel           otel.Otel
}

func New(service service.Technician, requestService requestService.ServiceRequest, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		requestService: requestService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/technicians", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTechnician)
		routerGroup.Get("/", handler.GetTechnicians)
		routerGroup.Get("/{id}", handler.GetTechnicianByID)
		routerGroup.Patch("/{id}", handler.UpdateTechnician)
		routerGroup.Delete("/{id}", handler.DeleteTechnician)
		routerGroup.Get("/{id}/service-requests", handler.GetServiceRequests)
	})
}

// CreateTechnician handles the creation of a new technician.
// @Summary Create a new technician
// @Tags Technician
// @Accept json
// @Produce json
// @Param request body dto.CreateTechnicianRequest true "Create Technician Request"
// @Success 201 {object} response.Created "Technician created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/technicians [post]
// @Security BearerAuth
func (handler *Handler) CreateTechnician(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTechnician")
	defer scope.End()

	req := dto.CreateTechnicianRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create technician")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technician created successfully")

	response.WithCreated(w, id, "Technician created successfully")
}

// GetTechnicians retrieves all technicians based on query parameters.
// @Summary Get all technicians
// @Description Search technicians by name, email, phone, license, certification or coverage area. The status filter matches Active or Inactive.
// @Tags Technician
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search text"
// @Param status query string false "Active, Inactive or All"
// @Param from query string false "Created on or after (YYYY-MM-DD)"
// @Param to query string false "Created on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetTechniciansResponse] "List of technicians"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/technicians [get]
// @Security BearerAuth
func (handler *Handler) GetTechnicians(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTechnicians")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	criteria, err := listview.CriteriaFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	technicians, err := handler.service.GetAll(ctx, queryParams, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get technicians")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technicians retrieved successfully")

	response.WithJSON(w, http.StatusOK, technicians)
}

// GetTechnicianByID retrieves a technician by ID.
// @Summary Get a technician by ID
// @Tags Technician
// @Produce json
// @Param id path int true "Technician ID"
// @Success 200 {object} response.Data[dto.TechnicianResponse] "Technician details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/technicians/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTechnicianByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTechnicianByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	technician, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get technician by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technician retrieved successfully")

	response.WithJSON(w, http.StatusOK, technician)
}

// UpdateTechnician updates an existing technician.
// @Summary Update a technician by ID
// @Tags Technician
// @Accept json
// @Produce json
// @Param id path int true "Technician ID"
// @Param request body dto.UpdateTechnicianRequest true "Update Technician Request"
// @Success 200 {object} response.Message "Technician updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/technicians/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTechnician(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTechnician")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTechnicianRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update technician")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technician updated successfully")

	response.WithMessage(w, http.StatusOK, "Technician updated successfully")
}

// DeleteTechnician deletes a technician.
// @Summary Delete a technician by ID
// @Description Technicians still assigned to service requests cannot be deleted.
// @Tags Technician
// @Produce json
// @Param id path int true "Technician ID"
// @Success 200 {object} response.Message "Technician deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/technicians/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTechnician(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTechnician")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete technician")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technician deleted successfully")

	response.WithMessage(w, http.StatusOK, "Technician deleted successfully")
}

// GetServiceRequests lists the service requests a technician is assigned to.
// @Summary Get service requests assigned to a technician
// @Tags Technician
// @Produce json
// @Param id path int true "Technician ID"
// @Success 200 {object} response.Data[any] "Assigned service requests"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/technicians/{id}/service-requests [get]
// @Security BearerAuth
func (handler *Handler) GetServiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTechnicianServiceRequests")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	requests, err := handler.requestService.GetByTechnician(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests of technician")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technician service requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}
