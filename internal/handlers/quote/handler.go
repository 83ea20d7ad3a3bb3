package quote

import (
	"context"
	"fieldservice/infras/otel"
	"fieldservice/internal/domains/quote/model/dto"
	"fieldservice/internal/domains/quote/service"
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
	service service.Quote
	otel    otel.Otel
}

func New(service service.Quote, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateQuote)
		routerGroup.Get("/", handler.GetQuotes)
		routerGroup.Get("/{id}", handler.GetQuoteByID)
		routerGroup.Patch("/{id}", handler.UpdateQuote)
		routerGroup.Delete("/{id}", handler.DeleteQuote)
		routerGroup.Post("/{id}/approve", handler.ApproveQuote)
		routerGroup.Post("/{id}/reject", handler.RejectQuote)
	})
}

// CreateQuote handles the creation of a quote with an explicit amount and validity.
// @Summary Create a new quote
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequest true "Create Quote Request"
// @Success 201 {object} response.Created "Quote created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes [post]
// @Security BearerAuth
func (handler *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuote")
	defer scope.End()

	req := dto.CreateQuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create quote")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote created successfully")

	response.WithCreated(w, id, "Quote created successfully")
}

// GetQuotes retrieves all quotes based on query parameters.
// @Summary Get all quotes
// @Description Search by service description, filter by status and by valid_from date range.
// @Tags Quote
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search text"
// @Param status query string false "Pending, Approved, Rejected or All"
// @Param from query string false "Valid from on or after (YYYY-MM-DD)"
// @Param to query string false "Valid from on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetQuotesResponse] "List of quotes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes [get]
// @Security BearerAuth
func (handler *Handler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	criteria, err := listview.CriteriaFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	quotes, err := handler.service.GetAll(ctx, queryParams, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotes retrieved successfully")

	response.WithJSON(w, http.StatusOK, quotes)
}

// GetQuoteByID retrieves a quote by ID.
// @Summary Get a quote by ID
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetQuoteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuoteByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quote by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote retrieved successfully")

	response.WithJSON(w, http.StatusOK, quote)
}

// UpdateQuote edits the amount, validity or notes of a pending quote.
// @Summary Update a quote by ID
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param request body dto.UpdateQuoteRequest true "Update Quote Request"
// @Success 200 {object} response.Message "Quote updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQuote")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateQuoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update quote")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote updated successfully")

	response.WithMessage(w, http.StatusOK, "Quote updated successfully")
}

// DeleteQuote deletes a quote.
// @Summary Delete a quote by ID
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response.Message "Quote deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteQuote")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete quote")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote deleted successfully")

	response.WithMessage(w, http.StatusOK, "Quote deleted successfully")
}

// ApproveQuote moves a pending quote to Approved.
// @Summary Approve a quote
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response.Message "Quote approved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveQuote(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ApproveQuote", "Quote approved successfully", handler.service.Approve)
}

// RejectQuote moves a pending quote to Rejected.
// @Summary Reject a quote
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response.Message "Quote rejected successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectQuote(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "RejectQuote", "Quote rejected successfully", handler.service.Reject)
}

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, name, message string, action func(context.Context, int64) error) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := action(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("quote_id", id).Msg("failed to change quote status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(message)

	response.WithMessage(w, http.StatusOK, message)
}
