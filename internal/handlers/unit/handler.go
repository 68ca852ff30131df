package unit

import (
	"net/http"
	"riviera/infras/otel"
	"riviera/internal/domains/unit/model"
	"riviera/internal/domains/unit/model/dto"
	"riviera/internal/domains/unit/service"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/validator"
	"riviera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Unit
	otel    otel.Otel
}

func New(service service.Unit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/units", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateUnit)
		routerGroup.Get("/", handler.GetUnits)
		routerGroup.Post("/refresh-statuses", handler.RefreshStatuses)
		routerGroup.Get("/{id}", handler.GetUnitByID)
		routerGroup.Patch("/{id}", handler.UpdateUnit)
		routerGroup.Delete("/{id}", handler.DeleteUnit)
	})

	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailability)
		routerGroup.Get("/{id}", handler.GetRoomAvailability)
	})
}

// CreateUnit handles the creation of a new room unit.
// @Summary Create a new room unit
// @Description Create a new physical unit for a room.
// @Tags Unit
// @Accept json
// @Produce json
// @Param request body dto.CreateUnitRequest true "Create Unit Request"
// @Success 201 {object} response.Message "Unit created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units [post]
// @Security BearerAuth
func (handler *Handler) CreateUnit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUnit")
	defer scope.End()

	req := dto.CreateUnitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create unit")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Unit created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Unit created successfully")
}

// GetUnits retrieves all room units based on query parameters.
// @Summary Get all room units
// @Description Retrieve all room units with optional filtering and pagination.
// @Tags Unit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetUnitsResponse "List of room units"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units [get]
// @Security BearerAuth
func (handler *Handler) GetUnits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRoomID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
		},
	}

	units, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get units")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Units retrieved successfully")

	response.WithJSON(w, http.StatusOK, units)
}

// GetUnitByID retrieves a room unit by its ID.
// @Summary Get a room unit by ID
// @Description Retrieve a room unit by its unique identifier.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} dto.UnitResponse "Unit details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUnitByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnitByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	unit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unit by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unit retrieved successfully")

	response.WithJSON(w, http.StatusOK, unit)
}

// UpdateUnit updates an existing room unit by its ID.
// @Summary Update a room unit by ID
// @Description Update the code or status of an existing room unit.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param request body dto.UpdateUnitRequest true "Update Unit Request"
// @Success 200 {object} response.Message "Unit updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUnit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateUnitRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update unit")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Unit updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Unit updated successfully")
}

// DeleteUnit deletes a room unit by its ID.
// @Summary Delete a room unit by ID
// @Description Delete a room unit using its unique identifier.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} response.Message "Unit deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUnit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete unit")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Unit deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Unit deleted successfully")
}

// RefreshStatuses recomputes unit statuses from current confirmed bookings.
// @Summary Refresh room unit statuses
// @Description Recompute the status of every unit from currently active confirmed bookings.
// @Tags Unit
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Unit statuses refreshed"
// @Failure 500 {object} response.Error
// @Router /v1/units/refresh-statuses [post]
// @Security BearerAuth
func (handler *Handler) RefreshStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshStatuses")
	defer scope.End()

	updated, err := handler.service.RefreshStatuses(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh unit statuses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unit statuses refreshed")

	response.WithJSON(w, http.StatusOK, map[string]any{
		"message": "Unit statuses refreshed",
		"updated": updated,
	})
}

// GetAvailability returns the available unit count per room.
// @Summary Get availability for all rooms
// @Description Retrieve the number of available units for every room.
// @Tags Unit
// @Accept json
// @Produce json
// @Success 200 {object} dto.AvailabilityResponse "Available unit counts per room"
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	availability, err := handler.service.Availability(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetRoomAvailability returns the available unit count for one room.
// @Summary Get availability for a room
// @Description Retrieve the number of available units for a single room.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomAvailability "Available unit count"
// @Failure 500 {object} response.Error
// @Router /v1/availability/{id} [get]
func (handler *Handler) GetRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomAvailability")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamID)

	count, err := handler.service.AvailableCount(ctx, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, dto.RoomAvailability{
		RoomID:         roomID,
		AvailableUnits: count,
	})
}
