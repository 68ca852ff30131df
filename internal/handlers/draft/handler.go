package draft

import (
	"net/http"
	"riviera/infras/otel"
	"riviera/internal/domains/draft/model/dto"
	"riviera/internal/domains/draft/service"
	"riviera/shared/constant"
	"riviera/shared/validator"
	"riviera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Draft
	otel    otel.Otel
}

func New(service service.Draft, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-drafts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDraft)
		routerGroup.Get("/{id}", handler.GetDraft)
	})
}

// CreateDraft prices a stay and stores it as a short-lived booking draft.
// @Summary Create a booking draft
// @Description Price a stay server-side and store the quote as a signed, short-lived draft.
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body dto.CreateDraftRequest true "Create Draft Request"
// @Success 201 {object} dto.DraftResponse "Draft created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-drafts [post]
func (handler *Handler) CreateDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDraft")
	defer scope.End()

	req := dto.CreateDraftRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	draft, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking draft")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking draft created successfully")

	response.WithJSON(writer, http.StatusCreated, draft)
}

// GetDraft retrieves a booking draft by its ID and signed token.
// @Summary Get a booking draft
// @Description Retrieve a booking draft by its ID. The signed token returned at creation is required.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param token query string true "Signed draft token"
// @Success 200 {object} dto.DraftResponse "Draft details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-drafts/{id} [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	token := r.URL.Query().Get("token")

	draft, err := handler.service.Get(ctx, id, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking draft retrieved successfully")

	response.WithJSON(w, http.StatusOK, draft)
}
