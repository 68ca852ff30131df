package contact

import (
	"net/http"
	"riviera/infras/otel"
	"riviera/internal/domains/contact/model"
	"riviera/internal/domains/contact/model/dto"
	"riviera/internal/domains/contact/service"
	"riviera/shared"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/validator"
	"riviera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact-messages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContactMessage)
		routerGroup.Get("/", handler.GetContactMessages)
		routerGroup.Get("/{id}", handler.GetContactMessageByID)
		routerGroup.Patch("/{id}", handler.UpdateContactMessage)
		routerGroup.Delete("/{id}", handler.DeleteContactMessage)
	})
}

// CreateContactMessage handles submissions from the public contact form.
// @Summary Submit a contact message
// @Description Submit a message through the public contact form.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Create Contact Message Request"
// @Success 201 {object} response.Message "Contact message created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact-messages [post]
func (handler *Handler) CreateContactMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContactMessage")
	defer scope.End()

	req := dto.CreateContactMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact message created successfully")

	response.WithMessage(writer, http.StatusCreated, "Contact message created successfully")
}

// GetContactMessages retrieves all contact messages based on query parameters.
// @Summary Get all contact messages
// @Description Retrieve all contact messages with optional filtering and pagination.
// @Tags Contact
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Param subject query string false "Filter by subject"
// @Param resolved query boolean false "Filter by resolution status"
// @Success 200 {object} dto.GetContactMessagesResponse "List of contact messages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact-messages [get]
// @Security BearerAuth
func (handler *Handler) GetContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldEmail),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldSubject,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldSubject),
				Table:    model.TableName,
			},
		},
	}

	if resolved := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldResolved)); resolved != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldResolved,
			Operator: gDto.FilterOperatorEq,
			Value:    *resolved,
			Table:    model.TableName,
		})
	}

	messages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}

// GetContactMessageByID retrieves a contact message by its ID.
// @Summary Get a contact message by ID
// @Description Retrieve a contact message by its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Success 200 {object} dto.ContactMessageResponse "Contact message details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact-messages/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContactMessageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactMessageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	message, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact message by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message retrieved successfully")

	response.WithJSON(w, http.StatusOK, message)
}

// UpdateContactMessage updates an existing contact message by its ID.
// @Summary Update a contact message by ID
// @Description Mark a contact message as resolved or unresolved.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Param request body dto.UpdateContactMessageRequest true "Update Contact Message Request"
// @Success 200 {object} response.Message "Contact message updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact-messages/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateContactMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact message")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact message updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contact message updated successfully")
}

// DeleteContactMessage deletes a contact message by its ID.
// @Summary Delete a contact message by ID
// @Description Delete a contact message using its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Success 200 {object} response.Message "Contact message deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact-messages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContactMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact message")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact message deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contact message deleted successfully")
}
