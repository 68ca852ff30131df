package payment

import (
	"net/http"
	"riviera/infras/otel"
	"riviera/internal/domains/payment/model"
	"riviera/internal/domains/payment/model/dto"
	"riviera/internal/domains/payment/service"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/validator"
	"riviera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/initiate", handler.InitiatePayment)
		routerGroup.Post("/finalize", handler.FinalizePayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
	})
}

// InitiatePayment creates a pending booking from a draft and starts a gateway checkout.
// @Summary Initiate a payment
// @Description Create a pending booking from a signed draft and start a checkout with the selected gateway. Returns the redirect URL.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.InitiatePaymentRequest true "Initiate Payment Request"
// @Success 200 {object} dto.InitiatePaymentResponse "Payment initiated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/initiate [post]
// @Security BearerAuth
func (handler *Handler) InitiatePayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitiatePayment")
	defer scope.End()

	req := dto.InitiatePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Initiate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initiate payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment initiated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// FinalizePayment verifies a gateway payment and confirms the booking.
// @Summary Finalize a payment
// @Description Verify the payment with its gateway, claim a unit and confirm the booking.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.FinalizePaymentRequest true "Finalize Payment Request"
// @Success 200 {object} dto.FinalizePaymentResponse "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/finalize [post]
// @Security BearerAuth
func (handler *Handler) FinalizePayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinalizePayment")
	defer scope.End()

	req := dto.FinalizePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Finalize(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to finalize payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment finalized successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPayments retrieves all payments based on query parameters.
// @Summary Get all payments
// @Description Retrieve all payments with optional filtering and pagination.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param payment_status query string false "Filter by payment status"
// @Param payment_method query string false "Filter by payment method"
// @Param booking_id query string false "Filter by booking"
// @Success 200 {object} dto.GetPaymentsResponse "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPaymentStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldPaymentStatus),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPaymentMethod,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldPaymentMethod),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldBookingID),
				Table:    model.TableName,
			},
		},
	}

	payments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves a payment by its ID.
// @Summary Get a payment by ID
// @Description Retrieve a payment by its unique identifier.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse "Payment details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment retrieved successfully")

	response.WithJSON(w, http.StatusOK, payment)
}
