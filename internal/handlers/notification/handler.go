package notification

import (
	"net/http"
	"riviera/infras/otel"
	"riviera/internal/domains/notification/model/dto"
	"riviera/internal/domains/notification/service"
	"riviera/shared/constant"
	"riviera/shared/validator"
	"riviera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SendNotification)
	})
}

// SendNotification sends a booking notification through the requested channel.
// @Summary Send a booking notification
// @Description Send a confirmation, reminder or cancellation notification for a booking.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendNotificationRequest true "Send Notification Request"
// @Success 200 {object} dto.SendNotificationResponse "Notification sent"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [post]
// @Security BearerAuth
func (handler *Handler) SendNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendNotification")
	defer scope.End()

	req := dto.SendNotificationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Send(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send notification")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Notification sent successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
