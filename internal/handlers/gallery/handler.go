package gallery

import (
	"net/http"
	"riviera/infras/otel"
	"riviera/internal/domains/gallery/model"
	"riviera/internal/domains/gallery/model/dto"
	"riviera/internal/domains/gallery/service"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/validator"
	"riviera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-images", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomImage)
		routerGroup.Get("/", handler.GetRoomImages)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Get("/{id}", handler.GetRoomImageByID)
		routerGroup.Patch("/{id}", handler.UpdateRoomImage)
		routerGroup.Delete("/{id}", handler.DeleteRoomImage)
	})
}

// CreateRoomImage attaches an uploaded image to a room.
// @Summary Create a room image
// @Description Attach an uploaded image to a room with alt text and sort order.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomImageRequest true "Create Room Image Request"
// @Success 201 {object} response.Message "Room image created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-images [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomImage")
	defer scope.End()

	req := dto.CreateRoomImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room image")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room image created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room image created successfully")
}

// GetRoomImages retrieves all room images based on query parameters.
// @Summary Get all room images
// @Description Retrieve all room images with optional filtering and pagination.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} dto.GetRoomImagesResponse "List of room images"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-images [get]
func (handler *Handler) GetRoomImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomImages")
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
		},
	}

	images, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room images retrieved successfully")

	response.WithJSON(w, http.StatusOK, images)
}

// GetRoomImageByID retrieves a room image by its ID.
// @Summary Get a room image by ID
// @Description Retrieve a room image by its unique identifier.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Room Image ID"
// @Success 200 {object} dto.RoomImageResponse "Room image details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-images/{id} [get]
func (handler *Handler) GetRoomImageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomImageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	image, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room image by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room image retrieved successfully")

	response.WithJSON(w, http.StatusOK, image)
}

// UpdateRoomImage updates an existing room image by its ID.
// @Summary Update a room image by ID
// @Description Update the URL, alt text or sort order of an existing room image.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Room Image ID"
// @Param request body dto.UpdateRoomImageRequest true "Update Room Image Request"
// @Success 200 {object} response.Message "Room image updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-images/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomImageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room image updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room image updated successfully")
}

// DeleteRoomImage deletes a room image by its ID.
// @Summary Delete a room image by ID
// @Description Delete a room image and its stored file.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Room Image ID"
// @Success 200 {object} response.Message "Room image deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-images/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room image deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room image deleted successfully")
}

// UploadImage uploads an image file and returns its public URL.
// @Summary Upload a room image file
// @Description Upload an image file to object storage and get back its public URL.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse "Uploaded image details"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-images/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read image file")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
