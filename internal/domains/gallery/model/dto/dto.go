package dto

import (
	"mime/multipart"
	"riviera/internal/domains/gallery/model"
	"riviera/shared"
	gDto "riviera/shared/dto"
	gModel "riviera/shared/model"
	"riviera/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomImageRequest struct {
	RoomID    string `json:"room_id" validate:"required,uuid"`
	ImageURL  string `json:"image_url" validate:"required,url"`
	Alt       string `json:"alt" validate:"omitempty,max=255"`
	SortOrder int    `json:"sort_order" validate:"omitempty,min=0"`
}

func (c *CreateRoomImageRequest) ToModel(user string) model.RoomImage {
	return model.RoomImage{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		ImageURL:  c.ImageURL,
		Alt:       c.Alt,
		SortOrder: c.SortOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomImageRequest struct {
	ImageURL  string `db:"image_url"  json:"image_url"  validate:"omitempty,url"`
	Alt       string `db:"alt"        json:"alt"        validate:"omitempty,max=255"`
	SortOrder *int   `db:"sort_order" json:"sort_order" validate:"omitempty,min=0"`
}

type RoomImageResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	ImageURL  string `json:"image_url"`
	Alt       string `json:"alt"`
	SortOrder int    `json:"sort_order"`
	gDto.Metadata
}

func (r *RoomImageResponse) FromModel(model model.RoomImage) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.ImageURL = model.ImageURL
	r.Alt = model.Alt
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomImagesResponse struct {
	Images    []RoomImageResponse `json:"images"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetRoomImagesResponse) FromModels(models []model.RoomImage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Images = make([]RoomImageResponse, len(models))
	for i, m := range models {
		r.Images[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
