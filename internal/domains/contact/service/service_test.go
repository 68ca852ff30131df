package service_test

import (
	"context"
	"errors"
	"testing"

	"riviera/config"
	"riviera/infras/otel/mocks"
	contactMocks "riviera/internal/domains/contact/mocks"
	"riviera/internal/domains/contact/model"
	"riviera/internal/domains/contact/model/dto"
	"riviera/internal/domains/contact/service"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	req := dto.CreateContactMessageRequest{
		Name:    "Ama Mensah",
		Email:   "ama@example.com",
		Phone:   "+233201234567",
		Subject: "Airport transfer",
		Message: "Do you offer pickups from the airport?",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
	}{
		{
			name: "anonymous visitor recorded as guest",
			ctx:  context.Background(),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg model.ContactMessage) error {
						assert.Equal(t, constant.ContextGuest, msg.CreatedBy)
						assert.Equal(t, "Airport transfer", msg.Subject)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "authenticated user recorded by id",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id"),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg model.ContactMessage) error {
						assert.Equal(t, "user-id", msg.CreatedBy)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			ctx:  context.Background(),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(tt.ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	ctx := context.Background()
	params := gDto.QueryParams{Limit: 10, Page: 1}
	filter := gDto.FilterGroup{}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContactMessage{
				{ID: "msg-1", Subject: "Airport transfer"},
				{ID: "msg-2", Subject: "Late checkout"},
			}, nil)

		result, err := svc.GetAll(ctx, params, filter)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.TotalData)
		assert.Len(t, result.Messages, 2)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))

		_, err := svc.GetAll(ctx, params, filter)
		assert.Error(t, err)
	})

	t.Run("get error", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.GetAll(ctx, params, filter)
		assert.Error(t, err)
	})
}

func TestContactService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ContactMessage{ID: "msg-1", Subject: "Airport transfer", Resolved: true}, nil)

		result, err := svc.Get(ctx, "msg-1")
		assert.NoError(t, err)
		assert.Equal(t, "msg-1", result.ID)
		assert.True(t, result.Resolved)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ContactMessage{}, nil)

		_, err := svc.Get(ctx, "missing-id")
		assert.Error(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ContactMessage{}, errors.New("connection refused"))

		_, err := svc.Get(ctx, "msg-1")
		assert.Error(t, err)
	})
}

func TestContactService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
	resolved := true

	tests := []struct {
		name      string
		req       dto.UpdateContactMessageRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "marks message resolved",
			req:  dto.UpdateContactMessageRequest{Resolved: &resolved},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty request",
			req:       dto.UpdateContactMessageRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "not found",
			req:  dto.UpdateContactMessageRequest{Resolved: &resolved},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdateContactMessageRequest{Resolved: &resolved},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(ctx, tt.req, "msg-1")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(ctx, "msg-1")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, "missing-id")
		assert.Error(t, err)
	})

	t.Run("delete error", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		err := svc.Delete(ctx, "msg-1")
		assert.Error(t, err)
	})
}
