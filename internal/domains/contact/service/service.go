package service

import (
	"context"
	"fmt"
	"riviera/config"
	"riviera/infras/otel"
	"riviera/internal/domains/contact/model"
	"riviera/internal/domains/contact/model/dto"
	"riviera/internal/domains/contact/repository"
	"riviera/shared"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/failure"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactMessageRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactMessagesResponse, error)
	Get(ctx context.Context, id string) (dto.ContactMessageResponse, error)
	Update(ctx context.Context, req dto.UpdateContactMessageRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Contact
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactMessageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The contact form is public, so there is usually no authenticated user.
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create contact message")

		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")

		return res, fmt.Errorf("failed to count contact messages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return res, fmt.Errorf("failed to get contact message: %w", err)
	}

	if message.ID == "" {
		return res, failure.NotFound("contact message not found") // nolint:wrapcheck
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContactMessageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateContactMessageRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact message exists")

		return fmt.Errorf("failed to check if contact message exists: %w", err)
	}

	if !exist {
		log.Error().Msg("contact message not found")

		return failure.NotFound("contact message not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update contact message")

		return fmt.Errorf("failed to update contact message: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact message exists")

		return fmt.Errorf("failed to check if contact message exists: %w", err)
	}

	if !exist {
		log.Error().Msg("contact message not found")

		return failure.NotFound("contact message not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete contact message")

		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	return nil
}
