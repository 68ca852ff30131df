package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"riviera/config"
	"riviera/infras/otel"
	"riviera/internal/domains/booking/pricing"
	"riviera/internal/domains/draft/model"
	"riviera/internal/domains/draft/model/dto"
	roomModel "riviera/internal/domains/room/model"
	roomRepo "riviera/internal/domains/room/repository"
	unitModel "riviera/internal/domains/unit/model"
	unitRepo "riviera/internal/domains/unit/repository"
	"riviera/shared"
	"riviera/shared/cache"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/failure"
	"riviera/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Draft interface {
	Create(ctx context.Context, req dto.CreateDraftRequest) (dto.DraftResponse, error)
	Get(ctx context.Context, id, token string) (dto.DraftResponse, error)
	Resolve(ctx context.Context, id, token string) (model.Draft, error)
	Consume(ctx context.Context, id string) error
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	unitRepo unitRepo.Unit
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(roomRepo roomRepo.Room, unitRepo unitRepo.Unit, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Draft {
	return &serviceImpl{
		roomRepo: roomRepo,
		unitRepo: unitRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, err := timezone.Parse(time.DateOnly, req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-in date") // nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(time.DateOnly, req.CheckOutDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-out date") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Available {
		return res, failure.Conflict("room is not open for booking") // nolint:wrapcheck
	}

	available, err := s.unitRepo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: unitModel.FieldRoomID, Value: req.RoomID, Operator: gDto.FilterOperatorEq, Table: unitModel.TableName},
			gDto.Filter{Field: unitModel.FieldStatus, Value: unitModel.StatusAvailable, Operator: gDto.FilterOperatorEq, Table: unitModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count available units")

		return res, fmt.Errorf("failed to count available units: %w", err)
	}

	if available == 0 {
		return res, failure.Conflict("no units available for this room") // nolint:wrapcheck
	}

	quote, err := pricing.Compute(room.Price, checkIn, checkOut)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	now := timezone.Now()
	draft := model.Draft{
		ID:              uuid.NewString(),
		RoomID:          room.ID,
		RoomName:        room.Name,
		UserID:          user,
		GuestFirstName:  req.GuestFirstName,
		GuestLastName:   req.GuestLastName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
		Quote:           quote,
		Currency:        s.cfg.Payment.Currency,
		CreatedAt:       now,
		ExpiresAt:       now.Add(time.Duration(s.cfg.Draft.TTLSeconds) * time.Second),
	}

	if err = s.cache.Save(ctx, shared.BuildCacheKey(model.CachePrefix, draft.ID), draft, s.cfg.Draft.TTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save draft")

		return res, fmt.Errorf("failed to save draft: %w", err)
	}

	res.FromModel(draft, s.sign(draft.ID, draft.ExpiresAt))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, token string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.Resolve(ctx, id, token)
	if err != nil {
		return res, err
	}

	res.FromModel(draft, token)

	return res, nil
}

// Resolve verifies the token and loads the draft. Missing or expired drafts
// come back as not found so the caller cannot tell the two apart.
func (s *serviceImpl) Resolve(ctx context.Context, id, token string) (draft model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.verify(id, token); err != nil {
		return draft, err
	}

	err = s.cache.Get(ctx, shared.BuildCacheKey(model.CachePrefix, id), &draft)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return draft, failure.NotFound("booking draft not found or expired") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get draft")

		return draft, fmt.Errorf("failed to get draft: %w", err)
	}

	if timezone.Now().After(draft.ExpiresAt) {
		return draft, failure.NotFound("booking draft not found or expired") // nolint:wrapcheck
	}

	return draft, nil
}

func (s *serviceImpl) Consume(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Consume")
	defer scope.End()

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(model.CachePrefix, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete draft")

		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) sign(id string, expiresAt time.Time) string {
	exp := strconv.FormatInt(expiresAt.Unix(), 10)

	mac := hmac.New(sha256.New, []byte(s.cfg.Draft.SigningSecret))
	mac.Write([]byte(id + "." + exp))

	return exp + "." + hex.EncodeToString(mac.Sum(nil))
}

func (s *serviceImpl) verify(id, token string) error {
	exp, _, found := strings.Cut(token, ".")
	if !found {
		return failure.Unauthorized("invalid draft token") // nolint:wrapcheck
	}

	expUnix, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return failure.Unauthorized("invalid draft token") // nolint:wrapcheck
	}

	expiresAt := time.Unix(expUnix, 0)
	if !hmac.Equal([]byte(token), []byte(s.sign(id, expiresAt))) {
		return failure.Unauthorized("invalid draft token") // nolint:wrapcheck
	}

	if timezone.Now().After(expiresAt) {
		return failure.NotFound("booking draft not found or expired") // nolint:wrapcheck
	}

	return nil
}
