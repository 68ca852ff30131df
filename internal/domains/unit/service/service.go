package service

import (
	"context"
	"fmt"

	"riviera/config"
	"riviera/infras/otel"
	"riviera/internal/domains/unit/model"
	"riviera/internal/domains/unit/model/dto"
	"riviera/internal/domains/unit/repository"
	"riviera/shared"
	"riviera/shared/cache"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUnit      = "unit:get"
	cacheGetAllUnit   = "unit:gets"
	cacheCountUnit    = "unit:count"
	cacheAvailability = "unit:availability"
)

type Unit interface {
	Create(ctx context.Context, req dto.CreateUnitRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUnitsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UnitResponse, error)
	Update(ctx context.Context, req dto.UpdateUnitRequest, id string) error
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context) (dto.AvailabilityResponse, error)
	AvailableCount(ctx context.Context, roomID string) (int, error)
	RefreshStatuses(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo  repository.Unit
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Unit, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Unit {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUnitRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUnitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUnit, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for units")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count units")

		return res, fmt.Errorf("failed to count units: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get units")

		return res, fmt.Errorf("failed to get units: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save units to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountUnit, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count units")

		return res, fmt.Errorf("failed to count units: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save unit count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UnitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUnit, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	unit, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get unit")

		return res, fmt.Errorf("failed to get unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return res, failure.NotFound("unit not found") // nolint:wrapcheck
	}

	res.FromModel(unit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save unit to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUnitRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check unit existence")

		return fmt.Errorf("failed to check unit existence: %w", err)
	}

	if !exist {
		log.Error().Msg("unit not found")

		return failure.NotFound("unit not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update unit")

		return fmt.Errorf("failed to update unit: %w", err)
	}

	go s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check unit existence")

		return fmt.Errorf("failed to check unit existence: %w", err)
	}

	if !exist {
		return failure.NotFound("unit not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete unit")

		return fmt.Errorf("failed to delete unit: %w", err)
	}

	go s.invalidate(ctx, id)

	return nil
}

// Availability tallies available units per room across the whole inventory.
func (s *serviceImpl) Availability(ctx context.Context) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheAvailability, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheAvailability).Msg("cache hit for availability")

		return res, nil
	}

	counts, err := s.repo.CountAvailableByRoom(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read availability")

		return res, fmt.Errorf("failed to read availability: %w", err)
	}

	res.Rooms = make([]dto.RoomAvailability, 0, len(counts))
	for roomID, count := range counts {
		res.Rooms = append(res.Rooms, dto.RoomAvailability{RoomID: roomID, AvailableUnits: count})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheAvailability, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AvailableCount(ctx context.Context, roomID string) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusAvailable, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count available units")

		return res, fmt.Errorf("failed to count available units: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) RefreshStatuses(ctx context.Context) (affected int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshStatuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err = s.repo.RefreshStatuses(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh unit statuses")

		return 0, fmt.Errorf("failed to refresh unit statuses: %w", err)
	}

	log.Info().Int64("affected", affected).Msg("unit statuses refreshed")

	go s.invalidate(ctx, constant.Empty)

	return affected, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUnit, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete unit cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllUnit)
	shared.InvalidateCaches(c, s.cache, cacheCountUnit)

	if err := s.cache.Delete(c, cacheAvailability); err != nil {
		log.Error().Err(err).Msg("failed to delete availability cache")
	}
}
