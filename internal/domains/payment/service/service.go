package service

import (
	"context"
	"database/sql"
	"fmt"

	"riviera/config"
	"riviera/infras/otel"
	"riviera/infras/postgres"
	bookingModel "riviera/internal/domains/booking/model"
	bookingRepo "riviera/internal/domains/booking/repository"
	draftModel "riviera/internal/domains/draft/model"
	draftService "riviera/internal/domains/draft/service"
	"riviera/internal/domains/payment/gateway"
	"riviera/internal/domains/payment/model"
	"riviera/internal/domains/payment/model/dto"
	"riviera/internal/domains/payment/repository"
	unitRepo "riviera/internal/domains/unit/repository"
	"riviera/internal/events"
	"riviera/shared"
	"riviera/shared/cache"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/failure"
	gModel "riviera/shared/model"
	"riviera/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"

	// claimAttempts bounds how many units the finalizer tries before it
	// declares the room sold out.
	claimAttempts = 5
)

type Payment interface {
	Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (dto.InitiatePaymentResponse, error)
	Finalize(ctx context.Context, req dto.FinalizePaymentRequest) (dto.FinalizePaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	unitRepo    unitRepo.Unit
	drafts      draftService.Draft
	gateways    *gateway.Registry
	publisher   events.Publisher
	db          *postgres.Connection
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	unitRepo unitRepo.Unit,
	drafts draftService.Draft,
	gateways *gateway.Registry,
	publisher events.Publisher,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		unitRepo:    unitRepo,
		drafts:      drafts,
		gateways:    gateways,
		publisher:   publisher,
		db:          db,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Initiate opens a checkout with the chosen provider. The draft id doubles as
// the idempotency key: retrying with the same draft reuses the pending booking
// instead of inserting another one.
func (s *serviceImpl) Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (res dto.InitiatePaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Initiate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	method, err := gateway.ParseMethod(req.Method)
	if err != nil {
		return res, err
	}

	draft, err := s.drafts.Resolve(ctx, req.DraftID, req.Token)
	if err != nil {
		return res, err
	}

	booking, err := s.pendingBooking(ctx, draft, user, string(method))
	if err != nil {
		return res, err
	}

	gw, err := s.gateways.Resolve(method)
	if err != nil {
		return res, err
	}

	phone := draft.GuestPhone
	if req.PhoneNumber != constant.Empty {
		phone = req.PhoneNumber
	}

	initiated, err := gw.Initiate(ctx, gateway.InitiateRequest{
		Reference:     "booking_" + booking.ID,
		Description:   fmt.Sprintf("Hotel booking for %s", draft.RoomName),
		Amount:        draft.Quote.Total,
		Currency:      draft.Currency,
		CustomerEmail: draft.GuestEmail,
		CustomerPhone: phone,
		Channel:       req.Channel,
		ReturnURL:     fmt.Sprintf("%s/payment-success?booking_id=%s", s.cfg.App.BaseURL, booking.ID),
		CancelURL:     s.cfg.App.BaseURL + "/payment",
		NotifyURL:     s.cfg.App.BaseURL + "/v1/payments/finalize",
	})
	if err != nil {
		// The pending booking stays behind so the guest can retry with
		// the same draft.
		log.Error().Err(err).Str("bookingID", booking.ID).Str("method", string(method)).Msg("gateway initiation failed")

		return res, fmt.Errorf("failed to initiate payment: %w", err)
	}

	payment, err := s.upsertPayment(ctx, booking, user, string(method), initiated.TransactionID)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "booking:")
	}()

	return dto.InitiatePaymentResponse{
		BookingID:   booking.ID,
		PaymentID:   payment.ID,
		Method:      string(method),
		RedirectURL: initiated.RedirectURL,
	}, nil
}

func (s *serviceImpl) pendingBooking(ctx context.Context, draft draftModel.Draft, user, method string) (bookingModel.Booking, error) {
	existing, err := s.bookingRepo.Get(ctx, shared.FilterByID(draft.ID, bookingModel.FieldDraftID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up booking by draft")

		return existing, fmt.Errorf("failed to look up booking by draft: %w", err)
	}

	if existing.ID != constant.Empty {
		switch existing.Status {
		case bookingModel.StatusPending:
			return existing, nil
		case bookingModel.StatusCancelled:
			return existing, failure.Conflict("booking for this draft was cancelled") // nolint:wrapcheck
		default:
			return existing, failure.Conflict("booking for this draft is already confirmed") // nolint:wrapcheck
		}
	}

	booking := bookingModel.Booking{
		ID:              uuid.NewString(),
		DraftID:         draft.ID,
		RoomID:          draft.RoomID,
		UserID:          user,
		GuestFirstName:  draft.GuestFirstName,
		GuestLastName:   draft.GuestLastName,
		GuestEmail:      draft.GuestEmail,
		GuestPhone:      draft.GuestPhone,
		CheckInDate:     draft.CheckInDate,
		CheckOutDate:    draft.CheckOutDate,
		Adults:          draft.Adults,
		Children:        draft.Children,
		SpecialRequests: draft.SpecialRequests,
		Status:          bookingModel.StatusPending,
		Nights:          draft.Quote.Nights,
		Subtotal:        draft.Quote.Subtotal,
		Tax:             draft.Quote.Tax,
		TotalPrice:      draft.Quote.Total,
		Currency:        draft.Currency,
		PaymentMethod:   method,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create pending booking")

		return booking, fmt.Errorf("failed to create pending booking: %w", err)
	}

	return booking, nil
}

func (s *serviceImpl) upsertPayment(ctx context.Context, booking bookingModel.Booking, user, method, transactionID string) (model.Payment, error) {
	filter := shared.FilterByID(booking.ID, model.FieldBookingID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up payment")

		return existing, fmt.Errorf("failed to look up payment: %w", err)
	}

	if existing.ID != constant.Empty {
		updatedFields := map[string]any{
			model.FieldPaymentMethod: method,
			model.FieldTransactionID: transactionID,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update payment")

			return existing, fmt.Errorf("failed to update payment: %w", err)
		}

		existing.PaymentMethod = method
		existing.TransactionID = transactionID

		return existing, nil
	}

	payment := model.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		UserID:        user,
		Amount:        booking.TotalPrice,
		Currency:      booking.Currency,
		PaymentMethod: method,
		PaymentStatus: model.StatusPending,
		TransactionID: transactionID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return payment, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// Finalize verifies the charge with the provider, then confirms the booking
// and claims a unit in one transaction. Calling it again for a confirmed
// booking is a no-op.
func (s *serviceImpl) Finalize(ctx context.Context, req dto.FinalizePaymentRequest) (res dto.FinalizePaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finalize")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	switch booking.Status {
	case bookingModel.StatusConfirmed, bookingModel.StatusCompleted:
		return dto.FinalizePaymentResponse{
			BookingID: booking.ID,
			UnitID:    booking.UnitID.String,
			Status:    booking.Status,
		}, nil
	case bookingModel.StatusCancelled:
		return res, failure.Conflict("booking was cancelled") // nolint:wrapcheck
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(booking.ID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.BadRequestFromString("payment was never initiated for this booking") // nolint:wrapcheck
	}

	method, err := gateway.ParseMethod(payment.PaymentMethod)
	if err != nil {
		return res, err
	}

	gw, err := s.gateways.Resolve(method)
	if err != nil {
		return res, err
	}

	verified, err := gw.Verify(ctx, payment.TransactionID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("gateway verification failed")

		return res, fmt.Errorf("failed to verify payment: %w", err)
	}

	if !verified.Paid {
		return res, failure.BadRequestFromString("payment has not been completed") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	unitID, err := s.confirm(ctx, booking, payment, user)
	if err != nil {
		return res, err
	}

	if unitID == constant.Empty {
		go s.afterCancellation(ctx, booking)

		return res, failure.Conflict("no units left for this room") // nolint:wrapcheck
	}

	go s.afterConfirmation(ctx, booking, unitID)

	return dto.FinalizePaymentResponse{
		BookingID: booking.ID,
		UnitID:    unitID,
		Status:    bookingModel.StatusConfirmed,
	}, nil
}

// confirm runs the claim and the status updates in a single transaction.
// Returns the claimed unit id, or empty when the room sold out, in which case
// the booking is cancelled in the same transaction.
func (s *serviceImpl) confirm(ctx context.Context, booking bookingModel.Booking, payment model.Payment, user string) (unitID string, err error) {
	tx, err := s.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return constant.Empty, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	for range claimAttempts {
		candidate, claimErr := s.unitRepo.FirstAvailableTx(ctx, tx, booking.RoomID)
		if claimErr != nil {
			err = claimErr

			return constant.Empty, err
		}

		if candidate == constant.Empty {
			break
		}

		claimed, claimErr := s.unitRepo.ClaimTx(ctx, tx, candidate)
		if claimErr != nil {
			err = claimErr

			return constant.Empty, err
		}

		if claimed {
			unitID = candidate

			break
		}
	}

	bookingFilter := shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)

	if unitID == constant.Empty {
		err = s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldStatus: bookingModel.StatusCancelled,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, bookingFilter)
		if err != nil {
			return constant.Empty, fmt.Errorf("failed to cancel booking: %w", err)
		}

		if err = tx.Commit(); err != nil {
			log.Error().Err(err).Msg("failed to commit transaction")

			return constant.Empty, fmt.Errorf("failed to commit transaction: %w", err)
		}

		return constant.Empty, nil
	}

	err = s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
		bookingModel.FieldStatus: bookingModel.StatusConfirmed,
		bookingModel.FieldUnitID: sql.NullString{String: unitID, Valid: true},
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, bookingFilter)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to confirm booking: %w", err)
	}

	err = s.repo.UpdateTx(ctx, tx, map[string]any{
		model.FieldPaymentStatus: model.StatusCompleted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(payment.ID, model.FieldID, model.TableName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to complete payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return constant.Empty, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return unitID, nil
}

func (s *serviceImpl) afterConfirmation(ctx context.Context, booking bookingModel.Booking, unitID string) {
	c := context.WithoutCancel(ctx)

	if err := s.drafts.Consume(c, booking.DraftID); err != nil {
		log.Error().Err(err).Str("draftID", booking.DraftID).Msg("failed to consume draft")
	}

	err := s.publisher.PublishBookingConfirmed(c, events.BookingConfirmed{
		BookingID:      booking.ID,
		RoomID:         booking.RoomID,
		UnitID:         unitID,
		GuestFirstName: booking.GuestFirstName,
		GuestLastName:  booking.GuestLastName,
		GuestEmail:     booking.GuestEmail,
		CheckInDate:    booking.CheckInDate,
		CheckOutDate:   booking.CheckOutDate,
		TotalPrice:     booking.TotalPrice,
		Currency:       booking.Currency,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish confirmation event")
	}

	shared.InvalidateCaches(c, s.cache, "booking:")
	shared.InvalidateCaches(c, s.cache, "unit:")
	shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
	shared.InvalidateCaches(c, s.cache, cacheCountPayment)
}

func (s *serviceImpl) afterCancellation(ctx context.Context, booking bookingModel.Booking) {
	c := context.WithoutCancel(ctx)

	err := s.publisher.PublishBookingCancelled(c, events.BookingCancelled{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		GuestEmail: booking.GuestEmail,
		Reason:     "no units left for this room",
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish cancellation event")
	}

	shared.InvalidateCaches(c, s.cache, "booking:")
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}
