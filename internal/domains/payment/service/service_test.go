package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"riviera/config"
	"riviera/infras/otel/mocks"
	"riviera/infras/postgres"
	bookingMocks "riviera/internal/domains/booking/mocks"
	bookingModel "riviera/internal/domains/booking/model"
	"riviera/internal/domains/booking/pricing"
	draftMocks "riviera/internal/domains/draft/mocks"
	draftModel "riviera/internal/domains/draft/model"
	"riviera/internal/domains/payment/gateway"
	paymentMocks "riviera/internal/domains/payment/mocks"
	"riviera/internal/domains/payment/model"
	"riviera/internal/domains/payment/model/dto"
	"riviera/internal/domains/payment/service"
	unitMocks "riviera/internal/domains/unit/mocks"
	eventMocks "riviera/internal/events/mocks"
	cacheMocks "riviera/shared/cache/mocks"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	gModel "riviera/shared/model"
	"riviera/shared/timezone"
)

func testDraft() draftModel.Draft {
	return draftModel.Draft{
		ID:             "11111111-1111-1111-1111-111111111111",
		RoomID:         "22222222-2222-2222-2222-222222222222",
		RoomName:       "Deluxe Ocean View",
		UserID:         "test-user-id",
		GuestFirstName: "Jane",
		GuestLastName:  "Doe",
		GuestEmail:     "jane@example.com",
		GuestPhone:     "+237600000000",
		CheckInDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		Adults:         2,
		Quote: pricing.Quote{
			Nights:   3,
			Rate:     399,
			Subtotal: 1197,
			Tax:      144,
			Total:    1341,
		},
		Currency:  "USD",
		CreatedAt: timezone.Now(),
		ExpiresAt: timezone.Now().Add(30 * time.Minute),
	}
}

func pendingBooking() bookingModel.Booking {
	draft := testDraft()

	return bookingModel.Booking{
		ID:             "33333333-3333-3333-3333-333333333333",
		DraftID:        draft.ID,
		RoomID:         draft.RoomID,
		UserID:         "test-user-id",
		GuestFirstName: draft.GuestFirstName,
		GuestLastName:  draft.GuestLastName,
		GuestEmail:     draft.GuestEmail,
		GuestPhone:     draft.GuestPhone,
		CheckInDate:    draft.CheckInDate,
		CheckOutDate:   draft.CheckOutDate,
		Adults:         draft.Adults,
		Status:         bookingModel.StatusPending,
		Nights:         draft.Quote.Nights,
		Subtotal:       draft.Quote.Subtotal,
		Tax:            draft.Quote.Tax,
		TotalPrice:     draft.Quote.Total,
		Currency:       draft.Currency,
		PaymentMethod:  "card",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user-id",
			ModifiedBy: "test-user-id",
		},
	}
}

func TestPaymentService_Initiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockUnitRepo := unitMocks.NewMockUnit(ctrl)
	mockDrafts := draftMocks.NewMockDraft(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockGateway.EXPECT().Method().Return(gateway.MethodCard)
	registry := gateway.NewRegistry(mockGateway)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.BaseURL = "https://riviera.example.com"

	svc := service.New(
		mockRepo, mockBookingRepo, mockUnitRepo, mockDrafts,
		registry, mockPublisher, &postgres.Connection{}, cfg, mockCache, mockOtel,
	)

	draft := testDraft()
	booking := pendingBooking()

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.InitiatePaymentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "unauthenticated request creates nothing",
			ctx:  context.Background(),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "token",
				Method:  "card",
			},
			setupMock: func() {
				// No expectations: neither a booking nor a payment row
				// may be written for an anonymous caller.
			},
			wantErr: true,
		},
		{
			name: "unsupported method",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id"),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "token",
				Method:  "bitcoin",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "draft resolution fails",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id"),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "bad-token",
				Method:  "card",
			},
			setupMock: func() {
				mockDrafts.EXPECT().
					Resolve(gomock.Any(), draft.ID, "bad-token").
					Return(draftModel.Draft{}, errors.New("invalid draft token"))
			},
			wantErr: true,
		},
		{
			name: "successful initiation",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id"),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "token",
				Method:  "card",
			},
			setupMock: func() {
				mockDrafts.EXPECT().
					Resolve(gomock.Any(), draft.ID, "token").
					Return(draft, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)

				mockBookingRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockGateway.EXPECT().
					Initiate(gomock.Any(), gomock.Any()).
					Return(gateway.InitiateResponse{
						RedirectURL:   "https://checkout.stripe.com/pay/cs_test_123",
						TransactionID: "cs_test_123",
					}, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "carrier channel forwarded to the gateway",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id"),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "token",
				Method:  "card",
				Channel: "ORANGE_MONEY_CI",
			},
			setupMock: func() {
				mockDrafts.EXPECT().
					Resolve(gomock.Any(), draft.ID, "token").
					Return(draft, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)

				mockBookingRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockGateway.EXPECT().
					Initiate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, greq gateway.InitiateRequest) (gateway.InitiateResponse, error) {
						assert.Equal(t, "ORANGE_MONEY_CI", greq.Channel)
						return gateway.InitiateResponse{
							RedirectURL:   "https://checkout.example.com/pay/om_123",
							TransactionID: "om_123",
						}, nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "gateway failure keeps exactly one pending booking",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id"),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "token",
				Method:  "card",
			},
			setupMock: func() {
				mockDrafts.EXPECT().
					Resolve(gomock.Any(), draft.ID, "token").
					Return(draft, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)

				// The pending booking is written once and survives the
				// failed gateway call. No payment row is written.
				mockBookingRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockGateway.EXPECT().
					Initiate(gomock.Any(), gomock.Any()).
					Return(gateway.InitiateResponse{}, errors.New("provider unreachable"))
			},
			wantErr: true,
		},
		{
			name: "retry with same draft reuses pending booking",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id"),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "token",
				Method:  "card",
			},
			setupMock: func() {
				mockDrafts.EXPECT().
					Resolve(gomock.Any(), draft.ID, "token").
					Return(draft, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockGateway.EXPECT().
					Initiate(gomock.Any(), gomock.Any()).
					Return(gateway.InitiateResponse{
						RedirectURL:   "https://checkout.stripe.com/pay/cs_test_456",
						TransactionID: "cs_test_456",
					}, nil)

				existing := model.Payment{
					ID:        "44444444-4444-4444-4444-444444444444",
					BookingID: booking.ID,
				}

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "draft already confirmed",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id"),
			req: dto.InitiatePaymentRequest{
				DraftID: draft.ID,
				Token:   "token",
				Method:  "card",
			},
			setupMock: func() {
				confirmed := booking
				confirmed.Status = bookingModel.StatusConfirmed

				mockDrafts.EXPECT().
					Resolve(gomock.Any(), draft.ID, "token").
					Return(draft, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Initiate(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.BookingID)
				assert.NotEmpty(t, result.RedirectURL)
				assert.Equal(t, "card", result.Method)
			}
		})
	}
}

func TestPaymentService_Finalize(t *testing.T) {
	draft := testDraft()
	booking := pendingBooking()

	payment := model.Payment{
		ID:            "44444444-4444-4444-4444-444444444444",
		BookingID:     booking.ID,
		UserID:        "test-user-id",
		Amount:        draft.Quote.Total,
		Currency:      "USD",
		PaymentMethod: "card",
		PaymentStatus: model.StatusPending,
		TransactionID: "cs_test_123",
	}

	type deps struct {
		repo        *paymentMocks.MockPayment
		bookingRepo *bookingMocks.MockBooking
		unitRepo    *unitMocks.MockUnit
		drafts      *draftMocks.MockDraft
		gateway     *paymentMocks.MockGateway
		publisher   *eventMocks.MockPublisher
		cache       *cacheMocks.MockRedisCache
	}

	tests := []struct {
		name       string
		req        dto.FinalizePaymentRequest
		setupMock  func(d deps, dbMock sqlmock.Sqlmock)
		wantErr    bool
		wantUnitID string
		wantStatus string
	}{
		{
			name: "booking not found",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "already confirmed is a no-op",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				confirmed := booking
				confirmed.Status = bookingModel.StatusConfirmed
				confirmed.UnitID = sql.NullString{String: "unit-1", Valid: true}

				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr:    false,
			wantUnitID: "unit-1",
			wantStatus: bookingModel.StatusConfirmed,
		},
		{
			name: "cancelled booking rejected",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				cancelled := booking
				cancelled.Status = bookingModel.StatusCancelled

				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "payment never initiated",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				d.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr: true,
		},
		{
			name: "unpaid charge rejected",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				d.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				d.gateway.EXPECT().
					Verify(gomock.Any(), payment.TransactionID).
					Return(gateway.VerifyResult{Paid: false}, nil)
			},
			wantErr: true,
		},
		{
			name: "verification error",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				d.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				d.gateway.EXPECT().
					Verify(gomock.Any(), payment.TransactionID).
					Return(gateway.VerifyResult{}, errors.New("provider unreachable"))
			},
			wantErr: true,
		},
		{
			name: "successful finalization claims a unit",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				d.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				d.gateway.EXPECT().
					Verify(gomock.Any(), payment.TransactionID).
					Return(gateway.VerifyResult{Paid: true, TransactionID: payment.TransactionID, Amount: payment.Amount}, nil)

				dbMock.ExpectBegin()

				d.unitRepo.EXPECT().
					FirstAvailableTx(gomock.Any(), gomock.Any(), booking.RoomID).
					Return("unit-1", nil)

				d.unitRepo.EXPECT().
					ClaimTx(gomock.Any(), gomock.Any(), "unit-1").
					Return(true, nil)

				d.bookingRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				d.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				dbMock.ExpectCommit()

				d.drafts.EXPECT().
					Consume(gomock.Any(), booking.DraftID).
					Return(nil).
					AnyTimes()

				d.publisher.EXPECT().
					PublishBookingConfirmed(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				d.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantUnitID: "unit-1",
			wantStatus: bookingModel.StatusConfirmed,
		},
		{
			name: "lost claim race retries next unit",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				d.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				d.gateway.EXPECT().
					Verify(gomock.Any(), payment.TransactionID).
					Return(gateway.VerifyResult{Paid: true}, nil)

				dbMock.ExpectBegin()

				d.unitRepo.EXPECT().
					FirstAvailableTx(gomock.Any(), gomock.Any(), booking.RoomID).
					Return("unit-1", nil)

				d.unitRepo.EXPECT().
					ClaimTx(gomock.Any(), gomock.Any(), "unit-1").
					Return(false, nil)

				d.unitRepo.EXPECT().
					FirstAvailableTx(gomock.Any(), gomock.Any(), booking.RoomID).
					Return("unit-2", nil)

				d.unitRepo.EXPECT().
					ClaimTx(gomock.Any(), gomock.Any(), "unit-2").
					Return(true, nil)

				d.bookingRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				d.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				dbMock.ExpectCommit()

				d.drafts.EXPECT().
					Consume(gomock.Any(), booking.DraftID).
					Return(nil).
					AnyTimes()

				d.publisher.EXPECT().
					PublishBookingConfirmed(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				d.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantUnitID: "unit-2",
			wantStatus: bookingModel.StatusConfirmed,
		},
		{
			name: "sold out cancels the booking",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				d.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				d.gateway.EXPECT().
					Verify(gomock.Any(), payment.TransactionID).
					Return(gateway.VerifyResult{Paid: true}, nil)

				dbMock.ExpectBegin()

				d.unitRepo.EXPECT().
					FirstAvailableTx(gomock.Any(), gomock.Any(), booking.RoomID).
					Return("", nil)

				// The cancellation happens inside the same transaction.
				d.bookingRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				dbMock.ExpectCommit()

				d.publisher.EXPECT().
					PublishBookingCancelled(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				d.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
		{
			name: "claim failure rolls the transaction back",
			req:  dto.FinalizePaymentRequest{BookingID: booking.ID},
			setupMock: func(d deps, dbMock sqlmock.Sqlmock) {
				d.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				d.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				d.gateway.EXPECT().
					Verify(gomock.Any(), payment.TransactionID).
					Return(gateway.VerifyResult{Paid: true}, nil)

				dbMock.ExpectBegin()

				d.unitRepo.EXPECT().
					FirstAvailableTx(gomock.Any(), gomock.Any(), booking.RoomID).
					Return("", errors.New("lock timeout"))

				dbMock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := deps{
				repo:        paymentMocks.NewMockPayment(ctrl),
				bookingRepo: bookingMocks.NewMockBooking(ctrl),
				unitRepo:    unitMocks.NewMockUnit(ctrl),
				drafts:      draftMocks.NewMockDraft(ctrl),
				gateway:     paymentMocks.NewMockGateway(ctrl),
				publisher:   eventMocks.NewMockPublisher(ctrl),
				cache:       cacheMocks.NewMockRedisCache(ctrl),
			}

			d.gateway.EXPECT().Method().Return(gateway.MethodCard)
			registry := gateway.NewRegistry(d.gateway)

			rawDB, dbMock, err := sqlmock.New()
			assert.NoError(t, err)
			defer rawDB.Close()

			db := &postgres.Connection{Write: sqlx.NewDb(rawDB, "postgres")}

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(
				d.repo, d.bookingRepo, d.unitRepo, d.drafts,
				registry, d.publisher, db, cfg, d.cache, mocks.NewOtel(),
			)

			tt.setupMock(d, dbMock)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Finalize(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUnitID, result.UnitID)
				assert.Equal(t, tt.wantStatus, result.Status)
			}
		})
	}
}

func TestPaymentService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockUnitRepo := unitMocks.NewMockUnit(ctrl)
	mockDrafts := draftMocks.NewMockDraft(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockGateway.EXPECT().Method().Return(gateway.MethodCard)
	registry := gateway.NewRegistry(mockGateway)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		mockRepo, mockBookingRepo, mockUnitRepo, mockDrafts,
		registry, mockPublisher, &postgres.Connection{}, cfg, mockCache, mockOtel,
	)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		filter    gDto.FilterGroup
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "cache hit",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "cache miss reads repository",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{{ID: "payment-id"}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.GetAll(context.Background(), tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockUnitRepo := unitMocks.NewMockUnit(ctrl)
	mockDrafts := draftMocks.NewMockDraft(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockGateway.EXPECT().Method().Return(gateway.MethodCard)
	registry := gateway.NewRegistry(mockGateway)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		mockRepo, mockBookingRepo, mockUnitRepo, mockDrafts,
		registry, mockPublisher, &postgres.Connection{}, cfg, mockCache, mockOtel,
	)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "payment found",
			id:   "payment-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{ID: "payment-id", PaymentStatus: model.StatusCompleted}, nil)
			},
			wantErr: false,
			wantID:  "payment-id",
		},
		{
			name: "payment not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "payment-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}
