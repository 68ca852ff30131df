package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"riviera/infras/otel"
	"riviera/infras/postgres"
	"riviera/internal/domains/booking/model"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/logger"
	gRepo "riviera/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListGuests(ctx context.Context) ([]model.GuestSummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListGuests(ctx context.Context) ([]model.GuestSummary, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListGuests")
	defer scope.End()

	query := fmt.Sprintf(`SELECT guest_email,
		MAX(guest_first_name) AS guest_first_name,
		MAX(guest_last_name) AS guest_last_name,
		MAX(guest_phone) AS guest_phone,
		COUNT(id) AS total_bookings,
		COALESCE(SUM(total_price) FILTER (WHERE status IN ($1, $2)), 0) AS total_spent,
		MAX(created_at) AS last_booking_at
		FROM %s GROUP BY guest_email ORDER BY last_booking_at DESC`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.GuestSummary

	err := r.db.Read.SelectContext(ctx, &rows, query, model.StatusConfirmed, model.StatusCompleted)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	return rows, nil
}
