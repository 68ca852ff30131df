package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"riviera/infras/otel"
	"riviera/infras/postgres"
	"riviera/internal/domains/unit/model"
	"riviera/internal/domains/unit/model/dto"
	"riviera/shared/constant"
	gDto "riviera/shared/dto"
	"riviera/shared/logger"
	gRepo "riviera/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Unit interface {
	Insert(ctx context.Context, model model.RoomUnit) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomUnit, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomUnit, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountAvailableByRoom(ctx context.Context) (map[string]int, error)
	FirstAvailableTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) (string, error)
	ClaimTx(ctx context.Context, sqltx *sqlx.Tx, unitID string) (bool, error)
	ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, unitID string) error
	RefreshStatuses(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomUnit]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Unit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomUnit](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CountAvailableByRoom(ctx context.Context) (map[string]int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".unit.CountAvailableByRoom")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT room_id, COUNT(id) AS available_units FROM %s WHERE status = $1 GROUP BY room_id",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []dto.RoomAvailability

	err := r.db.Read.SelectContext(ctx, &rows, query, model.StatusAvailable)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count available units: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.RoomID] = row.AvailableUnits
	}

	return counts, nil
}

// FirstAvailableTx returns the id of one available unit for the room, locked
// for the duration of the transaction. Returns empty string when none is left.
func (r *repositoryImpl) FirstAvailableTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".unit.FirstAvailableTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT id FROM %s WHERE room_id = $1 AND status = $2 ORDER BY code LIMIT 1 FOR UPDATE SKIP LOCKED",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var unitID string

	err := sqltx.GetContext(ctx, &unitID, query, roomID, model.StatusAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to find available unit: %w", err)
	}

	return unitID, nil
}

// ClaimTx flips a unit to booked only if it is still available. The rows
// affected count tells the caller whether it won the claim.
func (r *repositoryImpl) ClaimTx(ctx context.Context, sqltx *sqlx.Tx, unitID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".unit.ClaimTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET status = $1, modified_at = NOW() WHERE id = $2 AND status = $3",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.ExecContext(ctx, query, model.StatusBooked, unitID, model.StatusAvailable)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to claim unit: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read claim result: %w", err)
	}

	return affected == 1, nil
}

func (r *repositoryImpl) ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, unitID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".unit.ReleaseTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET status = $1, modified_at = NOW() WHERE id = $2 AND status = $3",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.ExecContext(ctx, query, model.StatusAvailable, unitID, model.StatusBooked)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to release unit: %w", err)
	}

	return nil
}

// RefreshStatuses reconciles unit statuses against confirmed bookings: a unit
// is booked while a confirmed booking covers today, otherwise available.
// Units marked occupied by hand are left alone.
func (r *repositoryImpl) RefreshStatuses(ctx context.Context) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".unit.RefreshStatuses")
	defer scope.End()

	query := fmt.Sprintf(`
		UPDATE %s u SET status = CASE WHEN EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.unit_id = u.id
			AND b.status = 'confirmed'
			AND b.check_in_date <= CURRENT_DATE
			AND b.check_out_date > CURRENT_DATE
		) THEN $1 ELSE $2 END, modified_at = NOW()
		WHERE u.status <> $3`,
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, model.StatusBooked, model.StatusAvailable, model.StatusOccupied)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to refresh unit statuses: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read refresh result: %w", err)
	}

	return affected, nil
}
