package repository

//go:generate go run go.uber.org/mock/mockgen -source=./role.go -destination=../mocks/role_mock.go -package=mocks

import (
	"context"
	"riviera/infras/otel"
	"riviera/infras/postgres"
	"riviera/internal/domains/user/model"
	gDto "riviera/shared/dto"
	gRepo "riviera/shared/repository"
)

type Role interface {
	Insert(ctx context.Context, model model.UserRole) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.UserRole, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type roleRepositoryImpl struct {
	gRepo.Repository[model.UserRole]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRole(db *postgres.Connection, otel otel.Otel) Role {
	return &roleRepositoryImpl{
		Repository: gRepo.NewRepository[model.UserRole](model.RoleEntityName, model.RoleTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
