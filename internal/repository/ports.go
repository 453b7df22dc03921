package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetOneMatching(ctx context.Context, conds map[string]any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	GetAll(ctx context.Context, entities any) error
	UpdateColumn(ctx context.Context, model any, id any, column string, value any) (int64, error)
	DeleteByID(ctx context.Context, model any, id any) (int64, error)
}
