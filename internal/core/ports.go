package core

import (
	"chirper/internal/repository"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetAccountByUsername(ctx context.Context, username string) (repository.Account, error)
	GetAccountByCredentials(ctx context.Context, username, password string) (repository.Account, error)
	GetAccountByID(ctx context.Context, id uint) (repository.Account, error)
	SaveAccount(ctx context.Context, account *repository.Account) error
	GetAllAccounts(ctx context.Context) ([]repository.Account, error)
	GetMessageByID(ctx context.Context, id uint) (repository.Message, error)
	GetMessagesByAccountID(ctx context.Context, accountID uint) ([]repository.Message, error)
	GetAllMessages(ctx context.Context) ([]repository.Message, error)
	SaveMessage(ctx context.Context, message *repository.Message) error
	UpdateMessageText(ctx context.Context, id uint, text string) (int64, error)
	DeleteMessageByID(ctx context.Context, id uint) (int64, error)
}
