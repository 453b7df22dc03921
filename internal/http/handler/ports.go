package handler

import (
	"chirper/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	ListAccounts(ctx context.Context) ([]core.Account, error)
	Register(ctx context.Context, account core.Account) (core.Account, error)
	Login(ctx context.Context, account core.Account) (core.Account, error)
}

//counterfeiter:generate -o fake -fake-name MessageService . MessageService
type MessageService interface {
	PostMessage(ctx context.Context, message core.Message) (core.Message, error)
	ListMessages(ctx context.Context) ([]core.Message, error)
	GetMessageByID(ctx context.Context, id uint) (core.Message, bool, error)
	DeleteMessageByID(ctx context.Context, id uint) (int64, error)
	UpdateMessageByID(ctx context.Context, id uint, newText string) (int64, error)
	FindMessagesByAccountID(ctx context.Context, accountID uint) ([]core.Message, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
