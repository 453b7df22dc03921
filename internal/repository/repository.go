package repository

import (
	"chirper/internal/db"
	"context"
	"errors"
	"fmt"
)

var ErrAccountNotFound error = errors.New("account not found")
var ErrMessageNotFound error = errors.New("message not found")

type SocialRepository struct {
	db Storage
}

func NewSocialRepository(db Storage) *SocialRepository {
	return &SocialRepository{
		db: db,
	}
}

func (r *SocialRepository) MigrateTables() error {
	err := r.db.MigrateTable(&Account{}, &Message{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *SocialRepository) SaveAccount(ctx context.Context, account *Account) error {
	err := r.db.Insert(ctx, account)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	return nil
}

func (r *SocialRepository) GetAccountByUsername(ctx context.Context, username string) (Account, error) {
	var account Account

	err := r.db.GetOneBy(ctx, "username", username, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by username: %w", err)
	}

	return account, nil
}

// GetAccountByCredentials matches username and password by plain column equality.
func (r *SocialRepository) GetAccountByCredentials(ctx context.Context, username, password string) (Account, error) {
	var account Account

	conds := map[string]any{
		"username": username,
		"password": password,
	}
	err := r.db.GetOneMatching(ctx, conds, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by credentials: %w", err)
	}

	return account, nil
}

func (r *SocialRepository) GetAccountByID(ctx context.Context, id uint) (Account, error) {
	var account Account

	err := r.db.GetOneBy(ctx, "id", id, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (r *SocialRepository) GetAllAccounts(ctx context.Context) ([]Account, error) {
	accounts := []Account{}

	err := r.db.GetAll(ctx, &accounts)
	if err != nil {
		return nil, fmt.Errorf("get all accounts: %w", err)
	}

	return accounts, nil
}

func (r *SocialRepository) SaveMessage(ctx context.Context, message *Message) error {
	err := r.db.Insert(ctx, message)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	return nil
}

func (r *SocialRepository) GetMessageByID(ctx context.Context, id uint) (Message, error) {
	var message Message

	err := r.db.GetOneBy(ctx, "id", id, &message)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Message{}, ErrMessageNotFound
		}
		return Message{}, fmt.Errorf("get message by id: %w", err)
	}

	return message, nil
}

func (r *SocialRepository) GetMessagesByAccountID(ctx context.Context, accountID uint) ([]Message, error) {
	messages := []Message{}

	err := r.db.GetAllBy(ctx, "posted_by", accountID, &messages)
	if err != nil {
		return nil, fmt.Errorf("get messages by account id: %w", err)
	}

	return messages, nil
}

func (r *SocialRepository) GetAllMessages(ctx context.Context) ([]Message, error) {
	messages := []Message{}

	err := r.db.GetAll(ctx, &messages)
	if err != nil {
		return nil, fmt.Errorf("get all messages: %w", err)
	}

	return messages, nil
}

// UpdateMessageText overwrites message_text only, leaving id and posted_by untouched.
func (r *SocialRepository) UpdateMessageText(ctx context.Context, id uint, text string) (int64, error) {
	rows, err := r.db.UpdateColumn(ctx, &Message{}, id, "message_text", text)
	if err != nil {
		return 0, fmt.Errorf("update message text: %w", err)
	}

	return rows, nil
}

func (r *SocialRepository) DeleteMessageByID(ctx context.Context, id uint) (int64, error) {
	rows, err := r.db.DeleteByID(ctx, &Message{}, id)
	if err != nil {
		return 0, fmt.Errorf("delete message by id: %w", err)
	}

	return rows, nil
}
