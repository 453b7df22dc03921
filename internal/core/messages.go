package core

import (
	"chirper/internal/repository"
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

var ErrInvalidMessageText error = errors.New("message text must be between 1 and 255 characters")
var ErrAccountNotFound error = errors.New("account does not exist")
var ErrMessageNotFound error = errors.New("message does not exist")

const maxMessageTextLength = 255

// MessageService holds the message CRUD business rules. It needs the account
// queries as well, to check that authors exist.
type MessageService struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewMessageService(logger *zap.SugaredLogger, repo Repository) *MessageService {
	return &MessageService{
		logs: logger,
		repo: repo,
	}
}

// PostMessage validates the text first, then the author, and persists the
// message with its assigned id.
func (s *MessageService) PostMessage(ctx context.Context, message Message) (Message, error) {
	if !validMessageText(message.MessageText) {
		return Message{}, ErrInvalidMessageText
	}

	_, err := s.repo.GetAccountByID(ctx, message.PostedBy)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return Message{}, ErrAccountNotFound
		}
		return Message{}, fmt.Errorf("get account by id: %w", err)
	}

	record := repository.Message{
		MessageText: message.MessageText,
		PostedBy:    message.PostedBy,
	}
	if err := s.repo.SaveMessage(ctx, &record); err != nil {
		return Message{}, fmt.Errorf("save message: %w", err)
	}

	s.logs.Infow("message posted", "messageId", record.ID, "postedBy", record.PostedBy)

	return messageRecordToCore(record), nil
}

func (s *MessageService) ListMessages(ctx context.Context) ([]Message, error) {
	messages, err := s.repo.GetAllMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all messages: %w", err)
	}

	return messageRecordsToCore(messages), nil
}

// GetMessageByID reports absence through the bool, not an error: a missing
// message is a valid empty outcome.
func (s *MessageService) GetMessageByID(ctx context.Context, id uint) (Message, bool, error) {
	record, err := s.repo.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return Message{}, false, nil
		}
		return Message{}, false, fmt.Errorf("get message by id: %w", err)
	}

	return messageRecordToCore(record), true, nil
}

// DeleteMessageByID is idempotent: deleting a missing id reports 0 rows
// affected and no error, so repeated deletes always look the same.
func (s *MessageService) DeleteMessageByID(ctx context.Context, id uint) (int64, error) {
	rows, err := s.repo.DeleteMessageByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete message by id: %w", err)
	}

	if rows > 0 {
		s.logs.Infow("message deleted", "messageId", id)
	}

	return rows, nil
}

// UpdateMessageByID overwrites message_text only. The existence check runs
// before the text check, so a missing id wins over invalid text.
func (s *MessageService) UpdateMessageByID(ctx context.Context, id uint, newText string) (int64, error) {
	_, err := s.repo.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return 0, ErrMessageNotFound
		}
		return 0, fmt.Errorf("get message by id: %w", err)
	}

	if !validMessageText(newText) {
		return 0, ErrInvalidMessageText
	}

	rows, err := s.repo.UpdateMessageText(ctx, id, newText)
	if err != nil {
		return 0, fmt.Errorf("update message text: %w", err)
	}

	s.logs.Infow("message updated", "messageId", id)

	return rows, nil
}

// FindMessagesByAccountID runs the message query and the account-existence
// check independently. The account check decides the outcome: when the account
// is missing, any matched messages are discarded.
func (s *MessageService) FindMessagesByAccountID(ctx context.Context, accountID uint) ([]Message, error) {
	messages, err := s.repo.GetMessagesByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get messages by account id: %w", err)
	}

	_, err = s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return messageRecordsToCore(messages), nil
}

func validMessageText(text string) bool {
	length := utf8.RuneCountInString(text)
	return length >= 1 && length <= maxMessageTextLength
}

func messageRecordToCore(record repository.Message) Message {
	return Message{
		ID:          record.ID,
		MessageText: record.MessageText,
		PostedBy:    record.PostedBy,
	}
}

func messageRecordsToCore(records []repository.Message) []Message {
	messages := make([]Message, len(records))
	for i, record := range records {
		messages[i] = messageRecordToCore(record)
	}
	return messages
}
