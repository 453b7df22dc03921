package core

import (
	"chirper/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrDuplicateUsername error = errors.New("username already exists")
var ErrBlankUsername error = errors.New("username is blank")
var ErrPasswordTooShort error = errors.New("password must be at least 4 characters")
var ErrInvalidCredentials error = errors.New("invalid username or password")

const minPasswordLength = 4

// AccountService holds the registration and login business rules.
type AccountService struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewAccountService(logger *zap.SugaredLogger, repo Repository) *AccountService {
	return &AccountService{
		logs: logger,
		repo: repo,
	}
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	accounts, err := s.repo.GetAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all accounts: %w", err)
	}

	return accountRecordsToCore(accounts), nil
}

// Register persists a new account. Checks run in a fixed order and the first
// failing one wins: taken username, blank username, short password.
func (s *AccountService) Register(ctx context.Context, account Account) (Account, error) {
	_, err := s.repo.GetAccountByUsername(ctx, account.Username)
	if err == nil {
		return Account{}, ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return Account{}, fmt.Errorf("get account by username: %w", err)
	}

	if account.Username == "" {
		return Account{}, ErrBlankUsername
	}

	if len(account.Password) < minPasswordLength {
		return Account{}, ErrPasswordTooShort
	}

	record := repository.Account{
		Username: account.Username,
		Password: account.Password,
	}
	if err := s.repo.SaveAccount(ctx, &record); err != nil {
		return Account{}, fmt.Errorf("save account: %w", err)
	}

	s.logs.Infow("account registered", "accountId", record.ID, "username", record.Username)

	return accountRecordToCore(record), nil
}

// Login succeeds only on an exact username and password match. A missing user
// and a wrong password collapse into the same error so usernames cannot be
// enumerated through the login endpoint.
func (s *AccountService) Login(ctx context.Context, account Account) (Account, error) {
	record, err := s.repo.GetAccountByCredentials(ctx, account.Username, account.Password)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, fmt.Errorf("get account by credentials: %w", err)
	}

	s.logs.Infow("account verified", "accountId", record.ID, "username", record.Username)

	return accountRecordToCore(record), nil
}

func accountRecordToCore(record repository.Account) Account {
	return Account{
		ID:       record.ID,
		Username: record.Username,
		Password: record.Password,
	}
}

func accountRecordsToCore(records []repository.Account) []Account {
	accounts := make([]Account, len(records))
	for i, record := range records {
		accounts[i] = accountRecordToCore(record)
	}
	return accounts
}
