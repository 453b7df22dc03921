package core_test

import (
	"context"
	"errors"

	"chirper/internal/core"
	"chirper/internal/core/fake"
	"chirper/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AccountService", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		accounts *core.AccountService

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		accounts = core.NewAccountService(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			candidate  core.Account
			registered core.Account
			err        error
		)

		BeforeEach(func() {
			candidate = core.Account{
				Username: "alice",
				Password: "pass1",
			}
			fakeRepo.GetAccountByUsernameReturns(repository.Account{}, repository.ErrAccountNotFound)
			fakeRepo.SaveAccountStub = func(_ context.Context, account *repository.Account) error {
				account.ID = 7
				return nil
			}
		})

		JustBeforeEach(func() {
			registered, err = accounts.Register(ctx, candidate)
		})

		When("the username is free and the account is valid", func() {
			It("persists the account and returns it with its assigned id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(registered.ID).To(Equal(uint(7)))
				Expect(registered.Username).To(Equal("alice"))

				Expect(fakeRepo.GetAccountByUsernameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetAccountByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal("alice"))

				Expect(fakeRepo.SaveAccountCallCount()).To(Equal(1))
				_, argAccount := fakeRepo.SaveAccountArgsForCall(0)
				Expect(argAccount.Username).To(Equal("alice"))
				Expect(argAccount.Password).To(Equal("pass1"))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{ID: 1, Username: "alice"}, nil)
			})

			It("returns duplicate username error and does not persist", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUsername))
				Expect(fakeRepo.SaveAccountCallCount()).To(Equal(0))
			})
		})

		When("the username is taken and the password is also too short", func() {
			BeforeEach(func() {
				candidate.Password = "ab"
				fakeRepo.GetAccountByUsernameReturns(repository.Account{ID: 1, Username: "alice"}, nil)
			})

			It("reports the duplicate username, which is checked first", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUsername))
			})
		})

		When("the username is blank", func() {
			BeforeEach(func() {
				candidate.Username = ""
			})

			It("returns blank username error", func() {
				Expect(err).To(MatchError(core.ErrBlankUsername))
				Expect(fakeRepo.SaveAccountCallCount()).To(Equal(0))
			})
		})

		When("the password is shorter than 4 characters", func() {
			BeforeEach(func() {
				candidate.Password = "abc"
			})

			It("returns password too short error", func() {
				Expect(err).To(MatchError(core.ErrPasswordTooShort))
				Expect(fakeRepo.SaveAccountCallCount()).To(Equal(0))
			})
		})

		When("the password is exactly 4 characters", func() {
			BeforeEach(func() {
				candidate.Password = "abcd"
			})

			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the username lookup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByUsernameReturns(repository.Account{}, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("persisting the account fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveAccountStub = nil
				fakeRepo.SaveAccountReturns(fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			credentials core.Account
			account     core.Account
			err         error
		)

		BeforeEach(func() {
			credentials = core.Account{
				Username: "alice",
				Password: "pass1",
			}
		})

		JustBeforeEach(func() {
			account, err = accounts.Login(ctx, credentials)
		})

		When("username and password match exactly", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByCredentialsReturns(repository.Account{
					ID:       7,
					Username: "alice",
					Password: "pass1",
				}, nil)
			})

			It("returns the stored account with its id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(account.ID).To(Equal(uint(7)))
				Expect(account.Username).To(Equal("alice"))

				Expect(fakeRepo.GetAccountByCredentialsCallCount()).To(Equal(1))
				_, argUsername, argPassword := fakeRepo.GetAccountByCredentialsArgsForCall(0)
				Expect(argUsername).To(Equal("alice"))
				Expect(argPassword).To(Equal("pass1"))
			})
		})

		When("no account matches the credentials", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByCredentialsReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("returns invalid credentials, not revealing which part was wrong", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the lookup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByCredentialsReturns(repository.Account{}, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListAccounts", func() {
		var (
			accountList []core.Account
			err         error
		)

		JustBeforeEach(func() {
			accountList, err = accounts.ListAccounts(ctx)
		})

		When("accounts exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAllAccountsReturns([]repository.Account{
					{ID: 1, Username: "alice"},
					{ID: 2, Username: "bob"},
				}, nil)
			})

			It("returns all persisted accounts", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(accountList).To(HaveLen(2))
				Expect(accountList[0].Username).To(Equal("alice"))
				Expect(accountList[1].ID).To(Equal(uint(2)))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAllAccountsReturns(nil, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
