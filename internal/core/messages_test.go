package core_test

import (
	"context"
	"errors"
	"strings"

	"chirper/internal/core"
	"chirper/internal/core/fake"
	"chirper/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("MessageService", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		messages *core.MessageService

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		messages = core.NewMessageService(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("PostMessage", func() {
		var (
			candidate core.Message
			posted    core.Message
			err       error
		)

		BeforeEach(func() {
			candidate = core.Message{
				MessageText: "hi",
				PostedBy:    7,
			}
			fakeRepo.GetAccountByIDReturns(repository.Account{ID: 7, Username: "alice"}, nil)
			fakeRepo.SaveMessageStub = func(_ context.Context, message *repository.Message) error {
				message.ID = 42
				return nil
			}
		})

		JustBeforeEach(func() {
			posted, err = messages.PostMessage(ctx, candidate)
		})

		When("the text is valid and the author exists", func() {
			It("persists the message and returns it with its assigned id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(posted.ID).To(Equal(uint(42)))
				Expect(posted.MessageText).To(Equal("hi"))
				Expect(posted.PostedBy).To(Equal(uint(7)))

				Expect(fakeRepo.GetAccountByIDCallCount()).To(Equal(1))
				_, argID := fakeRepo.GetAccountByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(7)))

				Expect(fakeRepo.SaveMessageCallCount()).To(Equal(1))
				_, argMessage := fakeRepo.SaveMessageArgsForCall(0)
				Expect(argMessage.MessageText).To(Equal("hi"))
			})
		})

		When("the text is empty", func() {
			BeforeEach(func() {
				candidate.MessageText = ""
			})

			It("returns invalid message text before checking the author", func() {
				Expect(err).To(MatchError(core.ErrInvalidMessageText))
				Expect(fakeRepo.GetAccountByIDCallCount()).To(Equal(0))
				Expect(fakeRepo.SaveMessageCallCount()).To(Equal(0))
			})
		})

		When("the text is 256 characters", func() {
			BeforeEach(func() {
				candidate.MessageText = strings.Repeat("a", 256)
			})

			It("returns invalid message text", func() {
				Expect(err).To(MatchError(core.ErrInvalidMessageText))
			})
		})

		When("the text is exactly 255 characters", func() {
			BeforeEach(func() {
				candidate.MessageText = strings.Repeat("a", 255)
			})

			It("succeeds, the boundary is inclusive", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the author account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByIDReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("returns account not found and does not persist", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
				Expect(fakeRepo.SaveMessageCallCount()).To(Equal(0))
			})
		})

		When("the author lookup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByIDReturns(repository.Account{}, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListMessages", func() {
		var (
			messageList []core.Message
			err         error
		)

		JustBeforeEach(func() {
			messageList, err = messages.ListMessages(ctx)
		})

		When("no messages exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAllMessagesReturns([]repository.Message{}, nil)
			})

			It("returns an empty list, not an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(messageList).To(BeEmpty())
			})
		})

		When("messages exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAllMessagesReturns([]repository.Message{
					{ID: 1, MessageText: "first", PostedBy: 7},
					{ID: 2, MessageText: "second", PostedBy: 7},
				}, nil)
			})

			It("returns all of them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(messageList).To(HaveLen(2))
				Expect(messageList[1].MessageText).To(Equal("second"))
			})
		})
	})

	Describe("GetMessageByID", func() {
		var (
			message core.Message
			found   bool
			err     error
		)

		JustBeforeEach(func() {
			message, found, err = messages.GetMessageByID(ctx, 42)
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageByIDReturns(repository.Message{ID: 42, MessageText: "hi", PostedBy: 7}, nil)
			})

			It("returns the message", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(message.ID).To(Equal(uint(42)))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageByIDReturns(repository.Message{}, repository.ErrMessageNotFound)
			})

			It("reports absence as a successful empty outcome", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
				Expect(message).To(Equal(core.Message{}))
			})
		})

		When("the lookup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageByIDReturns(repository.Message{}, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteMessageByID", func() {
		var (
			rows int64
			err  error
		)

		JustBeforeEach(func() {
			rows, err = messages.DeleteMessageByID(ctx, 42)
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeRepo.DeleteMessageByIDReturns(1, nil)
			})

			It("reports one row affected", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))

				_, argID := fakeRepo.DeleteMessageByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(42)))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteMessageByIDReturns(0, nil)
			})

			It("reports zero rows and no error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
			})
		})

		When("deleting the same id twice", func() {
			BeforeEach(func() {
				fakeRepo.DeleteMessageByIDReturnsOnCall(0, 1, nil)
				fakeRepo.DeleteMessageByIDReturnsOnCall(1, 0, nil)
			})

			It("never errors the second time", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))

				rowsAgain, errAgain := messages.DeleteMessageByID(ctx, 42)
				Expect(errAgain).NotTo(HaveOccurred())
				Expect(rowsAgain).To(Equal(int64(0)))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteMessageByIDReturns(0, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateMessageByID", func() {
		var (
			newText string
			rows    int64
			err     error
		)

		BeforeEach(func() {
			newText = "updated"
			fakeRepo.GetMessageByIDReturns(repository.Message{ID: 42, MessageText: "hi", PostedBy: 7}, nil)
			fakeRepo.UpdateMessageTextReturns(1, nil)
		})

		JustBeforeEach(func() {
			rows, err = messages.UpdateMessageByID(ctx, 42, newText)
		})

		When("the message exists and the new text is valid", func() {
			It("overwrites only the text and reports one row affected", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))

				Expect(fakeRepo.UpdateMessageTextCallCount()).To(Equal(1))
				_, argID, argText := fakeRepo.UpdateMessageTextArgsForCall(0)
				Expect(argID).To(Equal(uint(42)))
				Expect(argText).To(Equal("updated"))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageByIDReturns(repository.Message{}, repository.ErrMessageNotFound)
			})

			It("returns message not found", func() {
				Expect(err).To(MatchError(core.ErrMessageNotFound))
				Expect(fakeRepo.UpdateMessageTextCallCount()).To(Equal(0))
			})
		})

		When("the message does not exist and the new text is also invalid", func() {
			BeforeEach(func() {
				newText = ""
				fakeRepo.GetMessageByIDReturns(repository.Message{}, repository.ErrMessageNotFound)
			})

			It("reports the missing message, which is checked first", func() {
				Expect(err).To(MatchError(core.ErrMessageNotFound))
			})
		})

		When("the new text is empty", func() {
			BeforeEach(func() {
				newText = ""
			})

			It("returns invalid message text", func() {
				Expect(err).To(MatchError(core.ErrInvalidMessageText))
				Expect(fakeRepo.UpdateMessageTextCallCount()).To(Equal(0))
			})
		})

		When("the new text is over 255 characters", func() {
			BeforeEach(func() {
				newText = strings.Repeat("a", 256)
			})

			It("returns invalid message text", func() {
				Expect(err).To(MatchError(core.ErrInvalidMessageText))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateMessageTextReturns(0, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("FindMessagesByAccountID", func() {
		var (
			messageList []core.Message
			err         error
		)

		BeforeEach(func() {
			fakeRepo.GetMessagesByAccountIDReturns([]repository.Message{
				{ID: 1, MessageText: "hi", PostedBy: 7},
			}, nil)
			fakeRepo.GetAccountByIDReturns(repository.Account{ID: 7, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			messageList, err = messages.FindMessagesByAccountID(ctx, 7)
		})

		When("the account exists and has messages", func() {
			It("returns the account's messages", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(messageList).To(HaveLen(1))
				Expect(messageList[0].PostedBy).To(Equal(uint(7)))

				_, argID := fakeRepo.GetMessagesByAccountIDArgsForCall(0)
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("the account exists but has no messages", func() {
			BeforeEach(func() {
				fakeRepo.GetMessagesByAccountIDReturns([]repository.Message{}, nil)
			})

			It("returns an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(messageList).To(BeEmpty())
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByIDReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("discards any matched messages and returns account not found", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
				Expect(messageList).To(BeNil())

				// the message query still ran, the account check is independent
				Expect(fakeRepo.GetMessagesByAccountIDCallCount()).To(Equal(1))
			})
		})

		When("the message query fails", func() {
			BeforeEach(func() {
				fakeRepo.GetMessagesByAccountIDReturns(nil, fakeErr)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
