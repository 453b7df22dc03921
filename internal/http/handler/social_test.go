package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"chirper/internal/core"
	"chirper/internal/http/handler"
	"chirper/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SocialHandler", func() {
	var (
		sh            *handler.SocialHandler
		fakeAccounts  *fake.AccountService
		fakeMessages  *fake.MessageService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeAccounts = new(fake.AccountService)
		fakeMessages = new(fake.MessageService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		sh = handler.NewSocialHandler(fakeLogger, fakeValidator, fakeAccounts, fakeMessages)
	})

	Describe("HandleRegister", func() {
		var response core.Account

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pass1"}`)
			req = httptest.NewRequest("POST", "/register", body)
			req.Header.Set("Content-Type", "application/json")

			fakeAccounts.RegisterReturns(core.Account{ID: 7, Username: "alice", Password: "pass1"}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return the account with its assigned id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.ID).To(Equal(uint(7)))

				Expect(fakeAccounts.RegisterCallCount()).To(Equal(1))
				_, argAccount := fakeAccounts.RegisterArgsForCall(0)
				Expect(argAccount.Username).To(Equal("alice"))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(core.Account{}, core.ErrDuplicateUsername)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the username is blank", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(core.Account{}, core.ErrBlankUsername)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the password is too short", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(core.Account{}, core.ErrPasswordTooShort)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeAccounts.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(core.Account{}, fakeErr)
			})

			It("should return 500 and hide the error detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		var response core.Account

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pass1"}`)
			req = httptest.NewRequest("POST", "/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeAccounts.LoginReturns(core.Account{ID: 7, Username: "alice", Password: "pass1"}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleLogin(w, req)
		})

		When("the credentials match", func() {
			It("should return the verified account", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.ID).To(Equal(uint(7)))
			})
		})

		When("the credentials do not match", func() {
			BeforeEach(func() {
				fakeAccounts.LoginReturns(core.Account{}, core.ErrInvalidCredentials)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleListAccounts", func() {
		var response []core.Account

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/users", nil)
			fakeAccounts.ListAccountsReturns([]core.Account{
				{ID: 1, Username: "alice"},
				{ID: 2, Username: "bob"},
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleListAccounts(w, req)
		})

		It("should return all accounts", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			decErr := json.NewDecoder(w.Body).Decode(&response)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(response).To(HaveLen(2))
		})
	})

	Describe("HandlePostMessage", func() {
		var response core.Message

		BeforeEach(func() {
			body := strings.NewReader(`{"messageText":"hi","postedBy":7}`)
			req = httptest.NewRequest("POST", "/messages", body)
			req.Header.Set("Content-Type", "application/json")

			fakeMessages.PostMessageReturns(core.Message{ID: 42, MessageText: "hi", PostedBy: 7}, nil)
		})

		JustBeforeEach(func() {
			sh.HandlePostMessage(w, req)
		})

		When("the message is valid", func() {
			It("should return the message with its assigned id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.ID).To(Equal(uint(42)))

				Expect(fakeMessages.PostMessageCallCount()).To(Equal(1))
				_, argMessage := fakeMessages.PostMessageArgsForCall(0)
				Expect(argMessage.PostedBy).To(Equal(uint(7)))
			})
		})

		When("the message text is invalid", func() {
			BeforeEach(func() {
				fakeMessages.PostMessageReturns(core.Message{}, core.ErrInvalidMessageText)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the author account does not exist", func() {
			BeforeEach(func() {
				fakeMessages.PostMessageReturns(core.Message{}, core.ErrAccountNotFound)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleGetMessage", func() {
		var response core.Message

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/messages/42", nil)
			req.SetPathValue("messageID", "42")

			fakeMessages.GetMessageByIDReturns(core.Message{ID: 42, MessageText: "hi", PostedBy: 7}, true, nil)
		})

		JustBeforeEach(func() {
			sh.HandleGetMessage(w, req)
		})

		When("the message exists", func() {
			It("should return the message", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.MessageText).To(Equal("hi"))

				_, argID := fakeMessages.GetMessageByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(42)))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeMessages.GetMessageByIDReturns(core.Message{}, false, nil)
			})

			It("should return 200 with an empty body", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.Len()).To(Equal(0))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/messages/abc", nil)
				req.SetPathValue("messageID", "abc")
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeMessages.GetMessageByIDCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDeleteMessage", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/messages/42", nil)
			req.SetPathValue("messageID", "42")

			fakeMessages.DeleteMessageByIDReturns(1, nil)
		})

		JustBeforeEach(func() {
			sh.HandleDeleteMessage(w, req)
		})

		When("the message existed", func() {
			It("should return the number of rows deleted", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("1"))

				_, argID := fakeMessages.DeleteMessageByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(42)))
			})
		})

		When("the message did not exist", func() {
			BeforeEach(func() {
				fakeMessages.DeleteMessageByIDReturns(0, nil)
			})

			It("should return 200 with an empty body", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.Len()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdateMessage", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"messageText":"updated"}`)
			req = httptest.NewRequest("PATCH", "/messages/42", body)
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("messageID", "42")

			fakeMessages.UpdateMessageByIDReturns(1, nil)
		})

		JustBeforeEach(func() {
			sh.HandleUpdateMessage(w, req)
		})

		When("the update succeeds", func() {
			It("should return the number of rows updated", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("1"))

				Expect(fakeMessages.UpdateMessageByIDCallCount()).To(Equal(1))
				_, argID, argText := fakeMessages.UpdateMessageByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(42)))
				Expect(argText).To(Equal("updated"))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeMessages.UpdateMessageByIDReturns(0, core.ErrMessageNotFound)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the new text is invalid", func() {
			BeforeEach(func() {
				fakeMessages.UpdateMessageByIDReturns(0, core.ErrInvalidMessageText)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleMessagesByAccount", func() {
		var response []core.Message

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/accounts/7/messages", nil)
			req.SetPathValue("accountID", "7")

			fakeMessages.FindMessagesByAccountIDReturns([]core.Message{
				{ID: 42, MessageText: "hi", PostedBy: 7},
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleMessagesByAccount(w, req)
		})

		When("the account exists", func() {
			It("should return the account's messages", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response).To(HaveLen(1))

				_, argID := fakeMessages.FindMessagesByAccountIDArgsForCall(0)
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeMessages.FindMessagesByAccountIDReturns(nil, core.ErrAccountNotFound)
			})

			It("should still return 200 with an empty list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response).To(BeEmpty())
			})
		})

		When("the lookup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeMessages.FindMessagesByAccountIDReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
