package handler

import (
	"chirper/internal/core"
	"chirper/internal/http/handler/middleware"
	"chirper/internal/http/payload"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Register          = "POST /register"
	ListAccounts      = "GET /users"
	Login             = "POST /login"
	PostMessage       = "POST /messages"
	ListMessages      = "GET /messages"
	GetMessage        = "GET /messages/{messageID}"
	DeleteMessage     = "DELETE /messages/{messageID}"
	UpdateMessage     = "PATCH /messages/{messageID}"
	MessagesByAccount = "GET /accounts/{accountID}/messages"
)

type SocialHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
	messages         MessageService
}

func NewSocialHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService, messageService MessageService) *SocialHandler {
	return &SocialHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
		messages:         messageService,
	}
}

func (h *SocialHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AccountRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register account",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	account, err := h.accounts.Register(r.Context(), payload.ToAccount())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
			Error:   err.Error(),
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrDuplicateUsername):
			httpCode = http.StatusConflict
		case errors.Is(err, core.ErrBlankUsername), errors.Is(err, core.ErrPasswordTooShort):
			httpCode = http.StatusBadRequest
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, account, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	accounts, err := h.accounts.ListAccounts(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve accounts",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list accounts",
			"error", err,
			"handler", ListAccounts,
			"request_id", requestId)
		return
	}

	h.respond(w, accounts, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AccountRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	account, err := h.accounts.Login(r.Context(), payload.ToAccount())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, account, http.StatusOK, requestId)
}

func (h *SocialHandler) HandlePostMessage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.PostMessageRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not post message",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", PostMessage,
			"request_id", requestId)
		return
	}

	message, err := h.messages.PostMessage(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not post message",
			Error:   err.Error(),
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidMessageText) || errors.Is(err, core.ErrAccountNotFound) {
			httpCode = http.StatusBadRequest
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to post message",
			"error", err,
			"handler", PostMessage,
			"request_id", requestId)
		return
	}

	h.respond(w, message, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	messages, err := h.messages.ListMessages(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve messages",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list messages",
			"error", err,
			"handler", ListMessages,
			"request_id", requestId)
		return
	}

	h.respond(w, messages, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleGetMessage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r, "messageID")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve message",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid message id",
			"error", err,
			"handler", GetMessage,
			"request_id", requestId)
		return
	}

	message, found, err := h.messages.GetMessageByID(r.Context(), id)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve message",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get message",
			"error", err,
			"handler", GetMessage,
			"request_id", requestId)
		return
	}

	// a missing message is still a 200, just with an empty body
	if !found {
		h.respond(w, nil, http.StatusOK, requestId)
		return
	}

	h.respond(w, message, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r, "messageID")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not delete message",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid message id",
			"error", err,
			"handler", DeleteMessage,
			"request_id", requestId)
		return
	}

	rows, err := h.messages.DeleteMessageByID(r.Context(), id)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not delete message",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to delete message",
			"error", err,
			"handler", DeleteMessage,
			"request_id", requestId)
		return
	}

	// idempotent delete: a missing id is a 200 with an empty body
	if rows == 0 {
		h.respond(w, nil, http.StatusOK, requestId)
		return
	}

	h.respond(w, rows, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleUpdateMessage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r, "messageID")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update message",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid message id",
			"error", err,
			"handler", UpdateMessage,
			"request_id", requestId)
		return
	}

	var payload payload.MessageTextRequest
	err = h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update message",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", UpdateMessage,
			"request_id", requestId)
		return
	}

	rows, err := h.messages.UpdateMessageByID(r.Context(), id, payload.MessageText)
	if err != nil {
		resp := Response{
			Message: "Could not update message",
			Error:   err.Error(),
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrMessageNotFound) || errors.Is(err, core.ErrInvalidMessageText) {
			httpCode = http.StatusBadRequest
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update message",
			"error", err,
			"handler", UpdateMessage,
			"request_id", requestId)
		return
	}

	h.respond(w, rows, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleMessagesByAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r, "accountID")
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve messages",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid account id",
			"error", err,
			"handler", MessagesByAccount,
			"request_id", requestId)
		return
	}

	messages, err := h.messages.FindMessagesByAccountID(r.Context(), id)
	if err != nil {
		// a missing account is still a 200, just with an empty list
		if errors.Is(err, core.ErrAccountNotFound) {
			h.respond(w, []core.Message{}, http.StatusOK, requestId)
			return
		}

		h.respond(w, Response{
			Message: "Could not retrieve messages",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get messages by account",
			"error", err,
			"handler", MessagesByAccount,
			"request_id", requestId)
		return
	}

	h.respond(w, messages, http.StatusOK, requestId)
}

func (h *SocialHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if resp == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s path parameter: %w", name, err)
	}
	return uint(id), nil
}
