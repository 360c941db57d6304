package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"taskboard/internal/core"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Signup     = "POST /auth/signup"
	Login      = "POST /auth/login"
	Verify     = "GET /auth/verify"
	ListTasks  = "GET /tasks"
	CreateTask = "POST /tasks"
	UpdateTask = "PUT /tasks/{id}"
	DeleteTask = "DELETE /tasks/{id}"
)

type BoardHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	board            BoardService
}

func NewBoardHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, boardService BoardService) *BoardHandler {
	return &BoardHandler{
		logs:             logger,
		requestValidator: requestValidator,
		board:            boardService,
	}
}

func (h *BoardHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	var signupReq payload.SignupRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &signupReq); err != nil {
		h.respond(w, Response{
			Error: fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestID)
		return
	}

	session, err := h.board.Signup(r.Context(), signupReq.ToCredentials())
	if err != nil {
		httpCode := http.StatusInternalServerError
		errMsg := oopsErr
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusConflict
			errMsg = err.Error()
		}

		h.respond(w, Response{Error: errMsg}, httpCode, requestID)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestID)
		return
	}

	h.respond(w, session, http.StatusCreated, requestID)
}

func (h *BoardHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	var loginReq payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &loginReq); err != nil {
		h.respond(w, Response{
			Error: fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestID)
		return
	}

	session, err := h.board.Login(r.Context(), loginReq.ToCredentials())
	if err != nil {
		httpCode := http.StatusInternalServerError
		errMsg := oopsErr
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			errMsg = "invalid username or password"
		}

		h.respond(w, Response{Error: errMsg}, httpCode, requestID)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestID)
		return
	}

	h.respond(w, session, http.StatusOK, requestID)
}

func (h *BoardHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	token := middleware.BearerToken(r)
	if token == "" {
		h.respond(w, Response{
			Error: "authorization bearer token is required",
		}, http.StatusUnauthorized, requestID)
		h.logs.Errorw("missing bearer token", "handler", Verify, "request_id", requestID)
		return
	}

	user, err := h.board.VerifyToken(r.Context(), token)
	if err != nil {
		httpCode := http.StatusInternalServerError
		errMsg := oopsErr
		if errors.Is(err, core.ErrTokenNotValid) {
			httpCode = http.StatusUnauthorized
			errMsg = "invalid or expired token"
		}

		h.respond(w, Response{Error: errMsg}, httpCode, requestID)
		h.logs.Errorw("token verification failed",
			"error", err,
			"handler", Verify,
			"request_id", requestID)
		return
	}

	resp := map[string]core.UserRecord{
		"user": user,
	}
	h.respond(w, resp, http.StatusOK, requestID)
}

func (h *BoardHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondUnauthenticated(w, ListTasks, requestID)
		return
	}

	tasks, err := h.board.ListTasks(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to list tasks",
			"error", err,
			"handler", ListTasks,
			"request_id", requestID)
		return
	}

	h.respond(w, tasks, http.StatusOK, requestID)
}

func (h *BoardHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondUnauthenticated(w, CreateTask, requestID)
		return
	}

	var createReq payload.CreateTaskRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &createReq); err != nil {
		h.respond(w, Response{
			Error: fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTask,
			"request_id", requestID)
		return
	}

	task, err := h.board.CreateTask(r.Context(), userID, createReq.ToDraft())
	if err != nil {
		httpCode := http.StatusInternalServerError
		errMsg := oopsErr
		if errors.Is(err, core.ErrInvalidStatus) {
			httpCode = http.StatusBadRequest
			errMsg = err.Error()
		}

		h.respond(w, Response{Error: errMsg}, httpCode, requestID)
		h.logs.Errorw("failed to create task",
			"error", err,
			"handler", CreateTask,
			"request_id", requestID)
		return
	}

	h.respond(w, task, http.StatusOK, requestID)
}

func (h *BoardHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondUnauthenticated(w, UpdateTask, requestID)
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		h.respond(w, Response{Error: "invalid task id"}, http.StatusBadRequest, requestID)
		h.logs.Errorw("invalid task id", "error", err, "handler", UpdateTask, "request_id", requestID)
		return
	}

	var updateReq payload.UpdateTaskRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &updateReq); err != nil {
		h.respond(w, Response{
			Error: fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateTask,
			"request_id", requestID)
		return
	}

	task, err := h.board.UpdateTask(r.Context(), userID, taskID, updateReq.ToPatch())
	if err != nil {
		httpCode := http.StatusInternalServerError
		errMsg := oopsErr
		switch {
		case errors.Is(err, core.ErrTaskNotFound):
			httpCode = http.StatusNotFound
			errMsg = err.Error()
		case errors.Is(err, core.ErrInvalidStatus):
			httpCode = http.StatusBadRequest
			errMsg = err.Error()
		}

		h.respond(w, Response{Error: errMsg}, httpCode, requestID)
		h.logs.Errorw("failed to update task",
			"error", err,
			"handler", UpdateTask,
			"request_id", requestID)
		return
	}

	h.respond(w, task, http.StatusOK, requestID)
}

func (h *BoardHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondUnauthenticated(w, DeleteTask, requestID)
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		h.respond(w, Response{Error: "invalid task id"}, http.StatusBadRequest, requestID)
		h.logs.Errorw("invalid task id", "error", err, "handler", DeleteTask, "request_id", requestID)
		return
	}

	if err := h.board.DeleteTask(r.Context(), userID, taskID); err != nil {
		httpCode := http.StatusInternalServerError
		errMsg := oopsErr
		if errors.Is(err, core.ErrTaskNotFound) {
			httpCode = http.StatusNotFound
			errMsg = err.Error()
		}

		h.respond(w, Response{Error: errMsg}, httpCode, requestID)
		h.logs.Errorw("failed to delete task",
			"error", err,
			"handler", DeleteTask,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Message: "Task deleted"}, http.StatusOK, requestID)
}

func (h *BoardHandler) respond(w http.ResponseWriter, resp any, code int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestID)
	}
}

func (h *BoardHandler) respondUnauthenticated(w http.ResponseWriter, handlerName, requestID string) {
	h.respond(w, Response{Error: "authentication required"}, http.StatusUnauthorized, requestID)
	h.logs.Errorw("no authenticated user in request context",
		"handler", handlerName,
		"request_id", requestID)
}

func taskIDFromPath(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse task id %q: %w", raw, err)
	}
	return uint(id), nil
}

func requestIDFromContext(r *http.Request) string {
	if reqIDCtx := r.Context().Value(middleware.RequestIDKey); reqIDCtx != nil {
		return reqIDCtx.(string)
	}
	return ""
}
