package handler

import (
	"context"
	"net/http"

	"taskboard/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BoardService . BoardService
type BoardService interface {
	Signup(ctx context.Context, creds core.Credentials) (core.Session, error)
	Login(ctx context.Context, creds core.Credentials) (core.Session, error)
	VerifyToken(ctx context.Context, token string) (core.UserRecord, error)
	ListTasks(ctx context.Context, userID uint) ([]core.TaskRecord, error)
	CreateTask(ctx context.Context, userID uint, draft core.TaskDraft) (core.TaskRecord, error)
	UpdateTask(ctx context.Context, userID, taskID uint, patch core.TaskPatch) (core.TaskRecord, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
