package core

import (
	"context"
	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	CreateTask(ctx context.Context, task *repository.Task) error
	GetUserTasks(ctx context.Context, userID uint) ([]repository.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint, updates map[string]any) (repository.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
