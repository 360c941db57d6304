package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrTaskNotFound error = errors.New("task not found")
var ErrInvalidStatus error = errors.New("invalid task status")
var ErrTokenNotValid error = errors.New("token is not valid")

// Board holds the application logic for accounts and task management.
// Every task operation is scoped to the authenticated user's id.
type Board struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	tokenTTL  time.Duration
}

func NewBoard(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, tokenTTL time.Duration) *Board {
	return &Board{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		tokenTTL:  tokenTTL,
	}
}

// Signup registers a new account and returns it together with a signed
// token. A taken username yields ErrUsernameTaken.
func (b *Board) Signup(ctx context.Context, creds Credentials) (Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	}
	if err := b.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return Session{}, ErrUsernameTaken
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	token, err := b.issueToken(user)
	if err != nil {
		return Session{}, err
	}

	b.logs.Infow("user signed up", "userId", user.ID, "username", user.Username)

	return Session{User: b.userToRecord(user), Token: token}, nil
}

// Login checks the credentials against the stored hash and issues a token.
func (b *Board) Login(ctx context.Context, creds Credentials) (Session, error) {
	user, err := b.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return Session{}, ErrIncorrectPassword
	}

	token, err := b.issueToken(user)
	if err != nil {
		return Session{}, err
	}

	return Session{User: b.userToRecord(user), Token: token}, nil
}

// VerifyToken validates the signed token and resolves it to the stored
// user. Any malformed, expired or forged token yields ErrTokenNotValid.
func (b *Board) VerifyToken(ctx context.Context, token string) (UserRecord, error) {
	claims, err := b.jwtIssuer.Validate(token)
	if err != nil {
		return UserRecord{}, fmt.Errorf("validate jwt token: %w: %w", err, ErrTokenNotValid)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return UserRecord{}, ErrTokenNotValid
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return UserRecord{}, fmt.Errorf("parse token subject: %w: %w", err, ErrTokenNotValid)
	}

	user, err := b.repo.GetUserByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrTokenNotValid
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return b.userToRecord(user), nil
}

// ListTasks returns all tasks owned by userID, newest first.
func (b *Board) ListTasks(ctx context.Context, userID uint) ([]TaskRecord, error) {
	tasks, err := b.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user tasks: %w", err)
	}

	return b.tasksToRecords(tasks), nil
}

// CreateTask stores a new task for userID. Description defaults to empty,
// status to "todo".
func (b *Board) CreateTask(ctx context.Context, userID uint, draft TaskDraft) (TaskRecord, error) {
	status := draft.Status
	if status == "" {
		status = StatusTodo
	}
	if !ValidStatus(status) {
		return TaskRecord{}, ErrInvalidStatus
	}

	task := repository.Task{
		Title:       draft.Title,
		Description: draft.Description,
		Status:      status,
		UserID:      userID,
	}
	if err := b.repo.CreateTask(ctx, &task); err != nil {
		return TaskRecord{}, fmt.Errorf("create task: %w", err)
	}

	b.logs.Infow("task created", "userId", userID, "taskId", task.ID, "status", task.Status)

	return b.taskToRecord(task), nil
}

// UpdateTask applies the non-nil fields of patch to the task. Omitted
// fields keep their stored values. A task not owned by userID is
// reported as ErrTaskNotFound.
func (b *Board) UpdateTask(ctx context.Context, userID, taskID uint, patch TaskPatch) (TaskRecord, error) {
	if patch.Status != nil && !ValidStatus(*patch.Status) {
		return TaskRecord{}, ErrInvalidStatus
	}

	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}

	task, err := b.repo.UpdateTask(ctx, userID, taskID, updates)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return TaskRecord{}, ErrTaskNotFound
		}
		return TaskRecord{}, fmt.Errorf("update task: %w", err)
	}

	return b.taskToRecord(task), nil
}

// DeleteTask removes the task when it is owned by userID.
func (b *Board) DeleteTask(ctx context.Context, userID, taskID uint) error {
	err := b.repo.DeleteTask(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	b.logs.Infow("task deleted", "userId", userID, "taskId", taskID)

	return nil
}

func (b *Board) issueToken(user repository.User) (string, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: b.tokenTTL,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (b *Board) userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func (b *Board) taskToRecord(task repository.Task) TaskRecord {
	return TaskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Completed:   task.Completed,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
	}
}

func (b *Board) tasksToRecords(tasks []repository.Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = b.taskToRecord(task)
	}
	return records
}
