package repository

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrTaskNotFound error = errors.New("task not found")

type BoardRepository struct {
	db Storage
}

func NewBoardRepository(db Storage) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (r *BoardRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Task{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BoardRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.CreateOne(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *BoardRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BoardRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *BoardRepository) CreateTask(ctx context.Context, task *Task) error {
	err := r.db.CreateOne(ctx, task)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetUserTasks returns all tasks owned by userID, newest first.
func (r *BoardRepository) GetUserTasks(ctx context.Context, userID uint) ([]Task, error) {
	tasks := []Task{}

	err := r.db.GetAllBy(ctx, "user_id", userID, "id DESC", &tasks)
	if err != nil {
		return nil, fmt.Errorf("get user tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies the given column updates to the task identified by
// taskID, but only when it is owned by userID. A task owned by another
// user is reported as not found.
func (r *BoardRepository) UpdateTask(ctx context.Context, userID, taskID uint, updates map[string]any) (Task, error) {
	rows, err := r.db.UpdateWhere(ctx, &Task{}, updates, "id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	if rows == 0 {
		return Task{}, ErrTaskNotFound
	}

	var task Task
	if err := r.db.GetOneBy(ctx, "id", taskID, &task); err != nil {
		return Task{}, fmt.Errorf("get updated task: %w", err)
	}

	return task, nil
}

func (r *BoardRepository) DeleteTask(ctx context.Context, userID, taskID uint) error {
	rows, err := r.db.DeleteWhere(ctx, &Task{}, "id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}
