package core

import "time"

const (
	StatusTodo       = "todo"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
)

// ValidStatus reports whether s is one of the three board columns.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserRecord struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is what a successful signup or login hands back to the client.
type Session struct {
	User  UserRecord `json:"user"`
	Token string     `json:"token"`
}

type TaskRecord struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Completed   bool      `json:"completed"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskDraft carries the fields a client may set when creating a task.
type TaskDraft struct {
	Title       string
	Description string
	Status      string
}

// TaskPatch carries a partial update. Nil fields keep their stored value.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Completed   *bool
}
