package payload

import (
	"taskboard/internal/core"

	"github.com/jellydator/validation"
)

var statusValues = []any{core.StatusTodo, core.StatusInProgress, core.StatusDone}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (c CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Status, validation.In(statusValues...)),
	)
}

func (c CreateTaskRequest) ToDraft() core.TaskDraft {
	return core.TaskDraft{
		Title:       c.Title,
		Description: c.Description,
		Status:      c.Status,
	}
}

// UpdateTaskRequest is a partial update: nil fields keep their stored
// values, so only supplied keys are validated.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Completed   *bool   `json:"completed"`
}

func (u UpdateTaskRequest) Validate() error {
	if u.Title == nil && u.Description == nil && u.Status == nil && u.Completed == nil {
		return validation.NewError("validation_empty_update", "at least one field must be supplied")
	}

	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty),
		validation.Field(&u.Status, validation.In(statusValues...)),
	)
}

func (u UpdateTaskRequest) ToPatch() core.TaskPatch {
	return core.TaskPatch{
		Title:       u.Title,
		Description: u.Description,
		Status:      u.Status,
		Completed:   u.Completed,
	}
}
