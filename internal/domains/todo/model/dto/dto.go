package dto

import (
	"tick/internal/domains/todo/model"
	"tick/shared"
	"tick/shared/constant"
	gDto "tick/shared/dto"
	gModel "tick/shared/model"
	"tick/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title       string     `json:"title"       validate:"required,max=255"`
	Description string     `json:"description" validate:"omitempty,max=255"`
	DueAt       *time.Time `json:"due_at"      validate:"omitempty"`
}

func (c *CreateTodoRequest) ToModel(user string) model.Todo {
	return model.Todo{
		ID:          uuid.NewString(),
		UserID:      user,
		Title:       c.Title,
		Description: c.Description,
		Completed:   false,
		DueAt:       c.DueAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTodoRequest struct {
	Title       *string           `json:"title"       validate:"omitempty,max=255"`
	Description *string           `json:"description" validate:"omitempty,max=255"`
	Completed   *bool             `json:"completed"`
	DueAt       gDto.NullableTime `json:"due_at"`
}

// Apply overwrites exactly the fields present in the request on the given
// model and returns the matching column map for persistence. Presence is
// the test, not truthiness: completed=false still overwrites, and an
// explicit due_at null clears the due date while an absent due_at leaves
// it alone.
func (u *UpdateTodoRequest) Apply(todo *model.Todo, user string) map[string]any {
	fields := map[string]any{}

	if u.Title != nil {
		todo.Title = *u.Title
		fields[model.FieldTitle] = *u.Title
	}

	if u.Description != nil {
		todo.Description = *u.Description
		fields[model.FieldDescription] = *u.Description
	}

	if u.Completed != nil {
		todo.Completed = *u.Completed
		fields[model.FieldCompleted] = *u.Completed
	}

	if u.DueAt.Set {
		if u.DueAt.Valid {
			due := u.DueAt.Time
			todo.DueAt = &due
			fields[model.FieldDueAt] = due
		} else {
			todo.DueAt = nil
			fields[model.FieldDueAt] = nil
		}
	}

	now := timezone.Now()
	todo.ModifiedAt = now
	todo.ModifiedBy = user

	fields[constant.FieldModifiedAt] = now
	fields[constant.FieldModifiedBy] = user

	return fields
}

type TodoResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	DueAt       *string `json:"due_at"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed

	if model.DueAt != nil {
		due := timezone.Format(*model.DueAt, constant.DateFormat)
		r.DueAt = &due
	} else {
		r.DueAt = nil
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetTodosResponse struct {
	Todos     []TodoResponse `json:"todos"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
