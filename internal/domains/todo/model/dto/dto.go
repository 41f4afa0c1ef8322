package dto

import (
	"encoding/json"
	"io"
	"strings"

	"tick/internal/domains/todo/model"
	"tick/shared/failure"
	gModel "tick/shared/model"
	"tick/shared/timezone"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

func (c *CreateTodoRequest) ToModel(user string) model.Todo {
	return model.Todo{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(c.Text),
		Completed: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateTodoRequest is the PATCH body. Only text and completed are
// permitted; any other field in the payload is dropped by construction.
type UpdateTodoRequest struct {
	Text      *string
	Completed *bool
}

// patchBody keeps the two permitted fields raw so that a wrongly typed
// value becomes a field-level error instead of aborting the decode, and
// both offending fields can be reported in one response.
type patchBody struct {
	Text      json.RawMessage `json:"text"`
	Completed json.RawMessage `json:"completed"`
}

// Decode reads and validates the PATCH body. All field-level violations are
// collected into a single validation failure; no partial result is kept.
func (u *UpdateTodoRequest) Decode(r io.Reader) error {
	var body patchBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return failure.BadRequestFromString("failed to decode request body") //nolint:wrapcheck
	}

	fields := map[string]string{}

	if body.Text != nil {
		var text string
		if err := json.Unmarshal(body.Text, &text); err != nil {
			fields["text"] = "text must be a string"
		} else if text = strings.TrimSpace(text); text == "" {
			fields["text"] = "text is required"
		} else {
			u.Text = &text
		}
	}

	if body.Completed != nil {
		var completed bool
		if err := json.Unmarshal(body.Completed, &completed); err != nil {
			fields["completed"] = "completed must be a boolean"
		} else {
			u.Completed = &completed
		}
	}

	if len(fields) > 0 {
		u.Text = nil
		u.Completed = nil

		return failure.Validation(fields) //nolint:wrapcheck
	}

	return nil
}

type TodoResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt"`
	Creator     string `json:"creator"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Text = model.Text
	r.Completed = model.Completed
	r.CompletedAt = model.CompletedAt
	r.Creator = model.CreatedBy
}

// TodoEnvelope wraps a single todo for response bodies.
type TodoEnvelope struct {
	Todo TodoResponse `json:"todo"`
}

type GetTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo) {
	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
