package model

import (
	"tick/shared/constant"
	"tick/shared/model"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldText        = "text"
	FieldCompleted   = "completed"
	FieldCompletedAt = "completed_at"

	// FieldCreator is the immutable creator reference; every todo filter
	// carries it.
	FieldCreator = "created_by"
)

// SortableColumns are the columns a listing may be ordered by. Anything
// outside this set never reaches the query builder.
var SortableColumns = []string{
	constant.FieldCreatedAt,
	constant.FieldModifiedAt,
	FieldText,
	FieldCompleted,
}

type Todo struct {
	ID          string `db:"id"`
	Text        string `db:"text"`
	Completed   bool   `db:"completed"`
	CompletedAt *int64 `db:"completed_at"`
	model.Metadata
}
