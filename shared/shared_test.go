package shared_test

import (
	"testing"

	"tick/shared"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	got := shared.ConvertStringToBool("true")
	if assert.NotNil(t, got) {
		assert.True(t, *got)
	}

	got = shared.ConvertStringToBool("0")
	if assert.NotNil(t, got) {
		assert.False(t, *got)
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "todo:user-1:todo-1", shared.BuildCacheKey("todo", "user-1", "todo-1"))
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Text      string `db:"text"`
		Completed *bool  `db:"completed"`
		Ignored   string
	}

	completed := true
	fields := shared.TransformFields(patch{Text: "buy milk", Completed: &completed}, "user-1")

	assert.Equal(t, "buy milk", fields["text"])
	assert.Equal(t, &completed, fields["completed"])
	assert.Equal(t, "user-1", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
	assert.NotContains(t, fields, "Ignored")
}

func TestTransformFieldsSkipsZeroValues(t *testing.T) {
	type patch struct {
		Text string `db:"text"`
	}

	fields := shared.TransformFields(patch{}, "user-1")

	assert.NotContains(t, fields, "text")
}

func TestFilterOwnedByID(t *testing.T) {
	filter := shared.FilterOwnedByID("todo-1", "id", "user-1", "created_by", "todos")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(todos.id = :id AND todos.created_by = :created_by)", where)
	assert.Equal(t, "todo-1", args["id"])
	assert.Equal(t, "user-1", args["created_by"])
}
