package model

import "tick/shared/model"

const (
	TableName  = "user_tokens"
	EntityName = "token"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldAccess = "access"
	FieldToken  = "token"
)

// Token is one entry of a user's persisted token list. A row here is what
// makes a signed token honored; deleting the row revokes the session even
// while the signature still verifies.
type Token struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
	Access string `db:"access"`
	Token  string `db:"token"`
	model.Metadata
}
