package model

import (
	"time"
	"village/shared/model"
)

const (
	TableName  = "requests"
	EntityName = "request"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldNeededBy    = "needed_by"
	FieldStatus      = "status"
)

const StatusActive = "active"

// Request is a buyer-posted ask for a hustle nobody has listed yet.
type Request struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	NeededBy    time.Time `db:"needed_by"`
	Status      string    `db:"status"`
	model.Metadata
}
