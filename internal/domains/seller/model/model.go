package model

import "village/shared/model"

const (
	TableName  = "sellers"
	EntityName = "seller"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPortfolio   = "portfolio"
)

// Seller is the storefront profile a user sets up before listing services.
// One row per user, upserted on user_id.
type Seller struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Category    *string `db:"category"`
	Portfolio   *string `db:"portfolio"`
	model.Metadata
}
