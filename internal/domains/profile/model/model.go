package model

import "village/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldCampus   = "campus"
	FieldPhone    = "phone"
	FieldRole     = "role"
)

// Profile is the buyer-side identity record referenced by bookings. It is
// provisioned by the external identity flow and only read here.
type Profile struct {
	ID       string  `db:"id"`
	FullName *string `db:"full_name"`
	Campus   *string `db:"campus"`
	Phone    *string `db:"phone"`
	Role     string  `db:"role"`
	model.Metadata
}
