package model

import "village/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldTitle               = "title"
	FieldDescription         = "description"
	FieldCategory            = "category"
	FieldDefaultPrice        = "default_price"
	FieldDefaultDeliveryTime = "default_delivery_time"
	FieldExpressPrice        = "express_price"
	FieldExpressDeliveryTime = "express_delivery_time"
	FieldPortfolio           = "portfolio"
	FieldIsActive            = "is_active"
	FieldIsVerified          = "is_verified"
)

// Service is a sellable offering listed by a seller. IsVerified is asserted
// by an administrative process only; seller updates never touch it.
type Service struct {
	ID                  string   `db:"id"`
	UserID              string   `db:"user_id"`
	Title               string   `db:"title"`
	Description         string   `db:"description"`
	Category            string   `db:"category"`
	DefaultPrice        *float64 `db:"default_price"`
	DefaultDeliveryTime *string  `db:"default_delivery_time"`
	ExpressPrice        *float64 `db:"express_price"`
	ExpressDeliveryTime *string  `db:"express_delivery_time"`
	Portfolio           *string  `db:"portfolio"`
	IsActive            bool     `db:"is_active"`
	IsVerified          bool     `db:"is_verified"`
	model.Metadata

	// Seller profile summary joined through user_id.
	SellerID          *string `db:"seller_id"          table:"sellers" column:"id"`
	SellerTitle       *string `db:"seller_title"       table:"sellers" column:"title"`
	SellerDescription *string `db:"seller_description" table:"sellers" column:"description"`
	SellerCategory    *string `db:"seller_category"    table:"sellers" column:"category"`
}

func (Service) GetJoinQuery() string {
	return "LEFT JOIN sellers ON sellers.user_id = services.user_id"
}
