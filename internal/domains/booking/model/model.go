package model

import (
	"time"
	"village/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldBuyerID   = "buyer_id"
	FieldServiceID = "service_id"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldStatus    = "status"
)

type Booking struct {
	ID        string    `db:"id"`
	BuyerID   string    `db:"buyer_id"`
	ServiceID string    `db:"service_id"`
	Date      time.Time `db:"date"`
	Time      string    `db:"time"`
	Status    Status    `db:"status"`
	model.Metadata

	// Summary of the booked service, resolved through the join below. The
	// seller is always derived from services.user_id, never stored here.
	ServiceOwnerID      *string  `db:"service_owner_id"      table:"services" column:"user_id"`
	ServiceTitle        *string  `db:"service_title"         table:"services" column:"title"`
	ServiceDescription  *string  `db:"service_description"   table:"services" column:"description"`
	ServiceCategory     *string  `db:"service_category"      table:"services" column:"category"`
	ServiceDefaultPrice *float64 `db:"service_default_price" table:"services" column:"default_price"`
	ServiceExpressPrice *float64 `db:"service_express_price" table:"services" column:"express_price"`
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN services ON services.id = bookings.service_id"
}
