package dto

import (
	"time"
	"village/internal/domains/booking/model"
	"village/shared/constant"
	gDto "village/shared/dto"
	gModel "village/shared/model"
	"village/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Date      string `json:"date"      validate:"required"`
	Time      string `json:"time"      validate:"required"`
	// Accepted for wire compatibility; bookings always start out pending, so
	// anything other than "pending" is rejected.
	Status string `json:"status" validate:"omitempty,oneof=pending"`
}

// ToModel builds the row to persist. The caller has already parsed and
// validated the date against the clock.
func (c *CreateBookingRequest) ToModel(buyerID string, date time.Time) model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		BuyerID:   buyerID,
		ServiceID: c.ServiceID,
		Date:      date,
		Time:      c.Time,
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  buyerID,
			ModifiedBy: buyerID,
		},
	}
}

type ServiceSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	DefaultPrice *float64 `json:"default_price"`
	ExpressPrice *float64 `json:"express_price"`
}

type BookingResponse struct {
	ID        string          `json:"id"`
	BuyerID   string          `json:"buyer_id"`
	ServiceID string          `json:"service_id"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Status    string          `json:"status"`
	Service   *ServiceSummary `json:"service"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.BuyerID = mod.BuyerID
	r.ServiceID = mod.ServiceID
	r.Date = mod.Date.Format(constant.BookingDateFormat)
	r.Time = mod.Time
	r.Status = mod.Status.String()
	r.Metadata.FromModel(mod.Metadata)

	if mod.ServiceTitle != nil {
		summary := ServiceSummary{
			ID:           mod.ServiceID,
			Title:        *mod.ServiceTitle,
			DefaultPrice: mod.ServiceDefaultPrice,
			ExpressPrice: mod.ServiceExpressPrice,
		}

		if mod.ServiceDescription != nil {
			summary.Description = *mod.ServiceDescription
		}

		if mod.ServiceCategory != nil {
			summary.Category = *mod.ServiceCategory
		}

		r.Service = &summary
	}
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	BuyerID    string    `json:"buyer_id"`
	ServiceID  string    `json:"service_id"`
	SellerID   string    `json:"seller_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
