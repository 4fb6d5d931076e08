package dto

import (
	"village/internal/domains/service/model"
	"village/shared"
	gDto "village/shared/dto"
	gModel "village/shared/model"
	"village/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Title               string   `json:"title"                 validate:"required,max=150"`
	Description         string   `json:"description"           validate:"required"`
	Category            string   `json:"category"              validate:"required,max=100"`
	DefaultPrice        *float64 `json:"default_price"         validate:"omitempty,min=0"`
	DefaultDeliveryTime *string  `json:"default_delivery_time" validate:"omitempty,max=100"`
	ExpressPrice        *float64 `json:"express_price"         validate:"omitempty,min=0"`
	ExpressDeliveryTime *string  `json:"express_delivery_time" validate:"omitempty,max=100"`
	Portfolio           *string  `json:"portfolio"             validate:"omitempty"`
}

// ToModel builds a new listing owned by the user. Listings start active and
// unverified; verification is asserted elsewhere.
func (c *CreateServiceRequest) ToModel(user string) model.Service {
	return model.Service{
		ID:                  uuid.NewString(),
		UserID:              user,
		Title:               c.Title,
		Description:         c.Description,
		Category:            c.Category,
		DefaultPrice:        c.DefaultPrice,
		DefaultDeliveryTime: c.DefaultDeliveryTime,
		ExpressPrice:        c.ExpressPrice,
		ExpressDeliveryTime: c.ExpressDeliveryTime,
		Portfolio:           c.Portfolio,
		IsActive:            true,
		IsVerified:          false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateServiceRequest carries the editable columns. IsVerified is accepted
// on the wire but dropped before the update lands.
type UpdateServiceRequest struct {
	Title               string   `db:"title"                 json:"title"                 validate:"omitempty,max=150"`
	Description         string   `db:"description"           json:"description"           validate:"omitempty"`
	Category            string   `db:"category"              json:"category"              validate:"omitempty,max=100"`
	DefaultPrice        *float64 `db:"default_price"         json:"default_price"         validate:"omitempty,min=0"`
	DefaultDeliveryTime *string  `db:"default_delivery_time" json:"default_delivery_time" validate:"omitempty,max=100"`
	ExpressPrice        *float64 `db:"express_price"         json:"express_price"         validate:"omitempty,min=0"`
	ExpressDeliveryTime *string  `db:"express_delivery_time" json:"express_delivery_time" validate:"omitempty,max=100"`
	Portfolio           *string  `db:"portfolio"             json:"portfolio"             validate:"omitempty"`
	IsVerified          *bool    `db:"is_verified"           json:"is_verified"           validate:"omitempty"`
}

type SellerSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type ServiceResponse struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"user_id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Category            string         `json:"category"`
	DefaultPrice        *float64       `json:"default_price"`
	DefaultDeliveryTime *string        `json:"default_delivery_time"`
	ExpressPrice        *float64       `json:"express_price"`
	ExpressDeliveryTime *string        `json:"express_delivery_time"`
	Portfolio           *string        `json:"portfolio"`
	IsActive            bool           `json:"is_active"`
	IsVerified          bool           `json:"is_verified"`
	Seller              *SellerSummary `json:"seller"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(mod model.Service) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Category = mod.Category
	r.DefaultPrice = mod.DefaultPrice
	r.DefaultDeliveryTime = mod.DefaultDeliveryTime
	r.ExpressPrice = mod.ExpressPrice
	r.ExpressDeliveryTime = mod.ExpressDeliveryTime
	r.Portfolio = mod.Portfolio
	r.IsActive = mod.IsActive
	r.IsVerified = mod.IsVerified
	r.Metadata.FromModel(mod.Metadata)

	if mod.SellerID != nil {
		summary := SellerSummary{
			ID:          *mod.SellerID,
			Description: mod.SellerDescription,
			Category:    mod.SellerCategory,
		}

		if mod.SellerTitle != nil {
			summary.Title = *mod.SellerTitle
		}

		r.Seller = &summary
	}
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
