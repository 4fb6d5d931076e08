package dto

import (
	"village/internal/domains/seller/model"
	gDto "village/shared/dto"
	gModel "village/shared/model"
	"village/shared/timezone"

	"github.com/google/uuid"
)

type SetupSellerRequest struct {
	Title       string  `json:"title"       validate:"required,max=150"`
	Description *string `json:"description" validate:"omitempty"`
	Category    *string `json:"category"    validate:"omitempty,max=100"`
	Portfolio   *string `json:"portfolio"   validate:"omitempty"`
}

// ToModel builds the seller row. The generated id only survives the first
// setup; later setups hit the user_id conflict and keep the original id.
func (c *SetupSellerRequest) ToModel(user string) model.Seller {
	return model.Seller{
		ID:          uuid.NewString(),
		UserID:      user,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Portfolio:   c.Portfolio,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SellerResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Portfolio   *string `json:"portfolio"`
	gDto.Metadata
}

func (r *SellerResponse) FromModel(mod model.Seller) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Category = mod.Category
	r.Portfolio = mod.Portfolio
	r.Metadata.FromModel(mod.Metadata)
}
