package dto

import (
	"time"
	"village/internal/domains/request/model"
	"village/shared/constant"
	gDto "village/shared/dto"
	gModel "village/shared/model"
	"village/shared/timezone"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	Title       string `json:"title"       validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
	NeededBy    string `json:"needed_by"   validate:"required"`
}

// ToModel builds the posting. New requests always open as active.
func (c *CreateRequestRequest) ToModel(user string, neededBy time.Time) model.Request {
	return model.Request{
		ID:          uuid.NewString(),
		UserID:      user,
		Title:       c.Title,
		Description: c.Description,
		NeededBy:    neededBy,
		Status:      model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RequestResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	NeededBy    string `json:"needed_by"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *RequestResponse) FromModel(mod model.Request) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.Title = mod.Title
	r.Description = mod.Description
	r.NeededBy = mod.NeededBy.Format(constant.BookingDateFormat)
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}

func (r *GetRequestsResponse) FromModels(models []model.Request) {
	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
