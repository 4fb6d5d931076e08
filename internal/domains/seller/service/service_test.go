package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"village/infras/otel/mocks"
	sellerMocks "village/internal/domains/seller/mocks"
	"village/internal/domains/seller/model"
	"village/internal/domains/seller/model/dto"
	"village/internal/domains/seller/service"
	"village/shared/failure"
)

const userID = "user-1"

func TestSellerService_Setup(t *testing.T) {
	t.Run("setup persists and reads back the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := sellerMocks.NewMockSeller(ctrl)
		svc := service.New(mockRepo, mocks.NewOtel())

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, seller model.Seller) {
				assert.Equal(t, userID, seller.UserID)
				assert.Equal(t, "Tailor shop", seller.Title)
			}).
			Return(nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Seller{ID: "seller-row-1", UserID: userID, Title: "Tailor shop"}, nil)

		res, err := svc.Setup(context.Background(), userID, dto.SetupSellerRequest{Title: "Tailor shop"})

		assert.NoError(t, err)
		assert.Equal(t, "seller-row-1", res.ID)
		assert.Equal(t, userID, res.UserID)
	})

	t.Run("upsert failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := sellerMocks.NewMockSeller(ctrl)
		svc := service.New(mockRepo, mocks.NewOtel())

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Setup(context.Background(), userID, dto.SetupSellerRequest{Title: "Tailor shop"})

		assert.Error(t, err)
	})
}

func TestSellerService_Get(t *testing.T) {
	t.Run("missing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := sellerMocks.NewMockSeller(ctrl)
		svc := service.New(mockRepo, mocks.NewOtel())

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Seller{}, nil)

		_, err := svc.Get(context.Background(), userID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("existing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := sellerMocks.NewMockSeller(ctrl)
		svc := service.New(mockRepo, mocks.NewOtel())

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Seller{ID: "seller-row-1", UserID: userID, Title: "Tailor shop"}, nil)

		res, err := svc.Get(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "Tailor shop", res.Title)
	})
}
