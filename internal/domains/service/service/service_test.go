package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"village/config"
	"village/infras/otel/mocks"
	serviceMocks "village/internal/domains/service/mocks"
	"village/internal/domains/service/model"
	"village/internal/domains/service/model/dto"
	"village/internal/domains/service/service"
	cacheMocks "village/shared/cache/mocks"
	gDto "village/shared/dto"
	"village/shared/failure"
)

const (
	ownerID   = "seller-1"
	serviceID = "service-1"
)

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	repo  *serviceMocks.MockService
	cache *cacheMocks.MockRedisCache
	svc   service.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockRepo := serviceMocks.NewMockService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidation run on detached goroutines.
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return fixture{
		repo:  mockRepo,
		cache: mockCache,
		svc:   service.New(mockRepo, cfg, mockCache, mocks.NewOtel()),
	}
}

func activeService() model.Service {
	return model.Service{
		ID:           serviceID,
		UserID:       ownerID,
		Title:        "Laundry Express",
		Description:  "Same-day laundry",
		Category:     "laundry",
		DefaultPrice: ptr(25000.0),
		IsActive:     true,
		IsVerified:   true,
	}
}

func TestServiceService_GetAll(t *testing.T) {
	t.Run("cache miss lists active services", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Service{activeService()}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, "", "")

		assert.NoError(t, err)
		assert.Len(t, res.Services, 1)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("category and search narrow the listing", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Service, error) {
				assert.Len(t, filter.Filters, 3)

				return []model.Service{}, nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, "laundry", "express")

		assert.NoError(t, err)
		assert.Empty(t, res.Services)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, "", "")

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, "", "")

		assert.Error(t, err)
	})
}

func TestServiceService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "active service is returned",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
			},
			wantErr: false,
		},
		{
			name: "inactive service is hidden",
			setupMock: func(f fixture) {
				svc := activeService()
				svc.IsActive = false

				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(svc, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown service",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Service{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), serviceID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, serviceID, res.ID)
		})
	}
}

func TestServiceService_Create(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, svc model.Service) {
			assert.True(t, svc.IsActive)
			assert.False(t, svc.IsVerified)
			assert.Equal(t, ownerID, svc.UserID)
		}).
		Return(nil)

	req := dto.CreateServiceRequest{
		Title:       "Laundry Express",
		Description: "Same-day laundry",
		Category:    "laundry",
	}

	res, err := f.svc.Create(context.Background(), ownerID, req)

	assert.NoError(t, err)
	assert.True(t, res.IsActive)
	assert.False(t, res.IsVerified)
}

func TestServiceService_Update(t *testing.T) {
	t.Run("service owned by someone else reads as missing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{}, nil)

		err := f.svc.Update(context.Background(), "stranger-1", serviceID, dto.UpdateServiceRequest{Title: "New title"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("verification flag never reaches the update", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeService(), nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldIsVerified)
				assert.Equal(t, "New title", fields[model.FieldTitle])

				return nil
			})

		req := dto.UpdateServiceRequest{
			Title:      "New title",
			IsVerified: ptr(true),
		}

		assert.NoError(t, f.svc.Update(context.Background(), ownerID, serviceID, req))
	})

	t.Run("update with nothing editable is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeService(), nil)

		err := f.svc.Update(context.Background(), ownerID, serviceID, dto.UpdateServiceRequest{IsVerified: ptr(true)})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestServiceService_Toggle(t *testing.T) {
	t.Run("active listing is deactivated", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeService(), nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldIsActive])

				return nil
			})

		res, err := f.svc.Toggle(context.Background(), ownerID, serviceID)

		assert.NoError(t, err)
		assert.False(t, res.IsActive)
	})

	t.Run("unknown listing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{}, nil)

		_, err := f.svc.Toggle(context.Background(), ownerID, serviceID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
