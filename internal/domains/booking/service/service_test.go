package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"village/config"
	kafkaMocks "village/infras/kafka/mocks"
	"village/infras/otel/mocks"
	bookingMocks "village/internal/domains/booking/mocks"
	"village/internal/domains/booking/model"
	"village/internal/domains/booking/model/dto"
	"village/internal/domains/booking/service"
	profileMocks "village/internal/domains/profile/mocks"
	serviceModel "village/internal/domains/service/model"
	serviceMocks "village/internal/domains/service/mocks"
	cacheMocks "village/shared/cache/mocks"
	gDto "village/shared/dto"
	"village/shared/failure"
	"village/shared/timezone"
	"village/shared/validator"
)

const (
	buyerID    = "buyer-1"
	sellerID   = "seller-1"
	strangerID = "stranger-1"
	serviceID  = "service-1"
	bookingID  = "booking-1"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, timezone.GetLocation())

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	repo        *bookingMocks.MockBooking
	serviceRepo *serviceMocks.MockService
	profileRepo *profileMocks.MockProfile
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
	svc         service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockServiceRepo := serviceMocks.NewMockService(ctrl)
	mockProfileRepo := profileMocks.NewMockProfile(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	// Event publication and cache invalidation run on detached goroutines.
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.NewWithClock(
		mockRepo,
		mockServiceRepo,
		mockProfileRepo,
		cfg,
		mockCache,
		mockKafka,
		mockOtel,
		func() time.Time { return fixedNow },
	)

	return fixture{
		repo:        mockRepo,
		serviceRepo: mockServiceRepo,
		profileRepo: mockProfileRepo,
		cache:       mockCache,
		kafka:       mockKafka,
		svc:         svc,
	}
}

func bookableService() serviceModel.Service {
	return serviceModel.Service{
		ID:           serviceID,
		UserID:       sellerID,
		Title:        "Laundry Express",
		Description:  "Same-day laundry",
		Category:     "laundry",
		DefaultPrice: ptr(25000.0),
		ExpressPrice: ptr(40000.0),
		IsActive:     true,
		IsVerified:   true,
	}
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:                  bookingID,
		BuyerID:             buyerID,
		ServiceID:           serviceID,
		Date:                fixedNow.AddDate(0, 0, 1),
		Time:                "14:00",
		Status:              model.StatusPending,
		ServiceOwnerID:      ptr(sellerID),
		ServiceTitle:        ptr("Laundry Express"),
		ServiceDescription:  ptr("Same-day laundry"),
		ServiceCategory:     ptr("laundry"),
		ServiceDefaultPrice: ptr(25000.0),
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		ServiceID: serviceID,
		Date:      "2025-06-16",
		Time:      "14:00",
	}

	tests := []struct {
		name      string
		user      string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking creation",
			user: buyerID,
			req:  validReq,
			setupMock: func(f fixture) {
				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.serviceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableService(), nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, booking model.Booking) {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, buyerID, booking.BuyerID)
						assert.NotEmpty(t, booking.ID)
					}).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "missing user identity",
			user:      "",
			req:       validReq,
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "date in the past",
			user: buyerID,
			req: dto.CreateBookingRequest{
				ServiceID: serviceID,
				Date:      "2025-06-14",
				Time:      "14:00",
			},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "booking moment equal to now is rejected",
			user: buyerID,
			req: dto.CreateBookingRequest{
				ServiceID: serviceID,
				Date:      "2025-06-15",
				Time:      "10:00",
			},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "later the same day is accepted",
			user: buyerID,
			req: dto.CreateBookingRequest{
				ServiceID: serviceID,
				Date:      "2025-06-15",
				Time:      "10:01",
			},
			setupMock: func(f fixture) {
				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.serviceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableService(), nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "malformed date",
			user: buyerID,
			req: dto.CreateBookingRequest{
				ServiceID: serviceID,
				Date:      "16-06-2025",
				Time:      "14:00",
			},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "profile not set up",
			user: buyerID,
			req:  validReq,
			setupMock: func(f fixture) {
				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "service not found",
			user: buyerID,
			req:  validReq,
			setupMock: func(f fixture) {
				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.serviceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(serviceModel.Service{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "unverified service",
			user: buyerID,
			req:  validReq,
			setupMock: func(f fixture) {
				svc := bookableService()
				svc.IsVerified = false

				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.serviceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(svc, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "inactive service",
			user: buyerID,
			req:  validReq,
			setupMock: func(f fixture) {
				svc := bookableService()
				svc.IsActive = false

				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.serviceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(svc, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "own service",
			user: sellerID,
			req:  validReq,
			setupMock: func(f fixture) {
				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.serviceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableService(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "repository error on insert",
			user: buyerID,
			req:  validReq,
			setupMock: func(f fixture) {
				f.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.serviceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableService(), nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.user, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusPending.String(), res.Status)
			assert.Equal(t, tt.user, res.BuyerID)
			assert.NotNil(t, res.Service)
			assert.Equal(t, "Laundry Express", res.Service.Title)
		})
	}
}

func TestBookingService_CreateRejectsStatusOverride(t *testing.T) {
	req := dto.CreateBookingRequest{
		ServiceID: serviceID,
		Date:      "2025-06-16",
		Time:      "14:00",
		Status:    "accepted",
	}

	err := validator.ValidateStruct(&req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	req.Status = "pending"
	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestBookingService_Accept(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		id        string
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
		wantMsg   string
	}{
		{
			name: "successful accept",
			user: sellerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.repo.EXPECT().
					TransitionStatus(gomock.Any(), bookingID, model.StatusPending, model.StatusAccepted, sellerID).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			user: sellerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "buyer cannot accept",
			user: buyerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "stranger cannot accept",
			user: strangerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "already accepted",
			user: sellerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				booking := pendingBooking()
				booking.Status = model.StatusAccepted

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "cannot accept booking with status: accepted",
		},
		{
			name: "cancelled booking",
			user: sellerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				booking := pendingBooking()
				booking.Status = model.StatusCancelled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "cannot accept booking with status: cancelled",
		},
		{
			name: "lost the race to another accept",
			user: sellerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.repo.EXPECT().
					TransitionStatus(gomock.Any(), bookingID, model.StatusPending, model.StatusAccepted, sellerID).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			user: sellerID,
			id:   bookingID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Accept(context.Background(), tt.user, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusAccepted.String(), res.Status)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "buyer can view own booking",
			user: buyerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr: false,
		},
		{
			name: "seller can view booking on own service",
			user: sellerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr: false,
		},
		{
			name: "stranger cannot view",
			user: strangerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking not found",
			user: buyerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), tt.user, bookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingID, res.ID)
			assert.NotNil(t, res.Service)
		})
	}
}

func TestBookingService_ListForUser(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ListForUser(context.Background(), buyerID, "admin")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cache hit skips the repositories", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.ListForUser(context.Background(), buyerID, "buyer")

		assert.NoError(t, err)
	})

	t.Run("buyer listing is ordered newest first", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, "bookings.created_at", params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []model.Booking{pendingBooking()}, nil
			})

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.ListForUser(context.Background(), buyerID, "buyer")

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "Laundry Express", res.Bookings[0].Service.Title)
	})

	t.Run("seller with no services gets an empty list", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.serviceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]serviceModel.Service{}, nil)

		res, err := f.svc.ListForUser(context.Background(), sellerID, "seller")

		assert.NoError(t, err)
		assert.NotNil(t, res.Bookings)
		assert.Empty(t, res.Bookings)
	})

	t.Run("seller listing covers all owned services", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.serviceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]serviceModel.Service{{ID: serviceID}, {ID: "service-2"}}, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking()}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.ListForUser(context.Background(), sellerID, "seller")

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})
}

func TestBookingService_CheckBookable(t *testing.T) {
	t.Run("verification failure wins over self booking", func(t *testing.T) {
		f := newFixture(t)

		svc := bookableService()
		svc.IsVerified = false
		svc.IsActive = false

		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(svc, nil)

		err := f.svc.CheckBookable(context.Background(), sellerID, serviceID)

		assert.Error(t, err)
		assert.Equal(t, "cannot book unverified service", err.Error())
	})

	t.Run("bookable service passes", func(t *testing.T) {
		f := newFixture(t)

		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookableService(), nil)

		assert.NoError(t, f.svc.CheckBookable(context.Background(), buyerID, serviceID))
	})

	t.Run("missing identifiers", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.CheckBookable(context.Background(), "", serviceID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
