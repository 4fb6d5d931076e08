package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"village/infras/otel/mocks"
	"village/internal/domains/booking/model/dto"
	serviceMocks "village/internal/domains/booking/service/mocks"
	"village/internal/handlers/booking"
	"village/shared/constant"
	"village/transport/http/response"
)

func newRouter(service *serviceMocks.MockBooking) *chi.Mux {
	handler := booking.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(v1 chi.Router) {
		handler.Router(v1)
	})

	return router
}

func authenticated(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), constant.ContextKeyUserID, userID))
}

func TestHandler_GetBookings(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		userID     string
		setupMock  func(service *serviceMocks.MockBooking)
		wantStatus int
	}{
		{
			name:   "missing role defaults to buyer",
			target: "/v1/bookings",
			userID: "buyer-1",
			setupMock: func(service *serviceMocks.MockBooking) {
				service.EXPECT().
					ListForUser(gomock.Any(), "buyer-1", constant.RoleBuyer).
					Return(dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "explicit seller role is passed through",
			target: "/v1/bookings?role=seller",
			userID: "seller-1",
			setupMock: func(service *serviceMocks.MockBooking) {
				service.EXPECT().
					ListForUser(gomock.Any(), "seller-1", constant.RoleSeller).
					Return(dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing identity",
			target:     "/v1/bookings",
			userID:     "",
			setupMock:  func(service *serviceMocks.MockBooking) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := serviceMocks.NewMockBooking(ctrl)
			tt.setupMock(mockService)

			router := newRouter(mockService)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.userID != "" {
				req = authenticated(req, tt.userID)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var envelope response.Envelope
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantStatus, envelope.Status)
		})
	}
}
