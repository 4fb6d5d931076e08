package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"village/infras/otel/mocks"
	requestMocks "village/internal/domains/request/mocks"
	"village/internal/domains/request/model"
	"village/internal/domains/request/model/dto"
	"village/internal/domains/request/service"
	gDto "village/shared/dto"
	"village/shared/failure"
)

const userID = "user-1"

func TestRequestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRequestRequest
		setupMock func(repo *requestMocks.MockRequest)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful request creation",
			req: dto.CreateRequestRequest{
				Title:       "Need a plumber",
				Description: "Leaking kitchen sink",
				NeededBy:    "2025-07-01",
			},
			setupMock: func(repo *requestMocks.MockRequest) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, request model.Request) {
						assert.Equal(t, model.StatusActive, request.Status)
						assert.Equal(t, userID, request.UserID)
					}).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "malformed needed_by",
			req: dto.CreateRequestRequest{
				Title:       "Need a plumber",
				Description: "Leaking kitchen sink",
				NeededBy:    "01/07/2025",
			},
			setupMock: func(repo *requestMocks.MockRequest) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateRequestRequest{
				Title:       "Need a plumber",
				Description: "Leaking kitchen sink",
				NeededBy:    "2025-07-01",
			},
			setupMock: func(repo *requestMocks.MockRequest) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := requestMocks.NewMockRequest(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, mocks.NewOtel())

			res, err := svc.Create(context.Background(), userID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "active", res.Status)
			assert.Equal(t, "2025-07-01", res.NeededBy)
		})
	}
}

func TestRequestService_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := requestMocks.NewMockRequest(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Request, error) {
			assert.Equal(t, "requests.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Request{{
				ID:       "request-1",
				UserID:   userID,
				Title:    "Need a plumber",
				NeededBy: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				Status:   model.StatusActive,
			}}, nil
		})

	res, err := svc.ListForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, res.Requests, 1)
	assert.Equal(t, "request-1", res.Requests[0].ID)
}
