package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"village/config"
	"village/infras/jwt"
	"village/infras/otel/mocks"
	"village/shared/constant"
	"village/transport/http/middleware"
	"village/transport/http/response"
)

func jwtConfig(accessExpireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "village"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessExpireMin
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

// newProtectedRouter mounts Auth in front of a handler that echoes the
// identity the middleware placed on the request context.
func newProtectedRouter(cfg *config.Config, jwtService jwt.JWT) *chi.Mux {
	auth := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), nil, cfg)

	router := chi.NewRouter()
	router.Use(auth.Auth)
	router.Get("/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

		response.WithData(w, http.StatusOK, "ok", map[string]string{"user": user, "role": role})
	})

	return router
}

func doRequest(router *chi.Mux, authHeader string) (*httptest.ResponseRecorder, response.Envelope) {
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	if authHeader != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, authHeader)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope response.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)

	return rec, envelope
}

func TestAuth_ValidAccessToken(t *testing.T) {
	cfg := jwtConfig(15)
	jwtService := jwt.New(cfg)
	router := newProtectedRouter(cfg, jwtService)

	pair, err := jwtService.GenerateTokenPair("user-1", "user@mail.test", "buyer")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)

	rec, envelope := doRequest(router, "Bearer "+pair.AccessToken)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, _ := envelope.Data.(map[string]any)
	assert.Equal(t, "user-1", data["user"])
	assert.Equal(t, "buyer", data["role"])
}

func TestAuth_RejectsBadCredentials(t *testing.T) {
	cfg := jwtConfig(15)
	jwtService := jwt.New(cfg)
	router := newProtectedRouter(cfg, jwtService)

	pair, err := jwtService.GenerateTokenPair("user-1", "user@mail.test", "buyer")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantMsg    string
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantMsg:    "Missing authorization header",
		},
		{
			name:       "header without bearer prefix",
			authHeader: pair.AccessToken,
			wantMsg:    "Invalid authorization header format",
		},
		{
			name:       "refresh token where an access token is required",
			authHeader: "Bearer " + pair.RefreshToken,
			wantMsg:    "Invalid token",
		},
		{
			name:       "tampered token",
			authHeader: "Bearer " + pair.AccessToken + "x",
			wantMsg:    "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, envelope := doRequest(router, tt.authHeader)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMsg, envelope.Msg)
		})
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	cfg := jwtConfig(-1)
	jwtService := jwt.New(cfg)
	router := newProtectedRouter(cfg, jwtService)

	pair, err := jwtService.GenerateTokenPair("user-1", "user@mail.test", "buyer")
	assert.NoError(t, err)

	rec, envelope := doRequest(router, "Bearer "+pair.AccessToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired", envelope.Msg)
}

func TestAuth_RotatedTokensStillAuthenticate(t *testing.T) {
	cfg := jwtConfig(15)
	jwtService := jwt.New(cfg)
	router := newProtectedRouter(cfg, jwtService)

	pair, err := jwtService.GenerateTokenPair("user-1", "user@mail.test", "seller")
	assert.NoError(t, err)

	rotated, err := jwtService.RefreshTokens(pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	rec, envelope := doRequest(router, "Bearer "+rotated.AccessToken)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, _ := envelope.Data.(map[string]any)
	assert.Equal(t, "user-1", data["user"])
	assert.Equal(t, "seller", data["role"])
}

func TestAuth_RefreshRejectsAccessToken(t *testing.T) {
	cfg := jwtConfig(15)
	jwtService := jwt.New(cfg)

	pair, err := jwtService.GenerateTokenPair("user-1", "user@mail.test", "buyer")
	assert.NoError(t, err)

	_, err = jwtService.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}
