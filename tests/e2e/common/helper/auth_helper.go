//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"carwash-booking/internal/domain/user"
	"carwash-booking/internal/handler/dto/request"
	"carwash-booking/internal/handler/dto/response"
	"carwash-booking/internal/pkg/config"
	"carwash-booking/internal/pkg/jwt"
	"carwash-booking/tests/common/dbtest"
	"carwash-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// AuthTestHelper seeds users and obtains tokens through the real login
// endpoint so e2e tests exercise the full auth path.
type AuthTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewAuthTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *AuthTestHelper {
	return &AuthTestHelper{pool: pool, cfg: cfg}
}

func (h *AuthTestHelper) CreateTestUser(t *testing.T, email, role string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email, role)
}

func (h *AuthTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginRes response.LoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
	require.NoError(t, err)
	require.NotEmpty(t, loginRes.AccessToken, "access token missing from login response")

	return loginRes.AccessToken
}

func (h *AuthTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestUser(t, email, role)
	return h.LoginUser(t, router, email, dbtest.TestUserPassword)
}

func (h *AuthTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.AccessTokenDuration)
	refreshDuration, _ := time.ParseDuration(h.cfg.RefreshTokenDuration)
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *AuthTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	refreshDuration, _ := time.ParseDuration(h.cfg.RefreshTokenDuration)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refreshDuration)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
