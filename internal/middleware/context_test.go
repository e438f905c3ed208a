package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func signedToken(t *testing.T, cfg *config.Config, userID uint) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(cfg.JWTExpiry).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func protectedApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Get("/me",
		JWTProtected(cfg),
		CurrentUser(db),
		func(c *fiber.Ctx) error {
			user := UserFrom(c)
			return c.JSON(fiber.Map{"email": user.Email})
		},
	)
	return app
}

func TestCurrentUserResolvesFromDB(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	user := models.User{Name: "Sara", Email: "sara@uni.edu", Password: "x", Role: models.RoleStudent, Status: models.StatusApproved}
	require.NoError(t, db.Create(&user).Error)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, user.ID))

	resp, err := protectedApp(cfg, db).Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCurrentUserDeletedAccount(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	user := models.User{Name: "Gone", Email: "gone@uni.edu", Password: "x", Role: models.RoleStudent, Status: models.StatusApproved}
	require.NoError(t, db.Create(&user).Error)
	token := signedToken(t, cfg, user.ID)
	require.NoError(t, db.Delete(&user).Error)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := protectedApp(cfg, db).Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	// The token is still valid but the account is gone.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsMissingAndBadTokens(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	app := protectedApp(cfg, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	other := &config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, other, 1))
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
