package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateApp(cfg *config.Config, user *models.User) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		func(c *fiber.Ctx) error {
			if user != nil {
				SetUser(c, user)
			}
			return c.Next()
		},
		RequireApproved(cfg),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func gateRequest(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return resp.StatusCode, nil
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRequireApprovedPasses(t *testing.T) {
	app := gateApp(testConfig(), &models.User{ID: 1, Role: models.RoleStudent, Status: models.StatusApproved})
	code, _ := gateRequest(t, app)
	assert.Equal(t, http.StatusOK, code)
}

func TestRequireApprovedTrimsAndLowercases(t *testing.T) {
	app := gateApp(testConfig(), &models.User{ID: 1, Role: models.RoleStudent, Status: models.Status(" APPROVED ")})
	code, _ := gateRequest(t, app)
	assert.Equal(t, http.StatusOK, code)
}

func TestRequireApprovedAdminBypass(t *testing.T) {
	app := gateApp(testConfig(), &models.User{ID: 1, Role: models.RoleAdmin, Status: models.StatusPending})
	code, _ := gateRequest(t, app)
	assert.Equal(t, http.StatusOK, code)
}

func TestRequireApprovedPending(t *testing.T) {
	cfg := testConfig()
	app := gateApp(cfg, &models.User{ID: 1, Role: models.RoleEmployer, Status: models.StatusPending})
	code, body := gateRequest(t, app)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "pending", body["status"])
	assert.Contains(t, body["message"], "pending approval")
	assert.Contains(t, body["message"], cfg.SupportEmail)
}

func TestRequireApprovedRejectedIncludesReason(t *testing.T) {
	cfg := testConfig()
	reason := "incomplete trade license"
	app := gateApp(cfg, &models.User{
		ID:              1,
		Role:            models.RoleEmployer,
		Status:          models.StatusRejected,
		RejectionReason: &reason,
	})
	code, body := gateRequest(t, app)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "rejected", body["status"])
	assert.Contains(t, body["message"], reason)
	assert.Contains(t, body["message"], cfg.SupportEmail)
}

func TestRequireApprovedNoUser(t *testing.T) {
	app := gateApp(testConfig(), nil)
	code, _ := gateRequest(t, app)
	assert.Equal(t, http.StatusUnauthorized, code)
}
