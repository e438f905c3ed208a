package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminApp(user *models.User) *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		func(c *fiber.Ctx) error {
			if user != nil {
				SetUser(c, user)
			}
			return c.Next()
		},
		AdminRequired(),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestAdminRequired(t *testing.T) {
	cases := []struct {
		name string
		user *models.User
		want int
	}{
		{"admin passes", &models.User{ID: 1, Role: models.RoleAdmin}, http.StatusOK},
		{"student forbidden", &models.User{ID: 2, Role: models.RoleStudent}, http.StatusForbidden},
		{"employer forbidden", &models.User{ID: 3, Role: models.RoleEmployer}, http.StatusForbidden},
		{"no user unauthorized", nil, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := adminApp(tc.user).Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
