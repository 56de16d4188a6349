package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"hogger/core/middleware/auth"
	"hogger/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("ray_id").(string))
	})
	return app
}

func TestRayID(t *testing.T) {
	app := newApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "given")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "given", resp.Header.Get(rayid.Header))
}

func TestAuth(t *testing.T) {
	app := newApp("secret")

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{"Missing", "", 401},
		{"Wrong", "nope", 401},
		{"Valid", "secret", 200},
		{"Prefix", "secretx", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.key != "" {
				req.Header.Set(auth.Header, tt.key)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == 401 {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"error":"unauthorized"}`, string(body))
			}
		})
	}

	t.Run("Disabled", func(t *testing.T) {
		resp, err := newApp("").Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
