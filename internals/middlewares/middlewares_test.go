package middlewares

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modulku_backend/internals/features/catalog/repository"
)

func TestGlobalRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(GlobalRateLimiter(1))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(raw), `"success":false`)
}

func TestGlobalRateLimiterDisabled(t *testing.T) {
	app := fiber.New()
	app.Use(GlobalRateLimiter(0))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestCorsMiddlewareWildcard(t *testing.T) {
	app := fiber.New()
	app.Use(CorsMiddleware(""))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStoreMiddleware(t *testing.T) {
	store := repository.NewMemoryStore()
	app := fiber.New()
	app.Get("/without", func(c *fiber.Ctx) error {
		assert.Nil(t, StoreFrom(c))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/with", StoreMiddleware(store), func(c *fiber.Ctx) error {
		assert.Same(t, store, StoreFrom(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, p := range []string{"/without", "/with"} {
		resp, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RecoveryMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRequestIDDeadlineStopsStoreWrites(t *testing.T) {
	store := repository.NewMemoryStore()
	app := fiber.New()
	app.Use(RequestID(20 * time.Millisecond))
	app.Post("/", func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		_, ok := ctx.Deadline()
		assert.True(t, ok)

		<-ctx.Done()
		_, err := store.CreateModule(ctx, "late")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	mods, _, err := store.Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, mods)
}

func TestRequestIDWithoutTimeout(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID(0))
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := c.UserContext().Deadline()
		assert.False(t, ok)
		assert.NotEmpty(t, c.Locals(RequestIDKey))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}
