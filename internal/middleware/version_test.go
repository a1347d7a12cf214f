package middleware_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/middleware"
	"github.com/greenlease/greenlease/internal/types"
)

func newVersionApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var cerr *types.CustomError
			if errors.As(err, &cerr) {
				return c.Status(cerr.Code).SendString(cerr.Message)
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})
	return app
}

func TestVersionMiddleware(t *testing.T) {
	app := newVersionApp()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"default when absent", "", 200, "1.0.0"},
		{"short alias", "1.0", 200, "1.0.0"},
		{"major alias", "1", 200, "1.0.0"},
		{"explicit patch passes through", "1.2.3", 200, "1.2.3"},
		{"unsupported major rejected", "2.0.0", 400, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Api-Version", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("Expected version %q, got %q", tt.wantBody, string(body))
				}
			}
		})
	}
}
