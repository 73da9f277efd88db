package admin

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// These requests are rejected while the update set is being built, before
// any database access, so the handler runs without a store.
func newLeadUpdateApp() *fiber.App {
	app := fiber.New()
	h := NewLeadHandler(nil, nil)
	app.Patch("/leads/:id", h.Update)
	return app
}

func TestUpdateLeadRejectsUnnormalizablePhone(t *testing.T) {
	app := newLeadUpdateApp()

	for _, phone := range []string{"abc", "---", "   "} {
		body := strings.NewReader(`{"phone": "` + phone + `"}`)
		req := httptest.NewRequest(fiber.MethodPatch, "/leads/1", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("phone %q: expected 400, got %d", phone, resp.StatusCode)
		}
	}
}

func TestUpdateLeadRejectsEmptyUpdateSet(t *testing.T) {
	app := newLeadUpdateApp()

	req := httptest.NewRequest(fiber.MethodPatch, "/leads/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
