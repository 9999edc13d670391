package adapters

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/commit0-lite-test/deprecated/pkg/deprecated"
	"github.com/commit0-lite-test/deprecated/pkg/warnings"
)

func TestFiberMiddleware_WarnsAndStampsHeaders(t *testing.T) {
	registry, rec := newRecordingRegistry()

	app := fiber.New()
	notice := Notice{Reason: "use GET /v2/users", Version: "2.0"}
	app.Get("/old", FiberMiddleware(notice, deprecated.WithRegistry(registry)), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/old", nil))
	if err != nil {
		t.Fatalf("Test request failed: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if string(body) != "ok" {
		t.Errorf("Expected body 'ok', got %q", string(body))
	}
	if got := res.Header.Get("Deprecation"); got != "true" {
		t.Errorf("Expected Deprecation header 'true', got %q", got)
	}

	if rec.Len() != 1 {
		t.Fatalf("Expected 1 warning, got %d", rec.Len())
	}
	last, _ := rec.Last()
	want := "Call to deprecated endpoint GET /old. (use GET /v2/users) -- Deprecated since version 2.0."
	if last.Message != want {
		t.Errorf("Expected message %q, got %q", want, last.Message)
	}
}

func TestFiberMiddleware_EscalationRejectsRequest(t *testing.T) {
	registry, _ := newRecordingRegistry()

	app := fiber.New()
	handlerCalled := false
	app.Get("/gone", FiberMiddleware(Notice{}, deprecated.WithRegistry(registry), deprecated.WithAction(warnings.ActionError)), func(c *fiber.Ctx) error {
		handlerCalled = true
		return c.SendString("ok")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/gone", nil))
	if err != nil {
		t.Fatalf("Test request failed: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 410 {
		t.Errorf("Expected status 410, got %d", res.StatusCode)
	}
	if handlerCalled {
		t.Error("Expected handler to be skipped on escalation")
	}
}
