package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"stockroom/internal/http/handlers"
	"stockroom/internal/repos"
)

// newSurfaceApp mirrors the outer wiring of main: throttled login, the
// liveness route, and the JSON 404 fallback. The limiter max is lowered so
// the test can trip it quickly.
func newSurfaceApp(t *testing.T, loginMax int) *fiber.App {
	t.Helper()
	db, err := repos.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db)
	app := fiber.New()
	app.Use(requestid.New())

	users := app.Group("/api/users")
	users.Post("/register", deps.AuthHandler.Register)
	users.Post("/login", limiter.New(limiter.Config{
		Max:        loginMax,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts, retry soon"})
		},
	}), deps.AuthHandler.Login)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	return app
}

func TestLoginThrottle(t *testing.T) {
	app := newSurfaceApp(t, 2)

	if _, err := app.Test(jsonReq("POST", "/api/users/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`)); err != nil {
		t.Fatal(err)
	}

	// Two attempts pass through the limiter, good or bad.
	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonReq("POST", "/api/users/login",
			`{"email":"alice@example.com","password":"wrongpass"}`))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp, err := app.Test(jsonReq("POST", "/api/users/login",
		`{"email":"alice@example.com","password":"secret1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", resp.StatusCode)
	}
	if got := decodeMap(t, resp)["error"]; got != "Too many attempts, retry soon" {
		t.Fatalf("unexpected 429 body: %v", got)
	}
}

func TestHealthz(t *testing.T) {
	app := newSurfaceApp(t, 10)

	resp, err := app.Test(jsonReq("GET", "/healthz", ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ok, _ := decodeMap(t, resp)["ok"].(bool); !ok {
		t.Fatal("expected ok:true body")
	}
}

func TestUnmatchedRouteReturnsJSON404(t *testing.T) {
	app := newSurfaceApp(t, 10)

	for _, r := range []struct{ method, path string }{
		{"GET", "/nope"},
		{"POST", "/api/users/unknown"},
	} {
		resp, err := app.Test(jsonReq(r.method, r.path, ""))
		if err != nil {
			t.Fatalf("%s %s: %v", r.method, r.path, err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", r.method, r.path, resp.StatusCode)
		}
		if got := decodeMap(t, resp)["error"]; got != "Not found" {
			t.Fatalf("%s %s: unexpected body %v", r.method, r.path, got)
		}
	}
}
