package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/appearance"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

func TestDrainErrorsReportsSurfaceState(t *testing.T) {
	surface := appearance.New()
	surface.PushError(model.RemoteError{Message: "Unable to connect to the server", Code: -1})
	surface.SetLoading(false)

	h := NewDashboard(nil, surface)
	app := fiber.New()
	app.Get("/portal/errors", h.DrainErrors)

	res, err := app.Test(httptest.NewRequest("GET", "/portal/errors", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body model.SuccessResponse[SurfaceState]
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Loading {
		t.Fatal("expected idle surface")
	}
	if len(body.Data.Errors) != 1 || body.Data.Errors[0].Code != -1 {
		t.Fatalf("expected the pushed fault, got %+v", body.Data.Errors)
	}

	// A second poll sees the surface already drained.
	res, err = app.Test(httptest.NewRequest("GET", "/portal/errors", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var drained model.SuccessResponse[SurfaceState]
	if err := json.NewDecoder(res.Body).Decode(&drained); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(drained.Data.Errors) != 0 {
		t.Fatalf("expected drained surface, got %+v", drained.Data.Errors)
	}
}
