package pricing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movebroker_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func newFinalRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewHandler(validator.New())
	engine.POST("/estimates/final", handler.Final)
	return engine
}

func TestFinal_EmptyInventoryYieldsZeroEstimate(t *testing.T) {
	engine := newFinalRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/estimates/final", strings.NewReader(`{"items":[],"distanceMiles":300,"options":{}}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty inventory, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp FinalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Estimate.Min != 0 || resp.Estimate.Max != 0 {
		t.Fatalf("expected zero estimate, got %+v", resp.Estimate)
	}
	if resp.TotalWeight != 0 {
		t.Fatalf("expected zero weight, got %d", resp.TotalWeight)
	}
	if resp.SizeLabel != "no items yet" {
		t.Fatalf("expected empty-move label, got %q", resp.SizeLabel)
	}
}

func TestFinal_MalformedBodyRejected(t *testing.T) {
	engine := newFinalRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/estimates/final", strings.NewReader(`{"items":`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}
