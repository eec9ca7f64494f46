package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/model"
)

// fakeDiscovery returns a canned result, mirroring the pipeline's guarantee
// that discovery always succeeds.
type fakeDiscovery struct {
	result *model.DiscoveryResult
	params model.SearchParameters
}

func (f *fakeDiscovery) RunDiscovery(_ context.Context, params model.SearchParameters) *model.DiscoveryResult {
	f.params = params
	return f.result
}

func discoveryRouter(svc DiscoveryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDiscoveryHandler(svc, zap.NewNop())
	router.POST("/discovery", h.Discover)
	return router
}

func TestDiscover_ReturnsStepsAndResults(t *testing.T) {
	svc := &fakeDiscovery{result: &model.DiscoveryResult{
		Steps:   []model.AgentStep{{ID: "s1", Action: "Initializing...", Status: model.StepCompleted}},
		Results: []model.Venue{{ID: "v1", Name: "The Loft"}},
	}}
	router := discoveryRouter(svc)

	body := `{"location":"Lagos","budget":50,"age":25,"occasion":"birthday"}`
	req := httptest.NewRequest("POST", "/discovery", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.DiscoveryResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Steps) != 1 || len(resp.Results) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if svc.params.Location != "Lagos" || svc.params.Budget != 50 {
		t.Errorf("params not passed through: %+v", svc.params)
	}
}

func TestDiscover_RejectsMalformedBody(t *testing.T) {
	router := discoveryRouter(&fakeDiscovery{})

	req := httptest.NewRequest("POST", "/discovery", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDiscover_RequiresLocation(t *testing.T) {
	router := discoveryRouter(&fakeDiscovery{})

	req := httptest.NewRequest("POST", "/discovery", strings.NewReader(`{"budget":50}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing location, got %d", w.Code)
	}
}
