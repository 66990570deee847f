package spoilage

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupSpoilageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler()

	r := gin.New()
	r.POST("/predict", handler.Predict)
	r.POST("/batch", handler.PredictBatch)
	r.POST("/waste-report", handler.WasteReport)
	return r
}

func post(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPredictEndpoint(t *testing.T) {
	r := setupSpoilageRouter()

	w := post(t, r, "/predict", map[string]interface{}{
		"fruit_type":    "Apple",
		"ripeness":      "overripe",
		"quality_score": 80,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var prediction Prediction
	json.Unmarshal(w.Body.Bytes(), &prediction)
	if prediction.DaysUntilSpoilage != 2 {
		t.Errorf("expected 2 days, got %d", prediction.DaysUntilSpoilage)
	}
	if prediction.RiskLevel != "very_high" {
		t.Errorf("expected very_high risk, got %s", prediction.RiskLevel)
	}
}

func TestPredictEndpointValidatesScore(t *testing.T) {
	r := setupSpoilageRouter()

	w := post(t, r, "/predict", map[string]interface{}{
		"fruit_type":    "Apple",
		"quality_score": -10,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPredictBatchReportsBadIndex(t *testing.T) {
	r := setupSpoilageRouter()

	w := post(t, r, "/batch", map[string]interface{}{
		"items": []map[string]interface{}{
			{"fruit_type": "Apple", "quality_score": 90},
			{"fruit_type": "Banana", "quality_score": 200},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["index"] != float64(1) {
		t.Errorf("expected offending index 1, got %v", resp["index"])
	}
}

func TestWasteReportEndpoint(t *testing.T) {
	r := setupSpoilageRouter()

	w := post(t, r, "/waste-report", map[string]interface{}{
		"items": []map[string]interface{}{
			{"fruit_type": "Banana", "ripeness": "overripe", "quality_score": 90},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var report WasteReport
	json.Unmarshal(w.Body.Bytes(), &report)
	if report.ItemsAnalyzed != 1 || report.ItemsAtRisk != 1 {
		t.Errorf("unexpected report %+v", report)
	}
}
