package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAnalyticsHandler(t *testing.T) (*AnalyticsHandler, *mocks.MockIAnalyticsUseCase, *mock_interfaces.MockIWorkbookRenderer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	renderer := mock_interfaces.NewMockIWorkbookRenderer(ctrl)
	return NewAnalyticsHandler(uc, renderer), uc, renderer
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing month", func(t *testing.T) {
		h, _, _ := newAnalyticsHandler(t)
		r := gin.New()
		r.GET("/v1/analytics/summary", h.GetSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/summary?project_id=p1&year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, uc, _ := newAnalyticsHandler(t)
		r := gin.New()
		r.GET("/v1/analytics/summary", h.GetSummary)

		uc.EXPECT().GetSummary(gomock.Any(), "p1", 4, 2026).Return(entities.AnalyticsSummary{
			ProjectID:           "p1",
			Month:               4,
			Year:                2026,
			TotalPlannedRevenue: 4500,
			TotalRealRevenue:    3600,
			RevenueCompliance:   80,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/summary?project_id=p1&month=4&year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["revenue_compliance"] != 80.0 || body["total_real_revenue"] != 3600.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAnalyticsHandler_ExportSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, uc, renderer := newAnalyticsHandler(t)
	r := gin.New()
	r.GET("/v1/analytics/summary/export", h.ExportSummary)

	summary := entities.AnalyticsSummary{ProjectID: "p1", Month: 4, Year: 2026}
	uc.EXPECT().GetSummary(gomock.Any(), "p1", 4, 2026).Return(summary, nil)
	renderer.EXPECT().AnalyticsWorkbook(summary).Return([]byte("PK workbook"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/summary/export?project_id=p1&month=4&year=2026", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Fatalf("expected xlsx content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "analytics_p1_04_2026.xlsx") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
}

func TestAnalyticsHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing project_id", func(t *testing.T) {
		h, _, _ := newAnalyticsHandler(t)
		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, uc, _ := newAnalyticsHandler(t)
		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.GetDashboard)

		uc.EXPECT().GetDashboardMetrics(gomock.Any(), "p1").Return(entities.DashboardMetrics{
			ProjectID:           "p1",
			TotalRevenue:        4500,
			RentalRevenue:       3000,
			ConstructionRevenue: 1000,
			TotalCosts:          1000,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard?project_id=p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["rental_revenue"] != 3000.0 || body["total_costs"] != 1000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapAnalyticsError(t *testing.T) {
	if got := mapAnalyticsError(usecase.ErrInvalidPlanMonth); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAnalyticsError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
