package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlanHandler_GetPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanningUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/planning", h.GetPlan)

		req := httptest.NewRequest(http.MethodGet, "/v1/planning?project_id=p1&month=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no plan and no predecessor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanningUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/planning", h.GetPlan)

		uc.EXPECT().GetPlan(gomock.Any(), "p1", 4, 2026).Return(entities.MonthlyPlan{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/planning?project_id=p1&month=4&year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("carry-forward draft is flagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanningUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/planning", h.GetPlan)

		uc.EXPECT().GetPlan(gomock.Any(), "p1", 4, 2026).Return(entities.MonthlyPlan{
			ProjectID: "p1",
			Month:     4,
			Year:      2026,
			Fleet:     []entities.PlanEquipment{{EquipmentID: "eq1", Status: entities.FleetStatusAtivo}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/planning?project_id=p1&month=4&year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_draft"] != true {
			t.Fatalf("expected draft flag, got: %s", w.Body.String())
		}
	})
}

func TestPlanHandler_SavePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanningUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/planning", h.SavePlan)

		req := httptest.NewRequest(http.MethodPost, "/v1/planning", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanningUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/planning", h.SavePlan)

		uc.EXPECT().SavePlan(gomock.Any(), gomock.AssignableToTypeOf(entities.MonthlyPlan{})).DoAndReturn(
			func(_ any, plan entities.MonthlyPlan) (entities.MonthlyPlan, error) {
				if plan.ProjectID != "p1" || plan.Month != 4 || len(plan.Items) != 1 {
					t.Fatalf("unexpected plan sent to usecase: %+v", plan)
				}
				plan.ID = "pl1"
				plan.Items[0].TotalValue = 4500
				plan.TotalValue = 4500
				return plan, nil
			})

		payload := `{"project_id":"p1","month":4,"year":2026,"items":[{"index_id":"idx1","planned_quantity":100}],"fleet":[{"equipment_id":"eq1"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/planning", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pl1" || body["total_value"] != 4500.0 || body["is_draft"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapPlanError(t *testing.T) {
	if got := mapPlanError(usecase.ErrInvalidPlanMonth); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPlanError(usecase.ErrPlanNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPlanError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
