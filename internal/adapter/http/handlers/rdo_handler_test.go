package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type rdoHandlerMocks struct {
	usecase  *mocks.MockIRDOUseCase
	projects *mocks.MockIProjectUseCase
	renderer *mock_interfaces.MockIDailyReportRenderer
}

func newRDOHandler(t *testing.T) (*RDOHandler, rdoHandlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := rdoHandlerMocks{
		usecase:  mocks.NewMockIRDOUseCase(ctrl),
		projects: mocks.NewMockIProjectUseCase(ctrl),
		renderer: mock_interfaces.NewMockIDailyReportRenderer(ctrl),
	}
	return NewRDOHandler(m.usecase, m.projects, m.renderer), m
}

func TestRDOHandler_QuoteItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h, _ := newRDOHandler(t)
		r := gin.New()
		r.POST("/v1/rdos/items/quote", h.QuoteItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/rdos/items/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown index", func(t *testing.T) {
		h, m := newRDOHandler(t)
		r := gin.New()
		r.POST("/v1/rdos/items/quote", h.QuoteItem)

		m.usecase.EXPECT().NewItem().Return(entities.RDOItem{ID: "item1", MeasurementType: entities.MeasurementProdutivo})
		m.usecase.EXPECT().SetItemIndex(gomock.Any(), gomock.Any(), "missing").Return(entities.RDOItem{}, usecase.ErrIndexNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/rdos/items/quote", bytes.NewBufferString(`{"project_id":"p1","index_id":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("quotes with frozen price and resolved km", func(t *testing.T) {
		h, m := newRDOHandler(t)
		r := gin.New()
		r.POST("/v1/rdos/items/quote", h.QuoteItem)

		base := entities.RDOItem{ID: "item1", MeasurementType: entities.MeasurementProdutivo}
		m.usecase.EXPECT().NewItem().Return(base)
		m.usecase.EXPECT().SetItemIndex(gomock.Any(), gomock.AssignableToTypeOf(entities.RDOItem{}), "idx1").DoAndReturn(
			func(_ any, item entities.RDOItem, indexID string) (entities.RDOItem, error) {
				if item.EquipmentID != "eq1" {
					t.Fatalf("expected equipment carried into quote, got %+v", item)
				}
				item.IndexID = indexID
				item.FrozenPrice = 45
				return item, nil
			})
		m.usecase.EXPECT().SetItemQuantity(gomock.Any(), 10.0).DoAndReturn(
			func(item entities.RDOItem, quantity float64) (entities.RDOItem, error) {
				item.Quantity = quantity
				item.TotalValue = quantity * item.FrozenPrice
				return item, nil
			})
		m.usecase.EXPECT().SetItemKm(gomock.Any(), "p1", gomock.Any(), 12.5).DoAndReturn(
			func(_ any, _ string, item entities.RDOItem, km float64) (entities.RDOItem, error) {
				item.Km = km
				item.City = "Salto"
				item.Segment = "Trecho 2"
				return item, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/rdos/items/quote", bytes.NewBufferString(`{"project_id":"p1","index_id":"idx1","equipment_id":"eq1","km":12.5,"quantity":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["frozen_price"] != 45.0 || body["total_value"] != 450.0 || body["city"] != "Salto" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRDOHandler_CreateRDO(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h, _ := newRDOHandler(t)
		r := gin.New()
		r.POST("/v1/rdos", h.CreateRDO)

		req := httptest.NewRequest(http.MethodPost, "/v1/rdos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("persists quoted snapshot verbatim", func(t *testing.T) {
		h, m := newRDOHandler(t)
		r := gin.New()
		r.POST("/v1/rdos", h.CreateRDO)

		m.usecase.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.RDO{})).DoAndReturn(
			func(_ any, rdo entities.RDO) (entities.RDO, error) {
				if rdo.ID != "" {
					t.Fatalf("create must not carry an id, got %q", rdo.ID)
				}
				if len(rdo.Items) != 1 || rdo.Items[0].FrozenPrice != 42 || rdo.Items[0].TotalValue != 8400 {
					t.Fatalf("frozen snapshot not preserved: %+v", rdo.Items)
				}
				rdo.ID = "rdo1"
				rdo.TotalDailyValue = 8400
				return rdo, nil
			})

		payload := `{"project_id":"p1","items":[{"index_id":"idx1","measurement_type":"PRODUTIVO","quantity":200,"frozen_price":42,"total_value":8400}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/rdos", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "rdo1" || body["total_daily_value"] != 8400.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		h, m := newRDOHandler(t)
		r := gin.New()
		r.POST("/v1/rdos", h.CreateRDO)

		m.usecase.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.RDO{}, usecase.ErrRDOWithoutItems)

		req := httptest.NewRequest(http.MethodPost, "/v1/rdos", bytes.NewBufferString(`{"project_id":"p1","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRDOHandler_UpdateRDO(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrlTests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unknown id", err: usecase.ErrRDONotFound, status: http.StatusNotFound},
		{name: "success", err: nil, status: http.StatusOK},
	}

	for _, tc := range ctrlTests {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRDOHandler(t)
			r := gin.New()
			r.PUT("/v1/rdos/:id", h.UpdateRDO)

			m.usecase.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.RDO{})).DoAndReturn(
				func(_ any, rdo entities.RDO) (entities.RDO, error) {
					if rdo.ID != "rdo1" {
						t.Fatalf("expected path id on update, got %q", rdo.ID)
					}
					return rdo, tc.err
				})

			payload := `{"project_id":"p1","items":[{"index_id":"idx1","measurement_type":"PRODUTIVO","quantity":1,"frozen_price":42,"total_value":42}]}`
			req := httptest.NewRequest(http.MethodPut, "/v1/rdos/rdo1", bytes.NewBufferString(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestRDOHandler_GetDailySummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, m := newRDOHandler(t)
	r := gin.New()
	r.GET("/v1/rdos/:id/summary", h.GetDailySummary)

	m.usecase.EXPECT().DailySummary(gomock.Any(), "rdo1").Return([]entities.RDOSummaryRow{
		{Segment: "Trecho 1", EquipmentID: "eq1", City: "Itu", ProductiveValue: 100, UnproductiveValue: 40, TotalValue: 140},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/rdos/rdo1/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["total_value"] != 140.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestRDOHandler_ExportRDO(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		h, m := newRDOHandler(t)
		r := gin.New()
		r.GET("/v1/rdos/:id/export", h.ExportRDO)

		m.usecase.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.RDO{}, usecase.ErrRDONotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/rdos/missing/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, m := newRDOHandler(t)
		r := gin.New()
		r.GET("/v1/rdos/:id/export", h.ExportRDO)

		rdo := entities.RDO{ID: "rdo1", ProjectID: "p1"}
		m.usecase.EXPECT().GetByID(gomock.Any(), "rdo1").Return(rdo, nil)
		m.projects.EXPECT().GetProject(gomock.Any(), "p1").Return(entities.Project{ID: "p1", Name: "Obra Castello"}, nil)
		m.renderer.EXPECT().DailyReportPDF(rdo, gomock.Any()).Return([]byte("%PDF-1.4"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rdos/rdo1/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected pdf content type, got %q", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf body, got %q", w.Body.String())
		}
	})
}
