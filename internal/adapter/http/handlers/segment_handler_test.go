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

func TestSegmentHandler_CreateSegment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISegmentUseCase(ctrl)
		h := NewSegmentHandler(uc)

		r := gin.New()
		r.POST("/v1/segments", h.CreateSegment)

		req := httptest.NewRequest(http.MethodPost, "/v1/segments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISegmentUseCase(ctrl)
		h := NewSegmentHandler(uc)

		r := gin.New()
		r.POST("/v1/segments", h.CreateSegment)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.ProjectSegment{}, usecase.ErrInvalidSegmentRange)

		req := httptest.NewRequest(http.MethodPost, "/v1/segments", bytes.NewBufferString(`{"project_id":"p1","start_km":120,"end_km":100,"city":"Itu","segment_name":"Trecho 2"}`))
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
		uc := mocks.NewMockISegmentUseCase(ctrl)
		h := NewSegmentHandler(uc)

		r := gin.New()
		r.POST("/v1/segments", h.CreateSegment)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.ProjectSegment) (entities.ProjectSegment, error) {
				if s.ProjectID != "p1" || s.City != "Salto" || s.StartKm != 100 || s.EndKm != 120 {
					t.Fatalf("unexpected segment: %+v", s)
				}
				s.ID = "seg1"
				return s, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/segments", bytes.NewBufferString(`{"project_id":"p1","start_km":100,"end_km":120,"city":"Salto","segment_name":"Trecho 1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "seg1" {
			t.Fatalf("expected id seg1, got %v", body["id"])
		}
	})
}

func TestSegmentHandler_ResolveSegment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing project_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISegmentUseCase(ctrl)
		h := NewSegmentHandler(uc)

		r := gin.New()
		r.GET("/v1/segments/resolve", h.ResolveSegment)

		req := httptest.NewRequest(http.MethodGet, "/v1/segments/resolve?km=110.5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparsable km resolves to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISegmentUseCase(ctrl)
		h := NewSegmentHandler(uc)

		r := gin.New()
		r.GET("/v1/segments/resolve", h.ResolveSegment)

		req := httptest.NewRequest(http.MethodGet, "/v1/segments/resolve?project_id=p1&km=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["city"] != entities.SegmentUnknown || body["segment"] != entities.SegmentUnknown {
			t.Fatalf("expected N/A pair, got %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISegmentUseCase(ctrl)
		h := NewSegmentHandler(uc)

		r := gin.New()
		r.GET("/v1/segments/resolve", h.ResolveSegment)

		uc.EXPECT().Resolve(gomock.Any(), "p1", 110.5).Return("Salto", "Trecho 1", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/segments/resolve?project_id=p1&km=110.5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["city"] != "Salto" || body["segment"] != "Trecho 1" {
			t.Fatalf("unexpected resolution: %v", body)
		}
	})
}

func TestMapSegmentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidProjectID, http.StatusBadRequest},
		{usecase.ErrInvalidSegmentRange, http.StatusBadRequest},
		{usecase.ErrInvalidSegmentCity, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapSegmentError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
