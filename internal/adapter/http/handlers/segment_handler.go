package handlers

import (
	"errors"
	request "gestao_obras/internal/adapter/http/dto/request"
	response "gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSegmentPayload = pkg.NewDomainErrorSimple("INVALID_SEGMENT_INPUT", "Invalid segment payload", http.StatusBadRequest)
)

// SegmentHandler handles HTTP requests for the project geography table and
// the km resolver.

type SegmentHandler struct {
	usecase usecase.ISegmentUseCase
}

func NewSegmentHandler(uc usecase.ISegmentUseCase) *SegmentHandler {
	return &SegmentHandler{usecase: uc}
}

func (h *SegmentHandler) CreateSegment(c *gin.Context) {
	var payload request.SegmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSegmentPayload.HTTPStatus, errInvalidSegmentPayload.ToHTTPError())
		return
	}

	seg, err := h.usecase.Register(c.Request.Context(), entities.ProjectSegment{
		ProjectID:   payload.ProjectID,
		StartKm:     payload.StartKm,
		EndKm:       payload.EndKm,
		City:        payload.City,
		SegmentName: payload.SegmentName,
	})
	if err != nil {
		appErr := mapSegmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSegment(seg))
}

func (h *SegmentHandler) ListSegments(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		c.JSON(errMissingProjectQuery.HTTPStatus, errMissingProjectQuery.ToHTTPError())
		return
	}

	segments, err := h.usecase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapSegmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSegments(segments))
}

// ResolveSegment maps a km marker to its city/segment pair. An unparsable km
// resolves to the N/A sentinel instead of failing, mirroring how an
// out-of-range marker behaves.
func (h *SegmentHandler) ResolveSegment(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		c.JSON(errMissingProjectQuery.HTTPStatus, errMissingProjectQuery.ToHTTPError())
		return
	}

	km, err := strconv.ParseFloat(c.Query("km"), 64)
	if err != nil {
		c.JSON(http.StatusOK, response.SegmentResolutionResponse{
			City:    entities.SegmentUnknown,
			Segment: entities.SegmentUnknown,
		})
		return
	}

	city, segment, err := h.usecase.Resolve(c.Request.Context(), projectID, km)
	if err != nil {
		appErr := mapSegmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SegmentResolutionResponse{Km: km, City: city, Segment: segment})
}

func mapSegmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidSegmentRange),
		errors.Is(err, usecase.ErrInvalidSegmentCity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
