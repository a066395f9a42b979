package handlers

import (
	"errors"
	"fmt"
	"gestao_obras/internal/usecase"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for the planned-vs-real report and
// the executive dashboard. Both views are computed on demand and returned as
// the domain objects themselves.

type AnalyticsHandler struct {
	usecase  usecase.IAnalyticsUseCase
	renderer interfaces.IWorkbookRenderer
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase, renderer interfaces.IWorkbookRenderer) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc, renderer: renderer}
}

func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	projectID := c.Query("project_id")
	month, monthErr := strconv.Atoi(c.Query("month"))
	year, yearErr := strconv.Atoi(c.Query("year"))
	if projectID == "" || monthErr != nil || yearErr != nil {
		c.JSON(errInvalidPlanQuery.HTTPStatus, errInvalidPlanQuery.ToHTTPError())
		return
	}

	summary, err := h.usecase.GetSummary(c.Request.Context(), projectID, month, year)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportSummary renders the planned-vs-real report as an xlsx workbook.
func (h *AnalyticsHandler) ExportSummary(c *gin.Context) {
	projectID := c.Query("project_id")
	month, monthErr := strconv.Atoi(c.Query("month"))
	year, yearErr := strconv.Atoi(c.Query("year"))
	if projectID == "" || monthErr != nil || yearErr != nil {
		c.JSON(errInvalidPlanQuery.HTTPStatus, errInvalidPlanQuery.ToHTTPError())
		return
	}

	summary, err := h.usecase.GetSummary(c.Request.Context(), projectID, month, year)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	workbook, err := h.renderer.AnalyticsWorkbook(summary)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileName := fmt.Sprintf("analytics_%s_%02d_%d.xlsx", projectID, month, year)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, contentTypeXLSX, workbook)
}

func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		c.JSON(errMissingProjectQuery.HTTPStatus, errMissingProjectQuery.ToHTTPError())
		return
	}

	metrics, err := h.usecase.GetDashboardMetrics(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidPlanMonth),
		errors.Is(err, usecase.ErrInvalidPlanYear):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
