package handlers

import (
	"errors"
	"fmt"
	request "gestao_obras/internal/adapter/http/dto/request"
	response "gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRDOPayload   = pkg.NewDomainErrorSimple("INVALID_RDO_INPUT", "Invalid daily report payload", http.StatusBadRequest)
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid item quote payload", http.StatusBadRequest)
)

// RDOHandler handles HTTP requests for daily field reports. Item pricing
// happens exclusively through QuoteItem; Create/Update persist the quoted
// snapshots verbatim.

type RDOHandler struct {
	usecase  usecase.IRDOUseCase
	projects usecase.IProjectUseCase
	renderer interfaces.IDailyReportRenderer
}

func NewRDOHandler(uc usecase.IRDOUseCase, projects usecase.IProjectUseCase, renderer interfaces.IDailyReportRenderer) *RDOHandler {
	return &RDOHandler{usecase: uc, projects: projects, renderer: renderer}
}

// QuoteItem is the price freeze point: it selects the index, copies its
// current price into the item and resolves the km marker, returning the
// priced snapshot for the client to include in a later save.
func (h *RDOHandler) QuoteItem(c *gin.Context) {
	var payload request.ItemQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	item := h.usecase.NewItem()
	item.EquipmentID = payload.EquipmentID
	item.Observation = payload.Observation
	if payload.MeasurementType != "" {
		item.MeasurementType = entities.MeasurementType(payload.MeasurementType)
	}

	item, err := h.usecase.SetItemIndex(ctx, item, payload.IndexID)
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err = h.usecase.SetItemQuantity(item, payload.Quantity)
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.Km != nil {
		item, err = h.usecase.SetItemKm(ctx, payload.ProjectID, item, *payload.Km)
		if err != nil {
			appErr := mapRDOError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	c.JSON(http.StatusOK, response.FromRDOItem(item))
}

func (h *RDOHandler) CreateRDO(c *gin.Context) {
	var payload request.RDORequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRDOPayload.HTTPStatus, errInvalidRDOPayload.ToHTTPError())
		return
	}

	rdo, err := h.usecase.Save(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRDO(rdo))
}

func (h *RDOHandler) UpdateRDO(c *gin.Context) {
	var payload request.RDORequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRDOPayload.HTTPStatus, errInvalidRDOPayload.ToHTTPError())
		return
	}

	rdo, err := h.usecase.Save(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRDO(rdo))
}

func (h *RDOHandler) GetRDO(c *gin.Context) {
	rdo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRDO(rdo))
}

// ListRDOs lists reports, optionally filtered by project_id.
func (h *RDOHandler) ListRDOs(c *gin.Context) {
	rdos, err := h.usecase.List(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRDOs(rdos))
}

func (h *RDOHandler) DeleteRDO(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RDOHandler) GetDailySummary(c *gin.Context) {
	rows, err := h.usecase.DailySummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummaryRows(rows))
}

// ExportRDO renders the report as a PDF document.
func (h *RDOHandler) ExportRDO(c *gin.Context) {
	ctx := c.Request.Context()
	rdo, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	project, err := h.projects.GetProject(ctx, rdo.ProjectID)
	if err != nil && !errors.Is(err, usecase.ErrProjectNotFound) {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.renderer.DailyReportPDF(rdo, project)
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileName := fmt.Sprintf("rdo_%s.pdf", rdo.Date.Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapRDOError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRDOID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidIndexID),
		errors.Is(err, usecase.ErrRDOWithoutProject),
		errors.Is(err, usecase.ErrRDOWithoutItems),
		errors.Is(err, usecase.ErrInvalidItemQuantity),
		errors.Is(err, usecase.ErrInvalidMeasurement),
		errors.Is(err, usecase.ErrItemWithoutIndex):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIndexNotFound):
		return pkg.NewDomainErrorSimple("INDEX_NOT_FOUND", "Contract index not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRDONotFound):
		return pkg.NewDomainErrorSimple("RDO_NOT_FOUND", "Daily report not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
