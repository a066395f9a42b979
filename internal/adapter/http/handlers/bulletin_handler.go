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

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidBulletinPayload = pkg.NewDomainErrorSimple("INVALID_BULLETIN_INPUT", "Invalid measurement bulletin payload", http.StatusBadRequest)
)

// BulletinHandler handles HTTP requests for imported measurement bulletins.

type BulletinHandler struct {
	usecase  usecase.IBulletinUseCase
	renderer interfaces.IWorkbookRenderer
}

func NewBulletinHandler(uc usecase.IBulletinUseCase, renderer interfaces.IWorkbookRenderer) *BulletinHandler {
	return &BulletinHandler{usecase: uc, renderer: renderer}
}

func (h *BulletinHandler) ImportBulletin(c *gin.Context) {
	var payload request.BulletinImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulletinPayload.HTTPStatus, errInvalidBulletinPayload.ToHTTPError())
		return
	}

	bulletin, err := h.usecase.Import(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBulletin(bulletin))
}

func (h *BulletinHandler) GetBulletin(c *gin.Context) {
	bulletin, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulletin(bulletin))
}

func (h *BulletinHandler) ListBulletins(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		c.JSON(errMissingProjectQuery.HTTPStatus, errMissingProjectQuery.ToHTTPError())
		return
	}

	bulletins, err := h.usecase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulletinSummaries(bulletins))
}

// UpdateBulletinMetadata edits header fields only; line items stay immutable.
func (h *BulletinHandler) UpdateBulletinMetadata(c *gin.Context) {
	var payload request.BulletinMetadataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulletinPayload.HTTPStatus, errInvalidBulletinPayload.ToHTTPError())
		return
	}

	bulletin, err := h.usecase.UpdateMetadata(c.Request.Context(), c.Param("id"), payload.ReferenceDate, payload.Period, entities.IndexType(payload.Type))
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulletin(bulletin))
}

func (h *BulletinHandler) DeleteBulletin(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportBulletin renders the bulletin as an xlsx workbook.
func (h *BulletinHandler) ExportBulletin(c *gin.Context) {
	bulletin, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	workbook, err := h.renderer.BulletinWorkbook(bulletin)
	if err != nil {
		appErr := mapBulletinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileName := fmt.Sprintf("boletim_%s.xlsx", bulletin.ID)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, contentTypeXLSX, workbook)
}

func mapBulletinError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBulletinID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrBulletinWithoutItems),
		errors.Is(err, usecase.ErrInvalidBulletinType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBulletinNotFound):
		return pkg.NewDomainErrorSimple("BULLETIN_NOT_FOUND", "Measurement bulletin not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
