package handlers

import (
	"errors"
	request "gestao_obras/internal/adapter/http/dto/request"
	response "gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidIndexPayload = pkg.NewDomainErrorSimple("INVALID_INDEX_INPUT", "Invalid contract index payload", http.StatusBadRequest)
	errMissingProjectQuery = pkg.NewDomainErrorSimple("MISSING_PROJECT_ID", "Query parameter project_id is required", http.StatusBadRequest)
)

// IndexHandler handles HTTP requests for the contract index registry,
// including the price revision history.

type IndexHandler struct {
	usecase usecase.IIndexUseCase
}

func NewIndexHandler(uc usecase.IIndexUseCase) *IndexHandler {
	return &IndexHandler{usecase: uc}
}

func (h *IndexHandler) CreateIndex(c *gin.Context) {
	var payload request.CreateIndexRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIndexPayload.HTTPStatus, errInvalidIndexPayload.ToHTTPError())
		return
	}

	idx, err := h.usecase.Create(c.Request.Context(), entities.ContractIndex{
		ProjectID:     payload.ProjectID,
		ItemCode:      payload.ItemCode,
		CodeSAP:       payload.CodeSAP,
		Description:   payload.Description,
		Unit:          payload.Unit,
		Type:          entities.IndexType(payload.Type),
		CurrentPrice:  payload.Price,
		TotalQuantity: payload.Quantity,
	})
	if err != nil {
		appErr := mapIndexError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIndex(idx))
}

func (h *IndexHandler) GetIndex(c *gin.Context) {
	idx, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIndexError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIndex(idx))
}

func (h *IndexHandler) ListIndices(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		c.JSON(errMissingProjectQuery.HTTPStatus, errMissingProjectQuery.ToHTTPError())
		return
	}

	indices, err := h.usecase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapIndexError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIndices(indices))
}

func (h *IndexHandler) UpdateIndexDescription(c *gin.Context) {
	var payload request.UpdateIndexDescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIndexPayload.HTTPStatus, errInvalidIndexPayload.ToHTTPError())
		return
	}

	idx, err := h.usecase.UpdateDescription(c.Request.Context(), c.Param("id"), payload.Description)
	if err != nil {
		appErr := mapIndexError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIndex(idx))
}

// ReviseIndex appends a revision and moves the index snapshot to the new
// price. Production lines frozen before this call keep their old price.
func (h *IndexHandler) ReviseIndex(c *gin.Context) {
	var payload request.ReviseIndexRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIndexPayload.HTTPStatus, errInvalidIndexPayload.ToHTTPError())
		return
	}

	idx, err := h.usecase.Revise(c.Request.Context(), c.Param("id"), payload.Price, payload.Quantity, payload.EffectiveDate, payload.Reason)
	if err != nil {
		appErr := mapIndexError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIndex(idx))
}

func (h *IndexHandler) ListRevisions(c *gin.Context) {
	revisions, err := h.usecase.ListRevisions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIndexError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRevisions(revisions))
}

func (h *IndexHandler) DeleteIndex(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapIndexError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapIndexError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIndexID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidIndexItemCode),
		errors.Is(err, usecase.ErrInvalidIndexType),
		errors.Is(err, usecase.ErrInvalidIndexPrice),
		errors.Is(err, usecase.ErrInvalidIndexQty):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIndexNotFound):
		return pkg.NewDomainErrorSimple("INDEX_NOT_FOUND", "Contract index not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
