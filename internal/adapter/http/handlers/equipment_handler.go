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
	errInvalidEquipmentPayload = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Invalid equipment payload", http.StatusBadRequest)
	errInvalidCostPayload      = pkg.NewDomainErrorSimple("INVALID_COST_INPUT", "Invalid equipment cost payload", http.StatusBadRequest)
)

// EquipmentHandler handles HTTP requests for the fleet registry and its
// cost ledger.

type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc}
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}

	eq, err := h.usecase.Create(c.Request.Context(), equipmentFromRequest(payload))
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEquipment(eq))
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	eq, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipment(eq))
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipmentList(list))
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}

	eq := equipmentFromRequest(payload)
	eq.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), eq)
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipment(updated))
}

// DeleteEquipment removes the asset only. Cost rows referencing it are kept.
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EquipmentHandler) AddCost(c *gin.Context) {
	var payload request.EquipmentCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return
	}

	cost, err := h.usecase.AddCost(c.Request.Context(), entities.EquipmentCost{
		EquipmentID: payload.EquipmentID,
		Type:        entities.CostType(payload.Type),
		Value:       payload.Value,
		Date:        payload.Date,
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCost(cost))
}

func (h *EquipmentHandler) ListCosts(c *gin.Context) {
	costs, err := h.usecase.ListCosts(c.Request.Context())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCosts(costs))
}

func (h *EquipmentHandler) DeleteCost(c *gin.Context) {
	if err := h.usecase.DeleteCost(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func equipmentFromRequest(payload request.EquipmentRequest) entities.Equipment {
	return entities.Equipment{
		InternalCode:         payload.InternalCode,
		Name:                 payload.Name,
		Category:             payload.Category,
		Owner:                entities.EquipmentOwner(payload.Owner),
		ResponsibleCompanyID: payload.ResponsibleCompanyID,
	}
}

func mapEquipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEquipmentID),
		errors.Is(err, usecase.ErrInvalidEquipmentName),
		errors.Is(err, usecase.ErrInvalidOwner),
		errors.Is(err, usecase.ErrInvalidCostID),
		errors.Is(err, usecase.ErrInvalidCostType),
		errors.Is(err, usecase.ErrInvalidCostValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCostNotFound):
		return pkg.NewDomainErrorSimple("COST_NOT_FOUND", "Equipment cost not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
