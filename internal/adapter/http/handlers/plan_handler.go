package handlers

import (
	"errors"
	request "gestao_obras/internal/adapter/http/dto/request"
	response "gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid monthly plan payload", http.StatusBadRequest)
	errInvalidPlanQuery   = pkg.NewDomainErrorSimple("INVALID_PLAN_QUERY", "Query parameters project_id, month and year are required", http.StatusBadRequest)
)

// PlanHandler handles HTTP requests for the monthly planning baseline.

type PlanHandler struct {
	usecase usecase.IPlanningUseCase
}

func NewPlanHandler(uc usecase.IPlanningUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

// GetPlan returns the saved plan for the requested month, or a carry-forward
// draft built from the previous month's fleet when none exists.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	projectID := c.Query("project_id")
	month, monthErr := strconv.Atoi(c.Query("month"))
	year, yearErr := strconv.Atoi(c.Query("year"))
	if projectID == "" || monthErr != nil || yearErr != nil {
		c.JSON(errInvalidPlanQuery.HTTPStatus, errInvalidPlanQuery.ToHTTPError())
		return
	}

	plan, err := h.usecase.GetPlan(c.Request.Context(), projectID, month, year)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// SavePlan persists the plan, pricing each item from its index's current
// price at this moment.
func (h *PlanHandler) SavePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.SavePlan(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidPlanMonth),
		errors.Is(err, usecase.ErrInvalidPlanYear):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Monthly plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
