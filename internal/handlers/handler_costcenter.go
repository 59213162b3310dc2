package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// costCenterHandler handles HTTP requests for cost centers and their budgets.
type costCenterHandler struct {
	costCenterService portssvc.CostCenterSvcFacade
}

func registerCostCenterRoutes(rg *gin.RouterGroup, costCenterSvc portssvc.CostCenterSvcFacade) {
	h := &costCenterHandler{costCenterService: costCenterSvc}

	centers := rg.Group("/cost-centers")
	{
		centers.POST("", h.createCostCenter)
		centers.GET("", h.listCostCenters)
		centers.GET("/tree", h.getCostCenterTree)
		centers.GET("/:cost_center_id", h.getCostCenter)
		centers.PUT("/:cost_center_id", h.updateCostCenter)
		centers.DELETE("/:cost_center_id", h.deactivateCostCenter)
		centers.PUT("/:cost_center_id/budget", h.setBudget)
	}
}

// createCostCenter godoc
// @Summary Create a cost center
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param costCenter body dto.CreateCostCenterRequest true "Cost center details"
// @Success 201 {object} dto.CostCenterResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Duplicate cost center code"
// @Router /tenants/{tenant_id}/cost-centers [post]
func (h *costCenterHandler) createCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind cost center request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	center, err := h.costCenterService.CreateCostCenter(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create cost center")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCostCenterResponse(center))
}

// getCostCenter godoc
// @Summary Get a cost center
// @Tags cost-centers
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param cost_center_id path string true "Cost center ID"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 404 {object} map[string]string "Cost center not found"
// @Router /tenants/{tenant_id}/cost-centers/{cost_center_id} [get]
func (h *costCenterHandler) getCostCenter(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	center, err := h.costCenterService.GetCostCenterByID(c.Request.Context(), tenantID, c.Param("cost_center_id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve cost center")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(center))
}

// listCostCenters godoc
// @Summary List cost centers
// @Tags cost-centers
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.CostCenterResponse
// @Router /tenants/{tenant_id}/cost-centers [get]
func (h *costCenterHandler) listCostCenters(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	centers, err := h.costCenterService.ListCostCenters(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to list cost centers")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponses(centers))
}

// getCostCenterTree godoc
// @Summary Get the cost center hierarchy
// @Tags cost-centers
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.CostCenterTreeNodeResponse
// @Router /tenants/{tenant_id}/cost-centers/tree [get]
func (h *costCenterHandler) getCostCenterTree(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	tree, err := h.costCenterService.GetCostCenterTree(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to build cost center tree")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterTreeResponse(tree))
}

// updateCostCenter godoc
// @Summary Update a cost center
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param cost_center_id path string true "Cost center ID"
// @Param costCenter body dto.UpdateCostCenterRequest true "Fields to update"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 404 {object} map[string]string "Cost center not found"
// @Router /tenants/{tenant_id}/cost-centers/{cost_center_id} [put]
func (h *costCenterHandler) updateCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind cost center update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	center, err := h.costCenterService.UpdateCostCenter(c.Request.Context(), tenantID, c.Param("cost_center_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update cost center")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(center))
}

// deactivateCostCenter godoc
// @Summary Deactivate a cost center
// @Tags cost-centers
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param cost_center_id path string true "Cost center ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Cost center not found"
// @Router /tenants/{tenant_id}/cost-centers/{cost_center_id} [delete]
func (h *costCenterHandler) deactivateCostCenter(c *gin.Context) {
	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.costCenterService.DeactivateCostCenter(c.Request.Context(), tenantID, c.Param("cost_center_id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate cost center")
		return
	}
	c.Status(http.StatusNoContent)
}

// setBudget godoc
// @Summary Set a cost center's budget
// @Description Replaces the budget amount used by the variance report
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param cost_center_id path string true "Cost center ID"
// @Param budget body dto.SetBudgetRequest true "New budget amount"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Cost center not found"
// @Router /tenants/{tenant_id}/cost-centers/{cost_center_id}/budget [put]
func (h *costCenterHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind budget request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	center, err := h.costCenterService.SetBudget(c.Request.Context(), tenantID, c.Param("cost_center_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to set budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(center))
}
