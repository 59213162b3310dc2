package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingSvc portssvc.ReportingSvc) {
	h := &reportingHandler{reportingService: reportingSvc}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/budget-variance", h.budgetVariance)
	}
}

// bindAsOf parses the optional asOf parameter, defaulting to today.
func bindAsOf(c *gin.Context) (time.Time, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ReportDateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind report date query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	if q.AsOf != nil {
		return *q.AsOf, true
	}
	return time.Now().UTC().Truncate(24 * time.Hour), true
}

// bindRange parses the required from/to period parameters.
func bindRange(c *gin.Context) (from, to time.Time, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ReportRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind report range query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required (YYYY-MM-DD)"})
		return time.Time{}, time.Time{}, false
	}
	if q.To.Before(q.From) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	return q.From, q.To, true
}

// trialBalance godoc
// @Summary Trial balance
// @Description Debit and credit balances of every posting account as of a date; totals must match
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param asOf query string false "Snapshot date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.TrialBalance
// @Failure 500 {object} map[string]string "Debit and credit totals diverge"
// @Router /tenants/{tenant_id}/reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	asOf, ok := bindAsOf(c)
	if !ok {
		return
	}
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID, asOf)
	if err != nil {
		respondError(c, err, "Trial balance totals diverge")
		return
	}
	c.JSON(http.StatusOK, report)
}

// incomeStatement godoc
// @Summary Income statement
// @Description Revenue and expense movement over a period, split into operating and other
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.IncomeStatement
// @Router /tenants/{tenant_id}/reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	from, to, ok := bindRange(c)
	if !ok {
		return
	}
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), tenantID, from, to)
	if err != nil {
		respondError(c, err, "Failed to build income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity as of a date; the accounting identity must hold
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param asOf query string false "Snapshot date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.BalanceSheet
// @Failure 500 {object} map[string]string "Accounting identity breached"
// @Router /tenants/{tenant_id}/reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	asOf, ok := bindAsOf(c)
	if !ok {
		return
	}
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), tenantID, asOf)
	if err != nil {
		respondError(c, err, "Balance sheet identity breached")
		return
	}
	c.JSON(http.StatusOK, report)
}

// budgetVariance godoc
// @Summary Budget variance report
// @Description Actual expense spending per cost center against budget over a period
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.BudgetVarianceReport
// @Router /tenants/{tenant_id}/reports/budget-variance [get]
func (h *reportingHandler) budgetVariance(c *gin.Context) {
	from, to, ok := bindRange(c)
	if !ok {
		return
	}
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BudgetVariance(c.Request.Context(), tenantID, from, to)
	if err != nil {
		respondError(c, err, "Failed to build budget variance report")
		return
	}
	c.JSON(http.StatusOK, report)
}
