package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	ledgerService  portssvc.LedgerSvc
}

func registerAccountRoutes(rg *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvc) {
	h := &accountHandler{accountService: accountSvc, ledgerService: ledgerSvc}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/tree", h.getAccountTree)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deactivateAccount)
		accounts.GET("/:account_id/ledger", h.getGeneralLedger)
		accounts.GET("/:account_id/recompute-balance", h.recomputeBalance)
	}
}

// createAccount godoc
// @Summary Create an account
// @Description Creates a new account in the tenant's chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Duplicate account code"
// @Router /tenants/{tenant_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /tenants/{tenant_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), tenantID, c.Param("account_id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account of the tenant in code order
// @Tags accounts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.AccountResponse
// @Router /tenants/{tenant_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccountTree godoc
// @Summary Get the chart of accounts hierarchy
// @Tags accounts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.AccountTreeNodeResponse
// @Router /tenants/{tenant_id}/accounts/tree [get]
func (h *accountHandler) getAccountTree(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	tree, err := h.accountService.GetAccountTree(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to build account tree")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTreeResponse(tree))
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /tenants/{tenant_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind account update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), tenantID, c.Param("account_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks an account inactive; history stays intact
// @Tags accounts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /tenants/{tenant_id}/accounts/{account_id} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), tenantID, c.Param("account_id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}

// getGeneralLedger godoc
// @Summary Get an account's general ledger
// @Description Running-balance view of one account over a date range
// @Tags ledger
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param referenceType query string false "Keep only entries of this reference type"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /tenants/{tenant_id}/accounts/{account_id}/ledger [get]
func (h *accountHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.LedgerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind ledger query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required (YYYY-MM-DD)"})
		return
	}

	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.GetGeneralLedger(c.Request.Context(), tenantID, c.Param("account_id"), q.From, q.To, q.ReferenceType)
	if err != nil {
		respondError(c, err, "Failed to build general ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(ledger))
}

// recomputeBalance godoc
// @Summary Recompute an account balance from posted history
// @Description Replays the posted history and reports divergence from the cached balance
// @Tags ledger
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} map[string]string "Recomputed balance"
// @Failure 500 {object} map[string]string "Cached balance diverges"
// @Router /tenants/{tenant_id}/accounts/{account_id}/recompute-balance [get]
func (h *accountHandler) recomputeBalance(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	balance, err := h.ledgerService.RecomputeBalance(c.Request.Context(), tenantID, c.Param("account_id"))
	if err != nil {
		respondError(c, err, "Cached balance diverges from posted history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance.String()})
}
