package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultListLimit = 50

// journalHandler handles HTTP requests for journal entries and their
// draft-post-reverse lifecycle.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func registerJournalRoutes(rg *gin.RouterGroup, journalSvc portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalSvc}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entry_id", h.getEntry)
		entries.PUT("/:entry_id", h.updateDraftEntry)
		entries.DELETE("/:entry_id", h.deleteDraftEntry)
		entries.POST("/:entry_id/post", h.postEntry)
		entries.POST("/:entry_id/reverse", h.reverseEntry)
	}
}

// createEntry godoc
// @Summary Create a draft journal entry
// @Description Creates a journal entry in DRAFT status; full validation runs at post time
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param entry body dto.CreateJournalEntryRequest true "Entry details"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /tenants/{tenant_id}/journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /tenants/{tenant_id}/journal-entries/{entry_id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), tenantID, c.Param("entry_id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries filtered by status, reference and date range, newest page first by entry order
// @Tags journal-entries
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param status query string false "Filter by status" Enums(DRAFT, POSTED, REVERSED)
// @Param referenceType query string false "Filter by reference type"
// @Param referenceID query string false "Filter by reference ID"
// @Param dateFrom query string false "Entry date lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Entry date upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size (max 100)"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Router /tenants/{tenant_id}/journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListJournalEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind journal list query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	filter := portsrepo.JournalListFilter{
		Status:        domain.JournalStatus(req.Status),
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		DateFrom:      req.DateFrom,
		DateTo:        req.DateTo,
	}

	entries, nextToken, err := h.journalService.ListEntries(c.Request.Context(), tenantID, filter, limit, req.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	})
}

// updateDraftEntry godoc
// @Summary Update a draft journal entry
// @Description Replaces the fields and lines of a DRAFT entry; posted entries are immutable
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param entry_id path string true "Entry ID"
// @Param entry body dto.CreateJournalEntryRequest true "New entry contents"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Router /tenants/{tenant_id}/journal-entries/{entry_id} [put]
func (h *journalHandler) updateDraftEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind journal entry update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.UpdateDraftEntry(c.Request.Context(), tenantID, c.Param("entry_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteDraftEntry godoc
// @Summary Delete a draft journal entry
// @Description Deletes a DRAFT entry; posted entries can only be reversed
// @Tags journal-entries
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param entry_id path string true "Entry ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Router /tenants/{tenant_id}/journal-entries/{entry_id} [delete]
func (h *journalHandler) deleteDraftEntry(c *gin.Context) {
	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteDraftEntry(c.Request.Context(), tenantID, c.Param("entry_id"), userID); err != nil {
		respondError(c, err, "Failed to delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// postEntry godoc
// @Summary Post a draft journal entry
// @Description Revalidates the draft, allocates its entry number and applies balance changes atomically
// @Tags journal-entries
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already posted"
// @Failure 422 {object} dto.ValidationFailureResponse "Validation violations"
// @Router /tenants/{tenant_id}/journal-entries/{entry_id}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), tenantID, c.Param("entry_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to post journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a posted journal entry
// @Description Creates and posts a mirror entry with debit and credit swapped, linked to the original
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param entry_id path string true "Entry ID"
// @Param reversal body dto.ReverseJournalEntryRequest false "Optional date and description overrides"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry not posted or already reversed"
// @Router /tenants/{tenant_id}/journal-entries/{entry_id}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReverseJournalEntryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind reversal request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.ReverseEntry(c.Request.Context(), tenantID, c.Param("entry_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to reverse journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
