package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// journalHandler exposes read access to the GL journal entries produced by
// document posting, and to the chart of accounts.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	accountService portssvc.AccountSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade, as portssvc.AccountSvcFacade) *journalHandler {
	return &journalHandler{journalService: js, accountService: as}
}

// registerJournalRoutes registers read-only routes for journal entries and
// accounts. Journal entries are only ever written by document posting.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newJournalHandler(journalService, accountService)

	journal := rg.Group("/journal-entries")
	{
		journal.GET("/source/:sourceDocument", h.listJournalEntriesBySource)
		journal.GET("/:journalEntryID", h.getJournalEntry)
	}

	rg.GET("/accounts/:accountID", h.getAccount)
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal
// @Produce json
// @Param journalEntryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Router /journal-entries/{journalEntryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.journalService.GetJournalEntryByID(c.Request.Context(), c.Param("journalEntryID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntriesBySource godoc
// @Summary List journal entries for a source document
// @Tags journal
// @Produce json
// @Param sourceDocument path string true "Source document reference"
// @Success 200 {array} dto.JournalEntryResponse
// @Router /journal-entries/source/{sourceDocument} [get]
func (h *journalHandler) listJournalEntriesBySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.journalService.ListJournalEntriesBySource(c.Request.Context(), c.Param("sourceDocument"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
}

// getAccount godoc
// @Summary Get a chart-of-accounts entry by ID
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID} [get]
func (h *journalHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
