package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// entryHandler handles HTTP requests for asset entry documents.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// registerEntryRoutes registers routes for entry documents. The per-asset
// listing is registered on the assets group.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("/unposted", h.listUnpostedEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/post", h.postEntry)
	}

	rg.GET("/assets/:assetID/entries", h.listEntriesByAsset)
}

// createEntry godoc
// @Summary Create an asset entry document
// @Description Records the financial setup of an asset; balances are untouched until posting
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Entry number already exists"
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create entry document")
		return
	}

	logger.Info("Entry document created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get an entry document by ID
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve entry document")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntriesByAsset godoc
// @Summary List entry documents for an asset
// @Tags entries
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.EntryResponse
// @Router /assets/{assetID}/entries [get]
func (h *entryHandler) listEntriesByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.entryService.ListEntriesByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list entry documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// listUnpostedEntries godoc
// @Summary List entry documents awaiting posting
// @Tags entries
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Router /entries/unposted [get]
func (h *entryHandler) listUnpostedEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.entryService.ListUnpostedEntries(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unposted entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// postEntry godoc
// @Summary Post an entry document
// @Description Applies the financial setup to the asset, activates it and writes the acquisition journal entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already posted"
// @Router /entries/{entryID}/post [post]
func (h *entryHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.entryService.PostEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post entry document")
		return
	}

	logger.Info("Entry document posted",
		slog.String("entry_id", entryID), slog.String("asset_id", entry.AssetID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
