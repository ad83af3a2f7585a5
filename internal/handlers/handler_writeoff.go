package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// writeOffHandler handles HTTP requests for write-off documents.
type writeOffHandler struct {
	writeOffService portssvc.WriteOffSvcFacade
}

func newWriteOffHandler(ws portssvc.WriteOffSvcFacade) *writeOffHandler {
	return &writeOffHandler{writeOffService: ws}
}

// registerWriteOffRoutes registers routes for write-off documents.
func registerWriteOffRoutes(rg *gin.RouterGroup, writeOffService portssvc.WriteOffSvcFacade) {
	h := newWriteOffHandler(writeOffService)

	writeOffs := rg.Group("/write-offs")
	{
		writeOffs.POST("", h.createWriteOff)
		writeOffs.GET("/unposted", h.listUnpostedWriteOffs)
		writeOffs.GET("/:writeOffID", h.getWriteOff)
		writeOffs.POST("/:writeOffID/post", h.postWriteOff)
	}

	rg.GET("/assets/:assetID/write-offs", h.listWriteOffsByAsset)
}

// createWriteOff godoc
// @Summary Create a write-off document
// @Description Snapshots the asset's balances; the loss equals the net book value
// @Tags write-offs
// @Accept json
// @Produce json
// @Param writeOff body dto.CreateWriteOffRequest true "Write-off details"
// @Success 201 {object} dto.WriteOffResponse
// @Failure 400 {object} map[string]string "Asset not in a writable state"
// @Router /write-offs [post]
func (h *writeOffHandler) createWriteOff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWriteOffRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	writeOff, err := h.writeOffService.CreateWriteOff(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create write-off document")
		return
	}

	logger.Info("Write-off document created", slog.String("write_off_id", writeOff.WriteOffID))
	c.JSON(http.StatusCreated, dto.ToWriteOffResponse(writeOff))
}

// getWriteOff godoc
// @Summary Get a write-off document by ID
// @Tags write-offs
// @Produce json
// @Param writeOffID path string true "Write-off ID"
// @Success 200 {object} dto.WriteOffResponse
// @Failure 404 {object} map[string]string "Write-off not found"
// @Router /write-offs/{writeOffID} [get]
func (h *writeOffHandler) getWriteOff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	writeOff, err := h.writeOffService.GetWriteOffByID(c.Request.Context(), c.Param("writeOffID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve write-off document")
		return
	}

	c.JSON(http.StatusOK, dto.ToWriteOffResponse(writeOff))
}

// listWriteOffsByAsset godoc
// @Summary List write-off documents for an asset
// @Tags write-offs
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.WriteOffResponse
// @Router /assets/{assetID}/write-offs [get]
func (h *writeOffHandler) listWriteOffsByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.writeOffService.ListWriteOffsByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list write-off documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToWriteOffResponses(items))
}

// listUnpostedWriteOffs godoc
// @Summary List write-off documents awaiting posting
// @Tags write-offs
// @Produce json
// @Success 200 {array} dto.WriteOffResponse
// @Router /write-offs/unposted [get]
func (h *writeOffHandler) listUnpostedWriteOffs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.writeOffService.ListUnpostedWriteOffs(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unposted write-offs")
		return
	}

	c.JSON(http.StatusOK, dto.ToWriteOffResponses(items))
}

// postWriteOff godoc
// @Summary Post a write-off document
// @Description Removes the asset from the books and records the loss in the GL
// @Tags write-offs
// @Produce json
// @Param writeOffID path string true "Write-off ID"
// @Success 200 {object} dto.WriteOffResponse
// @Failure 404 {object} map[string]string "Write-off not found"
// @Failure 409 {object} map[string]string "Write-off already posted"
// @Router /write-offs/{writeOffID}/post [post]
func (h *writeOffHandler) postWriteOff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	writeOffID := c.Param("writeOffID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	writeOff, err := h.writeOffService.PostWriteOff(c.Request.Context(), writeOffID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post write-off document")
		return
	}

	logger.Info("Write-off document posted",
		slog.String("write_off_id", writeOffID), slog.String("asset_id", writeOff.AssetID))
	c.JSON(http.StatusOK, dto.ToWriteOffResponse(writeOff))
}
