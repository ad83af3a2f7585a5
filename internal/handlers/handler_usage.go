package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// usageHandler handles HTTP requests for monthly usage records of
// units-of-production assets.
type usageHandler struct {
	usageService portssvc.MonthlyUsageSvcFacade
}

func newUsageHandler(us portssvc.MonthlyUsageSvcFacade) *usageHandler {
	return &usageHandler{usageService: us}
}

// registerUsageRoutes registers routes for monthly usage records.
func registerUsageRoutes(rg *gin.RouterGroup, usageService portssvc.MonthlyUsageSvcFacade) {
	h := newUsageHandler(usageService)

	usage := rg.Group("/usage")
	{
		usage.POST("", h.recordUsage)
		usage.GET("/unprocessed", h.listUnprocessedUsage)
		usage.GET("/:usageID", h.getUsage)
		usage.POST("/:usageID/process", h.processUsage)
	}

	rg.GET("/assets/:assetID/usage", h.listUsageByAsset)
}

// recordUsage godoc
// @Summary Record units consumed by a units-of-production asset
// @Tags usage
// @Accept json
// @Produce json
// @Param usage body dto.RecordUsageRequest true "Usage details"
// @Success 201 {object} dto.UsageResponse
// @Failure 400 {object} map[string]string "Asset is not units-of-production or units exceed remaining"
// @Failure 409 {object} map[string]string "Period already recorded"
// @Router /usage [post]
func (h *usageHandler) recordUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordUsageRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	usage, err := h.usageService.RecordUsage(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to record usage")
		return
	}

	logger.Info("Usage recorded",
		slog.String("usage_id", usage.UsageID), slog.Int("units_used", usage.UnitsUsed))
	c.JSON(http.StatusCreated, dto.ToUsageResponse(usage))
}

// getUsage godoc
// @Summary Get a usage record by ID
// @Tags usage
// @Produce json
// @Param usageID path string true "Usage record ID"
// @Success 200 {object} dto.UsageResponse
// @Failure 404 {object} map[string]string "Usage record not found"
// @Router /usage/{usageID} [get]
func (h *usageHandler) getUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	usage, err := h.usageService.GetUsageByID(c.Request.Context(), c.Param("usageID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve usage record")
		return
	}

	c.JSON(http.StatusOK, dto.ToUsageResponse(usage))
}

// listUsageByAsset godoc
// @Summary List usage records for an asset
// @Tags usage
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.UsageResponse
// @Router /assets/{assetID}/usage [get]
func (h *usageHandler) listUsageByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.usageService.ListUsageByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list usage records")
		return
	}

	c.JSON(http.StatusOK, dto.ToUsageResponses(items))
}

// listUnprocessedUsage godoc
// @Summary List usage records not yet applied to asset units
// @Tags usage
// @Produce json
// @Success 200 {array} dto.UsageResponse
// @Router /usage/unprocessed [get]
func (h *usageHandler) listUnprocessedUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.usageService.ListUnprocessedUsage(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unprocessed usage")
		return
	}

	c.JSON(http.StatusOK, dto.ToUsageResponses(items))
}

// processUsage godoc
// @Summary Apply a usage record to the asset's remaining units
// @Description Decrements the remaining units exactly once per record
// @Tags usage
// @Produce json
// @Param usageID path string true "Usage record ID"
// @Success 200 {object} dto.UsageResponse
// @Failure 404 {object} map[string]string "Usage record not found"
// @Failure 409 {object} map[string]string "Usage already processed"
// @Router /usage/{usageID}/process [post]
func (h *usageHandler) processUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	usageID := c.Param("usageID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	usage, err := h.usageService.ProcessUsage(c.Request.Context(), usageID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to process usage record")
		return
	}

	logger.Info("Usage record processed", slog.String("usage_id", usageID))
	c.JSON(http.StatusOK, dto.ToUsageResponse(usage))
}
