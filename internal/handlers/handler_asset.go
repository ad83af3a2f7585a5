package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// assetHandler handles HTTP requests related to the asset register.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// registerAssetRoutes registers routes related to the asset register.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/summary", h.getAssetSummary)
		assets.GET("/status/:status", h.listAssetsByStatus)
		assets.GET("/number/:assetNumber", h.getAssetByNumber)
		assets.GET("/:assetID", h.getAsset)
		assets.PUT("/:assetID", h.updateAsset)
		assets.DELETE("/:assetID", h.deleteAsset)
		assets.POST("/:assetID/status", h.changeStatus)
	}
}

// createAsset godoc
// @Summary Register a new fixed asset
// @Description Creates a new asset with zero balances in status NEW or CONSTRUCTION_IN_PROGRESS
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Asset number already exists"
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAssetRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create asset", slog.String("asset_number", req.AssetNumber))

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create asset")
		return
	}

	logger.Info("Asset created successfully", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves a paginated list of assets using token-based pagination
// @Tags assets
// @Produce json
// @Param limit query int false "Maximum number of assets to return"
// @Param nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAssets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.assetService.ListAssets(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getAssetSummary godoc
// @Summary Summarize the asset register
// @Description Aggregates balances and counts across all lifecycle statuses
// @Tags assets
// @Produce json
// @Success 200 {object} dto.AssetSummaryResponse
// @Router /assets/summary [get]
func (h *assetHandler) getAssetSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.assetService.GetAssetSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to summarize assets")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// listAssetsByStatus godoc
// @Summary List assets in a lifecycle status
// @Tags assets
// @Produce json
// @Param status path string true "Lifecycle status"
// @Success 200 {array} dto.AssetResponse
// @Router /assets/status/{status} [get]
func (h *assetHandler) listAssetsByStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.assetService.ListAssetsByStatus(c.Request.Context(), domain.AssetStatus(c.Param("status")))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list assets by status")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponses(assets))
}

// getAsset godoc
// @Summary Get an asset by ID
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// getAssetByNumber godoc
// @Summary Get an asset by its user-facing number
// @Tags assets
// @Produce json
// @Param assetNumber path string true "Asset number"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/number/{assetNumber} [get]
func (h *assetHandler) getAssetByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetNumber := c.Param("assetNumber")

	asset, err := h.assetService.GetAssetByNumber(c.Request.Context(), assetNumber)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// updateAsset godoc
// @Summary Update descriptive fields of an asset
// @Description Financial fields change exclusively through posted documents
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.UpdateAssetRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), assetID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update asset")
		return
	}

	logger.Info("Asset updated successfully", slog.String("asset_id", assetID))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// deleteAsset godoc
// @Summary Delete an asset without financial history
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 204 "Asset deleted"
// @Failure 400 {object} map[string]string "Asset has financial history"
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete asset")
		return
	}

	logger.Info("Asset deleted successfully", slog.String("asset_id", assetID))
	c.Status(http.StatusNoContent)
}

// changeStatus godoc
// @Summary Move an asset through the lifecycle state machine
// @Description Only transitions in the lifecycle table are allowed
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param status body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID}/status [post]
func (h *assetHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.ChangeStatusRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to change asset status",
		slog.String("asset_id", assetID), slog.String("target_status", string(req.Status)))

	asset, err := h.assetService.ChangeStatus(c.Request.Context(), assetID, domain.AssetStatus(req.Status), userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to change asset status")
		return
	}

	logger.Info("Asset status changed successfully",
		slog.String("asset_id", assetID), slog.String("status", string(asset.Status)))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}
