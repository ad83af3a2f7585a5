package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// parameterChangeHandler handles HTTP requests for depreciation parameter
// reassessments, impairments and revaluations.
type parameterChangeHandler struct {
	parameterChangeService portssvc.ParameterChangeSvcFacade
}

func newParameterChangeHandler(ps portssvc.ParameterChangeSvcFacade) *parameterChangeHandler {
	return &parameterChangeHandler{parameterChangeService: ps}
}

// registerParameterChangeRoutes registers routes for parameter change documents.
func registerParameterChangeRoutes(rg *gin.RouterGroup, parameterChangeService portssvc.ParameterChangeSvcFacade) {
	h := newParameterChangeHandler(parameterChangeService)

	changes := rg.Group("/parameter-changes")
	{
		changes.POST("", h.createParameterChange)
		changes.GET("/unposted", h.listUnpostedParameterChanges)
		changes.GET("/:changeID", h.getParameterChange)
		changes.POST("/:changeID/post", h.postParameterChange)
	}

	rg.GET("/assets/:assetID/parameter-changes", h.listParameterChangesByAsset)
}

// createParameterChange godoc
// @Summary Create a parameter change document
// @Description Snapshots the asset's current parameters as the old values
// @Tags parameter-changes
// @Accept json
// @Produce json
// @Param change body dto.CreateParameterChangeRequest true "Change details"
// @Success 201 {object} dto.ParameterChangeResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /parameter-changes [post]
func (h *parameterChangeHandler) createParameterChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateParameterChangeRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	change, err := h.parameterChangeService.CreateParameterChange(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create parameter change document")
		return
	}

	logger.Info("Parameter change document created",
		slog.String("change_id", change.ChangeID), slog.String("change_type", string(change.ChangeType)))
	c.JSON(http.StatusCreated, dto.ToParameterChangeResponse(change))
}

// getParameterChange godoc
// @Summary Get a parameter change document by ID
// @Tags parameter-changes
// @Produce json
// @Param changeID path string true "Parameter change ID"
// @Success 200 {object} dto.ParameterChangeResponse
// @Failure 404 {object} map[string]string "Parameter change not found"
// @Router /parameter-changes/{changeID} [get]
func (h *parameterChangeHandler) getParameterChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	change, err := h.parameterChangeService.GetParameterChangeByID(c.Request.Context(), c.Param("changeID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve parameter change document")
		return
	}

	c.JSON(http.StatusOK, dto.ToParameterChangeResponse(change))
}

// listParameterChangesByAsset godoc
// @Summary List parameter change documents for an asset
// @Tags parameter-changes
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.ParameterChangeResponse
// @Router /assets/{assetID}/parameter-changes [get]
func (h *parameterChangeHandler) listParameterChangesByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.parameterChangeService.ListParameterChangesByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list parameter change documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToParameterChangeResponses(items))
}

// listUnpostedParameterChanges godoc
// @Summary List parameter change documents awaiting posting
// @Tags parameter-changes
// @Produce json
// @Success 200 {array} dto.ParameterChangeResponse
// @Router /parameter-changes/unposted [get]
func (h *parameterChangeHandler) listUnpostedParameterChanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.parameterChangeService.ListUnpostedParameterChanges(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unposted parameter changes")
		return
	}

	c.JSON(http.StatusOK, dto.ToParameterChangeResponses(items))
}

// postParameterChange godoc
// @Summary Post a parameter change document
// @Description Applies the reassessment to the asset; impairments and revaluations also write a journal entry
// @Tags parameter-changes
// @Produce json
// @Param changeID path string true "Parameter change ID"
// @Success 200 {object} dto.ParameterChangeResponse
// @Failure 400 {object} map[string]string "Impairment below salvage or account missing"
// @Failure 404 {object} map[string]string "Parameter change not found"
// @Failure 409 {object} map[string]string "Parameter change already posted"
// @Router /parameter-changes/{changeID}/post [post]
func (h *parameterChangeHandler) postParameterChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeID := c.Param("changeID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	change, err := h.parameterChangeService.PostParameterChange(c.Request.Context(), changeID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post parameter change document")
		return
	}

	logger.Info("Parameter change document posted",
		slog.String("change_id", changeID), slog.String("asset_id", change.AssetID))
	c.JSON(http.StatusOK, dto.ToParameterChangeResponse(change))
}
