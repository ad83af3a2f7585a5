package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// improvementHandler handles HTTP requests for capital improvement documents.
type improvementHandler struct {
	improvementService portssvc.CapitalImprovementSvcFacade
}

func newImprovementHandler(is portssvc.CapitalImprovementSvcFacade) *improvementHandler {
	return &improvementHandler{improvementService: is}
}

// registerImprovementRoutes registers routes for capital improvements.
func registerImprovementRoutes(rg *gin.RouterGroup, improvementService portssvc.CapitalImprovementSvcFacade) {
	h := newImprovementHandler(improvementService)

	improvements := rg.Group("/improvements")
	{
		improvements.POST("", h.createImprovement)
		improvements.GET("/unposted", h.listUnpostedImprovements)
		improvements.GET("/:improvementID", h.getImprovement)
		improvements.POST("/:improvementID/post", h.postImprovement)
	}

	rg.GET("/assets/:assetID/improvements", h.listImprovementsByAsset)
}

// createImprovement godoc
// @Summary Create a capital improvement document
// @Tags improvements
// @Accept json
// @Produce json
// @Param improvement body dto.CreateImprovementRequest true "Improvement details"
// @Success 201 {object} dto.ImprovementResponse
// @Failure 400 {object} map[string]string "Cost not positive or asset inactive"
// @Router /improvements [post]
func (h *improvementHandler) createImprovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateImprovementRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	improvement, err := h.improvementService.CreateImprovement(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create improvement document")
		return
	}

	logger.Info("Improvement document created", slog.String("improvement_id", improvement.ImprovementID))
	c.JSON(http.StatusCreated, dto.ToImprovementResponse(improvement))
}

// getImprovement godoc
// @Summary Get an improvement document by ID
// @Tags improvements
// @Produce json
// @Param improvementID path string true "Improvement ID"
// @Success 200 {object} dto.ImprovementResponse
// @Failure 404 {object} map[string]string "Improvement not found"
// @Router /improvements/{improvementID} [get]
func (h *improvementHandler) getImprovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	improvement, err := h.improvementService.GetImprovementByID(c.Request.Context(), c.Param("improvementID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve improvement document")
		return
	}

	c.JSON(http.StatusOK, dto.ToImprovementResponse(improvement))
}

// listImprovementsByAsset godoc
// @Summary List improvement documents for an asset
// @Tags improvements
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.ImprovementResponse
// @Router /assets/{assetID}/improvements [get]
func (h *improvementHandler) listImprovementsByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.improvementService.ListImprovementsByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list improvement documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToImprovementResponses(items))
}

// listUnpostedImprovements godoc
// @Summary List improvement documents awaiting posting
// @Tags improvements
// @Produce json
// @Success 200 {array} dto.ImprovementResponse
// @Router /improvements/unposted [get]
func (h *improvementHandler) listUnpostedImprovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.improvementService.ListUnpostedImprovements(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unposted improvements")
		return
	}

	c.JSON(http.StatusOK, dto.ToImprovementResponses(items))
}

// postImprovement godoc
// @Summary Post an improvement document
// @Description Capitalizes the cost onto the asset and writes the journal entry
// @Tags improvements
// @Produce json
// @Param improvementID path string true "Improvement ID"
// @Success 200 {object} dto.ImprovementResponse
// @Failure 404 {object} map[string]string "Improvement not found"
// @Failure 409 {object} map[string]string "Improvement already posted"
// @Router /improvements/{improvementID}/post [post]
func (h *improvementHandler) postImprovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	improvementID := c.Param("improvementID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	improvement, err := h.improvementService.PostImprovement(c.Request.Context(), improvementID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post improvement document")
		return
	}

	logger.Info("Improvement document posted",
		slog.String("improvement_id", improvementID), slog.String("asset_id", improvement.AssetID))
	c.JSON(http.StatusOK, dto.ToImprovementResponse(improvement))
}
