package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// conservationHandler handles HTTP requests for conservation documents, the
// temporary suspension of an asset's use and depreciation.
type conservationHandler struct {
	conservationService portssvc.ConservationSvcFacade
}

func newConservationHandler(cs portssvc.ConservationSvcFacade) *conservationHandler {
	return &conservationHandler{conservationService: cs}
}

// registerConservationRoutes registers routes for conservation documents.
func registerConservationRoutes(rg *gin.RouterGroup, conservationService portssvc.ConservationSvcFacade) {
	h := newConservationHandler(conservationService)

	conservations := rg.Group("/conservations")
	{
		conservations.POST("", h.startConservation)
		conservations.GET("/active", h.listActiveConservations)
		conservations.GET("/unposted", h.listUnpostedConservations)
		conservations.GET("/:conservationID", h.getConservation)
		conservations.POST("/:conservationID/post", h.postConservation)
		conservations.POST("/:conservationID/cancel", h.cancelConservation)
	}

	rg.GET("/assets/:assetID/conservations", h.listConservationsByAsset)
}

// startConservation godoc
// @Summary Create a conservation document
// @Description Snapshots the asset's balances; the asset is suspended when the document posts
// @Tags conservations
// @Accept json
// @Produce json
// @Param conservation body dto.StartConservationRequest true "Conservation details"
// @Success 201 {object} dto.ConservationResponse
// @Failure 400 {object} map[string]string "Asset not active"
// @Failure 409 {object} map[string]string "Asset already under conservation"
// @Router /conservations [post]
func (h *conservationHandler) startConservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.StartConservationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	conservation, err := h.conservationService.StartConservation(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create conservation document")
		return
	}

	logger.Info("Conservation document created", slog.String("conservation_id", conservation.ConservationID))
	c.JSON(http.StatusCreated, dto.ToConservationResponse(conservation))
}

// getConservation godoc
// @Summary Get a conservation document by ID
// @Tags conservations
// @Produce json
// @Param conservationID path string true "Conservation ID"
// @Success 200 {object} dto.ConservationResponse
// @Failure 404 {object} map[string]string "Conservation not found"
// @Router /conservations/{conservationID} [get]
func (h *conservationHandler) getConservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	conservation, err := h.conservationService.GetConservationByID(c.Request.Context(), c.Param("conservationID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve conservation document")
		return
	}

	c.JSON(http.StatusOK, dto.ToConservationResponse(conservation))
}

// listConservationsByAsset godoc
// @Summary List conservation documents for an asset
// @Tags conservations
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.ConservationResponse
// @Router /assets/{assetID}/conservations [get]
func (h *conservationHandler) listConservationsByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.conservationService.ListConservationsByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list conservation documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToConservationResponses(items))
}

// listActiveConservations godoc
// @Summary List posted, non-cancelled conservations
// @Tags conservations
// @Produce json
// @Success 200 {array} dto.ConservationResponse
// @Router /conservations/active [get]
func (h *conservationHandler) listActiveConservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.conservationService.ListActiveConservations(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list active conservations")
		return
	}

	c.JSON(http.StatusOK, dto.ToConservationResponses(items))
}

// listUnpostedConservations godoc
// @Summary List conservation documents awaiting posting
// @Tags conservations
// @Produce json
// @Success 200 {array} dto.ConservationResponse
// @Router /conservations/unposted [get]
func (h *conservationHandler) listUnpostedConservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.conservationService.ListUnpostedConservations(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unposted conservations")
		return
	}

	c.JSON(http.StatusOK, dto.ToConservationResponses(items))
}

// postConservation godoc
// @Summary Post a conservation document
// @Description Suspends the asset; no journal entry is written since conservation has no GL effect
// @Tags conservations
// @Produce json
// @Param conservationID path string true "Conservation ID"
// @Success 200 {object} dto.ConservationResponse
// @Failure 404 {object} map[string]string "Conservation not found"
// @Failure 409 {object} map[string]string "Conservation already posted"
// @Router /conservations/{conservationID}/post [post]
func (h *conservationHandler) postConservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conservationID := c.Param("conservationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	conservation, err := h.conservationService.PostConservation(c.Request.Context(), conservationID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post conservation document")
		return
	}

	logger.Info("Conservation document posted",
		slog.String("conservation_id", conservationID), slog.String("asset_id", conservation.AssetID))
	c.JSON(http.StatusOK, dto.ToConservationResponse(conservation))
}

// cancelConservation godoc
// @Summary End a conservation and reactivate the asset
// @Tags conservations
// @Accept json
// @Produce json
// @Param conservationID path string true "Conservation ID"
// @Param cancellation body dto.CancelConservationRequest true "Cancellation details"
// @Success 200 {object} dto.ConservationResponse
// @Failure 400 {object} map[string]string "Cancellation date precedes conservation start"
// @Failure 404 {object} map[string]string "Conservation not found"
// @Router /conservations/{conservationID}/cancel [post]
func (h *conservationHandler) cancelConservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conservationID := c.Param("conservationID")

	var req dto.CancelConservationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	conservation, err := h.conservationService.CancelConservation(c.Request.Context(), conservationID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to cancel conservation document")
		return
	}

	logger.Info("Conservation document cancelled",
		slog.String("conservation_id", conservationID), slog.String("asset_id", conservation.AssetID))
	c.JSON(http.StatusOK, dto.ToConservationResponse(conservation))
}
