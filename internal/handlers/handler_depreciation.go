package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// periodLayout is the path format for depreciation periods, e.g. 2026-03.
const periodLayout = "2006-01"

// depreciationHandler handles HTTP requests for depreciation records and the
// monthly batch run.
type depreciationHandler struct {
	depreciationService portssvc.DepreciationSvcFacade
}

func newDepreciationHandler(ds portssvc.DepreciationSvcFacade) *depreciationHandler {
	return &depreciationHandler{depreciationService: ds}
}

// registerDepreciationRoutes registers routes for depreciation records.
func registerDepreciationRoutes(rg *gin.RouterGroup, depreciationService portssvc.DepreciationSvcFacade) {
	h := newDepreciationHandler(depreciationService)

	depreciation := rg.Group("/depreciation")
	{
		depreciation.POST("/calculate", h.calculateDepreciation)
		depreciation.POST("/run-monthly", h.runMonthlyDepreciation)
		depreciation.GET("/unposted", h.listUnpostedDepreciation)
		depreciation.GET("/period/:period", h.listDepreciationByPeriod)
		depreciation.GET("/:depreciationID", h.getDepreciation)
		depreciation.POST("/:depreciationID/post", h.postDepreciation)
	}

	rg.GET("/assets/:assetID/depreciation", h.listDepreciationByAsset)
}

// calculateDepreciation godoc
// @Summary Calculate depreciation for one asset and period
// @Description Persists the resulting record and rolls the charge into the asset balances
// @Tags depreciation
// @Accept json
// @Produce json
// @Param request body dto.CalculateDepreciationRequest true "Asset and period"
// @Success 201 {object} dto.DepreciationResponse
// @Failure 400 {object} map[string]string "Asset not depreciable or period invalid"
// @Failure 409 {object} map[string]string "Period already depreciated"
// @Router /depreciation/calculate [post]
func (h *depreciationHandler) calculateDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CalculateDepreciationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to calculate depreciation",
		slog.String("asset_id", req.AssetID), slog.Time("period", req.Period))

	record, err := h.depreciationService.CalculateDepreciation(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to calculate depreciation")
		return
	}

	logger.Info("Depreciation calculated",
		slog.String("depreciation_id", record.DepreciationID),
		slog.String("amount", record.DepreciationAmount.String()))
	c.JSON(http.StatusCreated, dto.ToDepreciationResponse(record))
}

// runMonthlyDepreciation godoc
// @Summary Run the monthly depreciation batch
// @Description Depreciates every eligible asset for the period. Individual failures are reported, not fatal.
// @Tags depreciation
// @Accept json
// @Produce json
// @Param request body dto.BatchDepreciationRequest true "Period to run"
// @Success 200 {object} dto.BatchDepreciationResponse
// @Router /depreciation/run-monthly [post]
func (h *depreciationHandler) runMonthlyDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BatchDepreciationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to run monthly depreciation", slog.Time("period", req.Period))

	result, err := h.depreciationService.RunMonthlyDepreciation(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to run monthly depreciation")
		return
	}

	logger.Info("Monthly depreciation run finished",
		slog.Int("succeeded", result.SuccessCount), slog.Int("failed", result.FailureCount))
	c.JSON(http.StatusOK, result)
}

// getDepreciation godoc
// @Summary Get a depreciation record by ID
// @Tags depreciation
// @Produce json
// @Param depreciationID path string true "Depreciation record ID"
// @Success 200 {object} dto.DepreciationResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Router /depreciation/{depreciationID} [get]
func (h *depreciationHandler) getDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	record, err := h.depreciationService.GetDepreciationByID(c.Request.Context(), c.Param("depreciationID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve depreciation record")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationResponse(record))
}

// listDepreciationByAsset godoc
// @Summary List the depreciation history of an asset
// @Tags depreciation
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.DepreciationResponse
// @Router /assets/{assetID}/depreciation [get]
func (h *depreciationHandler) listDepreciationByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.depreciationService.ListDepreciationByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list depreciation records")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationResponses(records))
}

// listDepreciationByPeriod godoc
// @Summary List all depreciation records for a period
// @Tags depreciation
// @Produce json
// @Param period path string true "Period in YYYY-MM format"
// @Success 200 {array} dto.DepreciationResponse
// @Failure 400 {object} map[string]string "Malformed period"
// @Router /depreciation/period/{period} [get]
func (h *depreciationHandler) listDepreciationByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := time.Parse(periodLayout, c.Param("period"))
	if err != nil {
		logger.Warn("Malformed depreciation period", slog.String("period", c.Param("period")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Period must be in YYYY-MM format"})
		return
	}

	records, err := h.depreciationService.ListDepreciationByPeriod(c.Request.Context(), period)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list depreciation records")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationResponses(records))
}

// listUnpostedDepreciation godoc
// @Summary List calculated depreciation records awaiting posting
// @Tags depreciation
// @Produce json
// @Success 200 {array} dto.DepreciationResponse
// @Router /depreciation/unposted [get]
func (h *depreciationHandler) listUnpostedDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.depreciationService.ListUnpostedDepreciation(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unposted depreciation")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationResponses(records))
}

// postDepreciation godoc
// @Summary Post a depreciation record to the general ledger
// @Tags depreciation
// @Produce json
// @Param depreciationID path string true "Depreciation record ID"
// @Success 200 {object} dto.DepreciationResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 409 {object} map[string]string "Record already posted"
// @Router /depreciation/{depreciationID}/post [post]
func (h *depreciationHandler) postDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	depreciationID := c.Param("depreciationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	record, err := h.depreciationService.PostDepreciation(c.Request.Context(), depreciationID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post depreciation record")
		return
	}

	logger.Info("Depreciation record posted",
		slog.String("depreciation_id", depreciationID),
		slog.String("journal_entry_id", record.JournalEntryID))
	c.JSON(http.StatusOK, dto.ToDepreciationResponse(record))
}
