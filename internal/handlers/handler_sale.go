package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// saleHandler handles HTTP requests for the two-step disposal by sale:
// preparation documents reclassify the asset as held for sale, sale documents
// dispose of it.
type saleHandler struct {
	preparationService portssvc.SalePreparationSvcFacade
	saleService        portssvc.SaleSvcFacade
}

func newSaleHandler(ps portssvc.SalePreparationSvcFacade, ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{preparationService: ps, saleService: ss}
}

// registerSaleRoutes registers routes for sale preparations and sales.
func registerSaleRoutes(rg *gin.RouterGroup, preparationService portssvc.SalePreparationSvcFacade, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(preparationService, saleService)

	preparations := rg.Group("/sale-preparations")
	{
		preparations.POST("", h.createSalePreparation)
		preparations.GET("/pending", h.listPendingSales)
		preparations.GET("/:preparationID", h.getSalePreparation)
		preparations.POST("/:preparationID/post", h.postSalePreparation)
		preparations.POST("/:preparationID/cancel", h.cancelSalePreparation)
	}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("/unposted", h.listUnpostedSales)
		sales.GET("/:saleID", h.getSale)
		sales.POST("/:saleID/post", h.postSale)
	}

	rg.GET("/assets/:assetID/sale-preparations", h.listSalePreparationsByAsset)
	rg.GET("/assets/:assetID/sales", h.listSalesByAsset)
}

// createSalePreparation godoc
// @Summary Create a sale preparation document
// @Tags sales
// @Accept json
// @Produce json
// @Param preparation body dto.CreateSalePreparationRequest true "Preparation details"
// @Success 201 {object} dto.SalePreparationResponse
// @Failure 400 {object} map[string]string "Asset not active"
// @Router /sale-preparations [post]
func (h *saleHandler) createSalePreparation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSalePreparationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	prep, err := h.preparationService.CreateSalePreparation(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create sale preparation")
		return
	}

	logger.Info("Sale preparation created", slog.String("preparation_id", prep.PreparationID))
	c.JSON(http.StatusCreated, dto.ToSalePreparationResponse(prep))
}

// getSalePreparation godoc
// @Summary Get a sale preparation by ID
// @Tags sales
// @Produce json
// @Param preparationID path string true "Preparation ID"
// @Success 200 {object} dto.SalePreparationResponse
// @Failure 404 {object} map[string]string "Preparation not found"
// @Router /sale-preparations/{preparationID} [get]
func (h *saleHandler) getSalePreparation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	prep, err := h.preparationService.GetSalePreparationByID(c.Request.Context(), c.Param("preparationID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve sale preparation")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalePreparationResponse(prep))
}

// listSalePreparationsByAsset godoc
// @Summary List sale preparations for an asset
// @Tags sales
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.SalePreparationResponse
// @Router /assets/{assetID}/sale-preparations [get]
func (h *saleHandler) listSalePreparationsByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.preparationService.ListSalePreparationsByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list sale preparations")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalePreparationResponses(items))
}

// listPendingSales godoc
// @Summary List posted preparations without a linked sale
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SalePreparationResponse
// @Router /sale-preparations/pending [get]
func (h *saleHandler) listPendingSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.preparationService.ListPendingSales(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list pending sales")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalePreparationResponses(items))
}

// postSalePreparation godoc
// @Summary Post a sale preparation
// @Description Reclassifies the asset as held for sale and writes the journal entry
// @Tags sales
// @Produce json
// @Param preparationID path string true "Preparation ID"
// @Success 200 {object} dto.SalePreparationResponse
// @Failure 404 {object} map[string]string "Preparation not found"
// @Failure 409 {object} map[string]string "Preparation already posted"
// @Router /sale-preparations/{preparationID}/post [post]
func (h *saleHandler) postSalePreparation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	preparationID := c.Param("preparationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	prep, err := h.preparationService.PostSalePreparation(c.Request.Context(), preparationID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post sale preparation")
		return
	}

	logger.Info("Sale preparation posted",
		slog.String("preparation_id", preparationID), slog.String("asset_id", prep.AssetID))
	c.JSON(http.StatusOK, dto.ToSalePreparationResponse(prep))
}

// cancelSalePreparation godoc
// @Summary Cancel an unsold sale preparation
// @Description Returns the asset to active service
// @Tags sales
// @Produce json
// @Param preparationID path string true "Preparation ID"
// @Success 200 {object} dto.SalePreparationResponse
// @Failure 404 {object} map[string]string "Preparation not found"
// @Failure 409 {object} map[string]string "Preparation already sold"
// @Router /sale-preparations/{preparationID}/cancel [post]
func (h *saleHandler) cancelSalePreparation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	preparationID := c.Param("preparationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	prep, err := h.preparationService.CancelSalePreparation(c.Request.Context(), preparationID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to cancel sale preparation")
		return
	}

	logger.Info("Sale preparation cancelled",
		slog.String("preparation_id", preparationID), slog.String("asset_id", prep.AssetID))
	c.JSON(http.StatusOK, dto.ToSalePreparationResponse(prep))
}

// createSale godoc
// @Summary Create a sale document for a held-for-sale asset
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Asset not held for sale or price negative"
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create sale document")
		return
	}

	logger.Info("Sale document created", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale document by ID
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve sale document")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSalesByAsset godoc
// @Summary List sale documents for an asset
// @Tags sales
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {array} dto.SaleResponse
// @Router /assets/{assetID}/sales [get]
func (h *saleHandler) listSalesByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.saleService.ListSalesByAsset(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list sale documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(items))
}

// listUnpostedSales godoc
// @Summary List sale documents awaiting posting
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Router /sales/unposted [get]
func (h *saleHandler) listUnpostedSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.saleService.ListUnpostedSales(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list unposted sales")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(items))
}

// postSale godoc
// @Summary Post a sale document
// @Description Disposes of the asset and records the gain or loss in the GL
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 409 {object} map[string]string "Sale already posted"
// @Router /sales/{saleID}/post [post]
func (h *saleHandler) postSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sale, err := h.saleService.PostSale(c.Request.Context(), saleID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to post sale document")
		return
	}

	logger.Info("Sale document posted",
		slog.String("sale_id", saleID), slog.String("asset_id", sale.AssetID))
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}
