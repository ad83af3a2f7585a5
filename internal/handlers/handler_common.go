package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/services"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

// conflictErrors map to 409: the request is well-formed but collides with the
// current state of a document or period.
var conflictErrors = []error{
	apperrors.ErrDuplicate,
	apperrors.ErrConflict,
	services.ErrAlreadyPosted,
	services.ErrDuplicatePeriod,
	services.ErrDuplicateUsagePeriod,
	services.ErrConservationExists,
	services.ErrPreparationSold,
	services.ErrUsageAlreadyProcessed,
}

// validationErrors map to 400: the request violates a business rule.
var validationErrors = []error{
	apperrors.ErrValidation,
	services.ErrAccountInactive,
	services.ErrAssetNotDeletable,
	services.ErrAssetNotDepreciable,
	services.ErrAssetFullyDepreciated,
	services.ErrDepreciationNotSetUp,
	services.ErrPeriodBeforeStart,
	services.ErrPeriodNotAfterLast,
	services.ErrUsageNotRecorded,
	services.ErrUsageNotProcessed,
	services.ErrUsageAssetNotActive,
	services.ErrEntryCostNotPositive,
	services.ErrEntrySalvageInvalid,
	services.ErrEntryLifeMissing,
	services.ErrEntryUnitsMissing,
	services.ErrEntryStartDateMissing,
	services.ErrAcquisitionAcctMissing,
	services.ErrJournalDescriptionMissing,
	services.ErrNotUnitsOfProduction,
	services.ErrUsageExceedsRemaining,
	services.ErrImprovementCostNotPositive,
	services.ErrImprovementAcctMissing,
	services.ErrConservationNotPosted,
	services.ErrConservationCancelled,
	services.ErrConservationDateTooEarly,
	services.ErrImpairmentNotNegative,
	services.ErrRevaluationNotPositive,
	services.ErrImpairmentBelowSalvage,
	services.ErrRevaluationAcctMissing,
	services.ErrHeldForSaleAcctMissing,
	services.ErrPreparationNotPosted,
	services.ErrPreparationInvalid,
	services.ErrSalePriceNegative,
	services.ErrSaleRequiresHFS,
}

// handleServiceError translates a service error into an HTTP response.
// failMsg is the generic message returned for unexpected errors so internals
// never leak to the client.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			logger.Warn("Conflicting request", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			logger.Warn("Validation error", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	logger.Error(failMsg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
}

// bindJSON binds the request body and writes the 400 response on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// requireUserID extracts the acting user from the request context and writes
// the 401 response when it is absent.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
