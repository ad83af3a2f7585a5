package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateParameterChangeRequest creates a reassessment document. The fields
// consulted depend on changeType: adjustmentAmount for IMPAIRMENT and
// REVALUATION, newUsefulLifeMonths for USEFUL_LIFE_CHANGE, newSalvageValue for
// SALVAGE_VALUE_CHANGE.
type CreateParameterChangeRequest struct {
	ChangeNumber        string                     `json:"changeNumber" binding:"required"`
	AssetID             string                     `json:"assetID" binding:"required"`
	ChangeDate          time.Time                  `json:"changeDate" binding:"required"`
	ChangeType          domain.ParameterChangeType `json:"changeType" binding:"required,oneof=IMPAIRMENT REVALUATION USEFUL_LIFE_CHANGE SALVAGE_VALUE_CHANGE"`
	Reason              string                     `json:"reason"`
	AdjustmentAmount    decimal.Decimal            `json:"adjustmentAmount"`
	NewUsefulLifeMonths int                        `json:"newUsefulLifeMonths"`
	NewSalvageValue     decimal.Decimal            `json:"newSalvageValue"`
}

// ParameterChangeResponse is the API representation of a parameter change.
type ParameterChangeResponse struct {
	ChangeID     string                     `json:"changeID"`
	ChangeNumber string                     `json:"changeNumber"`
	AssetID      string                     `json:"assetID"`
	ChangeDate   time.Time                  `json:"changeDate"`
	ChangeType   domain.ParameterChangeType `json:"changeType"`
	Reason       string                     `json:"reason,omitempty"`

	OldGrossCost               decimal.Decimal `json:"oldGrossCost"`
	OldSalvageValue            decimal.Decimal `json:"oldSalvageValue"`
	OldUsefulLifeMonths        int             `json:"oldUsefulLifeMonths,omitempty"`
	OldAccumulatedDepreciation decimal.Decimal `json:"oldAccumulatedDepreciation"`

	AdjustmentAmount    decimal.Decimal `json:"adjustmentAmount"`
	NewUsefulLifeMonths int             `json:"newUsefulLifeMonths,omitempty"`
	NewSalvageValue     decimal.Decimal `json:"newSalvageValue"`

	IsPosted       bool       `json:"isPosted"`
	PostedDate     *time.Time `json:"postedDate,omitempty"`
	JournalEntryID string     `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToParameterChangeResponse converts a domain ParameterChange to its API
// representation.
func ToParameterChangeResponse(pc *domain.ParameterChange) ParameterChangeResponse {
	return ParameterChangeResponse{
		ChangeID:     pc.ChangeID,
		ChangeNumber: pc.ChangeNumber,
		AssetID:      pc.AssetID,
		ChangeDate:   pc.ChangeDate,
		ChangeType:   pc.ChangeType,
		Reason:       pc.Reason,

		OldGrossCost:               pc.OldGrossCost,
		OldSalvageValue:            pc.OldSalvageValue,
		OldUsefulLifeMonths:        pc.OldUsefulLifeMonths,
		OldAccumulatedDepreciation: pc.OldAccumulatedDepreciation,

		AdjustmentAmount:    pc.AdjustmentAmount,
		NewUsefulLifeMonths: pc.NewUsefulLifeMonths,
		NewSalvageValue:     pc.NewSalvageValue,

		IsPosted:       pc.IsPosted,
		PostedDate:     pc.PostedDate,
		JournalEntryID: pc.JournalEntryID,
		CreatedAt:      pc.CreatedAt,
	}
}

// ToParameterChangeResponses converts a slice of domain parameter changes.
func ToParameterChangeResponses(items []domain.ParameterChange) []ParameterChangeResponse {
	out := make([]ParameterChangeResponse, len(items))
	for i := range items {
		out[i] = ToParameterChangeResponse(&items[i])
	}
	return out
}
