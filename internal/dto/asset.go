package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest carries the data to register a new fixed asset.
// Financial setup arrives later through an entry document; a new asset starts
// with zero balances in status NEW (or CONSTRUCTION_IN_PROGRESS).
type CreateAssetRequest struct {
	AssetNumber     string             `json:"assetNumber" binding:"required"`
	Description     string             `json:"description" binding:"required"`
	ClassID         string             `json:"classID" binding:"required"`
	Category        string             `json:"category"`
	Location        string             `json:"location"`
	Department      string             `json:"department"`
	AcquisitionDate *time.Time         `json:"acquisitionDate"`
	Status          domain.AssetStatus `json:"status" binding:"omitempty,oneof=NEW CONSTRUCTION_IN_PROGRESS"`

	AssetAccountID                  string `json:"assetAccountID" binding:"required"`
	DepreciationAccountID           string `json:"depreciationAccountID" binding:"required"`
	ExpenseAccountID                string `json:"expenseAccountID" binding:"required"`
	HeldForSaleAccountID            string `json:"heldForSaleAccountID"`
	ConstructionInProgressAccountID string `json:"constructionInProgressAccountID"`
	CapitalImprovementsAccountID    string `json:"capitalImprovementsAccountID"`
}

// UpdateAssetRequest updates descriptive fields only. Financial fields change
// exclusively through posted documents.
type UpdateAssetRequest struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	Department  *string `json:"department"`
}

// ChangeStatusRequest moves an asset through the lifecycle state machine.
type ChangeStatusRequest struct {
	Status domain.AssetStatus `json:"status" binding:"required"`
}

// ListAssetsParams holds pagination parameters for asset listing.
type ListAssetsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// AssetResponse is the API representation of a fixed asset, including the
// derived balances.
type AssetResponse struct {
	AssetID                 string                    `json:"assetID"`
	AssetNumber             string                    `json:"assetNumber"`
	Description             string                    `json:"description"`
	ClassID                 string                    `json:"classID"`
	Category                string                    `json:"category,omitempty"`
	Location                string                    `json:"location,omitempty"`
	Department              string                    `json:"department,omitempty"`
	InitialCost             decimal.Decimal           `json:"initialCost"`
	CostAdjustment          decimal.Decimal           `json:"costAdjustment"`
	GrossCost               decimal.Decimal           `json:"grossCost"`
	AccumulatedDepreciation decimal.Decimal           `json:"accumulatedDepreciation"`
	NetBookValue            decimal.Decimal           `json:"netBookValue"`
	SalvageValue            decimal.Decimal           `json:"salvageValue"`
	DepreciationMethod      domain.DepreciationMethod `json:"depreciationMethod,omitempty"`
	UsefulLifeMonths        int                       `json:"usefulLifeMonths,omitempty"`
	TotalUnits              int                       `json:"totalUnits,omitempty"`
	RemainingUnits          int                       `json:"remainingUnits,omitempty"`
	DepreciationStartDate   *time.Time                `json:"depreciationStartDate,omitempty"`
	LastDepreciationDate    *time.Time                `json:"lastDepreciationDate,omitempty"`
	NextDepreciationDate    *time.Time                `json:"nextDepreciationDate,omitempty"`
	GLAccounts              domain.GLAccountRefs      `json:"glAccounts"`
	AcquisitionDate         *time.Time                `json:"acquisitionDate,omitempty"`
	ActivationDate          *time.Time                `json:"activationDate,omitempty"`
	DisposalDate            *time.Time                `json:"disposalDate,omitempty"`
	Status                  domain.AssetStatus        `json:"status"`
	CreatedAt               time.Time                 `json:"createdAt"`
}

// ListAssetsResponse is a paginated page of assets.
type ListAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// AssetSummaryResponse aggregates balances across all assets.
type AssetSummaryResponse struct {
	TotalAssets             int             `json:"totalAssets"`
	TotalGrossCost          decimal.Decimal `json:"totalGrossCost"`
	TotalAccumulatedDepr    decimal.Decimal `json:"totalAccumulatedDepreciation"`
	TotalNetBookValue       decimal.Decimal `json:"totalNetBookValue"`
	CountByStatus           map[domain.AssetStatus]int `json:"countByStatus"`
}

// ToAssetResponse converts a domain FixedAsset to its API representation.
func ToAssetResponse(a *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:                 a.AssetID,
		AssetNumber:             a.AssetNumber,
		Description:             a.Description,
		ClassID:                 a.ClassID,
		Category:                a.Category,
		Location:                a.Location,
		Department:              a.Department,
		InitialCost:             a.InitialCost,
		CostAdjustment:          a.CostAdjustment,
		GrossCost:               a.GrossCost(),
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		NetBookValue:            a.NetBookValue(),
		SalvageValue:            a.SalvageValue,
		DepreciationMethod:      a.DepreciationMethod,
		UsefulLifeMonths:        a.UsefulLifeMonths,
		TotalUnits:              a.TotalUnits,
		RemainingUnits:          a.RemainingUnits,
		DepreciationStartDate:   a.DepreciationStartDate,
		LastDepreciationDate:    a.LastDepreciationDate,
		NextDepreciationDate:    a.NextDepreciationDate,
		GLAccounts:              a.GLAccounts,
		AcquisitionDate:         a.AcquisitionDate,
		ActivationDate:          a.ActivationDate,
		DisposalDate:            a.DisposalDate,
		Status:                  a.Status,
		CreatedAt:               a.CreatedAt,
	}
}

// ToAssetResponses converts a slice of domain assets.
func ToAssetResponses(assets []domain.FixedAsset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i := range assets {
		out[i] = ToAssetResponse(&assets[i])
	}
	return out
}
