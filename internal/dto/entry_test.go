package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

func TestToEntryResponse(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	entry := &domain.AssetEntry{
		EntryID:               "entry-1",
		EntryNumber:           "ENT-0001",
		AssetID:               "asset-1",
		EntryDate:             time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		InitialCost:           decimal.NewFromInt(36000),
		SalvageValue:          decimal.NewFromInt(6000),
		DepreciationMethod:    domain.StraightLine,
		UsefulLifeMonths:      60,
		DepreciationStartDate: start,
	}

	resp := dto.ToEntryResponse(entry)

	assert.Equal(t, "entry-1", resp.EntryID)
	assert.Equal(t, "ENT-0001", resp.EntryNumber)
	assert.Equal(t, start, resp.DepreciationStartDate)
	assert.True(t, resp.InitialCost.Equal(decimal.NewFromInt(36000)))
	assert.False(t, resp.IsPosted)
}
