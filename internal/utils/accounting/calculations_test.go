package accounting_test

import (
	"testing"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStraightLineMonthly(t *testing.T) {
	monthly, err := accounting.StraightLineMonthly(decimal.NewFromInt(12000), decimal.Zero, 12)
	require.NoError(t, err)
	assert.True(t, monthly.Equal(decimal.NewFromInt(1000)), "got %s", monthly)

	// 10000 / 3 months rounds half-up at 4dp
	monthly, err = accounting.StraightLineMonthly(decimal.NewFromInt(10000), decimal.Zero, 3)
	require.NoError(t, err)
	assert.Equal(t, "3333.3333", monthly.StringFixed(4))

	_, err = accounting.StraightLineMonthly(decimal.NewFromInt(12000), decimal.Zero, 0)
	assert.Error(t, err)
}

func TestUnitsOfProductionAmount(t *testing.T) {
	amount, err := accounting.UnitsOfProductionAmount(decimal.NewFromInt(10000), decimal.Zero, 1000, 250)
	require.NoError(t, err)
	assert.Equal(t, "2500.0000", amount.StringFixed(4))

	_, err = accounting.UnitsOfProductionAmount(decimal.NewFromInt(10000), decimal.Zero, 0, 250)
	assert.Error(t, err)
}

func TestClampToSalvageFloor(t *testing.T) {
	// Amount would push NBV below salvage: clamp to the remaining headroom.
	clamped := accounting.ClampToSalvageFloor(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(1500), // current NBV
		decimal.NewFromInt(800),  // salvage
	)
	assert.True(t, clamped.Equal(decimal.NewFromInt(700)))

	// Amount within headroom passes through unchanged.
	unchanged := accounting.ClampToSalvageFloor(
		decimal.NewFromInt(500),
		decimal.NewFromInt(1500),
		decimal.NewFromInt(800),
	)
	assert.True(t, unchanged.Equal(decimal.NewFromInt(500)))
}

func TestValidateJournalLines(t *testing.T) {
	balanced := []domain.JournalLine{
		{AccountID: "a", Side: domain.Debit, Amount: decimal.NewFromInt(100)},
		{AccountID: "b", Side: domain.Credit, Amount: decimal.NewFromInt(100)},
	}
	assert.NoError(t, accounting.ValidateJournalLines(balanced))

	unbalanced := []domain.JournalLine{
		{AccountID: "a", Side: domain.Debit, Amount: decimal.NewFromInt(100)},
		{AccountID: "b", Side: domain.Credit, Amount: decimal.NewFromInt(90)},
	}
	assert.Error(t, accounting.ValidateJournalLines(unbalanced))

	assert.Error(t, accounting.ValidateJournalLines(balanced[:1]))

	negative := []domain.JournalLine{
		{AccountID: "a", Side: domain.Debit, Amount: decimal.NewFromInt(-100)},
		{AccountID: "b", Side: domain.Credit, Amount: decimal.NewFromInt(-100)},
	}
	assert.Error(t, accounting.ValidateJournalLines(negative))
}
