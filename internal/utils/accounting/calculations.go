package accounting

import (
	"fmt"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// moneyScale is the scale used for all depreciation arithmetic. Rounding is
// half-up, matching the 19,4 decimal columns in the schema.
const moneyScale = 4

// StraightLineMonthly computes the monthly straight-line depreciation amount:
// (gross cost - salvage value) / useful life in months, rounded half-up to 4dp.
func StraightLineMonthly(grossCost, salvageValue decimal.Decimal, usefulLifeMonths int) (decimal.Decimal, error) {
	if usefulLifeMonths <= 0 {
		return decimal.Zero, fmt.Errorf("useful life in months must be positive, got %d", usefulLifeMonths)
	}
	depreciable := grossCost.Sub(salvageValue)
	return depreciable.DivRound(decimal.NewFromInt(int64(usefulLifeMonths)), moneyScale), nil
}

// UnitsOfProductionAmount computes depreciation for a period under the
// units-of-production method: the per-unit rate (depreciable amount / total
// units, 4dp half-up) multiplied by the units used in the period.
func UnitsOfProductionAmount(grossCost, salvageValue decimal.Decimal, totalUnits, unitsUsed int) (decimal.Decimal, error) {
	if totalUnits <= 0 {
		return decimal.Zero, fmt.Errorf("total units must be positive, got %d", totalUnits)
	}
	depreciable := grossCost.Sub(salvageValue)
	perUnit := depreciable.DivRound(decimal.NewFromInt(int64(totalUnits)), moneyScale)
	return perUnit.Mul(decimal.NewFromInt(int64(unitsUsed))), nil
}

// ClampToSalvageFloor caps a depreciation amount so that applying it never
// drives net book value below the salvage value.
func ClampToSalvageFloor(amount, netBookValue, salvageValue decimal.Decimal) decimal.Decimal {
	maxDepreciation := netBookValue.Sub(salvageValue)
	if amount.GreaterThan(maxDepreciation) {
		return maxDepreciation
	}
	return amount
}

// ValidateJournalLines checks that a set of journal lines forms a postable
// entry: at least two lines, all amounts positive, and total debits equal
// total credits.
func ValidateJournalLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal entry must have at least two lines, got %d", len(lines))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for i, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("journal line %d amount must be positive, got %s", i, line.Amount.String())
		}
		switch line.Side {
		case domain.Debit:
			debits = debits.Add(line.Amount)
		case domain.Credit:
			credits = credits.Add(line.Amount)
		default:
			return fmt.Errorf("journal line %d has unknown side %q", i, line.Side)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal lines do not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
