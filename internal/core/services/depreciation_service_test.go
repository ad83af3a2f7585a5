package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/core/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

type DepreciationServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockDepRepo     *MockDepreciationRepository
	mockAssetRepo   *MockAssetRepository
	mockUsageRepo   *MockUsageRepository
	mockJournalSvc  *MockJournalService
	depreciationSvc portssvc.DepreciationSvcFacade
}

func (suite *DepreciationServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockDepRepo = new(MockDepreciationRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockUsageRepo = new(MockUsageRepository)
	suite.mockJournalSvc = new(MockJournalService)
	suite.depreciationSvc = services.NewDepreciationService(suite.mockDepRepo, suite.mockAssetRepo, suite.mockUsageRepo, suite.mockJournalSvc)
}

// activeStraightLineAsset is a machine costing 12000 with no salvage value,
// depreciating 1000 per month over a year starting January 2026.
func activeStraightLineAsset() *domain.FixedAsset {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.FixedAsset{
		AssetID:                 "asset-1",
		AssetNumber:             "FA-0001",
		Description:             "CNC milling machine",
		ClassID:                 "class-machinery",
		InitialCost:             decimal.NewFromInt(12000),
		CostAdjustment:          decimal.Zero,
		AccumulatedDepreciation: decimal.Zero,
		SalvageValue:            decimal.Zero,
		DepreciationMethod:      domain.StraightLine,
		UsefulLifeMonths:        12,
		DepreciationStartDate:   &start,
		GLAccounts: domain.GLAccountRefs{
			AssetAccountID:        "acc-asset",
			DepreciationAccountID: "acc-accum",
			ExpenseAccountID:      "acc-expense",
		},
		Status: domain.StatusActive,
	}
}

// activeUnitsAsset is a press costing 10000 with no salvage value and a
// 1000-unit capacity.
func activeUnitsAsset() *domain.FixedAsset {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.FixedAsset{
		AssetID:                 "asset-2",
		AssetNumber:             "FA-0002",
		Description:             "Hydraulic press",
		ClassID:                 "class-machinery",
		InitialCost:             decimal.NewFromInt(10000),
		CostAdjustment:          decimal.Zero,
		AccumulatedDepreciation: decimal.Zero,
		SalvageValue:            decimal.Zero,
		DepreciationMethod:      domain.UnitsOfProduction,
		TotalUnits:              1000,
		RemainingUnits:          1000,
		DepreciationStartDate:   &start,
		GLAccounts: domain.GLAccountRefs{
			AssetAccountID:        "acc-asset",
			DepreciationAccountID: "acc-accum",
			ExpenseAccountID:      "acc-expense",
		},
		Status: domain.StatusActive,
	}
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_StraightLine() {
	asset := activeStraightLineAsset()
	period := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	normalized := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-1", normalized).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDepRepo.On("SaveDepreciationInTx", suite.ctx, nil, mock.AnythingOfType("domain.DepreciationRecord")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-1",
		Period:  period,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal("DEP-FA-0001-202603", record.DepreciationNumber)
	suite.Equal(normalized, record.Period)
	suite.True(record.DepreciationAmount.Equal(decimal.NewFromInt(1000)), "amount was %s", record.DepreciationAmount)
	suite.True(record.OpeningNetBookValue.Equal(decimal.NewFromInt(12000)))
	suite.True(record.ClosingAccumulatedDepreciation.Equal(decimal.NewFromInt(1000)))
	suite.True(record.ClosingNetBookValue.Equal(decimal.NewFromInt(11000)))

	suite.True(updated.AccumulatedDepreciation.Equal(decimal.NewFromInt(1000)))
	suite.Require().NotNil(updated.LastDepreciationDate)
	suite.Equal(normalized, *updated.LastDepreciationDate)
	suite.Require().NotNil(updated.NextDepreciationDate)
	suite.Equal(domain.EndOfNextMonth(normalized), *updated.NextDepreciationDate)
	suite.Equal(domain.StatusActive, updated.Status)

	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockDepRepo.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_FinalPeriodClampsToSalvageFloor() {
	asset := activeStraightLineAsset()
	asset.SalvageValue = decimal.NewFromInt(500)
	asset.AccumulatedDepreciation = decimal.NewFromInt(11200)
	last := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	asset.LastDepreciationDate = &last
	period := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-1", period).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDepRepo.On("SaveDepreciationInTx", suite.ctx, nil, mock.AnythingOfType("domain.DepreciationRecord")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-1",
		Period:  period,
	}, "user-1")

	// The full monthly charge would overshoot; only 300 remains above salvage.
	suite.Require().NoError(err)
	suite.True(record.DepreciationAmount.Equal(decimal.NewFromInt(300)), "amount was %s", record.DepreciationAmount)
	suite.True(record.ClosingNetBookValue.Equal(decimal.NewFromInt(500)))
	suite.Equal(domain.StatusFullyDepreciated, updated.Status)

	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockDepRepo.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_UnitsOfProduction() {
	asset := activeUnitsAsset()
	asset.RemainingUnits = 750
	period := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	processedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	usage := &domain.MonthlyUsage{
		UsageID:       "usage-1",
		AssetID:       "asset-2",
		Period:        period,
		UnitsUsed:     250,
		IsProcessed:   true,
		ProcessedDate: &processedAt,
	}

	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-2").Return(asset, nil).Once()
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-2", period).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUsageRepo.On("FindUsageByAssetAndPeriod", suite.ctx, "asset-2", period).Return(usage, nil).Once()
	suite.mockDepRepo.On("SaveDepreciationInTx", suite.ctx, nil, mock.AnythingOfType("domain.DepreciationRecord")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-2",
		Period:  period,
	}, "user-1")

	// 10000 over 1000 units at 250 units used. Unit consumption happened in
	// ProcessUsage, so remaining units stay at 750 here.
	suite.Require().NoError(err)
	suite.True(record.DepreciationAmount.Equal(decimal.NewFromInt(2500)), "amount was %s", record.DepreciationAmount)
	suite.Equal(750, updated.RemainingUnits)

	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockUsageRepo.AssertExpectations(suite.T())
	suite.mockUsageRepo.AssertNotCalled(suite.T(), "UpdateUsage", mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_UnprocessedUsageRejected() {
	asset := activeUnitsAsset()
	period := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	usage := &domain.MonthlyUsage{
		UsageID:   "usage-1",
		AssetID:   "asset-2",
		Period:    period,
		UnitsUsed: 250,
	}

	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-2").Return(asset, nil).Once()
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-2", period).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUsageRepo.On("FindUsageByAssetAndPeriod", suite.ctx, "asset-2", period).Return(usage, nil).Once()

	record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-2",
		Period:  period,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUsageNotProcessed)
	suite.Nil(record)
	suite.mockDepRepo.AssertNotCalled(suite.T(), "SaveDepreciationInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "UpdateAssetInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_FullScheduleRetiresAsset() {
	asset := activeStraightLineAsset()

	suite.mockAssetRepo.On("Begin", suite.ctx).Return(nil, nil)
	suite.mockAssetRepo.On("Commit", suite.ctx, nil).Return(nil)
	suite.mockAssetRepo.On("Rollback", suite.ctx, nil).Return(nil).Maybe()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil)
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-1", mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound)
	suite.mockDepRepo.On("SaveDepreciationInTx", suite.ctx, nil, mock.AnythingOfType("domain.DepreciationRecord")).Return(nil)

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil)

	total := decimal.Zero
	var last *domain.DepreciationRecord
	for month := 1; month <= 12; month++ {
		record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
			AssetID: "asset-1",
			Period:  time.Date(2026, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		}, "user-1")
		suite.Require().NoError(err, "month %d", month)
		total = total.Add(record.DepreciationAmount)
		last = record

		if month < 12 {
			suite.Equal(domain.StatusActive, updated.Status, "month %d", month)
		}
	}

	// The schedule consumes the full depreciable amount and the final period
	// retires the asset.
	suite.True(total.Equal(decimal.NewFromInt(12000)), "total was %s", total)
	suite.True(last.ClosingNetBookValue.Equal(decimal.Zero))
	suite.Equal(domain.StatusFullyDepreciated, updated.Status)

	// The thirteenth period has nothing left to depreciate.
	_, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-1",
		Period:  time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "user-1")
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAssetNotDepreciable)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_UnitsWithoutUsageFails() {
	asset := activeUnitsAsset()
	period := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-2").Return(asset, nil).Once()
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-2", period).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUsageRepo.On("FindUsageByAssetAndPeriod", suite.ctx, "asset-2", period).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-2",
		Period:  period,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUsageNotRecorded)
	suite.Nil(record)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "UpdateAssetInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_DuplicatePeriod() {
	asset := activeStraightLineAsset()
	period := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.DepreciationRecord{DepreciationID: "dep-1", AssetID: "asset-1", Period: period}

	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-1", period).Return(existing, nil).Once()

	record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-1",
		Period:  period,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicatePeriod)
	suite.Nil(record)
	suite.mockDepRepo.AssertNotCalled(suite.T(), "SaveDepreciationInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_ConservedAssetRejected() {
	asset := activeStraightLineAsset()
	asset.Status = domain.StatusInConservation
	period := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	record, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-1",
		Period:  period,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAssetNotDepreciable)
	suite.Nil(record)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_PeriodBeforeStart() {
	asset := activeStraightLineAsset()
	period := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	_, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-1",
		Period:  period,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodBeforeStart)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_PeriodNotAfterLast() {
	asset := activeStraightLineAsset()
	last := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	asset.LastDepreciationDate = &last
	asset.AccumulatedDepreciation = decimal.NewFromInt(3000)

	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	_, err := suite.depreciationSvc.CalculateDepreciation(suite.ctx, dto.CalculateDepreciationRequest{
		AssetID: "asset-1",
		Period:  last,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodNotAfterLast)
}

func (suite *DepreciationServiceTestSuite) TestRunMonthlyDepreciation_IsolatesFailures() {
	period := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	healthy := activeStraightLineAsset()

	exhausted := activeStraightLineAsset()
	exhausted.AssetID = "asset-3"
	exhausted.AssetNumber = "FA-0003"
	exhausted.AccumulatedDepreciation = decimal.NewFromInt(12000)

	suite.mockAssetRepo.On("FindAssetsNeedingDepreciation", suite.ctx, period).Return([]domain.FixedAsset{*healthy, *exhausted}, nil).Once()
	suite.mockAssetRepo.On("Begin", suite.ctx).Return(nil, nil).Twice()
	suite.mockAssetRepo.On("Commit", suite.ctx, nil).Return(nil).Once()
	suite.mockAssetRepo.On("Rollback", suite.ctx, nil).Return(nil)
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(healthy, nil).Once()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-3").Return(exhausted, nil).Once()
	suite.mockDepRepo.On("FindDepreciationByAssetAndPeriod", suite.ctx, "asset-1", period).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDepRepo.On("SaveDepreciationInTx", suite.ctx, nil, mock.AnythingOfType("domain.DepreciationRecord")).Return(nil).Once()
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Return(nil).Once()

	result, err := suite.depreciationSvc.RunMonthlyDepreciation(suite.ctx, dto.BatchDepreciationRequest{Period: period}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(1, result.SuccessCount)
	suite.Equal(1, result.FailureCount)
	suite.True(result.TotalAmount.Equal(decimal.NewFromInt(1000)))
	suite.Require().Len(result.Failures, 1)
	suite.Equal("asset-3", result.Failures[0].AssetID)
	suite.Equal("FA-0003", result.Failures[0].AssetNumber)
	suite.NotEmpty(result.Failures[0].Reason)

	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockDepRepo.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestPostDepreciation() {
	period := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	record := &domain.DepreciationRecord{
		DepreciationID:     "dep-1",
		DepreciationNumber: "DEP-FA-0001-202603",
		AssetID:            "asset-1",
		Period:             period,
		DepreciationDate:   period,
		DepreciationAmount: decimal.NewFromInt(1000),
	}
	asset := activeStraightLineAsset()

	suite.mockDepRepo.On("FindDepreciationByID", suite.ctx, "dep-1").Return(record, nil).Once()
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()
	suite.mockAssetRepo.expectTx()

	var lines []domain.JournalLine
	suite.mockJournalSvc.On("CreateJournalEntryInTx", suite.ctx, nil, record.DepreciationDate, "Depreciation DEP-FA-0001-202603", "DEP-FA-0001-202603", mock.AnythingOfType("[]domain.JournalLine"), "user-1").Run(func(args mock.Arguments) {
		lines = args.Get(5).([]domain.JournalLine)
	}).Return("je-1", nil).Once()
	suite.mockDepRepo.On("MarkDepreciationPostedInTx", suite.ctx, nil, "dep-1", "je-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	posted, err := suite.depreciationSvc.PostDepreciation(suite.ctx, "dep-1", "user-1")

	suite.Require().NoError(err)
	suite.True(posted.IsPosted)
	suite.Equal("je-1", posted.JournalEntryID)
	suite.Equal("user-1", posted.PostedBy)

	suite.Require().Len(lines, 2)
	suite.Equal("acc-expense", lines[0].AccountID)
	suite.Equal(domain.Debit, lines[0].Side)
	suite.Equal("acc-accum", lines[1].AccountID)
	suite.Equal(domain.Credit, lines[1].Side)
	suite.True(lines[0].Amount.Equal(lines[1].Amount))

	suite.mockDepRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestPostDepreciation_AlreadyPosted() {
	record := &domain.DepreciationRecord{
		DepreciationID: "dep-1",
		AssetID:        "asset-1",
		PostingFields:  domain.PostingFields{IsPosted: true},
	}
	suite.mockDepRepo.On("FindDepreciationByID", suite.ctx, "dep-1").Return(record, nil).Once()

	posted, err := suite.depreciationSvc.PostDepreciation(suite.ctx, "dep-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPosted)
	suite.Nil(posted)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateJournalEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDepreciationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationServiceTestSuite))
}
