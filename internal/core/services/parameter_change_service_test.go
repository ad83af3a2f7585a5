package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/core/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

type ParameterChangeServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	mockChangeRepo *MockParameterChangeRepository
	mockAssetRepo  *MockAssetRepository
	mockJournalSvc *MockJournalService
	changeSvc      portssvc.ParameterChangeSvcFacade
	changeDate     time.Time
}

func (suite *ParameterChangeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockChangeRepo = new(MockParameterChangeRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockJournalSvc = new(MockJournalService)
	suite.changeSvc = services.NewParameterChangeService(suite.mockChangeRepo, suite.mockAssetRepo, suite.mockJournalSvc)
	suite.changeDate = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
}

// reassessableAsset has gross cost 12000, accumulated depreciation 4000,
// salvage 1000 and an NBV of 8000.
func reassessableAsset() *domain.FixedAsset {
	return &domain.FixedAsset{
		AssetID:                 "asset-1",
		AssetNumber:             "FA-0001",
		InitialCost:             decimal.NewFromInt(12000),
		AccumulatedDepreciation: decimal.NewFromInt(4000),
		SalvageValue:            decimal.NewFromInt(1000),
		DepreciationMethod:      domain.StraightLine,
		UsefulLifeMonths:        36,
		Status:                  domain.StatusActive,
		GLAccounts: domain.GLAccountRefs{
			AssetAccountID:               "acc-asset",
			DepreciationAccountID:        "acc-accum",
			ExpenseAccountID:             "acc-expense",
			CapitalImprovementsAccountID: "acc-improvements",
		},
	}
}

func (suite *ParameterChangeServiceTestSuite) TestCreateParameterChange_SnapshotsOldValues() {
	asset := reassessableAsset()
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()
	suite.mockChangeRepo.On("SaveParameterChange", suite.ctx, mock.AnythingOfType("domain.ParameterChange")).Return(nil).Once()

	change, err := suite.changeSvc.CreateParameterChange(suite.ctx, dto.CreateParameterChangeRequest{
		ChangeNumber:     "PC-0001",
		AssetID:          "asset-1",
		ChangeDate:       suite.changeDate,
		ChangeType:       domain.Impairment,
		AdjustmentAmount: decimal.NewFromInt(-2000),
		Reason:           "Market value decline",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(change.OldGrossCost.Equal(decimal.NewFromInt(12000)))
	suite.True(change.OldSalvageValue.Equal(decimal.NewFromInt(1000)))
	suite.Equal(36, change.OldUsefulLifeMonths)
	suite.False(change.IsPosted)

	suite.mockChangeRepo.AssertExpectations(suite.T())
}

func (suite *ParameterChangeServiceTestSuite) TestCreateParameterChange_FullyDepreciatedAssetAllowed() {
	asset := reassessableAsset()
	asset.Status = domain.StatusFullyDepreciated
	asset.AccumulatedDepreciation = decimal.NewFromInt(11000)

	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()
	suite.mockChangeRepo.On("SaveParameterChange", suite.ctx, mock.AnythingOfType("domain.ParameterChange")).Return(nil).Once()

	change, err := suite.changeSvc.CreateParameterChange(suite.ctx, dto.CreateParameterChangeRequest{
		ChangeNumber:     "PC-0002",
		AssetID:          "asset-1",
		ChangeDate:       suite.changeDate,
		ChangeType:       domain.Revaluation,
		AdjustmentAmount: decimal.NewFromInt(2000),
		Reason:           "Appraisal above carrying amount",
	}, "user-1")

	// Retired assets can still be reassessed.
	suite.Require().NoError(err)
	suite.True(change.OldAccumulatedDepreciation.Equal(decimal.NewFromInt(11000)))
	suite.mockChangeRepo.AssertExpectations(suite.T())
}

func (suite *ParameterChangeServiceTestSuite) TestPostParameterChange_FullyDepreciatedRevaluation() {
	asset := reassessableAsset()
	asset.Status = domain.StatusFullyDepreciated
	asset.AccumulatedDepreciation = decimal.NewFromInt(11000)
	change := &domain.ParameterChange{
		ChangeID:         "pc-2",
		ChangeNumber:     "PC-0002",
		AssetID:          "asset-1",
		ChangeDate:       suite.changeDate,
		ChangeType:       domain.Revaluation,
		AdjustmentAmount: decimal.NewFromInt(2000),
	}

	suite.mockChangeRepo.On("FindParameterChangeByID", suite.ctx, "pc-2").Return(change, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockJournalSvc.On("CreateJournalEntryInTx", suite.ctx, nil, suite.changeDate, "Parameter change PC-0002", "PC-0002", mock.AnythingOfType("[]domain.JournalLine"), "user-1").Return("je-2", nil).Once()
	suite.mockChangeRepo.On("MarkParameterChangePostedInTx", suite.ctx, nil, "pc-2", "je-2", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	posted, err := suite.changeSvc.PostParameterChange(suite.ctx, "pc-2", "user-1")

	suite.Require().NoError(err)
	suite.True(posted.IsPosted)
	suite.True(updated.CostAdjustment.Equal(decimal.NewFromInt(2000)))
	suite.Equal(domain.StatusFullyDepreciated, updated.Status)

	suite.mockChangeRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *ParameterChangeServiceTestSuite) TestCreateParameterChange_ImpairmentMustBeNegative() {
	asset := reassessableAsset()
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	_, err := suite.changeSvc.CreateParameterChange(suite.ctx, dto.CreateParameterChangeRequest{
		ChangeNumber:     "PC-0001",
		AssetID:          "asset-1",
		ChangeDate:       suite.changeDate,
		ChangeType:       domain.Impairment,
		AdjustmentAmount: decimal.NewFromInt(2000),
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorContains(err, services.ErrImpairmentNotNegative.Error())
	suite.mockChangeRepo.AssertNotCalled(suite.T(), "SaveParameterChange", mock.Anything, mock.Anything)
}

func (suite *ParameterChangeServiceTestSuite) TestPostParameterChange_Impairment() {
	asset := reassessableAsset()
	change := &domain.ParameterChange{
		ChangeID:         "pc-1",
		ChangeNumber:     "PC-0001",
		AssetID:          "asset-1",
		ChangeDate:       suite.changeDate,
		ChangeType:       domain.Impairment,
		AdjustmentAmount: decimal.NewFromInt(-2000),
	}

	suite.mockChangeRepo.On("FindParameterChangeByID", suite.ctx, "pc-1").Return(change, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	var lines []domain.JournalLine
	suite.mockJournalSvc.On("CreateJournalEntryInTx", suite.ctx, nil, suite.changeDate, "Parameter change PC-0001", "PC-0001", mock.AnythingOfType("[]domain.JournalLine"), "user-1").Run(func(args mock.Arguments) {
		lines = args.Get(5).([]domain.JournalLine)
	}).Return("je-1", nil).Once()
	suite.mockChangeRepo.On("MarkParameterChangePostedInTx", suite.ctx, nil, "pc-1", "je-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	posted, err := suite.changeSvc.PostParameterChange(suite.ctx, "pc-1", "user-1")

	suite.Require().NoError(err)
	suite.True(posted.IsPosted)
	suite.True(updated.CostAdjustment.Equal(decimal.NewFromInt(-2000)))
	suite.True(updated.GrossCost().Equal(decimal.NewFromInt(10000)))
	suite.True(updated.NetBookValue().Equal(decimal.NewFromInt(6000)))

	suite.Require().Len(lines, 2)
	suite.Equal("acc-expense", lines[0].AccountID)
	suite.Equal(domain.Debit, lines[0].Side)
	suite.True(lines[0].Amount.Equal(decimal.NewFromInt(2000)))
	suite.Equal("acc-asset", lines[1].AccountID)
	suite.Equal(domain.Credit, lines[1].Side)

	suite.mockChangeRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *ParameterChangeServiceTestSuite) TestPostParameterChange_ImpairmentBelowSalvage() {
	asset := reassessableAsset()
	change := &domain.ParameterChange{
		ChangeID:         "pc-1",
		AssetID:          "asset-1",
		ChangeDate:       suite.changeDate,
		ChangeType:       domain.Impairment,
		AdjustmentAmount: decimal.NewFromInt(-7500),
	}

	suite.mockChangeRepo.On("FindParameterChangeByID", suite.ctx, "pc-1").Return(change, nil).Once()
	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	_, err := suite.changeSvc.PostParameterChange(suite.ctx, "pc-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrImpairmentBelowSalvage)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateJournalEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ParameterChangeServiceTestSuite) TestPostParameterChange_Revaluation() {
	asset := reassessableAsset()
	change := &domain.ParameterChange{
		ChangeID:         "pc-2",
		ChangeNumber:     "PC-0002",
		AssetID:          "asset-1",
		ChangeDate:       suite.changeDate,
		ChangeType:       domain.Revaluation,
		AdjustmentAmount: decimal.NewFromInt(3000),
	}

	suite.mockChangeRepo.On("FindParameterChangeByID", suite.ctx, "pc-2").Return(change, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	var lines []domain.JournalLine
	suite.mockJournalSvc.On("CreateJournalEntryInTx", suite.ctx, nil, suite.changeDate, "Parameter change PC-0002", "PC-0002", mock.AnythingOfType("[]domain.JournalLine"), "user-1").Run(func(args mock.Arguments) {
		lines = args.Get(5).([]domain.JournalLine)
	}).Return("je-2", nil).Once()
	suite.mockChangeRepo.On("MarkParameterChangePostedInTx", suite.ctx, nil, "pc-2", "je-2", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	_, err := suite.changeSvc.PostParameterChange(suite.ctx, "pc-2", "user-1")

	suite.Require().NoError(err)
	suite.True(updated.GrossCost().Equal(decimal.NewFromInt(15000)))
	suite.Require().Len(lines, 2)
	suite.Equal("acc-asset", lines[0].AccountID)
	suite.Equal(domain.Debit, lines[0].Side)
	suite.Equal("acc-improvements", lines[1].AccountID)
	suite.Equal(domain.Credit, lines[1].Side)
}

func (suite *ParameterChangeServiceTestSuite) TestPostParameterChange_UsefulLifeChangeHasNoJournal() {
	asset := reassessableAsset()
	change := &domain.ParameterChange{
		ChangeID:            "pc-3",
		ChangeNumber:        "PC-0003",
		AssetID:             "asset-1",
		ChangeDate:          suite.changeDate,
		ChangeType:          domain.UsefulLifeChange,
		NewUsefulLifeMonths: 48,
	}

	suite.mockChangeRepo.On("FindParameterChangeByID", suite.ctx, "pc-3").Return(change, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockChangeRepo.On("MarkParameterChangePostedInTx", suite.ctx, nil, "pc-3", "", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	posted, err := suite.changeSvc.PostParameterChange(suite.ctx, "pc-3", "user-1")

	suite.Require().NoError(err)
	suite.Equal(48, updated.UsefulLifeMonths)
	suite.Empty(posted.JournalEntryID)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateJournalEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ParameterChangeServiceTestSuite) TestPostParameterChange_SalvageRaiseCanFullyDepreciate() {
	asset := reassessableAsset()
	asset.AccumulatedDepreciation = decimal.NewFromInt(5000)
	change := &domain.ParameterChange{
		ChangeID:        "pc-4",
		ChangeNumber:    "PC-0004",
		AssetID:         "asset-1",
		ChangeDate:      suite.changeDate,
		ChangeType:      domain.SalvageValueChange,
		NewSalvageValue: decimal.NewFromInt(7000),
	}

	suite.mockChangeRepo.On("FindParameterChangeByID", suite.ctx, "pc-4").Return(change, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockChangeRepo.On("MarkParameterChangePostedInTx", suite.ctx, nil, "pc-4", "", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	_, err := suite.changeSvc.PostParameterChange(suite.ctx, "pc-4", "user-1")

	// NBV 7000 now sits at the new salvage floor.
	suite.Require().NoError(err)
	suite.True(updated.SalvageValue.Equal(decimal.NewFromInt(7000)))
	suite.Equal(domain.StatusFullyDepreciated, updated.Status)
}

func (suite *ParameterChangeServiceTestSuite) TestPostParameterChange_AlreadyPosted() {
	change := &domain.ParameterChange{ChangeID: "pc-1", AssetID: "asset-1", PostingFields: domain.PostingFields{IsPosted: true}}
	suite.mockChangeRepo.On("FindParameterChangeByID", suite.ctx, "pc-1").Return(change, nil).Once()

	_, err := suite.changeSvc.PostParameterChange(suite.ctx, "pc-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPosted)
}

func TestParameterChangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ParameterChangeServiceTestSuite))
}
