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

type DisposalServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockPrepRepo    *MockSalePreparationRepository
	mockSaleRepo    *MockSaleRepository
	mockWriteRepo   *MockWriteOffRepository
	mockAssetRepo   *MockAssetRepository
	mockJournalSvc  *MockJournalService
	preparationSvc  portssvc.SalePreparationSvcFacade
	saleSvc         portssvc.SaleSvcFacade
	writeOffSvc     portssvc.WriteOffSvcFacade
	transactionDate time.Time
}

func (suite *DisposalServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockPrepRepo = new(MockSalePreparationRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockWriteRepo = new(MockWriteOffRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockJournalSvc = new(MockJournalService)
	suite.preparationSvc = services.NewSalePreparationService(suite.mockPrepRepo, suite.mockAssetRepo, suite.mockJournalSvc)
	suite.saleSvc = services.NewSaleService(suite.mockSaleRepo, suite.mockPrepRepo, suite.mockAssetRepo, suite.mockJournalSvc)
	suite.writeOffSvc = services.NewWriteOffService(suite.mockWriteRepo, suite.mockAssetRepo, suite.mockJournalSvc)
	suite.transactionDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
}

// disposableAsset has gross cost 12000, accumulated depreciation 9000 and a
// remaining NBV of 3000.
func disposableAsset() *domain.FixedAsset {
	return &domain.FixedAsset{
		AssetID:                 "asset-1",
		AssetNumber:             "FA-0001",
		InitialCost:             decimal.NewFromInt(12000),
		AccumulatedDepreciation: decimal.NewFromInt(9000),
		Status:                  domain.StatusActive,
		GLAccounts: domain.GLAccountRefs{
			AssetAccountID:        "acc-asset",
			DepreciationAccountID: "acc-accum",
			ExpenseAccountID:      "acc-expense",
			HeldForSaleAccountID:  "acc-hfs",
		},
	}
}

func (suite *DisposalServiceTestSuite) TestPostSalePreparation_ReclassifiesToHeldForSale() {
	asset := disposableAsset()
	preparation := &domain.SalePreparation{
		PreparationID:     "prep-1",
		PreparationNumber: "PREP-0001",
		AssetID:           "asset-1",
		PreparationDate:   suite.transactionDate,
	}

	suite.mockPrepRepo.On("FindSalePreparationByID", suite.ctx, "prep-1").Return(preparation, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	var lines []domain.JournalLine
	suite.mockJournalSvc.On("CreateJournalEntryInTx", suite.ctx, nil, suite.transactionDate, "Sale preparation PREP-0001", "PREP-0001", mock.AnythingOfType("[]domain.JournalLine"), "user-1").Run(func(args mock.Arguments) {
		lines = args.Get(5).([]domain.JournalLine)
	}).Return("je-1", nil).Once()
	suite.mockPrepRepo.On("MarkSalePreparationPostedInTx", suite.ctx, nil, "prep-1", "je-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	posted, err := suite.preparationSvc.PostSalePreparation(suite.ctx, "prep-1", "user-1")

	suite.Require().NoError(err)
	suite.True(posted.IsPosted)
	suite.Equal(domain.StatusHeldForSale, updated.Status)

	// NBV into held-for-sale, accumulated depreciation cleared, cost credited.
	suite.Require().Len(lines, 3)
	suite.Equal("acc-hfs", lines[0].AccountID)
	suite.True(lines[0].Amount.Equal(decimal.NewFromInt(3000)))
	suite.Equal("acc-accum", lines[1].AccountID)
	suite.True(lines[1].Amount.Equal(decimal.NewFromInt(9000)))
	suite.Equal("acc-asset", lines[2].AccountID)
	suite.Equal(domain.Credit, lines[2].Side)
	suite.True(lines[2].Amount.Equal(decimal.NewFromInt(12000)))

	suite.mockPrepRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *DisposalServiceTestSuite) TestPostSalePreparation_MissingHeldForSaleAccount() {
	asset := disposableAsset()
	asset.GLAccounts.HeldForSaleAccountID = ""
	preparation := &domain.SalePreparation{PreparationID: "prep-1", AssetID: "asset-1"}

	suite.mockPrepRepo.On("FindSalePreparationByID", suite.ctx, "prep-1").Return(preparation, nil).Once()
	suite.mockAssetRepo.expectFailedTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	_, err := suite.preparationSvc.PostSalePreparation(suite.ctx, "prep-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrHeldForSaleAcctMissing)
}

func (suite *DisposalServiceTestSuite) TestCancelSalePreparation_RejectsLinkedSale() {
	preparation := &domain.SalePreparation{
		PreparationID: "prep-1",
		AssetID:       "asset-1",
		PostingFields: domain.PostingFields{IsPosted: true},
		SaleID:        "sale-9",
	}
	suite.mockPrepRepo.On("FindSalePreparationByID", suite.ctx, "prep-1").Return(preparation, nil).Once()

	_, err := suite.preparationSvc.CancelSalePreparation(suite.ctx, "prep-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPreparationSold)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *DisposalServiceTestSuite) TestCreateSale_RequiresHeldForSale() {
	asset := disposableAsset()
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	_, err := suite.saleSvc.CreateSale(suite.ctx, dto.CreateSaleRequest{
		SaleNumber: "SALE-0001",
		AssetID:    "asset-1",
		SaleDate:   suite.transactionDate,
		SalePrice:  decimal.NewFromInt(4000),
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSaleRequiresHFS)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *DisposalServiceTestSuite) TestCreateSale_LinksPreparation() {
	asset := disposableAsset()
	asset.Status = domain.StatusHeldForSale
	preparation := &domain.SalePreparation{PreparationID: "prep-1", AssetID: "asset-1", PostingFields: domain.PostingFields{IsPosted: true}}

	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()
	suite.mockPrepRepo.On("FindSalePreparationByID", suite.ctx, "prep-1").Return(preparation, nil).Once()
	suite.mockSaleRepo.On("SaveSale", suite.ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	var linkedSaleID string
	suite.mockPrepRepo.On("LinkActualSale", suite.ctx, "prep-1", mock.AnythingOfType("string"), "user-1", mock.AnythingOfType("time.Time")).Run(func(args mock.Arguments) {
		linkedSaleID = args.Get(2).(string)
	}).Return(nil).Once()

	sale, err := suite.saleSvc.CreateSale(suite.ctx, dto.CreateSaleRequest{
		SaleNumber:    "SALE-0001",
		AssetID:       "asset-1",
		PreparationID: "prep-1",
		SaleDate:      suite.transactionDate,
		BuyerName:     "Acme Salvage",
		SalePrice:     decimal.NewFromInt(4000),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(sale.SaleID, linkedSaleID)
	suite.True(sale.NetBookValueAtSale.Equal(decimal.NewFromInt(3000)))
	suite.True(sale.GainLoss().Equal(decimal.NewFromInt(1000)))

	suite.mockPrepRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *DisposalServiceTestSuite) TestPostSale_DisposesAsset() {
	asset := disposableAsset()
	asset.Status = domain.StatusHeldForSale
	sale := &domain.Sale{
		SaleID:             "sale-1",
		SaleNumber:         "SALE-0001",
		AssetID:            "asset-1",
		SaleDate:           suite.transactionDate,
		SalePrice:          decimal.NewFromInt(4000),
		GrossCostAtSale:    decimal.NewFromInt(12000),
		NetBookValueAtSale: decimal.NewFromInt(3000),
	}

	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "sale-1").Return(sale, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockJournalSvc.On("CreateJournalEntryInTx", suite.ctx, nil, suite.transactionDate, "Asset sale SALE-0001", "SALE-0001", mock.AnythingOfType("[]domain.JournalLine"), "user-1").Return("je-1", nil).Once()
	suite.mockSaleRepo.On("MarkSalePostedInTx", suite.ctx, nil, "sale-1", "je-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	posted, err := suite.saleSvc.PostSale(suite.ctx, "sale-1", "user-1")

	suite.Require().NoError(err)
	suite.True(posted.IsPosted)
	suite.Equal("je-1", posted.JournalEntryID)

	// Disposal fully depreciates the asset record.
	suite.Equal(domain.StatusDisposed, updated.Status)
	suite.True(updated.AccumulatedDepreciation.Equal(updated.GrossCost()))
	suite.Require().NotNil(updated.DisposalDate)
	suite.Equal(suite.transactionDate, *updated.DisposalDate)

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *DisposalServiceTestSuite) TestPostSale_AlreadyPosted() {
	sale := &domain.Sale{SaleID: "sale-1", AssetID: "asset-1", PostingFields: domain.PostingFields{IsPosted: true}}
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "sale-1").Return(sale, nil).Once()

	_, err := suite.saleSvc.PostSale(suite.ctx, "sale-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPosted)
}

func (suite *DisposalServiceTestSuite) TestCreateWriteOff_LossEqualsNetBookValue() {
	asset := disposableAsset()
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()
	suite.mockWriteRepo.On("SaveWriteOff", suite.ctx, mock.AnythingOfType("domain.WriteOff")).Return(nil).Once()

	writeOff, err := suite.writeOffSvc.CreateWriteOff(suite.ctx, dto.CreateWriteOffRequest{
		WriteOffNumber: "WO-0001",
		AssetID:        "asset-1",
		WriteOffDate:   suite.transactionDate,
		Reason:         "Destroyed in flood",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(writeOff.GrossCostAtWriteOff.Equal(decimal.NewFromInt(12000)))
	suite.True(writeOff.NetBookValueAtWriteOff.Equal(decimal.NewFromInt(3000)))
	suite.True(writeOff.LossAmount.Equal(decimal.NewFromInt(3000)))

	suite.mockWriteRepo.AssertExpectations(suite.T())
}

func (suite *DisposalServiceTestSuite) TestPostWriteOff_RemovesAssetFromBooks() {
	asset := disposableAsset()
	writeOff := &domain.WriteOff{
		WriteOffID:                        "wo-1",
		WriteOffNumber:                    "WO-0001",
		AssetID:                           "asset-1",
		WriteOffDate:                      suite.transactionDate,
		GrossCostAtWriteOff:               decimal.NewFromInt(12000),
		AccumulatedDepreciationAtWriteOff: decimal.NewFromInt(9000),
		NetBookValueAtWriteOff:            decimal.NewFromInt(3000),
		LossAmount:                        decimal.NewFromInt(3000),
	}

	suite.mockWriteRepo.On("FindWriteOffByID", suite.ctx, "wo-1").Return(writeOff, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()

	var lines []domain.JournalLine
	suite.mockJournalSvc.On("CreateJournalEntryInTx", suite.ctx, nil, suite.transactionDate, "Asset write-off WO-0001", "WO-0001", mock.AnythingOfType("[]domain.JournalLine"), "user-1").Run(func(args mock.Arguments) {
		lines = args.Get(5).([]domain.JournalLine)
	}).Return("je-1", nil).Once()
	suite.mockWriteRepo.On("MarkWriteOffPostedInTx", suite.ctx, nil, "wo-1", "je-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	posted, err := suite.writeOffSvc.PostWriteOff(suite.ctx, "wo-1", "user-1")

	suite.Require().NoError(err)
	suite.True(posted.IsPosted)
	suite.Equal(domain.StatusWrittenOff, updated.Status)
	suite.True(updated.AccumulatedDepreciation.Equal(updated.GrossCost()))
	suite.Require().NotNil(updated.DisposalDate)

	// Accumulated depreciation and loss debited, asset at cost credited.
	suite.Require().Len(lines, 3)
	suite.Equal("acc-accum", lines[0].AccountID)
	suite.True(lines[0].Amount.Equal(decimal.NewFromInt(9000)))
	suite.Equal("acc-expense", lines[1].AccountID)
	suite.True(lines[1].Amount.Equal(decimal.NewFromInt(3000)))
	suite.Equal("acc-asset", lines[2].AccountID)
	suite.Equal(domain.Credit, lines[2].Side)
	suite.True(lines[2].Amount.Equal(decimal.NewFromInt(12000)))

	suite.mockWriteRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func TestDisposalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DisposalServiceTestSuite))
}
