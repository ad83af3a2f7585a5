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

type ConservationServiceTestSuite struct {
	suite.Suite
	ctx              context.Context
	mockConsRepo     *MockConservationRepository
	mockAssetRepo    *MockAssetRepository
	conservationSvc  portssvc.ConservationSvcFacade
	conservationDate time.Time
}

func (suite *ConservationServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockConsRepo = new(MockConservationRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.conservationSvc = services.NewConservationService(suite.mockConsRepo, suite.mockAssetRepo)
	suite.conservationDate = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
}

func conservableAsset() *domain.FixedAsset {
	last := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	return &domain.FixedAsset{
		AssetID:                 "asset-1",
		AssetNumber:             "FA-0001",
		InitialCost:             decimal.NewFromInt(12000),
		AccumulatedDepreciation: decimal.NewFromInt(3000),
		SalvageValue:            decimal.NewFromInt(500),
		DepreciationMethod:      domain.StraightLine,
		UsefulLifeMonths:        12,
		LastDepreciationDate:    &last,
		NextDepreciationDate:    &next,
		Status:                  domain.StatusActive,
	}
}

func (suite *ConservationServiceTestSuite) TestStartConservation_SnapshotsBalances() {
	asset := conservableAsset()
	req := dto.StartConservationRequest{
		ConservationNumber: "CONS-0001",
		AssetID:            "asset-1",
		ConservationDate:   suite.conservationDate,
		Reason:             "Seasonal shutdown",
		Responsible:        "Plant manager",
	}

	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()
	suite.mockConsRepo.On("FindActiveConservationByAsset", suite.ctx, "asset-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockConsRepo.On("SaveConservation", suite.ctx, mock.AnythingOfType("domain.Conservation")).Return(nil).Once()

	conservation, err := suite.conservationSvc.StartConservation(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(conservation.ConservationID)
	suite.True(conservation.GrossCostAtConservation.Equal(decimal.NewFromInt(12000)))
	suite.True(conservation.AccumulatedDepreciationAtConservation.Equal(decimal.NewFromInt(3000)))
	suite.True(conservation.NetBookValueAtConservation.Equal(decimal.NewFromInt(9000)))
	suite.Equal(domain.StraightLine, conservation.DepreciationMethodAtConservation)
	suite.False(conservation.IsPosted)

	suite.mockConsRepo.AssertExpectations(suite.T())
}

func (suite *ConservationServiceTestSuite) TestStartConservation_ExistingActiveRejected() {
	asset := conservableAsset()
	existing := &domain.Conservation{ConservationID: "cons-0", ConservationNumber: "CONS-0000", AssetID: "asset-1", PostingFields: domain.PostingFields{IsPosted: true}}

	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()
	suite.mockConsRepo.On("FindActiveConservationByAsset", suite.ctx, "asset-1").Return(existing, nil).Once()

	_, err := suite.conservationSvc.StartConservation(suite.ctx, dto.StartConservationRequest{
		ConservationNumber: "CONS-0001",
		AssetID:            "asset-1",
		ConservationDate:   suite.conservationDate,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrConservationExists)
	suite.mockConsRepo.AssertNotCalled(suite.T(), "SaveConservation", mock.Anything, mock.Anything)
}

func (suite *ConservationServiceTestSuite) TestPostConservation_SuspendsAsset() {
	asset := conservableAsset()
	conservation := &domain.Conservation{
		ConservationID:     "cons-1",
		ConservationNumber: "CONS-0001",
		AssetID:            "asset-1",
		ConservationDate:   suite.conservationDate,
	}

	suite.mockConsRepo.On("FindConservationByID", suite.ctx, "cons-1").Return(conservation, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockConsRepo.On("MarkConservationPostedInTx", suite.ctx, nil, "cons-1", "", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	posted, err := suite.conservationSvc.PostConservation(suite.ctx, "cons-1", "user-1")

	suite.Require().NoError(err)
	suite.True(posted.IsPosted)
	suite.Equal(domain.StatusInConservation, updated.Status)

	suite.mockConsRepo.AssertExpectations(suite.T())
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *ConservationServiceTestSuite) TestPostConservation_AlreadyPosted() {
	conservation := &domain.Conservation{ConservationID: "cons-1", AssetID: "asset-1", PostingFields: domain.PostingFields{IsPosted: true}}
	suite.mockConsRepo.On("FindConservationByID", suite.ctx, "cons-1").Return(conservation, nil).Once()

	_, err := suite.conservationSvc.PostConservation(suite.ctx, "cons-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPosted)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *ConservationServiceTestSuite) TestCancelConservation_ReactivatesAsset() {
	asset := conservableAsset()
	asset.Status = domain.StatusInConservation
	lastBefore := *asset.LastDepreciationDate
	nextBefore := *asset.NextDepreciationDate

	conservation := &domain.Conservation{
		ConservationID:     "cons-1",
		ConservationNumber: "CONS-0001",
		AssetID:            "asset-1",
		ConservationDate:   suite.conservationDate,
		PostingFields:      domain.PostingFields{IsPosted: true},
	}
	cancellationDate := suite.conservationDate.AddDate(0, 2, 0)

	suite.mockConsRepo.On("FindConservationByID", suite.ctx, "cons-1").Return(conservation, nil).Once()
	suite.mockAssetRepo.expectTx()
	suite.mockAssetRepo.On("FindAssetByIDForUpdate", suite.ctx, nil, "asset-1").Return(asset, nil).Once()
	suite.mockConsRepo.On("MarkConservationCancelledInTx", suite.ctx, nil, mock.AnythingOfType("domain.Conservation")).Return(nil).Once()

	var updated domain.FixedAsset
	suite.mockAssetRepo.On("UpdateAssetInTx", suite.ctx, nil, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		updated = args.Get(2).(domain.FixedAsset)
	}).Return(nil).Once()

	cancelled, err := suite.conservationSvc.CancelConservation(suite.ctx, "cons-1", dto.CancelConservationRequest{
		CancellationDate: cancellationDate,
		Reason:           "Production resumed",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(cancelled.IsCancelled)
	suite.Equal("CANCEL-CONS-0001", cancelled.CancellationNumber)
	suite.Require().NotNil(cancelled.CancellationDate)
	suite.Equal(cancellationDate, *cancelled.CancellationDate)

	// Reactivation does not rewrite the depreciation schedule.
	suite.Equal(domain.StatusActive, updated.Status)
	suite.Equal(lastBefore, *updated.LastDepreciationDate)
	suite.Equal(nextBefore, *updated.NextDepreciationDate)

	suite.mockConsRepo.AssertExpectations(suite.T())
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *ConservationServiceTestSuite) TestCancelConservation_Guards() {
	suite.Run("not posted", func() {
		conservation := &domain.Conservation{ConservationID: "cons-1", ConservationDate: suite.conservationDate}
		suite.mockConsRepo.On("FindConservationByID", suite.ctx, "cons-1").Return(conservation, nil).Once()

		_, err := suite.conservationSvc.CancelConservation(suite.ctx, "cons-1", dto.CancelConservationRequest{CancellationDate: suite.conservationDate}, "user-1")
		suite.ErrorIs(err, services.ErrConservationNotPosted)
	})

	suite.Run("already cancelled", func() {
		conservation := &domain.Conservation{ConservationID: "cons-2", ConservationDate: suite.conservationDate, PostingFields: domain.PostingFields{IsPosted: true}, IsCancelled: true}
		suite.mockConsRepo.On("FindConservationByID", suite.ctx, "cons-2").Return(conservation, nil).Once()

		_, err := suite.conservationSvc.CancelConservation(suite.ctx, "cons-2", dto.CancelConservationRequest{CancellationDate: suite.conservationDate}, "user-1")
		suite.ErrorIs(err, services.ErrConservationCancelled)
	})

	suite.Run("date before conservation", func() {
		conservation := &domain.Conservation{ConservationID: "cons-3", ConservationDate: suite.conservationDate, PostingFields: domain.PostingFields{IsPosted: true}}
		suite.mockConsRepo.On("FindConservationByID", suite.ctx, "cons-3").Return(conservation, nil).Once()

		_, err := suite.conservationSvc.CancelConservation(suite.ctx, "cons-3", dto.CancelConservationRequest{CancellationDate: suite.conservationDate.AddDate(0, 0, -1)}, "user-1")
		suite.ErrorIs(err, services.ErrConservationDateTooEarly)
	})
}

func TestConservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConservationServiceTestSuite))
}
