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
)

type JournalServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	journalSvc      portssvc.JournalSvcFacade
	entryDate       time.Time
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.journalSvc = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc)
	suite.entryDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
}

func balancedLines() []domain.JournalLine {
	return []domain.JournalLine{
		{AccountID: "acc-expense", Side: domain.Debit, Amount: decimal.NewFromInt(1000)},
		{AccountID: "acc-accum", Side: domain.Credit, Amount: decimal.NewFromInt(1000)},
	}
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntryInTx_Success() {
	suite.mockAccountSvc.On("ValidateAccountsActive", suite.ctx, []string{"acc-expense", "acc-accum"}).Return(nil).Once()

	var saved domain.JournalEntry
	suite.mockJournalRepo.On("SaveJournalEntryInTx", suite.ctx, nil, mock.AnythingOfType("domain.JournalEntry")).Run(func(args mock.Arguments) {
		saved = args.Get(2).(domain.JournalEntry)
	}).Return(nil).Once()

	id, err := suite.journalSvc.CreateJournalEntryInTx(suite.ctx, nil, suite.entryDate, "Depreciation DEP-FA-0001-202603", "DEP-FA-0001-202603", balancedLines(), "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(id)
	suite.Equal(id, saved.JournalEntryID)
	suite.Equal("DEP-FA-0001-202603", saved.SourceDocument)
	suite.Len(saved.Lines, 2)
	suite.Equal("user-1", saved.CreatedBy)

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntryInTx_MissingDescription() {
	id, err := suite.journalSvc.CreateJournalEntryInTx(suite.ctx, nil, suite.entryDate, "", "DOC-1", balancedLines(), "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalDescriptionMissing)
	suite.Empty(id)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntryInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntryInTx_UnbalancedLines() {
	lines := []domain.JournalLine{
		{AccountID: "acc-expense", Side: domain.Debit, Amount: decimal.NewFromInt(1000)},
		{AccountID: "acc-accum", Side: domain.Credit, Amount: decimal.NewFromInt(900)},
	}

	_, err := suite.journalSvc.CreateJournalEntryInTx(suite.ctx, nil, suite.entryDate, "Unbalanced", "DOC-1", lines, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntryInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntryInTx_InactiveAccount() {
	suite.mockAccountSvc.On("ValidateAccountsActive", suite.ctx, []string{"acc-expense", "acc-accum"}).Return(services.ErrAccountInactive).Once()

	_, err := suite.journalSvc.CreateJournalEntryInTx(suite.ctx, nil, suite.entryDate, "Depreciation", "DOC-1", balancedLines(), "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountInactive)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntryInTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

type AccountServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockAccountRepo *MockAccountRepository
	accountSvc      portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.accountSvc = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestValidateAccountsActive_DeduplicatesAndSkipsEmpty() {
	accounts := map[string]domain.ChartOfAccount{
		"acc-1": {AccountID: "acc-1", AccountCode: "1500", IsActive: true},
		"acc-2": {AccountID: "acc-2", AccountCode: "1510", IsActive: true},
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, []string{"acc-1", "acc-2"}).Return(accounts, nil).Once()

	err := suite.accountSvc.ValidateAccountsActive(suite.ctx, []string{"acc-1", "", "acc-2", "acc-1"})

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestValidateAccountsActive_AllEmptySkipsLookup() {
	err := suite.accountSvc.ValidateAccountsActive(suite.ctx, []string{"", ""})

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestValidateAccountsActive_MissingAccount() {
	accounts := map[string]domain.ChartOfAccount{
		"acc-1": {AccountID: "acc-1", AccountCode: "1500", IsActive: true},
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, []string{"acc-1", "acc-9"}).Return(accounts, nil).Once()

	err := suite.accountSvc.ValidateAccountsActive(suite.ctx, []string{"acc-1", "acc-9"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorContains(err, "acc-9")
}

func (suite *AccountServiceTestSuite) TestValidateAccountsActive_InactiveAccount() {
	accounts := map[string]domain.ChartOfAccount{
		"acc-1": {AccountID: "acc-1", AccountCode: "1500", IsActive: false},
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, []string{"acc-1"}).Return(accounts, nil).Once()

	err := suite.accountSvc.ValidateAccountsActive(suite.ctx, []string{"acc-1"})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountInactive)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
