package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// MockAssetRepository is a mock for the AssetRepositoryWithTx interface.
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByNumber(ctx context.Context, assetNumber string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, assetNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, limit int, nextToken *string) ([]domain.FixedAsset, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var assets []domain.FixedAsset
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.FixedAsset)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return assets, token, args.Error(2)
}

func (m *MockAssetRepository) ListAssetsByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetsNeedingDepreciation(ctx context.Context, period time.Time) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetRepository) FindAssetByIDForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, tx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) UpdateAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.FixedAsset) error {
	args := m.Called(ctx, tx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAssetRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAssetRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx wires the usual Begin/Rollback/Commit sequence for a posting flow.
// Rollback after a successful commit is a no-op, so it is always allowed.
func (m *MockAssetRepository) expectTx() {
	m.On("Begin", mock.Anything).Return(nil, nil)
	m.On("Commit", mock.Anything, nil).Return(nil)
	m.On("Rollback", mock.Anything, nil).Return(nil).Maybe()
}

// expectFailedTx wires Begin/Rollback for a flow that never commits.
func (m *MockAssetRepository) expectFailedTx() {
	m.On("Begin", mock.Anything).Return(nil, nil)
	m.On("Rollback", mock.Anything, nil).Return(nil)
}

// MockDepreciationRepository is a mock for the DepreciationRepositoryFacade interface.
type MockDepreciationRepository struct {
	mock.Mock
}

func (m *MockDepreciationRepository) FindDepreciationByID(ctx context.Context, depreciationID string) (*domain.DepreciationRecord, error) {
	args := m.Called(ctx, depreciationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) FindDepreciationByAssetAndPeriod(ctx context.Context, assetID string, period time.Time) (*domain.DepreciationRecord, error) {
	args := m.Called(ctx, assetID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) ListDepreciationByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) ListDepreciationByPeriod(ctx context.Context, period time.Time) ([]domain.DepreciationRecord, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) ListUnpostedDepreciation(ctx context.Context) ([]domain.DepreciationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) SaveDepreciationInTx(ctx context.Context, tx pgx.Tx, record domain.DepreciationRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockDepreciationRepository) MarkDepreciationPostedInTx(ctx context.Context, tx pgx.Tx, depreciationID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, depreciationID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

// MockUsageRepository is a mock for the MonthlyUsageRepositoryFacade interface.
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) FindUsageByID(ctx context.Context, usageID string) (*domain.MonthlyUsage, error) {
	args := m.Called(ctx, usageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyUsage), args.Error(1)
}

func (m *MockUsageRepository) FindUsageByAssetAndPeriod(ctx context.Context, assetID string, period time.Time) (*domain.MonthlyUsage, error) {
	args := m.Called(ctx, assetID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyUsage), args.Error(1)
}

func (m *MockUsageRepository) ListUsageByAsset(ctx context.Context, assetID string) ([]domain.MonthlyUsage, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyUsage), args.Error(1)
}

func (m *MockUsageRepository) ListUnprocessedUsage(ctx context.Context) ([]domain.MonthlyUsage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyUsage), args.Error(1)
}

func (m *MockUsageRepository) SaveUsage(ctx context.Context, usage domain.MonthlyUsage) error {
	args := m.Called(ctx, usage)
	return args.Error(0)
}

func (m *MockUsageRepository) UpdateUsage(ctx context.Context, usage domain.MonthlyUsage) error {
	args := m.Called(ctx, usage)
	return args.Error(0)
}

// MockJournalService is a mock for the JournalSvcFacade interface.
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournalEntriesBySource(ctx context.Context, sourceDocument string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, sourceDocument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) CreateJournalEntryInTx(ctx context.Context, tx pgx.Tx, entryDate time.Time, description string, sourceDocument string, lines []domain.JournalLine, userID string) (string, error) {
	args := m.Called(ctx, tx, entryDate, description, sourceDocument, lines, userID)
	return args.String(0), args.Error(1)
}

// MockAccountService is a mock for the AccountSvcFacade interface.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountService) ValidateAccountsActive(ctx context.Context, accountIDs []string) error {
	args := m.Called(ctx, accountIDs)
	return args.Error(0)
}

// MockEntryRepository is a mock for the EntryRepositoryFacade interface.
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.AssetEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByAsset(ctx context.Context, assetID string) ([]domain.AssetEntry, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetEntry), args.Error(1)
}

func (m *MockEntryRepository) ListUnpostedEntries(ctx context.Context) ([]domain.AssetEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetEntry), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.AssetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) MarkEntryPostedInTx(ctx context.Context, tx pgx.Tx, entryID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, entryID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

// MockConservationRepository is a mock for the ConservationRepositoryFacade interface.
type MockConservationRepository struct {
	mock.Mock
}

func (m *MockConservationRepository) FindConservationByID(ctx context.Context, conservationID string) (*domain.Conservation, error) {
	args := m.Called(ctx, conservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conservation), args.Error(1)
}

func (m *MockConservationRepository) FindActiveConservationByAsset(ctx context.Context, assetID string) (*domain.Conservation, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conservation), args.Error(1)
}

func (m *MockConservationRepository) ListConservationsByAsset(ctx context.Context, assetID string) ([]domain.Conservation, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conservation), args.Error(1)
}

func (m *MockConservationRepository) ListActiveConservations(ctx context.Context) ([]domain.Conservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conservation), args.Error(1)
}

func (m *MockConservationRepository) ListUnpostedConservations(ctx context.Context) ([]domain.Conservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conservation), args.Error(1)
}

func (m *MockConservationRepository) SaveConservation(ctx context.Context, conservation domain.Conservation) error {
	args := m.Called(ctx, conservation)
	return args.Error(0)
}

func (m *MockConservationRepository) MarkConservationPostedInTx(ctx context.Context, tx pgx.Tx, conservationID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, conservationID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

func (m *MockConservationRepository) MarkConservationCancelledInTx(ctx context.Context, tx pgx.Tx, conservation domain.Conservation) error {
	args := m.Called(ctx, tx, conservation)
	return args.Error(0)
}

// MockImprovementRepository is a mock for the CapitalImprovementRepositoryFacade interface.
type MockImprovementRepository struct {
	mock.Mock
}

func (m *MockImprovementRepository) FindImprovementByID(ctx context.Context, improvementID string) (*domain.CapitalImprovement, error) {
	args := m.Called(ctx, improvementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalImprovement), args.Error(1)
}

func (m *MockImprovementRepository) ListImprovementsByAsset(ctx context.Context, assetID string) ([]domain.CapitalImprovement, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalImprovement), args.Error(1)
}

func (m *MockImprovementRepository) ListUnpostedImprovements(ctx context.Context) ([]domain.CapitalImprovement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalImprovement), args.Error(1)
}

func (m *MockImprovementRepository) SaveImprovement(ctx context.Context, improvement domain.CapitalImprovement) error {
	args := m.Called(ctx, improvement)
	return args.Error(0)
}

func (m *MockImprovementRepository) MarkImprovementPostedInTx(ctx context.Context, tx pgx.Tx, improvementID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, improvementID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

// MockParameterChangeRepository is a mock for the ParameterChangeRepositoryFacade interface.
type MockParameterChangeRepository struct {
	mock.Mock
}

func (m *MockParameterChangeRepository) FindParameterChangeByID(ctx context.Context, changeID string) (*domain.ParameterChange, error) {
	args := m.Called(ctx, changeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParameterChange), args.Error(1)
}

func (m *MockParameterChangeRepository) ListParameterChangesByAsset(ctx context.Context, assetID string) ([]domain.ParameterChange, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParameterChange), args.Error(1)
}

func (m *MockParameterChangeRepository) ListUnpostedParameterChanges(ctx context.Context) ([]domain.ParameterChange, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParameterChange), args.Error(1)
}

func (m *MockParameterChangeRepository) SaveParameterChange(ctx context.Context, change domain.ParameterChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockParameterChangeRepository) MarkParameterChangePostedInTx(ctx context.Context, tx pgx.Tx, changeID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, changeID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

// MockSalePreparationRepository is a mock for the SalePreparationRepositoryFacade interface.
type MockSalePreparationRepository struct {
	mock.Mock
}

func (m *MockSalePreparationRepository) FindSalePreparationByID(ctx context.Context, preparationID string) (*domain.SalePreparation, error) {
	args := m.Called(ctx, preparationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalePreparation), args.Error(1)
}

func (m *MockSalePreparationRepository) ListSalePreparationsByAsset(ctx context.Context, assetID string) ([]domain.SalePreparation, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalePreparation), args.Error(1)
}

func (m *MockSalePreparationRepository) ListPendingSales(ctx context.Context) ([]domain.SalePreparation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalePreparation), args.Error(1)
}

func (m *MockSalePreparationRepository) SaveSalePreparation(ctx context.Context, preparation domain.SalePreparation) error {
	args := m.Called(ctx, preparation)
	return args.Error(0)
}

func (m *MockSalePreparationRepository) MarkSalePreparationPostedInTx(ctx context.Context, tx pgx.Tx, preparationID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, preparationID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

func (m *MockSalePreparationRepository) MarkSalePreparationCancelledInTx(ctx context.Context, tx pgx.Tx, preparationID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, preparationID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockSalePreparationRepository) LinkActualSale(ctx context.Context, preparationID string, saleID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, preparationID, saleID, updatedBy, updatedAt)
	return args.Error(0)
}

// MockSaleRepository is a mock for the SaleRepositoryFacade interface.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesByAsset(ctx context.Context, assetID string) ([]domain.Sale, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListUnpostedSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) MarkSalePostedInTx(ctx context.Context, tx pgx.Tx, saleID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, saleID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

// MockWriteOffRepository is a mock for the WriteOffRepositoryFacade interface.
type MockWriteOffRepository struct {
	mock.Mock
}

func (m *MockWriteOffRepository) FindWriteOffByID(ctx context.Context, writeOffID string) (*domain.WriteOff, error) {
	args := m.Called(ctx, writeOffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WriteOff), args.Error(1)
}

func (m *MockWriteOffRepository) ListWriteOffsByAsset(ctx context.Context, assetID string) ([]domain.WriteOff, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WriteOff), args.Error(1)
}

func (m *MockWriteOffRepository) ListUnpostedWriteOffs(ctx context.Context) ([]domain.WriteOff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WriteOff), args.Error(1)
}

func (m *MockWriteOffRepository) SaveWriteOff(ctx context.Context, writeOff domain.WriteOff) error {
	args := m.Called(ctx, writeOff)
	return args.Error(0)
}

func (m *MockWriteOffRepository) MarkWriteOffPostedInTx(ctx context.Context, tx pgx.Tx, writeOffID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, tx, writeOffID, journalEntryID, postedBy, postedAt)
	return args.Error(0)
}

// MockJournalRepository is a mock for the JournalRepositoryFacade interface.
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntriesBySource(ctx context.Context, sourceDocument string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, sourceDocument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

// MockAccountRepository is a mock for the AccountRepositoryFacade interface.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartOfAccount), args.Error(1)
}
