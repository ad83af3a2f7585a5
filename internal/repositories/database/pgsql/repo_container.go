package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	assetRepo := newPgxAssetRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	depreciationRepo := newPgxDepreciationRepository(dbPool)
	usageRepo := newPgxMonthlyUsageRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)
	conservationRepo := newPgxConservationRepository(dbPool)
	improvementRepo := newPgxCapitalImprovementRepository(dbPool)
	parameterChangeRepo := newPgxParameterChangeRepository(dbPool)
	salePreparationRepo := newPgxSalePreparationRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool)
	writeOffRepo := newPgxWriteOffRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AssetRepo:           assetRepo,
		AccountRepo:         accountRepo,
		DepreciationRepo:    depreciationRepo,
		UsageRepo:           usageRepo,
		JournalRepo:         journalRepo,
		EntryRepo:           entryRepo,
		ConservationRepo:    conservationRepo,
		ImprovementRepo:     improvementRepo,
		ParameterChangeRepo: parameterChangeRepo,
		SalePreparationRepo: salePreparationRepo,
		SaleRepo:            saleRepo,
		WriteOffRepo:        writeOffRepo,
	}
}
