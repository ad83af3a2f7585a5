package services

import (
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account lookup and the journal collaborator come first since every
	// posting service depends on them.
	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account)

	container.Asset = NewAssetService(repos.AssetRepo, container.Account)
	container.Entry = NewEntryService(repos.EntryRepo, repos.AssetRepo, container.Account, container.Journal)
	container.Depreciation = NewDepreciationService(repos.DepreciationRepo, repos.AssetRepo, repos.UsageRepo, container.Journal)
	container.Usage = NewMonthlyUsageService(repos.UsageRepo, repos.AssetRepo)
	container.Improvement = NewCapitalImprovementService(repos.ImprovementRepo, repos.AssetRepo, container.Journal)
	container.Conservation = NewConservationService(repos.ConservationRepo, repos.AssetRepo)
	container.ParameterChange = NewParameterChangeService(repos.ParameterChangeRepo, repos.AssetRepo, container.Journal)
	container.SalePreparation = NewSalePreparationService(repos.SalePreparationRepo, repos.AssetRepo, container.Journal)
	container.Sale = NewSaleService(repos.SaleRepo, repos.SalePreparationRepo, repos.AssetRepo, container.Journal)
	container.WriteOff = NewWriteOffService(repos.WriteOffRepo, repos.AssetRepo, container.Journal)

	return container
}
