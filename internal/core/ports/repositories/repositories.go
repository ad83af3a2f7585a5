package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AssetRepo           AssetRepositoryWithTx
	AccountRepo         AccountRepositoryFacade
	DepreciationRepo    DepreciationRepositoryFacade
	UsageRepo           MonthlyUsageRepositoryFacade
	JournalRepo         JournalRepositoryFacade
	EntryRepo           EntryRepositoryFacade
	ConservationRepo    ConservationRepositoryFacade
	ImprovementRepo     CapitalImprovementRepositoryFacade
	ParameterChangeRepo ParameterChangeRepositoryFacade
	SalePreparationRepo SalePreparationRepositoryFacade
	SaleRepo            SaleRepositoryFacade
	WriteOffRepo        WriteOffRepositoryFacade
}
