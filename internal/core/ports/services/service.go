package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Asset           AssetSvcFacade
	Entry           EntrySvcFacade
	Depreciation    DepreciationSvcFacade
	Usage           MonthlyUsageSvcFacade
	Improvement     CapitalImprovementSvcFacade
	Conservation    ConservationSvcFacade
	ParameterChange ParameterChangeSvcFacade
	SalePreparation SalePreparationSvcFacade
	Sale            SaleSvcFacade
	WriteOff        WriteOffSvcFacade
	Journal         JournalSvcFacade
	Account         AccountSvcFacade
}
