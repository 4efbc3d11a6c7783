package services

// ServiceContainer bundles the service facades for handler wiring.
type ServiceContainer struct {
	LedgerSvc    LedgerSvcFacade
	AccountSvc   AccountSvcFacade
	OutletSvc    OutletSvcFacade
	ReportingSvc ReportingSvcFacade
}
