package services

// ServiceContainer holds instances of all the application services.
// Handlers depend on these facades only.
type ServiceContainer struct {
	Auth     AuthSvcFacade
	Product  ProductSvcFacade
	Customer CustomerSvcFacade
	Merchant MerchantSvcFacade
	Sale     SaleSvcFacade
	Record   RecordSvcFacade
	Report   ReportSvcFacade
	Vendor   VendorSvcFacade
}
