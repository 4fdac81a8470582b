package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	ProductRepo  ProductRepositoryFacade
	CustomerRepo CustomerRepositoryFacade
	MerchantRepo MerchantRepositoryFacade
	SaleRepo     SaleRepositoryFacade
	RecordRepo   GeneralRecordRepositoryFacade
	VendorRepo   VendorRepositoryFacade
	UserRepo     UserRepositoryFacade
}
