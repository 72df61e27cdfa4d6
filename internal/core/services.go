package core

type Services struct {
	Auth         *AuthService
	User         *UserService
	Customer     *CustomerService
	Vendor       *VendorService
	Product      *ProductService
	Catalog      *CatalogService
	Subscription *SubscriptionService
	Domain       *DomainService
	Tax          *TaxService
	PaymentTerm  *PaymentTermService
	ItemGroup    *ItemGroupService
	Search       *SearchService
}

func NewServices(db DB, jwtSecret, jwtIssuer string) *Services {
	return &Services{
		Auth:         NewAuthService(db, jwtSecret, jwtIssuer),
		User:         NewUserService(db),
		Customer:     NewCustomerService(db),
		Vendor:       NewVendorService(db),
		Product:      NewProductService(db),
		Catalog:      NewCatalogService(db),
		Subscription: NewSubscriptionService(db),
		Domain:       NewDomainService(db),
		Tax:          NewTaxService(db),
		PaymentTerm:  NewPaymentTermService(db),
		ItemGroup:    NewItemGroupService(db),
		Search:       NewSearchService(db),
	}
}
