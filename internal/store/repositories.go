package store

import "github.com/webstore/seller-sync/internal/logger"

type Repositories struct {
	SellerRepository    SellerRepository
	CustomerRepository  CustomerRepository
	CatalogRepository   CatalogRepository
	OrderRepository     OrderRepository
	SettingRepository   SettingRepository
	DashboardRepository DashboardRepository
	ReportRepository    ReportRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		SellerRepository:    NewSellerRepository(db, log),
		CustomerRepository:  NewCustomerRepository(db, log),
		CatalogRepository:   NewCatalogRepository(db, log),
		OrderRepository:     NewOrderRepository(db, log),
		SettingRepository:   NewSettingRepository(db, log),
		DashboardRepository: NewDashboardRepository(db, log),
		ReportRepository:    NewReportRepository(db, log),
	}
}
