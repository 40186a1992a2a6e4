package store

import (
	"context"

	"github.com/webstore/seller-sync/models"
)

type SellerRepository interface {
	CreateSeller(ctx context.Context, seller models.Seller) (models.Seller, error)
	FindSellerByLogin(ctx context.Context, login string) (models.Seller, error)
}

// CustomerRepository serves the customer collection and its attribute
// side-table.
type CustomerRepository interface {
	GetCustomers(ctx context.Context, sellerID int64) ([]models.Customer, error)
	GetCustomerAttributes(ctx context.Context, customerIDs []int64) ([]models.CustomerAttribute, error)
}

// CatalogRepository serves the product and category collections.
type CatalogRepository interface {
	GetProducts(ctx context.Context, sellerID int64) ([]models.Product, error)
	GetCategories(ctx context.Context, sellerID int64) ([]models.Category, error)
}

// OrderRepository serves the order-centric collections: orders, their line
// items, customer addresses and invoices.
type OrderRepository interface {
	GetOrders(ctx context.Context, sellerID int64) ([]models.Order, error)
	GetOrderItems(ctx context.Context, sellerID int64) ([]models.OrderItem, error)
	GetAddresses(ctx context.Context, sellerID int64) ([]models.Address, error)
	GetInvoices(ctx context.Context, sellerID int64) ([]models.Invoice, error)
}

// SettingRepository serves seller settings, including the write-through save
// used by the mobile app's settings screen.
type SettingRepository interface {
	GetSettings(ctx context.Context, sellerID int64) ([]models.Setting, error)
	SaveSetting(ctx context.Context, setting models.Setting) (models.Setting, error)
}

// DashboardRepository serves the read-only dashboard collections.
type DashboardRepository interface {
	GetSellerStats(ctx context.Context, sellerID int64) ([]models.SellerStat, error)
	GetQueuedEmails(ctx context.Context, sellerID int64) ([]models.QueuedEmail, error)
}

// ReportRepository serves client-generated reports.
type ReportRepository interface {
	GetReports(ctx context.Context, sellerID int64) ([]models.Report, error)
	SaveReport(ctx context.Context, report models.Report) (models.Report, error)
}
