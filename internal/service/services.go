// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package service

import (
	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/store"
	"github.com/webstore/seller-sync/internal/syncer"
)

// Services wires the application services and the per-entity sync
// coordinators. Every replicated collection appears exactly once in Syncers;
// the HTTP layer derives its routes from that list, so adding an entity here
// is all it takes to expose it.
type Services struct {
	AuthService    AuthService
	SettingService SettingService
	ReportService  ReportService

	Syncers []syncer.EntitySyncer
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.SellerRepository, cfg.App, logger),
		SettingService: NewSettingService(repos.SettingRepository, logger),
		ReportService:  NewReportService(repos.ReportRepository, logger),
		Syncers:        newEntitySyncers(repos),
	}
}

// newEntitySyncers builds one coordinator per replicated collection. Each
// coordinator composes a snapshot fetch, an encoder set and, for customers,
// the attribute enrichment hook.
func newEntitySyncers(repos *store.Repositories) []syncer.EntitySyncer {
	syncers := make([]syncer.EntitySyncer, 0, 11)

	syncers = append(syncers,
		syncer.NewCoordinator("customer",
			repos.CustomerRepository.GetCustomers,
			customerEncoders(),
			syncer.WithEnrichment(NewCustomerEnrichment(repos.CustomerRepository)),
		),
		syncer.NewCoordinator("product",
			repos.CatalogRepository.GetProducts,
			productEncoders(),
		),
		syncer.NewCoordinator("category",
			repos.CatalogRepository.GetCategories,
			syncer.NewEncoderSet(encodeCategoryV0),
		),
		syncer.NewCoordinator("order",
			repos.OrderRepository.GetOrders,
			syncer.NewEncoderSet(encodeOrderV0),
		),
		syncer.NewCoordinator("orderitem",
			repos.OrderRepository.GetOrderItems,
			syncer.NewEncoderSet(encodeOrderItemV0),
		),
		syncer.NewCoordinator("address",
			repos.OrderRepository.GetAddresses,
			syncer.NewEncoderSet(encodeAddressV0),
		),
		syncer.NewCoordinator("invoice",
			repos.OrderRepository.GetInvoices,
			syncer.NewEncoderSet(encodeInvoiceV0),
		),
		syncer.NewCoordinator("setting",
			repos.SettingRepository.GetSettings,
			syncer.NewEncoderSet(encodeSettingV0),
		),
		syncer.NewCoordinator("sellerstat",
			repos.DashboardRepository.GetSellerStats,
			syncer.NewEncoderSet(encodeSellerStatV0),
		),
		syncer.NewCoordinator("queuedemail",
			repos.DashboardRepository.GetQueuedEmails,
			syncer.NewEncoderSet(encodeQueuedEmailV0),
		),
		syncer.NewCoordinator("report",
			repos.ReportRepository.GetReports,
			syncer.NewEncoderSet(encodeReportV0),
		),
	)

	return syncers
}
