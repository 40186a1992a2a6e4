package service

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/internal/store"
	"github.com/webstore/seller-sync/internal/syncer"
	"github.com/webstore/seller-sync/models"
)

// NewCustomerEnrichment builds the pre-encoding hook that joins customer
// custom attributes into the upsert set. It runs exactly once per sync, on
// the upsert set only, so its cost is bounded by the delta size rather than
// the collection size.
func NewCustomerEnrichment(repo store.CustomerRepository) syncer.EnrichFunc[models.Customer] {
	return func(ctx context.Context, upserts []models.Customer) ([]models.Customer, error) {
		ids := make([]int64, 0, len(upserts))
		for _, c := range upserts {
			ids = append(ids, c.ID)
		}

		attrs, err := repo.GetCustomerAttributes(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("loading customer attributes: %w", err)
		}

		byCustomer := make(map[int64][]models.CustomerAttribute, len(upserts))
		for _, a := range attrs {
			byCustomer[a.CustomerID] = append(byCustomer[a.CustomerID], a)
		}

		for i := range upserts {
			upserts[i].Attributes = byCustomer[upserts[i].ID]
		}

		return upserts, nil
	}
}
