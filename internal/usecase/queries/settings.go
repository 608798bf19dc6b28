package queries

import (
	"context"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/shared"
)

type SettingsQueries interface {
	GetSettings(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	store shared.CriteriaStore
}

func NewSettingsQueries(store shared.CriteriaStore) SettingsQueries {
	return &settingsQueriesImpl{store: store}
}

func (q *settingsQueriesImpl) GetSettings(ctx context.Context) (*SettingsView, error) {
	c, err := q.store.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load criteria")
	}
	return ToSettingsView(c), nil
}

func ToSettingsView(c criteria.Criteria) *SettingsView {
	sizes := make([]int, 0, len(criteria.AllowedBatchSizes()))
	for _, b := range criteria.AllowedBatchSizes() {
		sizes = append(sizes, b.Int())
	}
	return &SettingsView{
		DeleteNoName:          c.DeleteNoName,
		DeleteUnlistedDomains: c.DeleteUnlistedDomains,
		AllowedDomains:        nonNil(c.AllowedDomains),
		DeleteByRole:          c.DeleteByRole,
		DeleteOrdersByStatus:  c.DeleteOrdersByStatus,
		OrderStatuses:         nonNil(c.OrderStatuses),
		DeleteCouponsByStatus: c.DeleteCouponsByStatus,
		CouponStatuses:        nonNil(c.CouponStatuses),
		BatchSize:             c.BatchSize.Int(),
		AllowedBatchSizes:     sizes,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
