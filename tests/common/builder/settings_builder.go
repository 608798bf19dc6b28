//go:build unit || e2e

package builder

import (
	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/handler/dto/request"
)

type SettingsBuilder struct {
	req request.UpdateSettingsRequest
}

func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{req: request.UpdateSettingsRequest{
		DeleteNoName:          true,
		DeleteUnlistedDomains: true,
		AllowedDomains:        []string{"example.com"},
		DeleteByRole:          "spam",
		DeleteOrdersByStatus:  true,
		OrderStatuses:         []string{"cancelled", "failed"},
		DeleteCouponsByStatus: true,
		CouponStatuses:        []string{"expired"},
		BatchSize:             int(criteria.DefaultBatchSize),
	}}
}

func (b *SettingsBuilder) With(mutate func(*request.UpdateSettingsRequest)) *SettingsBuilder {
	mutate(&b.req)
	return b
}

func (b *SettingsBuilder) BuildDTO() request.UpdateSettingsRequest {
	return b.req
}

func (b *SettingsBuilder) BuildDomain() criteria.Input {
	return b.req.ToDomain()
}
