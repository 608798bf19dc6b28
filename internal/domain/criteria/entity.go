package criteria

import (
	"strings"

	"bulk-cleanup/internal/domain/record"
)

// Input is the raw, loosely validated settings form.
type Input struct {
	DeleteNoName          bool     `yaml:"delete_no_name"`
	DeleteUnlistedDomains bool     `yaml:"delete_unlisted_domains"`
	AllowedDomains        []string `yaml:"allowed_domains"`
	DeleteByRole          string   `yaml:"delete_role"`
	DeleteOrdersByStatus  bool     `yaml:"delete_orders"`
	OrderStatuses         []string `yaml:"order_statuses"`
	DeleteCouponsByStatus bool     `yaml:"delete_coupons"`
	CouponStatuses        []string `yaml:"coupon_statuses"`
	BatchSize             int      `yaml:"batch_size"`
}

// Criteria is the validated deletion configuration. A copy is frozen into the
// scan state when a scan starts.
type Criteria struct {
	DeleteNoName          bool      `json:"delete_no_name"`
	DeleteUnlistedDomains bool      `json:"delete_unlisted_domains"`
	AllowedDomains        []string  `json:"allowed_domains"`
	DeleteByRole          string    `json:"delete_role,omitempty"`
	DeleteOrdersByStatus  bool      `json:"delete_orders"`
	OrderStatuses         []string  `json:"order_statuses"`
	DeleteCouponsByStatus bool      `json:"delete_coupons"`
	CouponStatuses        []string  `json:"coupon_statuses"`
	BatchSize             BatchSize `json:"batch_size"`
}

func NewCriteria(in Input) (Criteria, error) {
	role := strings.TrimSpace(in.DeleteByRole)
	if strings.EqualFold(role, record.RoleAdministrator) {
		return Criteria{}, ErrAdministratorRole
	}

	return Criteria{
		DeleteNoName:          in.DeleteNoName,
		DeleteUnlistedDomains: in.DeleteUnlistedDomains,
		AllowedDomains:        ParseDomains(in.AllowedDomains...),
		DeleteByRole:          role,
		DeleteOrdersByStatus:  in.DeleteOrdersByStatus,
		OrderStatuses:         normalizeStatuses(in.OrderStatuses),
		DeleteCouponsByStatus: in.DeleteCouponsByStatus,
		CouponStatuses:        normalizeStatuses(in.CouponStatuses),
		BatchSize:             NewBatchSize(in.BatchSize),
	}, nil
}

// Default matches nothing and deletes in batches of DefaultBatchSize.
func Default() Criteria {
	return Criteria{BatchSize: DefaultBatchSize}
}

func (c Criteria) OrdersEnabled() bool {
	return c.DeleteOrdersByStatus && len(c.OrderStatuses) > 0
}

func (c Criteria) CouponsEnabled() bool {
	return c.DeleteCouponsByStatus && len(c.CouponStatuses) > 0
}

// Enabled reports whether the given kind takes part in a scan at all.
// Users are always scanned.
func (c Criteria) Enabled(kind record.Kind) bool {
	switch kind {
	case record.KindUser:
		return true
	case record.KindOrder:
		return c.OrdersEnabled()
	case record.KindCoupon:
		return c.CouponsEnabled()
	default:
		return false
	}
}

func (c Criteria) StatusesFor(kind record.Kind) []string {
	switch kind {
	case record.KindOrder:
		return c.OrderStatuses
	case record.KindCoupon:
		return c.CouponStatuses
	default:
		return nil
	}
}

func (c Criteria) ToInput() Input {
	return Input{
		DeleteNoName:          c.DeleteNoName,
		DeleteUnlistedDomains: c.DeleteUnlistedDomains,
		AllowedDomains:        c.AllowedDomains,
		DeleteByRole:          c.DeleteByRole,
		DeleteOrdersByStatus:  c.DeleteOrdersByStatus,
		OrderStatuses:         c.OrderStatuses,
		DeleteCouponsByStatus: c.DeleteCouponsByStatus,
		CouponStatuses:        c.CouponStatuses,
		BatchSize:             c.BatchSize.Int(),
	}
}
