package request

import "bulk-cleanup/internal/domain/criteria"

type RunDeletionBatchRequest struct {
	BatchSize int `json:"batchSize"`
}

type UpdateSettingsRequest struct {
	DeleteNoName          bool     `json:"deleteNoName"`
	DeleteUnlistedDomains bool     `json:"deleteUnlistedDomains"`
	AllowedDomains        []string `json:"allowedDomains" binding:"max=500,dive,max=253"`
	DeleteByRole          string   `json:"deleteRole" binding:"max=64"`
	DeleteOrdersByStatus  bool     `json:"deleteOrders"`
	OrderStatuses         []string `json:"orderStatuses" binding:"max=50,dive,max=64"`
	DeleteCouponsByStatus bool     `json:"deleteCoupons"`
	CouponStatuses        []string `json:"couponStatuses" binding:"max=50,dive,max=64"`
	BatchSize             int      `json:"batchSize"`
}

func (r UpdateSettingsRequest) ToDomain() criteria.Input {
	return criteria.Input{
		DeleteNoName:          r.DeleteNoName,
		DeleteUnlistedDomains: r.DeleteUnlistedDomains,
		AllowedDomains:        r.AllowedDomains,
		DeleteByRole:          r.DeleteByRole,
		DeleteOrdersByStatus:  r.DeleteOrdersByStatus,
		OrderStatuses:         r.OrderStatuses,
		DeleteCouponsByStatus: r.DeleteCouponsByStatus,
		CouponStatuses:        r.CouponStatuses,
		BatchSize:             r.BatchSize,
	}
}
