package queries

import (
	"time"

	"github.com/google/uuid"
)

// PhaseProgressView is the cursor of one scan phase.
type PhaseProgressView struct {
	Offset  int `json:"offset"`
	Scanned int `json:"scanned"`
	Matched int `json:"matched"`
}

// ScanView describes the scan in progress, if any.
type ScanView struct {
	RunID     uuid.UUID         `json:"runId"`
	Phase     string            `json:"phase"`
	Users     PhaseProgressView `json:"users"`
	Orders    PhaseProgressView `json:"orders"`
	Coupons   PhaseProgressView `json:"coupons"`
	PageSize  int               `json:"pageSize"`
	BatchSize int               `json:"batchSize"`
	StartedAt time.Time         `json:"startedAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// StatusView lets a client resume a workflow after a reload.
type StatusView struct {
	Scanning bool           `json:"scanning"`
	Scan     *ScanView      `json:"scan,omitempty"`
	Pending  map[string]int `json:"pending"`
	Total    int            `json:"totalPending"`
}

type SettingsView struct {
	DeleteNoName          bool     `json:"deleteNoName"`
	DeleteUnlistedDomains bool     `json:"deleteUnlistedDomains"`
	AllowedDomains        []string `json:"allowedDomains"`
	DeleteByRole          string   `json:"deleteRole"`
	DeleteOrdersByStatus  bool     `json:"deleteOrders"`
	OrderStatuses         []string `json:"orderStatuses"`
	DeleteCouponsByStatus bool     `json:"deleteCoupons"`
	CouponStatuses        []string `json:"couponStatuses"`
	BatchSize             int      `json:"batchSize"`
	AllowedBatchSizes     []int    `json:"allowedBatchSizes"`
}
