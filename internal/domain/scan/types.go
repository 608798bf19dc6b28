package scan

import (
	"errors"

	"bulk-cleanup/internal/domain/record"
)

var (
	ErrInvalidPhase    = errors.New("invalid scan phase")
	ErrScanFinished    = errors.New("scan already finished")
	ErrInvalidPageSize = errors.New("scan page size must be positive")
)

type Phase string

const (
	PhaseUsers   Phase = "users"
	PhaseOrders  Phase = "orders"
	PhaseCoupons Phase = "coupons"
	PhaseDone    Phase = "done"
)

var phaseOrder = []Phase{PhaseUsers, PhaseOrders, PhaseCoupons, PhaseDone}

func (p Phase) String() string {
	return string(p)
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseUsers, PhaseOrders, PhaseCoupons, PhaseDone:
		return true
	default:
		return false
	}
}

// Kind returns the record kind scanned in this phase; false for PhaseDone.
func (p Phase) Kind() (record.Kind, bool) {
	switch p {
	case PhaseUsers:
		return record.KindUser, true
	case PhaseOrders:
		return record.KindOrder, true
	case PhaseCoupons:
		return record.KindCoupon, true
	default:
		return "", false
	}
}

func PhaseOf(kind record.Kind) Phase {
	switch kind {
	case record.KindUser:
		return PhaseUsers
	case record.KindOrder:
		return PhaseOrders
	case record.KindCoupon:
		return PhaseCoupons
	default:
		return PhaseDone
	}
}
