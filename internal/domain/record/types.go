package record

import "errors"

var ErrInvalidKind = errors.New("invalid record kind")

// Kind identifies a target record type. Declaration order is the deletion priority.
type Kind string

const (
	KindUser   Kind = "users"
	KindOrder  Kind = "orders"
	KindCoupon Kind = "coupons"
)

// Kinds lists every kind in deletion priority order.
var Kinds = []Kind{KindUser, KindOrder, KindCoupon}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindUser, KindOrder, KindCoupon:
		return true
	default:
		return false
	}
}

// Singular returns the label used in log lines ("user", "order", "coupon").
func (k Kind) Singular() string {
	switch k {
	case KindUser:
		return "user"
	case KindOrder:
		return "order"
	case KindCoupon:
		return "coupon"
	default:
		return string(k)
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}
