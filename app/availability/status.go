package availability

// Status is the tri-state-plus-OK verdict on a quota. The numeric order
// runs from least to most available, so the minimum over several quotas is
// the binding one.
//
// The gaps between GONE, ORDERED and RESERVED matter to buyers: paid sales
// consume capacity for good, pending orders may still lapse, and cart
// reservations are the soonest to be released.
type Status int

const (
	// StatusGone means the quota is fully consumed by paid orders.
	StatusGone Status = 0
	// StatusOrdered means remaining capacity is held by unexpired pending
	// orders; it may return if those orders are never paid.
	StatusOrdered Status = 10
	// StatusReserved means remaining capacity is held in carts; it returns
	// as soon as those reservations expire.
	StatusReserved Status = 20
	// StatusOK means units are available for sale right now.
	StatusOK Status = 100
)

func (s Status) String() string {
	switch s {
	case StatusGone:
		return "gone"
	case StatusOrdered:
		return "ordered"
	case StatusReserved:
		return "reserved"
	case StatusOK:
		return "ok"
	default:
		return "unknown"
	}
}
