package availability

// Counts holds how many units of a quota are consumed, per consumer kind.
// All three are totals over positions matching the quota's position
// lookup; expired pending orders and expired cart reservations are already
// excluded by the counter.
type Counts struct {
	Paid    int64
	Pending int64
	InCart  int64
}

// Result is a quota verdict. Remaining is nil exactly when the quota is
// unlimited; whenever the status is not OK, Remaining points at zero.
type Result struct {
	Status    Status
	Remaining *int64
}

// ForQuota computes a single quota's verdict from its capacity and the
// current counts. Size nil means unlimited.
//
// The subtraction is layered rather than a single formula: each stage that
// exhausts the capacity names the kind of consumer that exhausted it,
// which is what the caller surfaces to buyers.
func ForQuota(size *int64, counts Counts) Result {
	if size == nil {
		return Result{Status: StatusOK}
	}

	remaining := *size

	remaining -= counts.Paid
	if remaining <= 0 {
		return exhausted(StatusGone)
	}

	remaining -= counts.Pending
	if remaining <= 0 {
		return exhausted(StatusOrdered)
	}

	remaining -= counts.InCart
	if remaining <= 0 {
		return exhausted(StatusReserved)
	}

	return Result{Status: StatusOK, Remaining: &remaining}
}

func exhausted(status Status) Result {
	zero := int64(0)
	return Result{Status: status, Remaining: &zero}
}

// Combine folds the verdicts of every quota covering one item or
// variation into the binding one: minimum status, tie-broken by the
// smaller remaining count. A nil remaining (unlimited) compares larger
// than any finite remaining. Combine panics on an empty slice; callers
// must handle the zero-quota case first (see Checker).
func Combine(results []Result) Result {
	best := results[0]
	for _, r := range results[1:] {
		if less(r, best) {
			best = r
		}
	}
	return best
}

func less(a, b Result) bool {
	if a.Status != b.Status {
		return a.Status < b.Status
	}
	return remainingLess(a.Remaining, b.Remaining)
}

// remainingLess orders remaining counts with nil as positive infinity.
func remainingLess(a, b *int64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}
