package loan

// Status is the lifecycle state of a loan. Origination statuses run from
// DRAFT through APPROVED (or a terminal denial/withdrawal); servicing
// statuses cover the funded loan until payoff, refinance, or charge-off.
type Status string

const (
	// Origination
	StatusDraft         Status = "DRAFT"
	StatusSubmitted     Status = "SUBMITTED"
	StatusUnderReview   Status = "UNDER_REVIEW"
	StatusInfoRequested Status = "INFO_REQUESTED"
	StatusApproved      Status = "APPROVED"
	StatusDenied        Status = "DENIED"
	StatusWithdrawn     Status = "WITHDRAWN"
	StatusExpired       Status = "EXPIRED"

	// Servicing
	StatusActive     Status = "ACTIVE"
	StatusDelinquent Status = "DELINQUENT"
	StatusDefault    Status = "DEFAULT"
	StatusChargedOff Status = "CHARGED_OFF"
	StatusPaidOff    Status = "PAID_OFF"
	StatusRefinanced Status = "REFINANCED"
)

// transitions is the fixed adjacency map of the lifecycle. Built once,
// read-only; every status appears exactly once as a key, terminal statuses
// map to nil.
var transitions = map[Status][]Status{
	StatusDraft:         {StatusSubmitted, StatusWithdrawn},
	StatusSubmitted:     {StatusUnderReview, StatusWithdrawn},
	StatusUnderReview:   {StatusApproved, StatusDenied, StatusInfoRequested},
	StatusInfoRequested: {StatusUnderReview, StatusWithdrawn},
	StatusApproved:      {StatusActive, StatusExpired, StatusWithdrawn},
	StatusActive:        {StatusDelinquent, StatusPaidOff, StatusRefinanced},
	StatusDelinquent:    {StatusActive, StatusDefault},
	StatusDefault:       {StatusActive, StatusChargedOff},
	StatusChargedOff:    {StatusPaidOff},
	StatusDenied:        nil,
	StatusWithdrawn:     nil,
	StatusExpired:       nil,
	StatusPaidOff:       nil,
	StatusRefinanced:    nil,
}

// AllStatuses lists every lifecycle status.
func AllStatuses() []Status {
	out := make([]Status, 0, len(transitions))
	for s := range transitions {
		out = append(out, s)
	}
	return out
}

// IsStatus reports whether s is one of the known lifecycle statuses.
func IsStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// ValidTransition reports whether the lifecycle permits moving from one
// status directly to another.
func ValidTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in one transition,
// in table order. Empty for terminal (and unknown) statuses.
func NextStatuses(s Status) []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

var statusLabels = map[Status]string{
	StatusDraft:         "Draft",
	StatusSubmitted:     "Submitted",
	StatusUnderReview:   "Under Review",
	StatusInfoRequested: "Info Requested",
	StatusApproved:      "Approved",
	StatusDenied:        "Denied",
	StatusWithdrawn:     "Withdrawn",
	StatusExpired:       "Expired",
	StatusActive:        "Active",
	StatusDelinquent:    "Delinquent",
	StatusDefault:       "Default",
	StatusChargedOff:    "Charged Off",
	StatusPaidOff:       "Paid Off",
	StatusRefinanced:    "Refinanced",
}

// Label returns the human-readable form of a status ("Under Review"),
// falling back to the raw value for unknown statuses.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}
