package constants

// ApiBasePath is the base path all routed services are mounted under.
const ApiBasePath = "/scs/v1"

// Match types of a double booking classification.
const (
	MatchTypeExactLicense = "exact-identifier"
	MatchTypeFuzzyName    = "fuzzy-name"
	MatchTypeNone         = "none"
)

// Alert lifecycle statuses.
const (
	AlertStatusPending  = "pending"
	AlertStatusResolved = "resolved"
	AlertStatusIgnored  = "ignored"
)

// AllowedTransitionStatuses defines the statuses an admin may move an alert to.
// There is no path back to pending.
var AllowedTransitionStatuses = map[string]bool{
	AlertStatusResolved: true,
	AlertStatusIgnored:  true,
}

// Query parameter keys.
const (
	EventIdParam = "event_id"
)
