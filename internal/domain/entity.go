package domain

// EntityKind identifies one of the five stored record kinds.
type EntityKind string

const (
	KindProfile    EntityKind = "profile"
	KindWorkstream EntityKind = "workstream"
	KindTimesheet  EntityKind = "timesheet"
	KindBudget     EntityKind = "budget"
	KindForecast   EntityKind = "forecast"
)

// KindProbeOrder is the fixed order in which cross-kind token lookups
// probe the stored kinds.
var KindProbeOrder = []EntityKind{
	KindProfile, KindWorkstream, KindTimesheet, KindBudget, KindForecast,
}

// Prefix returns the single-letter prefix used when deriving an entity's
// anonymized id. The prefix namespaces ids per kind, so two entities of
// different kinds can never share a token.
func (k EntityKind) Prefix() string {
	switch k {
	case KindProfile:
		return "P"
	case KindWorkstream:
		return "W"
	case KindTimesheet:
		return "T"
	case KindBudget:
		return "B"
	case KindForecast:
		return "F"
	}
	return ""
}

// Entity is implemented by every stored record kind. Key is the
// caller-supplied original id; Token is the derived anonymized id.
type Entity interface {
	Kind() EntityKind
	Key() string
	Token() string
}
