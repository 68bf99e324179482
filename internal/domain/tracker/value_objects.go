package tracker

import "strings"

// MaxLocationLength bounds the state code (UF) accepted from clients.
// Marketplace state codes are two letters; empty means nationwide.
const MaxLocationLength = 2

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

type Condition string

const (
	ConditionAll  Condition = "all"
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// ParseCondition normalizes the client-supplied condition filter.
// Empty input falls back to ConditionAll, matching the form default.
func ParseCondition(s string) (Condition, error) {
	switch Condition(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ConditionAll, nil
	case ConditionAll:
		return ConditionAll, nil
	case ConditionNew:
		return ConditionNew, nil
	case ConditionUsed:
		return ConditionUsed, nil
	default:
		return "", ErrInvalidCondition
	}
}

// NewSearchTerm validates the required free-text query.
func NewSearchTerm(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptySearchTerm
	}
	return t, nil
}

// NewNotifyAddress validates the required contact string. Channel-specific
// format rules (phone masks etc.) belong to the handler boundary.
func NewNotifyAddress(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyNotifyAddress
	}
	return t, nil
}

// NewLocation validates the optional state code. The code is kept upper-cased
// so the region cache and the snapshot stay consistent.
func NewLocation(s string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if len(t) > MaxLocationLength {
		return "", ErrLocationTooLong
	}
	return t, nil
}
