package domain

import "cloud.google.com/go/civil"

// InterestRule fixes the annual rate that applies from EffectiveDate until
// superseded by a later rule. At most one rule exists per effective date
// system-wide; RatePercent is strictly between 0 and 100.
type InterestRule struct {
	EffectiveDate civil.Date
	RuleID        string
	RatePercent   Money
}
