package domain

import (
	"time"

	"github.com/elitetenis/court-booking-service/pkg/types"
)

// RulePolicy carries every tunable parameter of the booking rules.
// The engine never reads configuration directly; main loads the policy
// once and injects it, so tests can build arbitrary policies inline.
type RulePolicy struct {
	// Release times anchored to the week being booked: weekday slots
	// open on that week's Monday, weekend slots on its Thursday.
	WeekdayReleaseTime types.TimeString
	WeekendReleaseTime types.TimeString

	MaxNormalWeekdayPerWeek int
	MaxNormalWeekendPerWeek int
	MaxPyramidPerWeek       int
	MaxBeachWeekdayPerWeek  int
	MaxBeachWeekendPerWeek  int
	MaxRegularPerDay        int

	// Reservations created closer than this to their own slot start are
	// exempt from quota accounting.
	LastMinuteWindow time.Duration

	// Inclusive cap on block/unblock date ranges.
	MaxInterdictionRangeDays int
}

// DefaultRulePolicy returns the club's current rule set
func DefaultRulePolicy() RulePolicy {
	return RulePolicy{
		WeekdayReleaseTime:       "08:00",
		WeekendReleaseTime:       "08:00",
		MaxNormalWeekdayPerWeek:  2,
		MaxNormalWeekendPerWeek:  1,
		MaxPyramidPerWeek:        1,
		MaxBeachWeekdayPerWeek:   1,
		MaxBeachWeekendPerWeek:   1,
		MaxRegularPerDay:         1,
		LastMinuteWindow:         2 * time.Hour,
		MaxInterdictionRangeDays: 31,
	}
}
