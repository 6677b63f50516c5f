package domain

import (
	"time"

	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

// WeeklyCounts are a member's quota-relevant games inside one club week,
// recomputed from the active snapshot on every call. Lessons, interdictions
// and last-minute bookings are never counted.
type WeeklyCounts struct {
	NormalWeekday  int
	NormalWeekend  int
	PyramidWeekday int
	PyramidWeekend int
	BeachWeekday   int
	BeachWeekend   int
}

// PyramidTotal returns the ladder games of the week; the ladder cap applies
// to the weekly total, not to weekday/weekend buckets separately
func (c WeeklyCounts) PyramidTotal() int {
	return c.PyramidWeekday + c.PyramidWeekend
}

// CountWeek tallies the member's games in the week containing weekOf.
// On regular courts a member is involved as holder or opponent; on beach
// courts only as holder, since beach games carry no adversary.
func CountWeek(snapshot []*Reservation, memberCPF string, weekOf time.Time, policy RulePolicy) WeeklyCounts {
	var counts WeeklyCounts

	for _, r := range snapshot {
		if !countable(r, policy) || !SameWeek(r.Date, weekOf) {
			continue
		}

		weekend := IsWeekend(r.Date)

		switch CategoryForCourt(r.CourtID) {
		case CategoryRegular:
			if !r.GameType.IsAdversarial() || !r.Involves(memberCPF) {
				continue
			}
			switch {
			case r.GameType == GamePyramid && weekend:
				counts.PyramidWeekend++
			case r.GameType == GamePyramid:
				counts.PyramidWeekday++
			case weekend:
				counts.NormalWeekend++
			default:
				counts.NormalWeekday++
			}
		case CategoryBeach:
			if !r.GameType.IsBeachSport() || !cpf.Equal(r.MemberCPF, memberCPF) {
				continue
			}
			if weekend {
				counts.BeachWeekend++
			} else {
				counts.BeachWeekday++
			}
		}
	}

	return counts
}

// CountSameDayRegular tallies the member's regular-court games on one
// calendar day, for the daily limit that is stricter than the weekly caps
func CountSameDayRegular(snapshot []*Reservation, memberCPF string, date time.Time, policy RulePolicy) int {
	count := 0
	for _, r := range snapshot {
		if !countable(r, policy) || !SameDay(r.Date, date) {
			continue
		}
		if CategoryForCourt(r.CourtID) != CategoryRegular {
			continue
		}
		if r.GameType.IsAdversarial() && r.Involves(memberCPF) {
			count++
		}
	}
	return count
}

// countable filters out rows exempt from quota accounting
func countable(r *Reservation, policy RulePolicy) bool {
	if !r.IsActive() || !r.GameType.CountsTowardQuota() {
		return false
	}
	return !r.IsLastMinute(policy.LastMinuteWindow)
}
