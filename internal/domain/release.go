package domain

import (
	"fmt"
	"time"
)

// ReleaseDecision is the outcome of the release gate for one date
type ReleaseDecision struct {
	Released bool
	// ReleaseAt is the exact timestamp the date's slots open for ordinary
	// members. Zero when no timed release applies (weeks beyond next).
	ReleaseAt time.Time
	// BeyondNextWeek marks dates ordinary members can never book yet:
	// only teachers (lessons) and admins (interdictions) may act there.
	BeyondNextWeek bool
	// Reason is a user-facing explanation when not released.
	Reason string
}

// ReleaseFor decides whether the given date's slots are visible as bookable
// at instant now. Release timestamps are anchored to the week being booked,
// not the booking week: weekday days (Tue-Fri) of a week open on that week's
// Monday, weekend days on its Thursday. Both court categories currently share
// the same schedule; the category parameter keeps them independently tunable.
//
// Weeks strictly before the current week are treated as released so history
// stays visible. Teachers and admins bypass the time gate entirely for
// viewing; their booking actions are still restricted by game type in the
// eligibility checker.
func ReleaseFor(date time.Time, category CourtCategory, roles []Role, now time.Time, policy RulePolicy) ReleaseDecision {
	_ = category

	week := WeekStart(date)
	currentWeek := WeekStart(now)
	nextWeek := currentWeek.AddDate(0, 0, 7)

	privileged := false
	for _, r := range roles {
		if r == RoleTeacher || r == RoleAdmin {
			privileged = true
			break
		}
	}

	if week.Before(currentWeek) {
		return ReleaseDecision{Released: true}
	}

	if week.After(nextWeek) {
		if privileged {
			return ReleaseDecision{Released: true, BeyondNextWeek: true}
		}
		return ReleaseDecision{
			BeyondNextWeek: true,
			Reason:         "esta semana ainda não está disponível para reservas",
		}
	}

	releaseAt := releaseInstant(date, week, policy)
	if privileged || !now.Before(releaseAt) {
		return ReleaseDecision{Released: true, ReleaseAt: releaseAt}
	}

	return ReleaseDecision{
		ReleaseAt: releaseAt,
		Reason: fmt.Sprintf("os horários deste dia serão liberados em %s às %s",
			releaseAt.Format("02/01/2006"), releaseAt.Format(TimeFormat)),
	}
}

// releaseInstant computes the release timestamp for a date inside its week
func releaseInstant(date, weekMonday time.Time, policy RulePolicy) time.Time {
	if IsWeekend(date) {
		thursday := weekMonday.AddDate(0, 0, 3)
		at, err := policy.WeekendReleaseTime.At(thursday)
		if err != nil {
			return thursday
		}
		return at
	}
	at, err := policy.WeekdayReleaseTime.At(weekMonday)
	if err != nil {
		return weekMonday
	}
	return at
}
