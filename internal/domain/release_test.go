package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Календарь недели 31.08-06.09.2026: будни Вт 01.09 - Пт 04.09,
// выходные Сб 05.09 и Вс 06.09. Будни открываются в понедельник 31.08 08:00,
// выходные в четверг 03.09 08:00.

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestReleaseFor_WeekdayBeforeRelease(t *testing.T) {
	now := at(2026, time.August, 31, 7, 59)
	decision := ReleaseFor(date(2026, time.September, 3), CategoryRegular, nil, now, DefaultRulePolicy())

	assert.False(t, decision.Released)
	assert.Equal(t, at(2026, time.August, 31, 8, 0), decision.ReleaseAt)
	assert.Contains(t, decision.Reason, "31/08/2026")
	assert.Contains(t, decision.Reason, "08:00")
}

func TestReleaseFor_WeekdayAtReleaseInstant(t *testing.T) {
	// Открытие включительно: ровно в 08:00 бронь уже доступна
	now := at(2026, time.August, 31, 8, 0)
	decision := ReleaseFor(date(2026, time.September, 3), CategoryRegular, nil, now, DefaultRulePolicy())

	assert.True(t, decision.Released)
}

func TestReleaseFor_WeekendAnchoredToThursday(t *testing.T) {
	saturday := date(2026, time.September, 5)

	decision := ReleaseFor(saturday, CategoryRegular, nil, at(2026, time.September, 3, 7, 59), DefaultRulePolicy())
	require.False(t, decision.Released)
	assert.Equal(t, at(2026, time.September, 3, 8, 0), decision.ReleaseAt)

	decision = ReleaseFor(saturday, CategoryRegular, nil, at(2026, time.September, 3, 8, 0), DefaultRulePolicy())
	assert.True(t, decision.Released)
}

func TestReleaseFor_NextWeekUsesItsOwnAnchor(t *testing.T) {
	// Четверг следующей недели открывается в её понедельник, а не в текущий
	nextThursday := date(2026, time.September, 10)

	decision := ReleaseFor(nextThursday, CategoryRegular, nil, at(2026, time.September, 1, 12, 0), DefaultRulePolicy())
	require.False(t, decision.Released)
	assert.Equal(t, at(2026, time.September, 7, 8, 0), decision.ReleaseAt)

	decision = ReleaseFor(nextThursday, CategoryRegular, nil, at(2026, time.September, 7, 8, 0), DefaultRulePolicy())
	assert.True(t, decision.Released)
}

func TestReleaseFor_BeyondNextWeek(t *testing.T) {
	farDate := date(2026, time.September, 15)
	now := at(2026, time.September, 1, 12, 0)

	decision := ReleaseFor(farDate, CategoryRegular, nil, now, DefaultRulePolicy())
	assert.False(t, decision.Released)
	assert.True(t, decision.BeyondNextWeek)
	assert.NotEmpty(t, decision.Reason)

	// Учитель и админ видят такие даты как доступные
	for _, role := range []Role{RoleTeacher, RoleAdmin} {
		decision = ReleaseFor(farDate, CategoryRegular, []Role{role}, now, DefaultRulePolicy())
		assert.True(t, decision.Released)
		assert.True(t, decision.BeyondNextWeek)
	}
}

func TestReleaseFor_PastWeekAlwaysReleased(t *testing.T) {
	decision := ReleaseFor(date(2026, time.August, 25), CategoryRegular, nil, at(2026, time.September, 1, 0, 0), DefaultRulePolicy())
	assert.True(t, decision.Released)
}

func TestReleaseFor_PrivilegedBypassTimeGate(t *testing.T) {
	now := at(2026, time.August, 31, 6, 0)
	decision := ReleaseFor(date(2026, time.September, 3), CategoryRegular, []Role{RoleTeacher}, now, DefaultRulePolicy())
	assert.True(t, decision.Released)
}

func TestReleaseFor_BeachSharesSchedule(t *testing.T) {
	now := at(2026, time.August, 31, 8, 0)
	regular := ReleaseFor(date(2026, time.September, 3), CategoryRegular, nil, now, DefaultRulePolicy())
	beach := ReleaseFor(date(2026, time.September, 3), CategoryBeach, nil, now, DefaultRulePolicy())
	assert.Equal(t, regular.Released, beach.Released)
	assert.Equal(t, regular.ReleaseAt, beach.ReleaseAt)
}
