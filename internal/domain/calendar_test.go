package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	monday := date(2026, time.August, 31)

	assert.Equal(t, monday, WeekStart(date(2026, time.August, 31)))  // понедельник
	assert.Equal(t, monday, WeekStart(date(2026, time.September, 2))) // среда
	assert.Equal(t, monday, WeekStart(date(2026, time.September, 5))) // суббота
	assert.Equal(t, monday, WeekStart(date(2026, time.September, 6))) // воскресенье

	assert.Equal(t, date(2026, time.September, 7), WeekStart(date(2026, time.September, 7)))
}

func TestWeekStart_StripsTimeOfDay(t *testing.T) {
	at := time.Date(2026, time.September, 3, 18, 45, 12, 0, time.UTC)
	assert.Equal(t, date(2026, time.August, 31), WeekStart(at))
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(date(2026, time.September, 1))) // вторник
	assert.False(t, IsWeekend(date(2026, time.September, 4))) // пятница
	assert.True(t, IsWeekend(date(2026, time.September, 5)))  // суббота
	assert.True(t, IsWeekend(date(2026, time.September, 6)))  // воскресенье
	assert.False(t, IsWeekend(date(2026, time.September, 7))) // понедельник
}

func TestSameWeek(t *testing.T) {
	assert.True(t, SameWeek(date(2026, time.September, 1), date(2026, time.September, 6)))
	assert.False(t, SameWeek(date(2026, time.September, 6), date(2026, time.September, 7)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.September, 3, 9, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.September, 3, 22, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.AddDate(0, 0, 1)))
}
