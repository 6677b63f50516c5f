package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elitetenis/court-booking-service/pkg/types"
)

const (
	holderCPF   = "52998224725"
	opponentCPF = "15350946056"
	otherCPF    = "11144477735"
)

// res собирает активную бронь, созданную задолго до начала слота
func res(courtID int, day time.Time, start types.TimeString, holder, opponent string, game GameType) *Reservation {
	return &Reservation{
		CourtID:       courtID,
		Date:          day,
		TimeSlotStart: start,
		MemberCPF:     holder,
		OpponentCPF:   opponent,
		GameType:      game,
		Status:        StatusActive,
		CreatedAt:     day.AddDate(0, 0, -3),
	}
}

func TestCountWeek_RegularBuckets(t *testing.T) {
	tuesday := date(2026, time.September, 1)
	saturday := date(2026, time.September, 5)

	snapshot := []*Reservation{
		res(1, tuesday, "09:00", holderCPF, opponentCPF, GameNormal),
		res(2, tuesday, "10:30", otherCPF, holderCPF, GameNormal), // как соперник
		res(1, saturday, "09:00", holderCPF, opponentCPF, GameNormal),
		res(1, saturday, "10:30", holderCPF, opponentCPF, GamePyramid),
	}

	counts := CountWeek(snapshot, holderCPF, tuesday, DefaultRulePolicy())
	assert.Equal(t, 2, counts.NormalWeekday)
	assert.Equal(t, 1, counts.NormalWeekend)
	assert.Equal(t, 0, counts.PyramidWeekday)
	assert.Equal(t, 1, counts.PyramidWeekend)
	assert.Equal(t, 1, counts.PyramidTotal())
}

func TestCountWeek_BeachCountsHolderOnly(t *testing.T) {
	tuesday := date(2026, time.September, 1)
	saturday := date(2026, time.September, 5)

	snapshot := []*Reservation{
		res(3, tuesday, "09:00", holderCPF, "", GameBeachTennis),
		res(4, saturday, "09:00", holderCPF, "", GameFootvolley),
		res(3, saturday, "10:30", otherCPF, "", GameBeachVolleyball),
	}

	counts := CountWeek(snapshot, holderCPF, tuesday, DefaultRulePolicy())
	assert.Equal(t, 1, counts.BeachWeekday)
	assert.Equal(t, 1, counts.BeachWeekend)

	counts = CountWeek(snapshot, otherCPF, tuesday, DefaultRulePolicy())
	assert.Equal(t, 0, counts.BeachWeekday)
	assert.Equal(t, 1, counts.BeachWeekend)
}

func TestCountWeek_ExemptRows(t *testing.T) {
	tuesday := date(2026, time.September, 1)

	lastMinute := res(1, tuesday, "09:00", holderCPF, opponentCPF, GameNormal)
	lastMinute.CreatedAt = time.Date(2026, time.September, 1, 8, 30, 0, 0, time.UTC)

	snapshot := []*Reservation{
		lastMinute,
		res(1, tuesday, "10:30", holderCPF, "", GameClass),
		res(1, tuesday, "12:00", holderCPF, "", GameInterdiction),
	}

	counts := CountWeek(snapshot, holderCPF, tuesday, DefaultRulePolicy())
	assert.Equal(t, WeeklyCounts{}, counts)
}

func TestCountWeek_IgnoresOtherWeeks(t *testing.T) {
	tuesday := date(2026, time.September, 1)
	nextTuesday := date(2026, time.September, 8)

	snapshot := []*Reservation{
		res(1, nextTuesday, "09:00", holderCPF, opponentCPF, GameNormal),
	}

	counts := CountWeek(snapshot, holderCPF, tuesday, DefaultRulePolicy())
	assert.Equal(t, 0, counts.NormalWeekday)
}

func TestCountWeek_MatchesFormattedCPF(t *testing.T) {
	tuesday := date(2026, time.September, 1)
	snapshot := []*Reservation{
		res(1, tuesday, "09:00", "529.982.247-25", opponentCPF, GameNormal),
	}

	counts := CountWeek(snapshot, holderCPF, tuesday, DefaultRulePolicy())
	assert.Equal(t, 1, counts.NormalWeekday)
}

func TestCountSameDayRegular(t *testing.T) {
	tuesday := date(2026, time.September, 1)
	wednesday := date(2026, time.September, 2)

	snapshot := []*Reservation{
		res(1, tuesday, "09:00", holderCPF, opponentCPF, GameNormal),
		res(2, tuesday, "10:30", otherCPF, holderCPF, GamePyramid), // как соперник
		res(1, wednesday, "09:00", holderCPF, opponentCPF, GameNormal),
		res(3, tuesday, "12:00", holderCPF, "", GameBeachTennis), // пляж не считается
	}

	assert.Equal(t, 2, CountSameDayRegular(snapshot, holderCPF, tuesday, DefaultRulePolicy()))
	assert.Equal(t, 1, CountSameDayRegular(snapshot, holderCPF, wednesday, DefaultRulePolicy()))
}

func TestIsLastMinute(t *testing.T) {
	day := date(2026, time.September, 1)
	r := res(1, day, "09:00", holderCPF, opponentCPF, GameNormal)

	r.CreatedAt = time.Date(2026, time.September, 1, 7, 0, 0, 0, time.UTC)
	assert.False(t, r.IsLastMinute(2*time.Hour)) // ровно за два часа

	r.CreatedAt = time.Date(2026, time.September, 1, 7, 0, 1, 0, time.UTC)
	assert.True(t, r.IsLastMinute(2*time.Hour))
}
