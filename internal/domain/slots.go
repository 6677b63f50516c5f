package domain

import (
	"time"

	"github.com/elitetenis/court-booking-service/pkg/types"
)

// TimeSlotInfo is one bookable interval of a day's grid
type TimeSlotInfo struct {
	Start types.TimeString
	End   types.TimeString
}

// The two daily grids. They currently enumerate the same eleven intervals,
// but weekday and weekend are kept as independent tables so either can be
// tuned without touching the other.
var (
	WeekdayTimeSlots = []TimeSlotInfo{
		{Start: "09:00", End: "10:30"},
		{Start: "10:30", End: "12:00"},
		{Start: "12:00", End: "14:00"},
		{Start: "14:00", End: "15:30"},
		{Start: "15:30", End: "17:00"},
		{Start: "17:00", End: "18:00"},
		{Start: "18:00", End: "19:00"},
		{Start: "19:00", End: "20:00"},
		{Start: "20:00", End: "21:00"},
		{Start: "21:00", End: "22:00"},
		{Start: "22:00", End: "23:00"},
	}

	WeekendTimeSlots = []TimeSlotInfo{
		{Start: "09:00", End: "10:30"},
		{Start: "10:30", End: "12:00"},
		{Start: "12:00", End: "14:00"},
		{Start: "14:00", End: "15:30"},
		{Start: "15:30", End: "17:00"},
		{Start: "17:00", End: "18:00"},
		{Start: "18:00", End: "19:00"},
		{Start: "19:00", End: "20:00"},
		{Start: "20:00", End: "21:00"},
		{Start: "21:00", End: "22:00"},
		{Start: "22:00", End: "23:00"},
	}
)

// TemplateForDate picks the slot grid that applies to the given date
func TemplateForDate(date time.Time) []TimeSlotInfo {
	if IsWeekend(date) {
		return WeekendTimeSlots
	}
	return WeekdayTimeSlots
}

// FindSlot locates the template slot starting at the given time,
// returning false when the date's grid has no such interval
func FindSlot(date time.Time, start types.TimeString) (TimeSlotInfo, bool) {
	for _, slot := range TemplateForDate(date) {
		if slot.Start == start {
			return slot, true
		}
	}
	return TimeSlotInfo{}, false
}
