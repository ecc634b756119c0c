package models

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Week is the Monday-to-Sunday span offset whole weeks from the week of a
// reference date.
type Week struct {
	Offset int
	Title  string
	Days   []civil.Date
}

// MaxWeekOffset bounds week offsets to roughly a century either way.
const MaxWeekOffset = 5000

// ValidWeekOffset reports whether offset is within ±MaxWeekOffset.
func ValidWeekOffset(offset int) bool {
	return offset >= -MaxWeekOffset && offset <= MaxWeekOffset
}

// NewWeek computes the week offset weeks away from the week containing today.
func NewWeek(today civil.Date, offset int) Week {
	// time.Weekday has Sunday=0; shift so Monday is 0.
	sinceMonday := (int(Weekday(today)) + 6) % 7
	monday := today.AddDays(-sinceMonday + 7*offset)

	days := make([]civil.Date, 7)
	for i := range days {
		days[i] = monday.AddDays(i)
	}
	return Week{Offset: offset, Title: WeekTitle(offset), Days: days}
}

func (w Week) Start() civil.Date { return w.Days[0] }
func (w Week) End() civil.Date   { return w.Days[6] }

func WeekTitle(offset int) string {
	switch offset {
	case 0:
		return "this week"
	case -1:
		return "previous week"
	case 1:
		return "next week"
	default:
		return fmt.Sprintf("week %+d", offset)
	}
}

// PlanDate is a date offered when choosing which day to plan.
type PlanDate struct {
	Date    civil.Date
	Weekday time.Weekday
}

// UpcomingDates lists n consecutive dates starting with today.
func UpcomingDates(today civil.Date, n int) []PlanDate {
	if n < 0 {
		n = 0
	}
	out := make([]PlanDate, n)
	for i := range out {
		d := today.AddDays(i)
		out[i] = PlanDate{Date: d, Weekday: Weekday(d)}
	}
	return out
}
