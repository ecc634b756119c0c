package models

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Outfit is the set of clothing ids planned for one owner on one date.
// ItemIDs is ascending and duplicate-free; it may be empty, which is distinct
// from there being no record at all.
type Outfit struct {
	OwnerID uuid.UUID
	Date    civil.Date
	ItemIDs []int64
}

func (o Outfit) Contains(id int64) bool {
	i := sort.Search(len(o.ItemIDs), func(i int) bool { return o.ItemIDs[i] >= id })
	return i < len(o.ItemIDs) && o.ItemIDs[i] == id
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	if !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%q is not a calendar date", s)
	}
	return d, nil
}

// Today is the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(now.In(loc))
}

// Weekday of d.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// NormalizeIDs sorts ids ascending and drops duplicates.
func NormalizeIDs(ids []int64) []int64 {
	out := append([]int64{}, ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	n := 0
	for i, id := range out {
		if i > 0 && id == out[n-1] {
			continue
		}
		out[n] = id
		n++
	}
	return out[:n]
}
