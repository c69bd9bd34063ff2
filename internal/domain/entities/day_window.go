package entities

import (
	"errors"
	"time"
)

const (
	// DefaultCutoverHour is the local hour at which one business day ends and the next begins.
	DefaultCutoverHour = 15

	dayWindowLayout = "2006-01-02"
)

var ErrInvalidDayWindowID = errors.New("invalid day window id")

// DayWindowID identifies a business day by the calendar date on which it opens.
// The window "2026-10-17" covers [2026-10-17 15:00, 2026-10-18 15:00) local time.
type DayWindowID string

func (id DayWindowID) String() string { return string(id) }

// DayWindowCalendar maps instants to business-day windows.
//
// CutoverHour is used as given, so 0 means a midnight cutover. Hours outside 0..23 fall back to
// DefaultCutoverHour; config rejects them before they get here.
type DayWindowCalendar struct {
	Location    *time.Location
	CutoverHour int
}

func NewDayWindowCalendar(loc *time.Location, cutoverHour int) DayWindowCalendar {
	return DayWindowCalendar{Location: loc, CutoverHour: cutoverHour}
}

func (c DayWindowCalendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c DayWindowCalendar) cutover() int {
	if c.CutoverHour < 0 || c.CutoverHour > 23 {
		return DefaultCutoverHour
	}
	return c.CutoverHour
}

// WindowOf returns the window opened by the most recent cutover at or before t.
func (c DayWindowCalendar) WindowOf(t time.Time) DayWindowID {
	local := t.In(c.location())
	start := time.Date(local.Year(), local.Month(), local.Day(), c.cutover(), 0, 0, 0, c.location())
	if local.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return DayWindowID(start.Format(dayWindowLayout))
}

// Bounds returns the half-open interval [start, end) covered by id.
func (c DayWindowCalendar) Bounds(id DayWindowID) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dayWindowLayout, string(id), c.location())
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDayWindowID
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), c.cutover(), 0, 0, 0, c.location())
	return start, start.AddDate(0, 0, 1), nil
}

// Contains reports whether t falls inside id.
func (c DayWindowCalendar) Contains(id DayWindowID, t time.Time) bool {
	return c.WindowOf(t) == id
}

// WindowsInMonth lists the windows that open during the given calendar month, in order.
func (c DayWindowCalendar) WindowsInMonth(year int, month time.Month) []DayWindowID {
	first := time.Date(year, month, 1, 0, 0, 0, 0, c.location())
	out := make([]DayWindowID, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		out = append(out, DayWindowID(d.Format(dayWindowLayout)))
	}
	return out
}

// ParseDayWindowID validates the textual form of a window id.
func ParseDayWindowID(raw string) (DayWindowID, error) {
	if _, err := time.Parse(dayWindowLayout, raw); err != nil {
		return "", ErrInvalidDayWindowID
	}
	return DayWindowID(raw), nil
}
