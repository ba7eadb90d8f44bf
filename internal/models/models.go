package models

import (
	"strings"
	"time"
)

// Kind identifies a meeting category
type Kind string

const (
	Regular  Kind = "regular"
	Lab      Kind = "lab"
	Elective Kind = "elective"
)

// Category describes how one kind of meeting is scheduled.
// Special categories follow the weekly Times table; regular is always on.
type Category struct {
	Special  bool             `json:"special"`
	Times    map[string][]int `json:"time"`
	Duration int              `json:"duration"`
	Link     string           `json:"link"`
}

// ScheduledAt reports whether the category has a slot starting at hour on day.
func (c Category) ScheduledAt(day time.Weekday, hour int) bool {
	if !c.Special {
		return false
	}
	for _, h := range c.Times[WeekdayKey(day)] {
		if h == hour {
			return true
		}
	}
	return false
}

// Timetable is the static weekly configuration the resolver works from.
type Timetable struct {
	Regular       Category `json:"regular"`
	Lab           Category `json:"labs"`
	Elective      Category `json:"electives"`
	BreakHours    []int    `json:"break_hours"`
	LunchHour     int      `json:"lunch_hour"`
	StartHour     int      `json:"start_hour"`
	EndHour       int      `json:"end_hour"`
	AllowWeekends bool     `json:"weekend"`
	TriggerMinute int      `json:"join_minute"`
}

func (t Timetable) Category(kind Kind) Category {
	switch kind {
	case Lab:
		return t.Lab
	case Elective:
		return t.Elective
	default:
		return t.Regular
	}
}

// IsBreak reports whether hour is the lunch hour or one of the break hours.
func (t Timetable) IsBreak(hour int) bool {
	if hour == t.LunchHour {
		return true
	}
	for _, h := range t.BreakHours {
		if h == hour {
			return true
		}
	}
	return false
}

func (t Timetable) InWindow(hour int) bool {
	return hour >= t.StartHour && hour < t.EndHour
}

func (t Timetable) SkipsDay(day time.Weekday) bool {
	return !t.AllowWeekends && IsWeekend(day)
}

// Meeting is one planned join for a given day.
type Meeting struct {
	JoinAt   time.Time `json:"join_at"`
	Kind     Kind      `json:"kind"`
	Link     string    `json:"link"`
	Duration int       `json:"duration"`
}

// Join records a meeting the bot actually tried to open.
type Join struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Link      string    `json:"link"`
	JoinedAt  time.Time `json:"joined_at"`
	LaunchErr string    `json:"launch_error,omitempty"`
}

// WeekdayKey returns the 3-letter lowercase key used in timetables ("mon").
func WeekdayKey(day time.Weekday) string {
	return strings.ToLower(day.String()[:3])
}

func IsWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
