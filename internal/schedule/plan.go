// Package schedule turns a weekly timetable into the meetings to join on a day
// and decides, tick by tick, whether one of them is due.
package schedule

import (
	"time"

	"github.com/xaenox/meet-bot/internal/models"
)

// Plan builds the list of meetings for the day containing day.
//
// Every hour of the operating window starts out as a regular meeting joined at
// HH:TriggerMinute. Elective slots are tagged next and lab slots last, so a lab
// wins when both are scheduled for the same hour. Break hours are dropped, as are
// the hours that a multi-hour lab or elective already covers.
func Plan(tt models.Timetable, day time.Time) []models.Meeting {
	if tt.SkipsDay(day.Weekday()) || tt.StartHour >= tt.EndHour {
		return nil
	}

	slots := make([]models.Meeting, 0, tt.EndHour-tt.StartHour)
	for hour := tt.StartHour; hour < tt.EndHour; hour++ {
		slots = append(slots, slotAt(tt, day, hour))
	}
	return dropRedundant(tt, slots)
}

// Lookup returns the planned meeting starting in hour, if any.
func Lookup(plan []models.Meeting, hour int) (models.Meeting, bool) {
	for _, m := range plan {
		if m.JoinAt.Hour() == hour {
			return m, true
		}
	}
	return models.Meeting{}, false
}

// Next returns the first planned meeting joined after now.
func Next(plan []models.Meeting, now time.Time) (models.Meeting, bool) {
	for _, m := range plan {
		if m.JoinAt.After(now) {
			return m, true
		}
	}
	return models.Meeting{}, false
}

func slotAt(tt models.Timetable, day time.Time, hour int) models.Meeting {
	kind := models.Regular
	if tt.Elective.ScheduledAt(day.Weekday(), hour) {
		kind = models.Elective
	}
	if tt.Lab.ScheduledAt(day.Weekday(), hour) {
		kind = models.Lab
	}

	cat := tt.Category(kind)
	duration := cat.Duration
	if duration < 1 {
		duration = 1
	}

	y, m, d := day.Date()
	return models.Meeting{
		JoinAt:   time.Date(y, m, d, hour, tt.TriggerMinute, 0, 0, day.Location()),
		Kind:     kind,
		Link:     cat.Link,
		Duration: duration,
	}
}

// dropRedundant works on the contiguous per-hour slot list, so a slot index
// offset equals an hour offset.
func dropRedundant(tt models.Timetable, slots []models.Meeting) []models.Meeting {
	drop := make(map[int]bool)
	for i, m := range slots {
		if m.Kind != models.Regular {
			for offset := 1; offset < m.Duration && i+offset < len(slots); offset++ {
				drop[i+offset] = true
			}
		}
		if tt.IsBreak(m.JoinAt.Hour()) {
			drop[i] = true
		}
	}

	kept := slots[:0]
	for i, m := range slots {
		if !drop[i] {
			kept = append(kept, m)
		}
	}
	return kept
}
