package schedule

import (
	"time"

	"github.com/xaenox/meet-bot/internal/models"
)

// Resolve decides whether a meeting should be joined at now. It evaluates the
// day's plan lazily for the current hour and never reads the wall clock, so
// the same (now, tt, session) always produces the same result.
//
// A session from an earlier day is discarded first. After that, in order: an
// active multi-hour session, a skipped weekend, a lunch or break hour and an
// hour that was already joined all yield no meeting. Otherwise the planned slot
// for the hour is joined, if the plan has one.
func Resolve(now time.Time, tt models.Timetable, session models.Session) (models.Decision, models.Session) {
	session = session.ForDay(now)

	if session.Blocked(now) {
		return models.NoMeeting(), session
	}
	if tt.SkipsDay(now.Weekday()) {
		return models.NoMeeting(), session
	}

	hour := now.Hour()
	if tt.IsBreak(hour) {
		return models.NoMeeting(), session
	}
	if session.HasJoined(hour) {
		return models.NoMeeting(), session
	}
	if !tt.InWindow(hour) {
		return models.NoMeeting(), session
	}

	meeting, ok := Lookup(Plan(tt, now), hour)
	if !ok {
		return models.NoMeeting(), session
	}

	session = session.MarkJoined(hour, meeting.Kind)
	if meeting.Kind != models.Regular && meeting.Duration > 1 {
		session.BlockedUntil = topOfHour(now).Add(time.Duration(meeting.Duration) * time.Hour)
	}

	return models.Decision{
		Join:    true,
		Kind:    meeting.Kind,
		Link:    meeting.Link,
		Meeting: meeting,
	}, session
}

func topOfHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
}
