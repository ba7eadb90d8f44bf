package models

import "time"

// Session is the resolver's state for the current day. It is a plain value:
// copies never share state, so callers can keep the previous one around.
type Session struct {
	Day          time.Time `json:"day"`
	Kind         Kind      `json:"kind,omitempty"`
	BlockedUntil time.Time `json:"blocked_until"`
	joined       uint32
}

// NewSession returns an empty session for the day containing t.
func NewSession(t time.Time) Session {
	return Session{Day: StartOfDay(t)}
}

// ForDay returns s unchanged if it belongs to the day of t, or a fresh session otherwise.
// A block that runs past midnight carries over into the fresh session.
func (s Session) ForDay(t time.Time) Session {
	if !s.Day.IsZero() && SameDay(s.Day, t) {
		return s
	}
	fresh := NewSession(t)
	if s.Blocked(t) {
		fresh.Kind = s.Kind
		fresh.BlockedUntil = s.BlockedUntil
	}
	return fresh
}

func (s Session) Blocked(now time.Time) bool {
	return !s.BlockedUntil.IsZero() && now.Before(s.BlockedUntil)
}

func (s Session) HasJoined(hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	return s.joined&(1<<uint(hour)) != 0
}

// MarkJoined returns a copy of s with hour recorded as joined.
func (s Session) MarkJoined(hour int, kind Kind) Session {
	if hour >= 0 && hour <= 23 {
		s.joined |= 1 << uint(hour)
	}
	s.Kind = kind
	return s
}

// Decision is the resolver's answer for one tick. Join is false for "no meeting now".
type Decision struct {
	Join    bool
	Kind    Kind
	Link    string
	Meeting Meeting
}

func NoMeeting() Decision {
	return Decision{}
}
