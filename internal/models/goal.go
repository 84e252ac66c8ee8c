package models

// Period is how often a goal's limit resets.
type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// Valid reports whether p is a known goal period.
func (p Period) Valid() bool {
	return p == PeriodDaily || p == PeriodWeekly
}

// Goal represents a usage-limit target.
//
// When both Apps and Categories are empty the goal applies to total usage.
// Only the first goal in AppState.Goals drives leaderboard scoring.
type Goal struct {
	// ID is the unique identifier for the goal.
	ID string `json:"id"`

	// Name is the display name (e.g., "Daily Social Limit").
	Name string `json:"name"`

	// Period is the reset interval of the limit.
	Period Period `json:"period"`

	// LimitMinutes is the usage ceiling for one period.
	LimitMinutes int `json:"limitMinutes"`

	// Apps optionally scopes the goal to specific app IDs.
	Apps []string `json:"apps,omitempty"`

	// Categories optionally scopes the goal to category labels (e.g., "Social").
	Categories []string `json:"categories,omitempty"`

	// Schedule optionally restricts when the goal is enforced.
	Schedule *Schedule `json:"schedule,omitempty"`
}

// Schedule restricts a goal to certain days and a time window.
type Schedule struct {
	// Days are days of the week, 0 = Sunday through 6 = Saturday.
	Days []int `json:"days,omitempty"`

	// Start is the window start in "HH:MM" (24h clock).
	Start string `json:"start,omitempty"`

	// End is the window end in "HH:MM" (24h clock).
	End string `json:"end,omitempty"`
}

// Clone returns a deep copy of the goal.
func (g Goal) Clone() Goal {
	g.Apps = cloneStrings(g.Apps)
	g.Categories = cloneStrings(g.Categories)
	if g.Schedule != nil {
		s := *g.Schedule
		if s.Days != nil {
			s.Days = append([]int(nil), s.Days...)
		}
		g.Schedule = &s
	}
	return g
}
