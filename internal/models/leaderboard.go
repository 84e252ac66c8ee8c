package models

// LeaderboardPeriod selects which usage snapshot a leaderboard ranks.
type LeaderboardPeriod string

const (
	LeaderboardToday LeaderboardPeriod = "today"
	LeaderboardWeek  LeaderboardPeriod = "week"
)

// Valid reports whether p is a known leaderboard period.
func (p LeaderboardPeriod) Valid() bool {
	return p == LeaderboardToday || p == LeaderboardWeek
}

// LeaderboardEntry is one member's position on a group leaderboard.
type LeaderboardEntry struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`

	// Tier is the score classification ("good", "warning", "critical").
	Tier string `json:"tier"`
}

// ScoreSummary is the local user's score for today against the active goal.
type ScoreSummary struct {
	Score int    `json:"score"`
	Tier  string `json:"tier"`

	// Delta is Score minus the score of an average day this week.
	Delta int `json:"delta"`

	UsedMinutes  int `json:"usedMinutes"`
	LimitMinutes int `json:"limitMinutes"`
}
