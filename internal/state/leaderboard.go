package state

import (
	"fmt"
	"sort"

	"github.com/mmynk/leuth/internal/models"
	"github.com/mmynk/leuth/internal/scoring"
)

// DefaultLimitMinutes is the shared limit when no goal is configured.
const DefaultLimitMinutes = 120

// Leaderboard ranks the group's members by score for the period.
//
// The limit is the first goal's LimitMinutes (DefaultLimitMinutes without
// goals). Usage is not tracked per member, so each member is scored against
// an even share of the group's total usage for the period. Members are
// sorted by score descending, ties keeping member order, and ranked 1..N.
func (s *Store) Leaderboard(groupID string, period models.LeaderboardPeriod) ([]models.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	group, ok := st.Groups[groupID]
	if !ok {
		return []models.LeaderboardEntry{}, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	if len(group.MemberIDs) == 0 {
		return []models.LeaderboardEntry{}, nil
	}

	usage := st.UsageToday
	if period == models.LeaderboardWeek {
		usage = st.UsageThisWeek
	}

	limit := activeLimit(st)
	usedShare := float64(models.TotalMinutes(usage)) / float64(len(group.MemberIDs))

	entries := make([]models.LeaderboardEntry, 0, len(group.MemberIDs))
	for _, memberID := range group.MemberIDs {
		entry := models.LeaderboardEntry{MemberID: memberID, Name: "Unknown", Avatar: "❓"}
		streak := 0
		if m, ok := st.Member(memberID); ok {
			entry.Name = m.Name
			if m.AvatarURL != "" {
				entry.Avatar = m.AvatarURL
			}
			streak = m.Streak
		}

		entry.Score = scoring.ComputeScore(float64(limit), usedShare, streak)
		entry.Tier = string(scoring.ScoreColor(entry.Score).Name)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// activeLimit is the first goal's limit, or DefaultLimitMinutes.
func activeLimit(st *models.AppState) int {
	if len(st.Goals) > 0 {
		return st.Goals[0].LimitMinutes
	}
	return DefaultLimitMinutes
}

// Summary scores the local user's usage today and compares it with the
// score of an average day this week.
func (s *Store) Summary() models.ScoreSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	limit := activeLimit(st)
	today := models.TotalMinutes(st.UsageToday)
	avgDay := float64(models.TotalMinutes(st.UsageThisWeek)) / 7

	score := scoring.ComputeScore(float64(limit), float64(today), st.Me.Streak)
	previous := scoring.ComputeScore(float64(limit), avgDay, st.Me.Streak)

	return models.ScoreSummary{
		Score:        score,
		Tier:         string(scoring.ScoreColor(score).Name),
		Delta:        scoring.ComputeDelta(score, previous),
		UsedMinutes:  today,
		LimitMinutes: limit,
	}
}
