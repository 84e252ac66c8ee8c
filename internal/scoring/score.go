// Package scoring converts usage against a limit into a 0-100 screen-time
// score and classifies scores into display tiers.
package scoring

import "math"

const (
	// MaxStreakBonus caps the points a streak can add.
	MaxStreakBonus = 5

	// bonusThreshold is the fraction of the limit a member must stay at or
	// under to earn the streak bonus.
	bonusThreshold = 0.5
)

// ComputeScore returns how well usage tracks under a limit.
// Algorithm: base = max(0, (limit - used) / limit) × 100, plus up to
// MaxStreakBonus points of streak when used <= limit/2, clamped to [0, 100]
// and rounded half-up.
//
// A limit that is not a positive finite number scores 0.
func ComputeScore(limit, used float64, streak int) int {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		return 0
	}
	if math.IsNaN(used) {
		return 0
	}

	base := math.Max(0, (limit-used)/limit) * 100

	bonus := 0
	if used <= bonusThreshold*limit {
		bonus = min(MaxStreakBonus, max(0, streak))
	}

	score := math.Min(100, math.Max(0, base+float64(bonus)))
	return int(math.Floor(score + 0.5))
}

// ComputeDelta returns the change between two scores (e.g., today vs yesterday).
func ComputeDelta(current, previous int) int {
	return current - previous
}
