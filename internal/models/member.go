package models

// Member represents a person who can belong to groups and appear on
// leaderboards.
type Member struct {
	// ID is the stable unique identifier for the member.
	ID string `json:"id"`

	// Name is the display name (e.g., "Jake H.").
	Name string `json:"name"`

	// AvatarURL is an opaque display token: an emoji or an image URL.
	AvatarURL string `json:"avatarUrl,omitempty"`

	// Streak is the number of consecutive days the member met a goal.
	// Maintained by a daily rollup outside this module.
	Streak int `json:"streak"`
}
