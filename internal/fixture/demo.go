// Package fixture provides the demo dataset the state store starts from and
// resets to.
package fixture

import (
	"time"

	"github.com/mmynk/leuth/internal/models"
)

// Anchor is the fixed instant the demo timestamps are measured back from.
// Keeping it constant makes Demo deterministic.
var Anchor = time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)

// MeID is the member ID of the local user in the demo data.
const MeID = "1"

// Demo returns a fresh copy of the demo state. Callers may mutate it.
func Demo() *models.AppState {
	members := map[string]models.Member{}
	for _, m := range demoMembers {
		members[m.ID] = m
	}

	groups := map[string]models.Group{}
	for _, g := range demoGroups {
		groups[g.ID] = g.Clone()
	}

	messages := map[string][]models.Message{}
	for _, m := range demoMessages {
		messages[m.GroupID] = append(messages[m.GroupID], m.Clone())
	}

	state := &models.AppState{
		Me:              members[MeID],
		Members:         members,
		Groups:          groups,
		MyGroupIDs:      []string{"friends", "family", "work", "gym"},
		Goals:           []models.Goal{demoGoal.Clone()},
		UsageToday:      append([]models.Usage(nil), demoUsageToday...),
		UsageThisWeek:   append([]models.Usage(nil), demoUsageThisWeek...),
		MessagesByGroup: messages,
		FriendRequests:  []models.FriendRequest{},
	}
	return state
}

func ago(d time.Duration) time.Time {
	return Anchor.Add(-d)
}

var demoMembers = []models.Member{
	{ID: "1", Name: "You", AvatarURL: "🔵", Streak: 5},
	{ID: "2", Name: "Jake H.", AvatarURL: "🟢", Streak: 7},
	{ID: "3", Name: "Sarah M.", AvatarURL: "🟣", Streak: 3},
	{ID: "4", Name: "Mike T.", AvatarURL: "🟠", Streak: 4},
	{ID: "5", Name: "Emma L.", AvatarURL: "🟡", Streak: 2},
	{ID: "6", Name: "Mom", AvatarURL: "💐", Streak: 12},
	{ID: "7", Name: "Dad", AvatarURL: "👔", Streak: 8},
	{ID: "8", Name: "Sister", AvatarURL: "🌸", Streak: 6},
	{ID: "9", Name: "Alex C.", AvatarURL: "💼", Streak: 9},
	{ID: "10", Name: "Jordan P.", AvatarURL: "📊", Streak: 10},
	{ID: "11", Name: "Taylor R.", AvatarURL: "💻", Streak: 4},
	{ID: "12", Name: "Morgan L.", AvatarURL: "📱", Streak: 3},
	{ID: "13", Name: "Casey M.", AvatarURL: "⌨️", Streak: 2},
	{ID: "14", Name: "Chris P.", AvatarURL: "💪", Streak: 15},
	{ID: "15", Name: "Sam K.", AvatarURL: "🏋️", Streak: 7},
}

var demoGroups = []models.Group{
	{
		ID:            "friends",
		Name:          "Friends",
		MemberIDs:     []string{"1", "2", "3", "4", "5"},
		LeaderID:      "2",
		Preset:        models.PresetTwoWeeks,
		PoolEnabled:   true,
		PoolAmount:    250,
		PoolCurrency:  models.CurrencyUSD,
		SelectedGoals: []string{"Screen Time", "Steps"},
	},
	{
		ID:            "family",
		Name:          "Family",
		MemberIDs:     []string{"1", "6", "7", "8"},
		LeaderID:      "1",
		Preset:        models.PresetOneWeek,
		SelectedGoals: []string{"Screen Time"},
	},
	{
		ID:            "work",
		Name:          "Work Squad",
		MemberIDs:     []string{"1", "9", "10", "11", "12", "13"},
		LeaderID:      "9",
		Preset:        models.PresetOneMonth,
		PoolEnabled:   true,
		PoolAmount:    500,
		PoolCurrency:  models.CurrencyUSD,
		SelectedGoals: []string{"Screen Time", "Steps"},
	},
	{
		ID:            "gym",
		Name:          "Gym Buddies",
		MemberIDs:     []string{"1", "14", "15"},
		LeaderID:      "14",
		Preset:        models.PresetOneWeek,
		SelectedGoals: []string{"Steps"},
	},
}

var demoGoal = models.Goal{
	ID:           "1",
	Name:         "Daily Social Limit",
	Period:       models.PeriodDaily,
	LimitMinutes: 90,
	Categories:   []string{"Social"},
}

var demoUsageToday = []models.Usage{
	{AppID: "instagram", AppName: "Instagram", Category: "Social", Minutes: 45, Icon: "📸"},
	{AppID: "tiktok", AppName: "TikTok", Category: "Social", Minutes: 32, Icon: "🎵"},
	{AppID: "twitter", AppName: "Twitter", Category: "Social", Minutes: 18, Icon: "🐦"},
	{AppID: "youtube", AppName: "YouTube", Category: "Entertainment", Minutes: 67, Icon: "📺"},
	{AppID: "netflix", AppName: "Netflix", Category: "Entertainment", Minutes: 42, Icon: "🎬"},
	{AppID: "spotify", AppName: "Spotify", Category: "Entertainment", Minutes: 23, Icon: "🎧"},
}

var demoUsageThisWeek = []models.Usage{
	{AppID: "instagram", AppName: "Instagram", Category: "Social", Minutes: 145, Icon: "📸"},
	{AppID: "tiktok", AppName: "TikTok", Category: "Social", Minutes: 112, Icon: "🎵"},
	{AppID: "twitter", AppName: "Twitter", Category: "Social", Minutes: 78, Icon: "🐦"},
	{AppID: "youtube", AppName: "YouTube", Category: "Entertainment", Minutes: 203, Icon: "📺"},
	{AppID: "netflix", AppName: "Netflix", Category: "Entertainment", Minutes: 156, Icon: "🎬"},
	{AppID: "spotify", AppName: "Spotify", Category: "Entertainment", Minutes: 89, Icon: "🎧"},
}

// demoMessages are listed in feed order per group.
var demoMessages = []models.Message{
	{ID: "1", GroupID: "friends", Kind: models.MessageKindSystem, Text: "Jake H. is now the leader", CreatedAt: ago(24 * time.Hour)},
	{ID: "2", GroupID: "friends", AuthorID: "2", Kind: models.MessageKindUser, Text: "Let's crush this challenge! 💪", CreatedAt: ago(12 * time.Hour)},
	{ID: "3", GroupID: "friends", AuthorID: "1", Kind: models.MessageKindUser, Text: "I'm ready! Who's with me?", CreatedAt: ago(6 * time.Hour), Reactions: map[string]int{"👍": 3, "🔥": 2}},
	{ID: "4", GroupID: "friends", Kind: models.MessageKindSystem, Text: "Leader updated settings: Time: 2w; Pool: $250; Goals: Screen Time, Steps", CreatedAt: ago(3 * time.Hour)},
	{ID: "5", GroupID: "friends", AuthorID: "3", Kind: models.MessageKindUser, Text: "2k steps to go!", CreatedAt: ago(2 * time.Hour)},
	{ID: "6", GroupID: "friends", AuthorID: "1", Kind: models.MessageKindUser, Text: "You got this Sarah! 🔥", CreatedAt: ago(time.Hour), ReplyToID: "5"},

	{ID: "f1", GroupID: "family", Kind: models.MessageKindSystem, Text: "Challenge started", CreatedAt: ago(48 * time.Hour)},
	{ID: "f2", GroupID: "family", AuthorID: "6", Kind: models.MessageKindUser, Text: "Looking forward to this week!", CreatedAt: ago(24 * time.Hour)},

	{ID: "w1", GroupID: "work", Kind: models.MessageKindSystem, Text: "Alex C. is now the leader", CreatedAt: ago(72 * time.Hour)},

	{ID: "g1", GroupID: "gym", Kind: models.MessageKindSystem, Text: "Chris P. started the challenge", CreatedAt: ago(48 * time.Hour)},
}
