package models

// AppState is the aggregate root held by the state store.
//
// Invariants:
//   - Me equals Members[Me.ID]
//   - every MyGroupIDs entry keys into Groups
//   - every Group.MemberIDs entry keys into Members
type AppState struct {
	Me              Member               `json:"me"`
	Members         map[string]Member    `json:"members"`
	Groups          map[string]Group     `json:"groups"`
	MyGroupIDs      []string             `json:"myGroupIds"`
	Goals           []Goal               `json:"goals"`
	UsageToday      []Usage              `json:"usageToday"`
	UsageThisWeek   []Usage              `json:"usageThisWeek"`
	MessagesByGroup map[string][]Message `json:"messagesByGroup"`
	FriendRequests  []FriendRequest      `json:"friendRequests"`
}

// Clone returns a deep copy of the state. Nil collections become empty ones
// so the copy always encodes the same way.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		Me:              s.Me,
		Members:         make(map[string]Member, len(s.Members)),
		Groups:          make(map[string]Group, len(s.Groups)),
		MyGroupIDs:      make([]string, len(s.MyGroupIDs)),
		Goals:           make([]Goal, len(s.Goals)),
		UsageToday:      make([]Usage, len(s.UsageToday)),
		UsageThisWeek:   make([]Usage, len(s.UsageThisWeek)),
		MessagesByGroup: make(map[string][]Message, len(s.MessagesByGroup)),
		FriendRequests:  make([]FriendRequest, len(s.FriendRequests)),
	}
	for id, m := range s.Members {
		out.Members[id] = m
	}
	for id, g := range s.Groups {
		out.Groups[id] = g.Clone()
	}
	copy(out.MyGroupIDs, s.MyGroupIDs)
	for i, g := range s.Goals {
		out.Goals[i] = g.Clone()
	}
	copy(out.UsageToday, s.UsageToday)
	copy(out.UsageThisWeek, s.UsageThisWeek)
	for id, msgs := range s.MessagesByGroup {
		cp := make([]Message, len(msgs))
		for i, m := range msgs {
			cp[i] = m.Clone()
		}
		out.MessagesByGroup[id] = cp
	}
	copy(out.FriendRequests, s.FriendRequests)
	return out
}

// Member looks up a member by ID.
func (s *AppState) Member(id string) (Member, bool) {
	m, ok := s.Members[id]
	return m, ok
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
