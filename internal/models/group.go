package models

// Preset is the duration of a group's challenge.
type Preset string

const (
	PresetOneWeek  Preset = "1w"
	PresetTwoWeeks Preset = "2w"
	PresetOneMonth Preset = "1m"
)

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	switch p {
	case PresetOneWeek, PresetTwoWeeks, PresetOneMonth:
		return true
	}
	return false
}

// Currency is the currency of a group's pool.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

// Symbol returns the display symbol for the currency. Unknown currencies
// fall back to "$".
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	default:
		return "$"
	}
}

// Group represents a competitive cohort of members.
//
// LeaderID, when set, must be one of MemberIDs. The leader is the member
// who edits the challenge settings (by convention; no access control).
type Group struct {
	// ID is the unique identifier for the group (e.g., "friends").
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Work Squad").
	Name string `json:"name"`

	// MemberIDs is the ordered list of member IDs. Entries are unique and
	// include the local user.
	MemberIDs []string `json:"memberIds"`

	// LeaderID is the ID of the current leader, empty when unset.
	LeaderID string `json:"leaderId,omitempty"`

	// Preset is the challenge duration.
	Preset Preset `json:"preset"`

	// PoolEnabled marks whether the group plays for a pool.
	PoolEnabled bool `json:"poolEnabled"`

	// PoolAmount is the stake. Only meaningful when PoolEnabled is true.
	PoolAmount float64 `json:"poolAmount"`

	// PoolCurrency is the currency of PoolAmount.
	PoolCurrency Currency `json:"poolCurrency"`

	// SelectedGoals are free-text goal-type labels (e.g., "Screen Time", "Steps").
	// Never nil once cloned, so a cleared list encodes as [] and is not
	// mistaken for an absent key when a snapshot is merged onto defaults.
	SelectedGoals []string `json:"selectedGoals"`
}

// HasMember reports whether memberID is in the group.
func (g *Group) HasMember(memberID string) bool {
	for _, id := range g.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	g.MemberIDs = cloneStrings(g.MemberIDs)
	g.SelectedGoals = append([]string{}, g.SelectedGoals...)
	return g
}

// GroupSettings is a partial update of a group's challenge settings.
// Nil fields are left untouched.
type GroupSettings struct {
	Preset        *Preset   `json:"preset,omitempty"`
	PoolEnabled   *bool     `json:"poolEnabled,omitempty"`
	PoolAmount    *float64  `json:"poolAmount,omitempty"`
	PoolCurrency  *Currency `json:"poolCurrency,omitempty"`
	SelectedGoals []string  `json:"selectedGoals"`
}

// Apply shallow-merges the provided settings into g.
func (s GroupSettings) Apply(g *Group) {
	if s.Preset != nil {
		g.Preset = *s.Preset
	}
	if s.PoolEnabled != nil {
		g.PoolEnabled = *s.PoolEnabled
	}
	if s.PoolAmount != nil {
		g.PoolAmount = *s.PoolAmount
	}
	if s.PoolCurrency != nil {
		g.PoolCurrency = *s.PoolCurrency
	}
	if s.SelectedGoals != nil {
		g.SelectedGoals = append([]string{}, s.SelectedGoals...)
	}
}
