package models

// Usage is one app's recorded minutes within a usage snapshot.
type Usage struct {
	AppID    string `json:"appId"`
	AppName  string `json:"appName"`
	Category string `json:"category"`
	Minutes  int    `json:"minutes"`
	Icon     string `json:"icon,omitempty"`
}

// TotalMinutes sums the minutes of every entry.
func TotalMinutes(usage []Usage) int {
	total := 0
	for _, u := range usage {
		total += u.Minutes
	}
	return total
}
