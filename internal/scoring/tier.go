package scoring

// TierName identifies a score band.
type TierName string

const (
	TierGood     TierName = "good"
	TierWarning  TierName = "warning"
	TierCritical TierName = "critical"
)

// Tier is a score band with the tokens presentation code renders it with.
type Tier struct {
	Name TierName

	// Text is the text color class.
	Text string

	// Ring is the hex color of the score ring.
	Ring string
}

var (
	good     = Tier{Name: TierGood, Text: "text-emerald-600", Ring: "#10B981"}
	warning  = Tier{Name: TierWarning, Text: "text-amber-500", Ring: "#F59E0B"}
	critical = Tier{Name: TierCritical, Text: "text-rose-600", Ring: "#E11D48"}
)

// ScoreColor classifies a score: >= 80 good, >= 60 warning, otherwise
// critical. Scores outside 0-100 are not clamped.
func ScoreColor(score int) Tier {
	switch {
	case score >= 80:
		return good
	case score >= 60:
		return warning
	default:
		return critical
	}
}
