package engine

// RiskLevel is the banded severity of a risk score
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Label is the categorical verdict paired 1:1 with a RiskLevel
type Label string

const (
	LabelSafe             Label = "safe"
	LabelSuspicious       Label = "suspicious"
	LabelRugpullCandidate Label = "rugpull_candidate"
)

const (
	MinScore = 0
	MaxScore = 100

	lowCeiling    = 20
	mediumCeiling = 60

	mediumSourceLines = 300
	longSourceLines   = 800
)

// Points added by each scoring rule
const (
	PointsOwnerMint    = 40
	PointsMint         = 20
	PointsSetFee       = 25
	PointsBlacklist    = 20
	PointsTradingLock  = 25
	PointsMaxTx        = 15
	PointsLongSource   = 15
	PointsMediumSource = 8
)

// Contribution records a scoring rule that fired and the points it added
type Contribution struct {
	Rule   string `json:"rule" yaml:"rule"`
	Points int    `json:"points" yaml:"points"`
}

// Assessment is the outcome of scoring one feature mapping
type Assessment struct {
	Score         int
	Level         RiskLevel
	Label         Label
	Contributions []Contribution
}

// PatternPoints returns the points a pattern feature adds when it fires alone.
// has_mint and has_owner_mint are mutually exclusive in ScoreToken.
func PatternPoints(name string) int {
	switch name {
	case FeatureOwnerMint:
		return PointsOwnerMint
	case FeatureMint:
		return PointsMint
	case FeatureSetFee:
		return PointsSetFee
	case FeatureBlacklist:
		return PointsBlacklist
	case FeatureTradingLock:
		return PointsTradingLock
	case FeatureMaxTransaction:
		return PointsMaxTx
	}
	return 0
}

func truthy(v float64) bool {
	return v >= 1
}

// ScoreToken applies the heuristic point rules to a feature mapping.
// Rule order is fixed; level and label depend only on the clamped score.
func ScoreToken(f Features) Assessment {
	var contributions []Contribution
	score := 0
	add := func(rule string, points int) {
		score += points
		contributions = append(contributions, Contribution{Rule: rule, Points: points})
	}

	// Mint authority: owner-gated mint outranks a bare mint
	if truthy(f.Get(FeatureOwnerMint)) {
		add(FeatureOwnerMint, PointsOwnerMint)
	} else if truthy(f.Get(FeatureMint)) {
		add(FeatureMint, PointsMint)
	}

	if truthy(f.Get(FeatureSetFee)) {
		add(FeatureSetFee, PointsSetFee)
	}

	if truthy(f.Get(FeatureBlacklist)) {
		add(FeatureBlacklist, PointsBlacklist)
	}

	if truthy(f.Get(FeatureTradingLock)) {
		add(FeatureTradingLock, PointsTradingLock)
	}

	if truthy(f.Get(FeatureMaxTransaction)) {
		add(FeatureMaxTransaction, PointsMaxTx)
	}

	// Structural complexity
	lines := f.Get(FeatureLines)
	if lines > longSourceLines {
		add(FeatureLines, PointsLongSource)
	} else if lines > mediumSourceLines {
		add(FeatureLines, PointsMediumSource)
	}

	score = clamp(score)
	level, label := Classify(score)

	return Assessment{
		Score:         score,
		Level:         level,
		Label:         label,
		Contributions: contributions,
	}
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Classify maps a score to its risk level and label
func Classify(score int) (RiskLevel, Label) {
	switch {
	case score <= lowCeiling:
		return RiskLow, LabelSafe
	case score <= mediumCeiling:
		return RiskMedium, LabelSuspicious
	default:
		return RiskHigh, LabelRugpullCandidate
	}
}
