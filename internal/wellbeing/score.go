package wellbeing

import "math"

// Level is the qualitative burnout classification of a score.
type Level int

const (
	// LevelLow covers scores at or below the first threshold.
	LevelLow Level = iota
	// LevelMedium covers scores at or below the second threshold.
	LevelMedium
	// LevelHigh covers scores at or below the third threshold.
	LevelHigh
	// LevelVeryHigh covers everything above the third threshold.
	LevelVeryHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// Label is the display text for the overall burnout level.
func (l Level) Label() string {
	switch l {
	case LevelLow:
		return "Low burnout"
	case LevelMedium:
		return "Moderate burnout"
	case LevelHigh:
		return "High burnout"
	case LevelVeryHigh:
		return "Very high burnout"
	default:
		return "No data"
	}
}

// ShortLabel is the display text used next to a domain score.
func (l Level) ShortLabel() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "moderate"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very high"
	default:
		return "-"
	}
}

// MarshalText encodes the level by its String form.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Domain names one of the three burnout test sub-scales.
type Domain string

const (
	DomainPhysical  Domain = "physical"
	DomainEmotional Domain = "emotional"
	DomainCognitive Domain = "cognitive"
)

// Max is the highest score the test can award in the domain.
func (d Domain) Max() int {
	if d == DomainPhysical {
		return 16
	}
	return 24
}

// ladder holds inclusive upper bounds for Low, Medium and High.
type ladder [3]int

var (
	totalLadder    = ladder{16, 32, 48}
	physicalLadder = ladder{4, 8, 12}
	mentalLadder   = ladder{6, 12, 18}
)

func (b ladder) classify(score int) Level {
	switch {
	case score <= b[0]:
		return LevelLow
	case score <= b[1]:
		return LevelMedium
	case score <= b[2]:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// ClassifyTotal maps a total test score to a Level. Every int is accepted.
func ClassifyTotal(total int) Level {
	return totalLadder.classify(total)
}

// ClassifyDomain maps a domain score to a Level. Domains other than physical
// use the emotional/cognitive thresholds.
func ClassifyDomain(d Domain, score int) Level {
	if d == DomainPhysical {
		return physicalLadder.classify(score)
	}
	return mentalLadder.classify(score)
}

// Fill is the bar width, in percent, of score against max. The result is
// always within [0, 100].
func Fill(score, max int) int {
	if max <= 0 {
		return 0
	}
	pct := int(math.Round(float64(score) / float64(max) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// FillFor is Fill against the domain's maximum score.
func FillFor(d Domain, score int) int {
	return Fill(score, d.Max())
}
