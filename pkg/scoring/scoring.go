// Package scoring turns a match list into a 0..100 risk score and a level.
package scoring

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/matcher"
)

// MaxScore is the score of a scan without matches
const MaxScore = 100

// Level is the coarse classification of a score
type Level int

const (
	LevelSafe Level = iota + 1
	LevelLow
	LevelMedium
	LevelHigh
	LevelCritical
)

// Lower bounds of each level, checked from the top
const (
	SafeThreshold   = 90
	LowThreshold    = 70
	MediumThreshold = 50
	HighThreshold   = 30
)

var levelNames = map[Level]string{
	LevelSafe:     "safe",
	LevelLow:      "low",
	LevelMedium:   "medium",
	LevelHigh:     "high",
	LevelCritical: "critical",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Valid reports whether l is one of the declared levels
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a case-insensitive name to a Level
func ParseLevel(name string) (Level, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for lvl, n := range levelNames {
		if n == lower {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf("unknown level: %q", name)
}

// Score subtracts the weight of every match from MaxScore, never going below 0.
func Score(matches []matcher.Match) int {
	score := MaxScore
	for _, m := range matches {
		// Compare first: loaded corpora may carry weights near MaxInt
		if m.Rule.Weight >= score {
			return 0
		}
		score -= m.Rule.Weight
	}
	return score
}

// Classify maps a score to its level
func Classify(score int) Level {
	switch {
	case score >= SafeThreshold:
		return LevelSafe
	case score >= LowThreshold:
		return LevelLow
	case score >= MediumThreshold:
		return LevelMedium
	case score >= HighThreshold:
		return LevelHigh
	default:
		return LevelCritical
	}
}
