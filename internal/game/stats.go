package game

// Stat identifies one of the six character stats.
type Stat string

const (
	// StatClarity measures how unambiguous the character's prompts are.
	StatClarity Stat = "clarity"
	// StatConciseness measures economy of prompt wording.
	StatConciseness Stat = "conciseness"
	// StatCreativity measures aptitude for open-ended generation.
	StatCreativity Stat = "creativity"
	// StatLogic measures aptitude for structured reasoning tasks.
	StatLogic Stat = "logic"
	// StatDebugging measures aptitude for iterating on failed prompts.
	StatDebugging Stat = "debugging"
	// StatConfiguration measures command of generation parameters.
	StatConfiguration Stat = "configuration"
)

// AllStats lists every stat in display order.
var AllStats = []Stat{
	StatClarity,
	StatConciseness,
	StatCreativity,
	StatLogic,
	StatDebugging,
	StatConfiguration,
}

// IsValid reports whether the stat names a known counter.
func (s Stat) IsValid() bool {
	switch s {
	case StatClarity, StatConciseness, StatCreativity, StatLogic, StatDebugging, StatConfiguration:
		return true
	default:
		return false
	}
}

// CharacterStats holds the six stat counters. Each is >= 0 and unbounded
// above; counters only move one unit at a time by spending an unassigned
// point.
type CharacterStats struct {
	Clarity       int
	Conciseness   int
	Creativity    int
	Logic         int
	Debugging     int
	Configuration int
}

// Value returns the counter for the given stat, or 0 for an unknown stat.
func (cs CharacterStats) Value(s Stat) int {
	switch s {
	case StatClarity:
		return cs.Clarity
	case StatConciseness:
		return cs.Conciseness
	case StatCreativity:
		return cs.Creativity
	case StatLogic:
		return cs.Logic
	case StatDebugging:
		return cs.Debugging
	case StatConfiguration:
		return cs.Configuration
	default:
		return 0
	}
}

// WithIncrement returns a copy with the given stat raised by amount.
// Unknown stats return the receiver unchanged.
func (cs CharacterStats) WithIncrement(s Stat, amount int) CharacterStats {
	updated := cs
	switch s {
	case StatClarity:
		updated.Clarity += amount
	case StatConciseness:
		updated.Conciseness += amount
	case StatCreativity:
		updated.Creativity += amount
	case StatLogic:
		updated.Logic += amount
	case StatDebugging:
		updated.Debugging += amount
	case StatConfiguration:
		updated.Configuration += amount
	}
	return updated
}
