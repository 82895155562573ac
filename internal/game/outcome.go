package game

import (
	"regexp"
	"strconv"
	"strings"
)

// OutcomeKind identifies a quest success predicate variant.
type OutcomeKind string

const (
	// OutcomeAny accepts any response.
	OutcomeAny OutcomeKind = "any"
	// OutcomeContains requires every keyword to appear in the response.
	OutcomeContains OutcomeKind = "contains"
	// OutcomeBulletList requires bullet markers, optionally an exact count.
	OutcomeBulletList OutcomeKind = "bullet_list"
)

// BulletMarker is the marker character counted by bullet-list predicates.
const BulletMarker = "•"

// Outcome is a quest success predicate, parsed once at catalog load from
// the content's encoded form ("CONTAINS:...", "FORMAT:bullet points" with
// an optional "COUNT:n").
type Outcome struct {
	Kind OutcomeKind
	// Keywords holds the trimmed keyword list for OutcomeContains.
	Keywords []string
	// BulletCount is the exact required marker count for OutcomeBulletList,
	// or 0 when any positive count passes.
	BulletCount int
}

const (
	containsTag = "CONTAINS:"
	bulletTag   = "FORMAT:bullet points"
)

var countPattern = regexp.MustCompile(`COUNT:(\d+)`)

// ParseOutcome decodes an encoded predicate string. Unknown or empty
// encodings parse to OutcomeAny: any response counts as a success.
func ParseOutcome(raw string) Outcome {
	if idx := strings.Index(raw, containsTag); idx >= 0 {
		var keywords []string
		for _, kw := range strings.Split(raw[idx+len(containsTag):], ",") {
			kw = strings.TrimSpace(kw)
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		return Outcome{Kind: OutcomeContains, Keywords: keywords}
	}

	if strings.Contains(raw, bulletTag) {
		outcome := Outcome{Kind: OutcomeBulletList}
		if m := countPattern.FindStringSubmatch(raw); m != nil {
			count, err := strconv.Atoi(m[1])
			if err == nil {
				outcome.BulletCount = count
			}
		}
		return outcome
	}

	return Outcome{Kind: OutcomeAny}
}

// Matches evaluates the predicate against a simulated response.
func (o Outcome) Matches(response string) bool {
	switch o.Kind {
	case OutcomeContains:
		lower := strings.ToLower(response)
		for _, kw := range o.Keywords {
			if !strings.Contains(lower, strings.ToLower(kw)) {
				return false
			}
		}
		return true
	case OutcomeBulletList:
		count := strings.Count(response, BulletMarker)
		if o.BulletCount > 0 {
			return count == o.BulletCount
		}
		return count > 0
	default:
		return true
	}
}
