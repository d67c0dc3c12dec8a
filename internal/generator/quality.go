package generator

import "strings"

// MinQualityScore is the gate below which a generated question is dropped
// instead of stored.
const MinQualityScore = 0.75

// QualityChecks holds the individual structural compliance checks for one
// generated question.
type QualityChecks struct {
	TextLengthOK       bool
	OptionsBalanced    bool
	ExplanationPresent bool
	OptionsDistinct    bool
}

// ComputeQualityChecks evaluates structural compliance for a single question.
func ComputeQualityChecks(q GeneratedQuestion) QualityChecks {
	textLen := len(q.Text)

	// The correct option standing out by sheer length is the most common
	// giveaway the prompt warns against.
	balanced := true
	if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
		correctLen := len(q.Options[q.CorrectAnswer])
		for i, opt := range q.Options {
			if i != q.CorrectAnswer && correctLen > 2*len(opt) {
				balanced = false
			}
		}
	}

	distinct := true
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if seen[key] {
			distinct = false
		}
		seen[key] = true
	}

	return QualityChecks{
		TextLengthOK:       textLen >= 20 && textLen <= 500,
		OptionsBalanced:    balanced,
		ExplanationPresent: strings.TrimSpace(q.Explanation) != "",
		OptionsDistinct:    distinct,
	}
}

// ComputeQualityScore calculates a structural quality score (0.0-1.0), each
// check worth 0.25.
func ComputeQualityScore(q GeneratedQuestion) float64 {
	checks := ComputeQualityChecks(q)

	score := 0.0
	if checks.TextLengthOK {
		score += 0.25
	}
	if checks.OptionsBalanced {
		score += 0.25
	}
	if checks.ExplanationPresent {
		score += 0.25
	}
	if checks.OptionsDistinct {
		score += 0.25
	}
	return score
}
