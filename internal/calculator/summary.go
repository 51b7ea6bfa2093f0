package calculator

import (
	"fmt"

	"precinct/internal/penalcode"
)

// Summary is derived from a cart and never stored: recomputed on every
// mutation, purely a function of the lines and the accomplice flag.
type Summary struct {
	MinFine int `json:"min_fine"`
	MaxFine int `json:"max_fine"`
	MinJail int `json:"min_jail"`
	MaxJail int `json:"max_jail"`

	// SpecialJailNotes lists textual penalties that could not be totalled
	// numerically, deduplicated by exact string.
	SpecialJailNotes []string `json:"special_jail_notes"`

	// WarningItems are the charges carrying an administrative warning,
	// deduplicated by item id.
	WarningItems []penalcode.Item `json:"warning_items"`
}

// Summarize reduces cart lines into fine/jail totals.
//
// Escalation terms ("+N perc") count into BOTH jail bounds and still
// leave a note; this dual behavior is how escalation notices reach the
// officer and must not be collapsed into either half. An escalation
// stored identically in both jail fields counts once.
func Summarize(lines []Line, isAccomplice bool) Summary {
	var sum Summary

	seenNotes := make(map[string]bool)
	seenWarnings := make(map[int]bool)

	note := func(item penalcode.Item, raw string, quantity int) {
		text := fmt.Sprintf("%s: %s (x%d)", item.Name, raw, quantity)
		if seenNotes[text] {
			return
		}
		seenNotes[text] = true
		sum.SpecialJailNotes = append(sum.SpecialJailNotes, text)
	}

	for _, line := range lines {
		quantity := line.Quantity
		if quantity < 1 {
			continue
		}
		item := line.Item

		if item.MinFine != nil {
			sum.MinFine += *item.MinFine * quantity
		}
		if item.MaxFine != nil {
			sum.MaxFine += *item.MaxFine * quantity
		}

		minTerm := penalcode.ParseJailTerm(item.MinJail)
		maxTerm := penalcode.ParseJailTerm(item.MaxJail)

		switch minTerm.Kind {
		case penalcode.TermNumeric:
			sum.MinJail += minTerm.Minutes * quantity
		case penalcode.TermEscalation:
			sum.MinJail += minTerm.Minutes * quantity
			sum.MaxJail += minTerm.Minutes * quantity
			note(item, minTerm.Text, quantity)
		case penalcode.TermOpaque:
			note(item, minTerm.Text, quantity)
		}

		duplicateEscalation := minTerm.Kind == penalcode.TermEscalation &&
			maxTerm.Kind == penalcode.TermEscalation &&
			minTerm.Text == maxTerm.Text

		switch maxTerm.Kind {
		case penalcode.TermNumeric:
			sum.MaxJail += maxTerm.Minutes * quantity
		case penalcode.TermEscalation:
			if !duplicateEscalation {
				sum.MinJail += maxTerm.Minutes * quantity
				sum.MaxJail += maxTerm.Minutes * quantity
				note(item, maxTerm.Text, quantity)
			}
		case penalcode.TermOpaque:
			note(item, maxTerm.Text, quantity)
		}

		if item.Warning != penalcode.WarningNone && !seenWarnings[item.ID] {
			seenWarnings[item.ID] = true
			sum.WarningItems = append(sum.WarningItems, item)
		}
	}

	if isAccomplice {
		sum.MinFine /= 2
		sum.MaxFine /= 2
		sum.MinJail /= 2
		sum.MaxJail /= 2
	}

	return sum
}
