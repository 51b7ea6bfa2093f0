package calculator

import (
	"fmt"
	"strings"

	"precinct/internal/penalcode"
)

const (
	// SuspectPlaceholder stands in for the in-game id when none was given.
	SuspectPlaceholder = "[ID]"

	accompliceSuffix = " (bűnsegéd)"
)

// CommandOptions carries the officer's manual adjustments. Nil Fine/Jail
// default to the aggregated maximum.
type CommandOptions struct {
	SuspectID    string
	Fine         *int
	Jail         *int
	IsAccomplice bool
}

// Commands is the copy-paste output of the calculator. An empty cart
// yields the zero value: every field explicitly empty, never stale text.
type Commands struct {
	Reason       string `json:"reason"`
	Ticket       string `json:"ticket"`
	ArrestReason string `json:"arrest_reason"`
	Arrest       string `json:"arrest"`
	Fine         int    `json:"fine"`
	Jail         int    `json:"jail"`
	Notice       string `json:"notice,omitempty"`
}

// Clamp forces v into [min, max]; out-of-range manual input is corrected,
// not rejected.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// BuildCommands renders the ticket and arrest commands from a cart and
// its summary.
func BuildCommands(lines []Line, sum Summary, opts CommandOptions) Commands {
	if len(lines) == 0 {
		return Commands{}
	}

	fine := sum.MaxFine
	if opts.Fine != nil {
		fine = Clamp(*opts.Fine, sum.MinFine, sum.MaxFine)
	}
	jail := sum.MaxJail
	if opts.Jail != nil {
		jail = Clamp(*opts.Jail, sum.MinJail, sum.MaxJail)
	}

	suspect := strings.TrimSpace(opts.SuspectID)
	if suspect == "" {
		suspect = SuspectPlaceholder
	}

	reason := GroupReason(lines)
	if opts.IsAccomplice {
		reason += accompliceSuffix
	}

	cmds := Commands{
		Reason: reason,
		Fine:   fine,
		Jail:   jail,
		Ticket: fmt.Sprintf("/ticket %s %d %s", suspect, fine, reason),
	}

	// The arrest command only exists when at least one line actually
	// carries jail time; a manually set jail value alone is not enough.
	var jailLines []Line
	for _, line := range lines {
		if penalcode.HasJailTime(line.Item) {
			jailLines = append(jailLines, line)
		}
	}

	if len(jailLines) > 0 {
		arrestReason := GroupReason(jailLines)
		if opts.IsAccomplice {
			arrestReason += accompliceSuffix
		}
		cmds.ArrestReason = arrestReason
		cmds.Arrest = fmt.Sprintf("/arrest %s %d %s", suspect, jail, arrestReason)
	}

	if n := len(sum.SpecialJailNotes); n > 0 {
		cmds.Notice = fmt.Sprintf("%d special penalty note(s) apply, check them before executing the sentence", n)
	}

	return cmds
}

// GroupReason renders cart lines as a deduplicated reason string: lines
// grouped by abbreviation (name as fallback) in first-seen order, counts
// summing quantities, "ABBR(x2)" for more than one.
func GroupReason(lines []Line) string {
	var order []string
	counts := make(map[string]int)

	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		key := line.Item.Abbreviation
		if key == "" {
			key = line.Item.Name
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key] += line.Quantity
	}

	parts := make([]string, 0, len(order))
	for _, key := range order {
		if counts[key] > 1 {
			parts = append(parts, fmt.Sprintf("%s(x%d)", key, counts[key]))
		} else {
			parts = append(parts, key)
		}
	}

	return strings.Join(parts, ", ")
}
