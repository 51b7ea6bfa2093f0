package penalcode

import (
	"strconv"
	"strings"
)

// TermKind tags a parsed jail-time value.
type TermKind int

const (
	// TermNone: field absent or empty.
	TermNone TermKind = iota
	// TermNumeric: plain minute count.
	TermNumeric
	// TermEscalation: "+N perc" — counts into the numeric total AND is
	// surfaced as a note.
	TermEscalation
	// TermOpaque: free text that cannot be totalled (e.g. "bírói döntés").
	TermOpaque
)

// Term is the parsed form of a JailValue. The aggregator only ever works
// with Terms; the "+N perc" mini-grammar lives here and nowhere else.
type Term struct {
	Kind    TermKind
	Minutes int
	Text    string
}

const jailUnit = "perc"

// ParseJailTerm converts a raw jail field into a tagged term.
func ParseJailTerm(v JailValue) Term {
	if !v.Valid {
		return Term{Kind: TermNone}
	}

	if v.Numeric {
		return Term{Kind: TermNumeric, Minutes: v.Minutes}
	}

	text := strings.TrimSpace(v.Text)
	if text == "" {
		return Term{Kind: TermNone}
	}

	if strings.HasPrefix(text, "+") && strings.HasSuffix(strings.ToLower(text), jailUnit) {
		body := strings.TrimPrefix(text, "+")
		body = body[:len(body)-len(jailUnit)]
		if n, err := strconv.Atoi(strings.TrimSpace(body)); err == nil && n > 0 {
			return Term{Kind: TermEscalation, Minutes: n, Text: text}
		}
	}

	return Term{Kind: TermOpaque, Text: text}
}

// HasJailTime reports whether an item contributes real jail time, i.e.
// whether it belongs in an arrest command at all.
func HasJailTime(item Item) bool {
	for _, term := range []Term{ParseJailTerm(item.MinJail), ParseJailTerm(item.MaxJail)} {
		switch term.Kind {
		case TermNumeric:
			if term.Minutes > 0 {
				return true
			}
		case TermEscalation:
			return true
		}
	}
	return false
}
