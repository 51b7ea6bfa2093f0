package penalcode

import (
	"encoding/json"
	"strconv"
)

// WarningKind classifies the administrative side effect a charge carries
// (license seizure, firearm permit revocation, ...) on top of fine/jail.
type WarningKind string

const (
	WarningNone                      WarningKind = "none"
	WarningLicenseBan                WarningKind = "license_ban"
	WarningLicenseRegistrationRevoke WarningKind = "license_registration_revoke"
	WarningFirearmRevoke             WarningKind = "firearm_revoke"
)

// Document is the raw penal-code file: categories of entries, each entry
// optionally carrying sub-entries. Field names follow the source dataset
// and must not be renamed.
type Document struct {
	Revision   string     `json:"revision"`
	Categories []Category `json:"kategoriak"`
}

type Category struct {
	Name    string  `json:"kategoria_nev"`
	Entries []Entry `json:"tetelek"`
}

// Entry is one penal-code paragraph. Sub-entries share the same shape.
type Entry struct {
	Paragraph    string    `json:"paragrafus"`
	Name         string    `json:"megnevezes"`
	MinFine      *int      `json:"min_birsag"`
	MaxFine      *int      `json:"max_birsag"`
	MinJail      JailValue `json:"min_fegyhaz"`
	MaxJail      JailValue `json:"max_fegyhaz"`
	Abbreviation string    `json:"rovidites"`
	Note         string    `json:"megjegyzes"`
	SubEntries   []Entry   `json:"alpontok"`
}

// JailValue is a jail-time field as stored in the dataset: a number of
// minutes, a free-text value ("+15 perc", "bírói döntés"), or null.
type JailValue struct {
	Valid   bool
	Numeric bool
	Minutes int
	Text    string
}

func NumericJail(minutes int) JailValue {
	return JailValue{Valid: true, Numeric: true, Minutes: minutes}
}

func TextJail(text string) JailValue {
	return JailValue{Valid: true, Text: text}
}

// UnmarshalJSON accepts number, string or null. Anything else decodes as
// absent rather than failing, so one malformed field cannot take down the
// whole catalog.
func (v *JailValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = JailValue{}
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*v = JailValue{Valid: true, Numeric: true, Minutes: int(n)}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = JailValue{Valid: true, Text: s}
		return nil
	}

	*v = JailValue{}
	return nil
}

func (v JailValue) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	if v.Numeric {
		return []byte(strconv.Itoa(v.Minutes)), nil
	}
	return json.Marshal(v.Text)
}

// Item is a flattened, chargeable unit: either a leaf entry or a
// sub-entry expanded with its parent context. Immutable after load.
type Item struct {
	ID           int         `json:"id"`
	Category     string      `json:"category"`
	ParentName   string      `json:"parent_name,omitempty"`
	Paragraph    string      `json:"paragraph"`
	Name         string      `json:"name"`
	Abbreviation string      `json:"abbreviation"`
	MinFine      *int        `json:"min_fine"`
	MaxFine      *int        `json:"max_fine"`
	MinJail      JailValue   `json:"min_jail"`
	MaxJail      JailValue   `json:"max_jail"`
	Note         string      `json:"note"`
	Warning      WarningKind `json:"warning"`
}
