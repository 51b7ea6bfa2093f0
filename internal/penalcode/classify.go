package penalcode

import "strings"

// Keyword families for warning classification, most specific first.
// Order matters: the compound license+registration phrases would also hit
// the generic license family, so they are checked before it.
var (
	licenseRegistrationKeywords = []string{
		"jogosítvány és forgalmi bevonása",
		"jogosítvány és forgalmi elvétele",
		"forgalmi engedély bevonása",
	}

	firearmKeywords = []string{
		"fegyvertartási engedély bevonása",
		"fegyvertartási engedély",
		"fegyverek elkobzása",
		"fegyver elkobzása",
	}

	licenseBanKeywords = []string{
		"jogosítvány bevonása",
		"jogosítvány elvétele",
		"vezetéstől eltiltás",
		"járművezetéstől eltiltás",
	}
)

// Classify assigns a warning kind from an item's note and name. The first
// matching family wins; families are never combined.
func Classify(note, name string) WarningKind {
	text := strings.ToLower(note + " " + name)

	for _, kw := range licenseRegistrationKeywords {
		if strings.Contains(text, kw) {
			return WarningLicenseRegistrationRevoke
		}
	}

	for _, kw := range firearmKeywords {
		if strings.Contains(text, kw) {
			return WarningFirearmRevoke
		}
	}

	for _, kw := range licenseBanKeywords {
		if strings.Contains(text, kw) {
			return WarningLicenseBan
		}
	}

	return WarningNone
}
