package dedup

import (
	"strings"

	"golang.org/x/text/cases"
)

// keySeparator joins the normalized service and email components. "::" is
// not expected to occur in service names.
const keySeparator = "::"

// Key derives the identity key for a (service, email) pair. Two records
// describe the same logical account iff their keys are equal.
//
// Normalization is Unicode case folding plus leading/trailing whitespace
// removal; matching is exact on the normalized strings, never fuzzy.
func Key(service, email string) string {
	return normalize(service) + keySeparator + normalize(email)
}

func normalize(s string) string {
	return strings.TrimSpace(cases.Fold().String(s))
}
