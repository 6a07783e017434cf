package model

import "encoding/json"

// -----------------------------------------------------------------------------
// Input Types
// -----------------------------------------------------------------------------

// Account is one discovered account record as produced by a scanner.
//
// Records are open-ended: beyond the recognized fields below, a record may
// carry arbitrary extra fields, which are preserved verbatim in Extra and
// passed through to the output on whichever record wins a merge.
type Account struct {
	Service      *string                    // Originating platform/service (identity component)
	AccountEmail *string                    // Account email/identifier (identity component)
	Source       *string                    // Discovery source/scanner that produced this record
	DiscoveredAt *string                    // ISO-8601 discovery timestamp, "Z" suffix allowed
	ID           json.RawMessage            // Latest-known identifier; nil means the key was absent
	Metadata     map[string]json.RawMessage // Source-specific attributes; nil means absent
	Extra        map[string]json.RawMessage // Unrecognized fields, passed through unmodified
}

// ServiceName returns the service field, or "" when absent.
func (a *Account) ServiceName() string { return deref(a.Service) }

// Email returns the accountEmail field, or "" when absent.
func (a *Account) Email() string { return deref(a.AccountEmail) }

// SourceName returns the source field, or "" when absent.
func (a *Account) SourceName() string { return deref(a.Source) }

// Discovered returns the discoveredAt field, or "" when absent.
func (a *Account) Discovered() string { return deref(a.DiscoveredAt) }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// -----------------------------------------------------------------------------
// Output Types
// -----------------------------------------------------------------------------

// MergedAccount is the single output record representing every input record
// that shares an identity key.
type MergedAccount struct {
	Account

	// AllSources accumulates distinct non-empty source values in append
	// order. The creating record's source is recorded even when empty.
	AllSources []string

	// FirstDiscoveredAt / LastDiscoveredAt bound the parseable discovery
	// timestamps seen for the identity key. Raw input strings, possibly "".
	FirstDiscoveredAt string
	LastDiscoveredAt  string
}

// Result is the success envelope written to the output stream.
type Result struct {
	Accounts      []MergedAccount `json:"accounts"`
	OriginalCount int             `json:"original_count"`
	CleanedCount  int             `json:"cleaned_count"`
}

// ErrorEnvelope is the failure envelope written to the error stream.
// Accounts is always present and always empty.
type ErrorEnvelope struct {
	Error    string          `json:"error"`
	Accounts []MergedAccount `json:"accounts"`
}

// NewErrorEnvelope builds a failure envelope with an empty (non-null)
// accounts array.
func NewErrorEnvelope(msg string) ErrorEnvelope {
	return ErrorEnvelope{Error: msg, Accounts: []MergedAccount{}}
}
