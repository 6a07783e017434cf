// Package writer implements the output boundary of the deduplicator.
//
// Writers:
//   - Result envelope ({accounts, original_count, cleaned_count}) to the
//     output stream, optionally indented
//   - Error envelope ({error, accounts: []}) to the error stream
//
// Envelopes are written in one shot; the accounts array in an error
// envelope is always present and always empty.
package writer
