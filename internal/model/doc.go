// Package model defines shared data types for the account deduplicator.
//
// Conventions:
//   - Optional string fields are pointers: nil means the key was absent
//     from the input record, "" means it was present and empty.
//   - Opaque values (id, metadata entries, unrecognized fields) are held
//     as json.RawMessage so they pass through byte-for-byte.
//   - Timestamps are the raw ISO-8601 strings from the input; parsing
//     happens only inside the dedup engine, for comparison.
package model
