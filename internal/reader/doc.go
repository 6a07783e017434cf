// Package reader implements the input boundary of the deduplicator.
//
// The reader:
//   - Materializes the full input stream (no streaming decode)
//   - Rejects syntactically invalid JSON with a ParseError
//   - Rejects any top-level shape other than an array with ErrNotArray
//   - Decodes each element into a model.Account
//
// Per-record anomalies the engine tolerates (missing fields, unparsable
// timestamps) are not the reader's concern; it only enforces the record
// type rules documented on model.Account.
package reader
