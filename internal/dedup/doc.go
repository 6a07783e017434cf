// Package dedup implements the account deduplication engine.
//
// The engine:
//   - Derives an identity key per record: casefold(service) + "::" + casefold(email)
//   - Folds records sharing a key into one merged record, in input order
//   - Accumulates distinct source labels in allSources
//   - Widens firstDiscoveredAt/lastDiscoveredAt across parseable timestamps
//   - Unions metadata maps, incoming keys winning
//   - Emits merged records in first-appearance order of their keys
//
// The fold is sequential; only the per-record key computation may be
// sharded across workers.
package dedup
