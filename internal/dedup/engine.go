package dedup

import (
	"encoding/json"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelsec/accountdedup/internal/model"
)

// Options holds engine tuning knobs.
type Options struct {
	// KeyWorkers shards the per-record identity key computation across
	// this many goroutines. The merge fold itself is always sequential.
	// Values <= 1 keep the key pass sequential too.
	KeyWorkers int
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{KeyWorkers: 1}
}

// Process runs the engine over the full input and assembles the result
// envelope: merged accounts plus original/cleaned counts.
func Process(accounts []model.Account, opts Options) *model.Result {
	merged := Deduplicate(accounts, opts)
	return &model.Result{
		Accounts:      merged,
		OriginalCount: len(accounts),
		CleanedCount:  len(merged),
	}
}

// Deduplicate folds the input records into one merged record per identity
// key. Output order is the order in which each key first appeared in the
// input.
func Deduplicate(accounts []model.Account, opts Options) []model.MergedAccount {
	keys := identityKeys(accounts, opts.KeyWorkers)

	index := make(map[string]int, len(accounts))
	merged := make([]model.MergedAccount, 0, len(accounts))

	for i := range accounts {
		if at, ok := index[keys[i]]; ok {
			mergeInto(&merged[at], &accounts[i])
			continue
		}
		index[keys[i]] = len(merged)
		merged = append(merged, newAccumulator(accounts[i]))
	}
	return merged
}

// identityKeys computes the key for every record up front. With more than
// one worker the slice is sharded into contiguous chunks; keys land by
// index, so the result is identical to the sequential pass.
func identityKeys(accounts []model.Account, workers int) []string {
	keys := make([]string, len(accounts))
	if workers <= 1 || len(accounts) < 2 {
		for i := range accounts {
			keys[i] = Key(accounts[i].ServiceName(), accounts[i].Email())
		}
		return keys
	}

	var g errgroup.Group
	chunk := (len(accounts) + workers - 1) / workers
	for start := 0; start < len(accounts); start += chunk {
		start := start
		end := min(start+chunk, len(accounts))
		g.Go(func() error {
			for i := start; i < end; i++ {
				keys[i] = Key(accounts[i].ServiceName(), accounts[i].Email())
			}
			return nil
		})
	}
	g.Wait() // workers never return errors
	return keys
}

// newAccumulator starts a merged record from the first record seen for a
// key. The record's source seeds allSources even when it is empty; only
// later merges filter empty sources out.
func newAccumulator(a model.Account) model.MergedAccount {
	return model.MergedAccount{
		Account:           a,
		AllSources:        []string{a.SourceName()},
		FirstDiscoveredAt: a.Discovered(),
		LastDiscoveredAt:  a.Discovered(),
	}
}

// mergeInto folds one more record into an existing accumulator.
func mergeInto(m *model.MergedAccount, in *model.Account) {
	if src := in.SourceName(); src != "" && !slices.Contains(m.AllSources, src) {
		m.AllSources = append(m.AllSources, src)
	}

	reconcileTimestamps(m, in.Discovered())

	// Latest record with an id key wins, explicit null included. A record
	// without the key keeps the stored id.
	if in.ID != nil {
		m.ID = in.ID
	}

	if len(in.Metadata) > 0 {
		meta := make(map[string]json.RawMessage, len(m.Metadata)+len(in.Metadata))
		for k, v := range m.Metadata {
			meta[k] = v
		}
		for k, v := range in.Metadata {
			meta[k] = v
		}
		m.Metadata = meta
	}
}

// reconcileTimestamps widens the stored discovery bounds with an incoming
// timestamp. The bounds only move when the incoming value and both stored
// values all parse; otherwise they are left untouched, with no diagnostic.
// The raw input strings are kept, never a reformatted form.
func reconcileTimestamps(m *model.MergedAccount, incoming string) {
	if incoming == "" {
		return
	}
	in, ok := parseTimestamp(incoming)
	if !ok {
		return
	}
	first, ok := parseTimestamp(m.FirstDiscoveredAt)
	if !ok {
		return
	}
	last, ok := parseTimestamp(m.LastDiscoveredAt)
	if !ok {
		return
	}
	if in.Before(first) {
		m.FirstDiscoveredAt = incoming
	}
	if in.After(last) {
		m.LastDiscoveredAt = incoming
	}
}
