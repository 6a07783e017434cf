package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Recognized top-level keys. Everything else lands in Extra.
const (
	keyService      = "service"
	keyAccountEmail = "accountEmail"
	keySource       = "source"
	keyDiscoveredAt = "discoveredAt"
	keyID           = "id"
	keyMetadata     = "metadata"

	keyAllSources        = "allSources"
	keyFirstDiscoveredAt = "firstDiscoveredAt"
	keyLastDiscoveredAt  = "lastDiscoveredAt"
)

var nullLiteral = []byte("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), nullLiteral)
}

// UnmarshalJSON decodes a record object, routing recognized keys to the
// typed fields and everything else to Extra.
//
// Type rules:
//   - service, accountEmail: must be strings when present
//   - source, discoveredAt: string or null (null is treated as absent)
//   - metadata: object or null (null is treated as absent)
//   - id and all unrecognized fields: opaque, kept verbatim
func (a *Account) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Account{}
	for key, val := range raw {
		switch key {
		case keyService:
			s, err := decodeString(key, val)
			if err != nil {
				return err
			}
			a.Service = s
		case keyAccountEmail:
			s, err := decodeString(key, val)
			if err != nil {
				return err
			}
			a.AccountEmail = s
		case keySource:
			s, err := decodeNullableString(key, val)
			if err != nil {
				return err
			}
			a.Source = s
		case keyDiscoveredAt:
			s, err := decodeNullableString(key, val)
			if err != nil {
				return err
			}
			a.DiscoveredAt = s
		case keyID:
			a.ID = val
		case keyMetadata:
			if isNull(val) {
				continue
			}
			var meta map[string]json.RawMessage
			if err := json.Unmarshal(val, &meta); err != nil {
				return fmt.Errorf("field %q: expected object: %w", key, err)
			}
			a.Metadata = meta
		default:
			if a.Extra == nil {
				a.Extra = make(map[string]json.RawMessage)
			}
			a.Extra[key] = val
		}
	}
	return nil
}

// decodeString requires a JSON string. Explicit null is rejected: the
// identity fields must be strings whenever the key is present.
func decodeString(key string, raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, fmt.Errorf("field %q: expected string, got null", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("field %q: expected string: %w", key, err)
	}
	return &s, nil
}

// decodeNullableString accepts a JSON string or null; null reads as absent.
func decodeNullableString(key string, raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("field %q: expected string: %w", key, err)
	}
	return &s, nil
}

// MarshalJSON emits the passthrough fields, the present recognized fields,
// and the three merge fields. Merge fields are assigned last so they win
// over any same-named field carried by the input record.
func (m MergedAccount) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(m.Extra)+9)
	for key, val := range m.Extra {
		fields[key] = val
	}
	if m.Service != nil {
		fields[keyService] = *m.Service
	}
	if m.AccountEmail != nil {
		fields[keyAccountEmail] = *m.AccountEmail
	}
	if m.Source != nil {
		fields[keySource] = *m.Source
	}
	if m.DiscoveredAt != nil {
		fields[keyDiscoveredAt] = *m.DiscoveredAt
	}
	if m.ID != nil {
		fields[keyID] = m.ID
	}
	if m.Metadata != nil {
		fields[keyMetadata] = m.Metadata
	}

	sources := m.AllSources
	if sources == nil {
		sources = []string{}
	}
	fields[keyAllSources] = sources
	fields[keyFirstDiscoveredAt] = m.FirstDiscoveredAt
	fields[keyLastDiscoveredAt] = m.LastDiscoveredAt

	return json.Marshal(fields)
}
