package migration

import "fmt"

// Store is the persisted application state as decoded from JSON.
type Store map[string]any

// Keys of the project metadata block.
const (
	MetaKey        = "$_projectMeta"
	VersionKey     = "version"
	HistoryKey     = "updateHistory"
	InitialVersion = "0.0.0"
)

// HistoryEntry is one record of $_projectMeta.updateHistory.
type HistoryEntry struct {
	From        string
	To          string
	Timestamp   string
	Description string
}

func (h HistoryEntry) toMap() map[string]any {
	return map[string]any{
		"from":        h.From,
		"to":          h.To,
		"timestamp":   h.Timestamp,
		"description": h.Description,
	}
}

// Version returns $_projectMeta.version, or InitialVersion when the store
// carries no version.
func (s Store) Version() string {
	meta, ok := asMap(s[MetaKey])
	if !ok {
		return InitialVersion
	}

	v, ok := meta[VersionKey].(string)
	if !ok || v == "" {
		return InitialVersion
	}

	return v
}

// History returns the update history records in append order.
func (s Store) History() []HistoryEntry {
	meta, ok := asMap(s[MetaKey])
	if !ok {
		return nil
	}

	list, _ := meta[HistoryKey].([]any)
	out := make([]HistoryEntry, 0, len(list))

	for _, item := range list {
		m, ok := asMap(item)
		if !ok {
			continue
		}

		out = append(out, HistoryEntry{
			From:        str(m["from"]),
			To:          str(m["to"]),
			Timestamp:   str(m["timestamp"]),
			Description: str(m["description"]),
		})
	}

	return out
}

// meta returns the metadata block, creating it when missing.
func (s Store) meta() map[string]any {
	meta, ok := asMap(s[MetaKey])
	if !ok {
		meta = map[string]any{}
		s[MetaKey] = meta
	}

	return meta
}

// record sets the version and appends one history entry. The history is
// append-only: a value that is not a list is never replaced.
func (s Store) record(h HistoryEntry) error {
	meta := s.meta()

	var history []any

	switch raw := meta[HistoryKey].(type) {
	case nil:
	case []any:
		history = raw
	default:
		return fmt.Errorf("%s.%s is %T, not a list", MetaKey, HistoryKey, raw)
	}

	meta[HistoryKey] = append(history, h.toMap())
	meta[VersionKey] = h.To

	return nil
}

// Clone returns a deep copy of the store.
func (s Store) Clone() Store {
	if s == nil {
		return Store{}
	}

	return Store(cloneMap(s))
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneMap(x)
	case Store:
		return Store(cloneMap(x))
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = cloneValue(item)
		}

		return out
	case map[string]string:
		out := make(map[string]string, len(x))
		for k, item := range x {
			out[k] = item
		}

		return out
	case []string:
		return append([]string(nil), x...)
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, x != nil
	case Store:
		return x, x != nil
	default:
		return nil, false
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
