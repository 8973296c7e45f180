package uasset

// ChangeKind classifies one difference between two string tables.
type ChangeKind int

const (
	// Changed means the key exists in both tables with different values.
	Changed ChangeKind = iota
	// Removed means the key exists only in the first table.
	Removed
	// Added means the key exists only in the second table.
	Added
)

// Change is one difference found by Diff.
type Change struct {
	Kind     ChangeKind
	Key      string
	OldValue string // set for Changed and Removed
	NewValue string // set for Changed and Added
}

// Diff compares two string tables by key and reports changed keys,
// keys only present in a, and keys only present in b, in that order.
// When a table contains duplicate keys the last value wins for
// comparison purposes.
func Diff(a, b StringTable) []Change {
	byKeyA := lastByKey(a)
	byKeyB := lastByKey(b)
	orderA := dedup(a)

	var changes []Change
	for _, e := range orderA {
		if other, ok := byKeyB[e.Key]; ok && other != byKeyA[e.Key] {
			changes = append(changes, Change{Kind: Changed, Key: e.Key, OldValue: byKeyA[e.Key], NewValue: other})
		}
	}
	for _, e := range orderA {
		if _, ok := byKeyB[e.Key]; !ok {
			changes = append(changes, Change{Kind: Removed, Key: e.Key, OldValue: byKeyA[e.Key]})
		}
	}
	for _, e := range dedup(b) {
		if _, ok := byKeyA[e.Key]; !ok {
			changes = append(changes, Change{Kind: Added, Key: e.Key, NewValue: byKeyB[e.Key]})
		}
	}
	return changes
}

func lastByKey(t StringTable) map[string]string {
	m := make(map[string]string, len(t))
	for _, e := range t {
		m[e.Key] = e.Value
	}
	return m
}

// dedup keeps one entry per key, preserving first-seen order.
func dedup(t StringTable) StringTable {
	seen := make(map[string]struct{}, len(t))
	out := make(StringTable, 0, len(t))
	for _, e := range t {
		if _, ok := seen[e.Key]; ok {
			continue
		}
		seen[e.Key] = struct{}{}
		out = append(out, e)
	}
	return out
}
