package manifest

// ChangeKind classifies how a key differs between two manifests.
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeChanged   ChangeKind = "changed"
	ChangeRemoved   ChangeKind = "removed"
	ChangeUnchanged ChangeKind = "unchanged"
)

// Change is a per-key difference.
type Change struct {
	Key    string     `json:"key"`
	Kind   ChangeKind `json:"kind"`
	Before any        `json:"before,omitempty"`
	After  any        `json:"after,omitempty"`
}

// Diff compares before and after one level deep. Keys are reported in the
// order of after, followed by keys only present in before.
func Diff(before, after *Manifest) []Change {
	changes := make([]Change, 0, after.Len()+before.Len())
	for _, key := range after.Keys() {
		next, _ := after.Get(key)
		prev, existed := before.Get(key)
		switch {
		case !existed:
			changes = append(changes, Change{Key: key, Kind: ChangeAdded, After: next})
		case Equal(prev, next):
			changes = append(changes, Change{Key: key, Kind: ChangeUnchanged, Before: prev, After: next})
		default:
			changes = append(changes, Change{Key: key, Kind: ChangeChanged, Before: prev, After: next})
		}
	}
	for _, key := range before.Keys() {
		if after.Has(key) {
			continue
		}
		prev, _ := before.Get(key)
		changes = append(changes, Change{Key: key, Kind: ChangeRemoved, Before: prev})
	}
	return changes
}

// HasChanges reports whether any change is not ChangeUnchanged.
func HasChanges(changes []Change) bool {
	for _, change := range changes {
		if change.Kind != ChangeUnchanged {
			return true
		}
	}
	return false
}
