package calculator

import "time"

// historyCap keeps only the newest snapshots; the oldest age out, there
// is no per-entry delete.
const historyCap = 10

// Snapshot is an immutable record of a finished calculation.
type Snapshot struct {
	Lines        []SnapshotLine `json:"lines"`
	SuspectID    string         `json:"suspect_id"`
	SuspectName  string         `json:"suspect_name,omitempty"`
	IsAccomplice bool           `json:"is_accomplice"`
	Fine         int            `json:"fine"`
	Jail         int            `json:"jail"`
	SavedAt      time.Time      `json:"saved_at"`
}

// SnapshotLine stores only the item reference; items themselves are never
// persisted.
type SnapshotLine struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// sameSnapshot compares by item-id sequence and suspect id. Used only
// against the most recent entry, so repeated copies of an unchanged cart
// do not flood history while older duplicates are still allowed back in.
func sameSnapshot(a, b Snapshot) bool {
	if a.SuspectID != b.SuspectID || len(a.Lines) != len(b.Lines) {
		return false
	}
	for i := range a.Lines {
		if a.Lines[i].ItemID != b.Lines[i].ItemID {
			return false
		}
	}
	return true
}

// pushSnapshot prepends snap, applying head dedup and the cap.
func pushSnapshot(history []Snapshot, snap Snapshot) []Snapshot {
	if len(history) > 0 && sameSnapshot(history[0], snap) {
		return history
	}

	history = append([]Snapshot{snap}, history...)
	if len(history) > historyCap {
		history = history[:historyCap]
	}
	return history
}
