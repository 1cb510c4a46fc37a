package domain

import "sort"

// UndoEntry is one deleted asset together with the index it occupied
// when the deletion happened
type UndoEntry struct {
	Index int
	Asset *Asset
}

// UndoBuffer holds exactly one pending undo generation: the (index,
// asset) pairs of the last deletion. Capturing a new deletion discards
// any pending one (last-delete-wins).
type UndoBuffer struct {
	entries []UndoEntry
}

// CaptureDelete records the positions of the given ids in the store,
// then removes them. The capture happens before any removal so the
// recorded indices reconstruct the exact pre-delete sequence.
func (u *UndoBuffer) CaptureDelete(s *Store, ids []string) int {
	var entries []UndoEntry
	for _, id := range ids {
		i := s.IndexOf(id)
		if i < 0 {
			continue
		}
		entries = append(entries, UndoEntry{Index: i, Asset: s.assets[i]})
	}
	if len(entries) == 0 {
		return 0
	}

	u.entries = entries
	for _, e := range entries {
		s.RemoveByID(e.Asset.ID)
	}
	return len(entries)
}

// Pending reports how many entries the next Restore would replay
func (u *UndoBuffer) Pending() int {
	return len(u.entries)
}

// Restore re-inserts the captured assets, ascending by original index,
// which reproduces the pre-delete order exactly provided no other
// structural mutation intervened. The buffer is consumed.
func (u *UndoBuffer) Restore(s *Store) int {
	if len(u.entries) == 0 {
		return 0
	}
	entries := u.entries
	u.entries = nil

	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })
	for _, e := range entries {
		s.InsertAt(e.Index, e.Asset)
	}
	return len(entries)
}
