package domain

// ChangeKind describes what a store mutation did
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeRemoved
	ChangeUpdated
	ChangeMoved
	ChangeReset
)

// Event is delivered synchronously to subscribers after every mutating
// operation, with enough detail for dependent views to recompute.
type Event struct {
	Kind ChangeKind
	IDs  []string
}

// Store is the authoritative ordered collection of assets for the open
// project, plus its metadata. Insertion order is the display and export
// order unless a View overrides it for presentation.
//
// The store is confined to the coordinating goroutine; it has no
// internal locking. Background work receives snapshots and hands
// results back over channels.
type Store struct {
	assets      []*Asset
	Metadata    Metadata
	subscribers []func(Event)
}

// NewStore creates an empty store with default metadata
func NewStore() *Store {
	return &Store{Metadata: DefaultMetadata()}
}

// Subscribe registers a callback invoked synchronously after each mutation
func (s *Store) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(e Event) {
	for _, fn := range s.subscribers {
		fn(e)
	}
}

// Len returns the number of assets
func (s *Store) Len() int {
	return len(s.assets)
}

// At returns the asset at index i, or nil when out of bounds
func (s *Store) At(i int) *Asset {
	if i < 0 || i >= len(s.assets) {
		return nil
	}
	return s.assets[i]
}

// Assets returns the assets in store order. The returned slice is a
// copy; the assets themselves are shared.
func (s *Store) Assets() []*Asset {
	out := make([]*Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// FindByID returns the asset with the given id, or nil
func (s *Store) FindByID(id string) *Asset {
	if i := s.IndexOf(id); i >= 0 {
		return s.assets[i]
	}
	return nil
}

// IndexOf returns the index of the asset with the given id, or -1
func (s *Store) IndexOf(id string) int {
	for i, a := range s.assets {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// Add appends an asset
func (s *Store) Add(a *Asset) {
	s.assets = append(s.assets, a)
	s.notify(Event{Kind: ChangeAdded, IDs: []string{a.ID}})
}

// InsertAt inserts an asset, clamping the index into [0, Len()]
func (s *Store) InsertAt(index int, a *Asset) {
	if index < 0 {
		index = 0
	}
	if index > len(s.assets) {
		index = len(s.assets)
	}
	s.assets = append(s.assets, nil)
	copy(s.assets[index+1:], s.assets[index:])
	s.assets[index] = a
	s.notify(Event{Kind: ChangeAdded, IDs: []string{a.ID}})
}

// RemoveByID deletes the asset with the given id. A missing id is a
// no-op, mirroring "delete already gone" tolerance for idempotent undo.
func (s *Store) RemoveByID(id string) {
	i := s.IndexOf(id)
	if i < 0 {
		return
	}
	s.assets = append(s.assets[:i], s.assets[i+1:]...)
	s.notify(Event{Kind: ChangeRemoved, IDs: []string{id}})
}

// MoveTo reorders the asset at oldIndex to newIndex using classic
// list-move semantics: the item is removed first, so a target past the
// source shifts down by one. Out-of-range targets are clamped; moving
// an item to its own position is a no-op.
func (s *Store) MoveTo(oldIndex, newIndex int) {
	if oldIndex == newIndex {
		return
	}
	if oldIndex < 0 || oldIndex >= len(s.assets) {
		return
	}
	a := s.assets[oldIndex]
	s.assets = append(s.assets[:oldIndex], s.assets[oldIndex+1:]...)
	if oldIndex < newIndex {
		newIndex--
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(s.assets) {
		newIndex = len(s.assets)
	}
	s.assets = append(s.assets, nil)
	copy(s.assets[newIndex+1:], s.assets[newIndex:])
	s.assets[newIndex] = a
	s.notify(Event{Kind: ChangeMoved, IDs: []string{a.ID}})
}

// Touched reports that an asset's fields were edited in place
func (s *Store) Touched(id string) {
	s.notify(Event{Kind: ChangeUpdated, IDs: []string{id}})
}

// Clear empties the store and resets metadata to defaults
func (s *Store) Clear() {
	s.assets = nil
	s.Metadata = DefaultMetadata()
	s.notify(Event{Kind: ChangeReset})
}

// Replace swaps in a loaded project wholesale: assets in order plus
// metadata. Used by project load; existing contents are discarded.
func (s *Store) Replace(meta Metadata, assets []*Asset) {
	s.assets = append([]*Asset(nil), assets...)
	s.Metadata = meta
	s.notify(Event{Kind: ChangeReset})
}
