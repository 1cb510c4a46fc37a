package domain

// Snapshot is the serialized form of a project: metadata plus the
// assets in store order. It is a transient view: exports and saves
// work from a snapshot so later store edits are never observed by an
// in-flight operation.
type Snapshot struct {
	Metadata Metadata `json:"metadata"`
	Assets   []*Asset `json:"assets"`
}

// TakeSnapshot deep-copies the store's current contents
func TakeSnapshot(s *Store) Snapshot {
	assets := make([]*Asset, 0, s.Len())
	for _, a := range s.Assets() {
		assets = append(assets, a.Clone())
	}
	return Snapshot{Metadata: s.Metadata, Assets: assets}
}
