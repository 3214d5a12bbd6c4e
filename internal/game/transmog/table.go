package transmog

import "sync"

// Table — in-memory index of active appearance overrides.
// Forward map (item guid → borrowed entry) answers the hot render-path
// lookup, the owner index makes logout eviction and bulk removal cheap.
// Both maps stay consistent under one mutex.
type Table struct {
	mu      sync.RWMutex
	looks   map[uint32]int32           // item guid → borrowed entry
	ownerOf map[uint32]int64           // item guid → character id
	byOwner map[int64]map[uint32]int32 // character id → (item guid → borrowed entry)
}

// NewTable creates an empty override table.
func NewTable() *Table {
	return &Table{
		looks:   make(map[uint32]int32, 64),
		ownerOf: make(map[uint32]int64, 64),
		byOwner: make(map[int64]map[uint32]int32, 16),
	}
}

// Look returns the borrowed entry for an item, if any.
func (t *Table) Look(itemGUID uint32) (int32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entry, ok := t.looks[itemGUID]
	return entry, ok
}

// Set records an override, replacing any previous one for the item.
func (t *Table) Set(ownerID int64, itemGUID uint32, entry int32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-home the item if a stale owner still indexes it
	if prev, ok := t.ownerOf[itemGUID]; ok && prev != ownerID {
		delete(t.byOwner[prev], itemGUID)
		if len(t.byOwner[prev]) == 0 {
			delete(t.byOwner, prev)
		}
	}

	t.looks[itemGUID] = entry
	t.ownerOf[itemGUID] = ownerID
	owned := t.byOwner[ownerID]
	if owned == nil {
		owned = make(map[uint32]int32, 8)
		t.byOwner[ownerID] = owned
	}
	owned[itemGUID] = entry
}

// Remove drops an item's override. Returns false if there was none.
func (t *Table) Remove(itemGUID uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	ownerID, ok := t.ownerOf[itemGUID]
	if !ok {
		return false
	}
	delete(t.looks, itemGUID)
	delete(t.ownerOf, itemGUID)
	delete(t.byOwner[ownerID], itemGUID)
	if len(t.byOwner[ownerID]) == 0 {
		delete(t.byOwner, ownerID)
	}
	return true
}

// OwnerLooks returns a snapshot of all overrides held by a character.
func (t *Table) OwnerLooks(ownerID int64) map[uint32]int32 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	owned := t.byOwner[ownerID]
	if len(owned) == 0 {
		return nil
	}
	out := make(map[uint32]int32, len(owned))
	for guid, entry := range owned {
		out[guid] = entry
	}
	return out
}

// EvictOwner drops every override held by a character from memory.
// Durable rows are untouched. Returns how many were evicted.
func (t *Table) EvictOwner(ownerID int64) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	owned := t.byOwner[ownerID]
	for guid := range owned {
		delete(t.looks, guid)
		delete(t.ownerOf, guid)
	}
	delete(t.byOwner, ownerID)
	return len(owned)
}

// Count returns the total number of cached overrides.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.looks)
}
