package transmog

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/udisondev/transmog/internal/model"
)

// Preset — сохранённый набор переопределений внешности: slot → entry
// донора. Имя задаёт игрок.
type Preset struct {
	ID    int32
	Name  string
	Slots map[model.EquipSlot]int32
}

// SlotPair is one decoded "slot entry" pair from a preset blob.
type SlotPair struct {
	Slot  model.EquipSlot
	Entry int32
}

// EncodeSlotData renders preset slots as the durable "slot entry slot
// entry …" blob, slots in ascending order so the output is stable.
func EncodeSlotData(slots map[model.EquipSlot]int32) string {
	ordered := make([]model.EquipSlot, 0, len(slots))
	for slot := range slots {
		ordered = append(ordered, slot)
	}
	slices.Sort(ordered)

	var sb strings.Builder
	for _, slot := range ordered {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d %d", slot, slots[slot])
	}
	return sb.String()
}

// ParseSlotData decodes a preset blob left to right. Parsing stops at the
// first malformed token (everything after it is lost, matching the
// durable format's forgiving reader). Out-of-range slots are dropped
// with a diagnostic.
func ParseSlotData(data string) []SlotPair {
	fields := strings.Fields(data)

	var pairs []SlotPair
	for i := 0; i+1 < len(fields); i += 2 {
		slotVal, err := strconv.ParseInt(fields[i], 10, 32)
		if err != nil {
			return pairs
		}
		entry, err := strconv.ParseInt(fields[i+1], 10, 32)
		if err != nil {
			return pairs
		}

		slot := model.EquipSlot(slotVal)
		if !slot.Valid() {
			slog.Warn("preset slot out of range, dropping", "slot", slotVal, "entry", entry)
			continue
		}
		pairs = append(pairs, SlotPair{Slot: slot, Entry: int32(entry)})
	}
	return pairs
}

// Registry — in-memory preset store, per character.
type Registry struct {
	mu      sync.RWMutex
	byOwner map[int64]map[int32]*Preset
}

// NewRegistry creates an empty preset registry.
func NewRegistry() *Registry {
	return &Registry{
		byOwner: make(map[int64]map[int32]*Preset, 16),
	}
}

// Put stores a preset, replacing any with the same id.
func (r *Registry) Put(ownerID int64, preset *Preset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[ownerID]
	if owned == nil {
		owned = make(map[int32]*Preset, 4)
		r.byOwner[ownerID] = owned
	}
	owned[preset.ID] = preset
}

// Get returns a preset by id, or nil.
func (r *Registry) Get(ownerID int64, presetID int32) *Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byOwner[ownerID][presetID]
}

// Delete drops a preset from memory. Returns false if it was absent.
func (r *Registry) Delete(ownerID int64, presetID int32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[ownerID]
	if _, ok := owned[presetID]; !ok {
		return false
	}
	delete(owned, presetID)
	if len(owned) == 0 {
		delete(r.byOwner, ownerID)
	}
	return true
}

// List returns a character's presets ordered by id.
func (r *Registry) List(ownerID int64) []*Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.byOwner[ownerID]
	if len(owned) == 0 {
		return nil
	}
	out := make([]*Preset, 0, len(owned))
	for _, p := range owned {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *Preset) int { return int(a.ID - b.ID) })
	return out
}

// Count returns how many presets a character holds.
func (r *Registry) Count(ownerID int64) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byOwner[ownerID])
}

// NextFreeID returns the smallest unused preset id for a character.
func (r *Registry) NextFreeID(ownerID int64) int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.byOwner[ownerID]
	var id int32
	for {
		if _, taken := owned[id]; !taken {
			return id
		}
		id++
	}
}

// EvictOwner drops every preset a character holds from memory.
func (r *Registry) EvictOwner(ownerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byOwner, ownerID)
}
