package model

import (
	"fmt"
	"sync"
)

// Item — конкретный экземпляр предмета. Может лежать в рюкзаке, в сумке
// или быть надетым на paperdoll. Identity (guid) stable for the item's
// lifetime and independent of its template or displayed look.
type Item struct {
	guid    uint32 // Unique instance id (stable, never reused)
	entry   int32  // Template id
	ownerID int64  // Character id владельца
	slot    EquipSlot
	count   int32
	bound   bool

	template  *ItemTemplate
	container *Container // non-nil only for bags

	mu sync.RWMutex
}

// NewItem создаёт новый предмет с валидацией.
func NewItem(guid uint32, ownerID int64, count int32, template *ItemTemplate) (*Item, error) {
	if guid == 0 {
		return nil, fmt.Errorf("item guid must be non-zero")
	}
	if template == nil {
		return nil, fmt.Errorf("item template is nil")
	}
	if count <= 0 {
		return nil, fmt.Errorf("item count must be positive, got %d", count)
	}

	it := &Item{
		guid:     guid,
		entry:    template.Entry,
		ownerID:  ownerID,
		slot:     SlotNotEquipped,
		count:    count,
		bound:    template.Bonding == BindOnPickup,
		template: template,
	}
	if template.IsContainer() {
		it.container = newContainer(template.ContainerSlots)
	}
	return it, nil
}

// GUID returns the unique instance id.
func (i *Item) GUID() uint32 {
	return i.guid
}

// Entry returns the template id.
func (i *Item) Entry() int32 {
	return i.entry
}

// OwnerID returns the owning character id.
func (i *Item) OwnerID() int64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.ownerID
}

// SetOwnerID reassigns the item to another character.
func (i *Item) SetOwnerID(ownerID int64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ownerID = ownerID
}

// Slot returns the paperdoll slot, or SlotNotEquipped.
func (i *Item) Slot() EquipSlot {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slot
}

// SetSlot places the item on (or off) the paperdoll.
func (i *Item) SetSlot(slot EquipSlot) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.slot = slot
}

// IsEquipped returns true if the item occupies a paperdoll slot.
func (i *Item) IsEquipped() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slot != SlotNotEquipped
}

// Count returns the stack count.
func (i *Item) Count() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.count
}

// SetCount изменяет stack count (должен быть > 0; remove the item instead
// of zeroing it).
func (i *Item) SetCount(count int32) error {
	if count <= 0 {
		return fmt.Errorf("item count must be positive, got %d", count)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.count = count
	return nil
}

// IsBound reports whether the item is soulbound.
func (i *Item) IsBound() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.bound
}

// SetBound marks the item soulbound. Binding is one-way.
func (i *Item) SetBound(bound bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.bound = bound
}

// Template returns the static definition.
func (i *Item) Template() *ItemTemplate {
	return i.template
}

// Name returns the template name.
func (i *Item) Name() string {
	return i.template.Name
}

// AsContainer returns the container view of the item if it is a bag.
// Capability check: generic items return (nil, false).
func (i *Item) AsContainer() (*Container, bool) {
	if i.container == nil {
		return nil, false
	}
	return i.container, true
}

// Container — содержимое сумки.
type Container struct {
	mu    sync.RWMutex
	size  int32
	items []*Item
}

func newContainer(size int32) *Container {
	return &Container{size: size, items: make([]*Item, 0, size)}
}

// Size returns the slot capacity of the bag.
func (c *Container) Size() int32 {
	return c.size
}

// Add places an item inside the bag.
func (c *Container) Add(item *Item) error {
	if item == nil {
		return fmt.Errorf("item is nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if int32(len(c.items)) >= c.size {
		return fmt.Errorf("container is full (%d slots)", c.size)
	}
	c.items = append(c.items, item)
	return nil
}

// Remove takes an item out of the bag by guid. Returns nil if absent.
func (c *Container) Remove(guid uint32) *Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx, it := range c.items {
		if it.GUID() == guid {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return it
		}
	}
	return nil
}

// Items returns a snapshot of the bag contents.
func (c *Container) Items() []*Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}
