package model

import (
	"fmt"
	"sync"
)

// Inventory — все предметы персонажа: paperdoll, рюкзак и сумки.
// Bags are items too; their contents are reached through AsContainer.
type Inventory struct {
	mu       sync.RWMutex
	ownerID  int64
	equipped [EquipSlotEnd]*Item
	backpack []*Item // main backpack, includes the bag items themselves
}

// NewInventory создаёт пустой инвентарь для персонажа.
func NewInventory(ownerID int64) *Inventory {
	return &Inventory{
		ownerID:  ownerID,
		backpack: make([]*Item, 0, 16),
	}
}

// OwnerID returns the owning character id.
func (inv *Inventory) OwnerID() int64 {
	return inv.ownerID
}

// Equip places an item into a paperdoll slot.
// The currently equipped item, if any, goes back to the backpack.
func (inv *Inventory) Equip(item *Item, slot EquipSlot) error {
	if item == nil {
		return fmt.Errorf("item is nil")
	}
	if !slot.Valid() {
		return fmt.Errorf("invalid equip slot %d", slot)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if old := inv.equipped[slot]; old != nil {
		old.SetSlot(SlotNotEquipped)
		inv.backpack = append(inv.backpack, old)
	}

	inv.removeFromBackpackLocked(item.GUID())
	item.SetSlot(slot)
	inv.equipped[slot] = item
	return nil
}

// Unequip removes the item from a paperdoll slot into the backpack.
// Returns the item or nil if the slot was empty.
func (inv *Inventory) Unequip(slot EquipSlot) *Item {
	if !slot.Valid() {
		return nil
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	item := inv.equipped[slot]
	if item == nil {
		return nil
	}
	inv.equipped[slot] = nil
	item.SetSlot(SlotNotEquipped)
	inv.backpack = append(inv.backpack, item)
	return item
}

// EquippedItem returns the item in a paperdoll slot, or nil.
func (inv *Inventory) EquippedItem(slot EquipSlot) *Item {
	if !slot.Valid() {
		return nil
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.equipped[slot]
}

// EquippedItems returns all paperdoll items.
func (inv *Inventory) EquippedItems() []*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]*Item, 0, 8)
	for _, it := range inv.equipped {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// AddItem puts an item into the backpack.
func (inv *Inventory) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("item is nil")
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.findLocked(item.GUID()) != nil {
		return fmt.Errorf("item %d already in inventory", item.GUID())
	}
	inv.backpack = append(inv.backpack, item)
	return nil
}

// RemoveItem takes an item out of the inventory by guid, searching the
// paperdoll, the backpack and bag contents. Returns nil if absent.
func (inv *Inventory) RemoveItem(guid uint32) *Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for slot, it := range inv.equipped {
		if it != nil && it.GUID() == guid {
			inv.equipped[slot] = nil
			it.SetSlot(SlotNotEquipped)
			return it
		}
	}
	if it := inv.removeFromBackpackLocked(guid); it != nil {
		return it
	}
	for _, bagItem := range inv.backpack {
		if bag, ok := bagItem.AsContainer(); ok {
			if it := bag.Remove(guid); it != nil {
				return it
			}
		}
	}
	return nil
}

// ItemByGUID finds an item anywhere in the inventory. Returns nil if absent.
func (inv *Inventory) ItemByGUID(guid uint32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.findLocked(guid)
}

// AllItems returns every item: paperdoll, backpack and bag contents.
func (inv *Inventory) AllItems() []*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]*Item, 0, len(inv.backpack)+8)
	for _, it := range inv.equipped {
		if it != nil {
			out = append(out, it)
		}
	}
	for _, it := range inv.backpack {
		out = append(out, it)
		if bag, ok := it.AsContainer(); ok {
			out = append(out, bag.Items()...)
		}
	}
	return out
}

// CountByEntry returns the total stack count of items with the given
// template id across the whole inventory.
func (inv *Inventory) CountByEntry(entry int32) int64 {
	var total int64
	for _, it := range inv.AllItems() {
		if it.Entry() == entry {
			total += int64(it.Count())
		}
	}
	return total
}

// RemoveByEntry destroys up to count items with the given template id,
// shrinking stacks as needed. Returns an error if the inventory holds
// fewer than count.
func (inv *Inventory) RemoveByEntry(entry int32, count int32) error {
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	if inv.CountByEntry(entry) < int64(count) {
		return fmt.Errorf("not enough items of entry %d", entry)
	}

	remaining := count
	for _, it := range inv.AllItems() {
		if remaining == 0 {
			break
		}
		if it.Entry() != entry {
			continue
		}
		if it.Count() > remaining {
			_ = it.SetCount(it.Count() - remaining)
			remaining = 0
		} else {
			remaining -= it.Count()
			inv.RemoveItem(it.GUID())
		}
	}
	return nil
}

// removeFromBackpackLocked detaches an item from the backpack slice.
// Caller must hold inv.mu.
func (inv *Inventory) removeFromBackpackLocked(guid uint32) *Item {
	for idx, it := range inv.backpack {
		if it.GUID() == guid {
			inv.backpack = append(inv.backpack[:idx], inv.backpack[idx+1:]...)
			return it
		}
	}
	return nil
}

// findLocked searches paperdoll, backpack and bags. Caller must hold inv.mu.
func (inv *Inventory) findLocked(guid uint32) *Item {
	for _, it := range inv.equipped {
		if it != nil && it.GUID() == guid {
			return it
		}
	}
	for _, it := range inv.backpack {
		if it.GUID() == guid {
			return it
		}
		if bag, ok := it.AsContainer(); ok {
			for _, inner := range bag.Items() {
				if inner.GUID() == guid {
					return inner
				}
			}
		}
	}
	return nil
}
