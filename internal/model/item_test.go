package model

import (
	"testing"
)

func swordTemplate() *ItemTemplate {
	return &ItemTemplate{
		Entry:         25,
		Name:          "Worn Shortsword",
		Class:         ItemClassWeapon,
		SubClass:      WeaponSubClassSword1H,
		InventoryType: InvTypeWeapon,
		DisplayID:     1542,
		SellPrice:     7,
	}
}

func bagTemplate() *ItemTemplate {
	return &ItemTemplate{
		Entry:          4498,
		Name:           "Brown Leather Satchel",
		Class:          ItemClassContainer,
		InventoryType:  InvTypeBag,
		ContainerSlots: 8,
	}
}

func TestNewItem(t *testing.T) {
	tests := []struct {
		name     string
		guid     uint32
		ownerID  int64
		count    int32
		template *ItemTemplate
		wantErr  bool
	}{
		{
			name:     "valid item",
			guid:     1,
			ownerID:  100,
			count:    1,
			template: swordTemplate(),
			wantErr:  false,
		},
		{
			name:     "guid = 0 (invalid)",
			guid:     0,
			ownerID:  100,
			count:    1,
			template: swordTemplate(),
			wantErr:  true,
		},
		{
			name:     "nil template (invalid)",
			guid:     2,
			ownerID:  100,
			count:    1,
			template: nil,
			wantErr:  true,
		},
		{
			name:     "count = 0 (invalid)",
			guid:     3,
			ownerID:  100,
			count:    0,
			template: swordTemplate(),
			wantErr:  true,
		},
		{
			name:     "count negative (invalid)",
			guid:     4,
			ownerID:  100,
			count:    -5,
			template: swordTemplate(),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(tt.guid, tt.ownerID, tt.count, tt.template)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewItem() error = nil, wantErr = true")
				}
				return
			}

			if err != nil {
				t.Errorf("NewItem() unexpected error = %v", err)
				return
			}

			if item == nil {
				t.Fatal("NewItem() returned nil")
			}

			// Проверяем поля
			if item.GUID() != tt.guid {
				t.Errorf("GUID() = %d, want %d", item.GUID(), tt.guid)
			}
			if item.Entry() != tt.template.Entry {
				t.Errorf("Entry() = %d, want %d", item.Entry(), tt.template.Entry)
			}
			if item.OwnerID() != tt.ownerID {
				t.Errorf("OwnerID() = %d, want %d", item.OwnerID(), tt.ownerID)
			}
			if item.Count() != tt.count {
				t.Errorf("Count() = %d, want %d", item.Count(), tt.count)
			}
			if item.Slot() != SlotNotEquipped {
				t.Errorf("Slot() = %d, want SlotNotEquipped", item.Slot())
			}
			if item.IsEquipped() {
				t.Error("IsEquipped() = true for a fresh item")
			}
		})
	}
}

func TestItem_BindOnPickup(t *testing.T) {
	tmpl := swordTemplate()
	tmpl.Bonding = BindOnPickup

	item, err := NewItem(10, 100, 1, tmpl)
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	if !item.IsBound() {
		t.Error("IsBound() = false, want true for BindOnPickup item")
	}
}

func TestItem_SetBound(t *testing.T) {
	tmpl := swordTemplate()
	tmpl.Bonding = BindOnEquip

	item, err := NewItem(11, 100, 1, tmpl)
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	if item.IsBound() {
		t.Error("IsBound() = true for unworn BoE item")
	}

	item.SetBound(true)
	if !item.IsBound() {
		t.Error("IsBound() = false after SetBound(true)")
	}
}

func TestItem_SetCount(t *testing.T) {
	item, err := NewItem(12, 100, 5, swordTemplate())
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}

	if err := item.SetCount(3); err != nil {
		t.Errorf("SetCount(3) error = %v", err)
	}
	if item.Count() != 3 {
		t.Errorf("Count() = %d, want 3", item.Count())
	}

	if err := item.SetCount(0); err == nil {
		t.Error("SetCount(0) error = nil, want error")
	}
	if item.Count() != 3 {
		t.Errorf("Count() = %d after failed SetCount, want 3", item.Count())
	}
}

func TestItem_AsContainer(t *testing.T) {
	sword, err := NewItem(20, 100, 1, swordTemplate())
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	if _, ok := sword.AsContainer(); ok {
		t.Error("AsContainer() ok = true for a sword")
	}

	bag, err := NewItem(21, 100, 1, bagTemplate())
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	c, ok := bag.AsContainer()
	if !ok {
		t.Fatal("AsContainer() ok = false for a bag")
	}
	if c.Size() != 8 {
		t.Errorf("Size() = %d, want 8", c.Size())
	}
}

func TestContainer_AddRemove(t *testing.T) {
	bag, err := NewItem(30, 100, 1, bagTemplate())
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	c, _ := bag.AsContainer()

	inner, err := NewItem(31, 100, 1, swordTemplate())
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}

	if err := c.Add(inner); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(c.Items()) != 1 {
		t.Fatalf("Items() len = %d, want 1", len(c.Items()))
	}

	got := c.Remove(31)
	if got == nil || got.GUID() != 31 {
		t.Errorf("Remove(31) = %v, want item 31", got)
	}
	if len(c.Items()) != 0 {
		t.Errorf("Items() len = %d after remove, want 0", len(c.Items()))
	}

	// Повторное удаление — предмета уже нет
	if got := c.Remove(31); got != nil {
		t.Errorf("Remove(31) second time = %v, want nil", got)
	}
}

func TestContainer_Full(t *testing.T) {
	tmpl := bagTemplate()
	tmpl.ContainerSlots = 1

	bag, err := NewItem(40, 100, 1, tmpl)
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	c, _ := bag.AsContainer()

	first, _ := NewItem(41, 100, 1, swordTemplate())
	if err := c.Add(first); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	second, _ := NewItem(42, 100, 1, swordTemplate())
	if err := c.Add(second); err == nil {
		t.Error("Add() into full bag error = nil, want error")
	}
}
