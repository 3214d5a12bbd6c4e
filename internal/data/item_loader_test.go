package data

import (
	"testing"

	"github.com/udisondev/transmog/internal/model"
)

func TestLoadItemTemplates(t *testing.T) {
	if err := LoadItemTemplates(); err != nil {
		t.Fatalf("LoadItemTemplates() error = %v", err)
	}

	if len(ItemTable) != len(itemDefs) {
		t.Errorf("ItemTable len = %d, want %d", len(ItemTable), len(itemDefs))
	}

	sword := GetItemTemplate(25)
	if sword == nil {
		t.Fatal("GetItemTemplate(25) = nil")
	}
	if sword.Name != "Worn Shortsword" {
		t.Errorf("Name = %q, want Worn Shortsword", sword.Name)
	}
	if !sword.IsWeapon() {
		t.Error("IsWeapon() = false for Worn Shortsword")
	}

	pole := GetItemTemplate(6256)
	if pole == nil || !pole.IsFishingPole() {
		t.Error("GetItemTemplate(6256) is not a fishing pole")
	}

	bow := GetItemTemplate(2504)
	if bow == nil || !bow.IsRangedWeapon() {
		t.Error("GetItemTemplate(2504) is not a ranged weapon")
	}

	bag := GetItemTemplate(4498)
	if bag == nil || !bag.IsContainer() {
		t.Error("GetItemTemplate(4498) is not a container")
	}

	if got := GetItemTemplate(999999); got != nil {
		t.Errorf("GetItemTemplate(999999) = %v, want nil", got)
	}
}

func TestSetTestItemTemplate(t *testing.T) {
	ClearTestItemTable()
	defer ClearTestItemTable()

	SetTestItemTemplate(&model.ItemTemplate{
		Entry: 777, Name: "Test Blade",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassSword1H,
		InventoryType: model.InvTypeWeapon,
	})

	if got := GetItemTemplate(777); got == nil || got.Name != "Test Blade" {
		t.Errorf("GetItemTemplate(777) = %v, want Test Blade", got)
	}

	DeleteTestItemTemplate(777)
	if got := GetItemTemplate(777); got != nil {
		t.Errorf("GetItemTemplate(777) after delete = %v, want nil", got)
	}
}
