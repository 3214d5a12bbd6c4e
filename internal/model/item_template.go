package model

// ItemTemplate — read-only snapshot of an item's static definition.
// One template describes every instance sharing the same entry id,
// including the display asset reference and the proficiency/level gates
// required to use it. The core never mutates templates.
type ItemTemplate struct {
	Entry    int32     // Template id (unique in the item catalog)
	Name     string    // Item name (e.g., "Worn Shortsword")
	Class    ItemClass
	SubClass int32     // Weapon subclass (see WeaponSubClass*); 0 for non-weapons

	InventoryType InventoryType // Which equip slot family the item occupies
	DisplayID     int32         // Display asset id (what the player sees)
	SellPrice     int64         // Vendor sell price in copper
	Bonding       Bonding

	// Usage gating
	RequiredSkill     int32 // Proficiency id, 0 = none
	RequiredSkillRank int32 // Minimum proficiency value
	RequiredSpell     int32 // Ability id the player must have learned, 0 = none
	RequiredLevel     int32

	// Container
	ContainerSlots int32 // >0 for bags
}

// ItemClass определяет категорию предмета.
type ItemClass int32

const (
	ItemClassConsumable ItemClass = iota
	ItemClassContainer
	ItemClassWeapon
	ItemClassArmor
	ItemClassReagent
	ItemClassProjectile
	ItemClassQuiver
	ItemClassQuest
	ItemClassMisc
)

// String returns human-readable item class name.
func (c ItemClass) String() string {
	switch c {
	case ItemClassConsumable:
		return "Consumable"
	case ItemClassContainer:
		return "Container"
	case ItemClassWeapon:
		return "Weapon"
	case ItemClassArmor:
		return "Armor"
	case ItemClassReagent:
		return "Reagent"
	case ItemClassProjectile:
		return "Projectile"
	case ItemClassQuiver:
		return "Quiver"
	case ItemClassQuest:
		return "Quest"
	case ItemClassMisc:
		return "Misc"
	default:
		return "Unknown"
	}
}

// Weapon subclasses relevant to look compatibility.
const (
	WeaponSubClassAxe1H int32 = iota
	WeaponSubClassAxe2H
	WeaponSubClassBow
	WeaponSubClassGun
	WeaponSubClassMace1H
	WeaponSubClassMace2H
	WeaponSubClassPolearm
	WeaponSubClassSword1H
	WeaponSubClassSword2H
	WeaponSubClassStaff
	WeaponSubClassFist
	WeaponSubClassDagger
	WeaponSubClassThrown
	WeaponSubClassCrossbow
	WeaponSubClassWand
	WeaponSubClassFishingPole
)

// InventoryType определяет слот экипировки, который занимает предмет.
type InventoryType int32

const (
	InvTypeNonEquip InventoryType = iota
	InvTypeHead
	InvTypeNeck
	InvTypeShoulders
	InvTypeBody // Shirt
	InvTypeChest
	InvTypeWaist
	InvTypeLegs
	InvTypeFeet
	InvTypeWrists
	InvTypeHands
	InvTypeFinger
	InvTypeTrinket
	InvTypeWeapon // One-hand, either hand
	InvTypeShield
	InvTypeRanged
	InvTypeCloak
	InvTypeTwoHandWeapon
	InvTypeBag
	InvTypeTabard
	InvTypeRobe
	InvTypeWeaponMainHand
	InvTypeWeaponOffHand
	InvTypeHoldable
	InvTypeAmmo
	InvTypeQuiver
	InvTypeRelic
)

// Bonding — item binding policy.
type Bonding int32

const (
	BindNone Bonding = iota
	BindOnPickup
	BindOnEquip
	BindOnUse
)

// IsWeapon returns true if this template is a weapon.
func (t *ItemTemplate) IsWeapon() bool {
	return t.Class == ItemClassWeapon
}

// IsArmor returns true if this template is armor.
func (t *ItemTemplate) IsArmor() bool {
	return t.Class == ItemClassArmor
}

// IsRangedWeapon reports whether the template is a bow, gun or crossbow.
// Thrown weapons and wands are not ranged for look purposes.
func (t *ItemTemplate) IsRangedWeapon() bool {
	return t.Class == ItemClassWeapon &&
		(t.SubClass == WeaponSubClassBow ||
			t.SubClass == WeaponSubClassGun ||
			t.SubClass == WeaponSubClassCrossbow)
}

// IsFishingPole reports whether the template is a fishing pole.
func (t *ItemTemplate) IsFishingPole() bool {
	return t.Class == ItemClassWeapon && t.SubClass == WeaponSubClassFishingPole
}

// IsContainer returns true if this template is a bag.
func (t *ItemTemplate) IsContainer() bool {
	return t.Class == ItemClassContainer && t.ContainerSlots > 0
}
