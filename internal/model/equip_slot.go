package model

// EquipSlot — paperdoll slot index for an equipped item.
// Matches the classic equipment window layout.
type EquipSlot int32

const (
	EquipHead EquipSlot = iota
	EquipNeck
	EquipShoulders
	EquipShirt
	EquipChest
	EquipWaist
	EquipLegs
	EquipFeet
	EquipWrists
	EquipHands
	EquipFinger1
	EquipFinger2
	EquipTrinket1
	EquipTrinket2
	EquipBack
	EquipMainHand
	EquipOffHand
	EquipRanged
	EquipTabard

	// EquipSlotEnd bounds the paperdoll. Any slot >= EquipSlotEnd is invalid.
	EquipSlotEnd
)

// SlotNotEquipped marks an item that is not on the paperdoll.
const SlotNotEquipped EquipSlot = -1

// Valid reports whether s is a real paperdoll slot.
func (s EquipSlot) Valid() bool {
	return s >= 0 && s < EquipSlotEnd
}

// Name returns a human-readable slot name for slots that can carry a
// borrowed look. Jewelry and trinket slots return "" — they never
// participate in appearance swapping.
func (s EquipSlot) Name() string {
	switch s {
	case EquipHead:
		return "Head"
	case EquipShoulders:
		return "Shoulders"
	case EquipShirt:
		return "Shirt"
	case EquipChest:
		return "Chest"
	case EquipWaist:
		return "Waist"
	case EquipLegs:
		return "Legs"
	case EquipFeet:
		return "Feet"
	case EquipWrists:
		return "Wrists"
	case EquipHands:
		return "Hands"
	case EquipBack:
		return "Back"
	case EquipMainHand:
		return "Main hand"
	case EquipOffHand:
		return "Off hand"
	case EquipRanged:
		return "Ranged"
	case EquipTabard:
		return "Tabard"
	default:
		return ""
	}
}
