package transmog

import "github.com/udisondev/transmog/internal/model"

// excludedInventoryType reports whether an inventory type can never take
// part in appearance copying, on either side.
func excludedInventoryType(t model.InventoryType) bool {
	switch t {
	case model.InvTypeBag,
		model.InvTypeRelic,
		model.InvTypeFinger,
		model.InvTypeTrinket,
		model.InvTypeAmmo,
		model.InvTypeQuiver:
		return true
	}
	return false
}

// genericWeaponType reports whether an inventory type belongs to the
// interchangeable melee weapon family.
func genericWeaponType(t model.InventoryType) bool {
	switch t {
	case model.InvTypeWeapon,
		model.InvTypeTwoHandWeapon,
		model.InvTypeWeaponMainHand,
		model.InvTypeWeaponOffHand:
		return true
	}
	return false
}

// chestLike reports whether an inventory type belongs to the chest/robe
// family.
func chestLike(t model.InventoryType) bool {
	return t == model.InvTypeChest || t == model.InvTypeRobe
}

// SuitableForCopy reports whether the player can use this template in an
// appearance copy at all, on either side.
func SuitableForCopy(player *model.Player, tmpl *model.ItemTemplate) bool {
	if player == nil || tmpl == nil {
		return false
	}

	if tmpl.Class != model.ItemClassArmor && tmpl.Class != model.ItemClassWeapon {
		return false
	}

	// Fishing poles never participate
	if tmpl.IsFishingPole() {
		return false
	}

	if tmpl.RequiredSkill != 0 {
		value := player.SkillValue(tmpl.RequiredSkill)
		if value == 0 {
			return false
		}
		if value < tmpl.RequiredSkillRank {
			return false
		}
	}

	if tmpl.RequiredSpell != 0 && !player.HasSpell(tmpl.RequiredSpell) {
		return false
	}

	if player.Level() < tmpl.RequiredLevel {
		return false
	}

	return true
}

// CanCopyLook reports whether the donor's appearance may be copied onto
// the target. The rule order matters: identity and display checks come
// before class and suitability, mismatched inventory types are allowed
// only within the generic weapon family or the chest/robe family.
func CanCopyLook(player *model.Player, target, donor *model.ItemTemplate) bool {
	if target == nil || donor == nil {
		return false
	}

	// Same item
	if donor.Entry == target.Entry {
		return false
	}

	// Same item model
	if donor.DisplayID == target.DisplayID {
		return false
	}

	// Different item type
	if donor.Class != target.Class {
		return false
	}

	if excludedInventoryType(donor.InventoryType) || excludedInventoryType(target.InventoryType) {
		return false
	}

	if !SuitableForCopy(player, target) || !SuitableForCopy(player, donor) {
		return false
	}

	// Ranged and melee never mix
	if donor.IsRangedWeapon() != target.IsRangedWeapon() {
		return false
	}

	if donor.InventoryType != target.InventoryType {
		if donor.Class == model.ItemClassWeapon &&
			!(target.IsRangedWeapon() ||
				genericWeaponType(target.InventoryType) && genericWeaponType(donor.InventoryType)) {
			return false
		}

		if donor.Class == model.ItemClassArmor &&
			!(chestLike(donor.InventoryType) && chestLike(target.InventoryType)) {
			return false
		}
	}

	return true
}
