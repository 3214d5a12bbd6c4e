package data

import "github.com/udisondev/transmog/internal/model"

// itemDefs — статический каталог item templates (Go-литералы, generated).
// Подмножество, достаточное для работы сервера: по одному представителю
// каждого семейства слотов плюс токены и сумки.
var itemDefs = []model.ItemTemplate{
	// Weapons
	{
		Entry: 25, Name: "Worn Shortsword",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassSword1H,
		InventoryType: model.InvTypeWeapon, DisplayID: 1542, SellPrice: 7,
	},
	{
		Entry: 727, Name: "Notched Shortsword",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassSword1H,
		InventoryType: model.InvTypeWeapon, DisplayID: 2204, SellPrice: 58,
	},
	{
		Entry: 2092, Name: "Worn Dagger",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassDagger,
		InventoryType: model.InvTypeWeapon, DisplayID: 6442, SellPrice: 5,
	},
	{
		Entry: 2361, Name: "Battleworn Hammer",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassMace2H,
		InventoryType: model.InvTypeTwoHandWeapon, DisplayID: 8690, SellPrice: 9,
	},
	{
		Entry: 1905, Name: "Stonecutter Claymore",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassSword2H,
		InventoryType: model.InvTypeTwoHandWeapon, DisplayID: 1607, SellPrice: 2218,
		Bonding: model.BindOnEquip, RequiredLevel: 21,
	},
	{
		Entry: 2504, Name: "Worn Shortbow",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassBow,
		InventoryType: model.InvTypeRanged, DisplayID: 8106, SellPrice: 7,
		RequiredSkill: 45, RequiredSkillRank: 1,
	},
	{
		Entry: 2508, Name: "Old Blunderbuss",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassGun,
		InventoryType: model.InvTypeRanged, DisplayID: 6606, SellPrice: 7,
		RequiredSkill: 46, RequiredSkillRank: 1,
	},
	{
		Entry: 15807, Name: "Light Crossbow",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassCrossbow,
		InventoryType: model.InvTypeRanged, DisplayID: 22618, SellPrice: 55,
		RequiredSpell: 5011,
	},
	{
		Entry: 6256, Name: "Fishing Pole",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassFishingPole,
		InventoryType: model.InvTypeTwoHandWeapon, DisplayID: 4595, SellPrice: 1,
		RequiredSkill: 356, RequiredSkillRank: 1,
	},
	{
		Entry: 19019, Name: "Thunderfury, Blessed Blade of the Windseeker",
		Class: model.ItemClassWeapon, SubClass: model.WeaponSubClassSword1H,
		InventoryType: model.InvTypeWeapon, DisplayID: 30606, SellPrice: 255355,
		Bonding: model.BindOnPickup, RequiredLevel: 60,
	},

	// Armor
	{
		Entry: 6140, Name: "Apprentice's Robe",
		Class: model.ItemClassArmor,
		InventoryType: model.InvTypeRobe, DisplayID: 12647, SellPrice: 1,
	},
	{
		Entry: 56, Name: "Blackened Defias Armor",
		Class: model.ItemClassArmor,
		InventoryType: model.InvTypeChest, DisplayID: 9474, SellPrice: 136,
		Bonding: model.BindOnEquip,
	},
	{
		Entry: 2362, Name: "Worn Wooden Shield",
		Class: model.ItemClassArmor,
		InventoryType: model.InvTypeShield, DisplayID: 18730, SellPrice: 1,
	},
	{
		Entry: 4696, Name: "Regal Cloak",
		Class: model.ItemClassArmor,
		InventoryType: model.InvTypeCloak, DisplayID: 22772, SellPrice: 337,
	},
	{
		Entry: 862, Name: "Runed Copper Ring",
		Class: model.ItemClassArmor,
		InventoryType: model.InvTypeFinger, DisplayID: 12025, SellPrice: 82,
	},
	{
		Entry: 13503, Name: "Alchemist's Stone",
		Class: model.ItemClassArmor,
		InventoryType: model.InvTypeTrinket, DisplayID: 31722, SellPrice: 12500,
		Bonding: model.BindOnPickup,
	},
	{
		Entry: 45574, Name: "Darnassus Tabard",
		Class: model.ItemClassArmor,
		InventoryType: model.InvTypeTabard, DisplayID: 63178, SellPrice: 2500,
		Bonding: model.BindOnPickup,
	},

	// Containers and quivers
	{
		Entry: 4498, Name: "Brown Leather Satchel",
		Class: model.ItemClassContainer,
		InventoryType: model.InvTypeBag, DisplayID: 7508, SellPrice: 25,
		ContainerSlots: 8,
	},
	{
		Entry: 2101, Name: "Light Quiver",
		Class: model.ItemClassQuiver,
		InventoryType: model.InvTypeQuiver, DisplayID: 21328, SellPrice: 1,
		ContainerSlots: 6,
	},

	// Currency tokens
	{
		Entry: 49426, Name: "Emblem of Frost",
		Class: model.ItemClassMisc,
		InventoryType: model.InvTypeNonEquip, DisplayID: 66378,
		Bonding: model.BindOnPickup,
	},
}
