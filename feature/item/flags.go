package item

import (
	"hogger/core/codec"

	"gopkg.in/yaml.v3"
)

// BagFamily is a bag restriction bit.
type BagFamily int

const (
	Arrows BagFamily = 1 << iota
	Bullets
	SoulShards
	Leatherworking
	Inscription
	Herbs
	Enchanting
	Engineering
	Keys
	Gems
	Mining
	SoulboundEquipment
	VanityPets
	CurrencyTokens
	QuestItems
)

var bagFamilyDomain = codec.NewDomain("BagFamily", map[BagFamily]string{
	Arrows: "Arrows", Bullets: "Bullets", SoulShards: "SoulShards", Leatherworking: "Leatherworking",
	Inscription: "Inscription", Herbs: "Herbs", Enchanting: "Enchanting", Engineering: "Engineering",
	Keys: "Keys", Gems: "Gems", Mining: "Mining", SoulboundEquipment: "SoulboundEquipment",
	VanityPets: "VanityPets", CurrencyTokens: "CurrencyTokens", QuestItems: "QuestItems",
})

func (BagFamily) Domain() *codec.Domain[BagFamily]    { return bagFamilyDomain }
func (b BagFamily) String() string                    { return bagFamilyDomain.Format(b) }
func (b *BagFamily) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, b) }
func (b BagFamily) MarshalYAML() (any, error)         { return codec.MarshalSymbol(b) }

// Flag is an item_template.Flags bit.
type Flag int

const (
	NoPickup Flag = 1 << iota
	Conjured
	HasLoot
	IsHeroic
	Deprecated
	NoUserDestroy
	PlayerCast
	NoEquipCooldown
	MultiLootQuest
	IsWrapper
	UsesResources
	MultiDrop
	ItemPurchaseRecord
	Petition
	HasText
	NoDisenchant
	RealDuration
	NoCreator
	IsProspectable
	UniqueEquippable
	IgnoreForAuras
	IgnoreDefaultArenaRestrictions
	NoDurabilityLoss
	UseWhenShapeshifted
	HasQuestGlow
	HideUnusableRecipe
	NotUsableInArena
	IsBoundToAccount
	NoReagentCost
	IsMillable
	ReportToGuildChat
	NoProgressiveLoot
)

var flagDomain = codec.NewDomain("Flag", map[Flag]string{
	NoPickup: "NoPickup", Conjured: "Conjured", HasLoot: "HasLoot", IsHeroic: "IsHeroic",
	Deprecated: "Deprecated", NoUserDestroy: "NoUserDestroy", PlayerCast: "PlayerCast",
	NoEquipCooldown: "NoEquipCooldown", MultiLootQuest: "MultiLootQuest", IsWrapper: "IsWrapper",
	UsesResources: "UsesResources", MultiDrop: "MultiDrop", ItemPurchaseRecord: "ItemPurchaseRecord",
	Petition: "Petition", HasText: "HasText", NoDisenchant: "NoDisenchant", RealDuration: "RealDuration",
	NoCreator: "NoCreator", IsProspectable: "IsProspectable", UniqueEquippable: "UniqueEquippable",
	IgnoreForAuras: "IgnoreForAuras", IgnoreDefaultArenaRestrictions: "IgnoreDefaultArenaRestrictions",
	NoDurabilityLoss: "NoDurabilityLoss", UseWhenShapeshifted: "UseWhenShapeshifted",
	HasQuestGlow: "HasQuestGlow", HideUnusableRecipe: "HideUnusableRecipe",
	NotUsableInArena: "NotUsableInArena", IsBoundToAccount: "IsBoundToAccount",
	NoReagentCost: "NoReagentCost", IsMillable: "IsMillable", ReportToGuildChat: "ReportToGuildChat",
	NoProgressiveLoot: "NoProgressiveLoot",
})

func (Flag) Domain() *codec.Domain[Flag]         { return flagDomain }
func (f Flag) String() string                    { return flagDomain.Format(f) }
func (f *Flag) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, f) }
func (f Flag) MarshalYAML() (any, error)         { return codec.MarshalSymbol(f) }

// FlagExtra is an item_template.FlagsExtra bit.
type FlagExtra int

const (
	HordeOnly          FlagExtra = 1
	AllianceOnly       FlagExtra = 2
	ExtendedVendorCost FlagExtra = 4
	NeedRollDisabled   FlagExtra = 16
)

var flagExtraDomain = codec.NewDomain("FlagExtra", map[FlagExtra]string{
	HordeOnly: "HordeOnly", AllianceOnly: "AllianceOnly",
	ExtendedVendorCost: "ExtendedVendorCost", NeedRollDisabled: "NeedRollDisabled",
})

func (FlagExtra) Domain() *codec.Domain[FlagExtra]    { return flagExtraDomain }
func (f FlagExtra) String() string                    { return flagExtraDomain.Format(f) }
func (f *FlagExtra) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, f) }
func (f FlagExtra) MarshalYAML() (any, error)         { return codec.MarshalSymbol(f) }

// FlagCustom is an item_template.flagsCustom bit.
type FlagCustom int

const (
	GlobalDuration    FlagCustom = 1
	IgnoreQuestStatus FlagCustom = 2
	FollowLootRules   FlagCustom = 4
)

var flagCustomDomain = codec.NewDomain("FlagCustom", map[FlagCustom]string{
	GlobalDuration: "GlobalDuration", IgnoreQuestStatus: "IgnoreQuestStatus", FollowLootRules: "FollowLootRules",
})

func (FlagCustom) Domain() *codec.Domain[FlagCustom]   { return flagCustomDomain }
func (f FlagCustom) String() string                    { return flagCustomDomain.Format(f) }
func (f *FlagCustom) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, f) }
func (f FlagCustom) MarshalYAML() (any, error)         { return codec.MarshalSymbol(f) }

// PlayerClass is an AllowableClass bit.
type PlayerClass int

const (
	Warrior PlayerClass = 1 << iota
	Paladin
	Hunter
	Rogue
	Priest
	DeathKnight
	Shaman
	Mage
	Warlock
	unusedClass
	Druid
)

var playerClassDomain = codec.NewDomain("PlayerClass", map[PlayerClass]string{
	Warrior: "Warrior", Paladin: "Paladin", Hunter: "Hunter", Rogue: "Rogue", Priest: "Priest",
	DeathKnight: "DeathKnight", Shaman: "Shaman", Mage: "Mage", Warlock: "Warlock", Druid: "Druid",
})

func (PlayerClass) Domain() *codec.Domain[PlayerClass]  { return playerClassDomain }
func (p PlayerClass) String() string                    { return playerClassDomain.Format(p) }
func (p *PlayerClass) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, p) }
func (p PlayerClass) MarshalYAML() (any, error)         { return codec.MarshalSymbol(p) }

// Race is an AllowableRace bit.
type Race int

const (
	Human Race = 1 << iota
	Orc
	Dwarf
	NightElf
	Undead
	Tauren
	Gnome
	Troll
	Goblin
	BloodElf
	Draenei
)

var raceDomain = codec.NewDomain("Race", map[Race]string{
	Human: "Human", Orc: "Orc", Dwarf: "Dwarf", NightElf: "NightElf", Undead: "Undead",
	Tauren: "Tauren", Gnome: "Gnome", Troll: "Troll", Goblin: "Goblin", BloodElf: "BloodElf",
	Draenei: "Draenei",
})

func (Race) Domain() *codec.Domain[Race]         { return raceDomain }
func (r Race) String() string                    { return raceDomain.Format(r) }
func (r *Race) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, r) }
func (r Race) MarshalYAML() (any, error)         { return codec.MarshalSymbol(r) }
