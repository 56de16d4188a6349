package item

import (
	"hogger/core/codec"

	"gopkg.in/yaml.v3"
)

// Quality is the item rarity.
type Quality int

const (
	Poor Quality = iota
	Common
	Uncommon
	Rare
	Epic
	Legendary
	Artifact
	BoA
)

var qualityDomain = codec.NewDomain("Quality", map[Quality]string{
	Poor: "Poor", Common: "Common", Uncommon: "Uncommon", Rare: "Rare",
	Epic: "Epic", Legendary: "Legendary", Artifact: "Artifact", BoA: "BoA",
})

func (Quality) Domain() *codec.Domain[Quality]      { return qualityDomain }
func (q Quality) String() string                    { return qualityDomain.Format(q) }
func (q *Quality) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, q) }
func (q Quality) MarshalYAML() (any, error)         { return codec.MarshalSymbol(q) }

// Class is the item class.
type Class int

const (
	Consumable        Class = 0
	Container         Class = 1
	Weapon            Class = 2
	Gem               Class = 3
	Armor             Class = 4
	Reagent           Class = 5
	Projectile        Class = 6
	TradeGoods        Class = 7
	GenericObsolete   Class = 8
	MoneyObsolete     Class = 9
	Quiver            Class = 11
	Quest             Class = 12
	Key               Class = 13
	PermanentObsolete Class = 14
	Misc              Class = 15
	Glyph             Class = 16
)

var classDomain = codec.NewDomain("Class", map[Class]string{
	Consumable: "Consumable", Container: "Container", Weapon: "Weapon", Gem: "Gem",
	Armor: "Armor", Reagent: "Reagent", Projectile: "Projectile", TradeGoods: "TradeGoods",
	GenericObsolete: "Generic_OBSOLETE", MoneyObsolete: "Money_OBSOLETE", Quiver: "Quiver",
	Quest: "Quest", Key: "Key", PermanentObsolete: "Permanent_OBSOLETE", Misc: "Misc", Glyph: "Glyph",
})

func (Class) Domain() *codec.Domain[Class]        { return classDomain }
func (c Class) String() string                    { return classDomain.Format(c) }
func (c *Class) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, c) }
func (c Class) MarshalYAML() (any, error)         { return codec.MarshalSymbol(c) }

// InventoryType is the equipment slot.
type InventoryType int

const (
	NoEquip InventoryType = iota
	Head
	Neck
	Shoulders
	Body
	Chest
	Waist
	Legs
	Feet
	Wrists
	Hands
	Finger
	Trinket
	WeaponOneHanded
	Shield
	Ranged
	Cloak
	WeaponTwoHanded
	Bag
	Tabard
	Robe
	MainHand
	OffHand
	Holdable
	Ammo
	Thrown
	RangedRight
	QuiverSlot
	Relic
)

var inventoryTypeDomain = codec.NewDomain("InventoryType", map[InventoryType]string{
	NoEquip: "NoEquip", Head: "Head", Neck: "Neck", Shoulders: "Shoulders", Body: "Body",
	Chest: "Chest", Waist: "Waist", Legs: "Legs", Feet: "Feet", Wrists: "Wrists",
	Hands: "Hands", Finger: "Finger", Trinket: "Trinket", WeaponOneHanded: "WeaponOneHanded",
	Shield: "Shield", Ranged: "Ranged", Cloak: "Cloak", WeaponTwoHanded: "WeaponTwoHanded",
	Bag: "Bag", Tabard: "Tabard", Robe: "Robe", MainHand: "MainHand", OffHand: "OffHand",
	Holdable: "Holdable", Ammo: "Ammo", Thrown: "Thrown", RangedRight: "RangedRight",
	QuiverSlot: "Quiver", Relic: "Relic",
})

func (InventoryType) Domain() *codec.Domain[InventoryType] { return inventoryTypeDomain }
func (t InventoryType) String() string                     { return inventoryTypeDomain.Format(t) }
func (t *InventoryType) UnmarshalYAML(n *yaml.Node) error  { return codec.UnmarshalSymbol(n, t) }
func (t InventoryType) MarshalYAML() (any, error)          { return codec.MarshalSymbol(t) }

// Material sets the sound an item makes when moved.
type Material int

const (
	Consumables Material = iota - 1
	UndefinedMaterial
	Metal
	Wood
	Liquid
	Jewelry
	Chain
	Plate
	Cloth
	Leather
)

var materialDomain = codec.NewDomain("Material", map[Material]string{
	Consumables: "Consumables", UndefinedMaterial: "Undefined", Metal: "Metal", Wood: "Wood",
	Liquid: "Liquid", Jewelry: "Jewelry", Chain: "Chain", Plate: "Plate", Cloth: "Cloth", Leather: "Leather",
})

func (Material) Domain() *codec.Domain[Material]     { return materialDomain }
func (m Material) String() string                    { return materialDomain.Format(m) }
func (m *Material) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, m) }
func (m Material) MarshalYAML() (any, error)         { return codec.MarshalSymbol(m) }

// Binding is when an item becomes soulbound.
type Binding int

const (
	Never Binding = iota
	OnPickup
	OnEquip
	OnUse
	QuestItem
	QuestItem1
)

var bindingDomain = codec.NewDomain("Binding", map[Binding]string{
	Never: "Never", OnPickup: "OnPickup", OnEquip: "OnEquip", OnUse: "OnUse",
	QuestItem: "QuestItem", QuestItem1: "QuestItem1",
})

func (Binding) Domain() *codec.Domain[Binding]      { return bindingDomain }
func (b Binding) String() string                    { return bindingDomain.Format(b) }
func (b *Binding) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, b) }
func (b Binding) MarshalYAML() (any, error)         { return codec.MarshalSymbol(b) }

// FoodType is the pet food category.
type FoodType int

const (
	UndefinedFood FoodType = iota
	Meat
	Fish
	Cheese
	Bread
	Fungus
	Fruit
	RawMeat
	RawFish
)

var foodTypeDomain = codec.NewDomain("FoodType", map[FoodType]string{
	UndefinedFood: "Undefined", Meat: "Meat", Fish: "Fish", Cheese: "Cheese", Bread: "Bread",
	Fungus: "Fungus", Fruit: "Fruit", RawMeat: "RawMeat", RawFish: "RawFish",
})

func (FoodType) Domain() *codec.Domain[FoodType]     { return foodTypeDomain }
func (f FoodType) String() string                    { return foodTypeDomain.Format(f) }
func (f *FoodType) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, f) }
func (f FoodType) MarshalYAML() (any, error)         { return codec.MarshalSymbol(f) }

// TotemCategory is the tool category an item counts as.
type TotemCategory int

var totemCategoryDomain = codec.NewDomain("TotemCategory", map[TotemCategory]string{
	0: "Undefined", 1: "SkinningKnife_OLD", 2: "EarthTotem", 3: "AirTotem", 4: "FireTotem",
	5: "WaterTotem", 6: "RunedCopperRod", 7: "RunedSilverRod", 8: "RunedGoldenRod",
	9: "RunedTruesilverRod", 10: "RunedArcaniteRod", 11: "MiningPick_OLD", 12: "PhilosophersStone",
	13: "BlacksmithHammer_OLD", 14: "ArclightSpanner", 15: "GyromaticMicroAdjustor",
	21: "MasterTotem", 41: "RunedFelIronRod", 62: "RunedAdamantiteRod", 63: "RunedEterniumRod",
	81: "HollowQuill", 101: "RunedAzuriteRod", 121: "VirtuosoInkingSet", 141: "Drums",
	161: "GnomishArmyKnife", 162: "BlacksmithHammer", 165: "MiningPick", 166: "SkinningKnife",
	167: "HammerPick", 168: "BladedPickaxe", 169: "FlintAndTinder", 189: "RunedCobaltRod",
	190: "RunedTitaniumRod",
})

func (TotemCategory) Domain() *codec.Domain[TotemCategory] { return totemCategoryDomain }
func (t TotemCategory) String() string                     { return totemCategoryDomain.Format(t) }
func (t *TotemCategory) UnmarshalYAML(n *yaml.Node) error  { return codec.UnmarshalSymbol(n, t) }
func (t TotemCategory) MarshalYAML() (any, error)          { return codec.MarshalSymbol(t) }

// Stat is a primary or secondary stat granted by an item.
type Stat int

const (
	Mana      Stat = 0
	Health    Stat = 1
	Agility   Stat = 3
	Strength  Stat = 4
	Intellect Stat = 5
	Spirit    Stat = 6
	Stamina   Stat = 7
)

var statDomain = codec.NewDomain("Stat", map[Stat]string{
	0: "Mana", 1: "Health", 3: "Agility", 4: "Strength", 5: "Intellect", 6: "Spirit",
	7: "Stamina", 12: "DefenseRating", 13: "DodgeRating", 14: "ParryRating", 15: "BlockRating",
	16: "MeleeHitRating", 17: "RangedHitRating", 18: "SpellHitRating", 19: "MeleeCritRating",
	20: "RangedCritRating", 21: "SpellCritRating", 22: "MeleeAvoidanceRating",
	23: "RangedAvoidanceRating", 24: "SpellAvoidanceRating", 25: "MeleeCritAvoidanceRating",
	26: "RangedCritAvoidanceRating", 27: "SpellCritAvoidanceRating", 28: "MeleeHasteRating",
	29: "RangedHasteRating", 30: "SpellHasteRating", 31: "HitRating", 32: "CritRating",
	33: "HitAvoidanceRating", 34: "CritAvoidanceRating", 35: "ResilienceRating",
	36: "HasteRating", 37: "ExpertiseRating", 38: "AttackPower", 39: "RangedAttackPower",
	40: "FeralAttackPower_OLD", 41: "SpellHealing", 42: "SpellDamage", 43: "ManaRegen",
	44: "ArmorPenetration", 45: "SpellPower", 46: "HealthRegen", 47: "SpellPenetration",
	48: "Block",
})

func (Stat) Domain() *codec.Domain[Stat]         { return statDomain }
func (s Stat) String() string                    { return statDomain.Format(s) }
func (s *Stat) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, s) }
func (s Stat) MarshalYAML() (any, error)         { return codec.MarshalSymbol(s) }

// AmmoType is the ammunition a ranged weapon consumes.
type AmmoType int

var ammoTypeDomain = codec.NewDomain("AmmoType", map[AmmoType]string{
	0: "Undefined", 2: "Arrows", 3: "Bullets",
})

func (AmmoType) Domain() *codec.Domain[AmmoType]     { return ammoTypeDomain }
func (a AmmoType) String() string                    { return ammoTypeDomain.Format(a) }
func (a *AmmoType) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, a) }
func (a AmmoType) MarshalYAML() (any, error)         { return codec.MarshalSymbol(a) }

// Sheath is how a weapon is carried when not drawn.
type Sheath int

var sheathDomain = codec.NewDomain("Sheath", map[Sheath]string{
	0: "Undefined", 1: "TwoHanded", 2: "Staff", 3: "OneHanded", 4: "Shield",
	5: "EnchantersRod", 6: "Offhand",
})

func (Sheath) Domain() *codec.Domain[Sheath]       { return sheathDomain }
func (s Sheath) String() string                    { return sheathDomain.Format(s) }
func (s *Sheath) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, s) }
func (s Sheath) MarshalYAML() (any, error)         { return codec.MarshalSymbol(s) }

// DamageType is the school of a damage range.
type DamageType int

const (
	Physical DamageType = iota
	Holy
	Fire
	Nature
	Frost
	Shadow
	Arcane
)

var damageTypeDomain = codec.NewDomain("DamageType", map[DamageType]string{
	Physical: "Normal", Holy: "Holy", Fire: "Fire", Nature: "Nature",
	Frost: "Frost", Shadow: "Shadow", Arcane: "Arcane",
})

func (DamageType) Domain() *codec.Domain[DamageType]   { return damageTypeDomain }
func (d DamageType) String() string                    { return damageTypeDomain.Format(d) }
func (d *DamageType) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, d) }
func (d DamageType) MarshalYAML() (any, error)         { return codec.MarshalSymbol(d) }

// SpellTrigger is when an item spell fires.
type SpellTrigger int

const (
	Use         SpellTrigger = 0
	OnEquipped  SpellTrigger = 1
	ChanceOnHit SpellTrigger = 2
	Soulstone   SpellTrigger = 4
	OnUseNoWait SpellTrigger = 5
	LearnSpell  SpellTrigger = 6
)

var spellTriggerDomain = codec.NewDomain("SpellTrigger", map[SpellTrigger]string{
	Use: "Use", OnEquipped: "OnEquip", ChanceOnHit: "ChanceOnHit", Soulstone: "Soulstone",
	OnUseNoWait: "OnUse", LearnSpell: "LearnSpell",
})

func (SpellTrigger) Domain() *codec.Domain[SpellTrigger] { return spellTriggerDomain }
func (s SpellTrigger) String() string                    { return spellTriggerDomain.Format(s) }
func (s *SpellTrigger) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, s) }
func (s SpellTrigger) MarshalYAML() (any, error)         { return codec.MarshalSymbol(s) }

// ReputationRank is a faction standing.
type ReputationRank int

var reputationRankDomain = codec.NewDomain("ReputationRank", map[ReputationRank]string{
	0: "Hated", 1: "Hostile", 2: "Unfriendly", 3: "Neutral", 4: "Friendly",
	5: "Honored", 6: "Revered", 7: "Exalted",
})

func (ReputationRank) Domain() *codec.Domain[ReputationRank] { return reputationRankDomain }
func (r ReputationRank) String() string                      { return reputationRankDomain.Format(r) }
func (r *ReputationRank) UnmarshalYAML(n *yaml.Node) error   { return codec.UnmarshalSymbol(n, r) }
func (r ReputationRank) MarshalYAML() (any, error)           { return codec.MarshalSymbol(r) }

// PageMaterial is the background of readable item text.
type PageMaterial int

var pageMaterialDomain = codec.NewDomain("PageMaterial", map[PageMaterial]string{
	0: "Undefined", 1: "Parchment", 2: "Stone", 3: "Marble", 4: "Silver",
	5: "Bronze", 6: "Valentine", 7: "Illidan",
})

func (PageMaterial) Domain() *codec.Domain[PageMaterial] { return pageMaterialDomain }
func (p PageMaterial) String() string                    { return pageMaterialDomain.Format(p) }
func (p *PageMaterial) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, p) }
func (p PageMaterial) MarshalYAML() (any, error)         { return codec.MarshalSymbol(p) }

// Language is the language readable item text is written in.
type Language int

var languageDomain = codec.NewDomain("Language", map[Language]string{
	0: "Universal", 1: "Orcish", 2: "Darnassian", 3: "Taurahe", 6: "Dwarvish", 7: "Common",
	8: "Demonic", 9: "Titan", 10: "Thalassian", 11: "Draconic", 12: "Kalimag", 13: "Gnomish",
	14: "Troll", 33: "Gutterspeak", 35: "Draenei", 36: "Zombie", 37: "GnomishBinary",
	38: "GoblinBinary",
})

func (Language) Domain() *codec.Domain[Language]     { return languageDomain }
func (l Language) String() string                    { return languageDomain.Format(l) }
func (l *Language) UnmarshalYAML(n *yaml.Node) error { return codec.UnmarshalSymbol(n, l) }
func (l Language) MarshalYAML() (any, error)         { return codec.MarshalSymbol(l) }
