package item

import (
	"strings"

	"hogger/core/codec"
	"hogger/core/reconcile"
)

// TypeCode is the identity type code of items. It is persisted and must not change.
const TypeCode = 1

// Table is the backing table of items.
const Table = "item_template"

// Item is one row of item_template. Items are identified by Name, suffixed
// with "#Tag" when a tag is set, so two items may share a name.
type Item struct {
	ID                      int                     `yaml:"id"`
	Name                    string                  `yaml:"name"`
	Tag                     string                  `yaml:"tag"`
	Description             string                  `yaml:"description"`
	ScriptName              string                  `yaml:"scriptName"`
	Class                   Class                   `yaml:"itemClass"`
	Subclass                int                     `yaml:"itemSubclass"`
	SoundOverride           int                     `yaml:"soundOverride"`
	DisplayID               int                     `yaml:"displayId"`
	Quality                 Quality                 `yaml:"quality"`
	BuyCount                int                     `yaml:"buyCount"`
	BuyPrice                codec.Money             `yaml:"buyPrice"`
	SellPrice               codec.Money             `yaml:"sellPrice"`
	InventoryType           InventoryType           `yaml:"inventoryType"`
	MaxCount                int                     `yaml:"maxCount"`
	StackSize               int                     `yaml:"stackSize"`
	StartsQuest             int                     `yaml:"startsQuest"`
	Material                Material                `yaml:"material"`
	RandomStat              RandomStat              `yaml:"randomStat"`
	BagFamily               codec.Flags[BagFamily]  `yaml:"bagFamily"`
	ContainerSlots          int                     `yaml:"containerSlots"`
	TotemCategory           TotemCategory           `yaml:"totemCategory"`
	Duration                codec.Duration          `yaml:"duration"`
	ItemLimitCategory       int                     `yaml:"itemLimitCategory"`
	DisenchantID            int                     `yaml:"disenchantId"`
	FoodType                FoodType                `yaml:"foodType"`
	MinMoneyLoot            codec.Money             `yaml:"minMoneyLoot"`
	MaxMoneyLoot            codec.Money             `yaml:"maxMoneyLoot"`
	ItemSet                 int                     `yaml:"itemSet"`
	Bonding                 Binding                 `yaml:"bonding"`
	Flags                   codec.Flags[Flag]       `yaml:"flags"`
	FlagsExtra              codec.Flags[FlagExtra]  `yaml:"flagsExtra"`
	FlagsCustom             codec.Flags[FlagCustom] `yaml:"flagsCustom"`
	ReadText                ReadText                `yaml:"readText"`
	Requires                Requirements            `yaml:"requires"`
	ItemLevel               int                     `yaml:"itemLevel"`
	Unlocks                 int                     `yaml:"unlocks"`
	Resistances             Resistances             `yaml:"resistances"`
	ScalingStatDistribution int                     `yaml:"scalingStatDistribution"`
	ScalingStatValue        int                     `yaml:"scalingStatValue"`
	Stats                   Stats                   `yaml:"stats"`
	Sockets                 Sockets                 `yaml:"sockets"`
	Armor                   int                     `yaml:"armor"`
	ArmorDamageModifier     float32                 `yaml:"armorDamageModifier"`
	HitDelay                int                     `yaml:"hitDelay"`
	AmmoType                AmmoType                `yaml:"ammoType"`
	WeaponRange             float32                 `yaml:"weaponRange"`
	Block                   int                     `yaml:"block"`
	Durability              int                     `yaml:"durability"`
	Sheath                  Sheath                  `yaml:"sheath"`
	Damage                  Damage                  `yaml:"damage"`
	Spells                  []Spell                 `yaml:"spells"`
	Build                   int                     `yaml:"build"`

	// Kind is the weapon kind the item was declared as, if any.
	Kind *WeaponKind `yaml:"-"`

	identifier string
}

// New returns an item holding the defaults of an omitted manifest field.
func New() *Item {
	return &Item{
		ID:            reconcile.UnassignedKey,
		Class:         TradeGoods,
		SoundOverride: -1,
		Quality:       Common,
		BuyCount:      1,
		MaxCount:      1,
		StackSize:     1,
		Durability:    100,
	}
}

// Identifier returns the identifier the item is tracked under.
func (i *Item) Identifier() string {
	if i.identifier != "" {
		return i.identifier
	}
	return codec.JoinIdentifier(i.Name, i.Tag)
}

// SetIdentifier pins the identifier regardless of Name. The tag is read
// relative to Name when the identifier still starts with it, so a name
// holding the separator keeps an empty tag.
func (i *Item) SetIdentifier(identifier string) {
	i.identifier = identifier
	switch {
	case identifier == i.Name:
		i.Tag = ""
	case strings.HasPrefix(identifier, i.Name+codec.Separator):
		i.Tag = identifier[len(i.Name)+len(codec.Separator):]
	default:
		_, i.Tag = codec.SplitIdentifier(identifier)
	}
}

// Validate rejects an item whose identifier would not split back into its
// name and tag.
func (i *Item) Validate() error {
	return codec.ValidateTag(i.Tag)
}

func (i *Item) StorageKey() int       { return i.ID }
func (i *Item) SetStorageKey(key int) { i.ID = key }

// Normalize puts value fields in the canonical form decoding produces, so
// that equal items compare equal.
func (i *Item) Normalize() {
	i.Tag = strings.TrimSpace(i.Tag)
	i.BuyPrice = i.BuyPrice.Normalize()
	i.SellPrice = i.SellPrice.Normalize()
	i.MinMoneyLoot = i.MinMoneyLoot.Normalize()
	i.MaxMoneyLoot = i.MaxMoneyLoot.Normalize()
	i.Duration = i.Duration.Normalize()
	i.BagFamily = i.BagFamily.Normalize()
	i.Flags = i.Flags.Normalize()
	i.FlagsExtra = i.FlagsExtra.Normalize()
	i.FlagsCustom = i.FlagsCustom.Normalize()
	i.Requires.Classes = i.Requires.Classes.Normalize()
	i.Requires.Races = i.Requires.Races.Normalize()
	i.Stats = i.Stats.Normalize()
	if len(i.Spells) == 0 {
		i.Spells = nil
	}
}

func field[V any](name string, c codec.Codec[V], ref func(*Item) *V) codec.Field[Item] {
	return codec.Bind(name, c, ref)
}

func itemTable() *codec.Table[Item] {
	return codec.NewTable(
		field("id", codec.IntColumn("entry"), func(i *Item) *int { return &i.ID }),
		field("name", codec.StringColumn("name"), func(i *Item) *string { return &i.Name }),
		field("description", codec.StringColumn("description"), func(i *Item) *string { return &i.Description }),
		field("scriptName", codec.StringColumn("ScriptName"), func(i *Item) *string { return &i.ScriptName }),
		field("itemClass", codec.EnumColumn[Class]("class"), func(i *Item) *Class { return &i.Class }),
		field("itemSubclass", codec.IntColumn("subclass"), func(i *Item) *int { return &i.Subclass }),
		field("soundOverride", codec.IntColumn("SoundOverrideSubclass"), func(i *Item) *int { return &i.SoundOverride }),
		field("displayId", codec.IntColumn("displayid"), func(i *Item) *int { return &i.DisplayID }),
		field("quality", codec.EnumColumn[Quality]("Quality"), func(i *Item) *Quality { return &i.Quality }),
		field("buyCount", codec.IntColumn("BuyCount"), func(i *Item) *int { return &i.BuyCount }),
		field("buyPrice", codec.MoneyColumn("BuyPrice"), func(i *Item) *codec.Money { return &i.BuyPrice }),
		field("sellPrice", codec.MoneyColumn("SellPrice"), func(i *Item) *codec.Money { return &i.SellPrice }),
		field("inventoryType", codec.EnumColumn[InventoryType]("InventoryType"), func(i *Item) *InventoryType { return &i.InventoryType }),
		field("maxCount", codec.IntColumn("maxcount"), func(i *Item) *int { return &i.MaxCount }),
		field("stackSize", codec.IntColumn("stackable"), func(i *Item) *int { return &i.StackSize }),
		field("startsQuest", codec.IntColumn("startquest"), func(i *Item) *int { return &i.StartsQuest }),
		field("material", codec.EnumColumn[Material]("Material"), func(i *Item) *Material { return &i.Material }),
		field("randomStat", randomStatCodec(), func(i *Item) *RandomStat { return &i.RandomStat }),
		field("bagFamily", codec.FlagColumn[BagFamily]("BagFamily"), func(i *Item) *codec.Flags[BagFamily] { return &i.BagFamily }),
		field("containerSlots", codec.IntColumn("ContainerSlots"), func(i *Item) *int { return &i.ContainerSlots }),
		field("totemCategory", codec.EnumColumn[TotemCategory]("TotemCategory"), func(i *Item) *TotemCategory { return &i.TotemCategory }),
		field("duration", codec.DurationColumn("duration", codec.Seconds), func(i *Item) *codec.Duration { return &i.Duration }),
		field("itemLimitCategory", codec.IntColumn("ItemLimitCategory"), func(i *Item) *int { return &i.ItemLimitCategory }),
		field("disenchantId", codec.IntColumn("DisenchantID"), func(i *Item) *int { return &i.DisenchantID }),
		field("foodType", codec.EnumColumn[FoodType]("FoodType"), func(i *Item) *FoodType { return &i.FoodType }),
		field("minMoneyLoot", codec.MoneyColumn("minMoneyLoot"), func(i *Item) *codec.Money { return &i.MinMoneyLoot }),
		field("maxMoneyLoot", codec.MoneyColumn("maxMoneyLoot"), func(i *Item) *codec.Money { return &i.MaxMoneyLoot }),
		field("itemSet", codec.IntColumn("itemset"), func(i *Item) *int { return &i.ItemSet }),
		field("bonding", codec.EnumColumn[Binding]("bonding"), func(i *Item) *Binding { return &i.Bonding }),
		field("flags", codec.FlagColumn[Flag]("Flags"), func(i *Item) *codec.Flags[Flag] { return &i.Flags }),
		field("flagsExtra", codec.FlagColumn[FlagExtra]("FlagsExtra"), func(i *Item) *codec.Flags[FlagExtra] { return &i.FlagsExtra }),
		field("flagsCustom", codec.FlagColumn[FlagCustom]("flagsCustom"), func(i *Item) *codec.Flags[FlagCustom] { return &i.FlagsCustom }),
		field("readText", readTextCodec(), func(i *Item) *ReadText { return &i.ReadText }),
		field("requires", requirementsCodec(), func(i *Item) *Requirements { return &i.Requires }),
		field("itemLevel", codec.IntColumn("ItemLevel"), func(i *Item) *int { return &i.ItemLevel }),
		field("unlocks", codec.IntColumn("lockid"), func(i *Item) *int { return &i.Unlocks }),
		field("resistances", resistancesCodec(), func(i *Item) *Resistances { return &i.Resistances }),
		field("scalingStatDistribution", codec.IntColumn("ScalingStatDistribution"), func(i *Item) *int { return &i.ScalingStatDistribution }),
		field("scalingStatValue", codec.IntColumn("ScalingStatValue"), func(i *Item) *int { return &i.ScalingStatValue }),
		field("stats", statsCodec(), func(i *Item) *Stats { return &i.Stats }),
		field("sockets", socketsCodec(), func(i *Item) *Sockets { return &i.Sockets }),
		field("armor", codec.IntColumn("armor"), func(i *Item) *int { return &i.Armor }),
		field("armorDamageModifier", codec.FloatColumn("ArmorDamageModifier"), func(i *Item) *float32 { return &i.ArmorDamageModifier }),
		field("hitDelay", codec.IntColumn("delay"), func(i *Item) *int { return &i.HitDelay }),
		field("ammoType", codec.EnumColumn[AmmoType]("ammo_type"), func(i *Item) *AmmoType { return &i.AmmoType }),
		field("weaponRange", codec.FloatColumn("RangedModRange"), func(i *Item) *float32 { return &i.WeaponRange }),
		field("block", codec.IntColumn("block"), func(i *Item) *int { return &i.Block }),
		field("durability", codec.IntColumn("MaxDurability"), func(i *Item) *int { return &i.Durability }),
		field("sheath", codec.EnumColumn[Sheath]("sheath"), func(i *Item) *Sheath { return &i.Sheath }),
		field("damage", damageCodec(), func(i *Item) *Damage { return &i.Damage }),
		field("spells", codec.Codec[[]Spell](spellsCodec()), func(i *Item) *[]Spell { return &i.Spells }),
		field("build", codec.IntColumn("VerifiedBuild"), func(i *Item) *int { return &i.Build }),
	)
}

// Schema is the entity type of items.
func Schema() *reconcile.Schema[Item, *Item] {
	return &reconcile.Schema[Item, *Item]{
		TypeName:  "Item",
		TableName: Table,
		Key:       "entry",
		Codec:     itemTable(),
	}
}

// Register adds the item type to registry under TypeCode.
func Register(registry *reconcile.Registry) error {
	return registry.Register(TypeCode, Schema())
}
