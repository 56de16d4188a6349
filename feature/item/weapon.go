package item

import (
	"hogger/core/codec"
	"hogger/core/reconcile"
)

// WeaponKind is a weapon subclass. Manifests may declare an entity with a
// weapon kind as its type; the result is an Item with the kind's class and
// subclass preset.
type WeaponKind int

const (
	OneHandedAxe   WeaponKind = 0
	TwoHandedAxe   WeaponKind = 1
	Bow            WeaponKind = 2
	Gun            WeaponKind = 3
	OneHandedMace  WeaponKind = 4
	TwoHandedMace  WeaponKind = 5
	Polearm        WeaponKind = 6
	OneHandedSword WeaponKind = 7
	TwoHandedSword WeaponKind = 8
	Staff          WeaponKind = 10
	FistWeapon     WeaponKind = 13
	Tool           WeaponKind = 14
	Dagger         WeaponKind = 15
	ThrownWeapon   WeaponKind = 16
	Spear          WeaponKind = 17
	Crossbow       WeaponKind = 18
	Wand           WeaponKind = 19
	FishingPole    WeaponKind = 20
)

var weaponKindDomain = codec.NewDomain("WeaponKind", map[WeaponKind]string{
	OneHandedAxe: "OneHandedAxe", TwoHandedAxe: "TwoHandedAxe", Bow: "Bow", Gun: "Gun",
	OneHandedMace: "OneHandedMace", TwoHandedMace: "TwoHandedMace", Polearm: "Polearm",
	OneHandedSword: "OneHandedSword", TwoHandedSword: "TwoHandedSword", Staff: "Staff",
	FistWeapon: "FistWeapon", Tool: "Tool", Dagger: "Dagger", ThrownWeapon: "Thrown",
	Spear: "Spear", Crossbow: "Crossbow", Wand: "Wand", FishingPole: "FishingPole",
})

func (WeaponKind) Domain() *codec.Domain[WeaponKind] { return weaponKindDomain }
func (k WeaponKind) String() string                  { return weaponKindDomain.Format(k) }

// NewWeapon returns an item of kind k with the item defaults.
func NewWeapon(k WeaponKind) *Item {
	i := New()
	i.Class = Weapon
	i.Subclass = int(k)
	i.Kind = &k
	return i
}

// Factories maps every manifest type name this package handles to a
// constructor returning the entity with its defaults.
func Factories() map[string]func() reconcile.Entity {
	f := map[string]func() reconcile.Entity{
		"Item": func() reconcile.Entity { return New() },
	}
	for _, k := range weaponKindDomain.Values() {
		f[weaponKindDomain.Format(k)] = func() reconcile.Entity { return NewWeapon(k) }
	}
	return f
}
