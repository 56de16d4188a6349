// Package item defines the Item entity type: one row of item_template, its
// symbolic enumerations and flag sets, and the codec table mapping the
// two.
//
// Weapon kinds (Bow, Staff, ...) are not separate entity types. They produce
// an Item with class Weapon and the matching subclass and share the Item type
// code.
//
// Repeated column groups (spells) decode up to the first empty slot and are
// rewritten zero-filled, so a row with a gap between slots loses the slots
// after the gap on the next apply.
package item
