// Package manifest reads the desired state from YAML manifests.
//
// A manifest holds an API version and a list of entities. Each entity names
// its type; the remaining keys are the entity's fields. Omitted fields keep
// the defaults of the type's constructor.
//
//	apiVersion: hogger/v1
//	entities:
//	  - type: Item
//	    name: Recruit's Shirt
//	    inventoryType: Body
//	  - type: Bow
//	    name: Short Bow
//	    tag: starter
//
// # Sources
//
//   - LoadPath: a single file, or every file with a manifest extension
//     found by walking a directory.
//   - LoadBucket: every object with a manifest extension under a prefix of
//     an object storage bucket.
//
// Files are read in lexical order and entities keep their order within a
// file. An identifier declared twice for the same entity type fails the
// load, naming both locations.
package manifest
