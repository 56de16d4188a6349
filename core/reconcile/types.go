package reconcile

import (
	"errors"
	"fmt"
	"sort"

	"hogger/core/codec"
)

var (
	// ErrLocked is returned when another run holds the reconciliation lock.
	ErrLocked = errors.New("reconciliation lock is held by another run")
	// ErrIntegrity reports a managed entity whose backing row is missing or duplicated.
	ErrIntegrity = errors.New("integrity violation")
	// ErrUnregisteredType is returned for an entity no registered type owns.
	ErrUnregisteredType = errors.New("entity type is not registered")
	// ErrKeyCollision is returned when a pinned storage key is already taken.
	ErrKeyCollision = errors.New("storage key collision")
	// ErrNothingToApply is returned by callers that treat an empty plan as a failure.
	ErrNothingToApply = errors.New("nothing to apply")
	// ErrNotBegun is returned when a run operation is used before Begin.
	ErrNotBegun = errors.New("reconciliation run not started")
)

// UnassignedKey is the storage key of an entity that has not been stored yet.
const UnassignedKey = -1

// Entity is a manageable row group: one row of its type's table plus the
// human identifier it is tracked under.
type Entity interface {
	// Identifier returns the human identifier, unique within the entity type.
	Identifier() string
	// StorageKey returns the primary key of the backing row, or a value <= 0
	// when none has been chosen.
	StorageKey() int
	// SetStorageKey assigns the primary key.
	SetStorageKey(key int)
}

// IdentifierSetter is implemented by entities that can carry an identifier
// different from the one their fields derive. The snapshot reader uses it so
// that identifiers recorded in the identity table survive out-of-band edits.
type IdentifierSetter interface {
	SetIdentifier(identifier string)
}

// State maps type code to identifier to entity.
type State map[int]map[string]Entity

// Add inserts e under code. Identifiers must be unique within a type code.
func (s State) Add(code int, e Entity) error {
	byID, ok := s[code]
	if !ok {
		byID = make(map[string]Entity)
		s[code] = byID
	}
	id := e.Identifier()
	if _, dup := byID[id]; dup {
		return fmt.Errorf("duplicate identifier %q for type code %d", id, code)
	}
	byID[id] = e
	return nil
}

// Get returns the entity under (code, identifier).
func (s State) Get(code int, identifier string) (Entity, bool) {
	e, ok := s[code][identifier]
	return e, ok
}

// Len returns the number of entities across all type codes.
func (s State) Len() int {
	n := 0
	for _, byID := range s {
		n += len(byID)
	}
	return n
}

// Codes returns the type codes holding at least one entity, ascending.
func (s State) Codes() []int {
	codes := make([]int, 0, len(s))
	for code, byID := range s {
		if len(byID) > 0 {
			codes = append(codes, code)
		}
	}
	sort.Ints(codes)
	return codes
}

// Identifiers returns the identifiers under code, sorted.
func (s State) Identifiers(code int) []string {
	ids := make([]string, 0, len(s[code]))
	for id := range s[code] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s State) put(code int, id string, e Entity) {
	if s[code] == nil {
		s[code] = make(map[string]Entity)
	}
	s[code][id] = e
}

func (s State) copy() State {
	out := make(State, len(s))
	for code, byID := range s {
		cp := make(map[string]Entity, len(byID))
		for id, e := range byID {
			cp[id] = e
		}
		out[code] = cp
	}
	return out
}

// Changes maps type code to identifier to field name to the differing values.
type Changes map[int]map[string]map[string]codec.Change

// Plan is the categorized difference between a desired and an actual state.
// Every (type code, identifier) of either state appears in exactly one of
// Created, Modified, Unchanged and Deleted.
type Plan struct {
	// Created holds desired entities absent from the actual state.
	Created State `json:"created"`
	// Modified holds desired entities whose fields differ from the actual ones.
	Modified State `json:"modified"`
	// Unchanged holds desired entities identical to the actual ones.
	Unchanged State `json:"unchanged"`
	// Deleted holds actual entities absent from the desired state.
	Deleted State `json:"deleted"`
	// Changes records, for every modified entity, the fields that differ.
	Changes Changes `json:"changes"`
	// Replaced holds the actual entity behind every modified one.
	Replaced State `json:"-"`
}

func newPlan() *Plan {
	return &Plan{
		Created:   State{},
		Modified:  State{},
		Unchanged: State{},
		Deleted:   State{},
		Changes:   Changes{},
		Replaced:  State{},
	}
}

// Empty reports whether applying the plan would change nothing.
func (p *Plan) Empty() bool {
	return p.Created.Len() == 0 && p.Modified.Len() == 0 && p.Deleted.Len() == 0
}

// Summary provides aggregate counts of a plan.
type Summary struct {
	Created   int `json:"created"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
	Deleted   int `json:"deleted"`
}

// Summary returns the plan's aggregate counts.
func (p *Plan) Summary() Summary {
	return Summary{
		Created:   p.Created.Len(),
		Modified:  p.Modified.Len(),
		Unchanged: p.Unchanged.Len(),
		Deleted:   p.Deleted.Len(),
	}
}
