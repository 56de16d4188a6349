package reconcile

import (
	"fmt"
	"sort"
)

// Registry maps stable type codes to entity types. Codes are persisted in the
// identity table, so a code must never be reused for a different type.
// A Registry is built once at startup and passed to every component.
type Registry struct {
	byCode map[int]EntityType
	codes  []int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byCode: make(map[int]EntityType)}
}

// Register adds t under code. Codes must be non-negative and codes, names
// and tables unique.
func (r *Registry) Register(code int, t EntityType) error {
	if code < 0 {
		return fmt.Errorf("invalid type code %d for %s", code, t.Name())
	}
	if existing, ok := r.byCode[code]; ok {
		return fmt.Errorf("type code %d already registered to %s", code, existing.Name())
	}
	for c, existing := range r.byCode {
		if existing.Name() == t.Name() {
			return fmt.Errorf("type %s already registered under code %d", t.Name(), c)
		}
		if existing.Table() == t.Table() {
			return fmt.Errorf("table %s already owned by %s", t.Table(), existing.Name())
		}
	}
	r.byCode[code] = t
	r.codes = append(r.codes, code)
	sort.Ints(r.codes)
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *Registry) MustRegister(code int, t EntityType) {
	if err := r.Register(code, t); err != nil {
		panic(err)
	}
}

// Lookup returns the type registered under code.
func (r *Registry) Lookup(code int) (EntityType, bool) {
	t, ok := r.byCode[code]
	return t, ok
}

// ByName returns the code and type registered under name.
func (r *Registry) ByName(name string) (int, EntityType, bool) {
	for _, code := range r.codes {
		if t := r.byCode[code]; t.Name() == name {
			return code, t, true
		}
	}
	return 0, nil, false
}

// CodeFor resolves the type code of e. Specialized kinds of an entity (a
// weapon is an item) share the Go type of the general one and therefore its
// code. When several types claim e, the lowest code wins.
func (r *Registry) CodeFor(e Entity) (int, error) {
	for _, code := range r.codes {
		if r.byCode[code].Owns(e) {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: %T", ErrUnregisteredType, e)
}

// Codes returns the registered codes in ascending order.
func (r *Registry) Codes() []int {
	return append([]int(nil), r.codes...)
}

// BuildState groups entities by type code.
func (r *Registry) BuildState(entities []Entity) (State, error) {
	state := State{}
	for _, e := range entities {
		code, err := r.CodeFor(e)
		if err != nil {
			return nil, err
		}
		if err := state.Add(code, e); err != nil {
			return nil, fmt.Errorf("%s: %w", r.byCode[code].Name(), err)
		}
	}
	return state, nil
}
