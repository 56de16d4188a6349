package reconcile

import (
	"fmt"

	"hogger/core/codec"
)

// Diff computes the plan turning actual into desired.
//
// A desired entity whose storage key is unassigned (<= 0) and which exists in
// actual takes over the actual entity's key; this is the only mutation Diff
// performs on its inputs. Fields are compared on decoded values through the
// entity type's codec table.
func Diff(registry *Registry, desired, actual State) (*Plan, error) {
	plan := newPlan()
	plan.Deleted = actual.copy()

	for _, code := range desired.Codes() {
		typ, ok := registry.Lookup(code)
		if !ok {
			return nil, fmt.Errorf("%w: type code %d", ErrUnregisteredType, code)
		}
		for id, want := range desired[code] {
			have, exists := actual.Get(code, id)
			if !exists {
				plan.Created.put(code, id, want)
				continue
			}

			if want.StorageKey() <= 0 {
				want.SetStorageKey(have.StorageKey())
			}

			if changes := typ.Diff(want, have); len(changes) > 0 {
				plan.Modified.put(code, id, want)
				plan.Replaced.put(code, id, have)
				if plan.Changes[code] == nil {
					plan.Changes[code] = make(map[string]map[string]codec.Change)
				}
				plan.Changes[code][id] = changes
			} else {
				plan.Unchanged.put(code, id, want)
			}
			delete(plan.Deleted[code], id)
		}
	}

	for code, byID := range plan.Deleted {
		if len(byID) == 0 {
			delete(plan.Deleted, code)
		}
	}
	return plan, nil
}
