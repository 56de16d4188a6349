package reconcile

import (
	"testing"

	"hogger/core/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateOf(t *testing.T, entities ...Entity) State {
	t.Helper()
	s := State{}
	for _, e := range entities {
		require.NoError(t, s.Add(gizmoCode, e))
	}
	return s
}

func TestDiff_CreateAndDelete(t *testing.T) {
	r := testRegistry(t)
	fury := newGizmo("Martin Fury", 1)
	sword := &gizmo{ID: 25, Name: "Worn Shortsword", DisplayID: 2}

	plan, err := Diff(r, stateOf(t, fury), stateOf(t, sword))
	require.NoError(t, err)

	assert.Equal(t, State{gizmoCode: {"Martin Fury": fury}}, plan.Created)
	assert.Equal(t, State{gizmoCode: {"Worn Shortsword": sword}}, plan.Deleted)
	assert.Empty(t, plan.Modified)
	assert.Empty(t, plan.Unchanged)
	assert.Empty(t, plan.Changes)
	assert.False(t, plan.Empty())
}

func TestDiff_Modified(t *testing.T) {
	r := testRegistry(t)
	desired := newGizmo("Martin Fury", 5)
	actual := &gizmo{ID: 17, Name: "Martin Fury", DisplayID: 3}

	plan, err := Diff(r, stateOf(t, desired), stateOf(t, actual))
	require.NoError(t, err)

	assert.Equal(t, State{gizmoCode: {"Martin Fury": desired}}, plan.Modified)
	assert.Equal(t, 17, desired.ID, "sentinel key is backfilled from the actual entity")
	assert.Equal(t, Changes{gizmoCode: {"Martin Fury": {
		"displayId": codec.Change{Desired: 5, Actual: 3},
	}}}, plan.Changes)
	assert.Same(t, actual, plan.Replaced[gizmoCode]["Martin Fury"])
	assert.Empty(t, plan.Created)
	assert.Empty(t, plan.Deleted)
}

func TestDiff_Unchanged(t *testing.T) {
	r := testRegistry(t)
	desired := newGizmo("a", 1)
	actual := &gizmo{ID: 3, Name: "a", DisplayID: 1}

	plan, err := Diff(r, stateOf(t, desired), stateOf(t, actual))
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Unchanged.Len())
	assert.True(t, plan.Empty())
	assert.Equal(t, Summary{Unchanged: 1}, plan.Summary())
}

func TestDiff_PinnedKeyChange(t *testing.T) {
	r := testRegistry(t)
	desired := &gizmo{ID: 40, Name: "a", DisplayID: 1}
	actual := &gizmo{ID: 3, Name: "a", DisplayID: 1}

	plan, err := Diff(r, stateOf(t, desired), stateOf(t, actual))
	require.NoError(t, err)
	assert.Equal(t, codec.Change{Desired: 40, Actual: 3}, plan.Changes[gizmoCode]["a"]["id"])
	assert.Equal(t, 40, desired.ID)
}

func TestDiff_Partition(t *testing.T) {
	r := testRegistry(t)
	desired := stateOf(t,
		newGizmo("new", 1),
		newGizmo("changed", 2),
		newGizmo("same", 3),
	)
	actual := stateOf(t,
		&gizmo{ID: 1, Name: "changed", DisplayID: 9},
		&gizmo{ID: 2, Name: "same", DisplayID: 3},
		&gizmo{ID: 3, Name: "gone", DisplayID: 4},
	)

	plan, err := Diff(r, desired, actual)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, part := range []State{plan.Created, plan.Modified, plan.Unchanged, plan.Deleted} {
		for _, id := range part.Identifiers(gizmoCode) {
			seen[id]++
		}
	}
	assert.Equal(t, map[string]int{"new": 1, "changed": 1, "same": 1, "gone": 1}, seen)
	assert.Equal(t, Summary{Created: 1, Modified: 1, Unchanged: 1, Deleted: 1}, plan.Summary())

	// Inputs are untouched apart from the key backfill.
	assert.Equal(t, 3, actual.Len())
	assert.Equal(t, 3, desired.Len())
}

func TestDiff_UnregisteredCode(t *testing.T) {
	desired := State{99: {"a": newGizmo("a", 1)}}
	_, err := Diff(testRegistry(t), desired, State{})
	assert.ErrorIs(t, err, ErrUnregisteredType)
}

func TestState(t *testing.T) {
	s := State{}
	require.NoError(t, s.Add(2, newGizmo("b", 1)))
	require.NoError(t, s.Add(1, newGizmo("a", 1)))
	assert.Error(t, s.Add(1, newGizmo("a", 2)))
	s[3] = map[string]Entity{}

	assert.Equal(t, []int{1, 2}, s.Codes())
	assert.Equal(t, 2, s.Len())

	e, ok := s.Get(2, "b")
	require.True(t, ok)
	assert.Equal(t, "b", e.Identifier())

	cp := s.copy()
	delete(cp[1], "a")
	_, ok = s.Get(1, "a")
	assert.True(t, ok)
}
