package reconcile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	plan := planOf(t,
		stateOf(t, newGizmo("b-new", 1), newGizmo("a-new", 1), newGizmo("Martin Fury", 5), newGizmo("same", 0)),
		stateOf(t,
			&gizmo{ID: 17, Name: "Martin Fury", DisplayID: 3},
			&gizmo{ID: 18, Name: "same"},
			&gizmo{ID: 25, Name: "Worn Shortsword"},
		),
	)

	var b strings.Builder
	require.NoError(t, WriteReport(&b, testRegistry(t), plan))

	assert.Equal(t, `To be Created:
  Gizmo.a-new
  Gizmo.b-new

To Be Modified:
  Gizmo.Martin Fury
    displayId
      desired: 5
      actual:  3

Unchanged:
  Gizmo.same

To Be Deleted:
  Gizmo.Worn Shortsword

Plan: 2 to create, 1 to modify, 1 unchanged, 1 to delete.
`, b.String())
}
