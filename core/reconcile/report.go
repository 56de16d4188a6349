package reconcile

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"hogger/core/codec"
)

// WriteReport renders plan as the human-readable review shown before an
// apply. Entities are listed as Type.identifier in sorted order.
func WriteReport(w io.Writer, registry *Registry, plan *Plan) error {
	var b strings.Builder

	b.WriteString("To be Created:\n")
	writeEntries(&b, registry, plan.Created, nil)

	b.WriteString("\nTo Be Modified:\n")
	writeEntries(&b, registry, plan.Modified, plan.Changes)

	b.WriteString("\nUnchanged:\n")
	writeEntries(&b, registry, plan.Unchanged, nil)

	b.WriteString("\nTo Be Deleted:\n")
	writeEntries(&b, registry, plan.Deleted, nil)

	s := plan.Summary()
	fmt.Fprintf(&b, "\nPlan: %d to create, %d to modify, %d unchanged, %d to delete.\n",
		s.Created, s.Modified, s.Unchanged, s.Deleted)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeEntries(b *strings.Builder, registry *Registry, part State, changes Changes) {
	for _, code := range part.Codes() {
		name := fmt.Sprintf("Type%d", code)
		if typ, ok := registry.Lookup(code); ok {
			name = typ.Name()
		}
		for _, id := range part.Identifiers(code) {
			fmt.Fprintf(b, "  %s.%s\n", name, id)
			fields := changes[code][id]
			for _, field := range sortedFields(fields) {
				c := fields[field]
				fmt.Fprintf(b, "    %s\n", field)
				fmt.Fprintf(b, "      desired: %v\n", c.Desired)
				fmt.Fprintf(b, "      actual:  %v\n", c.Actual)
			}
		}
	}
}

func sortedFields(fields map[string]codec.Change) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
