package codec

import (
	"fmt"
	"strings"
)

// Separator joins the display part and the tag of a human identifier.
const Separator = "#"

// JoinIdentifier builds "display#tag", or display unchanged when the trimmed
// tag is empty. Display values may contain the separator.
func JoinIdentifier(display, tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return display
	}
	return display + Separator + tag
}

// SplitIdentifier splits on the last separator. Separators inside the display
// part are preserved; an identifier without one has an empty tag.
func SplitIdentifier(id string) (display, tag string) {
	i := strings.LastIndex(id, Separator)
	if i < 0 {
		return id, ""
	}
	return id[:i], id[i+len(Separator):]
}

// ValidateTag rejects tags that SplitIdentifier could not recover.
func ValidateTag(tag string) error {
	if strings.Contains(tag, Separator) {
		return &Error{Field: "tag", Value: tag, Reason: fmt.Sprintf("tag must not contain %q", Separator)}
	}
	return nil
}
