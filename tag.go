package gofocus

import (
	"fmt"
	"regexp"
)

// Tag is a Key and Value pair stored providing meta about a game.
type Tag struct {
	Key   string
	Value string
}

func (t *Tag) String() string {
	return fmt.Sprintf("[%s %q]", t.Key, t.Value)
}

// Example: [Tag_Name "Tag Data"]
var tagRegex = regexp.MustCompile(`^\s*\[([0-9A-Za-z_]+) "(.*)"\]\s*$`)

// parseTag returns nil if the line is not a tag.
func parseTag(line string) *Tag {
	parts := tagRegex.FindStringSubmatch(line)
	if len(parts) < 3 {
		return nil
	}

	return &Tag{
		Key:   parts[1],
		Value: parts[2],
	}
}
