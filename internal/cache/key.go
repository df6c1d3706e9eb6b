package cache

import (
	"sort"
	"strings"
)

// Key addresses one cached collection: the entity name plus the shaping
// parameters the fetch was made with. A preload fetch and a plain fetch of the
// same entity are distinct entries and are never merged.
type Key struct {
	Entity  string
	Preload bool
	Select  []string
}

// ListKey is the base key for an entity's flat list, the one the patch rules
// target.
func ListKey(entity string) Key {
	return Key{Entity: entity}
}

// String renders the canonical form used as the store's map/redis key.
// Select fields are sorted so field order does not split cache entries.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Entity)
	if k.Preload {
		b.WriteString("?preload=true")
	}
	if len(k.Select) > 0 {
		fields := make([]string, len(k.Select))
		copy(fields, k.Select)
		sort.Strings(fields)
		if k.Preload {
			b.WriteString("&")
		} else {
			b.WriteString("?")
		}
		b.WriteString("select=")
		b.WriteString(strings.Join(fields, ","))
	}
	return b.String()
}
