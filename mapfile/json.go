// This file implements custom JSON marshaling for Map, since error values
// don't marshal to anything useful on their own.

package mapfile

import "encoding/json"

// mapAlias avoids infinite recursion into MarshalJSON.
type mapAlias Map

func (m *Map) MarshalJSON() ([]byte, error) {
	warnings := make([]string, len(m.Warnings))
	for i, w := range m.Warnings {
		warnings[i] = w.Error()
	}

	return json.Marshal(struct {
		*mapAlias
		Warnings []string
	}{
		mapAlias: (*mapAlias)(m),
		Warnings: warnings,
	})
}
