// Package teams resolves team identifiers to display labels.
package teams

// NameMap is an immutable lookup table from team identifier to display name.
// It is configured once at startup and shared by both read paths. A team
// absent from the map resolves to no label; that is pass-through behavior,
// not an error.
type NameMap struct {
	names map[string]string
}

// NewNameMap copies the provided mapping so later mutations of the argument
// cannot change resolution results.
func NewNameMap(names map[string]string) *NameMap {
	m := make(map[string]string, len(names))
	for id, name := range names {
		m[id] = name
	}
	return &NameMap{names: m}
}

// Lookup returns the display name for a team id and whether one is configured.
func (m *NameMap) Lookup(teamID string) (string, bool) {
	name, ok := m.names[teamID]
	return name, ok
}

// Len returns the number of configured team names.
func (m *NameMap) Len() int {
	return len(m.names)
}
