package lineage

import "fmt"

// Member represents a single person in the lineage roster.
// The Name is the unique identity; every other field is optional.
//
// Bigs and Littles reference other members by name. References to names
// absent from the roster are dropped during graph construction rather
// than treated as errors.
type Member struct {
	Name        string   `json:"name"`
	Nickname    string   `json:"nickname,omitempty"`
	Bond        int      `json:"bond,omitempty"`
	PledgeClass string   `json:"pledge_class,omitempty"`
	Families    []string `json:"families,omitempty"`
	Bigs        []string `json:"bigs,omitempty"`
	Littles     []string `json:"littles,omitempty"`

	// Redacted suppresses the member's real name in rendered output.
	// It has no effect on layout geometry.
	Redacted bool `json:"redacted,omitempty"`
}

// DisplayLabel returns the label shown on the member's node: the name,
// with the nickname appended in quotes when present. Layout spacing is
// computed from this string.
func (m *Member) DisplayLabel() string {
	if m.Nickname != "" {
		return fmt.Sprintf("%s %q", m.Name, m.Nickname)
	}
	return m.Name
}

// PrimaryFamily returns the member's first declared family, or the empty
// string for unaffiliated members. Layout grouping uses only the primary
// family; additional families affect display treatment, not placement.
func (m *Member) PrimaryFamily() string {
	if len(m.Families) == 0 {
		return ""
	}
	return m.Families[0]
}
