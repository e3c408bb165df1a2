package lineage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Roster is the canonical serialization format for lineage input data.
//
// The format is human-editable JSON; relationship fields may be declared
// on either endpoint and are normalized during graph construction.
type Roster struct {
	Members []Member `json:"members"`
}

// Graph builds the adjacency representation for this roster.
func (r Roster) Graph() *Graph { return NewGraph(r.Members) }

// FamilyNames returns the distinct family names declared anywhere in the
// roster, sorted alphabetically.
func (r Roster) FamilyNames() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range r.Members {
		for _, f := range r.Members[i].Families {
			if f != "" && !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	slices.Sort(out)
	return out
}

// ReadRoster decodes a JSON roster from an io.Reader.
// Use ReadRosterFile for files or pass bytes.NewReader for in-memory data.
func ReadRoster(r io.Reader) (Roster, error) {
	var roster Roster
	dec := json.NewDecoder(r)
	if err := dec.Decode(&roster); err != nil {
		return Roster{}, fmt.Errorf("decode roster: %w", err)
	}
	return roster, nil
}

// ReadRosterFile reads a JSON file and returns the decoded roster.
func ReadRosterFile(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Roster{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadRoster(f)
}

// UnmarshalRoster deserializes JSON bytes to a Roster.
func UnmarshalRoster(data []byte) (Roster, error) {
	return ReadRoster(strings.NewReader(string(data)))
}

// WriteRoster writes a roster as indented JSON to an io.Writer.
// Members are sorted by name for deterministic output.
func WriteRoster(r Roster, w io.Writer) error {
	out := Roster{Members: slices.Clone(r.Members)}
	slices.SortFunc(out.Members, func(a, b Member) int {
		return strings.Compare(a.Name, b.Name)
	})
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return nil
}

// WriteRosterFile writes a roster to a JSON file.
// The file is created with 0644 permissions.
func WriteRosterFile(r Roster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteRoster(r, f)
}
