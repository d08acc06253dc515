package domain

// ProjectType is the ecosystem tag assigned by marker-file classification.
type ProjectType int

const (
	Unknown ProjectType = iota
	Rust
	JavaScript
	Python
)

func (t ProjectType) String() string {
	switch t {
	case Rust:
		return "Rust"
	case JavaScript:
		return "JavaScript"
	case Python:
		return "Python"
	default:
		return "Unknown"
	}
}

// MarkerRule says that a file named Marker directly under the root marks a project of Type.
type MarkerRule struct {
	Type   ProjectType
	Marker string
}

// DefaultMarkerRules returns the classification table. Order is the tie-break:
// the first rule whose marker exists wins.
func DefaultMarkerRules() []MarkerRule {
	return []MarkerRule{
		{Type: Rust, Marker: "Cargo.toml"},
		{Type: JavaScript, Marker: "package.json"},
		{Type: Python, Marker: "requirements.txt"},
		{Type: Python, Marker: "setup.py"},
	}
}
