// Package entities holds the data-only domain types of the kbxy monster
// admin backend. All derivation and classification happens in the engine
// (internal/engine), not here.
package entities

// Monster represents a curated game monster record
// NOTE: This is a data-only struct. Derived scores, tag suggestions, and
// role suggestions are produced by the engine, never computed here.
type Monster struct {
	ID      string
	Name    string
	Element string
	// Role is the assigned role label code ("" means unassigned).
	// See RoleAttacker and friends in constants.go.
	Role string
	// Tags is the full tag set: engine-namespaced codes plus foreign
	// (curator-added) codes, sorted and deduplicated.
	Tags       []string
	Attributes Attributes
	Skills     []Skill
	CreatedAt  int64
	UpdatedAt  int64
}

// Attributes holds the six base numeric stats of a monster.
// Absent values are stored as zero.
type Attributes struct {
	Vitality       float64
	Speed          float64
	PhysicalPower  float64
	PhysicalResist float64
	MagicPower     float64
	MagicResist    float64
}

// Skill represents one move in a monster's ordered skill list
type Skill struct {
	Name    string
	Kind    string
	Element string
	// Power is nil for moves without a power value (status moves).
	Power       *int32
	Description string
}

// DerivedScores holds the five computed gameplay axes for a monster.
// Each score is an integer clamped to [0, 120].
type DerivedScores struct {
	MonsterID  string
	Offense    int32
	Survive    int32
	Control    int32
	Tempo      int32
	PPPressure int32
	ComputedAt int64
}

// Equal reports whether two score sets agree on all five axes.
// Timestamps are not compared.
func (d *DerivedScores) Equal(other *DerivedScores) bool {
	if other == nil {
		return false
	}
	return d.Offense == other.Offense &&
		d.Survive == other.Survive &&
		d.Control == other.Control &&
		d.Tempo == other.Tempo &&
		d.PPPressure == other.PPPressure
}

// HasTag reports whether the monster currently carries the tag code
func (m *Monster) HasTag(code string) bool {
	for _, t := range m.Tags {
		if t == code {
			return true
		}
	}
	return false
}
