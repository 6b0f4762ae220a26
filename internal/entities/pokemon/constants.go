// Package pokemon holds the domain records shared by the engine, clients and stores
package pokemon

// Type is an elemental category identifier as used by PokeAPI ("fire", "water", ...)
type Type string

// Type constants
const (
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

// AllTypes lists every type in display order
var AllTypes = []Type{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

// String returns the type identifier
func (t Type) String() string {
	return string(t)
}

// Title returns the type name capitalised for display
func (t Type) Title() string {
	if t == "" {
		return ""
	}
	b := []byte(t)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// IsKnown reports whether t is one of the 18 mainline types
func (t Type) IsKnown() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTypes converts raw identifiers, dropping unknown ones such as "unknown" or "shadow"
func ParseTypes(names []string) []Type {
	types := make([]Type, 0, len(names))
	for _, name := range names {
		t := Type(name)
		if t.IsKnown() {
			types = append(types, t)
		}
	}
	return types
}

// Stat names as returned by PokeAPI
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// TeamSize is the fixed number of slots in a team
const TeamSize = 6
