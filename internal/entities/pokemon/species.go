package pokemon

// Species is the typed view of a PokeAPI pokemon resource. Missing fields are
// defaulted by the client so callers never see partial records.
type Species struct {
	ID        int
	Name      string
	SpeciesID int
	Types     []Type
	Stats     map[string]int
	Abilities []AbilityRef
	Moves     []MoveLearn
	SpriteURL string
}

// Member converts the species to a team member snapshot with the given types
func (s *Species) Member(types []Type) *Member {
	stats := make(map[string]int, len(s.Stats))
	for k, v := range s.Stats {
		stats[k] = v
	}
	return &Member{
		ID:        s.ID,
		Name:      s.Name,
		SpriteURL: s.SpriteURL,
		Types:     append([]Type(nil), types...),
		Stats:     stats,
	}
}

// AbilityRef is an ability a species can have
type AbilityRef struct {
	Name     string
	IsHidden bool
}

// MoveLearn records how a move is learned in one version group
type MoveLearn struct {
	Move         string
	VersionGroup string
	Method       string
	Level        int
}

// TypeRelations is the attacking side of a type's damage relations
type TypeRelations struct {
	Type           Type
	DoubleDamageTo []Type
	HalfDamageTo   []Type
	NoDamageTo     []Type
}

// EvolutionNode is one stage of an evolution chain
type EvolutionNode struct {
	Species   string
	SpeciesID int
	Details   []EvolutionDetail
	EvolvesTo []*EvolutionNode
}

// EvolutionDetail is one way to reach an evolution stage
type EvolutionDetail struct {
	Trigger      string
	MinLevel     int
	Item         string
	HeldItem     string
	KnownMove    string
	MinHappiness int
	TimeOfDay    string
	Location     string
}

// LocationEncounter is where a species can be found in one game version
type LocationEncounter struct {
	Location  string
	Version   string
	MaxChance int
}

// AbilityDetail is the short description of an ability
type AbilityDetail struct {
	Name   string
	Effect string
}

// MoveDetail is the battle data of a move
type MoveDetail struct {
	Name        string
	Type        Type
	DamageClass string
	Power       *int
	Accuracy    *int
	PP          *int
	Effect      string
}
