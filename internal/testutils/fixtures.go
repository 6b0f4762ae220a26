package testutils

import (
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// Bulbasaur returns a grass/poison team member
func Bulbasaur() *pokemon.Member {
	return &pokemon.Member{
		ID:        1,
		Name:      "bulbasaur",
		SpriteURL: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/1.png",
		Types:     []pokemon.Type{pokemon.TypeGrass, pokemon.TypePoison},
		Stats: map[string]int{
			pokemon.StatHP:             45,
			pokemon.StatAttack:         49,
			pokemon.StatDefense:        49,
			pokemon.StatSpecialAttack:  65,
			pokemon.StatSpecialDefense: 65,
			pokemon.StatSpeed:          45,
		},
	}
}

// Charmander returns a fire team member
func Charmander() *pokemon.Member {
	return &pokemon.Member{
		ID:    4,
		Name:  "charmander",
		Types: []pokemon.Type{pokemon.TypeFire},
		Stats: map[string]int{
			pokemon.StatHP:    39,
			pokemon.StatSpeed: 65,
		},
	}
}

// Squirtle returns a water team member
func Squirtle() *pokemon.Member {
	return &pokemon.Member{
		ID:    7,
		Name:  "squirtle",
		Types: []pokemon.Type{pokemon.TypeWater},
		Stats: map[string]int{
			pokemon.StatHP:    44,
			pokemon.StatSpeed: 43,
		},
	}
}

// Clefairy returns a member with its current fairy typing
func Clefairy() *pokemon.Member {
	return &pokemon.Member{
		ID:    35,
		Name:  "clefairy",
		Types: []pokemon.Type{pokemon.TypeFairy},
	}
}

// StarterTeam places the three starters with empty slots between them
func StarterTeam() pokemon.Team {
	return pokemon.TeamFromSlice([]*pokemon.Member{
		Bulbasaur(),
		nil,
		Charmander(),
		nil,
		Squirtle(),
	})
}
