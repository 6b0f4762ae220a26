package pokeapi

// Raw PokeAPI response shapes. Only the fields the service reads are declared;
// pointers mark values PokeAPI returns as null.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type resourceList struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type pokemonResponse struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Species namedResource `json:"species"`
	Types   []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
	} `json:"abilities"`
	Moves []struct {
		Move                namedResource `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int           `json:"level_learned_at"`
			MoveLearnMethod namedResource `json:"move_learn_method"`
			VersionGroup    namedResource `json:"version_group"`
		} `json:"version_group_details"`
	} `json:"moves"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
}

type typeResponse struct {
	Name            string `json:"name"`
	DamageRelations struct {
		DoubleDamageTo []namedResource `json:"double_damage_to"`
		HalfDamageTo   []namedResource `json:"half_damage_to"`
		NoDamageTo     []namedResource `json:"no_damage_to"`
	} `json:"damage_relations"`
}

type speciesResponse struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	EvolutionChain *namedResource `json:"evolution_chain"`
}

type evolutionChainResponse struct {
	ID    int           `json:"id"`
	Chain chainLinkJSON `json:"chain"`
}

type chainLinkJSON struct {
	Species          namedResource          `json:"species"`
	EvolutionDetails []evolutionDetailsJSON `json:"evolution_details"`
	EvolvesTo        []chainLinkJSON        `json:"evolves_to"`
}

type evolutionDetailsJSON struct {
	Trigger      *namedResource `json:"trigger"`
	MinLevel     *int           `json:"min_level"`
	Item         *namedResource `json:"item"`
	HeldItem     *namedResource `json:"held_item"`
	KnownMove    *namedResource `json:"known_move"`
	MinHappiness *int           `json:"min_happiness"`
	TimeOfDay    string         `json:"time_of_day"`
	Location     *namedResource `json:"location"`
}

type encounterJSON struct {
	LocationArea   namedResource `json:"location_area"`
	VersionDetails []struct {
		MaxChance int           `json:"max_chance"`
		Version   namedResource `json:"version"`
	} `json:"version_details"`
}

type effectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    namedResource `json:"language"`
}

type abilityResponse struct {
	Name          string        `json:"name"`
	EffectEntries []effectEntry `json:"effect_entries"`
}

type moveResponse struct {
	Name          string         `json:"name"`
	Type          namedResource  `json:"type"`
	DamageClass   *namedResource `json:"damage_class"`
	Power         *int           `json:"power"`
	Accuracy      *int           `json:"accuracy"`
	PP            *int           `json:"pp"`
	EffectChance  *int           `json:"effect_chance"`
	EffectEntries []effectEntry  `json:"effect_entries"`
}
