package pokeapi

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

const apiPathMarker = "/api/v2/"

// resourcePath turns an absolute PokeAPI URL into a path relative to the base URL
func resourcePath(url string) string {
	if i := strings.Index(url, apiPathMarker); i >= 0 {
		return strings.Trim(url[i+len(apiPathMarker):], "/")
	}
	return strings.Trim(url, "/")
}

// resourceID extracts the trailing numeric id of a resource URL, or 0
func resourceID(url string) int {
	parts := strings.Split(strings.Trim(url, "/"), "/")
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return id
}

func nameOf(r *namedResource) string {
	if r == nil {
		return ""
	}
	return r.Name
}

func intOf(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func typeNames(resources []namedResource) []pokemon.Type {
	names := make([]string, len(resources))
	for i, r := range resources {
		names[i] = r.Name
	}
	return pokemon.ParseTypes(names)
}

func convertPokemon(resp *pokemonResponse) *pokemon.Species {
	species := &pokemon.Species{
		ID:        resp.ID,
		Name:      resp.Name,
		SpeciesID: resourceID(resp.Species.URL),
		Stats:     make(map[string]int, len(resp.Stats)),
	}
	if species.SpeciesID == 0 {
		species.SpeciesID = resp.ID
	}

	// types arrive ordered by slot
	typeRefs := make([]namedResource, 0, len(resp.Types))
	for _, t := range resp.Types {
		typeRefs = append(typeRefs, t.Type)
	}
	species.Types = typeNames(typeRefs)

	for _, s := range resp.Stats {
		species.Stats[s.Stat.Name] = s.BaseStat
	}
	for _, a := range resp.Abilities {
		species.Abilities = append(species.Abilities, pokemon.AbilityRef{
			Name:     a.Ability.Name,
			IsHidden: a.IsHidden,
		})
	}
	for _, m := range resp.Moves {
		for _, d := range m.VersionGroupDetails {
			species.Moves = append(species.Moves, pokemon.MoveLearn{
				Move:         m.Move.Name,
				VersionGroup: d.VersionGroup.Name,
				Method:       d.MoveLearnMethod.Name,
				Level:        d.LevelLearnedAt,
			})
		}
	}
	if resp.Sprites.FrontDefault != nil {
		species.SpriteURL = *resp.Sprites.FrontDefault
	}
	return species
}

func convertTypeRelations(resp *typeResponse) *pokemon.TypeRelations {
	return &pokemon.TypeRelations{
		Type:           pokemon.Type(resp.Name),
		DoubleDamageTo: typeNames(resp.DamageRelations.DoubleDamageTo),
		HalfDamageTo:   typeNames(resp.DamageRelations.HalfDamageTo),
		NoDamageTo:     typeNames(resp.DamageRelations.NoDamageTo),
	}
}

func convertChainLink(link *chainLinkJSON) *pokemon.EvolutionNode {
	node := &pokemon.EvolutionNode{
		Species:   link.Species.Name,
		SpeciesID: resourceID(link.Species.URL),
	}
	for _, d := range link.EvolutionDetails {
		node.Details = append(node.Details, pokemon.EvolutionDetail{
			Trigger:      nameOf(d.Trigger),
			MinLevel:     intOf(d.MinLevel),
			Item:         nameOf(d.Item),
			HeldItem:     nameOf(d.HeldItem),
			KnownMove:    nameOf(d.KnownMove),
			MinHappiness: intOf(d.MinHappiness),
			TimeOfDay:    d.TimeOfDay,
			Location:     nameOf(d.Location),
		})
	}
	for i := range link.EvolvesTo {
		node.EvolvesTo = append(node.EvolvesTo, convertChainLink(&link.EvolvesTo[i]))
	}
	return node
}

func convertEncounters(resp []encounterJSON) []pokemon.LocationEncounter {
	encounters := make([]pokemon.LocationEncounter, 0, len(resp))
	for _, e := range resp {
		for _, v := range e.VersionDetails {
			encounters = append(encounters, pokemon.LocationEncounter{
				Location:  e.LocationArea.Name,
				Version:   v.Version.Name,
				MaxChance: v.MaxChance,
			})
		}
	}
	return encounters
}

// englishEffect prefers the short English effect text
func englishEffect(entries []effectEntry) string {
	for _, e := range entries {
		if e.Language.Name != "en" {
			continue
		}
		if e.ShortEffect != "" {
			return e.ShortEffect
		}
		return e.Effect
	}
	return ""
}

func convertAbility(resp *abilityResponse) *pokemon.AbilityDetail {
	return &pokemon.AbilityDetail{
		Name:   resp.Name,
		Effect: englishEffect(resp.EffectEntries),
	}
}

func convertMove(resp *moveResponse) *pokemon.MoveDetail {
	effect := englishEffect(resp.EffectEntries)
	if resp.EffectChance != nil {
		effect = strings.ReplaceAll(effect, "$effect_chance", strconv.Itoa(*resp.EffectChance))
	}
	return &pokemon.MoveDetail{
		Name:        resp.Name,
		Type:        pokemon.Type(resp.Type.Name),
		DamageClass: nameOf(resp.DamageClass),
		Power:       resp.Power,
		Accuracy:    resp.Accuracy,
		PP:          resp.PP,
		Effect:      effect,
	}
}
