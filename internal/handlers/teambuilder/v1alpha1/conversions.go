package v1alpha1

import (
	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	"github.com/KirkDiggler/poketeam-api/internal/engine/coverage"
	"github.com/KirkDiggler/poketeam-api/internal/engine/matchup"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/snapshot"
)

func typeNames(types []pokemon.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

func convertCoverageEntries(entries []*coverage.Entry) []CoverageEntry {
	out := make([]CoverageEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		members := make([]CoverageMember, 0, len(e.Members))
		for _, m := range e.Members {
			members = append(members, CoverageMember{
				Slot:    m.Slot,
				Name:    m.Member.Name,
				Level:   m.Level.String(),
				Reasons: coverage.DisplayReasons(m.Reasons),
			})
		}
		out = append(out, CoverageEntry{
			Type:    e.Type.String(),
			Level:   e.Level.String(),
			Members: members,
		})
	}
	return out
}

func convertDefensive(summaries []coverage.Summary) []DefensiveSummary {
	out := make([]DefensiveSummary, len(summaries))
	for i, s := range summaries {
		out[i] = DefensiveSummary{
			Type:      s.Type.String(),
			Weak:      s.Weak,
			Resistant: s.Resistant,
			Immune:    s.Immune,
			Exposed:   s.Exposed(),
		}
	}
	return out
}

func convertScores(scores []matchup.Score) []Recommendation {
	out := make([]Recommendation, len(scores))
	for i, s := range scores {
		out[i] = Recommendation{
			Slot:    s.Slot,
			Name:    s.Member.Name,
			Score:   s.Score,
			Reasons: s.Reasons,
		}
	}
	return out
}

func convertPokemon(d *teambuilder.PokemonDetail) *Pokemon {
	if d == nil {
		return nil
	}

	p := &Pokemon{
		ID:             d.ID,
		SpeciesID:      d.SpeciesID,
		Name:           d.Name,
		Sprite:         d.SpriteURL,
		Generation:     int(d.Generation),
		Types:          typeNames(d.Types),
		Stats:          d.Stats,
		Abilities:      make([]Ability, len(d.Abilities)),
		Moves:          make([]Move, len(d.Moves)),
		Evolution:      make([]EvolutionStep, len(d.Evolution)),
		Locations:      make([]Location, len(d.Locations)),
		LocationSource: d.LocationSource,
	}
	for i, a := range d.Abilities {
		p.Abilities[i] = Ability{Name: a.Name, Hidden: a.IsHidden, Effect: a.Effect}
	}
	for i, m := range d.Moves {
		p.Moves[i] = Move{Name: m.Name, Methods: m.Methods, Level: m.Level}
	}
	for i, e := range d.Evolution {
		p.Evolution[i] = EvolutionStep{
			From:         e.From,
			To:           e.To,
			ToSpeciesID:  e.ToSpeciesID,
			Requirements: e.Requirements,
		}
	}
	for i, l := range d.Locations {
		p.Locations[i] = Location{Location: l.Location, Version: l.Version, MaxChance: l.MaxChance}
	}
	return p
}

func convertMove(m *pokemon.MoveDetail) *MoveDetail {
	if m == nil {
		return nil
	}
	return &MoveDetail{
		Name:        m.Name,
		Type:        m.Type.String(),
		DamageClass: m.DamageClass,
		Power:       m.Power,
		Accuracy:    m.Accuracy,
		PP:          m.PP,
		Effect:      m.Effect,
	}
}

func convertIdentity(identity *auth.Identity) *User {
	if identity == nil {
		return nil
	}
	return &User{
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		PhotoURL:    identity.PhotoURL,
	}
}

func convertTeamRecord(r *pokemon.TeamRecord) *SavedTeam {
	if r == nil {
		return nil
	}
	return &SavedTeam{
		ID:         r.ID,
		Name:       r.Name,
		Team:       r.Pokemon,
		Generation: int(r.Generation),
		CreatedAt:  r.CreatedAt,
	}
}

func convertSnapshot(s *snapshot.Snapshot) *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Key:        s.Key,
		Team:       s.Team,
		Generation: int(s.Generation),
		Revision:   s.Revision,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return out
}
