package typechart

import (
	p "github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// fallbackRelations is the mainline type chart (generation 6 onward)
var fallbackRelations = []p.TypeRelations{
	{
		Type:         p.TypeNormal,
		HalfDamageTo: []p.Type{p.TypeRock, p.TypeSteel},
		NoDamageTo:   []p.Type{p.TypeGhost},
	},
	{
		Type:           p.TypeFire,
		DoubleDamageTo: []p.Type{p.TypeGrass, p.TypeIce, p.TypeBug, p.TypeSteel},
		HalfDamageTo:   []p.Type{p.TypeFire, p.TypeWater, p.TypeRock, p.TypeDragon},
	},
	{
		Type:           p.TypeWater,
		DoubleDamageTo: []p.Type{p.TypeFire, p.TypeGround, p.TypeRock},
		HalfDamageTo:   []p.Type{p.TypeWater, p.TypeGrass, p.TypeDragon},
	},
	{
		Type:           p.TypeElectric,
		DoubleDamageTo: []p.Type{p.TypeWater, p.TypeFlying},
		HalfDamageTo:   []p.Type{p.TypeElectric, p.TypeGrass, p.TypeDragon},
		NoDamageTo:     []p.Type{p.TypeGround},
	},
	{
		Type:           p.TypeGrass,
		DoubleDamageTo: []p.Type{p.TypeWater, p.TypeGround, p.TypeRock},
		HalfDamageTo: []p.Type{
			p.TypeFire, p.TypeGrass, p.TypePoison, p.TypeFlying,
			p.TypeBug, p.TypeDragon, p.TypeSteel,
		},
	},
	{
		Type:           p.TypeIce,
		DoubleDamageTo: []p.Type{p.TypeGrass, p.TypeGround, p.TypeFlying, p.TypeDragon},
		HalfDamageTo:   []p.Type{p.TypeFire, p.TypeWater, p.TypeIce, p.TypeSteel},
	},
	{
		Type:           p.TypeFighting,
		DoubleDamageTo: []p.Type{p.TypeNormal, p.TypeIce, p.TypeRock, p.TypeDark, p.TypeSteel},
		HalfDamageTo:   []p.Type{p.TypePoison, p.TypeFlying, p.TypePsychic, p.TypeBug, p.TypeFairy},
		NoDamageTo:     []p.Type{p.TypeGhost},
	},
	{
		Type:           p.TypePoison,
		DoubleDamageTo: []p.Type{p.TypeGrass, p.TypeFairy},
		HalfDamageTo:   []p.Type{p.TypePoison, p.TypeGround, p.TypeRock, p.TypeGhost},
		NoDamageTo:     []p.Type{p.TypeSteel},
	},
	{
		Type:           p.TypeGround,
		DoubleDamageTo: []p.Type{p.TypeFire, p.TypeElectric, p.TypePoison, p.TypeRock, p.TypeSteel},
		HalfDamageTo:   []p.Type{p.TypeGrass, p.TypeBug},
		NoDamageTo:     []p.Type{p.TypeFlying},
	},
	{
		Type:           p.TypeFlying,
		DoubleDamageTo: []p.Type{p.TypeGrass, p.TypeFighting, p.TypeBug},
		HalfDamageTo:   []p.Type{p.TypeElectric, p.TypeRock, p.TypeSteel},
	},
	{
		Type:           p.TypePsychic,
		DoubleDamageTo: []p.Type{p.TypeFighting, p.TypePoison},
		HalfDamageTo:   []p.Type{p.TypePsychic, p.TypeSteel},
		NoDamageTo:     []p.Type{p.TypeDark},
	},
	{
		Type:           p.TypeBug,
		DoubleDamageTo: []p.Type{p.TypeGrass, p.TypePsychic, p.TypeDark},
		HalfDamageTo: []p.Type{
			p.TypeFire, p.TypeFighting, p.TypePoison, p.TypeFlying,
			p.TypeGhost, p.TypeSteel, p.TypeFairy,
		},
	},
	{
		Type:           p.TypeRock,
		DoubleDamageTo: []p.Type{p.TypeFire, p.TypeIce, p.TypeFlying, p.TypeBug},
		HalfDamageTo:   []p.Type{p.TypeFighting, p.TypeGround, p.TypeSteel},
	},
	{
		Type:           p.TypeGhost,
		DoubleDamageTo: []p.Type{p.TypePsychic, p.TypeGhost},
		HalfDamageTo:   []p.Type{p.TypeDark},
		NoDamageTo:     []p.Type{p.TypeNormal},
	},
	{
		Type:           p.TypeDragon,
		DoubleDamageTo: []p.Type{p.TypeDragon},
		HalfDamageTo:   []p.Type{p.TypeSteel},
		NoDamageTo:     []p.Type{p.TypeFairy},
	},
	{
		Type:           p.TypeDark,
		DoubleDamageTo: []p.Type{p.TypePsychic, p.TypeGhost},
		HalfDamageTo:   []p.Type{p.TypeFighting, p.TypeDark, p.TypeFairy},
	},
	{
		Type:           p.TypeSteel,
		DoubleDamageTo: []p.Type{p.TypeIce, p.TypeRock, p.TypeFairy},
		HalfDamageTo:   []p.Type{p.TypeFire, p.TypeWater, p.TypeElectric, p.TypeSteel},
	},
	{
		Type:           p.TypeFairy,
		DoubleDamageTo: []p.Type{p.TypeFighting, p.TypeDragon, p.TypeDark},
		HalfDamageTo:   []p.Type{p.TypeFire, p.TypePoison, p.TypeSteel},
	},
}

// Fallback returns a fresh copy of the built-in chart
func Fallback() *Chart {
	c := FromRelations(fallbackRelations)
	c.fallback = true
	return c
}

// FallbackRelations returns a copy of the built-in relations
func FallbackRelations() []p.TypeRelations {
	out := make([]p.TypeRelations, len(fallbackRelations))
	copy(out, fallbackRelations)
	return out
}
