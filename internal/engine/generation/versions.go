package generation

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

// versionGroups maps each version group to the generation it belongs to
var versionGroups = map[string]pokemon.Generation{
	"red-blue":                            1,
	"yellow":                              1,
	"gold-silver":                         2,
	"crystal":                             2,
	"ruby-sapphire":                       3,
	"emerald":                             3,
	"firered-leafgreen":                   3,
	"colosseum":                           3,
	"xd":                                  3,
	"diamond-pearl":                       4,
	"platinum":                            4,
	"heartgold-soulsilver":                4,
	"black-white":                         5,
	"black-2-white-2":                     5,
	"x-y":                                 6,
	"omega-ruby-alpha-sapphire":           6,
	"sun-moon":                            7,
	"ultra-sun-ultra-moon":                7,
	"lets-go-pikachu-lets-go-eevee":       7,
	"sword-shield":                        8,
	"the-isle-of-armor":                   8,
	"the-crown-tundra":                    8,
	"brilliant-diamond-and-shining-pearl": 8,
	"legends-arceus":                      8,
	"scarlet-violet":                      9,
	"the-teal-mask":                       9,
	"the-indigo-disk":                     9,
}

// versions maps individual game versions to their version group
var versions = map[string]string{
	"red":               "red-blue",
	"blue":              "red-blue",
	"yellow":            "yellow",
	"gold":              "gold-silver",
	"silver":            "gold-silver",
	"crystal":           "crystal",
	"ruby":              "ruby-sapphire",
	"sapphire":          "ruby-sapphire",
	"emerald":           "emerald",
	"firered":           "firered-leafgreen",
	"leafgreen":         "firered-leafgreen",
	"colosseum":         "colosseum",
	"xd":                "xd",
	"diamond":           "diamond-pearl",
	"pearl":             "diamond-pearl",
	"platinum":          "platinum",
	"heartgold":         "heartgold-soulsilver",
	"soulsilver":        "heartgold-soulsilver",
	"black":             "black-white",
	"white":             "black-white",
	"black-2":           "black-2-white-2",
	"white-2":           "black-2-white-2",
	"x":                 "x-y",
	"y":                 "x-y",
	"omega-ruby":        "omega-ruby-alpha-sapphire",
	"alpha-sapphire":    "omega-ruby-alpha-sapphire",
	"sun":               "sun-moon",
	"moon":              "sun-moon",
	"ultra-sun":         "ultra-sun-ultra-moon",
	"ultra-moon":        "ultra-sun-ultra-moon",
	"lets-go-pikachu":   "lets-go-pikachu-lets-go-eevee",
	"lets-go-eevee":     "lets-go-pikachu-lets-go-eevee",
	"sword":             "sword-shield",
	"shield":            "sword-shield",
	"brilliant-diamond": "brilliant-diamond-and-shining-pearl",
	"shining-pearl":     "brilliant-diamond-and-shining-pearl",
	"legends-arceus":    "legends-arceus",
	"scarlet":           "scarlet-violet",
	"violet":            "scarlet-violet",
}

// triggerIntroduced lists evolution triggers that arrived after generation 1.
// Triggers missing from the table are treated as always available.
var triggerIntroduced = map[string]pokemon.Generation{
	"shed":                   3,
	"spin":                   8,
	"tower-of-darkness":      8,
	"tower-of-waters":        8,
	"three-critical-hits":    8,
	"take-damage":            8,
	"agile-style-move":       8,
	"strong-style-move":      8,
	"recoil-damage":          8,
	"use-move":               9,
	"three-defeated-bisharp": 9,
	"gimmighoul-coins":       9,
}

// VersionGroupGeneration returns the generation of a version group
func VersionGroupGeneration(versionGroup string) (pokemon.Generation, bool) {
	gen, ok := versionGroups[versionGroup]
	return gen, ok
}

// VersionGroupInScope reports whether a version group belongs to the generation.
// Unknown groups are never in scope.
func (p *Policy) VersionGroupInScope(versionGroup string, gen pokemon.Generation) bool {
	g, ok := versionGroups[versionGroup]
	return ok && g == gen
}

// VersionInScope reports whether a game version belongs to the generation
func (p *Policy) VersionInScope(version string, gen pokemon.Generation) bool {
	group, ok := versions[version]
	if !ok {
		return false
	}
	return p.VersionGroupInScope(group, gen)
}

// Versions returns the game versions of a generation, sorted by name
func (p *Policy) Versions(gen pokemon.Generation) []string {
	var out []string
	for version, group := range versions {
		if versionGroups[group] == gen {
			out = append(out, version)
		}
	}
	slices.Sort(out)
	return out
}

// VersionKey normalizes a version name or display label for comparison, so
// "FireRed", "firered" and "Let's Go, Pikachu!" match their API slugs.
func VersionKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// versionsByKey indexes version slugs by their VersionKey
var versionsByKey = indexVersionKeys()

func indexVersionKeys() map[string]string {
	out := make(map[string]string, len(versions))
	for version := range versions {
		out[VersionKey(version)] = version
	}
	return out
}

// VersionForLabel resolves a display label to its version slug
func VersionForLabel(label string) (string, bool) {
	version, ok := versionsByKey[VersionKey(label)]
	return version, ok
}

// TriggerAvailable reports whether an evolution trigger exists in the generation
func (p *Policy) TriggerAvailable(trigger string, gen pokemon.Generation) bool {
	introduced, ok := triggerIntroduced[trigger]
	if !ok {
		return true
	}
	return introduced <= gen
}
