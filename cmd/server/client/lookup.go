package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
)

var (
	speciesPrefix string
	speciesLimit  int
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <pokemon>",
	Short: "Look up a pokemon as it was in a generation",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var moveCmd = &cobra.Command{
	Use:   "move <move>",
	Short: "Show a move's battle data",
	Args:  cobra.ExactArgs(1),
	RunE:  runMove,
}

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "Search species names",
	RunE:  runSpecies,
}

func init() {
	speciesCmd.Flags().StringVar(&speciesPrefix, "prefix", "", "Name prefix")
	speciesCmd.Flags().IntVar(&speciesLimit, "limit", 20, "Maximum names to list, 0 for all")
}

func runLookup(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.LookupPokemon(ctx, &v1alpha1.LookupPokemonRequest{Name: args[0], Generation: generation})
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", args[0], err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	p := resp.Pokemon
	fmt.Printf("#%d %s (generation %d)\n", p.SpeciesID, p.Name, p.Generation)
	fmt.Printf("   Types: %s\n", strings.Join(p.Types, "/"))

	if len(p.Abilities) > 0 {
		fmt.Println("   Abilities:")
		for _, a := range p.Abilities {
			hidden := ""
			if a.Hidden {
				hidden = " (hidden)"
			}
			fmt.Printf("     - %s%s: %s\n", a.Name, hidden, a.Effect)
		}
	}

	if len(p.Evolution) > 0 {
		fmt.Println("   Evolution:")
		for _, step := range p.Evolution {
			fmt.Printf("     - %s -> %s", step.From, step.To)
			if len(step.Requirements) > 0 {
				fmt.Printf(" (%s)", strings.Join(step.Requirements, " or "))
			}
			fmt.Println()
		}
	}

	if len(p.Locations) > 0 {
		fmt.Printf("   Locations (%s):\n", p.LocationSource)
		for _, l := range p.Locations {
			fmt.Printf("     - %s: %s\n", l.Version, l.Location)
		}
	}

	fmt.Printf("   Moves: %d learnable\n", len(p.Moves))
	return nil
}

func runMove(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.LookupMove(ctx, &v1alpha1.LookupMoveRequest{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to look up move %s: %w", args[0], err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	m := resp.Move
	fmt.Printf("%s (%s, %s)\n", m.Name, m.Type, m.DamageClass)
	fmt.Printf("   Power: %s  Accuracy: %s  PP: %s\n", orDash(m.Power), orDash(m.Accuracy), orDash(m.PP))
	if m.Effect != "" {
		fmt.Printf("   %s\n", m.Effect)
	}
	return nil
}

func orDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func runSpecies(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListSpecies(ctx, &v1alpha1.ListSpeciesRequest{Prefix: speciesPrefix, Limit: speciesLimit})
	if err != nil {
		return fmt.Errorf("failed to list species: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	for _, name := range resp.Names {
		fmt.Println(name)
	}
	return nil
}
