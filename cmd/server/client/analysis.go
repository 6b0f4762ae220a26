package client

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
)

var (
	opponentName  string
	opponentTypes []string
)

var coverageCmd = &cobra.Command{
	Use:   "coverage [pokemon...]",
	Short: "Show a team's type coverage",
	Long:  `Look up up to six pokemon ("-" for an empty slot) and show how the team answers every type.`,
	Args:  cobra.RangeArgs(1, 6),
	RunE:  runCoverage,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [pokemon...]",
	Short: "Rank a team against an opponent",
	Args:  cobra.RangeArgs(1, 6),
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&opponentName, "opponent", "", "Opponent pokemon name")
	recommendCmd.Flags().StringSliceVar(&opponentTypes, "types", nil, "Opponent types, e.g. fire,flying")
}

func runCoverage(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	team, err := teamFromNames(ctx, client, args)
	if err != nil {
		return err
	}

	log.Printf("Requesting coverage from %s...", serverAddr)

	resp, err := client.GetCoverage(ctx, &v1alpha1.GetCoverageRequest{Team: team, Generation: generation})
	if err != nil {
		return fmt.Errorf("failed to get coverage: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Generation %d coverage", resp.Generation)
	if resp.FallbackChart {
		fmt.Print(" (built-in type chart)")
	}
	fmt.Print(":\n\n")

	for _, entry := range resp.Entries {
		fmt.Printf("%-9s %-7s", entry.Type, entry.Level)
		for _, m := range entry.Members {
			fmt.Printf("  %s: %s;", m.Name, strings.Join(m.Reasons, ", "))
		}
		fmt.Println()
	}

	fmt.Println("\nDefensive summary:")
	for _, d := range resp.Defensive {
		marker := ""
		if d.Exposed {
			marker = "  ⚠️"
		}
		fmt.Printf("%-9s weak %d, resist %d, immune %d%s\n", d.Type, d.Weak, d.Resistant, d.Immune, marker)
	}
	return nil
}

func runRecommend(_ *cobra.Command, args []string) error {
	if opponentName == "" && len(opponentTypes) == 0 {
		return fmt.Errorf("either --opponent or --types is required")
	}

	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	team, err := teamFromNames(ctx, client, args)
	if err != nil {
		return err
	}

	resp, err := client.Recommend(ctx, &v1alpha1.RecommendRequest{
		Team:          team,
		OpponentName:  opponentName,
		OpponentTypes: opponentTypes,
		Generation:    generation,
	})
	if err != nil {
		return fmt.Errorf("failed to get recommendations: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Against %s (generation %d):\n\n", strings.Join(resp.OpponentTypes, "/"), resp.Generation)
	for i, r := range resp.Recommendations {
		fmt.Printf("%d. %s (slot %d) score %d\n", i+1, memberName(team, r.Slot), r.Slot+1, r.Score)
		for _, reason := range r.Reasons {
			fmt.Printf("   - %s\n", reason)
		}
	}
	return nil
}
