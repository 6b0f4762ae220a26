package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
)

var (
	teamName string
	revision int64
)

var saveTeamCmd = &cobra.Command{
	Use:   "save-team [pokemon...]",
	Short: "Save a team for the signed-in user",
	Args:  cobra.RangeArgs(1, 6),
	RunE:  runSaveTeam,
}

var listTeamsCmd = &cobra.Command{
	Use:   "list-teams",
	Short: "List the signed-in user's teams, newest first",
	RunE:  runListTeams,
}

var deleteTeamCmd = &cobra.Command{
	Use:   "delete-team <team-id>",
	Short: "Delete one saved team",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteTeam,
}

var saveSnapshotCmd = &cobra.Command{
	Use:   "save-snapshot <key> [pokemon...]",
	Short: "Save builder state under a key",
	Args:  cobra.RangeArgs(1, 7),
	RunE:  runSaveSnapshot,
}

var loadSnapshotCmd = &cobra.Command{
	Use:   "load-snapshot <key>",
	Short: "Restore builder state saved under a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadSnapshot,
}

func init() {
	saveTeamCmd.Flags().StringVar(&teamName, "name", "", "Team name")
	saveSnapshotCmd.Flags().Int64Var(&revision, "revision", 1, "Revision, must grow with every save")
}

func describeTeam(team pokemon.Team) string {
	names := make([]string, 0, pokemon.TeamSize)
	for i := range team {
		names = append(names, memberName(team, i))
	}
	return strings.Join(names, ", ")
}

func runSaveTeam(_ *cobra.Command, args []string) error {
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

	resp, err := client.SaveTeam(ctx, &v1alpha1.SaveTeamRequest{
		Name:       teamName,
		Team:       team,
		Generation: generation,
	})
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Saved team %s\n", resp.Team.ID)
	return nil
}

func runListTeams(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListTeams(ctx, &v1alpha1.ListTeamsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Found %d teams:\n\n", len(resp.Teams))
	for _, t := range resp.Teams {
		fmt.Printf("%s %q (generation %d, %s)\n", t.ID, t.Name, t.Generation, t.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("   %s\n", describeTeam(t.Team))
	}
	return nil
}

func runDeleteTeam(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := client.DeleteTeam(ctx, &v1alpha1.DeleteTeamRequest{TeamID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	fmt.Printf("Deleted team %s\n", args[0])
	return nil
}

func runSaveSnapshot(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	team, err := teamFromNames(ctx, client, args[1:])
	if err != nil {
		return err
	}

	resp, err := client.SaveSnapshot(ctx, &v1alpha1.SaveSnapshotRequest{
		Key:        args[0],
		Team:       team,
		Generation: generation,
		Revision:   revision,
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Saved %s at revision %d\n", resp.Snapshot.Key, resp.Snapshot.Revision)
	return nil
}

func runLoadSnapshot(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.LoadSnapshot(ctx, &v1alpha1.LoadSnapshotRequest{Key: args[0]})
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if !resp.Found {
		fmt.Printf("Nothing saved under %s, starting empty at generation %d\n", args[0], resp.Snapshot.Generation)
		return nil
	}
	fmt.Printf("%s revision %d, generation %d\n", resp.Snapshot.Key, resp.Snapshot.Revision, resp.Snapshot.Generation)
	fmt.Printf("   %s\n", describeTeam(resp.Snapshot.Team))
	return nil
}
