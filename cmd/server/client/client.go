// Package client provides test commands for the team builder gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
	generation int
	jsonOutput bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the team builder API",
	Long:  `Client commands exercise the team builder API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("POKETEAM_TOKEN"), "Session token from sign-in")
	ClientCmd.PersistentFlags().IntVar(&generation, "gen", 0, "Generation, 0 uses the server default")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	// Analysis
	ClientCmd.AddCommand(coverageCmd)
	ClientCmd.AddCommand(recommendCmd)

	// Lookup
	ClientCmd.AddCommand(lookupCmd)
	ClientCmd.AddCommand(moveCmd)
	ClientCmd.AddCommand(speciesCmd)

	// Accounts
	ClientCmd.AddCommand(signInCmd)
	ClientCmd.AddCommand(whoAmICmd)
	ClientCmd.AddCommand(signOutCmd)
	ClientCmd.AddCommand(deleteAccountCmd)

	// Saved teams and snapshots
	ClientCmd.AddCommand(saveTeamCmd)
	ClientCmd.AddCommand(listTeamsCmd)
	ClientCmd.AddCommand(deleteTeamCmd)
	ClientCmd.AddCommand(saveSnapshotCmd)
	ClientCmd.AddCommand(loadSnapshotCmd)
}

// createTeamBuilderClient creates a team builder service client
func createTeamBuilderClient() (v1alpha1.TeamBuilderServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewTeamBuilderServiceClient(conn), cleanup, nil
}

// requestContext applies the timeout and the bearer token when one is set
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}
	return ctx, cancel
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// teamFromNames looks each name up and builds a team. "-" leaves the slot empty.
func teamFromNames(ctx context.Context, client v1alpha1.TeamBuilderServiceClient, names []string) (pokemon.Team, error) {
	var team pokemon.Team
	if len(names) > pokemon.TeamSize {
		return team, fmt.Errorf("a team has at most %d members, got %d", pokemon.TeamSize, len(names))
	}

	for i, name := range names {
		if name == "-" {
			continue
		}
		resp, err := client.LookupPokemon(ctx, &v1alpha1.LookupPokemonRequest{
			Name:       strings.ToLower(name),
			Generation: generation,
		})
		if err != nil {
			return team, fmt.Errorf("failed to look up %s: %w", name, err)
		}
		p := resp.Pokemon
		team[i] = &pokemon.Member{
			ID:        p.ID,
			Name:      p.Name,
			SpriteURL: p.Sprite,
			Types:     pokemon.ParseTypes(p.Types),
			Stats:     p.Stats,
		}
	}
	return team, nil
}

func memberName(team pokemon.Team, slot int) string {
	if slot < 0 || slot >= len(team) || team[slot] == nil {
		return "(empty)"
	}
	return team[slot].Name
}
