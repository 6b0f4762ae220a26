// Package main is the entry point for the poketeam API server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/poketeam-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "poketeam-api",
	Short: "Pokémon team builder API",
	Long: `poketeam-api serves team type coverage, matchup recommendations, pokemon lookups,
saved teams and builder snapshots over gRPC and HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
