package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
)

var idToken string

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Exchange an identity provider ID token for a session token",
	RunE:  runSignIn,
}

var whoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user behind --token",
	RunE:  runWhoAmI,
}

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "End the session behind --token",
	RunE:  runSignOut,
}

var deleteAccountCmd = &cobra.Command{
	Use:   "delete-account",
	Short: "Delete the signed-in user's saved teams and sessions",
	RunE:  runDeleteAccount,
}

func init() {
	signInCmd.Flags().StringVar(&idToken, "id-token", os.Getenv("POKETEAM_ID_TOKEN"), "OpenID Connect ID token")
}

func runSignIn(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if idToken == "" {
		return fmt.Errorf("--id-token or POKETEAM_ID_TOKEN is required")
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.SignIn(ctx, &v1alpha1.SignInRequest{IDToken: idToken})
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Signed in as %s until %s\n", resp.User.UserID, resp.ExpiresAt.Format("2006-01-02 15:04"))
	fmt.Printf("export POKETEAM_TOKEN=%s\n", resp.Token)
	return nil
}

func runWhoAmI(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetCurrentUser(ctx, &v1alpha1.GetCurrentUserRequest{})
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	if resp.User == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s %s %s\n", resp.User.UserID, resp.User.DisplayName, resp.User.Email)
	if resp.User.PhotoURL != "" {
		fmt.Printf("Photo: %s\n", resp.User.PhotoURL)
	}
	return nil
}

func runSignOut(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := client.SignOut(ctx, &v1alpha1.SignOutRequest{}); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	fmt.Println("Signed out")
	return nil
}

func runDeleteAccount(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTeamBuilderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.DeleteAccount(ctx, &v1alpha1.DeleteAccountRequest{})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	fmt.Printf("Account deleted, %d saved teams removed\n", resp.DeletedTeams)
	return nil
}
