package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artdistrict/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd signs in and stores the session locally
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to ArtDistrictUSA",
	Long: `Authenticates against the marketplace and stores the token pair in
~/.artdistrict/session.json for later commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		password := loginPassword
		reader := bufio.NewReader(cmd.InOrStdin())

		if email == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}
		if email == "" || password == "" {
			return fmt.Errorf("email and password are required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout())
		defer cancel()

		resp, err := newClient().Login(ctx, email, password)
		if err != nil {
			return err
		}
		if err := sessions.Save(session.Session{
			AccessToken:  resp.Tokens.AccessToken,
			RefreshToken: resp.Tokens.RefreshToken,
			User:         &resp.User,
		}); err != nil {
			return err
		}

		logger.Info("signed in", zap.String("user", resp.User.ID))
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", resp.User.Email)
		return nil
	},
}

// logoutCmd invalidates the server session and clears local state
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if refresh := sessions.RefreshToken(); refresh != "" {
			ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout())
			defer cancel()
			// Best effort: the local session is cleared either way.
			if err := newClient().Logout(ctx, refresh); err != nil {
				logger.Warn("server logout failed", zap.Error(err))
			}
		}
		if err := sessions.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

// whoamiCmd shows the current account
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout())
		defer cancel()

		user, err := newClient().CurrentUser(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Email:  %s\n", user.Email)
		fmt.Fprintf(out, "Name:   %s %s\n", user.FirstName, user.LastName)
		fmt.Fprintf(out, "Role:   %s\n", user.Role)
		if user.IsArtist {
			fmt.Fprintln(out, "Artist: yes")
		}
		return nil
	},
}

// payoutCmd reports the Stripe Connect payout account state
var payoutCmd = &cobra.Command{
	Use:   "payout-status",
	Short: "Show the payout account status",
	Long: `Shows whether the artist's Stripe Connect payout account exists and is
fully verified. Run 'artdistrict onboard' to set one up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout())
		defer cancel()

		status, err := newClient().PayoutStatus(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Account created:    %s\n", yesNo(status.HasAccount))
		fmt.Fprintf(out, "Details submitted:  %s\n", yesNo(status.DetailsSubmitted))
		fmt.Fprintf(out, "Charges enabled:    %s\n", yesNo(status.ChargesEnabled))
		fmt.Fprintf(out, "Payouts enabled:    %s\n", yesNo(status.PayoutsEnabled))
		return nil
	},
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
