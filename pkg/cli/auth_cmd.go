package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodigoDemente/lactance-tracker-back/internal/auth"
	"github.com/CodigoDemente/lactance-tracker-back/internal/db/repository"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication helpers",
	}

	cmd.AddCommand(newAuthTokenCmd())
	return cmd
}

func newAuthTokenCmd() *cobra.Command {
	var (
		username string
		secret   string
		expires  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an existing user",
		Long:  "Issue an HS256 bearer token for development and testing. The secret must match the server's JWT_SECRET.",
		Example: `  # Issue a 24h token for alice with the default dev secret
  lactance auth token --username alice --secret dev-secret-change-in-production

  # Issue a short-lived token
  lactance auth token --username alice --secret mysecret --expires 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeDB, readDB, cleanup, err := openPools(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			users := repository.NewUserRepo(writeDB, readDB)
			user, err := users.GetByUsername(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("lookup user %q: %w", username, err)
			}

			tokens := auth.NewTokenManager([]byte(secret), expires)
			signed, err := tokens.Issue(user.Public())
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to issue the token for")
	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (HS256)")
	cmd.Flags().DurationVar(&expires, "expires", 24*time.Hour, "Token expiry duration")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}
