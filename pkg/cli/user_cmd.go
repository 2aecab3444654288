package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodigoDemente/lactance-tracker-back/internal/auth"
	"github.com/CodigoDemente/lactance-tracker-back/internal/db/repository"
	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
	"github.com/CodigoDemente/lactance-tracker-back/internal/service"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(newUserCreateCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var (
		username string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Example: `  # Create a user
  lactance user create --username alice --email alice@example.com --password hunter2pass`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeDB, readDB, cleanup, err := openPools(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			users := service.NewUserService(
				repository.NewUserRepo(writeDB, readDB),
				auth.NewPasswordHasher(),
			)

			user, err := users.Register(cmd.Context(), domain.CreateUserRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (4-20 chars: letters, digits, _ . -)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (8-128 chars)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
