package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:         "login [username]",
		Short:       "Authenticate and start a session",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipAuthAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return fmt.Errorf("password required (-p)")
			}

			user, err := appCtx.auth.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			token, err := appCtx.tokens.Generate(user)
			if err != nil {
				return err
			}
			if err := appCtx.session.Save(token); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "End the current session",
		Annotations: map[string]string{skipAuthAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.session.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func passwdCmd() *cobra.Command {
	var newPassword string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if newPassword == "" {
				return fmt.Errorf("new password required (--new)")
			}

			if err := appCtx.auth.ChangePassword(cmd.Context(), currentUser.UserID, newPassword); err != nil {
				return err
			}

			fmt.Println("Password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&newPassword, "new", "", "new password")
	return cmd
}
