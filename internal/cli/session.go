package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Admin login and view selection",
	}

	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionLoginCmd())
	cmd.AddCommand(newSessionLogoutCmd())
	cmd.AddCommand(newSessionViewCmd())

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the login flag, current view and rendered screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as the admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" || pass == "" {
				return fmt.Errorf("--user and --pass are required")
			}

			req := map[string]string{"username": user, "password": pass}
			var result Session
			if err := client.Post("/api/v1/session/login", req, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Admin username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newSessionLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log the admin out",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Post("/api/v1/session/logout", nil, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "view <player|admin|login>",
		Short:     "Switch the current view",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"player", "admin", "login"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"view": args[0]}
			var result Session
			if err := client.Put("/api/v1/session/view", req, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}
