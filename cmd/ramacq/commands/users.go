package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ramacq/internal/domain"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage workstation accounts",
	}
	cmd.AddCommand(usersListCmd(), usersAddCmd(), usersRemoveCmd())
	return cmd
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, record := range wire.Auth.ListUsers() {
				access := ""
				if record.FullAccess {
					access = " [full access]"
				}
				fmt.Printf("%-16s %-24s %s%s\n", record.Username, record.Name, record.Role, access)
			}
			return nil
		},
	}
}

func usersAddCmd() *cobra.Command {
	var (
		name       string
		role       string
		password   string
		fullAccess bool
	)
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create or update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.Auth.UpsertUser(domain.Upsert{
				Username:   args[0],
				Name:       name,
				Role:       domain.Role(role),
				Password:   password,
				FullAccess: fullAccess,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Saved account %q\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to username)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleViewer), "Admin|Investigator|Viewer|WarrantOfficer")
	cmd.Flags().StringVar(&password, "password", "", "password (required for new accounts)")
	cmd.Flags().BoolVar(&fullAccess, "full-access", false, "grant unrestricted operation")
	return cmd
}

func usersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <username>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Auth.DeleteUser(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted account %q\n", args[0])
			return nil
		},
	}
}
