package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// login <username> <password>: verify credentials and print the operator identity.
func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Verify operator credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := wire.Auth.Authenticate(args[0], args[1])
			if !ok {
				return fmt.Errorf("authentication failed")
			}
			wire.Audit.Record(user.ID, "login", "", nil)
			fmt.Printf("Authenticated as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
}
