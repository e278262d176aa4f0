package cmd

import (
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user <name>",
	Short: "Print a user specification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		user, err := p4.User(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return emit(user)
	},
}

var clientCmd = &cobra.Command{
	Use:   "client <name>",
	Short: "Print a client workspace specification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		client, err := p4.Client(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return emit(client)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(clientCmd)
}
