package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goforce/goforce"
	"github.com/goforce/goforce/pkg/models"
)

var changeCmd = &cobra.Command{
	Use:   "change <number>",
	Short: "Print a changelist specification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		change, err := p4.Change(cmd.Context(), number)
		if err != nil {
			return err
		}
		return emit(change)
	},
}

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "List submitted and pending changelists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("owner")
		status, _ := cmd.Flags().GetString("status")
		long, _ := cmd.Flags().GetBool("long")

		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		infos, err := p4.Changes(cmd.Context(), goforce.ChangesOptions{
			User:       user,
			Status:     models.ChangeStatus(status),
			LongOutput: long,
		})
		if err != nil {
			return err
		}
		for _, info := range infos {
			if err := emit(info); err != nil {
				return err
			}
		}
		return nil
	},
}

var newChangeCmd = &cobra.Command{
	Use:   "new-change <description>",
	Short: "Create a pending changelist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		info, err := p4.CreateChangelist(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return emit(info)
	},
}

func init() {
	changesCmd.Flags().String("owner", "", "list only changes made by that user")
	changesCmd.Flags().String("status", "", "list only changes with that status (pending, shelved, submitted)")
	changesCmd.Flags().BoolP("long", "l", false, "print full descriptions")

	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(changesCmd)
	rootCmd.AddCommand(newChangeCmd)
}
