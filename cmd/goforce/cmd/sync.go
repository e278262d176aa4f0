package cmd

import (
	"github.com/spf13/cobra"

	"github.com/goforce/goforce"
)

var syncCmd = &cobra.Command{
	Use:   "sync [file...]",
	Short: "Update workspace files from the depot",
	RunE: func(cmd *cobra.Command, args []string) error {
		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		result, err := p4.Sync(cmd.Context(), args)
		if err != nil {
			return err
		}
		for _, s := range result {
			if err := emit(s); err != nil {
				return err
			}
		}
		return nil
	},
}

var fstatCmd = &cobra.Command{
	Use:   "fstat <file>...",
	Short: "Print file status",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		includeDeleted, _ := cmd.Flags().GetBool("include-deleted")

		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		result, err := p4.Fstat(cmd.Context(), args, goforce.FstatOptions{
			IncludeDeleted: includeDeleted,
		})
		if err != nil {
			return err
		}
		for _, stat := range result {
			if err := emit(stat); err != nil {
				return err
			}
		}
		return nil
	},
}

var filelogCmd = &cobra.Command{
	Use:   "filelog <file>...",
	Short: "List the revision history of files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		long, _ := cmd.Flags().GetBool("long")

		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		result, err := p4.Revisions(cmd.Context(), args, goforce.RevisionsOptions{
			LongOutput: long,
		})
		if err != nil {
			return err
		}
		for _, revisions := range result {
			if err := emit(revisions); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	fstatCmd.Flags().Bool("include-deleted", false, "include files whose head action is a deletion")
	filelogCmd.Flags().BoolP("long", "l", false, "print full descriptions")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(fstatCmd)
	rootCmd.AddCommand(filelogCmd)
}
