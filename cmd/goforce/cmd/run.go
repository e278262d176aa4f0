package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [arg...]",
	Short: "Run any p4 command and print its raw records",
	Long: `Run any p4 command in tagged-output mode and print each decoded record
as a JSON document. This is the escape hatch for commands without a typed
subcommand.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p4, err := newP4(cmd)
		if err != nil {
			return err
		}
		records, err := p4.Run(cmd.Context(), args)
		if err != nil {
			return err
		}
		for _, r := range records {
			if err := emit(r.Fields()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
