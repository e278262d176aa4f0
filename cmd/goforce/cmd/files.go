package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goforce/goforce"
	"github.com/goforce/goforce/pkg/models"
)

func openCommand(use, short string, open func(p4 *goforce.P4, ctx context.Context, filespecs []string, opts goforce.OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changelist, _ := cmd.Flags().GetInt("changelist")
			preview, _ := cmd.Flags().GetBool("preview")

			p4, err := newP4(cmd)
			if err != nil {
				return err
			}
			messages, infos, err := open(p4, cmd.Context(), args, goforce.OpenOptions{
				Changelist: changelist,
				Preview:    preview,
			})
			if err != nil {
				return err
			}
			for _, message := range messages {
				fmt.Fprintf(os.Stderr, "%s - %s\n", message.Path, message.Message)
			}
			for _, info := range infos {
				if err := emit(info); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("changelist", 0, "open the files in that pending changelist")
	cmd.Flags().BoolP("preview", "n", false, "preview the operation without changing anything")
	return cmd
}

func init() {
	rootCmd.AddCommand(openCommand("add <file>...", "Open files for addition to the depot",
		func(p4 *goforce.P4, ctx context.Context, filespecs []string, opts goforce.OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error) {
			return p4.Add(ctx, filespecs, opts)
		}))
	rootCmd.AddCommand(openCommand("edit <file>...", "Open files for edit",
		func(p4 *goforce.P4, ctx context.Context, filespecs []string, opts goforce.OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error) {
			return p4.Edit(ctx, filespecs, opts)
		}))
	rootCmd.AddCommand(openCommand("delete <file>...", "Open files for deletion from the depot",
		func(p4 *goforce.P4, ctx context.Context, filespecs []string, opts goforce.OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error) {
			return p4.Delete(ctx, filespecs, opts)
		}))
}
