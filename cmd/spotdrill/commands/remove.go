package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// remove <index>: select a row, then delete it, as the form does.
func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number: %q", args[0])
			}
			if err := openProject(); err != nil {
				return err
			}
			points := appCtx.Sessions.Current().Points
			if !points.Select(index) {
				return fmt.Errorf("no row %d", index)
			}
			points.Delete(index)
			return saveProject()
		},
	}
}
