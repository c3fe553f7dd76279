package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var insertAfter bool

// insert <index> <x> <y>: insert a point relative to an existing row.
func insertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <index> <x> <y>",
		Short: "Insert a point before (or after) an existing row",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number: %q", args[0])
			}
			if err := openProject(); err != nil {
				return err
			}
			points := appCtx.Sessions.Current().Points
			ok := false
			if insertAfter {
				ok = points.InsertAfter(target, args[1], args[2])
			} else {
				ok = points.InsertBefore(target, args[1], args[2])
			}
			if !ok {
				return fmt.Errorf("no row %d", target)
			}
			return saveProject()
		},
	}
	cmd.Flags().BoolVar(&insertAfter, "after", false, "insert below the row instead of above")
	return cmd
}
