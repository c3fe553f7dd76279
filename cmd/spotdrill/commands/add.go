package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// add <x> <y>: append a point at the end of the list.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <x> <y>",
		Short: "Append a point to the end of the list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openProject(); err != nil {
				return err
			}
			index := appCtx.Sessions.Current().Points.Append(args[0], args[1])
			if err := saveProject(); err != nil {
				return err
			}
			fmt.Printf("Added point %d\n", index)
			return nil
		},
	}
}
