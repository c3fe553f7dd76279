package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// move <index> <up|down>: swap a row's content with its neighbour.
func moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <index> <up|down>",
		Short: "Move a row up or down",
		Args:  cobra.ExactArgs(2),
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
			var moved bool
			switch args[1] {
			case "up":
				moved = points.MoveUp(index)
			case "down":
				moved = points.MoveDown(index)
			default:
				return fmt.Errorf("direction must be up or down, not %q", args[1])
			}
			if !moved {
				fmt.Println("nothing to do")
				return nil
			}
			return saveProject()
		},
	}
}
