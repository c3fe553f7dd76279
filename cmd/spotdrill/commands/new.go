package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <file>",
		Short: "Start an empty project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Sessions.New()
			if err := appCtx.Sessions.SaveAs(args[0]); err != nil {
				return err
			}
			if err := rememberDataPath(args[0]); err != nil {
				return err
			}
			fmt.Printf("Created %s\n", args[0])
			return nil
		},
	}
}
