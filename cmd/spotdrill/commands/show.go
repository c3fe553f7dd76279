package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the project settings and point list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openProject(); err != nil {
				return err
			}
			p := appCtx.Sessions.Current()
			fmt.Printf("units: %s  mode: %s\n", p.Settings.Units, p.Settings.Mode)
			fmt.Printf("depth: %q  plunge rate: %q\n", p.Settings.DepthExpr, p.Settings.PlungeExpr)
			for _, pt := range p.Points.Points() {
				fmt.Printf("%3d  x=%q  y=%q\n", pt.Index, pt.XExpr, pt.YExpr)
			}
			return nil
		},
	}
}
