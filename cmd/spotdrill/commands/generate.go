package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outputFile string

// generate: evaluate the project and emit G-code to stdout or a file.
func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit the G-code for the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openProject(); err != nil {
				return err
			}
			text, err := appCtx.GCode.Generate(appCtx.Sessions.Current())
			if err != nil {
				return err
			}
			if outputFile == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.WriteFile(outputFile, []byte(text), 0o644); err != nil {
				return err
			}
			if err := rememberGCodePath(outputFile); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the program here instead of stdout (e.g. job.nc)")
	return cmd
}
