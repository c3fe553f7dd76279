package commands

import (
	"github.com/spf13/cobra"

	"spotdrill/internal/domain"
	"spotdrill/internal/expr"
)

var (
	setUnits  string
	setMode   string
	setDepth  string
	setPlunge string
)

// set: change settings. Switching units or mode while points exist converts
// the stored expressions, matching the live selectors in the form.
func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change units, coordinate mode, depth or plunge rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openProject(); err != nil {
				return err
			}
			s := appCtx.Sessions

			if cmd.Flags().Changed("depth") {
				if _, err := expr.Evaluate(setDepth); err != nil {
					return err
				}
				s.Current().Settings.DepthExpr = setDepth
			}
			if cmd.Flags().Changed("plunge") {
				if _, err := expr.Evaluate(setPlunge); err != nil {
					return err
				}
				s.Current().Settings.PlungeExpr = setPlunge
			}
			if cmd.Flags().Changed("units") {
				u, err := domain.ParseUnit(setUnits)
				if err != nil {
					return err
				}
				if err := s.ChangeUnits(u); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("mode") {
				m, err := domain.ParseCoordMode(setMode)
				if err != nil {
					return err
				}
				if err := s.ChangeMode(m); err != nil {
					return err
				}
			}
			return saveProject()
		},
	}
	cmd.Flags().StringVar(&setUnits, "units", "", "unit system: inch or mm")
	cmd.Flags().StringVar(&setMode, "mode", "", "coordinate mode: absolute or relative")
	cmd.Flags().StringVar(&setDepth, "depth", "", "drilling depth expression")
	cmd.Flags().StringVar(&setPlunge, "plunge", "", "plunge rate expression (length/minute)")
	return cmd
}
