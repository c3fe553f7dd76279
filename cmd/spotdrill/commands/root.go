package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"spotdrill/internal/app"
	"spotdrill/internal/store"
)

var (
	home        string
	projectFile string
	appCtx      *app.App
	defaults    store.Defaults
)

func Execute() error {
	root := &cobra.Command{
		Use:   "spotdrill",
		Short: "Point-list editor and G-code generator for CNC spot drilling",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".spotdrill")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			appCtx = app.NewWire(app.Config{Home: home})

			d, err := appCtx.Defaults.Load()
			if err != nil {
				return err
			}
			defaults = d
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.spotdrill)")
	root.PersistentFlags().StringVarP(&projectFile, "file", "f", "", "project file (default from the defaults record)")

	root.AddCommand(newCmd(), showCmd(), addCmd(), insertCmd(), removeCmd(), moveCmd(), setCmd(), generateCmd())
	return root.Execute()
}

// projectPath resolves the -f flag, falling back to the recorded default
// data location.
func projectPath() (string, error) {
	if projectFile != "" {
		return projectFile, nil
	}
	if defaults.DataFile != "" {
		return filepath.Join(defaults.DataDir, defaults.DataFile), nil
	}
	return "", fmt.Errorf("no project file given (-f) and no default recorded")
}

// openProject loads the project at the resolved path into the session.
func openProject() error {
	path, err := projectPath()
	if err != nil {
		return err
	}
	return appCtx.Sessions.Open(path)
}

// saveProject saves the session's project back and rewrites the data half of
// the defaults record, as every successful save does.
func saveProject() error {
	if err := appCtx.Sessions.Save(); err != nil {
		return err
	}
	return rememberDataPath(appCtx.Sessions.Current().Path)
}

func rememberDataPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	defaults.DataDir = filepath.Dir(abs)
	defaults.DataFile = filepath.Base(abs)
	return appCtx.Defaults.Save(defaults)
}

func rememberGCodePath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	defaults.GCodeDir = filepath.Dir(abs)
	defaults.GCodeFile = filepath.Base(abs)
	return appCtx.Defaults.Save(defaults)
}
