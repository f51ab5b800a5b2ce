package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ramacq/internal/app"
)

var (
	home     string
	vol3Path string
	vol2Path string
	verbose  bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "ramacq",
		Short: "Forensic RAM acquisition and analysis workstation",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			w, err := app.NewWire(app.Config{
				Home:     home,
				Vol3Path: vol3Path,
				Vol2Path: vol2Path,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.ramacq)")
	root.PersistentFlags().StringVar(&vol3Path, "vol3", "", "Volatility 3 entrypoint (default: vol on PATH)")
	root.PersistentFlags().StringVar(&vol2Path, "vol2", "", "standalone Volatility 2 executable")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(loginCmd(), usersCmd(), evidenceCmd(), acquireCmd(), analyzeCmd(), pluginsCmd())
	return root.Execute()
}
