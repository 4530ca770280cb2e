package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"depot/internal/app"
)

var (
	dataDir string
	verbose bool

	logger *zap.Logger
	appCtx *app.App
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "depot",
		Short: "File-backed keyed object store for staff records",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger == nil {
				config := zap.NewProductionConfig()
				if verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				var err error
				logger, err = config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}

			cfg, err := app.ConfigFromEnv()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			logger.Debug("building app", zap.String("data_dir", cfg.DataDir))

			appCtx, err = app.New(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data", "", "store root directory (default $DEPOT_DATA_DIR or ./data)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(insertCmd(), getCmd(), listCmd(), demoCmd())
	return root
}

func Execute() error {
	return newRoot().Execute()
}
