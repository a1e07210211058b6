// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linefem/internal/config"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configFile string
	envFile    string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "linefem",
		Short: "Direct-stiffness solver for rod and spring structures",
		Long: `linefem assembles the global stiffness matrix of a structure made of
rods and springs, applies zero-displacement supports, solves for the nodal
displacements and reports displacement fields and axial forces.

Settings come from defaults, an optional YAML file (--config), a .env file
and LINEFEM_* environment variables, in increasing priority. Command-line
flags override all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with LINEFEM_* keys")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newSolveCmd(a), newCheckCmd(a), newWatchCmd(a))

	return root
}

// init loads the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	opts := []config.Option{config.WithEnvFile(a.envFile)}
	if a.configFile != "" {
		opts = append(opts, config.WithFile(a.configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = a.log.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name()))

	return nil
}

// newLogger builds a production or development zap logger at the given level.
func newLogger(c config.Log) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level

	return zc.Build()
}
