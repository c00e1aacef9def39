package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/accounting-setup/pkg/config"
	"github.com/jhoicas/accounting-setup/pkg/logger"
)

// cli estado compartido por los subcomandos, listo tras PersistentPreRunE.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	log    zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cli{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "setup",
		Short:         "Configura valoración FIFO en tiempo real y cuentas AR/AP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.cfg = cfg
			level := cfg.App.LogLevel
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				level = "debug"
			}
			app.log = logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: stderr}).Zerolog()
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolP("verbose", "v", false, "log de depuración")

	root.AddCommand(newApplyCmd(app), newMigrateCmd(app), newTokenCmd(app))
	return root
}
