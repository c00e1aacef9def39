package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/accounting-setup/internal/infrastructure/postgres"
)

func newMigrateCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema de base de datos incluido",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pool, err := postgres.NewPool(ctx, app.cfg.DB)
			if err != nil {
				return app.fail(err)
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return app.fail(err)
			}
			for _, name := range applied {
				app.log.Info().Str("script", name).Msg("migración aplicada")
			}
			fmt.Fprintf(app.stdout, "✓ %d script(s) applied\n", len(applied))
			return nil
		},
	}
}
