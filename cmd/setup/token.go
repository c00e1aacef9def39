package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/accounting-setup/pkg/jwt"
)

// newTokenCmd emite un JWT para consumir la API con el secreto configurado.
func newTokenCmd(app *cli) *cobra.Command {
	var (
		companyID string
		userID    string
		role      string
		minutes   int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un token de acceso para la API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID == "" {
				companyID = app.cfg.Setup.CompanyID
			}
			if companyID == "" {
				return app.fail(errors.New("--company es obligatorio"))
			}
			if _, err := uuid.Parse(companyID); err != nil {
				return app.fail(fmt.Errorf("--company debe ser un UUID: %w", err))
			}
			switch role {
			case "admin", "accountant", "viewer":
			default:
				return app.fail(fmt.Errorf("rol desconocido %q", role))
			}
			if userID == "" {
				userID = uuid.NewString()
			}
			if minutes <= 0 {
				minutes = app.cfg.JWT.Expiration
			}
			token, err := jwt.Generate(app.cfg.JWT.Secret, userID, companyID, role, app.cfg.JWT.Issuer, minutes)
			if err != nil {
				return app.fail(err)
			}
			app.log.Debug().Str("company_id", companyID).Str("role", role).Int("minutes", minutes).Msg("token emitido")
			fmt.Fprintln(app.stdout, token)
			return nil
		},
	}
	cmd.Flags().StringVar(&companyID, "company", "", "empresa del token (por defecto SETUP_COMPANY_ID)")
	cmd.Flags().StringVar(&userID, "user", "", "usuario del token (por defecto un uuid nuevo)")
	cmd.Flags().StringVar(&role, "role", "admin", "rol: admin, accountant o viewer")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
