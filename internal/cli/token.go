package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
	"github.com/jhoicas/paofresquim-api/pkg/jwt"
)

func newTokenCommand(e *env) *cobra.Command {
	var employeeID, role string
	var minutes int
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT para un funcionario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !e.cfg.JWT.Enabled() {
				return errors.New("JWT_SECRET no configurado")
			}
			parsed, err := validation.ParseRole(role)
			if err != nil {
				return err
			}
			if minutes <= 0 {
				minutes = e.cfg.JWT.Expiration
			}
			token, err := jwt.Generate(e.cfg.JWT.Secret, employeeID, string(parsed), e.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&employeeID, "employee", "", "ID del funcionario")
	cmd.Flags().StringVar(&role, "role", "", "cargo: baker | attendant | manager | helper")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "validez en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
