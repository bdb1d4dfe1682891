// Package cli define los comandos administrativos de paofresquimctl.
package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/paofresquim-api/pkg/config"
	"github.com/jhoicas/paofresquim-api/pkg/logger"
)

// env estado compartido por los subcomandos, resuelto en PersistentPreRunE.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand construye el árbol de comandos.
func NewRootCommand() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "paofresquimctl",
		Short: "Administración de la base de datos de Pão Fresquim",
		Long: `paofresquimctl aplica las migraciones del esquema, carga los CSV iniciales
y emite tokens de acceso para la API.

La configuración se lee de las mismas variables de entorno que la API
(DATABASE_URL, STORE_DRIVER, SEED_DIR, JWT_SECRET, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.NewWithWriter(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}, cmd.ErrOrStderr()).Zerolog()
			return nil
		},
	}
	root.AddCommand(newMigrateCommand(e), newSeedCommand(e), newTokenCommand(e))
	return root
}

// Execute ejecuta el comando raíz con ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (e *env) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return e.log.WithContext(ctx)
}
