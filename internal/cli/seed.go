package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/paofresquim-api/internal/infrastructure/seed"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/storage"
	"github.com/jhoicas/paofresquim-api/pkg/config"
)

func newSeedCommand(e *env) *cobra.Command {
	var dir, charset string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga los CSV iniciales en las tablas vacías",
		Long: `Carga clientes, produtos, estoque_ingredientes, funcionarios, vendas,
expediente_funcionario y ferias_funcionarios desde el directorio indicado.
Solo se cargan tablas vacías; las filas inválidas se descartan y se registran.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = e.cfg.Seed.Dir
			}
			if charset == "" {
				charset = e.cfg.Seed.Charset
			}
			ctx := e.context(cmd)
			backend, err := storage.Open(ctx, e.cfg)
			if err != nil {
				return err
			}
			defer backend.Close()
			if backend.Driver == config.DriverMemory {
				e.log.Warn().Msg("almacenamiento en memoria: la carga no persiste")
			}

			loader, err := seed.NewLoader(dir, charset, backend.Store, backend.Runner)
			if err != nil {
				return err
			}
			results, err := loader.Load(ctx)
			printResults(cmd, results)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directorio de los CSV (por defecto SEED_DIR)")
	cmd.Flags().StringVar(&charset, "charset", "", "codificación: utf-8 | iso-8859-1 (por defecto SEED_CHARSET)")
	return cmd
}

func printResults(cmd *cobra.Command, results []seed.Result) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLA\tCARGADAS\tDESCARTADAS\tESTADO")
	for _, r := range results {
		state := "ok"
		switch {
		case r.NotEmpty:
			state = "con datos"
		case r.Missing:
			state = "sin archivo"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.Table, r.Loaded, r.Skipped, state)
	}
	_ = w.Flush()
}
