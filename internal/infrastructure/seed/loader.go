// Package seed carga los datos iniciales desde CSV.
//
// Cada archivo tiene cabecera y usa los IDs numéricos del sistema anterior; el cargador
// genera UUIDs nuevos y traduce las referencias entre tablas (cliente, producto,
// funcionario) con el mapa de IDs de las tablas ya cargadas. Una tabla solo se carga si
// está vacía. Las filas inválidas se registran y se descartan; las válidas de una tabla
// se insertan en una única transacción.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/pkg/metrics"
)

// Codificaciones aceptadas para los CSV.
const (
	CharsetUTF8   = "utf-8"
	CharsetLatin1 = "iso-8859-1"
)

// Runner ejecuta fn dentro de una transacción (postgres.TxRunner, memory.Runner).
type Runner interface {
	Run(ctx context.Context, fn func(store *repository.Store) error) error
}

// Result resumen de la carga de una tabla.
type Result struct {
	Table   string `json:"table"`
	Loaded  int    `json:"loaded"`
	Skipped int    `json:"skipped"`
	// NotEmpty indica que la tabla ya tenía datos y no se tocó.
	NotEmpty bool `json:"not_empty"`
	// Missing indica que no existe el archivo.
	Missing bool `json:"missing"`
}

// Loader carga los CSV de un directorio.
type Loader struct {
	dir     string
	charset string
	runner  Runner
	store   *repository.Store

	// IDs legados → UUID, por tabla.
	clients   map[string]string
	products  map[string]string
	employees map[string]string
}

// NewLoader construye el cargador. store se usa para las comprobaciones de tabla vacía;
// las inserciones pasan por runner.
func NewLoader(dir, charset string, store *repository.Store, runner Runner) (*Loader, error) {
	cs := strings.ToLower(strings.TrimSpace(charset))
	switch cs {
	case "", "utf8", CharsetUTF8:
		cs = CharsetUTF8
	case "latin1", "latin-1", "iso8859-1", CharsetLatin1:
		cs = CharsetLatin1
	default:
		return nil, fmt.Errorf("seed: codificación no soportada: %q", charset)
	}
	return &Loader{
		dir:       dir,
		charset:   cs,
		runner:    runner,
		store:     store,
		clients:   make(map[string]string),
		products:  make(map[string]string),
		employees: make(map[string]string),
	}, nil
}

// Load carga todas las tablas en orden de dependencias. Solo devuelve error si falla
// el almacenamiento; los problemas de datos se reflejan en Result.Skipped.
func (l *Loader) Load(ctx context.Context) ([]Result, error) {
	steps := []func(context.Context) (Result, error){
		l.loadClients,
		l.loadProducts,
		l.loadIngredients,
		l.loadEmployees,
		l.loadSales,
		l.loadShifts,
		l.loadVacations,
	}
	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		res, err := step(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// tableSpec describe cómo cargar un archivo en una tabla.
type tableSpec[E any] struct {
	table   string
	file    string
	minCols int
	isEmpty func(ctx context.Context, store *repository.Store) (bool, error)
	// parse convierte una fila en entidad; un error descarta la fila.
	parse  func(ctx context.Context, r record) (*E, error)
	insert func(ctx context.Context, store *repository.Store, e *E) error
	// committed se invoca por cada fila insertada tras el commit (mapas de IDs).
	committed func(legacyID string, e *E)
}

type parsed[E any] struct {
	legacyID string
	entity   *E
}

func loadTable[E any](ctx context.Context, l *Loader, spec tableSpec[E]) (Result, error) {
	log := zerolog.Ctx(ctx).With().Str("table", spec.table).Logger()
	res := Result{Table: spec.table}

	empty, err := spec.isEmpty(ctx, l.store)
	if err != nil {
		return res, fmt.Errorf("seed %s: %w", spec.table, err)
	}
	if !empty {
		log.Info().Msg("tabla con datos, se omite la carga")
		res.NotEmpty = true
		return res, nil
	}

	records, err := l.readFile(spec.file)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("file", spec.file).Msg("archivo CSV no encontrado")
		res.Missing = true
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("seed %s: %w", spec.table, err)
	}

	rows := make([]parsed[E], 0, len(records))
	for _, r := range records {
		if len(r.cols) < spec.minCols {
			l.skip(log, &res, r, fmt.Errorf("se esperaban %d columnas, hay %d", spec.minCols, len(r.cols)))
			continue
		}
		e, err := spec.parse(ctx, r)
		if err != nil {
			l.skip(log, &res, r, err)
			continue
		}
		rows = append(rows, parsed[E]{legacyID: r.str(0), entity: e})
	}

	err = l.runner.Run(ctx, func(store *repository.Store) error {
		for _, p := range rows {
			if err := spec.insert(ctx, store, p.entity); err != nil {
				return fmt.Errorf("fila con id %s: %w", p.legacyID, err)
			}
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("seed %s: %w", spec.table, err)
	}
	for _, p := range rows {
		if spec.committed != nil {
			spec.committed(p.legacyID, p.entity)
		}
		metrics.SeedRow(spec.table, "loaded")
	}
	res.Loaded = len(rows)
	log.Info().Int("loaded", res.Loaded).Int("skipped", res.Skipped).Msg("tabla cargada")
	return res, nil
}

func (l *Loader) skip(log zerolog.Logger, res *Result, r record, err error) {
	res.Skipped++
	metrics.SeedRow(res.Table, "skipped")
	log.Warn().Err(err).Int("line", r.line).Msg("fila descartada")
}

// readFile lee el CSV completo (sin cabecera) aplicando la codificación configurada.
func (l *Loader) readFile(name string) ([]record, error) {
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRecords(l.decode(f))
}

func (l *Loader) decode(r io.Reader) io.Reader {
	if l.charset == CharsetLatin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r
}

func readRecords(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []record
	line := 0
	for {
		cols, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 {
			continue // cabecera
		}
		if len(cols) == 1 && strings.TrimSpace(cols[0]) == "" {
			continue
		}
		out = append(out, record{line: line, cols: cols})
	}
	return out, nil
}
