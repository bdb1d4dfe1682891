// Package storage abre el adaptador de persistencia elegido por STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/memory"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/postgres"
	"github.com/jhoicas/paofresquim-api/pkg/config"
)

// Runner ejecuta fn de forma atómica cuando el adaptador lo permite.
type Runner interface {
	Run(ctx context.Context, fn func(store *repository.Store) error) error
}

// Backend repositorios abiertos más sus utilidades de ciclo de vida.
type Backend struct {
	Driver string
	Store  *repository.Store
	Runner Runner
	// Pool solo existe con el driver postgres.
	Pool *pgxpool.Pool
}

// Open construye el backend. Con postgres abre el pool; Close debe llamarse al terminar.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		return &Backend{Driver: config.DriverMemory, Store: store, Runner: memory.Runner{Store: store}}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &Backend{
			Driver: config.DriverPostgres,
			Store:  postgres.NewStore(pool),
			Runner: postgres.NewTxRunner(pool),
			Pool:   pool,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
	}
}

// Ping comprueba la conexión. En memoria siempre responde bien.
func (b *Backend) Ping(ctx context.Context) error {
	if b.Pool == nil {
		return nil
	}
	return b.Pool.Ping(ctx)
}

// Close libera el pool si existe.
func (b *Backend) Close() {
	if b.Pool != nil {
		b.Pool.Close()
	}
}
