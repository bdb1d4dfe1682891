// Package usecase orquesta las reglas de negocio de cada entidad:
// validar, comprobar unicidad/solapamientos contra el almacenamiento, calcular derivados,
// persistir y mapear a DTO.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/paofresquim-api/internal/domain"
)

// Clock devuelve la hora actual. Los tests inyectan un reloj fijo.
type Clock func() time.Time

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// crud reúne las operaciones comunes a todas las entidades (obtener, listar, borrar)
// parametrizadas por las funciones del repositorio y el mapeo a respuesta.
// mapAll recibe el lote completo para que el enriquecimiento (nombres de cliente,
// producto o funcionario) pueda resolver cada referencia una sola vez.
type crud[E any, R any] struct {
	kind   string
	get    func(ctx context.Context, id string) (*E, error)
	remove func(ctx context.Context, id string) (bool, error)
	mapAll func(ctx context.Context, items []*E) ([]R, error)
}

// mustGet devuelve la entidad o ErrNotFound.
func (c crud[E, R]) mustGet(ctx context.Context, id string) (*E, error) {
	e, err := find(ctx, c.get, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrNotFound, c.kind, id)
	}
	return e, nil
}

// find consulta get solo si id es un UUID canónico; cualquier otro ID no existe.
func find[E any](ctx context.Context, get func(context.Context, string) (*E, error), id string) (*E, error) {
	if !wellFormedID(id) {
		return nil, nil
	}
	return get(ctx, id)
}

// wellFormedID acepta solo la forma de 36 caracteres que guarda la columna uuid.
func wellFormedID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func (c crud[E, R]) one(ctx context.Context, e *E) (*R, error) {
	out, err := c.mapAll(ctx, []*E{e})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (c crud[E, R]) getResponse(ctx context.Context, id string) (*R, error) {
	e, err := c.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.one(ctx, e)
}

// listResponse ejecuta fetch (listado completo o filtrado) y mapea el resultado.
func (c crud[E, R]) listResponse(ctx context.Context, fetch func(context.Context) ([]*E, error)) ([]R, error) {
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	return c.mapAll(ctx, items)
}

// delete borra por ID tras aplicar guard (nil = sin restricciones).
func (c crud[E, R]) delete(ctx context.Context, id string, guard func(*E) error) error {
	e, err := c.mustGet(ctx, id)
	if err != nil {
		return err
	}
	if guard != nil {
		if err := guard(e); err != nil {
			return err
		}
	}
	ok, err := c.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, c.kind, id)
	}
	zerolog.Ctx(ctx).Info().Str("kind", c.kind).Str("id", id).Msg("registro eliminado")
	return nil
}

// mapEach adapta un mapeo uno a uno al formato por lotes de crud.
func mapEach[E any, R any](fn func(*E) R) func(context.Context, []*E) ([]R, error) {
	return func(_ context.Context, items []*E) ([]R, error) {
		out := make([]R, 0, len(items))
		for _, e := range items {
			out = append(out, fn(e))
		}
		return out, nil
	}
}

// blockIf devuelve ErrBusinessRule con msg si exists es true.
func blockIf(exists bool, err error, msg string) error {
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrBusinessRule, msg)
	}
	return nil
}
