package usecase

import (
	"context"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

// lookup memoriza búsquedas por ID durante el mapeo de un lote.
// Un ID inexistente se memoriza como nil.
type lookup[E any] struct {
	get   func(ctx context.Context, id string) (*E, error)
	cache map[string]*E
}

func newLookup[E any](get func(ctx context.Context, id string) (*E, error)) *lookup[E] {
	return &lookup[E]{get: get, cache: make(map[string]*E)}
}

func (l *lookup[E]) find(ctx context.Context, id string) (*E, error) {
	if e, ok := l.cache[id]; ok {
		return e, nil
	}
	e, err := l.get(ctx, id)
	if err != nil {
		return nil, err
	}
	l.cache[id] = e
	return e, nil
}

// employeeLabel nombre y cargo del funcionario; vacío si ya no existe.
func employeeLabel(ctx context.Context, l *lookup[entity.Employee], id string) (string, string, error) {
	e, err := l.find(ctx, id)
	if err != nil || e == nil {
		return "", "", err
	}
	return e.Name, string(e.Role), nil
}

func employeeLookup(repo repository.EmployeeRepository) *lookup[entity.Employee] {
	return newLookup(repo.GetByID)
}
