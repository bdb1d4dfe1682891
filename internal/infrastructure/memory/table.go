// Package memory implementa los repositorios sobre mapas en memoria.
// Se usa en desarrollo (STORE_DRIVER=memory) y en los tests de casos de uso; no persiste
// nada entre reinicios. Cada lectura devuelve una copia para que los llamadores no
// modifiquen el estado interno sin pasar por Update.
package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/paofresquim-api/internal/domain"
)

// table guarda filas de tipo T indexadas por ID, conservando el orden de inserción.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	id    func(*T) string
}

func newTable[T any](id func(*T) string) *table[T] {
	return &table[T]{rows: make(map[string]T), id: id}
}

func (t *table[T]) insert(v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(v)
	if _, ok := t.rows[id]; ok {
		return domain.ErrDuplicate
	}
	t.rows[id] = *v
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) update(v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(v)
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = *v
	return nil
}

func (t *table[T]) get(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &v
}

// filter devuelve copias de las filas que cumplen pred, en orden de inserción. pred nil = todas.
func (t *table[T]) filter(pred func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if pred == nil || pred(&v) {
			out = append(out, &v)
		}
	}
	return out
}

func (t *table[T]) first(pred func(*T) bool) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		v := t.rows[id]
		if pred(&v) {
			return &v
		}
	}
	return nil
}

func (t *table[T]) any(pred func(*T) bool) bool {
	return t.first(pred) != nil
}

func (t *table[T]) delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
