package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo clientes en memoria.
type ClientRepo struct {
	t *table[entity.Client]
}

// NewClientRepository construye el repositorio.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{t: newTable(func(c *entity.Client) string { return c.ID })}
}

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error { return r.t.insert(c) }
func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error { return r.t.update(c) }

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.t.get(id), nil
}

func (r *ClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	return r.t.first(func(c *entity.Client) bool { return strings.EqualFold(c.Email, email) }), nil
}

func (r *ClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	return r.t.filter(nil), nil
}

func (r *ClientRepo) SearchByName(_ context.Context, name string) ([]*entity.Client, error) {
	return r.t.filter(func(c *entity.Client) bool { return containsFold(c.Name, name) }), nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) (bool, error) { return r.t.delete(id), nil }
