package repository

import (
	"context"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Los Get* devuelven (nil, nil) cuando no hay registro.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
