package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// ClientUseCase casos de uso de clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	sales repository.SaleRepository
	now   Clock
	crud  crud[entity.Client, dto.ClientResponse]
}

// NewClientUseCase construye el caso de uso. sales se usa para impedir borrar clientes con ventas.
func NewClientUseCase(repo repository.ClientRepository, sales repository.SaleRepository, now Clock) *ClientUseCase {
	return &ClientUseCase{
		repo:  repo,
		sales: sales,
		now:   now.orDefault(),
		crud: crud[entity.Client, dto.ClientResponse]{
			kind:   "cliente",
			get:    repo.GetByID,
			remove: repo.Delete,
			mapAll: mapEach(toClientResponse),
		},
	}
}

func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.List)
}

func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	return uc.crud.getResponse(ctx, id)
}

// SearchByName busca por nombre (contiene, sin distinguir mayúsculas).
func (uc *ClientUseCase) SearchByName(ctx context.Context, name string) ([]dto.ClientResponse, error) {
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Client, error) {
		return uc.repo.SearchByName(ctx, name)
	})
}

// Create registra un cliente. El email, si viene, debe ser único.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c := &entity.Client{ID: uuid.New().String(), RegisteredAt: uc.now()}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("client_id", c.ID).Msg("cliente creado")
	return uc.crud.one(ctx, c)
}

// Update modifica nombre, email y teléfono.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.crud.one(ctx, c)
}

func (uc *ClientUseCase) apply(ctx context.Context, c *entity.Client, in dto.ClientRequest) error {
	if err := validation.Required("nombre", in.Name); err != nil {
		return err
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		other, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if other != nil {
			if err := validation.Unique(other.ID, c.ID, "email", email); err != nil {
				return err
			}
		}
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Email = email
	c.Phone = strings.TrimSpace(in.Phone)
	return nil
}

// Delete elimina un cliente sin ventas asociadas.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.delete(ctx, id, func(c *entity.Client) error {
		exists, err := uc.sales.ExistsByClient(ctx, c.ID)
		return blockIf(exists, err, "el cliente tiene ventas asociadas")
	})
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		RegisteredAt: c.RegisteredAt,
	}
}
