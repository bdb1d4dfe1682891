package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/storage"
	"github.com/jhoicas/paofresquim-api/pkg/config"
)

func TestOpen_Memoria(t *testing.T) {
	ctx := context.Background()
	b, err := storage.Open(ctx, &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}})
	require.NoError(t, err)
	defer b.Close()

	assert.Nil(t, b.Pool)
	assert.NoError(t, b.Ping(ctx))

	err = b.Runner.Run(ctx, func(s *repository.Store) error {
		return s.Products.Create(ctx, &entity.Product{ID: "p1", Name: "Pão"})
	})
	require.NoError(t, err)
	p, err := b.Store.Products.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "mongo"}})
	assert.Error(t, err)
}
