package memory

import (
	"context"

	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

// NewStore construye todos los repositorios en memoria.
func NewStore() *repository.Store {
	return &repository.Store{
		Clients:     NewClientRepository(),
		Products:    NewProductRepository(),
		Employees:   NewEmployeeRepository(),
		Ingredients: NewIngredientRepository(),
		Sales:       NewSaleRepository(),
		Shifts:      NewShiftRepository(),
		Vacations:   NewVacationRepository(),
	}
}

// Runner ejecuta fn directamente sobre el store; en memoria no hay transacciones.
type Runner struct {
	Store *repository.Store
}

// Run invoca fn con el store.
func (r Runner) Run(_ context.Context, fn func(store *repository.Store) error) error {
	return fn(r.Store)
}
