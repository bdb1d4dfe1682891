package usecase

import "github.com/jhoicas/paofresquim-api/internal/domain/repository"

// Services agrupa los casos de uso construidos sobre un mismo Store.
type Services struct {
	Clients     *ClientUseCase
	Products    *ProductUseCase
	Employees   *EmployeeUseCase
	Ingredients *IngredientUseCase
	Sales       *SaleUseCase
	Shifts      *ShiftUseCase
	Vacations   *VacationUseCase
}

// NewServices construye todos los casos de uso. now nil = time.Now.
func NewServices(store *repository.Store, now Clock) *Services {
	return &Services{
		Clients:     NewClientUseCase(store.Clients, store.Sales, now),
		Products:    NewProductUseCase(store.Products, store.Sales),
		Employees:   NewEmployeeUseCase(store.Employees, store.Shifts, store.Vacations, now),
		Ingredients: NewIngredientUseCase(store.Ingredients, now),
		Sales:       NewSaleUseCase(store.Sales, store.Products, store.Clients, now),
		Shifts:      NewShiftUseCase(store.Shifts, store.Employees),
		Vacations:   NewVacationUseCase(store.Vacations, store.Employees, now),
	}
}
