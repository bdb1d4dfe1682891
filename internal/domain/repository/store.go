package repository

// Store agrupa los repositorios de todas las entidades. Lo construye cada adaptador
// (PostgreSQL o memoria) para que main y los comandos de administración no dependan del driver.
type Store struct {
	Clients     ClientRepository
	Products    ProductRepository
	Employees   EmployeeRepository
	Ingredients IngredientRepository
	Sales       SaleRepository
	Shifts      ShiftRepository
	Vacations   VacationRepository
}
