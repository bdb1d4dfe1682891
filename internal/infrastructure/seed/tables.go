package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// Archivos esperados en el directorio de carga.
const (
	FileClients     = "clientes.csv"
	FileProducts    = "produtos.csv"
	FileIngredients = "estoque_ingredientes.csv"
	FileEmployees   = "funcionarios.csv"
	FileSales       = "vendas.csv"
	FileShifts      = "expediente_funcionario.csv"
	FileVacations   = "ferias_funcionarios.csv"
)

// uniqueKeys detecta duplicados dentro del mismo archivo (sin distinguir mayúsculas).
type uniqueKeys map[string]struct{}

func (u uniqueKeys) claim(what, key string) error {
	if key == "" {
		return nil
	}
	k := strings.ToLower(key)
	if _, dup := u[k]; dup {
		return fmt.Errorf("%s duplicado en el archivo: %s", what, key)
	}
	u[k] = struct{}{}
	return nil
}

func isEmpty[E any](list func(context.Context) ([]*E, error)) func(context.Context, *repository.Store) (bool, error) {
	return func(ctx context.Context, _ *repository.Store) (bool, error) {
		rows, err := list(ctx)
		return len(rows) == 0, err
	}
}

// clientes: id, nome, email, telefone, data_cadastro
func (l *Loader) loadClients(ctx context.Context) (Result, error) {
	emails := uniqueKeys{}
	return loadTable(ctx, l, tableSpec[entity.Client]{
		table:   "clientes",
		file:    FileClients,
		minCols: 5,
		isEmpty: isEmpty(l.store.Clients.List),
		parse: func(_ context.Context, r record) (*entity.Client, error) {
			if err := validation.Required("nombre", r.str(1)); err != nil {
				return nil, err
			}
			registered, err := r.time(4, "data_cadastro")
			if err != nil {
				return nil, err
			}
			if err := emails.claim("email", r.str(2)); err != nil {
				return nil, err
			}
			return &entity.Client{
				ID: uuid.New().String(), Name: r.str(1), Email: r.str(2), Phone: r.str(3), RegisteredAt: registered,
			}, nil
		},
		insert: func(ctx context.Context, s *repository.Store, c *entity.Client) error {
			return s.Clients.Create(ctx, c)
		},
		committed: func(legacy string, c *entity.Client) { l.clients[legacy] = c.ID },
	})
}

// produtos: id, nome, preco_kg
func (l *Loader) loadProducts(ctx context.Context) (Result, error) {
	names := uniqueKeys{}
	return loadTable(ctx, l, tableSpec[entity.Product]{
		table:   "produtos",
		file:    FileProducts,
		minCols: 3,
		isEmpty: isEmpty(l.store.Products.List),
		parse: func(_ context.Context, r record) (*entity.Product, error) {
			if err := validation.Required("nombre", r.str(1)); err != nil {
				return nil, err
			}
			price, err := r.decimal(2, "preco_kg")
			if err != nil {
				return nil, err
			}
			if err := validation.Positive("precio por kilo", price); err != nil {
				return nil, err
			}
			if err := validation.MaxScale("precio por kilo", price, entity.PricePlaces); err != nil {
				return nil, err
			}
			if err := names.claim("nombre", r.str(1)); err != nil {
				return nil, err
			}
			return &entity.Product{ID: uuid.New().String(), Name: r.str(1), PricePerKg: price}, nil
		},
		insert: func(ctx context.Context, s *repository.Store, p *entity.Product) error {
			return s.Products.Create(ctx, p)
		},
		committed: func(legacy string, p *entity.Product) { l.products[legacy] = p.ID },
	})
}

// estoque_ingredientes: id, nome, quantidade, unidade, minimo, custo, data_atualizacao
func (l *Loader) loadIngredients(ctx context.Context) (Result, error) {
	names := uniqueKeys{}
	return loadTable(ctx, l, tableSpec[entity.Ingredient]{
		table:   "estoque_ingredientes",
		file:    FileIngredients,
		minCols: 7,
		isEmpty: isEmpty(l.store.Ingredients.List),
		parse: func(_ context.Context, r record) (*entity.Ingredient, error) {
			if err := validation.Required("nombre", r.str(1)); err != nil {
				return nil, err
			}
			var nums [3]decimal.Decimal
			for i, col := range []struct {
				idx    int
				name   string
				places int32
			}{{2, "quantidade", entity.QuantityPlaces}, {4, "minimo", entity.QuantityPlaces}, {5, "custo", entity.CostPlaces}} {
				v, err := r.decimal(col.idx, col.name)
				if err != nil {
					return nil, err
				}
				if err := validation.NonNegative(col.name, v); err != nil {
					return nil, err
				}
				if err := validation.MaxScale(col.name, v, col.places); err != nil {
					return nil, err
				}
				nums[i] = v
			}
			updated, err := r.time(6, "data_atualizacao")
			if err != nil {
				return nil, err
			}
			if err := names.claim("nombre", r.str(1)); err != nil {
				return nil, err
			}
			unit := r.str(3)
			if unit == "" {
				unit = entity.DefaultUnit
			}
			return &entity.Ingredient{
				ID: uuid.New().String(), Name: r.str(1), Quantity: nums[0], Unit: unit,
				MinQuantity: nums[1], AverageCost: nums[2], UpdatedAt: updated,
			}, nil
		},
		insert: func(ctx context.Context, s *repository.Store, i *entity.Ingredient) error {
			return s.Ingredients.Create(ctx, i)
		},
	})
}

// funcionarios: id, nome, telefone, email, cargo, salario_base, data_admissao, ativo
func (l *Loader) loadEmployees(ctx context.Context) (Result, error) {
	emails := uniqueKeys{}
	return loadTable(ctx, l, tableSpec[entity.Employee]{
		table:   "funcionarios",
		file:    FileEmployees,
		minCols: 8,
		isEmpty: isEmpty(l.store.Employees.List),
		parse: func(_ context.Context, r record) (*entity.Employee, error) {
			if err := validation.Required("nombre", r.str(1)); err != nil {
				return nil, err
			}
			role, err := validation.ParseRole(r.str(4))
			if err != nil {
				return nil, err
			}
			salary, err := r.decimal(5, "salario_base")
			if err != nil {
				return nil, err
			}
			if err := validation.Positive("salario base", salary); err != nil {
				return nil, err
			}
			admitted, err := r.time(6, "data_admissao")
			if err != nil {
				return nil, err
			}
			active, err := r.bool(7, "ativo")
			if err != nil {
				return nil, err
			}
			if err := emails.claim("email", r.str(3)); err != nil {
				return nil, err
			}
			return &entity.Employee{
				ID: uuid.New().String(), Name: r.str(1), Phone: r.str(2), Email: r.str(3),
				Role: role, BaseSalary: salary, AdmittedAt: admitted, Active: active,
			}, nil
		},
		insert: func(ctx context.Context, s *repository.Store, e *entity.Employee) error {
			return s.Employees.Create(ctx, e)
		},
		committed: func(legacy string, e *entity.Employee) { l.employees[legacy] = e.ID },
	})
}

// vendas: id, cliente_id (opcional), produto_id, peso, preco_kg, total, forma, status,
// data_venda, data_vencimento (opcional). El total se recalcula.
func (l *Loader) loadSales(ctx context.Context) (Result, error) {
	return loadTable(ctx, l, tableSpec[entity.Sale]{
		table:   "vendas",
		file:    FileSales,
		minCols: 9,
		isEmpty: isEmpty(l.store.Sales.List),
		parse: func(_ context.Context, r record) (*entity.Sale, error) {
			s := &entity.Sale{ID: uuid.New().String()}
			if r.str(1) != "" {
				id, err := r.ref(1, l.clients, "cliente")
				if err != nil {
					return nil, err
				}
				s.ClientID = id
			}
			productID, err := r.ref(2, l.products, "producto")
			if err != nil {
				return nil, err
			}
			s.ProductID = productID
			weight, err := r.decimal(3, "peso")
			if err != nil {
				return nil, err
			}
			price, err := r.decimal(4, "preco_kg")
			if err != nil {
				return nil, err
			}
			if err := validation.Positive("peso vendido", weight); err != nil {
				return nil, err
			}
			if err := validation.Positive("precio por kilo", price); err != nil {
				return nil, err
			}
			if err := validation.MaxScale("peso vendido", weight, entity.WeightPlaces); err != nil {
				return nil, err
			}
			if err := validation.MaxScale("precio por kilo", price, entity.PricePlaces); err != nil {
				return nil, err
			}
			if s.PaymentMethod, err = validation.ParsePaymentMethod(r.str(6)); err != nil {
				return nil, err
			}
			if s.PaymentStatus, err = validation.ParsePaymentStatus(r.str(7)); err != nil {
				return nil, err
			}
			if s.SoldAt, err = r.time(8, "data_venda"); err != nil {
				return nil, err
			}
			s.SetWeight(weight)
			s.SetPricePerKg(price)
			s.RefreshDueDate(s.SoldAt)
			due, err := r.optionalTime(9, "data_vencimento")
			if err != nil {
				return nil, err
			}
			if due != nil && s.DueAt != nil {
				s.DueAt = due
			}
			return s, nil
		},
		insert: func(ctx context.Context, s *repository.Store, sale *entity.Sale) error {
			return s.Sales.Create(ctx, sale)
		},
	})
}

// expediente_funcionario: id, funcionario_id, dia_semana, entrada, saida, turno
func (l *Loader) loadShifts(ctx context.Context) (Result, error) {
	perDay := uniqueKeys{}
	return loadTable(ctx, l, tableSpec[entity.Shift]{
		table:   "expediente_funcionario",
		file:    FileShifts,
		minCols: 6,
		isEmpty: isEmpty(l.store.Shifts.List),
		parse: func(_ context.Context, r record) (*entity.Shift, error) {
			employeeID, err := r.ref(1, l.employees, "funcionario")
			if err != nil {
				return nil, err
			}
			day, period, entry, exit, err := validation.ValidateShift(validation.ShiftInput{
				Day: r.str(2), EntryTime: r.str(3), ExitTime: r.str(4), Period: r.str(5),
			})
			if err != nil {
				return nil, err
			}
			if err := perDay.claim("expediente", employeeID+"/"+string(day)); err != nil {
				return nil, err
			}
			return &entity.Shift{
				ID: uuid.New().String(), EmployeeID: employeeID, Day: day,
				EntryTime: entry, ExitTime: exit, Period: period,
			}, nil
		},
		insert: func(ctx context.Context, s *repository.Store, sh *entity.Shift) error {
			return s.Shifts.Create(ctx, sh)
		},
	})
}

// ferias_funcionarios: id, funcionario_id, inicio, fim, dias, status, data_solicitacao, obs.
// Los días se recalculan; no se exige inicio futuro (datos históricos).
func (l *Loader) loadVacations(ctx context.Context) (Result, error) {
	byEmployee := make(map[string][]*entity.Vacation)
	return loadTable(ctx, l, tableSpec[entity.Vacation]{
		table:   "ferias_funcionarios",
		file:    FileVacations,
		minCols: 7,
		isEmpty: isEmpty(l.store.Vacations.List),
		parse: func(_ context.Context, r record) (*entity.Vacation, error) {
			employeeID, err := r.ref(1, l.employees, "funcionario")
			if err != nil {
				return nil, err
			}
			start, err := r.time(2, "inicio")
			if err != nil {
				return nil, err
			}
			end, err := r.time(3, "fim")
			if err != nil {
				return nil, err
			}
			if entity.CivilDate(end).Before(entity.CivilDate(start)) {
				return nil, fmt.Errorf("fim anterior a inicio")
			}
			status, err := validation.ParseVacationStatus(r.str(5))
			if err != nil {
				return nil, err
			}
			requested, err := r.time(6, "data_solicitacao")
			if err != nil {
				return nil, err
			}
			v := &entity.Vacation{
				ID: uuid.New().String(), EmployeeID: employeeID, Status: status,
				RequestedAt: requested, Notes: r.str(7),
			}
			v.SetPeriod(start, end)
			if err := validation.VacationOverlap(byEmployee[employeeID], v.ID, start, end); err != nil {
				return nil, err
			}
			byEmployee[employeeID] = append(byEmployee[employeeID], v)
			return v, nil
		},
		insert: func(ctx context.Context, s *repository.Store, v *entity.Vacation) error {
			return s.Vacations.Create(ctx, v)
		},
	})
}
