package ledger_test

import (
	"context"
	"fmt"
	"time"

	"github.com/dendyelo/nooda-inventory/internal/application/ledger"
	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
	"github.com/dendyelo/nooda-inventory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore simula el storage completo: componentes, productos, recetas y el
// log de actividad. Los reads devuelven copias (igual que un repo real que
// escanea filas); ApplyDelta muta el estado compartido con el mismo contrato
// que el update condicional: atómico, rechaza resultado negativo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	components map[int64]*entity.Component
	products   map[int64]*entity.Product
	recipes    []*entity.RecipeEntry
	logs       []*entity.ActivityLog

	failLog  bool   // Create del log de actividad falla
	beforeTx func() // hook ejecutado justo antes de correr la transacción

	componentReads int // GetByID + ListByIDs + GetStock + GetManyStock
	productReads   int
	recipeReads    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		components: make(map[int64]*entity.Component),
		products:   make(map[int64]*entity.Product),
	}
}

func (s *fakeStore) addComponent(id int64, name string, stock int64, unit string) {
	s.components[id] = &entity.Component{ID: id, Name: name, Stock: stock, Unit: unit}
}

func (s *fakeStore) addProduct(id int64, name, sku string, stock int64) {
	s.products[id] = &entity.Product{ID: id, Name: name, SKU: sku, Stock: stock}
}

func (s *fakeStore) addRecipe(productID, componentID, qty int64, processType string) {
	s.recipes = append(s.recipes, &entity.RecipeEntry{
		ProductID:      productID,
		ComponentID:    componentID,
		QuantityNeeded: qty,
		ProcessType:    processType,
	})
}

func (s *fakeStore) componentStock(id int64) int64 { return s.components[id].Stock }
func (s *fakeStore) productStock(id int64) int64   { return s.products[id].Stock }

// ── repos fake ────────────────────────────────────────────────────────────────

type fakeComponentRepo struct{ store *fakeStore }

func (r *fakeComponentRepo) GetByID(_ context.Context, id int64) (*entity.Component, error) {
	r.store.componentReads++
	c, ok := r.store.components[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeComponentRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Component, error) {
	r.store.componentReads++
	out := make([]*entity.Component, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.store.components[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeComponentRepo) List(_ context.Context) ([]*entity.Component, error) {
	r.store.componentReads++
	out := make([]*entity.Component, 0, len(r.store.components))
	for _, c := range r.store.components {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeComponentRepo) ListCritical(_ context.Context, defaultLimit int64) ([]*entity.Component, error) {
	out := make([]*entity.Component, 0)
	for _, c := range r.store.components {
		limit := defaultLimit
		if c.WarningLimit != nil {
			limit = *c.WarningLimit
		}
		if c.Stock <= limit {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeComponentRepo) GetStock(_ context.Context, id int64) (int64, error) {
	r.store.componentReads++
	c, ok := r.store.components[id]
	if !ok {
		return 0, fmt.Errorf("componente %d: %w", id, domain.ErrNotFound)
	}
	return c.Stock, nil
}

func (r *fakeComponentRepo) GetManyStock(_ context.Context, ids []int64) (map[int64]int64, error) {
	r.store.componentReads++
	out := make(map[int64]int64, len(ids))
	for _, id := range ids {
		if c, ok := r.store.components[id]; ok {
			out[id] = c.Stock
		}
	}
	return out, nil
}

func (r *fakeComponentRepo) ApplyDelta(_ context.Context, id int64, delta int64) (int64, error) {
	c, ok := r.store.components[id]
	if !ok {
		return 0, fmt.Errorf("componente %d: %w", id, domain.ErrNotFound)
	}
	if c.Stock+delta < 0 {
		return 0, fmt.Errorf("componente %s: %w", c.Name, domain.ErrInsufficientStock)
	}
	c.Stock += delta
	return c.Stock, nil
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.store.productReads++
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	r.store.productReads++
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.store.productReads++
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeProductRepo) ListCritical(_ context.Context, defaultLimit int64) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.store.products {
		limit := defaultLimit
		if p.WarningLimit != nil {
			limit = *p.WarningLimit
		}
		if p.Stock <= limit {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetStock(_ context.Context, id int64) (int64, error) {
	r.store.productReads++
	p, ok := r.store.products[id]
	if !ok {
		return 0, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return p.Stock, nil
}

func (r *fakeProductRepo) GetManyStock(_ context.Context, ids []int64) (map[int64]int64, error) {
	r.store.productReads++
	out := make(map[int64]int64, len(ids))
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			out[id] = p.Stock
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ApplyDelta(_ context.Context, id int64, delta int64) (int64, error) {
	p, ok := r.store.products[id]
	if !ok {
		return 0, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	if p.Stock+delta < 0 {
		return 0, fmt.Errorf("producto %s: %w", p.Name, domain.ErrInsufficientStock)
	}
	p.Stock += delta
	return p.Stock, nil
}

type fakeRecipeRepo struct{ store *fakeStore }

func (r *fakeRecipeRepo) ListByProductAndType(_ context.Context, productID int64, processType string) ([]*entity.RecipeEntry, error) {
	r.store.recipeReads++
	out := make([]*entity.RecipeEntry, 0)
	for _, e := range r.store.recipes {
		if e.ProductID == productID && e.ProcessType == processType {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeLogRepo struct{ store *fakeStore }

func (r *fakeLogRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	if r.store.failLog {
		return fmt.Errorf("log de actividad no disponible")
	}
	clone := *log
	clone.ID = int64(len(r.store.logs) + 1)
	r.store.logs = append(r.store.logs, &clone)
	return nil
}

func (r *fakeLogRepo) ListRecent(_ context.Context, limit int) ([]*entity.ActivityLog, error) {
	out := make([]*entity.ActivityLog, 0, limit)
	for i := len(r.store.logs) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.store.logs[i]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeLogRepo) ListByTypeBetween(_ context.Context, actionType string, from, to time.Time) ([]*entity.ActivityLog, error) {
	out := make([]*entity.ActivityLog, 0)
	for _, l := range r.store.logs {
		if l.ActionType == actionType && !l.CreatedAt.Before(from) && !l.CreatedAt.After(to) {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta la función con los repos fake y simula el rollback:
// snapshotea los stocks antes y los restaura si la función falla.
type fakeTxRunner struct{ store *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ComponentRepository, repository.ProductRepository) error) error {
	if t.store.beforeTx != nil {
		t.store.beforeTx()
	}

	compSnap := make(map[int64]int64, len(t.store.components))
	for id, c := range t.store.components {
		compSnap[id] = c.Stock
	}
	prodSnap := make(map[int64]int64, len(t.store.products))
	for id, p := range t.store.products {
		prodSnap[id] = p.Stock
	}

	err := fn(&fakeComponentRepo{store: t.store}, &fakeProductRepo{store: t.store})
	if err != nil {
		for id, stock := range compSnap {
			t.store.components[id].Stock = stock
		}
		for id, stock := range prodSnap {
			t.store.products[id].Stock = stock
		}
	}
	return err
}

// ── constructor del use case bajo prueba ──────────────────────────────────────

func newTestUseCase(store *fakeStore) *ledger.UseCase {
	resolver := ledger.NewRecipeResolver(&fakeRecipeRepo{store: store})
	return ledger.NewUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
		&fakeComponentRepo{store: store},
		resolver,
		&fakeLogRepo{store: store},
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
}

func testActor() entity.Actor {
	return entity.Actor{ID: "00000000-0000-0000-0000-000000000001", Username: "tester"}
}
