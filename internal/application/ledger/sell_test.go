package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendyelo/nooda-inventory/internal/application/ledger"
	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ventas: el carrito se valida y aplica como una sola unidad. Ingredientes
// compartidos entre productos se agregan ANTES de validar; validar item por
// item contra la misma cifra de stock daría resultados falsos.
// ──────────────────────────────────────────────────────────────────────────────

func TestSell_AgregaIngredienteCompartidoEnElCarrito(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Caja", 10, "unit")
	store.addComponent(2, "Bolsa", 20, "unit")
	store.addProduct(10, "Brownie", "BRW-01", 8)
	store.addProduct(11, "Galleta", "GLL-01", 6)
	store.addRecipe(10, 1, 1, entity.ProcessTypeSALE) // Brownie usa 1 caja
	store.addRecipe(11, 1, 1, entity.ProcessTypeSALE) // Galleta también usa 1 caja
	store.addRecipe(11, 2, 2, entity.ProcessTypeSALE) // y 2 bolsas

	uc := newTestUseCase(store)
	result, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{
			{ProductID: 10, Quantity: 3},
			{ProductID: 11, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Sold 5 items", result.Description)
	assert.Equal(t, []string{"3x Brownie", "2x Galleta"}, result.SaleSummary)
	assert.Equal(t, []string{
		"Brownie: 8 -> 5",
		"Galleta: 6 -> 4",
		"Caja: 10 -> 5", // 3 + 2 agregado en un solo delta
		"Bolsa: 20 -> 16",
	}, result.ImpactSummary)

	assert.Equal(t, int64(5), store.productStock(10))
	assert.Equal(t, int64(4), store.productStock(11))
	assert.Equal(t, int64(5), store.componentStock(1))
	assert.Equal(t, int64(16), store.componentStock(2))
}

// El faltante se detecta sobre el TOTAL agregado del carrito: 3 + 2 cajas
// contra 4 disponibles falla, aunque cada línea por separado alcanzaría.
func TestSell_FaltanteSobreTotalAgregado_TodoONada(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Caja", 4, "unit")
	store.addProduct(10, "Brownie", "BRW-01", 8)
	store.addProduct(11, "Galleta", "GLL-01", 6)
	store.addRecipe(10, 1, 1, entity.ProcessTypeSALE)
	store.addRecipe(11, 1, 1, entity.ProcessTypeSALE)

	uc := newTestUseCase(store)
	_, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{
			{ProductID: 10, Quantity: 3},
			{ProductID: 11, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Insufficient stock for Caja. Required: 5, Available: 4")

	// Todo-o-nada: nada cambió.
	assert.Equal(t, int64(8), store.productStock(10))
	assert.Equal(t, int64(6), store.productStock(11))
	assert.Equal(t, int64(4), store.componentStock(1))
	assert.Empty(t, store.logs)
}

// Faltantes de productos y de ingredientes se reportan juntos: bloque de
// productos, línea en blanco, bloque de ingredientes.
func TestSell_FaltantesDeProductosEIngredientesJuntos(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Caja", 1, "unit")
	store.addProduct(10, "Brownie", "BRW-01", 2)
	store.addRecipe(10, 1, 1, entity.ProcessTypeSALE)

	uc := newTestUseCase(store)
	_, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{{ProductID: 10, Quantity: 5}},
	})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	require.Len(t, insufficient.Products, 1)
	require.Len(t, insufficient.Components, 1)
	assert.Equal(t, "Brownie", insufficient.Products[0].Name)
	assert.Equal(t, "Caja", insufficient.Components[0].Name)

	blocks := strings.Split(err.Error(), "\n\n")
	require.Len(t, blocks, 2, "productos e ingredientes van en bloques separados por línea en blanco")
	assert.Contains(t, blocks[0], "Brownie")
	assert.Contains(t, blocks[1], "Caja")
}

func TestSell_LineasDuplicadasSeAgreganPorProducto(t *testing.T) {
	store := newFakeStore()
	store.addProduct(10, "Brownie", "BRW-01", 10)

	uc := newTestUseCase(store)
	result, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 10, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"5x Brownie"}, result.SaleSummary, "mismo producto dos veces se funde en una línea")
	assert.Equal(t, int64(5), store.productStock(10))
}

func TestSell_CantidadCeroSeIgnora(t *testing.T) {
	store := newFakeStore()
	store.addProduct(10, "Brownie", "BRW-01", 10)
	store.addProduct(11, "Galleta", "GLL-01", 10)

	uc := newTestUseCase(store)
	result, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{
			{ProductID: 10, Quantity: 0},
			{ProductID: 11, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2x Galleta"}, result.SaleSummary)
	assert.Equal(t, int64(10), store.productStock(10), "cantidad cero no toca el producto")
}

func TestSell_EntradasInvalidas(t *testing.T) {
	store := newFakeStore()
	store.addProduct(10, "Brownie", "BRW-01", 10)
	uc := newTestUseCase(store)

	cases := []struct {
		name  string
		items []ledger.SaleItem
	}{
		{"carrito vacío", nil},
		{"solo cantidades cero", []ledger.SaleItem{{ProductID: 10, Quantity: 0}}},
		{"cantidad negativa", []ledger.SaleItem{{ProductID: 10, Quantity: -1}}},
		{"producto inválido", []ledger.SaleItem{{ProductID: 0, Quantity: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{Items: tc.items})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, int64(10), store.productStock(10))
}

func TestSell_ProductoInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)

	_, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{{ProductID: 99, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un producto sin receta SALE se vende igual: solo se descuenta el producto.
func TestSell_SinRecetaSale_SoloDescuentaProducto(t *testing.T) {
	store := newFakeStore()
	store.addProduct(10, "Brownie", "BRW-01", 10)

	uc := newTestUseCase(store)
	result, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{{ProductID: 10, Quantity: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Brownie: 10 -> 6"}, result.ImpactSummary)
	assert.Equal(t, int64(6), store.productStock(10))
}

func TestPreviewSell_CoincideConSellYNoMuta(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Caja", 10, "unit")
	store.addProduct(10, "Brownie", "BRW-01", 8)
	store.addRecipe(10, 1, 1, entity.ProcessTypeSALE)

	uc := newTestUseCase(store)
	in := ledger.SellInput{Items: []ledger.SaleItem{{ProductID: 10, Quantity: 3}}}

	preview, err := uc.PreviewSell(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(8), store.productStock(10), "el preview no debe mutar stock")
	assert.Empty(t, store.logs)

	applied, err := uc.Sell(context.Background(), testActor(), in)
	require.NoError(t, err)
	assert.Equal(t, preview.SaleSummary, applied.SaleSummary)
	assert.Equal(t, preview.ImpactSummary, applied.ImpactSummary)
}

func TestSell_RegistraEntradaDeAuditoria(t *testing.T) {
	store := newFakeStore()
	store.addProduct(10, "Brownie", "BRW-01", 10)
	store.addProduct(11, "Galleta", "GLL-01", 10)

	uc := newTestUseCase(store)
	_, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{
		Items: []ledger.SaleItem{
			{ProductID: 10, Quantity: 3},
			{ProductID: 11, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, entity.ActionTypeSALE, entry.ActionType)
	assert.Equal(t, "Sold 5 items", entry.Description)
	assert.Equal(t, []string{"3x Brownie", "2x Galleta"}, entry.Details.SaleSummary)
	assert.NotEmpty(t, entry.Details.TransactionID)
}

// Propiedad de conservación: para carritos aleatorios sobre productos que
// comparten un ingrediente, el ingrediente consumido debe ser exactamente la
// suma de cantidad*consumo-por-unidad de todas las líneas.
func TestSell_ConservacionDeIngredienteCompartido(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	perUnit := map[int64]int64{10: 1, 11: 2, 12: 3}
	for i := 0; i < 25; i++ {
		store := newFakeStore()
		store.addComponent(1, "Caja", 100_000, "unit")
		for id, qty := range perUnit {
			store.addProduct(id, fmt.Sprintf("Producto%d", id), fmt.Sprintf("SKU-%d", id), 100_000)
			store.addRecipe(id, 1, qty, entity.ProcessTypeSALE)
		}

		items := make([]ledger.SaleItem, 0)
		var expected int64
		var totalQty int64
		for _, id := range []int64{10, 11, 12} {
			n := 1 + rng.Int63n(4) // líneas repetidas por producto
			for j := int64(0); j < n; j++ {
				qty := rng.Int63n(10)
				items = append(items, ledger.SaleItem{ProductID: id, Quantity: qty})
				expected += qty * perUnit[id]
				totalQty += qty
			}
		}
		if totalQty == 0 {
			continue
		}

		uc := newTestUseCase(store)
		_, err := uc.Sell(context.Background(), testActor(), ledger.SellInput{Items: items})
		require.NoError(t, err)
		assert.Equal(t, 100_000-expected, store.componentStock(1),
			"el consumo agregado debe conservar la suma exacta de las líneas")
	}
}
