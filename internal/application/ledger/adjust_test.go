package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendyelo/nooda-inventory/internal/application/ledger"
	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes manuales: sin receta, mismo invariante de stock no negativo y
// misma auditoría que el resto de las mutaciones.
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_Agregar(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Harina", 30, "gr")

	uc := newTestUseCase(store)
	result, err := uc.AdjustStock(context.Background(), testActor(), ledger.AdjustInput{
		ComponentID: 1,
		Direction:   ledger.AdjustDirectionAdd,
		Amount:      15,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(45), result.NewStock)
	assert.Equal(t, "Stock of Harina adjusted from 30 gr to 45 gr", result.Description)
	assert.Equal(t, int64(45), store.componentStock(1))

	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, entity.ActionTypeSTOCKADJUSTMENT, entry.ActionType)
	assert.Equal(t, []string{"Harina: 30 -> 45"}, entry.Details.ImpactSummary)
}

func TestAdjustStock_Restar(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Harina", 30, "gr")

	uc := newTestUseCase(store)
	result, err := uc.AdjustStock(context.Background(), testActor(), ledger.AdjustInput{
		ComponentID: 1,
		Direction:   ledger.AdjustDirectionSubtract,
		Amount:      12,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(18), result.NewStock)
	assert.Equal(t, "Stock of Harina adjusted from 30 gr to 18 gr", result.Description)
}

// Restar más de lo disponible falla con el faltante enumerado y no deja
// rastro: ni mutación ni entrada de auditoría.
func TestAdjustStock_RestaInsuficiente(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Harina", 30, "gr")

	uc := newTestUseCase(store)
	_, err := uc.AdjustStock(context.Background(), testActor(), ledger.AdjustInput{
		ComponentID: 1,
		Direction:   ledger.AdjustDirectionSubtract,
		Amount:      100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	require.Len(t, insufficient.Components, 1)
	assert.Equal(t, int64(100), insufficient.Components[0].Required)
	assert.Equal(t, int64(30), insufficient.Components[0].Available)

	assert.Equal(t, int64(30), store.componentStock(1), "el stock debe quedar intacto")
	assert.Empty(t, store.logs)
}

func TestAdjustStock_EntradasInvalidas(t *testing.T) {
	store := newFakeStore()
	store.addComponent(1, "Harina", 30, "gr")
	uc := newTestUseCase(store)

	cases := []ledger.AdjustInput{
		{ComponentID: 0, Direction: ledger.AdjustDirectionAdd, Amount: 5},
		{ComponentID: 1, Direction: ledger.AdjustDirectionAdd, Amount: 0},
		{ComponentID: 1, Direction: ledger.AdjustDirectionAdd, Amount: -5},
		{ComponentID: 1, Direction: "remove", Amount: 5},
	}
	for _, in := range cases {
		_, err := uc.AdjustStock(context.Background(), testActor(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, int64(30), store.componentStock(1))
}

func TestAdjustStock_ComponenteInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)

	_, err := uc.AdjustStock(context.Background(), testActor(), ledger.AdjustInput{
		ComponentID: 99,
		Direction:   ledger.AdjustDirectionAdd,
		Amount:      5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
