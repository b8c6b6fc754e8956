package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendyelo/nooda-inventory/internal/application/activity"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
)

type fakeLogRepo struct {
	entries   []*entity.ActivityLog
	lastLimit int
}

func (r *fakeLogRepo) Create(context.Context, *entity.ActivityLog) error { return nil }

func (r *fakeLogRepo) ListRecent(_ context.Context, limit int) ([]*entity.ActivityLog, error) {
	r.lastLimit = limit
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func (r *fakeLogRepo) ListByTypeBetween(context.Context, string, time.Time, time.Time) ([]*entity.ActivityLog, error) {
	return nil, nil
}

func TestListRecent_MapeaEntradasADTO(t *testing.T) {
	username := "tester"
	repo := &fakeLogRepo{entries: []*entity.ActivityLog{
		{
			ID:          2,
			CreatedAt:   time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			ActionType:  entity.ActionTypeSALE,
			Description: "Sold 5 items",
			Username:    &username,
			Details: entity.ActivityDetails{
				SaleSummary:   []string{"5x Brownie"},
				ImpactSummary: []string{"Brownie: 10 -> 5"},
			},
		},
	}}

	uc := activity.NewUseCase(repo)
	out, err := uc.ListRecent(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, entity.ActionTypeSALE, out[0].ActionType)
	assert.Equal(t, "Sold 5 items", out[0].Description)
	assert.Equal(t, &username, out[0].Username)
	assert.Equal(t, []string{"5x Brownie"}, out[0].SaleSummary)
	assert.Equal(t, []string{"Brownie: 10 -> 5"}, out[0].ImpactSummary)
}

// limit <= 0 usa el default; valores por encima del máximo se recortan.
func TestListRecent_NormalizaElLimite(t *testing.T) {
	repo := &fakeLogRepo{}
	uc := activity.NewUseCase(repo)

	_, err := uc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)

	_, err = uc.ListRecent(context.Background(), -5)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)

	_, err = uc.ListRecent(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit)

	_, err = uc.ListRecent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.lastLimit)
}
