package snapshots

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moreshwar/stocky/internal/database"
	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/evaluation"
	"github.com/moreshwar/stocky/internal/modules/portfolio"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "snapshots.db"),
		Name: "snapshots-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db.Conn(), zerolog.Nop())
	require.NoError(t, err)
	return repo
}

func sampleReports() []evaluation.AssetReport {
	return []evaluation.AssetReport{
		{
			Symbol:    "EXFIN",
			Name:      "Example Finance Ltd",
			Class:     domain.AssetClassEquity,
			Industry:  "BANKING",
			Scoreable: true,
			Composite: 76,
		},
		{
			Symbol:    "GRWF",
			Name:      "Growth Fund",
			Class:     domain.AssetClassFund,
			Industry:  "GENERAL",
			Scoreable: true,
			Composite: 85,
		},
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepo(t)

	analytics := &portfolio.Analytics{
		TotalValue:  1000,
		HealthScore: 80,
		Allocation:  map[string]float64{portfolio.BucketEquity: 1000},
	}

	id, err := repo.Save(sampleReports(), analytics)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, id, got.ID)
	require.Len(t, got.Reports, 2)
	assert.Equal(t, "EXFIN", got.Reports[0].Symbol)
	assert.Equal(t, 76, got.Reports[0].Composite)
	require.NotNil(t, got.Analytics)
	assert.Equal(t, 80, got.Analytics.HealthScore)
	assert.Equal(t, 1000.0, got.Analytics.Allocation[portfolio.BucketEquity])
}

func TestRepository_GetMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Get("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_SaveWithoutAnalytics(t *testing.T) {
	repo := newTestRepo(t)

	id, err := repo.Save(sampleReports(), nil)
	require.NoError(t, err)

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Analytics)
}

func TestRepository_ListAndLatest(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.Save(sampleReports(), nil)
	require.NoError(t, err)
	second, err := repo.Save(sampleReports()[:1], &portfolio.Analytics{HealthScore: 70})
	require.NoError(t, err)

	summaries, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	ids := []string{summaries[0].ID, summaries[1].ID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)

	latest, err := repo.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	// Both rows may share a created_at second; the latest must at least be
	// one of the two stored runs.
	assert.Contains(t, ids, latest.ID)
}

func TestRepository_ListLimitDefaults(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Save(sampleReports(), nil)
	require.NoError(t, err)

	summaries, err := repo.List(0)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].AssetCount)
}

func TestRepository_EmptyListIsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	summaries, err := repo.List(10)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	latest, err := repo.Latest()
	require.NoError(t, err)
	assert.Nil(t, latest)
}
