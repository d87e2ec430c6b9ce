package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eduai/internal/model"
)

func TestPlanRepository_UpsertFeaturesReplaces(t *testing.T) {
	repo := NewPlanRepository(newTestDB(t))
	ctx := context.Background()

	plan, err := repo.FindOrCreate(ctx, &model.Plan{Name: "라이트", SortOrder: 1})
	require.NoError(t, err)

	first := model.Features{CanAutoClick: true, CanAutoPlay: true, CanMute: true, MaxSpeed: 1.5}
	require.NoError(t, repo.UpsertFeatures(ctx, &model.PlanFeature{PlanID: plan.ID, Features: first}))

	second := model.Features{CanMute: true, MaxSpeed: 2}
	require.NoError(t, repo.UpsertFeatures(ctx, &model.PlanFeature{PlanID: plan.ID, Features: second}))

	got, err := repo.FindFeatures(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got.Features)

	var rows int64
	require.NoError(t, repo.(*planRepository).db.Model(&model.PlanFeature{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestPlanRepository_FindOrCreate(t *testing.T) {
	repo := NewPlanRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.FindOrCreate(ctx, &model.Plan{Name: "프로", SortOrder: 2})
	require.NoError(t, err)
	again, err := repo.FindOrCreate(ctx, &model.Plan{Name: "프로", SortOrder: 9})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, 2, again.SortOrder)

	_, err = repo.FindOrCreate(ctx, &model.Plan{Name: "무료"})
	require.NoError(t, err)

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "무료", plans[0].Name)
	assert.Equal(t, "프로", plans[1].Name)

	_, err = repo.FindFeatures(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
