package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eduai/internal/model"
)

// PlanRepository defines plan catalog and plan template persistence.
type PlanRepository interface {
	List(ctx context.Context) ([]model.Plan, error)
	FindByID(ctx context.Context, id string) (*model.Plan, error)
	FindByName(ctx context.Context, name string) (*model.Plan, error)
	FindOrCreate(ctx context.Context, plan *model.Plan) (*model.Plan, error)
	FindFeatures(ctx context.Context, planID string) (*model.PlanFeature, error)
	UpsertFeatures(ctx context.Context, features *model.PlanFeature) error
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// List returns all plans in display order.
func (r *planRepository) List(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Order("name ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindByID finds a plan by ID.
func (r *planRepository) FindByID(ctx context.Context, id string) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindByName finds a plan by its unique name.
func (r *planRepository) FindByName(ctx context.Context, name string) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindOrCreate returns the plan with the same name, creating it when absent.
func (r *planRepository) FindOrCreate(ctx context.Context, plan *model.Plan) (*model.Plan, error) {
	existing, err := r.FindByName(ctx, plan.Name)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// FindFeatures returns the template for a plan.
func (r *planRepository) FindFeatures(ctx context.Context, planID string) (*model.PlanFeature, error) {
	var pf model.PlanFeature
	if err := r.db.WithContext(ctx).Where("plan_id = ?", planID).First(&pf).Error; err != nil {
		return nil, err
	}
	return &pf, nil
}

// UpsertFeatures inserts or replaces the template keyed by plan id.
func (r *planRepository) UpsertFeatures(ctx context.Context, features *model.PlanFeature) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "plan_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"can_auto_click",
			"can_auto_play",
			"can_change_speed",
			"can_mute",
			"max_speed",
			"updated_at",
		}),
	}).Omit("Plan").Create(features).Error
}
