package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"eduai/internal/audit"
	"eduai/internal/cache"
	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/repository"
)

const (
	plansCacheKey         = "plans"
	planFeaturesKeyPrefix = "plan_features:"
)

// EntitlementService reads and writes plans, plan templates and per-user
// entitlements. Plan data is cached; profile rows never are.
type EntitlementService interface {
	ListPlans(ctx context.Context) ([]model.Plan, error)
	GetPlanFeatures(ctx context.Context, planID string) (*model.PlanFeature, error)
	UpsertPlanFeatures(ctx context.Context, caller identity.Caller, planID string, features model.Features) (*model.PlanFeature, error)
	GetUserEntitlement(ctx context.Context, userID string) (*model.Features, error)
	SetUserEntitlementField(ctx context.Context, caller identity.Caller, userID string, update model.FieldUpdate) (*model.User, error)
}

type entitlementService struct {
	plans    repository.PlanRepository
	users    repository.UserRepository
	resolver *identity.Resolver
	cache    *cache.Client
	cacheTTL time.Duration
	audit    audit.Recorder
}

// NewEntitlementService creates a new entitlement service.
func NewEntitlementService(
	plans repository.PlanRepository,
	users repository.UserRepository,
	resolver *identity.Resolver,
	cache *cache.Client,
	cacheTTL time.Duration,
	recorder audit.Recorder,
) EntitlementService {
	if recorder == nil {
		recorder = audit.Discard
	}
	return &entitlementService{
		plans:    plans,
		users:    users,
		resolver: resolver,
		cache:    cache,
		cacheTTL: cacheTTL,
		audit:    recorder,
	}
}

func (s *entitlementService) ListPlans(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if s.cache.GetJSON(ctx, plansCacheKey, &plans) {
		return plans, nil
	}

	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, apperr.Backend("list plans", err)
	}
	_ = s.cache.SetJSON(ctx, plansCacheKey, plans, s.cacheTTL)
	return plans, nil
}

func (s *entitlementService) GetPlanFeatures(ctx context.Context, planID string) (*model.PlanFeature, error) {
	key := planFeaturesKeyPrefix + planID

	var cached model.PlanFeature
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	pf, err := s.plans.FindFeatures(ctx, planID)
	if err != nil {
		return nil, storeErr("get plan features", err)
	}
	_ = s.cache.SetJSON(ctx, key, pf, s.cacheTTL)
	return pf, nil
}

func (s *entitlementService) UpsertPlanFeatures(ctx context.Context, caller identity.Caller, planID string, features model.Features) (*model.PlanFeature, error) {
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	if features.MaxSpeed < model.MinPlanSpeed || features.MaxSpeed > model.MaxPlanSpeed {
		return nil, apperr.Validation(fmt.Sprintf("max_speed must be between %.1f and %.1f", model.MinPlanSpeed, model.MaxPlanSpeed))
	}
	if _, err := s.plans.FindByID(ctx, planID); err != nil {
		return nil, storeErr("get plan", err)
	}

	pf := &model.PlanFeature{PlanID: planID, Features: features}
	err := s.plans.UpsertFeatures(ctx, pf)
	s.audit.Record(ctx, auditEvent(model.AuditPlanFeatures, caller, planID, fmt.Sprintf("%+v", features), err))
	if err != nil {
		return nil, apperr.Backend("upsert plan features", err)
	}

	_ = s.cache.Delete(ctx, planFeaturesKeyPrefix+planID)
	return pf, nil
}

func (s *entitlementService) GetUserEntitlement(ctx context.Context, userID string) (*model.Features, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return &user.Entitlement, nil
}

func (s *entitlementService) SetUserEntitlementField(ctx context.Context, caller identity.Caller, userID string, update model.FieldUpdate) (*model.User, error) {
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Backend("get user", err)
	}

	err = s.users.UpdateField(ctx, userID, update)
	s.audit.Record(ctx, auditEvent(model.AuditEntitlementSet, caller, userID, fmt.Sprintf("%s=%v", update.Field, update.Value()), err))
	if err != nil {
		return nil, apperr.Backend("update entitlement", err)
	}

	update.Apply(user)
	return user, nil
}

func auditEvent(kind model.AuditKind, caller identity.Caller, subject, detail string, err error) model.AuditEvent {
	ev := model.AuditEvent{
		Kind:      kind,
		ActorID:   caller.UserID,
		SubjectID: subject,
		Detail:    detail,
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	return ev
}
