package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"eduai/internal/audit"
	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/repository"
)

// PropagationError reports a plan change that did not commit. The write set
// is rolled back; Applied lists what had been written before the failure.
type PropagationError struct {
	UserID      string
	Plan        string
	PlanWritten bool
	Applied     []model.Field
	Err         error
}

func (e *PropagationError) Error() string {
	return fmt.Sprintf("apply plan %q to user %s: %v (rolled back after %d fields)", e.Plan, e.UserID, e.Err, len(e.Applied))
}

func (e *PropagationError) Unwrap() error {
	return e.Err
}

// PlanService moves users between plans.
type PlanService interface {
	// ApplyPlan sets the user's plan and copies the plan template onto the
	// user's entitlement. A plan without a template grants the defaults.
	ApplyPlan(ctx context.Context, caller identity.Caller, userID, planName string) (*model.User, error)
}

type planService struct {
	plans     repository.PlanRepository
	users     repository.UserRepository
	templates EntitlementService
	resolver  *identity.Resolver
	audit     audit.Recorder
}

// NewPlanService creates a new plan service.
func NewPlanService(
	plans repository.PlanRepository,
	users repository.UserRepository,
	templates EntitlementService,
	resolver *identity.Resolver,
	recorder audit.Recorder,
) PlanService {
	if recorder == nil {
		recorder = audit.Discard
	}
	return &planService{
		plans:     plans,
		users:     users,
		templates: templates,
		resolver:  resolver,
		audit:     recorder,
	}
}

func (s *planService) ApplyPlan(ctx context.Context, caller identity.Caller, userID, planName string) (*model.User, error) {
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	planName = strings.TrimSpace(planName)
	if planName == "" {
		return nil, apperr.Validation("plan is required")
	}

	plan, err := s.plans.FindByName(ctx, planName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrPlanNotFound
		}
		return nil, apperr.Backend("find plan", err)
	}

	features := model.DefaultFeatures
	pf, err := s.templates.GetPlanFeatures(ctx, plan.ID)
	switch {
	case err == nil:
		features = pf.Features
	case errors.Is(err, apperr.ErrNotFound):
		// plan without a template grants the defaults
	default:
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get user", err)
	}

	perr := &PropagationError{UserID: userID, Plan: plan.Name}
	err = s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		if err := repo.UpdatePlan(ctx, userID, plan.Name); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
		perr.PlanWritten = true
		for _, field := range model.FeatureFields {
			if err := repo.UpdateField(ctx, userID, features.Update(field)); err != nil {
				return fmt.Errorf("write %s: %w", field, err)
			}
			perr.Applied = append(perr.Applied, field)
		}
		return nil
	})
	s.audit.Record(ctx, auditEvent(model.AuditPlanApplied, caller, userID, plan.Name, err))
	if err != nil {
		perr.Err = apperr.Backend("apply plan", err)
		return nil, perr
	}

	user.Plan = plan.Name
	user.Entitlement = features
	return user, nil
}
