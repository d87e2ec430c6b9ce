package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eduai/internal/config"
	"eduai/internal/db"
	"eduai/internal/model"
	"eduai/internal/repository"
)

// planSeed is one catalog entry with its feature template.
type planSeed struct {
	Name        string
	Description string
	Features    model.Features
}

var catalog = []planSeed{
	{
		Name:        model.DefaultPlanName,
		Description: "기본 재생 기능",
		Features:    model.DefaultFeatures,
	},
	{
		Name:        "라이트",
		Description: "자동 클릭과 자동 재생, 1.5배속",
		Features:    model.Features{CanAutoClick: true, CanAutoPlay: true, CanMute: true, MaxSpeed: 1.5},
	},
	{
		Name:        "프로",
		Description: "전체 자동화 기능과 최대 배속",
		Features: model.Features{
			CanAutoClick:   true,
			CanAutoPlay:    true,
			CanChangeSpeed: true,
			CanMute:        true,
			MaxSpeed:       model.MaxPlanSpeed,
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	plans := repository.NewPlanRepository(gormDB)
	users := repository.NewUserRepository(gormDB)

	created, err := seedPlans(ctx, plans, catalog)
	if err != nil {
		log.Fatalf("Failed to seed plans: %v", err)
	}
	log.Printf("  - Plans processed: %d (new: %d)", len(catalog), created)

	admin, err := seedAdmin(ctx, users, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("  - Admin account: %s", admin.Email)

	log.Printf("Seed completed successfully!")
}

// seedPlans makes sure every catalog plan exists and replaces its template.
func seedPlans(ctx context.Context, repo repository.PlanRepository, seeds []planSeed) (created int, err error) {
	for i, seed := range seeds {
		_, lookupErr := repo.FindByName(ctx, seed.Name)
		if lookupErr != nil && !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("plan %s: %w", seed.Name, lookupErr)
		}

		desc := seed.Description
		plan, err := repo.FindOrCreate(ctx, &model.Plan{Name: seed.Name, Description: &desc, SortOrder: i})
		if err != nil {
			return created, fmt.Errorf("plan %s: %w", seed.Name, err)
		}
		if lookupErr != nil {
			created++
		}
		if err := repo.UpsertFeatures(ctx, &model.PlanFeature{PlanID: plan.ID, Features: seed.Features}); err != nil {
			return created, fmt.Errorf("plan %s features: %w", seed.Name, err)
		}
	}
	return created, nil
}

// seedAdmin creates the bootstrap administrator or promotes an existing
// profile with the same email.
func seedAdmin(ctx context.Context, repo repository.UserRepository, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("admin email and password are required")
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		update := model.FieldUpdate{Field: model.FieldIsAdmin, Flag: true}
		if err := repo.UpdateField(ctx, existing.ID, update); err != nil {
			return nil, fmt.Errorf("promote %s: %w", email, err)
		}
		update.Apply(existing)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &model.User{
		Email:        email,
		Name:         "관리자",
		PasswordHash: string(hash),
		IsAdmin:      true,
		Plan:         catalog[len(catalog)-1].Name,
		Entitlement:  catalog[len(catalog)-1].Features,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create %s: %w", email, err)
	}
	return admin, nil
}
