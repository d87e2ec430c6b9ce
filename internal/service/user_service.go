package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eduai/internal/audit"
	"eduai/internal/auth"
	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/repository"
)

// UserService exposes profiles to their owners and to administrators.
type UserService interface {
	ListUsers(ctx context.Context, caller identity.Caller) ([]model.User, error)
	GetUser(ctx context.Context, caller identity.Caller, userID string) (*model.User, error)
	DeleteAccount(ctx context.Context, caller identity.Caller, password string) error
}

type userService struct {
	repo     repository.UserRepository
	resolver *identity.Resolver
	tokens   auth.TokenStoreInterface
	audit    audit.Recorder
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, resolver *identity.Resolver, tokens auth.TokenStoreInterface, recorder audit.Recorder) UserService {
	if recorder == nil {
		recorder = audit.Discard
	}
	return &userService{repo: repo, resolver: resolver, tokens: tokens, audit: recorder}
}

func (s *userService) ListUsers(ctx context.Context, caller identity.Caller) ([]model.User, error) {
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Backend("list users", err)
	}
	return users, nil
}

// GetUser returns a profile to its owner or to an administrator.
func (s *userService) GetUser(ctx context.Context, caller identity.Caller, userID string) (*model.User, error) {
	if err := s.resolver.RequireOwnerOrAdmin(ctx, caller, userID); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if caller.UserID == userID && errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrProfileNotFound
		}
		return nil, storeErr("get user", err)
	}
	return user, nil
}

// DeleteAccount removes the caller's profile after re-checking the password
// and revokes the current access token.
func (s *userService) DeleteAccount(ctx context.Context, caller identity.Caller, password string) error {
	if err := s.resolver.RequireAuthenticated(caller); err != nil {
		return err
	}
	user, err := s.repo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrProfileNotFound
		}
		return apperr.Backend("get user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return apperr.ErrInvalidCredentials
	}

	err = s.repo.Delete(ctx, user.ID)
	s.audit.Record(ctx, auditEvent(model.AuditAccountDeleted, caller, user.ID, user.Email, err))
	if err != nil {
		return apperr.Backend("delete user", err)
	}

	if caller.TokenID != "" && s.tokens != nil {
		_ = s.tokens.BlacklistAccessToken(ctx, caller.TokenID, auth.AccessTokenExpiry)
	}
	return nil
}
