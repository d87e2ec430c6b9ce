// Package identity turns bearer tokens into callers and answers role
// questions about them. A Caller is passed explicitly into every service
// call; nothing here holds per-request state.
package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eduai/internal/auth"
	apperr "eduai/internal/errors"
	"eduai/internal/model"
)

// ContextKey is where the authenticated Caller is stored on the echo context.
const ContextKey = "caller"

// Caller identifies who is making a request. The zero value is a guest.
type Caller struct {
	UserID  string
	Email   string
	TokenID string
}

// Guest returns the unauthenticated caller.
func Guest() Caller {
	return Caller{}
}

// IsGuest reports whether the caller is unauthenticated.
func (c Caller) IsGuest() bool {
	return c.UserID == ""
}

// ProfileReader loads profile rows. repository.UserRepository satisfies it.
type ProfileReader interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Resolver authenticates tokens and evaluates role checks against the
// current profile row. Admin status is read on every call.
type Resolver struct {
	jwt      *auth.JWTService
	tokens   auth.TokenStoreInterface
	profiles ProfileReader
}

// NewResolver creates a new resolver.
func NewResolver(jwt *auth.JWTService, tokens auth.TokenStoreInterface, profiles ProfileReader) *Resolver {
	return &Resolver{jwt: jwt, tokens: tokens, profiles: profiles}
}

// Authenticate verifies an access token and returns its caller.
func (r *Resolver) Authenticate(ctx context.Context, token string) (Caller, error) {
	if token == "" || r.jwt == nil {
		return Guest(), apperr.ErrUnauthenticated
	}
	claims, err := r.jwt.ValidateKind(token, auth.KindAccess)
	if err != nil {
		return Guest(), apperr.ErrUnauthenticated
	}
	if r.tokens != nil {
		// a revocation that cannot be checked counts as revoked
		revoked, err := r.tokens.IsAccessTokenBlacklisted(ctx, claims.ID)
		if err != nil || revoked {
			return Guest(), apperr.ErrUnauthenticated
		}
	}
	return Caller{UserID: claims.UserID, Email: claims.Email, TokenID: claims.ID}, nil
}

// IsAdmin reports the is_admin flag of the user's profile.
func (r *Resolver) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := r.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.ErrProfileNotFound
		}
		return false, apperr.Backend("load profile", err)
	}
	return user.IsAdmin, nil
}

// RequireAuthenticated fails for guests.
func (r *Resolver) RequireAuthenticated(c Caller) error {
	if c.IsGuest() {
		return apperr.ErrUnauthenticated
	}
	return nil
}

// RequireAdmin fails unless the caller's profile is an administrator.
func (r *Resolver) RequireAdmin(ctx context.Context, c Caller) error {
	if err := r.RequireAuthenticated(c); err != nil {
		return err
	}
	admin, err := r.IsAdmin(ctx, c.UserID)
	if err != nil {
		return err
	}
	if !admin {
		return apperr.ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin passes for the record owner without a profile lookup,
// otherwise requires an administrator.
func (r *Resolver) RequireOwnerOrAdmin(ctx context.Context, c Caller, ownerID string) error {
	if err := r.RequireAuthenticated(c); err != nil {
		return err
	}
	if c.UserID == ownerID {
		return nil
	}
	return r.RequireAdmin(ctx, c)
}

// Scope returns the author filter for owner-scoped lists: empty for
// administrators, the caller's own id otherwise.
func (r *Resolver) Scope(ctx context.Context, c Caller) (string, error) {
	if err := r.RequireAuthenticated(c); err != nil {
		return "", err
	}
	admin, err := r.IsAdmin(ctx, c.UserID)
	if err != nil {
		return "", err
	}
	if admin {
		return "", nil
	}
	return c.UserID, nil
}
