package service

import (
	"context"
	"fmt"

	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/repository"
)

// ReviewFilter narrows a review listing.
type ReviewFilter struct {
	UserID string
	Limit  int
}

// ReviewInput holds the author-editable fields of a review.
type ReviewInput struct {
	Title        string
	Content      string
	Rating       int
	Region       *string
	Organization *string
}

func (in *ReviewInput) validate() error {
	if err := requireText("title and content are required", &in.Title, &in.Content); err != nil {
		return err
	}
	if in.Rating < model.MinRating || in.Rating > model.MaxRating {
		return apperr.Validation(fmt.Sprintf("rating must be between %d and %d", model.MinRating, model.MaxRating))
	}
	in.Region = optional(in.Region)
	in.Organization = optional(in.Organization)
	return nil
}

// ReviewService manages testimonials. Authors edit their own; authors and
// administrators may delete.
type ReviewService interface {
	List(ctx context.Context, filter ReviewFilter) ([]model.Review, error)
	Get(ctx context.Context, id uint) (*model.Review, error)
	Create(ctx context.Context, caller identity.Caller, in ReviewInput) (*model.Review, error)
	Update(ctx context.Context, caller identity.Caller, id uint, in ReviewInput) (*model.Review, error)
	Delete(ctx context.Context, caller identity.Caller, id uint) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	resolver *identity.Resolver
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository, resolver *identity.Resolver) ReviewService {
	return &reviewService{repo: repo, resolver: resolver}
}

func (s *reviewService) List(ctx context.Context, filter ReviewFilter) ([]model.Review, error) {
	reviews, err := s.repo.List(ctx, repository.ReviewQuery{AuthorID: filter.UserID, Limit: filter.Limit})
	if err != nil {
		return nil, apperr.Backend("list reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) Get(ctx context.Context, id uint) (*model.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get review", err)
	}
	return review, nil
}

func (s *reviewService) Create(ctx context.Context, caller identity.Caller, in ReviewInput) (*model.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.resolver.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	review := &model.Review{
		UserID:       caller.UserID,
		Title:        in.Title,
		Content:      in.Content,
		Rating:       in.Rating,
		Region:       in.Region,
		Organization: in.Organization,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, apperr.Backend("create review", err)
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, caller identity.Caller, id uint, in ReviewInput) (*model.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.resolver.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get review", err)
	}
	if review.UserID != caller.UserID {
		return nil, apperr.ErrForbidden
	}

	review.Title = in.Title
	review.Content = in.Content
	review.Rating = in.Rating
	review.Region = in.Region
	review.Organization = in.Organization
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, apperr.Backend("update review", err)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, caller identity.Caller, id uint) error {
	if err := s.resolver.RequireAuthenticated(caller); err != nil {
		return err
	}
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeErr("get review", err)
	}
	if err := s.resolver.RequireOwnerOrAdmin(ctx, caller, review.UserID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Backend("delete review", err)
	}
	return nil
}
