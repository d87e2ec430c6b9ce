package service

import (
	"context"
	"strings"
	"time"

	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/repository"
)

// InquiryFilter narrows an inquiry listing.
type InquiryFilter struct {
	UnansweredOnly bool
}

// InquiryInput holds the author-editable fields of an inquiry.
type InquiryInput struct {
	Title   string
	Content string
}

func (in *InquiryInput) validate() error {
	return requireText("title and content are required", &in.Title, &in.Content)
}

// InquiryService manages support tickets. Non-admins only ever see their own.
type InquiryService interface {
	List(ctx context.Context, caller identity.Caller, filter InquiryFilter) ([]model.Inquiry, error)
	Get(ctx context.Context, caller identity.Caller, id uint) (*model.Inquiry, error)
	Create(ctx context.Context, caller identity.Caller, in InquiryInput) (*model.Inquiry, error)
	Update(ctx context.Context, caller identity.Caller, id uint, in InquiryInput) (*model.Inquiry, error)
	Delete(ctx context.Context, caller identity.Caller, id uint) error
	Reply(ctx context.Context, caller identity.Caller, id uint, reply string) (*model.Inquiry, error)
}

type inquiryService struct {
	repo     repository.InquiryRepository
	resolver *identity.Resolver
	now      func() time.Time
}

// NewInquiryService creates a new inquiry service.
func NewInquiryService(repo repository.InquiryRepository, resolver *identity.Resolver) InquiryService {
	return &inquiryService{repo: repo, resolver: resolver, now: time.Now}
}

func (s *inquiryService) List(ctx context.Context, caller identity.Caller, filter InquiryFilter) ([]model.Inquiry, error) {
	scope, err := s.resolver.Scope(ctx, caller)
	if err != nil {
		return nil, err
	}
	inquiries, err := s.repo.List(ctx, repository.InquiryQuery{
		AuthorID:       scope,
		UnansweredOnly: filter.UnansweredOnly,
	})
	if err != nil {
		return nil, apperr.Backend("list inquiries", err)
	}
	return inquiries, nil
}

func (s *inquiryService) Get(ctx context.Context, caller identity.Caller, id uint) (*model.Inquiry, error) {
	scope, err := s.resolver.Scope(ctx, caller)
	if err != nil {
		return nil, err
	}
	inquiry, err := s.repo.FindByID(ctx, id, scope)
	if err != nil {
		return nil, storeErr("get inquiry", err)
	}
	return inquiry, nil
}

func (s *inquiryService) Create(ctx context.Context, caller identity.Caller, in InquiryInput) (*model.Inquiry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.resolver.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	inquiry := &model.Inquiry{
		UserID:  caller.UserID,
		Title:   in.Title,
		Content: in.Content,
		Status:  model.InquiryStatusPending,
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, apperr.Backend("create inquiry", err)
	}
	return inquiry, nil
}

// Update is limited to the author; administrators answer through Reply.
func (s *inquiryService) Update(ctx context.Context, caller identity.Caller, id uint, in InquiryInput) (*model.Inquiry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.resolver.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	inquiry, err := s.repo.FindByID(ctx, id, "")
	if err != nil {
		return nil, storeErr("get inquiry", err)
	}
	if inquiry.UserID != caller.UserID {
		return nil, apperr.ErrForbidden
	}

	if err := s.repo.Update(ctx, id, in.Title, in.Content); err != nil {
		return nil, apperr.Backend("update inquiry", err)
	}
	inquiry.Title = in.Title
	inquiry.Content = in.Content
	return inquiry, nil
}

func (s *inquiryService) Delete(ctx context.Context, caller identity.Caller, id uint) error {
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id, ""); err != nil {
		return storeErr("get inquiry", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Backend("delete inquiry", err)
	}
	return nil
}

func (s *inquiryService) Reply(ctx context.Context, caller identity.Caller, id uint, reply string) (*model.Inquiry, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, apperr.Validation("reply is required")
	}
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	inquiry, err := s.repo.FindByID(ctx, id, "")
	if err != nil {
		return nil, storeErr("get inquiry", err)
	}

	at := s.now()
	if err := s.repo.Reply(ctx, id, reply, at); err != nil {
		return nil, apperr.Backend("reply inquiry", err)
	}
	inquiry.Reply = &reply
	inquiry.ReplyDate = &at
	inquiry.Status = model.InquiryStatusAnswered
	return inquiry, nil
}
