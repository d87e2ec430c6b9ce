package service

import (
	"context"

	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/repository"
)

// NoticeFilter narrows a notice listing.
type NoticeFilter struct {
	ImportantOnly bool
	Limit         int
}

// NoticeInput holds the editable fields of a notice.
type NoticeInput struct {
	Title       string
	Content     string
	IsImportant bool
}

func (in *NoticeInput) validate() error {
	return requireText("title and content are required", &in.Title, &in.Content)
}

// NoticeService manages announcements. Reads are public; writes are admin only.
type NoticeService interface {
	List(ctx context.Context, filter NoticeFilter) ([]model.Notice, error)
	Get(ctx context.Context, id uint) (*model.Notice, error)
	Create(ctx context.Context, caller identity.Caller, in NoticeInput) (*model.Notice, error)
	Update(ctx context.Context, caller identity.Caller, id uint, in NoticeInput) (*model.Notice, error)
	Delete(ctx context.Context, caller identity.Caller, id uint) error
}

type noticeService struct {
	repo     repository.NoticeRepository
	resolver *identity.Resolver
}

// NewNoticeService creates a new notice service.
func NewNoticeService(repo repository.NoticeRepository, resolver *identity.Resolver) NoticeService {
	return &noticeService{repo: repo, resolver: resolver}
}

func (s *noticeService) List(ctx context.Context, filter NoticeFilter) ([]model.Notice, error) {
	notices, err := s.repo.List(ctx, repository.NoticeQuery{
		ImportantOnly: filter.ImportantOnly,
		Limit:         filter.Limit,
	})
	if err != nil {
		return nil, apperr.Backend("list notices", err)
	}
	return notices, nil
}

func (s *noticeService) Get(ctx context.Context, id uint) (*model.Notice, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get notice", err)
	}
	return notice, nil
}

func (s *noticeService) Create(ctx context.Context, caller identity.Caller, in NoticeInput) (*model.Notice, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	author := caller.UserID
	notice := &model.Notice{
		Title:       in.Title,
		Content:     in.Content,
		IsImportant: in.IsImportant,
		UserID:      &author,
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, apperr.Backend("create notice", err)
	}
	return notice, nil
}

func (s *noticeService) Update(ctx context.Context, caller identity.Caller, id uint, in NoticeInput) (*model.Notice, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get notice", err)
	}
	if err := s.repo.Update(ctx, id, in.Title, in.Content, in.IsImportant); err != nil {
		return nil, apperr.Backend("update notice", err)
	}

	notice.Title = in.Title
	notice.Content = in.Content
	notice.IsImportant = in.IsImportant
	return notice, nil
}

func (s *noticeService) Delete(ctx context.Context, caller identity.Caller, id uint) error {
	if err := s.resolver.RequireAdmin(ctx, caller); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr("get notice", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Backend("delete notice", err)
	}
	return nil
}
