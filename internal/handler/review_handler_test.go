package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/service"
)

func TestReviewHandler_List(t *testing.T) {
	svc := new(MockReviewService)
	svc.On("List", mock.Anything, service.ReviewFilter{Limit: 5}).
		Return([]model.Review{{ID: 3, UserID: "alice", Title: "수업이 편해졌어요", Rating: 5}}, nil)
	h := NewReviewHandler(svc)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews?limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "수업이 편해졌어요")
	svc.AssertExpectations(t)
}

func TestReviewHandler_ListByUser(t *testing.T) {
	svc := new(MockReviewService)
	svc.On("List", mock.Anything, service.ReviewFilter{UserID: "alice"}).
		Return([]model.Review{{ID: 3, UserID: "alice", Rating: 4}}, nil)
	h := NewReviewHandler(svc)

	rec := call(t, newEcho(), alice, http.MethodGet, "", h.ListByUser, "userId", "alice")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"alice"`)
	svc.AssertExpectations(t)
}

func TestReviewHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockReviewService)
		svc.On("Get", mock.Anything, uint(3)).Return(&model.Review{ID: 3, Rating: 5}, nil)
		h := NewReviewHandler(svc)

		rec := call(t, newEcho(), identity.Guest(), http.MethodGet, "", h.Get, "id", "3")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rating":5`)
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewReviewHandler(new(MockReviewService))

		rec := call(t, newEcho(), identity.Guest(), http.MethodGet, "", h.Get, "id", "abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_ID")
	})
}

func TestReviewHandler_Create(t *testing.T) {
	region := "서울"
	in := service.ReviewInput{Title: "좋아요", Content: "잘 쓰고 있습니다", Rating: 5, Region: &region}

	t.Run("created", func(t *testing.T) {
		svc := new(MockReviewService)
		svc.On("Create", mock.Anything, alice, in).
			Return(&model.Review{ID: 9, UserID: "alice", Title: in.Title, Rating: 5, Region: &region}, nil)
		h := NewReviewHandler(svc)

		rec := call(t, newEcho(), alice, http.MethodPost,
			`{"title":"좋아요","content":"잘 쓰고 있습니다","rating":5,"region":"서울"}`, h.Create)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":9`)
		svc.AssertExpectations(t)
	})

	t.Run("rating out of range", func(t *testing.T) {
		bad := service.ReviewInput{Title: "t", Content: "c", Rating: 6}
		svc := new(MockReviewService)
		svc.On("Create", mock.Anything, alice, bad).Return(nil, errors.Validation("rating must be between 1 and 5"))
		h := NewReviewHandler(svc)

		rec := call(t, newEcho(), alice, http.MethodPost, `{"title":"t","content":"c","rating":6}`, h.Create)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "rating must be between 1 and 5")
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewReviewHandler(new(MockReviewService))

		rec := call(t, newEcho(), alice, http.MethodPost, `{"rating":"five"`, h.Create)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
	})
}

func TestReviewHandler_Update(t *testing.T) {
	in := service.ReviewInput{Title: "t", Content: "c", Rating: 3}

	t.Run("not the author", func(t *testing.T) {
		svc := new(MockReviewService)
		svc.On("Update", mock.Anything, alice, uint(4), in).Return(nil, errors.ErrForbidden)
		h := NewReviewHandler(svc)

		rec := call(t, newEcho(), alice, http.MethodPut, `{"title":"t","content":"c","rating":3}`, h.Update, "id", "4")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("author", func(t *testing.T) {
		svc := new(MockReviewService)
		svc.On("Update", mock.Anything, alice, uint(4), in).Return(&model.Review{ID: 4, UserID: "alice", Title: "t", Rating: 3}, nil)
		h := NewReviewHandler(svc)

		rec := call(t, newEcho(), alice, http.MethodPut, `{"title":"t","content":"c","rating":3}`, h.Update, "id", "4")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rating":3`)
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := new(MockReviewService)
		svc.On("Delete", mock.Anything, admin, uint(4)).Return(nil)
		h := NewReviewHandler(svc)

		rec := call(t, newEcho(), admin, http.MethodDelete, "", h.Delete, "id", "4")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(MockReviewService)
		svc.On("Delete", mock.Anything, admin, uint(8)).Return(errors.ErrNotFound)
		h := NewReviewHandler(svc)

		rec := call(t, newEcho(), admin, http.MethodDelete, "", h.Delete, "id", "8")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
