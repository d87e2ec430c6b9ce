package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eduai/internal/errors"
	"eduai/internal/model"
	"eduai/internal/service"
)

func TestInquiryHandler_List(t *testing.T) {
	svc := new(MockInquiryService)
	svc.On("List", mock.Anything, alice, service.InquiryFilter{}).
		Return([]model.Inquiry{{ID: 1, UserID: "alice", Status: model.InquiryStatusPending}}, nil)
	h := NewInquiryHandler(svc)

	rec := call(t, newEcho(), alice, http.MethodGet, "", h.List)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestInquiryHandler_Reply(t *testing.T) {
	t.Run("answered", func(t *testing.T) {
		svc := new(MockInquiryService)
		reply := "확인했습니다."
		svc.On("Reply", mock.Anything, admin, uint(5), reply).
			Return(&model.Inquiry{ID: 5, Status: model.InquiryStatusAnswered, Reply: &reply}, nil)
		h := NewInquiryHandler(svc)

		rec := call(t, newEcho(), admin, http.MethodPost, `{"reply":"확인했습니다."}`, h.Reply, "id", "5")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"answered"`)
	})

	t.Run("blank reply", func(t *testing.T) {
		svc := new(MockInquiryService)
		svc.On("Reply", mock.Anything, admin, uint(5), "  ").Return(nil, errors.Validation("reply is required"))
		h := NewInquiryHandler(svc)

		rec := call(t, newEcho(), admin, http.MethodPost, `{"reply":"  "}`, h.Reply, "id", "5")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInquiryHandler_Update(t *testing.T) {
	svc := new(MockInquiryService)
	svc.On("Update", mock.Anything, admin, uint(2), service.InquiryInput{Title: "t", Content: "c"}).Return(nil, errors.ErrForbidden)
	h := NewInquiryHandler(svc)

	rec := call(t, newEcho(), admin, http.MethodPut, `{"title":"t","content":"c"}`, h.Update, "id", "2")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
