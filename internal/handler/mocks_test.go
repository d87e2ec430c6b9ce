package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/mail"
	"eduai/internal/model"
	"eduai/internal/service"
)

type structValidator struct {
	v *validator.Validate
}

func (s structValidator) Validate(i interface{}) error { return s.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	return e
}

// call runs fn against a JSON request and renders any returned error the
// way the server would.
func call(t *testing.T, e *echo.Echo, caller identity.Caller, method, body string, fn echo.HandlerFunc, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if !caller.IsGuest() {
		c.Set(identity.ContextKey, caller)
	}
	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorResponse {
	t.Helper()
	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

var (
	admin = identity.Caller{UserID: "admin-1", Email: "admin@eduai.kr", TokenID: "tok-admin"}
	alice = identity.Caller{UserID: "alice", Email: "alice@example.com", TokenID: "tok-alice"}
)

type MockUserService struct{ mock.Mock }

func (m *MockUserService) ListUsers(ctx context.Context, caller identity.Caller) ([]model.User, error) {
	args := m.Called(ctx, caller)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, caller identity.Caller, userID string) (*model.User, error) {
	args := m.Called(ctx, caller, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserService) DeleteAccount(ctx context.Context, caller identity.Caller, password string) error {
	return m.Called(ctx, caller, password).Error(0)
}

type MockEntitlementService struct{ mock.Mock }

func (m *MockEntitlementService) ListPlans(ctx context.Context) ([]model.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]model.Plan)
	return plans, args.Error(1)
}

func (m *MockEntitlementService) GetPlanFeatures(ctx context.Context, planID string) (*model.PlanFeature, error) {
	args := m.Called(ctx, planID)
	pf, _ := args.Get(0).(*model.PlanFeature)
	return pf, args.Error(1)
}

func (m *MockEntitlementService) UpsertPlanFeatures(ctx context.Context, caller identity.Caller, planID string, features model.Features) (*model.PlanFeature, error) {
	args := m.Called(ctx, caller, planID, features)
	pf, _ := args.Get(0).(*model.PlanFeature)
	return pf, args.Error(1)
}

func (m *MockEntitlementService) GetUserEntitlement(ctx context.Context, userID string) (*model.Features, error) {
	args := m.Called(ctx, userID)
	f, _ := args.Get(0).(*model.Features)
	return f, args.Error(1)
}

func (m *MockEntitlementService) SetUserEntitlementField(ctx context.Context, caller identity.Caller, userID string, update model.FieldUpdate) (*model.User, error) {
	args := m.Called(ctx, caller, userID, update)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type MockPlanService struct{ mock.Mock }

func (m *MockPlanService) ApplyPlan(ctx context.Context, caller identity.Caller, userID, planName string) (*model.User, error) {
	args := m.Called(ctx, caller, userID, planName)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type MockNoticeService struct{ mock.Mock }

func (m *MockNoticeService) List(ctx context.Context, filter service.NoticeFilter) ([]model.Notice, error) {
	args := m.Called(ctx, filter)
	notices, _ := args.Get(0).([]model.Notice)
	return notices, args.Error(1)
}

func (m *MockNoticeService) Get(ctx context.Context, id uint) (*model.Notice, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*model.Notice)
	return n, args.Error(1)
}

func (m *MockNoticeService) Create(ctx context.Context, caller identity.Caller, in service.NoticeInput) (*model.Notice, error) {
	args := m.Called(ctx, caller, in)
	n, _ := args.Get(0).(*model.Notice)
	return n, args.Error(1)
}

func (m *MockNoticeService) Update(ctx context.Context, caller identity.Caller, id uint, in service.NoticeInput) (*model.Notice, error) {
	args := m.Called(ctx, caller, id, in)
	n, _ := args.Get(0).(*model.Notice)
	return n, args.Error(1)
}

func (m *MockNoticeService) Delete(ctx context.Context, caller identity.Caller, id uint) error {
	return m.Called(ctx, caller, id).Error(0)
}

type MockPaymentService struct{ mock.Mock }

func (m *MockPaymentService) CreatePaymentIntent(ctx context.Context, caller identity.Caller, in service.PaymentIntentInput) (*model.PaymentIntent, error) {
	args := m.Called(ctx, caller, in)
	p, _ := args.Get(0).(*model.PaymentIntent)
	return p, args.Error(1)
}

type MockMailService struct{ mock.Mock }

func (m *MockMailService) SendContact(ctx context.Context, msg service.ContactMessage) (*mail.Receipt, error) {
	args := m.Called(ctx, msg)
	r, _ := args.Get(0).(*mail.Receipt)
	return r, args.Error(1)
}

func (m *MockMailService) SendInquiryAlert(ctx context.Context, msg service.ContactMessage) (*mail.Receipt, error) {
	args := m.Called(ctx, msg)
	r, _ := args.Get(0).(*mail.Receipt)
	return r, args.Error(1)
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	args := m.Called(ctx, email, password, name)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	return m.Called(ctx, refreshToken, accessToken).Error(0)
}

type MockInquiryService struct{ mock.Mock }

func (m *MockInquiryService) List(ctx context.Context, caller identity.Caller, filter service.InquiryFilter) ([]model.Inquiry, error) {
	args := m.Called(ctx, caller, filter)
	items, _ := args.Get(0).([]model.Inquiry)
	return items, args.Error(1)
}

func (m *MockInquiryService) Get(ctx context.Context, caller identity.Caller, id uint) (*model.Inquiry, error) {
	args := m.Called(ctx, caller, id)
	item, _ := args.Get(0).(*model.Inquiry)
	return item, args.Error(1)
}

func (m *MockInquiryService) Create(ctx context.Context, caller identity.Caller, in service.InquiryInput) (*model.Inquiry, error) {
	args := m.Called(ctx, caller, in)
	item, _ := args.Get(0).(*model.Inquiry)
	return item, args.Error(1)
}

func (m *MockInquiryService) Update(ctx context.Context, caller identity.Caller, id uint, in service.InquiryInput) (*model.Inquiry, error) {
	args := m.Called(ctx, caller, id, in)
	item, _ := args.Get(0).(*model.Inquiry)
	return item, args.Error(1)
}

func (m *MockInquiryService) Delete(ctx context.Context, caller identity.Caller, id uint) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *MockInquiryService) Reply(ctx context.Context, caller identity.Caller, id uint, reply string) (*model.Inquiry, error) {
	args := m.Called(ctx, caller, id, reply)
	item, _ := args.Get(0).(*model.Inquiry)
	return item, args.Error(1)
}

type MockReviewService struct{ mock.Mock }

func (m *MockReviewService) List(ctx context.Context, filter service.ReviewFilter) ([]model.Review, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id uint) (*model.Review, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*model.Review)
	return item, args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, caller identity.Caller, in service.ReviewInput) (*model.Review, error) {
	args := m.Called(ctx, caller, in)
	item, _ := args.Get(0).(*model.Review)
	return item, args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, caller identity.Caller, id uint, in service.ReviewInput) (*model.Review, error) {
	args := m.Called(ctx, caller, id, in)
	item, _ := args.Get(0).(*model.Review)
	return item, args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, caller identity.Caller, id uint) error {
	return m.Called(ctx, caller, id).Error(0)
}
