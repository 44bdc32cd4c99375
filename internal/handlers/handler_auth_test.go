package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/core/services"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
	"github.com/activitydash/activity_dashboard_app/internal/handlers"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
	"github.com/activitydash/activity_dashboard_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Shared test harness ---

func testConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		IsProduction:       true, // skips swagger registration
		JWTSecret:          "handler-test-secret",
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "activity-dashboard",
		AuthCookieName:     "auth-token",
		ProviderCookieName: "rc_token",
		CookieMaxAge:       time.Hour,
		AppBaseURL:         "http://localhost:8080",
	}
}

// --- Mock UserSvcFacade ---
type MockUserSvc struct {
	mock.Mock
}

func (m *MockUserSvc) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) UpdateEmail(ctx context.Context, userID int64, email string) error {
	args := m.Called(ctx, userID, email)
	return args.Error(0)
}

func (m *MockUserSvc) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

// --- Mock TallySvcFacade ---
type MockTallySvc struct {
	mock.Mock
}

func (m *MockTallySvc) ListWeeks(ctx context.Context, userID int64) ([]domain.Week, error) {
	args := m.Called(ctx, userID)
	var weeks []domain.Week
	if args.Get(0) != nil {
		weeks = args.Get(0).([]domain.Week)
	}
	return weeks, args.Error(1)
}

func (m *MockTallySvc) CreateWeek(ctx context.Context, userID int64, req dto.CreateWeekRequest) (int64, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTallySvc) PatchEntry(ctx context.Context, entryID int64, field string, value int) error {
	args := m.Called(ctx, entryID, field, value)
	return args.Error(0)
}

// --- Mock RingCentralSvcFacade ---
type MockRingCentralSvc struct {
	mock.Mock
}

func (m *MockRingCentralSvc) AuthorizeURL() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockRingCentralSvc) Exchange(ctx context.Context, code string) (*domain.ProviderCredential, error) {
	args := m.Called(ctx, code)
	var cred *domain.ProviderCredential
	if args.Get(0) != nil {
		cred = args.Get(0).(*domain.ProviderCredential)
	}
	return cred, args.Error(1)
}

func (m *MockRingCentralSvc) FetchCallLog(ctx context.Context, cred domain.ProviderCredential) (*dto.CallLogResponse, error) {
	args := m.Called(ctx, cred)
	var resp *dto.CallLogResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.CallLogResponse)
	}
	return resp, args.Error(1)
}

func (m *MockRingCentralSvc) FetchMessages(ctx context.Context, cred domain.ProviderCredential) (*dto.MessageResponse, error) {
	args := m.Called(ctx, cred)
	var resp *dto.MessageResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.MessageResponse)
	}
	return resp, args.Error(1)
}

func (m *MockRingCentralSvc) FetchExtensions(ctx context.Context, cred domain.ProviderCredential) (*dto.ExtensionResponse, error) {
	args := m.Called(ctx, cred)
	var resp *dto.ExtensionResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.ExtensionResponse)
	}
	return resp, args.Error(1)
}

// testHarness wires a gin engine with mocked services the way main does.
type testHarness struct {
	router      *gin.Engine
	cfg         *config.Config
	userSvc     *MockUserSvc
	tallySvc    *MockTallySvc
	providerSvc *MockRingCentralSvc
}

func newTestHarness() *testHarness {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	h := &testHarness{
		cfg:         cfg,
		userSvc:     new(MockUserSvc),
		tallySvc:    new(MockTallySvc),
		providerSvc: new(MockRingCentralSvc),
	}

	container := &portssvc.ServiceContainer{
		User:        h.userSvc,
		Token:       services.NewTokenService(cfg),
		Tally:       h.tallySvc,
		RingCentral: h.providerSvc,
	}

	h.router = gin.New()
	handlers.RegisterRoutes(h.router, cfg, container)
	return h
}

// sessionCookie issues a valid session cookie for the given user.
func (h *testHarness) sessionCookie(t *testing.T, user *domain.User) *http.Cookie {
	token, err := utils.GenerateSessionToken(user, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	require.NoError(t, err)
	return &http.Cookie{Name: h.cfg.AuthCookieName, Value: token}
}

func (h *testHarness) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func testAdmin() *domain.User {
	return &domain.User{
		UserID:   1,
		Username: "susan",
		Name:     "Susan Trombetti",
		Email:    "susan@company.com",
		Role:     domain.RoleAdmin,
	}
}

// --- Auth Handler Suite ---

type AuthHandlerTestSuite struct {
	suite.Suite
	h *testHarness
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.h = newTestHarness()
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.h.userSvc.On("Authenticate", mock.Anything, "susan", "admin123").Return(testAdmin(), nil).Once()

	w := suite.h.do(http.MethodPost, "/api/auth/login", `{"username":"susan","password":"admin123"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"success":true`)
	suite.Contains(w.Body.String(), `"username":"susan"`)
	// Password material never appears in the response.
	suite.NotContains(w.Body.String(), "password")

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	cookie := cookies[0]
	suite.Equal("auth-token", cookie.Name)
	suite.NotEmpty(cookie.Value)
	suite.True(cookie.HttpOnly)
	suite.Equal("/", cookie.Path)

	// The cookie value is a verifiable session token mirroring the user.
	claims, err := utils.ParseSessionToken(cookie.Value, suite.h.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("susan", claims.Username)
	suite.Equal(domain.RoleAdmin, claims.Role)
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.h.userSvc.On("Authenticate", mock.Anything, "susan", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.h.do(http.MethodPost, "/api/auth/login", `{"username":"susan","password":"wrong"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Empty(w.Result().Cookies())
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.h.do(http.MethodPost, "/api/auth/login", `{"username":"susan"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.h.userSvc.AssertNotCalled(suite.T(), "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestUpdateEmail_Success() {
	suite.h.userSvc.On("UpdateEmail", mock.Anything, int64(1), "new@company.com").Return(nil).Once()

	cookie := suite.h.sessionCookie(suite.T(), testAdmin())
	w := suite.h.do(http.MethodPost, "/api/auth/update-email", `{"email":"new@company.com"}`, cookie)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"success":true`)
}

func (suite *AuthHandlerTestSuite) TestUpdateEmail_RequiresSession() {
	w := suite.h.do(http.MethodPost, "/api/auth/update-email", `{"email":"new@company.com"}`)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.h.userSvc.AssertNotCalled(suite.T(), "UpdateEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestUpdateEmail_RejectsInvalidAddress() {
	cookie := suite.h.sessionCookie(suite.T(), testAdmin())
	w := suite.h.do(http.MethodPost, "/api/auth/update-email", `{"email":"not-an-email"}`, cookie)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestUpdatePassword_Success() {
	suite.h.userSvc.On("UpdatePassword", mock.Anything, int64(1), "admin123", "stronger456").Return(nil).Once()

	cookie := suite.h.sessionCookie(suite.T(), testAdmin())
	w := suite.h.do(http.MethodPost, "/api/auth/update-password",
		`{"currentPassword":"admin123","newPassword":"stronger456"}`, cookie)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthHandlerTestSuite) TestUpdatePassword_WrongCurrent() {
	suite.h.userSvc.On("UpdatePassword", mock.Anything, int64(1), "wrong", "stronger456").
		Return(apperrors.ErrValidation).Once()

	cookie := suite.h.sessionCookie(suite.T(), testAdmin())
	w := suite.h.do(http.MethodPost, "/api/auth/update-password",
		`{"currentPassword":"wrong","newPassword":"stronger456"}`, cookie)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Current password is incorrect")
}

func (suite *AuthHandlerTestSuite) TestUpdatePassword_ShortNewPasswordRejected() {
	cookie := suite.h.sessionCookie(suite.T(), testAdmin())
	w := suite.h.do(http.MethodPost, "/api/auth/update-password",
		`{"currentPassword":"admin123","newPassword":"abc"}`, cookie)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.h.userSvc.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
