package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/connect"
	"github.com/sketchsync/backend/controllers"
	"github.com/sketchsync/backend/models"
	"github.com/sketchsync/backend/services"
	"github.com/sketchsync/backend/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeOTPStore keeps the one time codes in memory
type fakeOTPStore struct {
	mu     sync.Mutex
	signup map[string]string
	reset  map[string]string
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{
		signup: make(map[string]string),
		reset:  make(map[string]string),
	}
}

func (f *fakeOTPStore) StoreSignupCode(_ context.Context, email, username, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signup[email+":"+username] = code
	return nil
}

func (f *fakeOTPStore) SignupCode(_ context.Context, email, username string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signup[email+":"+username], nil
}

func (f *fakeOTPStore) DeleteSignupCode(_ context.Context, email, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.signup, email+":"+username)
	return nil
}

func (f *fakeOTPStore) StoreResetCode(_ context.Context, userID, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset[userID] = code
	return nil
}

func (f *fakeOTPStore) ResetCode(_ context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reset[userID], nil
}

func (f *fakeOTPStore) DeleteResetCode(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reset, userID)
	return nil
}

func (f *fakeOTPStore) signupCodeFor(email, username string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signup[email+":"+username]
}

func (f *fakeOTPStore) resetCodeFor(userID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reset[userID]
}

// fakeMailer records the emails that would have been sent
type fakeMailer struct {
	mu       sync.Mutex
	otps     []string
	resets   []string
	welcomes []string
}

func (m *fakeMailer) SendOTP(_, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps = append(m.otps, code)
	return nil
}

func (m *fakeMailer) SendPasswordResetOTP(_, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, code)
	return nil
}

func (m *fakeMailer) SendWelcome(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomes = append(m.welcomes, email)
	return nil
}

func (m *fakeMailer) sentOTPs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.otps)
}

var dbCounter int64

type testServer struct {
	app  *fiber.App
	conn *connect.Connector
	env  *config.Env
	otp  *fakeOTPStore
	mail *fakeMailer
}

func setup(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:controllertest%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Connection{}))

	conn := &connect.Connector{DB: db}
	env := &config.Env{
		JWTSecret:        "test_jwt_secret",
		JWTExpires:       time.Hour,
		OTPExpires:       10 * time.Minute,
		DevEnv:           string(config.Test),
		Port:             "8080",
		FrontendHostname: "localhost",
	}
	otp := newFakeOTPStore()
	mail := &fakeMailer{}

	app := fiber.New()
	controllers.RegisterRoutes(app, conn, env, otp, mail)

	return &testServer{
		app:  app,
		conn: conn,
		env:  env,
		otp:  otp,
		mail: mail,
	}
}

// seedUser creates a user directly and returns it with a valid session token
func (ts *testServer) seedUser(t *testing.T, username, password string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	userS := services.User{Conn: ts.conn}
	user, err := userS.Create(models.User{
		Username:       username,
		Email:          username + "@example.com",
		Name:           "Test " + username,
		PasswordHashed: string(hashed),
		Verified:       true,
		Roles:          models.Roles{"viewer"},
		Permissions:    models.DefaultPermissions(),
	})
	require.NoError(t, err)

	sessionS := token.Session{Env: ts.env}
	details, err := sessionS.Create(*user.ID)
	require.NoError(t, err)

	return user, details.Token
}

func (ts *testServer) do(t *testing.T, method, target, sessionToken string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+sessionToken)
	}

	res, err := ts.app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	_ = json.NewDecoder(res.Body).Decode(&parsed)

	return res, parsed
}

const strongPassword = "N0t$oC0mmonPass92!"

func TestSignupFlow(t *testing.T) {
	ts := setup(t)

	res, body := ts.do(t, http.MethodPost, "/api/v1/auth/signup/request-otp", "", fiber.Map{
		"userName": "alice",
		"email":    "alice@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "OTP sent successfully", body["message"])
	assert.Equal(t, 1, ts.mail.sentOTPs())

	code := ts.otp.signupCodeFor("alice@example.com", "alice")
	require.Len(t, code, 6)

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/signup/complete", "", fiber.Map{
		"userName": "alice",
		"email":    "alice@example.com",
		"otpCode":  "000000",
		"name":     "Alice",
		"password": strongPassword,
	})
	if code == "000000" {
		t.Skip("generated code collided with the wrong code fixture")
	}
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Invalid or expired OTP", body["message"])

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/signup/complete", "", fiber.Map{
		"userName": "alice",
		"email":    "alice@example.com",
		"otpCode":  code,
		"name":     "Alice",
		"password": strongPassword,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["userName"])
	assert.Equal(t, true, user["isVerified"])

	// The code is consumed by the signup
	assert.Empty(t, ts.otp.signupCodeFor("alice@example.com", "alice"))

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"userName": "alice",
		"password": strongPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, body["token"])

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"userName": "alice",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestRequestSignupOTPConflicts(t *testing.T) {
	ts := setup(t)
	ts.seedUser(t, "bob", strongPassword)

	res, body := ts.do(t, http.MethodPost, "/api/v1/auth/signup/request-otp", "", fiber.Map{
		"userName": "bob",
		"email":    "new@example.com",
	})
	require.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "Username is already taken", body["message"])

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/signup/request-otp", "", fiber.Map{
		"userName": "someone_new",
		"email":    "bob@example.com",
	})
	require.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "Email is already taken", body["message"])
}

func TestRequestSignupOTPValidation(t *testing.T) {
	ts := setup(t)

	res, body := ts.do(t, http.MethodPost, "/api/v1/auth/signup/request-otp", "", fiber.Map{
		"userName": "x",
		"email":    "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Validation error", body["message"])

	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "userName")
	assert.Contains(t, fields, "email")
}

func TestSigninRequiresIdentifier(t *testing.T) {
	ts := setup(t)

	res, body := ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"password": strongPassword,
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Validation error", body["message"])
}

func TestSigninBlockedUser(t *testing.T) {
	ts := setup(t)
	user, _ := ts.seedUser(t, "carol", strongPassword)

	user.Blocked = true
	userS := services.User{Conn: ts.conn}
	require.NoError(t, userS.Save(&user))

	res, body := ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"userName": "carol",
		"password": strongPassword,
	})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "You are not authorized to access this resource", body["message"])
}

func TestAuthMiddleware(t *testing.T) {
	ts := setup(t)

	res, body := ts.do(t, http.MethodGet, "/api/v1/auth/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "No authentication token provided", body["message"])

	res, body = ts.do(t, http.MethodGet, "/api/v1/auth/profile", "not.a.token", nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])
}

func TestProfile(t *testing.T) {
	ts := setup(t)
	_, sessionToken := ts.seedUser(t, "dave", strongPassword)

	res, body := ts.do(t, http.MethodGet, "/api/v1/auth/profile", sessionToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "User profile retrieved successfully", body["message"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dave", user["userName"])
	assert.NotContains(t, user, "passwordHashed")
}

func TestEditProfile(t *testing.T) {
	ts := setup(t)
	_, sessionToken := ts.seedUser(t, "erin", strongPassword)
	ts.seedUser(t, "frank", strongPassword)

	res, body := ts.do(t, http.MethodPatch, "/api/v1/auth/editProfile", sessionToken, fiber.Map{
		"name":        "Erin Updated",
		"phoneNumber": "+12025550147",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Profile updated successfully", body["message"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Erin Updated", user["name"])
	assert.Equal(t, "+12025550147", user["phoneNumber"])

	res, body = ts.do(t, http.MethodPatch, "/api/v1/auth/editProfile", sessionToken, fiber.Map{
		"role": "admin",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Invalid fields in update", body["message"])

	res, body = ts.do(t, http.MethodPatch, "/api/v1/auth/editProfile", sessionToken, fiber.Map{
		"userName": "frank",
	})
	require.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "Username is already taken", body["message"])
}

func TestEditProfileNormalizesEmail(t *testing.T) {
	ts := setup(t)
	user, sessionToken := ts.seedUser(t, "zoe", strongPassword)

	res, body := ts.do(t, http.MethodPatch, "/api/v1/auth/editProfile", sessionToken, fiber.Map{
		"email": "Zoe.New@Example.COM",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	updated, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "zoe.new@example.com", updated["email"])

	userS := services.User{Conn: ts.conn}
	got, err := userS.GetUserWithEmail("zoe.new@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Signing in by the updated email must still work
	res, _ = ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"email":    "zoe.new@example.com",
		"password": strongPassword,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// The lowercase form is held against other accounts regardless of casing
	_, otherToken := ts.seedUser(t, "yann", strongPassword)
	res, body = ts.do(t, http.MethodPatch, "/api/v1/auth/editProfile", otherToken, fiber.Map{
		"email": "ZOE.NEW@example.com",
	})
	require.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "Email is already taken", body["message"])
}

func TestChangePassword(t *testing.T) {
	ts := setup(t)
	_, sessionToken := ts.seedUser(t, "grace", strongPassword)

	const newPassword = "Turn1ng-Th3-P@ge!77"

	res, body := ts.do(t, http.MethodPatch, "/api/v1/auth/changePassword", sessionToken, fiber.Map{
		"currentPassword": "wrong-password",
		"newPassword":     newPassword,
	})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Current password is incorrect", body["message"])

	res, body = ts.do(t, http.MethodPatch, "/api/v1/auth/changePassword", sessionToken, fiber.Map{
		"currentPassword": strongPassword,
		"newPassword":     newPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Password updated successfully", body["message"])

	res, _ = ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"userName": "grace",
		"password": newPassword,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestForgotAndResetPassword(t *testing.T) {
	ts := setup(t)
	user, _ := ts.seedUser(t, "henry", strongPassword)

	// The response must not reveal wether the account exists
	res, body := ts.do(t, http.MethodPost, "/api/v1/auth/forgotPassword", "", fiber.Map{
		"email": "nobody@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Password reset OTP has been sent", body["message"])

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/forgotPassword", "", fiber.Map{
		"email": "henry@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Password reset OTP has been sent", body["message"])

	code := ts.otp.resetCodeFor(user.ID.String())
	require.Len(t, code, 6)

	const newPassword = "Turn1ng-Th3-P@ge!77"

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/resetPassword", "", fiber.Map{
		"email":       "henry@example.com",
		"otpCode":     code,
		"newPassword": strongPassword,
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "New password must be different from the current password", body["message"])

	res, body = ts.do(t, http.MethodPost, "/api/v1/auth/resetPassword", "", fiber.Map{
		"email":       "henry@example.com",
		"otpCode":     code,
		"newPassword": newPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Password reset successfully", body["message"])
	assert.Empty(t, ts.otp.resetCodeFor(user.ID.String()))

	res, _ = ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"userName": "henry",
		"password": strongPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.do(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"userName": "henry",
		"password": newPassword,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLogout(t *testing.T) {
	ts := setup(t)
	_, sessionToken := ts.seedUser(t, "iris", strongPassword)

	res, body := ts.do(t, http.MethodPost, "/api/v1/auth/logout", sessionToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Logged out successfully", body["message"])
}

func TestConnectionFlow(t *testing.T) {
	ts := setup(t)
	alice, aliceToken := ts.seedUser(t, "alice", strongPassword)
	bob, bobToken := ts.seedUser(t, "bob", strongPassword)

	res, body := ts.do(t, http.MethodPost, "/api/v1/connection/sendRequest", aliceToken, fiber.Map{
		"toUserId": bob.ID.String(),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "Connection request sent successfully", body["message"])

	request, ok := body["request"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pending", request["status"])
	requestID, ok := request["id"].(string)
	require.True(t, ok)

	res, body = ts.do(t, http.MethodPost, "/api/v1/connection/sendRequest", aliceToken, fiber.Map{
		"toUserId": bob.ID.String(),
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Connection request already sent", body["message"])

	res, body = ts.do(t, http.MethodPost, "/api/v1/connection/sendRequest", aliceToken, fiber.Map{
		"toUserId": alice.ID.String(),
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "You cannot send a connection request to yourself", body["message"])

	res, body = ts.do(t, http.MethodGet, "/api/v1/connection/requests", bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	requests, ok := body["requests"].([]interface{})
	require.True(t, ok)
	require.Len(t, requests, 1)

	res, body = ts.do(t, http.MethodGet, "/api/v1/connection/sent", aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	sent, ok := body["requests"].([]interface{})
	require.True(t, ok)
	require.Len(t, sent, 1)

	// Only the recipient can accept
	res, body = ts.do(t, http.MethodPost, "/api/v1/connection/accept/"+requestID, aliceToken, nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body = ts.do(t, http.MethodPost, "/api/v1/connection/accept/"+requestID, bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Connection request accepted", body["message"])

	connection, ok := body["connection"].(map[string]interface{})
	require.True(t, ok)
	sender, ok := connection["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", sender["userName"])

	res, body = ts.do(t, http.MethodGet, "/api/v1/connection/", aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	connections, ok := body["connections"].([]interface{})
	require.True(t, ok)
	require.Len(t, connections, 1)

	res, body = ts.do(t, http.MethodGet, "/api/v1/connection/status/"+bob.ID.String(), aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "connected", body["status"])

	res, body = ts.do(t, http.MethodDelete, "/api/v1/connection/remove/"+requestID, bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Connection removed successfully", body["message"])

	res, body = ts.do(t, http.MethodGet, "/api/v1/connection/status/"+bob.ID.String(), aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "none", body["status"])
}

func TestConnectionRejectAndCancel(t *testing.T) {
	ts := setup(t)
	_, aliceToken := ts.seedUser(t, "alice", strongPassword)
	bob, bobToken := ts.seedUser(t, "bob", strongPassword)

	res, body := ts.do(t, http.MethodPost, "/api/v1/connection/sendRequest", aliceToken, fiber.Map{
		"toUserId": bob.ID.String(),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	request := body["request"].(map[string]interface{})
	requestID := request["id"].(string)

	res, body = ts.do(t, http.MethodPost, "/api/v1/connection/reject/"+requestID, bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Connection request rejected", body["message"])

	res, body = ts.do(t, http.MethodGet, "/api/v1/connection/status/"+bob.ID.String(), aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "rejected", body["status"])

	// A rejected pair can be retried
	res, body = ts.do(t, http.MethodPost, "/api/v1/connection/sendRequest", aliceToken, fiber.Map{
		"toUserId": bob.ID.String(),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body = ts.do(t, http.MethodDelete, "/api/v1/connection/cancel/"+requestID, bobToken, nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body = ts.do(t, http.MethodDelete, "/api/v1/connection/cancel/"+requestID, aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Connection request cancelled", body["message"])

	res, body = ts.do(t, http.MethodDelete, "/api/v1/connection/cancel/"+requestID, aliceToken, nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Connection request not found", body["message"])
}

func TestSendRequestToUnknownUser(t *testing.T) {
	ts := setup(t)
	_, aliceToken := ts.seedUser(t, "alice", strongPassword)

	res, body := ts.do(t, http.MethodPost, "/api/v1/connection/sendRequest", aliceToken, fiber.Map{
		"toUserId": "3f1f8a0e-45a3-4f9d-9df8-111111111111",
	})
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "User not found", body["message"])

	res, body = ts.do(t, http.MethodPost, "/api/v1/connection/sendRequest", aliceToken, fiber.Map{
		"toUserId": "not-a-uuid",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Validation error", body["message"])
}

func TestConnectionRoutesRequireAuth(t *testing.T) {
	ts := setup(t)

	res, body := ts.do(t, http.MethodGet, "/api/v1/connection/", "", nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "No authentication token provided", body["message"])
}

func TestHealth(t *testing.T) {
	ts := setup(t)

	res, body := ts.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, string(config.Test), body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}
