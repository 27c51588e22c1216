package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ot-inventory/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// recordingTransport counts outgoing requests so tests can prove that local
// validation never reaches the network.
type recordingTransport struct {
	calls int
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	return http.DefaultTransport.RoundTrip(req)
}

func signedTestToken(t *testing.T, userID, username, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return signed
}

type SessionClientTestSuite struct {
	suite.Suite
	server    *httptest.Server
	store     *session.MemoryStore
	transport *recordingTransport
	client    *session.Client
	token     string
}

func (suite *SessionClientTestSuite) SetupTest() {
	suite.token = signedTestToken(suite.T(), "user-123", "alice", "User")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["username"] == "alice" && body["password"] == "secret1" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"access_token": suite.token})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	})
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["username"] == "taken" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"error": "Username already taken"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "user-456", "username": body["username"]})
	})

	suite.server = httptest.NewServer(mux)
	suite.store = session.NewMemoryStore()
	suite.transport = &recordingTransport{}
	suite.client = session.NewClient(
		suite.server.URL,
		&http.Client{Transport: suite.transport},
		suite.store,
		nil,
	)
}

func (suite *SessionClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *SessionClientTestSuite) TestLogin_Success_StoresToken() {
	// Act
	err := suite.client.Login(context.Background(), "alice", "secret1")

	// Assert
	require.NoError(suite.T(), err)

	stored, ok := suite.store.Get(session.TokenKey)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), suite.token, stored)
	assert.True(suite.T(), suite.client.HasSession())
}

func (suite *SessionClientTestSuite) TestLogin_WrongPassword() {
	err := suite.client.Login(context.Background(), "alice", "wrongpassword")

	assert.ErrorIs(suite.T(), err, session.ErrInvalidCredentials)
	assert.False(suite.T(), suite.client.HasSession())
}

func (suite *SessionClientTestSuite) TestLogin_EmptyFields_NoNetworkCall() {
	err := suite.client.Login(context.Background(), "", "secret1")

	assert.ErrorIs(suite.T(), err, session.ErrFieldRequired)
	assert.Zero(suite.T(), suite.transport.calls, "validation failures must not hit the server")
}

func (suite *SessionClientTestSuite) TestLogin_ServerDown() {
	suite.server.Close()

	err := suite.client.Login(context.Background(), "alice", "secret1")

	assert.ErrorIs(suite.T(), err, session.ErrTransient)
}

func (suite *SessionClientTestSuite) TestSignup_Success() {
	err := suite.client.Signup(context.Background(), "bob", "secret1", "secret1")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), suite.client.HasSession(), "signup does not log in")
}

func (suite *SessionClientTestSuite) TestSignup_PasswordMismatch_NoNetworkCall() {
	err := suite.client.Signup(context.Background(), "bob", "secret1", "secret2")

	assert.ErrorIs(suite.T(), err, session.ErrPasswordMismatch)
	assert.Zero(suite.T(), suite.transport.calls)
}

func (suite *SessionClientTestSuite) TestSignup_EmptyConfirm_NoNetworkCall() {
	err := suite.client.Signup(context.Background(), "bob", "secret1", "")

	assert.ErrorIs(suite.T(), err, session.ErrFieldRequired)
	assert.Zero(suite.T(), suite.transport.calls)
}

func (suite *SessionClientTestSuite) TestSignup_Conflict() {
	err := suite.client.Signup(context.Background(), "taken", "secret1", "secret1")

	assert.ErrorIs(suite.T(), err, session.ErrUsernameTaken)
}

func (suite *SessionClientTestSuite) TestSignupThenLogin_IdentityShowsUsername() {
	// Arrange
	ctx := context.Background()
	require.NoError(suite.T(), suite.client.Signup(ctx, "bob", "secret1", "secret1"))

	// Act
	err := suite.client.Login(ctx, "alice", "secret1")

	// Assert
	require.NoError(suite.T(), err)
	identity := suite.client.Identity()
	assert.Equal(suite.T(), "alice", identity.Username)
	assert.Equal(suite.T(), "user-123", identity.UserID)
	assert.Equal(suite.T(), "User", identity.Role)
	assert.False(suite.T(), identity.IsGuest())
}

func (suite *SessionClientTestSuite) TestClearedToken_FallsBackToGuest() {
	// There is no logout operation; clearing storage is the only way a
	// session ends before the token expires.
	require.NoError(suite.T(), suite.client.Login(context.Background(), "alice", "secret1"))

	suite.store.Clear(session.TokenKey)

	assert.False(suite.T(), suite.client.HasSession())
	assert.True(suite.T(), suite.client.Identity().IsGuest())
}

func TestSessionClientTestSuite(t *testing.T) {
	suite.Run(t, new(SessionClientTestSuite))
}
