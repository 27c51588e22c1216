package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ot-inventory/internal/shared/logger"
)

var (
	// ErrFieldRequired is a local validation failure: a required form field is
	// empty. No network call is made.
	ErrFieldRequired = errors.New("all fields are required")
	// ErrPasswordMismatch is a local validation failure on the signup form.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrInvalidCredentials covers every authentication rejection; the server
	// does not distinguish causes and neither does the client.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is the signup conflict failure.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrTransient covers network and server failures where retrying is the
	// right user guidance.
	ErrTransient = errors.New("request failed, please try again")
)

const defaultRequestTimeout = 10 * time.Second

// Client drives the login and signup forms against the credential service and
// owns the client-held token through the injected TokenStore.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
	logger  logger.Logger
}

// NewClient creates a session client for the credential service at baseURL
// (e.g. "http://localhost:3000"). A nil httpClient gets a default with a
// request timeout; a nil store gets an in-memory one.
func NewClient(baseURL string, httpClient *http.Client, store TokenStore, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	if store == nil {
		store = NewMemoryStore()
	}
	if log == nil {
		log = logger.WithComponent("session")
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		store:   store,
		logger:  log,
	}
}

// Store exposes the underlying token store, primarily so the application can
// share one store between the client and the route guard.
func (c *Client) Store() TokenStore {
	return c.store
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login validates the form fields, posts the credentials, and on success
// stores the returned token under TokenKey. Validation failures never reach
// the network.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrFieldRequired
	}

	resp, err := c.postJSON(ctx, "/api/auth/login", credentialsBody{Username: username, Password: password})
	if err != nil {
		c.logger.Warnf("Login request failed: %v", err)
		return ErrTransient
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var body loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.AccessToken == "" {
			return ErrTransient
		}
		c.store.Set(TokenKey, body.AccessToken)
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidCredentials
	default:
		c.logger.Warnf("Login failed with status %d", resp.StatusCode)
		return ErrTransient
	}
}

// Signup validates the form fields locally, including the confirm-password
// check, then forwards username and password to the credential service. The
// confirmation value never leaves the client.
func (c *Client) Signup(ctx context.Context, username, password, confirmPassword string) error {
	if username == "" || password == "" || confirmPassword == "" {
		return ErrFieldRequired
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	resp, err := c.postJSON(ctx, "/api/auth/signup", credentialsBody{Username: username, Password: password})
	if err != nil {
		c.logger.Warnf("Signup request failed: %v", err)
		return ErrTransient
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return ErrUsernameTaken
	default:
		c.logger.Warnf("Signup failed with status %d", resp.StatusCode)
		return ErrTransient
	}
}

// HasSession reports whether a token is present in storage. This is the
// presence-only gate protected views check before rendering; the server's
// signature check remains the only real access control.
func (c *Client) HasSession() bool {
	token, ok := c.store.Get(TokenKey)
	return ok && token != ""
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}
