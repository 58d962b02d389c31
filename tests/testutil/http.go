package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/dto"
	"github.com/stretchr/testify/require"
)

// Envelope is the API response wrapper with a typed data field.
type Envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *dto.ErrorInfo `json:"error"`
	Meta    *dto.Meta      `json:"meta"`
}

// APIClient sends JSON requests to an http.Handler under a base path.
type APIClient struct {
	handler  http.Handler
	basePath string
	token    string
}

// NewAPIClient creates a client for handler; paths are joined to basePath.
func NewAPIClient(handler http.Handler, basePath string) *APIClient {
	return &APIClient{handler: handler, basePath: basePath}
}

// SetToken sets the bearer token sent with later requests.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

// Login authenticates and keeps the issued token.
func (c *APIClient) Login(t *testing.T, username, password string) {
	t.Helper()
	w := c.Do(t, http.MethodPost, "/auth/login", map[string]string{"username": username, "password": password})
	resp := RequireStatus[struct {
		AccessToken string `json:"accessToken"`
	}](t, w, http.StatusOK)
	require.NotEmpty(t, resp.AccessToken)
	c.token = resp.AccessToken
}

// Do sends a request; body may be nil or any JSON-encodable value.
// headers are name/value pairs.
func (c *APIClient) Do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, c.basePath+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

// DecodeEnvelope parses the response body as an API envelope.
func DecodeEnvelope[T any](t *testing.T, w *httptest.ResponseRecorder) Envelope[T] {
	t.Helper()
	var env Envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to parse JSON response: %s", w.Body.String())
	return env
}

// RequireStatus checks the status of a successful response and returns its data.
func RequireStatus[T any](t *testing.T, w *httptest.ResponseRecorder, status int) T {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	env := DecodeEnvelope[T](t, w)
	require.True(t, env.Success, "Expected success to be true")
	return env.Data
}

// RequireError checks the status and error code of a failed response.
func RequireError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) *dto.ErrorInfo {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	env := DecodeEnvelope[json.RawMessage](t, w)
	require.False(t, env.Success, "Expected success to be false")
	require.NotNil(t, env.Error, "Expected error object in response")
	require.Equal(t, code, env.Error.Code)
	return env.Error
}
