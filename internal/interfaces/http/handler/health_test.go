package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[HealthResponse](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "ok", resp.Data.Status)
		assert.Equal(t, "up", resp.Data.Database)
		assert.Equal(t, "test", resp.Data.Version)
	})

	t.Run("database down", func(t *testing.T) {
		env := newTestEnv(t, withPinger(fakePinger{err: errors.New("connection refused")}))

		w := env.do(t, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decode[HealthResponse](t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "degraded", resp.Data.Status)
		assert.Equal(t, "down", resp.Data.Database)
	})
}
