package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Literae/internal/profile"
)

func newProfileTS(t *testing.T) *httptest.Server {
	t.Helper()

	s := &profile.Server{
		Store: profile.NewMemStore(profile.SeedProfiles()...),
		Log:   zap.NewNop(),
	}
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestGetProfile(t *testing.T) {
	ts := newProfileTS(t)

	t.Run("seeded alice", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/1")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var p profile.Profile
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
		assert.Equal(t, profile.Profile{
			UserID:   1,
			FullName: "Alice Johnson",
			Address:  "123 Maple Street, New York",
			Phone:    "+1 234 567 890",
			Email:    "alice@example.com",
		}, p)
	})

	t.Run("unknown user", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/999")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non numeric id", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/alice")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
