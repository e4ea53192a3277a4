package stubserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
	"github.com/Zeldris69240/reqres-app/internal/logging"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := NewUserRepo(SeedUsers())
	tokens := NewTokenIssuer([]byte("test-secret"), time.Hour)
	logger := logging.NewTextLogger(io.Discard, slog.LevelError)
	srv := httptest.NewServer(NewServer(repo, tokens, logger).Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	resp, err := http.Post(url, "application/json", &buf)
	require.NoError(t, err)
	return resp
}

func TestLogin_IssuesToken(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/login", map[string]string{
		"email":    "eve.holt@reqres.in",
		"password": "pistol",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)

	// The token must verify against the same issuer config.
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	sub, err := issuer.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "eve.holt@reqres.in", sub)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/login", map[string]string{
		"email":    "eve.holt@reqres.in",
		"password": "wrong",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_RejectsMissingFields(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/login", map[string]string{"email": "eve.holt@reqres.in"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListUsers_ReturnsSeedInOrder(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/users?page=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data []models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Data, 6)
	assert.Equal(t, 1, out.Data[0].ID)
	assert.Equal(t, "George", out.Data[0].FirstName)
}

func TestUpdateUser(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"first_name": "Janette",
		"last_name":  "Weaver",
		"email":      "janette@reqres.in",
	})
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/users/2", bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listResp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var out struct {
		Data []models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&out))
	assert.Equal(t, "Janette", out.Data[1].FirstName)
}

func TestUpdateUser_UnknownID(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"first_name": "X", "last_name": "Y", "email": "x@y.z"})
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/users/99", bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteUser_IsIdempotent(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/users/2", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		// Deleting an absent record still succeeds; the response governs.
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	listResp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var out struct {
		Data []models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&out))
	assert.Len(t, out.Data, 5)
}
