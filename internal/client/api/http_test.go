package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
	"github.com/Zeldris69240/reqres-app/internal/client/session"
	"github.com/Zeldris69240/reqres-app/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *session.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	logger := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewHTTPClient(srv.URL, store, logger), store
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "QpwL5tke4Pnpja7X4"})
	})

	token, err := c.Login(context.Background(), "eve.holt@reqres.in", "pistol")
	require.NoError(t, err)
	assert.Equal(t, "QpwL5tke4Pnpja7X4", token)
	assert.Equal(t, "eve.holt@reqres.in", gotBody["email"])
	assert.Equal(t, "pistol", gotBody["password"])
}

func TestLogin_NonSuccessStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"user not found"}`, http.StatusBadRequest)
	})

	_, err := c.Login(context.Background(), "bad@x.com", "wrong")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from now on

	store := session.NewMemoryStore()
	c := NewHTTPClient(srv.URL, store, logging.NewTextLogger(io.Discard, slog.LevelError))

	_, err := c.Login(context.Background(), "eve.holt@reqres.in", "pistol")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestListUsers_Success(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page": 1,
			"data": []models.User{
				{ID: 1, FirstName: "George", LastName: "Bluth", Email: "george.bluth@reqres.in"},
				{ID: 2, FirstName: "Janet", LastName: "Weaver", Email: "janet.weaver@reqres.in"},
			},
		})
	})
	store.Set("tok-123")

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "George", users[0].FirstName)
	assert.Equal(t, 2, users[1].ID)
}

func TestListUsers_NoTokenNoAuthHeader(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []models.User{}})
	})

	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
}

func TestListUsers_ServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestUpdateUser_SendsEditableFields(t *testing.T) {
	var gotBody map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/2", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	err := c.UpdateUser(context.Background(), 2, "Anna", "Lee", "anna@y.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"first_name": "Anna",
		"last_name":  "Lee",
		"email":      "anna@y.com",
	}, gotBody)
}

func TestUpdateUser_NonSuccessStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.UpdateUser(context.Background(), 99, "A", "B", "a@b.c")
	require.ErrorIs(t, err, ErrUpdateFailed)
}

func TestDeleteUser_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/2", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteUser(context.Background(), 2))
}

func TestDeleteUser_NonSuccessStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.DeleteUser(context.Background(), 2)
	require.ErrorIs(t, err, ErrDeleteFailed)
}
