package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonsoul/neonsoul/pkg/api"
)

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)
		assert.Equal(t, "pw1", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{Message: "User created"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Register(context.Background(), api.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "User created", resp.Message)
}

func TestClient_Register_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "email already registered"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Register(context.Background(), api.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already registered")
	assert.Contains(t, err.Error(), "400")
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{Token: "jwt-token"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), api.LoginRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
}

func TestClient_CreateAvatar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/avatar", r.URL.Path)

		var req api.AvatarRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jwt-token", req.Token)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.AvatarResponse{Name: req.Name, Personality: req.Personality})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.CreateAvatar(context.Background(), api.AvatarRequest{
		Token:       "jwt-token",
		Name:        "Nova",
		Personality: "curious",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nova", resp.Name)
	assert.Equal(t, "curious", resp.Personality)
}

func TestClient_Feed(t *testing.T) {
	posts := []api.FeedPost{
		{Author: "A", Content: "x"},
		{Author: "B", Content: "y"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/feed", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(posts)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, resp)
}

func TestClient_Feed_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "upstream unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Feed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}
