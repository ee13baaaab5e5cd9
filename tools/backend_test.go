package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendClient_GetDecodesAndForwardsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/modules", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Payments"}]`))
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL+"/api/", time.Second)
	var out []map[string]any
	ctx := WithBackendToken(context.Background(), "abc")
	require.NoError(t, c.Get(ctx, "/modules", url.Values{"page": {"2"}}, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Payments", out[0]["name"])
}

func TestBackendClient_PostSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "x", body["name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9}`))
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL, time.Second)
	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, c.Post(context.Background(), "modules", nil, map[string]string{"name": "x"}, &out))
	assert.Equal(t, int64(9), out.ID)
}

func TestBackendClient_Non2xxIsTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Module already exists"}`))
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL, time.Second)
	err := c.Delete(context.Background(), "/modules/1")
	require.Error(t, err)

	var apiErr *BackendAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Module already exists", ErrorMessage(err))
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestBackendClient_EmptyBodyIsFine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL, time.Second)
	var out map[string]any
	assert.NoError(t, c.Get(context.Background(), "/x", nil, &out))
}

func TestBackendAPIError_MessageFallbacks(t *testing.T) {
	assert.Equal(t, "boom", (&BackendAPIError{StatusCode: 400, Body: `{"error":"boom"}`}).Message())
	assert.Equal(t, "msg", (&BackendAPIError{StatusCode: 400, Body: `{"message":"msg"}`}).Message())
	assert.Equal(t, "Internal Server Error", (&BackendAPIError{StatusCode: 500, Body: `<html>`}).Message())
	assert.Equal(t, "plain", ErrorMessage(errors.New("plain")))
	assert.Equal(t, "", ErrorMessage(nil))
}
