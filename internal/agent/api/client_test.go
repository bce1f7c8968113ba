package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/agent/api"
)

func TestClient_Headers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/x", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		raw, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"a":1}`, string(raw))

		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var resp struct{ OK bool }
	// завершающий слэш обрезается
	err := api.NewClient(srv.URL+"/").PatchJSON("/x", map[string]int{"a": 1}, &resp, "tok")
	require.NoError(t, err)
	require.True(t, resp.OK)
}

func TestClient_NoBodyNoContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, api.NewClient(srv.URL).DeleteJSON("/x", nil, ""))
}

// ошибка сервера: текст берётся из {"error": ...}
func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "password incorrect"})
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).GetJSON("/x", nil, "")
	require.EqualError(t, err, "password incorrect")
	require.Equal(t, http.StatusForbidden, api.StatusOf(err))
}

func TestClient_APIError_PlainAndEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/plain" {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL)
	require.EqualError(t, c.GetJSON("/plain", nil, ""), "boom")
	require.EqualError(t, c.GetJSON("/empty", nil, ""), "500 Internal Server Error")
}

// TLS-сервер с самоподписанным сертификатом (dev)
func TestClient_TLSDev(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.NoError(t, api.NewClient(srv.URL).GetJSON("/", &struct{}{}, ""))
}

func TestStatusOf_NotAPIError(t *testing.T) {
	require.Equal(t, 0, api.StatusOf(io.EOF))
}
