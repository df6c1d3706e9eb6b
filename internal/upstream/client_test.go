package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/departments", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("preload"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"message": "success",
			"data":    []map[string]any{{"id": 1, "name": "CS"}},
		})
	}))
	defer srv.Close()

	res := NewResource[entity.Department](NewClient(srv.URL+"/api", time.Second), "departments")
	env, err := res.List(context.Background(), ListOptions{Preload: true})
	require.NoError(t, err)
	assert.Equal(t, 200, env.Code)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "CS", env.Data[0].Name)
}

func TestResourceCreateSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CS", body["name"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    201,
			"message": "created",
			"data":    map[string]any{"id": 1, "name": "CS"},
		})
	}))
	defer srv.Close()

	res := NewResource[entity.Department](NewClient(srv.URL, time.Second), "departments")
	env, err := res.Create(context.Background(), map[string]string{"name": "CS"})
	require.NoError(t, err)
	assert.Equal(t, 1, env.Data.ID)
}

func TestResourceDeleteTargetsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/departments/4", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"code": 200, "message": "deleted", "data": nil})
	}))
	defer srv.Close()

	res := NewResource[entity.Department](NewClient(srv.URL, time.Second), "departments")
	require.NoError(t, res.Delete(context.Background(), "4"))
}

func TestErrorEnvelopeMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantErr    error
		wantStatus int
	}{
		{"not found", http.StatusNotFound, "department not found", apperror.ErrNotFound, http.StatusNotFound},
		{"validation", http.StatusBadRequest, "name already taken", apperror.ErrBadRequest, http.StatusBadRequest},
		{"upstream down", http.StatusInternalServerError, "", apperror.ErrUpstreamUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"code":    tt.status,
					"message": tt.message,
					"data":    nil,
				})
			}))
			defer srv.Close()

			res := NewResource[entity.Department](NewClient(srv.URL, time.Second), "departments")
			_, err := res.List(context.Background(), ListOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantStatus, apperror.MapErrorToStatus(err))
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestTransportErrorIsUpstreamUnavailable(t *testing.T) {
	res := NewResource[entity.Department](NewClient("http://127.0.0.1:1", 100*time.Millisecond), "departments")
	_, err := res.List(context.Background(), ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUpstreamUnavailable)
}
