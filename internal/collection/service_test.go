package collection

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/internal/cachesync"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDepartmentService(t *testing.T, handler http.Handler) (*Service[entity.Department], *cache.MemoryStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := cache.NewMemoryStore()
	client := upstream.NewClient(srv.URL, time.Second)
	resource := upstream.NewResource[entity.Department](client, "departments")
	return NewService(entity.TypeDepartment, resource, store, cachesync.NewEngine(store)), store, srv
}

func writeEnvelope(w http.ResponseWriter, code int, data any) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{"code": code, "message": "success", "data": data})
}

func TestListFetchesOnceThenServesCache(t *testing.T) {
	var hits atomic.Int32
	svc, _, _ := newDepartmentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusOK, []entity.Department{{ID: 1, Name: "CS"}})
	}))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		items, err := svc.List(ctx, upstream.ListOptions{})
		require.NoError(t, err)
		require.Len(t, items, 1)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestListKeysVariantsSeparately(t *testing.T) {
	var hits atomic.Int32
	svc, _, _ := newDepartmentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusOK, []entity.Department{{ID: 1, Name: "CS"}})
	}))

	ctx := context.Background()
	_, err := svc.List(ctx, upstream.ListOptions{})
	require.NoError(t, err)
	_, err = svc.List(ctx, upstream.ListOptions{Preload: true})
	require.NoError(t, err)
	_, err = svc.List(ctx, upstream.ListOptions{Preload: true})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCreatePatchesCachedList(t *testing.T) {
	svc, store, _ := newDepartmentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, entity.Department{ID: 2, Name: "EE"})
	}))

	ctx := context.Background()
	key := cache.ListKey(entity.TypeDepartment)
	require.NoError(t, cache.SetList(ctx, store, key, envelope.New(200, "success", []entity.Department{{ID: 1, Name: "CS"}})))

	created, err := svc.Create(ctx, map[string]string{"name": "EE"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	env, ok, err := cache.GetList[entity.Department](ctx, store, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "EE", env.Data[1].Name)
}

func TestFailedMutationLeavesCacheUntouched(t *testing.T) {
	svc, store, _ := newDepartmentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"code": 400, "message": "name already taken", "data": nil})
	}))

	ctx := context.Background()
	key := cache.ListKey(entity.TypeDepartment)
	seeded := envelope.New(200, "success", []entity.Department{{ID: 1, Name: "CS"}})
	require.NoError(t, cache.SetList(ctx, store, key, seeded))
	before, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.Create(ctx, map[string]string{"name": "CS"})
	require.Error(t, err)
	_, err = svc.Update(ctx, "1", map[string]string{"name": "CS"})
	require.Error(t, err)
	require.Error(t, svc.Delete(ctx, "1"))

	after, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestUpdateUsesCachedPriorRecord(t *testing.T) {
	svc, store, _ := newDepartmentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, entity.Department{ID: 1, Name: "Computer Science"})
	}))

	ctx := context.Background()
	key := cache.ListKey(entity.TypeDepartment)
	require.NoError(t, cache.SetList(ctx, store, key, envelope.New(200, "success", []entity.Department{
		{ID: 1, Name: "CS"},
		{ID: 2, Name: "EE"},
	})))

	updated, err := svc.Update(ctx, "1", map[string]string{"name": "Computer Science"})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", updated.Name)

	env, ok, err := cache.GetList[entity.Department](ctx, store, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "Computer Science", env.Data[0].Name)
	assert.Equal(t, "EE", env.Data[1].Name)
}

func TestDeleteWithoutCachedListStillSucceeds(t *testing.T) {
	svc, store, _ := newDepartmentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, nil)
	}))

	ctx := context.Background()
	require.NoError(t, svc.Delete(ctx, "1"))

	_, ok, err := store.Get(ctx, cache.ListKey(entity.TypeDepartment))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindNeverFetches(t *testing.T) {
	var hits atomic.Int32
	svc, store, _ := newDepartmentService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusOK, []entity.Department{})
	}))

	ctx := context.Background()
	_, found := svc.Find(ctx, "1")
	assert.False(t, found)
	assert.Equal(t, int32(0), hits.Load())

	require.NoError(t, cache.SetList(ctx, store, cache.ListKey(entity.TypeDepartment),
		envelope.New(200, "success", []entity.Department{{ID: 1, Name: "CS"}})))
	dept, found := svc.Find(ctx, "1")
	require.True(t, found)
	assert.Equal(t, "CS", dept.Name)
	assert.Equal(t, int32(0), hits.Load())
}
