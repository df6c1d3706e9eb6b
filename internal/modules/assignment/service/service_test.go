package assignment

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
	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/assignment/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, handler http.Handler) (AssignmentService, *cache.MemoryStore, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	store := cache.NewMemoryStore()
	resource := upstream.NewResource[entity.Assignment](upstream.NewClient(srv.URL, time.Second), "assignments")
	core := collection.NewService(entity.TypeAssignment, resource, store, cachesync.NewEngine(store))
	return NewAssignmentService(core), store, &hits
}

func TestCreateRejectsDuplicatePairFromCache(t *testing.T) {
	svc, store, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ctx := context.Background()
	require.NoError(t, cache.SetList(ctx, store, cache.ListKey(entity.TypeAssignment),
		envelope.New(200, "success", []entity.Assignment{
			{ID: 1, SubjectID: "sub-1", InstructorID: "ins-1"},
		})))

	_, err := svc.Create(ctx, dto.CreateAssignmentRequest{SubjectID: "sub-1", InstructorID: "ins-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, int32(0), hits.Load())
}

func TestCreateAllowsNewPair(t *testing.T) {
	svc, store, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    201,
			"message": "created",
			"data":    entity.Assignment{ID: 2, SubjectID: "sub-1", InstructorID: "ins-2"},
		})
	}))

	ctx := context.Background()
	require.NoError(t, cache.SetList(ctx, store, cache.ListKey(entity.TypeAssignment),
		envelope.New(200, "success", []entity.Assignment{
			{ID: 1, SubjectID: "sub-1", InstructorID: "ins-1"},
		})))

	created, err := svc.Create(ctx, dto.CreateAssignmentRequest{SubjectID: "sub-1", InstructorID: "ins-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	env, ok, err := cache.GetList[entity.Assignment](ctx, store, cache.ListKey(entity.TypeAssignment))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, env.Data, 2)
}

func TestCreateWithColdCacheDefersToUpstream(t *testing.T) {
	svc, _, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    201,
			"message": "created",
			"data":    entity.Assignment{ID: 1, SubjectID: "sub-1", InstructorID: "ins-1"},
		})
	}))

	_, err := svc.Create(context.Background(), dto.CreateAssignmentRequest{SubjectID: "sub-1", InstructorID: "ins-1"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}
