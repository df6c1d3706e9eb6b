package subject

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
	"github.com/TheDemonTuan/client-score-management/internal/modules/subject/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, handler http.Handler) (SubjectService, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	store := cache.NewMemoryStore()
	resource := upstream.NewResource[entity.Subject](upstream.NewClient(srv.URL, time.Second), "subjects")
	core := collection.NewService(entity.TypeSubject, resource, store, cachesync.NewEngine(store))
	return NewSubjectService(core), &hits
}

func validCreate() dto.CreateSubjectRequest {
	return dto.CreateSubjectRequest{
		Name:              "Databases",
		Credits:           4,
		ProcessPercentage: 20,
		MidtermPercentage: 30,
		FinalPercentage:   50,
		DepartmentID:      1,
	}
}

func TestCreateRejectsBadPercentageSum(t *testing.T) {
	svc, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := validCreate()
	req.FinalPercentage = 40

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, int32(0), hits.Load())
}

func TestUpdateRejectsBadPercentageSum(t *testing.T) {
	svc, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := svc.Update(context.Background(), "sub-1", dto.UpdateSubjectRequest{
		Name:              "Databases",
		Credits:           4,
		ProcessPercentage: 50,
		MidtermPercentage: 50,
		FinalPercentage:   50,
		DepartmentID:      1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, int32(0), hits.Load())
}

func TestCreateForwardsValidPayload(t *testing.T) {
	svc, hits := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    201,
			"message": "created",
			"data":    entity.Subject{ID: "sub-1", Name: "Databases", Credits: 4},
		})
	}))

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, "sub-1", created.ID)
	assert.Equal(t, int32(1), hits.Load())
}
