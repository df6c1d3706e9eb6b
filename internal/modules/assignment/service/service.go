package assignment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/assignment/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type AssignmentService interface {
	List(ctx context.Context, req dto.ListAssignmentsRequest) ([]entity.Assignment, *envelope.Meta, error)
	Create(ctx context.Context, req dto.CreateAssignmentRequest) (entity.Assignment, error)
	Update(ctx context.Context, id int, req dto.UpdateAssignmentRequest) (entity.Assignment, error)
	Delete(ctx context.Context, id int) error
}

type assignmentService struct {
	core *collection.Service[entity.Assignment]
}

func NewAssignmentService(core *collection.Service[entity.Assignment]) AssignmentService {
	return &assignmentService{core: core}
}

var listSchema = listquery.Schema[entity.Assignment]{
	Match: func(a entity.Assignment, term string) bool {
		return listquery.ContainsFold(term, a.SubjectID, a.InstructorID)
	},
	Sort: map[string]func(a, b entity.Assignment) bool{
		"id":         func(a, b entity.Assignment) bool { return a.ID < b.ID },
		"created_at": func(a, b entity.Assignment) bool { return a.CreatedAt.Before(b.CreatedAt) },
	},
}

func (s *assignmentService) List(ctx context.Context, req dto.ListAssignmentsRequest) ([]entity.Assignment, *envelope.Meta, error) {
	items, err := s.core.List(ctx, upstream.ListOptions{Preload: req.Preload, Select: req.Select})
	if err != nil {
		return nil, nil, err
	}
	out, meta := listquery.Apply(items, listSchema, req.Options)
	return out, meta, nil
}

func (s *assignmentService) Create(ctx context.Context, req dto.CreateAssignmentRequest) (entity.Assignment, error) {
	// Best effort against the cached list; the records service keeps the
	// final word on whether the pair already exists.
	if cached, ok := s.core.Cached(ctx); ok {
		for _, a := range cached {
			if a.SubjectID == req.SubjectID && a.InstructorID == req.InstructorID {
				return entity.Assignment{}, fmt.Errorf("%w: instructor is already assigned to this subject", apperror.ErrConflict)
			}
		}
	}
	return s.core.Create(ctx, req)
}

func (s *assignmentService) Update(ctx context.Context, id int, req dto.UpdateAssignmentRequest) (entity.Assignment, error) {
	return s.core.Update(ctx, strconv.Itoa(id), req)
}

func (s *assignmentService) Delete(ctx context.Context, id int) error {
	return s.core.Delete(ctx, strconv.Itoa(id))
}
