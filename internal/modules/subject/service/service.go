package subject

import (
	"context"
	"fmt"
	"strings"

	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/subject/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type SubjectService interface {
	List(ctx context.Context, req dto.ListSubjectsRequest) ([]entity.Subject, *envelope.Meta, error)
	Create(ctx context.Context, req dto.CreateSubjectRequest) (entity.Subject, error)
	Update(ctx context.Context, id string, req dto.UpdateSubjectRequest) (entity.Subject, error)
	Delete(ctx context.Context, id string) error
}

type subjectService struct {
	core *collection.Service[entity.Subject]
}

func NewSubjectService(core *collection.Service[entity.Subject]) SubjectService {
	return &subjectService{core: core}
}

var listSchema = listquery.Schema[entity.Subject]{
	Match: func(s entity.Subject, term string) bool {
		return listquery.ContainsFold(term, s.Name)
	},
	Sort: map[string]func(a, b entity.Subject) bool{
		"name":    func(a, b entity.Subject) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
		"credits": func(a, b entity.Subject) bool { return a.Credits < b.Credits },
	},
}

func (s *subjectService) List(ctx context.Context, req dto.ListSubjectsRequest) ([]entity.Subject, *envelope.Meta, error) {
	items, err := s.core.List(ctx, upstream.ListOptions{Preload: req.Preload, Select: req.Select})
	if err != nil {
		return nil, nil, err
	}
	out, meta := listquery.Apply(items, listSchema, req.Options)
	return out, meta, nil
}

// checkPercentages rejects grade weightings that do not partition the final
// score. The records service does not enforce this.
func checkPercentages(process, midterm, final int) error {
	if sum := process + midterm + final; sum != 100 {
		return fmt.Errorf("%w: grade percentages must sum to 100, got %d", apperror.ErrInvalidInput, sum)
	}
	return nil
}

func (s *subjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (entity.Subject, error) {
	if err := checkPercentages(req.ProcessPercentage, req.MidtermPercentage, req.FinalPercentage); err != nil {
		return entity.Subject{}, err
	}
	return s.core.Create(ctx, req)
}

func (s *subjectService) Update(ctx context.Context, id string, req dto.UpdateSubjectRequest) (entity.Subject, error) {
	if err := checkPercentages(req.ProcessPercentage, req.MidtermPercentage, req.FinalPercentage); err != nil {
		return entity.Subject{}, err
	}
	return s.core.Update(ctx, id, req)
}

func (s *subjectService) Delete(ctx context.Context, id string) error {
	return s.core.Delete(ctx, id)
}
