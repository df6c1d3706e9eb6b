package instructor

import (
	"context"
	"strings"

	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/instructor/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type InstructorService interface {
	List(ctx context.Context, req dto.ListInstructorsRequest) ([]entity.Instructor, *envelope.Meta, error)
	Create(ctx context.Context, req dto.CreateInstructorRequest) (entity.Instructor, error)
	Update(ctx context.Context, id string, req dto.UpdateInstructorRequest) (entity.Instructor, error)
	Delete(ctx context.Context, id string) error
}

type instructorService struct {
	core *collection.Service[entity.Instructor]
}

func NewInstructorService(core *collection.Service[entity.Instructor]) InstructorService {
	return &instructorService{core: core}
}

var listSchema = listquery.Schema[entity.Instructor]{
	Match: func(i entity.Instructor, term string) bool {
		return listquery.ContainsFold(term, i.FirstName, i.LastName, i.Email, i.Phone, i.Degree)
	},
	Sort: map[string]func(a, b entity.Instructor) bool{
		"first_name": func(a, b entity.Instructor) bool { return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName) },
		"last_name":  func(a, b entity.Instructor) bool { return strings.ToLower(a.LastName) < strings.ToLower(b.LastName) },
		"email":      func(a, b entity.Instructor) bool { return strings.ToLower(a.Email) < strings.ToLower(b.Email) },
		"birth_day":  func(a, b entity.Instructor) bool { return a.BirthDay.Before(b.BirthDay) },
	},
}

func (s *instructorService) List(ctx context.Context, req dto.ListInstructorsRequest) ([]entity.Instructor, *envelope.Meta, error) {
	items, err := s.core.List(ctx, upstream.ListOptions{Preload: req.Preload, Select: req.Select})
	if err != nil {
		return nil, nil, err
	}
	out, meta := listquery.Apply(items, listSchema, req.Options)
	return out, meta, nil
}

func (s *instructorService) Create(ctx context.Context, req dto.CreateInstructorRequest) (entity.Instructor, error) {
	return s.core.Create(ctx, req)
}

func (s *instructorService) Update(ctx context.Context, id string, req dto.UpdateInstructorRequest) (entity.Instructor, error) {
	return s.core.Update(ctx, id, req)
}

func (s *instructorService) Delete(ctx context.Context, id string) error {
	return s.core.Delete(ctx, id)
}
